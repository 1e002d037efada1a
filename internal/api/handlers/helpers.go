package handlers

import (
	"coordinate-converter-service/internal/domain"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// readJSON decodes exactly one JSON object into v, rejecting unknown
// fields and trailing content. It writes the 400 itself and reports
// whether the handler should continue.
func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeConversionError maps a conversion failure to a status and a
// message the client can act on. Bad input is the client's problem,
// upstream trouble is a gateway failure, anything else stays vague.
func writeConversionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrAngleParse),
		errors.Is(err, domain.ErrNumericParse),
		errors.Is(err, domain.ErrExtraction):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnknownCRS):
		writeError(w, r, http.StatusBadRequest, "unknown coordinate reference system")
	case errors.Is(err, domain.ErrTransformFailed),
		errors.Is(err, domain.ErrCollaboratorUnavailable):
		log.Printf("upstream failure: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusBadGateway, "conversion backend unavailable")
	default:
		log.Printf("conversion failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
