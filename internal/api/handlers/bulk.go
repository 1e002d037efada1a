package handlers

import (
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"coordinate-converter-service/internal/services"
	"encoding/csv"
	"log"
	"net/http"
	"strings"
)

const maxBulkUploadBytes = 10 << 20

// BulkHandler converts every row of an uploaded CSV file with one
// shared source/target setting.
type BulkHandler struct {
	Provider ports.TransformProvider
}

// Convert expects a multipart form with a "file" part and the
// source_notation, source_crs, target_notation, target_crs fields.
// The response is a CSV download with converted columns appended.
func (h *BulkHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBulkUploadBytes)
	if err := r.ParseMultipartForm(maxBulkUploadBytes); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid multipart form")
		return
	}

	sourceNotation, err := domain.ParseNotation(r.FormValue("source_notation"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "source_notation must be DD, DMS or UTM")
		return
	}
	targetNotation, err := domain.ParseNotation(r.FormValue("target_notation"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "target_notation must be DD, DMS or UTM")
		return
	}

	sourceCRS := strings.TrimSpace(r.FormValue("source_crs"))
	if sourceCRS == "" {
		sourceCRS = domain.DefaultSourceCRS
	}
	targetCRS := strings.TrimSpace(r.FormValue("target_crs"))
	if targetCRS == "" {
		writeError(w, r, http.StatusBadRequest, "target_crs is required")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	conv := services.BulkConversion{
		SourceNotation: sourceNotation,
		SourceCRS:      sourceCRS,
		TargetNotation: targetNotation,
		TargetCRS:      targetCRS,
	}

	rows, err := services.ConvertCSV(r.Context(), file, conv, h.Provider)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="converted.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		log.Printf("write csv failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
