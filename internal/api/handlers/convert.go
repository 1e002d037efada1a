package handlers

import (
	"coordinate-converter-service/internal/api/dto"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"coordinate-converter-service/internal/services"
	"net/http"
	"strings"
)

type ConvertHandler struct {
	Provider ports.TransformProvider
}

// Convert runs a single explicit conversion. The client names both
// systems by code (see /systems); a blank source falls back to the
// default geographic system.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ConvertRequest
	if !readJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.X) == "" || strings.TrimSpace(req.Y) == "" {
		writeError(w, r, http.StatusBadRequest, "x and y are required")
		return
	}

	sourceNotation, err := domain.ParseNotation(req.SourceNotation)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "source_notation must be DD, DMS or UTM")
		return
	}
	targetNotation, err := domain.ParseNotation(req.TargetNotation)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "target_notation must be DD, DMS or UTM")
		return
	}

	sourceCRS := strings.TrimSpace(req.SourceCRS)
	if sourceCRS == "" {
		sourceCRS = domain.DefaultSourceCRS
	}
	targetCRS := strings.TrimSpace(req.TargetCRS)
	if targetCRS == "" {
		writeError(w, r, http.StatusBadRequest, "target_crs is required")
		return
	}

	svcReq := domain.ConversionRequest{
		RawX:           req.X,
		RawY:           req.Y,
		SourceNotation: sourceNotation,
		SourceCRS:      sourceCRS,
		TargetNotation: targetNotation,
		TargetCRS:      targetCRS,
	}

	result, err := services.Convert(r.Context(), svcReq, h.Provider)
	if err != nil {
		writeConversionError(w, r, err)
		return
	}

	res := dto.ConvertResponse{
		X:         result.Coordinates.X,
		Y:         result.Coordinates.Y,
		XText:     result.FormattedX,
		YText:     result.FormattedY,
		Notation:  string(result.Notation),
		SourceCRS: sourceCRS,
		TargetCRS: targetCRS,
	}
	writeJSON(w, r, http.StatusOK, res)
}
