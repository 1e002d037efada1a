package handlers

import (
	"coordinate-converter-service/internal/api/dto"
	"coordinate-converter-service/internal/domain"
	"net/http"
	"strings"
)

// SystemsHandler exposes the coordinate system catalogue for building
// selection UIs.
type SystemsHandler struct {
	Catalogue *domain.Catalogue
}

// List returns the catalogue grouped by category, in declaration
// order. An optional ?category= filter narrows it to one group.
func (h *SystemsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	filter := strings.TrimSpace(r.URL.Query().Get("category"))

	res := dto.ListSystemsResponse{Categories: make([]dto.SystemCategoryResponse, 0)}
	for _, category := range h.Catalogue.Categories() {
		if filter != "" && !strings.EqualFold(filter, category) {
			continue
		}

		entries := h.Catalogue.Systems(category)
		systems := make([]dto.SystemResponse, 0, len(entries))
		for _, e := range entries {
			systems = append(systems, dto.SystemResponse{
				Name:      e.Name,
				Code:      e.Code,
				Projected: e.Projected,
			})
		}
		res.Categories = append(res.Categories, dto.SystemCategoryResponse{
			Category: category,
			Systems:  systems,
		})
	}

	if filter != "" && len(res.Categories) == 0 {
		writeError(w, r, http.StatusNotFound, "unknown category")
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}
