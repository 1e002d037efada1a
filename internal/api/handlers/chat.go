package handlers

import (
	"coordinate-converter-service/internal/api/dto"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"coordinate-converter-service/internal/services"
	"net/http"
	"strings"
)

type ChatHandler struct {
	Catalogue *domain.Catalogue
	Extractor ports.RequestExtractor
	Provider  ports.TransformProvider
	History   ports.ConversionHistory
}

// Chat handles one conversational turn. Failures come back as polite
// replies with status 200; the chat surface never leaks error kinds.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ChatRequest
	if !readJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, r, http.StatusBadRequest, "message is required")
		return
	}

	reply := services.RespondChat(r.Context(), req.Message, h.Catalogue, h.Extractor, h.Provider, h.History)

	writeJSON(w, r, http.StatusOK, dto.ChatResponse{
		Reply:     reply.Text,
		Converted: reply.Converted,
	})
}
