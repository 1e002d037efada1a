package api

import (
	"coordinate-converter-service/internal/api/handlers"
	"coordinate-converter-service/internal/domain"
	"coordinate-converter-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// Extractor and history may be nil; the chat surface degrades gracefully
// to the structured grammar without them.
func NewRouter(
	catalogue *domain.Catalogue,
	provider ports.TransformProvider,
	extractor ports.RequestExtractor,
	history ports.ConversionHistory,
) http.Handler {
	mux := http.NewServeMux()

	systemsHandler := &handlers.SystemsHandler{Catalogue: catalogue}
	convertHandler := &handlers.ConvertHandler{Provider: provider}
	bulkHandler := &handlers.BulkHandler{Provider: provider}
	chatHandler := &handlers.ChatHandler{
		Catalogue: catalogue,
		Extractor: extractor,
		Provider:  provider,
		History:   history,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/systems", systemsHandler.List)
	mux.HandleFunc("/convert", convertHandler.Convert)
	mux.HandleFunc("/convert/bulk", bulkHandler.Convert)
	mux.HandleFunc("/chat", chatHandler.Chat)

	return loggingMiddleware(mux)
}
