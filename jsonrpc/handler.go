package jsonrpc

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/mark3labs/mcp-go/server"
)

// NewHandlerWithHealth serves the SSE transport of s next to a /health probe.
// baseURL is the externally reachable address clients post messages to.
func NewHandlerWithHealth(s *server.MCPServer, baseURL string, logger *slog.Logger) http.Handler {
	sseServer := server.NewSSEServer(s, server.WithBaseURL(baseURL))

	router := mux.NewRouter()
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			logger.Warn("failed to write health response", "err", err)
		}
	}).Methods(http.MethodGet)
	router.PathPrefix("/").Handler(sseServer)

	return newRecoveryHandler(logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithCancel(r.Context())
			defer cancel()

			router.ServeHTTP(w, r.WithContext(ctx))
		}),
	)
}
