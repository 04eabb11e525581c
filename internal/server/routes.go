package server

import (
	"net/http"
)

func (s *Server) RegisterRoutes() http.Handler {
	mux := http.NewServeMux()

	// Register routes
	mux.HandleFunc("GET /{$}", s.homeHandler)
	mux.HandleFunc("GET /transcript", s.transcriptHandler)
	mux.HandleFunc("GET /api/v1/youtube/transcript", s.apiTranscriptHandler)
	mux.HandleFunc("GET /docs/{$}", s.docsHandler)
	mux.HandleFunc("GET /health/{$}", s.healthHandler)

	// Chain middlwares that apply to all requests
	handler := s.applyToAll(s.recoverPanic, s.securityHeaders)(mux)

	return handler
}
