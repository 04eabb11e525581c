package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/vlatan/transcript-api/internal/config"
	"github.com/vlatan/transcript-api/internal/integrations/yt"
	"github.com/vlatan/transcript-api/internal/transcripts"
)

type Server struct {
	config      *config.Config
	transcripts *transcripts.Service
	started     time.Time

	HttpServer *http.Server
}

// New creates a server around an already built transcripts service
func New(cfg *config.Config, transcripts *transcripts.Service) *Server {

	s := &Server{
		config:      cfg,
		transcripts: transcripts,
		started:     time.Now(),
		HttpServer: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}

	s.HttpServer.Handler = s.RegisterRoutes()
	return s
}

// Create new HTTP server wired to the live caption provider
func NewServer() *Server {

	// Init config
	cfg := config.New()

	// Create YouTube service
	yt, err := yt.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("couldn't create YouTube service: %v", err)
	}

	// Create transcripts service on top of it
	return New(cfg, transcripts.New(cfg, yt))
}
