// Package server exposes the lead pipeline over a small JSON HTTP API used by
// the internal web UI.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/leadscout/leadscout/internal/hubspot"
	"github.com/leadscout/leadscout/internal/leadgen"
	"github.com/leadscout/leadscout/internal/profile"
)

// Runner executes one search request end to end.
type Runner interface {
	Run(ctx context.Context, query string) (*leadgen.Result, error)
}

// Upserter pushes a selected profile into the CRM.
type Upserter interface {
	UpsertProfile(ctx context.Context, p *profile.Profile) (*hubspot.Contact, bool, error)
}

type Server struct {
	httpServer *http.Server
	pipeline   Runner
	crm        Upserter
	logger     *zap.Logger
}

type Config struct {
	Port int
}

// New creates the server. crm may be nil when HubSpot is not configured; the
// sync endpoint then reports the feature as unavailable.
func New(cfg Config, pipeline Runner, crm Upserter, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		pipeline: pipeline,
		crm:      crm,
		logger:   logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/search", s.handleSearch)
	mux.HandleFunc("POST /api/export", s.handleExport)
	mux.HandleFunc("POST /api/sync", s.handleSync)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the route table for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until the context is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func (s *Server) errorResponse(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Error: message}); err != nil {
		s.logger.Warn("writing error response", zap.Error(err))
	}
}

func (s *Server) jsonResponse(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("writing response", zap.Error(err))
	}
}
