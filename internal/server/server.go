package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-service-starter/internal/logger"
	"github.com/MKhiriev/go-service-starter/internal/settings"
)

// Server wraps the standard library HTTP server with the application's
// graceful-shutdown lifecycle.
type Server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

// NewServer builds a Server listening on the host and port from the resolved
// API settings, serving the given router.
func NewServer(router *chi.Mux, cfg settings.API, logger *logger.Logger) *Server {
	logger.Info().Msg("creating new server...")

	return &Server{
		httpServer: &http.Server{
			Addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler: router,
		},
		logger: logger,
	}
}

// RunServer serves until a stop signal arrives, then shuts down gracefully.
func (s *Server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Info().Msgf("Error running server: %v", err)
	}
}

// Shutdown stops the HTTP server, waiting for in-flight requests to finish.
func (s *Server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}

func (s *Server) run() error {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("Launching HTTP server")
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
