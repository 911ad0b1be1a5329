package http

import (
	"time"

	"github.com/MKhiriev/go-service-starter/internal/logger"
	"github.com/MKhiriev/go-service-starter/internal/settings"
)

// Handler carries the dependencies shared by all HTTP handlers: the resolved
// process settings and the application logger.
type Handler struct {
	settings *settings.Settings
	logger   *logger.Logger

	startTime time.Time
}

// NewHandler constructs the HTTP handler set. The settings value is the
// shared immutable instance obtained from the settings accessor; handlers
// never mutate it.
func NewHandler(s *settings.Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		settings:  s,
		logger:    logger,
		startTime: time.Now(),
	}
}
