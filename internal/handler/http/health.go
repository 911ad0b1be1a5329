package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-service-starter/internal/logger"
)

// health reports process liveness together with the resolved application
// identity, so operators can confirm which configuration a process runs with.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	payload := map[string]any{
		"status":   "ok",
		"app_name": h.settings.AppName,
		"debug":    h.settings.Debug,
		"uptime":   time.Since(h.startTime).Seconds(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Msg("error writing health response")
	}
}
