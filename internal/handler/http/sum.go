package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-service-starter/internal/logger"
)

type sumRequest struct {
	Num1 int `json:"num_1"`
	Num2 int `json:"num_2"`
}

type sumResponse struct {
	Message string `json:"message"`
}

// sum is the placeholder API endpoint: it adds the two numbers from the
// request payload and reports the result.
func (h *Handler) sum(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var payload sumRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	response := sumResponse{
		Message: fmt.Sprintf("the sum is %d", payload.Num1+payload.Num2),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Err(err).Msg("error writing sum response")
	}
}
