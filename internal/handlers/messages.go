package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"celebra/internal/ai"
	applog "celebra/internal/log"
	"celebra/models"
)

type generateRequest struct {
	GuestName string `json:"guestName"`
	Occasion  string `json:"occasion"`
}

type generateResponse struct {
	Message string `json:"message"`
}

// GenerateMessage asks the message generator for a fresh celebration text.
// The generator itself guarantees a deterministic fallback on any failure, so
// this handler always answers 200 with some message.
func GenerateMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		applog.Debug(r.Context(), "rejecting malformed generate payload", "error", err)
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.GuestName) == "" {
		http.Error(w, "guest name must not be empty", http.StatusBadRequest)
		return
	}

	occasion := models.ParseOccasion(req.Occasion)
	message := generator.GenerateMessage(r.Context(), req.GuestName, occasion)
	if message == "" {
		message = ai.FallbackMessage(occasion)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(generateResponse{Message: message}); err != nil {
		applog.Error(r.Context(), "failed to encode generate response", "error", err)
	}
}
