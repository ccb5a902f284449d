package handlers

import (
	"encoding/json"
	"net/http"

	applog "celebra/internal/log"
	"celebra/models"
)

type publishResponse struct {
	Status string `json:"status"`
}

// PublishCelebration accepts the staff submission and hands it to the
// mailbox. Validation failures never reach the store; store failures are
// logged, not surfaced, because connected displays were already notified by
// the store's local fan-out.
func PublishCelebration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var record models.Celebration
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		applog.Debug(r.Context(), "rejecting malformed celebration payload", "error", err)
		http.Error(w, "invalid celebration payload", http.StatusBadRequest)
		return
	}
	record.Occasion = models.ParseOccasion(string(record.Occasion))

	if err := record.Validate(); err != nil {
		applog.Debug(r.Context(), "rejecting invalid celebration", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if store == nil {
		applog.Info(r.Context(), "mailbox not configured; celebration dropped")
	} else if err := store.Publish(r.Context(), record); err != nil {
		applog.Error(r.Context(), "failed to publish celebration", "error", err)
	}

	rememberPreferences(r, record)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(publishResponse{Status: "sent"}); err != nil {
		applog.Error(r.Context(), "failed to encode publish response", "error", err)
	}
}

// ResetCelebration returns every display to standby. The confirmation gate
// lives in the staff UI; by the time the request arrives it is deliberate.
func ResetCelebration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if store == nil {
		applog.Info(r.Context(), "mailbox not configured; reset dropped")
	} else if err := store.Reset(r.Context()); err != nil {
		applog.Error(r.Context(), "failed to reset celebration", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	if err := json.NewEncoder(w).Encode(publishResponse{Status: "standby"}); err != nil {
		applog.Error(r.Context(), "failed to encode reset response", "error", err)
	}
}
