package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	applog "celebra/internal/log"
	"celebra/models"
)

// Stream is the display subscription: a Server-Sent Events feed whose first
// event is the current mailbox state (an explicit null when nothing was ever
// written) and which then carries every subsequent change. The subscription
// lives exactly as long as the request; the deferred unsubscribe runs when
// the display navigates away or drops the connection.
func Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	if store == nil {
		http.Error(w, "mailbox not configured", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Buffered so the store callback never blocks; a slow display only ever
	// needs the latest value, so on overflow the oldest update is dropped.
	updates := make(chan *models.State, 8)
	unsubscribe := store.Subscribe(func(state *models.State) {
		for {
			select {
			case updates <- state:
				return
			default:
				select {
				case <-updates:
				default:
				}
			}
		}
	})
	defer unsubscribe()

	applog.Debug(r.Context(), "display subscribed")
	defer applog.Debug(r.Context(), "display unsubscribed")

	for {
		select {
		case <-r.Context().Done():
			return
		case state := <-updates:
			payload, err := json.Marshal(state)
			if err != nil {
				applog.Error(r.Context(), "failed to encode mailbox state", "error", err)
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
