package handlers

import (
	"encoding/json"
	"net/http"

	applog "celebra/internal/log"
	"celebra/internal/theme"
)

// Themes refreshes the catalog and returns it as an ordered JSON list. Both
// the staff picker and the display resolve theme ids against this.
func Themes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	catalog := theme.Builtins()
	if themes != nil {
		catalog = themes.Refresh(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog); err != nil {
		applog.Error(r.Context(), "failed to encode theme catalog", "error", err)
	}
}
