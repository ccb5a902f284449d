package handlers

import (
	"net/http"

	applog "celebra/internal/log"
	"celebra/models"
)

// rememberPreferences stores the staff device's last theme and occasion in
// its session, so the form reopens the way it was left. Not authentication,
// just convenience.
func rememberPreferences(r *http.Request, record models.Celebration) {
	if sessionManager == nil {
		applog.Debug(r.Context(), "session manager not configured; skipping preference persistence")
		return
	}
	sessionManager.Put(r.Context(), sessionThemeKey, record.ThemeID)
	sessionManager.Put(r.Context(), sessionOccasionKey, string(record.Occasion))
}
