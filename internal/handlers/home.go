package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	applog "celebra/internal/log"
	"celebra/internal/role"
	"celebra/internal/theme"
	"celebra/internal/views/pages"
	"celebra/models"
)

// defaultMessage prefills the staff composer before the first generation.
const defaultMessage = "Wishing you a very happy birthday filled with joy, laughter, and unforgettable moments. May this year bring you all the success and happiness you deserve."

// Home serves all three surfaces, selecting by the role carried in the mode
// query parameter.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch role.Parse(r.URL.Query()) {
	case role.Staff:
		renderPage(w, r, pages.Staff(staffPageData(r)))
	case role.Display:
		renderPage(w, r, pages.Display())
	default:
		renderPage(w, r, pages.Chooser())
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(r.Context(), w); err != nil {
		applog.Error(r.Context(), "failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func staffPageData(r *http.Request) pages.StaffData {
	catalog := theme.Builtins()
	if themes != nil {
		catalog = themes.Catalog()
	}

	selectedTheme := theme.DefaultID
	selectedOccasion := models.OccasionBirthday
	if sessionManager != nil {
		if v := sessionManager.GetString(r.Context(), sessionThemeKey); v != "" {
			selectedTheme = v
		}
		if v := sessionManager.GetString(r.Context(), sessionOccasionKey); v != "" {
			selectedOccasion = models.ParseOccasion(v)
		}
	}

	return pages.StaffData{
		Catalog:          catalog,
		Occasions:        models.Occasions(),
		SelectedTheme:    theme.Resolve(selectedTheme, catalog).ID,
		SelectedOccasion: selectedOccasion,
		DefaultMessage:   defaultMessage,
	}
}
