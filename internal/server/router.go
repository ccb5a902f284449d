package server

import (
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"celebra/internal/handlers"
)

func newRouter(sessionManager *scs.SessionManager, cfg Config) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/api/themes", handlers.Themes)
	mux.HandleFunc("/api/celebrations", handlers.PublishCelebration)
	mux.HandleFunc("/api/celebrations/reset", handlers.ResetCelebration)
	mux.HandleFunc("/api/messages/generate", handlers.GenerateMessage)
	mux.HandleFunc("/", handlers.Home)

	backgroundsDir := cfg.BackgroundsDir
	if strings.TrimSpace(backgroundsDir) == "" {
		backgroundsDir = "web/backgrounds"
	}
	staticDir := cfg.StaticDir
	if strings.TrimSpace(staticDir) == "" {
		staticDir = "web/static"
	}
	// The backgrounds file server doubles as the discovery probe target; a
	// missing file must 404, never fall through to an index document.
	mux.Handle("/backgrounds/", http.StripPrefix("/backgrounds/", http.FileServer(http.Dir(backgroundsDir))))
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(staticDir))))

	// The SSE stream bypasses the session middleware: its response writer
	// must stay flushable for the lifetime of the subscription.
	root := http.NewServeMux()
	root.HandleFunc("/api/celebrations/stream", handlers.Stream)
	root.Handle("/", sessionManager.LoadAndSave(mux))
	return root
}
