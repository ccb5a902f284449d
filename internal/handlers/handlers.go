package handlers

import (
	"github.com/alexedwards/scs/v2"

	"celebra/internal/ai"
	"celebra/internal/mailbox"
	"celebra/internal/theme"
)

const (
	sessionThemeKey    = "staff:theme"
	sessionOccasionKey = "staff:occasion"
)

var (
	sessionManager *scs.SessionManager
	store          mailbox.Store
	themes         *theme.Resolver
	generator      *ai.Client
)

// Configure installs the shared dependencies used by the HTTP handlers.
func Configure(sm *scs.SessionManager, s mailbox.Store, t *theme.Resolver, g *ai.Client) {
	sessionManager = sm
	store = s
	themes = t
	generator = g
}
