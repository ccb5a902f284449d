package theme

import (
	"context"
	"sync"

	applog "celebra/internal/log"
)

// Scanner discovers locally-hosted themes. Implemented by discovery.Scanner.
type Scanner interface {
	Scan(ctx context.Context) []Theme
}

// Resolver merges the built-in theme list with whatever the scanner currently
// finds. Each Refresh replaces the discovered set wholesale; there is no
// incremental merge.
type Resolver struct {
	scanner Scanner

	mu      sync.RWMutex
	catalog []Theme
}

// NewResolver builds a Resolver. A nil scanner is allowed and yields a catalog
// of built-ins only.
func NewResolver(scanner Scanner) *Resolver {
	return &Resolver{
		scanner: scanner,
		catalog: Builtins(),
	}
}

// Refresh rescans local assets and swaps in the resulting catalog. It is safe
// to call repeatedly; concurrent calls are not coordinated, callers observe
// whichever call completed last. The returned catalog is never empty.
func (r *Resolver) Refresh(ctx context.Context) []Theme {
	catalog := Builtins()
	if r.scanner != nil {
		discovered := r.scanner.Scan(ctx)
		catalog = append(catalog, discovered...)
		applog.Debug(ctx, "theme catalog refreshed", "builtin", len(builtins), "discovered", len(discovered))
	}

	r.mu.Lock()
	r.catalog = catalog
	r.mu.Unlock()

	return append([]Theme(nil), catalog...)
}

// Catalog returns a copy of the most recently refreshed catalog, or the
// built-ins when Refresh has never completed.
func (r *Resolver) Catalog() []Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Theme(nil), r.catalog...)
}
