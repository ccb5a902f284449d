package theme

// Theme describes one selectable backdrop for the display screen.
type Theme struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PreviewURL    string `json:"previewUrl"`
	BackgroundURL string `json:"backgroundUrl"`
	OverlayColor  string `json:"overlayColor"`
}

// DefaultID is the theme preselected on the staff form.
const DefaultID = "golden-lights"

// builtins are always available, defined once and immutable. Discovered local
// themes are appended after them by the Resolver.
var builtins = []Theme{
	{
		ID:            "elegant-dark",
		Name:          "Elegant Dark",
		PreviewURL:    "https://images.unsplash.com/photo-1534796636912-3b95b3ab5986?q=80&w=400&auto=format&fit=crop",
		BackgroundURL: "https://images.unsplash.com/photo-1534796636912-3b95b3ab5986?q=80&w=2342&auto=format&fit=crop",
		OverlayColor:  "bg-background-dark/90",
	},
	{
		ID:            "golden-lights",
		Name:          "Golden Lights",
		PreviewURL:    "https://images.unsplash.com/photo-1566737236500-c8ac43014a67?q=80&w=400&auto=format&fit=crop",
		BackgroundURL: "https://images.unsplash.com/photo-1566737236500-c8ac43014a67?q=80&w=2574&auto=format&fit=crop",
		OverlayColor:  "bg-black/60",
	},
	{
		ID:            "colorful-balloons",
		Name:          "Balloons",
		PreviewURL:    "https://images.unsplash.com/photo-1507608616759-54f48f0af0ee?q=80&w=400&auto=format&fit=crop",
		BackgroundURL: "https://images.unsplash.com/photo-1507608616759-54f48f0af0ee?q=80&w=2574&auto=format&fit=crop",
		OverlayColor:  "bg-black/40",
	},
	{
		ID:            "pink-flowers",
		Name:          "Floral",
		PreviewURL:    "https://images.unsplash.com/photo-1490750967868-88aa4486c946?q=80&w=400&auto=format&fit=crop",
		BackgroundURL: "https://images.unsplash.com/photo-1490750967868-88aa4486c946?q=80&w=2574&auto=format&fit=crop",
		OverlayColor:  "bg-black/50",
	},
	{
		ID:            "neon-party",
		Name:          "Neon Party",
		PreviewURL:    "https://images.unsplash.com/photo-1495058489687-00439542a781?q=80&w=400&auto=format&fit=crop",
		BackgroundURL: "https://images.unsplash.com/photo-1495058489687-00439542a781?q=80&w=2670&auto=format&fit=crop",
		OverlayColor:  "bg-indigo-950/80",
	},
}

// Builtins returns a copy of the immutable built-in theme list.
func Builtins() []Theme {
	return append([]Theme(nil), builtins...)
}

// Resolve returns the catalog entry matching id. A miss falls back to the
// catalog's first entry rather than erroring, so a stale theme reference in a
// celebration record never breaks the display. The catalog must be non-empty;
// catalogs produced by the Resolver always contain the built-ins.
func Resolve(id string, catalog []Theme) Theme {
	for _, t := range catalog {
		if t.ID == id {
			return t
		}
	}
	return catalog[0]
}
