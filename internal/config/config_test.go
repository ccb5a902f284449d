package config

import (
	"testing"
	"time"
)

func TestFirstNonEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"all empty", []string{"", "   "}, ""},
		{"first non empty", []string{"foo", "bar"}, "foo"},
		{"skips whitespace", []string{"   ", "bar"}, "bar"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := firstNonEmpty(tt.values...); got != tt.want {
				t.Fatalf("firstNonEmpty(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestParseIntWithDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{"blank returns default", "", 7, 7},
		{"invalid returns default", "abc", 3, 3},
		{"valid parses value", "42", 0, 42},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parseIntWithDefault(tt.value, tt.def); got != tt.want {
				t.Fatalf("parseIntWithDefault(%q, %d) = %d, want %d", tt.value, tt.def, got, tt.want)
			}
		})
	}
}

func TestParseDurationWithDefault(t *testing.T) {
	t.Parallel()

	def := 5 * time.Second
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"blank returns default", "", def},
		{"invalid returns default", "nonsense", def},
		{"valid parses", "2m", 2 * time.Minute},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parseDurationWithDefault(tt.value, def); got != tt.want {
				t.Fatalf("parseDurationWithDefault(%q) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestParseBoolWithDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{"blank returns default", "", true, true},
		{"invalid returns default", "nope", false, false},
		{"valid parses", "true", false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := parseBoolWithDefault(tt.value, tt.def); got != tt.want {
				t.Fatalf("parseBoolWithDefault(%q, %t) = %t, want %t", tt.value, tt.def, got, tt.want)
			}
		})
	}
}

func TestLoadUsesEnvironmentDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("ADDR", "")
	t.Setenv("STORE_BACKEND", "database")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("DATABASE_USE_MOCK", "true")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("BACKGROUNDS_BASE_URL", "http://127.0.0.1:8080/backgrounds")
	t.Setenv("BACKGROUNDS_MAX_INDEX", "25")
	t.Setenv("BACKGROUNDS_PROBE_TIMEOUT", "1s")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SESSION_LIFETIME", "45m")
	t.Setenv("SESSION_COOKIE_NAME", "custom_session")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Store.Backend != "database" {
		t.Fatalf("Store.Backend = %q", cfg.Store.Backend)
	}
	if cfg.Store.Database.URL != "postgres://example" {
		t.Fatalf("Store.Database.URL = %q", cfg.Store.Database.URL)
	}
	if !cfg.Store.Database.UseMock {
		t.Fatalf("Store.Database.UseMock = %t, want true", cfg.Store.Database.UseMock)
	}
	if cfg.Store.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("Store.Redis.URL = %q", cfg.Store.Redis.URL)
	}
	if cfg.Discovery.BaseURL != "http://127.0.0.1:8080/backgrounds" {
		t.Fatalf("Discovery.BaseURL = %q", cfg.Discovery.BaseURL)
	}
	if cfg.Discovery.MaxIndex != 25 {
		t.Fatalf("Discovery.MaxIndex = %d", cfg.Discovery.MaxIndex)
	}
	if cfg.Discovery.ProbeTimeout != time.Second {
		t.Fatalf("Discovery.ProbeTimeout = %s", cfg.Discovery.ProbeTimeout)
	}
	if cfg.AI.APIKey != "sk-test" {
		t.Fatalf("AI.APIKey = %q", cfg.AI.APIKey)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("Logging.Level = %q", cfg.Logging.Level)
	}
	if cfg.Session.Lifetime != 45*time.Minute {
		t.Fatalf("Session.Lifetime = %s", cfg.Session.Lifetime)
	}
	if cfg.Session.CookieName != "custom_session" {
		t.Fatalf("Session.CookieName = %q", cfg.Session.CookieName)
	}
}

func TestLoadPrefersServerAddr(t *testing.T) {
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("Server.Addr = %q, want %q", cfg.Server.Addr, "127.0.0.1:9000")
	}
}

func TestLoadRejectsNonPositiveMaxIndex(t *testing.T) {
	t.Setenv("BACKGROUNDS_MAX_INDEX", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-positive max index")
	}
}
