package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the application.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Discovery DiscoveryConfig
	AI        AIConfig
	Logging   LoggingConfig
	Session   SessionConfig
}

// ServerConfig configures the HTTP server runtime behavior.
type ServerConfig struct {
	Addr string
}

// StoreConfig selects the mailbox backend and its connection settings.
type StoreConfig struct {
	Backend  string
	Database DatabaseConfig
	Redis    RedisConfig
}

// DatabaseConfig contains the database connection settings.
type DatabaseConfig struct {
	URL             string
	UseMock         bool
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig contains the redis connection settings.
type RedisConfig struct {
	URL string
}

// DiscoveryConfig controls local background discovery.
type DiscoveryConfig struct {
	// BaseURL is the absolute URL the prober scans. Empty means "derive
	// from the server address at startup".
	BaseURL string
	// PublicPath is the browser-facing prefix written into themes.
	PublicPath string
	// Dir is the filesystem directory served at PublicPath.
	Dir          string
	MaxIndex     int
	ProbeTimeout time.Duration
}

// AIConfig configures the generated-message service.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LoggingConfig controls the global logger.
type LoggingConfig struct {
	Level string
}

// SessionConfig controls the staff-form preference session.
type SessionConfig struct {
	Lifetime     time.Duration
	CookieName   string
	CookieDomain string
	CookieSecure bool
}

// Load inspects the environment and builds a Config value.
func Load() (Config, error) {
	cfg := Config{}

	cfg.Server = ServerConfig{
		Addr: firstNonEmpty(
			os.Getenv("SERVER_ADDR"),
			os.Getenv("ADDR"),
			":8080",
		),
	}

	cfg.Store = StoreConfig{
		Backend: firstNonEmpty(os.Getenv("STORE_BACKEND"), "memory"),
		Database: DatabaseConfig{
			URL: firstNonEmpty(
				os.Getenv("DATABASE_URL"),
				os.Getenv("DB_URL"),
				"",
			),
			UseMock:         parseBoolWithDefault(os.Getenv("DATABASE_USE_MOCK"), false),
			MaxIdleConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_IDLE_CONNS"), 0),
			MaxOpenConns:    parseIntWithDefault(os.Getenv("DATABASE_MAX_OPEN_CONNS"), 0),
			ConnMaxLifetime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_LIFETIME"), 0),
			ConnMaxIdleTime: parseDurationWithDefault(os.Getenv("DATABASE_CONN_MAX_IDLE_TIME"), 0),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	cfg.Discovery = DiscoveryConfig{
		BaseURL:      os.Getenv("BACKGROUNDS_BASE_URL"),
		PublicPath:   firstNonEmpty(os.Getenv("BACKGROUNDS_PUBLIC_PATH"), "/backgrounds"),
		Dir:          firstNonEmpty(os.Getenv("BACKGROUNDS_DIR"), "web/backgrounds"),
		MaxIndex:     parseIntWithDefault(os.Getenv("BACKGROUNDS_MAX_INDEX"), 50),
		ProbeTimeout: parseDurationWithDefault(os.Getenv("BACKGROUNDS_PROBE_TIMEOUT"), 3*time.Second),
	}

	cfg.AI = AIConfig{
		APIKey:  firstNonEmpty(os.Getenv("OPENAI_API_KEY"), os.Getenv("API_KEY")),
		Model:   os.Getenv("OPENAI_MODEL"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
		Timeout: parseDurationWithDefault(os.Getenv("OPENAI_TIMEOUT"), 0),
	}

	cfg.Logging = LoggingConfig{
		Level: firstNonEmpty(os.Getenv("LOG_LEVEL"), "info"),
	}

	cfg.Session = SessionConfig{
		Lifetime:     parseDurationWithDefault(os.Getenv("SESSION_LIFETIME"), 12*time.Hour),
		CookieName:   firstNonEmpty(os.Getenv("SESSION_COOKIE_NAME"), "celebra_session"),
		CookieDomain: os.Getenv("SESSION_COOKIE_DOMAIN"),
		CookieSecure: parseBoolWithDefault(os.Getenv("SESSION_COOKIE_SECURE"), false),
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		return Config{}, fmt.Errorf("server address must not be empty")
	}
	if cfg.Discovery.MaxIndex <= 0 {
		return Config{}, fmt.Errorf("backgrounds max index must be positive")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func parseIntWithDefault(value string, def int) int {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseDurationWithDefault(value string, def time.Duration) time.Duration {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := time.ParseDuration(trimmed)
	if err != nil {
		return def
	}
	return parsed
}

func parseBoolWithDefault(value string, def bool) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return def
	}
	return parsed
}
