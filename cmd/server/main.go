package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"celebra/internal/ai"
	"celebra/internal/config"
	"celebra/internal/discovery"
	applog "celebra/internal/log"
	"celebra/internal/mailbox"
	"celebra/internal/server"
	"celebra/internal/theme"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		applog.Error(ctx, "invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		applog.Error(ctx, "invalid log level", "error", err)
		os.Exit(1)
	}

	store := mailbox.Open(ctx, cfg.Store)
	defer store.Close()

	scanner := discovery.NewScanner(discovery.Config{
		BaseURL:      probeBaseURL(cfg),
		PublicPath:   cfg.Discovery.PublicPath,
		MaxIndex:     cfg.Discovery.MaxIndex,
		ProbeTimeout: cfg.Discovery.ProbeTimeout,
	})
	resolver := theme.NewResolver(scanner)
	generator := ai.NewClient(ai.Config{
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		BaseURL: cfg.AI.BaseURL,
		Timeout: cfg.AI.Timeout,
	})

	srv, err := server.New(server.Config{
		Addr:           cfg.Server.Addr,
		Session:        cfg.Session,
		Store:          store,
		Themes:         resolver,
		Generator:      generator,
		BackgroundsDir: cfg.Discovery.Dir,
	})
	if err != nil {
		applog.Error(ctx, "failed to build server", "error", err)
		os.Exit(1)
	}

	go func() {
		applog.Info(ctx, "starting http server", "addr", cfg.Server.Addr)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			applog.Error(ctx, "server encountered an error", "error", err)
			os.Exit(1)
		}
	}()

	// Warm the catalog once the listener is accepting; a failed warm-up is
	// harmless, the staff page refreshes on every load.
	go func() {
		catalog := resolver.Refresh(ctx)
		applog.Info(ctx, "theme catalog warmed", "themes", len(catalog))
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	applog.Info(ctx, "shutting down http server")
	if err := srv.Stop(); err != nil {
		applog.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// probeBaseURL decides where the discovery prober points. Without explicit
// configuration it probes this server's own backgrounds mount, which serves
// real content types and 404s missing files, exactly what probing needs.
func probeBaseURL(cfg config.Config) string {
	if strings.TrimSpace(cfg.Discovery.BaseURL) != "" {
		return cfg.Discovery.BaseURL
	}

	addr := cfg.Server.Addr
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	return "http://" + addr + cfg.Discovery.PublicPath
}
