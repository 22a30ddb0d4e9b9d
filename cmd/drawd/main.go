// Command drawd serves draw history and on-demand generation over HTTP.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jmoreau/eurodraw/internal/api"
	"github.com/jmoreau/eurodraw/internal/config"
	"github.com/jmoreau/eurodraw/internal/persistence"
	"github.com/jmoreau/eurodraw/internal/session"
	"github.com/jmoreau/eurodraw/internal/weather"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	if cfg.AdminKey == "" {
		slog.Warn("EURODRAW_ADMIN_KEY not set, POST /api/v1/generate is disabled")
	}
	if cfg.WeatherAPIKey == "" {
		slog.Warn("OWM_API_KEY not set, weather entropy disabled")
	}

	svc := &session.Service{
		DB:      db,
		Weather: weather.NewClient(cfg.WeatherAPIKey, cfg.City, cfg.Postal),
		City:    cfg.City,
		Postal:  cfg.Postal,
		Trials:  cfg.Trials,
	}

	server := &api.Server{
		Svc:      svc,
		DB:       db,
		Port:     cfg.Port,
		AdminKey: cfg.AdminKey,
	}
	server.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	if err := server.Shutdown(5 * time.Second); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
