// Command eurodraw generates EuroDreams picks from chaotic and
// environmental entropy and prints the draw report.
package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoreau/eurodraw/internal/config"
	"github.com/jmoreau/eurodraw/internal/persistence"
	"github.com/jmoreau/eurodraw/internal/report"
	"github.com/jmoreau/eurodraw/internal/schedule"
	"github.com/jmoreau/eurodraw/internal/session"
	"github.com/jmoreau/eurodraw/internal/weather"
)

func main() {
	history := flag.Bool("history", false, "list recent saved runs and exit")
	noSave := flag.Bool("no-save", false, "skip persisting the run")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	var db *persistence.DB
	if !*noSave || *history {
		os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
		db, err = persistence.Open(cfg.DBPath)
		if err != nil {
			slog.Error("open database", "path", cfg.DBPath, "error", err)
			os.Exit(1)
		}
		defer db.Close()
	}

	printer := report.NewPrinter(os.Stdout)

	if *history {
		runs, err := db.RecentRuns(20)
		if err != nil {
			slog.Error("list runs", "error", err)
			os.Exit(1)
		}
		printer.History(runs)
		return
	}

	svc := &session.Service{
		DB:      db,
		Weather: weather.NewClient(cfg.WeatherAPIKey, cfg.City, cfg.Postal),
		City:    cfg.City,
		Postal:  cfg.Postal,
		Trials:  cfg.Trials,
	}
	if cfg.WeatherAPIKey == "" {
		slog.Warn("OWM_API_KEY not set, weather entropy disabled")
	}

	now := time.Now()
	outcome, err := svc.Generate(now)
	if err != nil {
		slog.Error("generate", "error", err)
		os.Exit(1)
	}

	printer.Header(now, schedule.NextDraw(now), cfg.City, cfg.Postal, outcome.Conditions)
	printer.Picks(outcome.Picks)
}
