package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/bbox-labeler/app"
	"github.com/soocke/bbox-labeler/config"
	"github.com/soocke/bbox-labeler/debug"
)

func main() {
	cfgPath := flag.String("config", "", "optional JSON config file; built-in defaults when empty")
	flag.Parse()

	cfg, cfgErr := config.Load(*cfgPath)

	// Set up logger
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(os.Stdout, level, cfg.Debug).With("run", uuid.NewString())
	if cfgErr != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, logger)
		debug.StartMemLogger(ctx, 5*time.Second, logger)
	}

	application := app.NewApp("Bounding Box Labeler", cfg, logger)
	application.Start()
}
