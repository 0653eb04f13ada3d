package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/ramodel/internal/config"
	"github.com/specialistvlad/ramodel/internal/ctxlog"
	"github.com/specialistvlad/ramodel/internal/metrics"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	study      *config.Study
	metrics    *metrics.Metrics
	httpServer *http.Server
}

// NewApp is the constructor for the main application. Logs go to logW and
// the report to outW. A study that fails to load is a fatal startup error and
// panics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	study, err := loader.Load(ctx, cfg.StudyPath)
	if err != nil {
		panic(fmt.Errorf("failed to load study: %w", err))
	}
	logger.Debug("Study loaded and translated into unified model.",
		"variables", len(study.Variables),
		"models", len(study.Models),
	)

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		study:   study,
		metrics: metrics.New(),
	}
}

// Metrics returns the application's metrics. This is primarily for testing.
func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}
