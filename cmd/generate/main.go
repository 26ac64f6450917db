// Command generate writes a static page per project in data/projects.json.
// It takes no arguments; paths come from site.yml and SITE_* variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"delizur.dev/internal/config"
	"delizur.dev/internal/logging"
	"delizur.dev/internal/pages"
	"delizur.dev/internal/services"
)

func main() {
	os.Exit(run(config.DefaultFile, os.Stderr))
}

// run generates every page and returns the process exit code
func run(cfgPath string, stderr io.Writer) int {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	projects, err := services.LoadProjects(cfg.DataPath)
	if errors.Is(err, services.ErrDataNotFound) {
		fmt.Fprintln(stderr, "Data file not found:", cfg.DataPath)
		return 1
	}
	if err != nil {
		logger.Error("loading projects", zap.Error(err))
		return 1
	}

	gen, err := pages.NewGenerator(cfg.OutputDir, cfg.SiteName, cfg.Workers, logger)
	if err != nil {
		logger.Error("creating generator", zap.Error(err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	written, err := gen.Generate(ctx, projects)
	if err != nil {
		logger.Error("generating pages", zap.Error(err))
		return 1
	}

	logger.Info("done", zap.Int("pages", len(written)), zap.String("output_dir", cfg.OutputDir))
	return 0
}
