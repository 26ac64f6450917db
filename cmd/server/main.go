// Command server serves the site directory for local development, with
// byte-range support so embedded videos can seek.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"delizur.dev/internal/config"
	"delizur.dev/internal/handlers"
	"delizur.dev/internal/logging"
	"delizur.dev/internal/models"
	"delizur.dev/internal/services"
)

func main() {
	cfg, err := config.Load(config.DefaultFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	projects, err := services.LoadProjects(cfg.DataPath)
	if err != nil {
		// The site is still worth serving without the API data
		logger.Warn("project data unavailable", zap.Error(err))
		projects = []models.Project{}
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, projects, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server running", zap.String("addr", cfg.ServerAddr), zap.String("root", cfg.SiteRoot))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}
