package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"rcwebui/internal/api"
	"rcwebui/internal/config"
	"rcwebui/internal/logging"
	"rcwebui/internal/settings"
	"rcwebui/pkg/rclone"

	"github.com/gorilla/mux"
)

var version = "dev"

func main() {
	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := getConfigPath()
	if configPath == "" {
		return fmt.Errorf("no configuration file found, set RCWEBUI_CONFIG")
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	watchDone := watchLogging(ctx, cfg)
	defer func() {
		cancel()
		<-watchDone
	}()

	slog.Info("configuration loaded", "config_path", configPath)

	store, err := settings.New(cfg.GetSettings().Path)
	if err != nil {
		return fmt.Errorf("failed to initialize settings store: %w", err)
	}
	defer store.Close()

	slog.Info("settings store initialized", "path", cfg.GetSettings().Path)

	// A stored login wins over the rc section of the config file.
	endpoint := rclone.ChainEndpoints(store, cfg)
	rcClient := rclone.NewClient(endpoint, rclone.WithTimeout(cfg.GetRC().Timeout))

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := rcClient.Ping(pingCtx); err != nil {
		slog.Warn("rclone daemon not reachable at startup", "error", err)
	} else {
		slog.Info("rclone daemon reachable")
	}
	pingCancel()

	api.Version = version

	router := mux.NewRouter()
	serverConfig := cfg.GetServer()
	handlers := api.NewHandlers(rcClient, store, endpoint, serverConfig.WebDir)
	handlers.SetDataDir(filepath.Dir(cfg.GetSettings().Path))
	handlers.RegisterRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.GetRC().Timeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", server.Addr, "web_dir", serverConfig.WebDir)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		slog.Info("shutdown signal received, initiating graceful shutdown")
	case err := <-serverErr:
		return fmt.Errorf("HTTP server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("shutdown completed")
	return nil
}

func getConfigPath() string {
	if configPath := os.Getenv("RCWEBUI_CONFIG"); configPath != "" {
		return configPath
	}

	candidates := []string{
		"/config/config.yaml",
		"./config.yaml",
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// watchLogging installs the configured logger and replaces it whenever the
// config file changes. The returned channel is closed once the current log
// file has been released after ctx ends.
func watchLogging(ctx context.Context, cfg *config.Config) <-chan struct{} {
	done := make(chan struct{})
	closer := setupLogging(cfg.GetLogging())
	configChanges := cfg.WatchForChanges()

	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				closer.Close()
				return
			case <-configChanges:
				slog.Info("configuration changed, updating logging")
				previous := closer
				closer = setupLogging(cfg.GetLogging())
				previous.Close()
			}
		}
	}()
	return done
}

func setupLogging(logConfig config.LoggingConfig) io.Closer {
	logger, closer := logging.New(logConfig, os.Stdout)
	slog.SetDefault(logger)
	return closer
}
