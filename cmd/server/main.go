// Package main - Entry point for the event-economics HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"event-economics/api"
	"event-economics/internal/config"
	"event-economics/internal/logging"
)

const version = "1.0.0"

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Config file (.json or .hcl)")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("logging config rejected, keeping defaults", zap.Error(err))
	}
	defer logging.Sync()

	srv, err := api.NewServer(version, cfg, logging.With(zap.String("component", "api")))
	if err != nil {
		logging.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("event-economics server starting",
		zap.String("version", version),
		zap.String("config", *configPath),
	)
	if err := srv.Run(ctx, *addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
		stop()
		logging.Sync()
		os.Exit(1)
	}
	logging.Info("server stopped")
}
