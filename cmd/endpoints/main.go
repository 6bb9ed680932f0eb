package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/o-ran-sc/oransdk-go/internal/app"
	"github.com/o-ran-sc/oransdk-go/internal/config"
	"github.com/o-ran-sc/oransdk-go/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "endpoints failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	endpoints, err := app.NewEndpoints(cfg, logger.Shared())
	if err != nil {
		logger.ErrorObj("failed to initialize endpoints runtime", "error", err)
		return err
	}

	if err := endpoints.Run(ctx, os.Stdout); err != nil {
		return fmt.Errorf("endpoints run: %w", err)
	}

	return nil
}
