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
		fmt.Fprintf(os.Stderr, "healthcheck failed: %v\n", err)
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

	logger.InfoObj("healthcheck starting", "config", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checker, err := app.NewChecker(ctx, cfg, logger.Shared())
	if err != nil {
		logger.ErrorObj("failed to initialize checker", "error", err)
		return err
	}

	if err := checker.Run(ctx); err != nil {
		return fmt.Errorf("healthcheck run: %w", err)
	}

	return nil
}
