package app

import (
	"context"
	"fmt"
	"time"

	"github.com/o-ran-sc/oransdk-go/internal/config"
	"github.com/o-ran-sc/oransdk-go/internal/logger"
	"github.com/o-ran-sc/oransdk-go/pkg/checks"
	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Checker represents the healthcheck runtime. It resolves the deployment
// settings through the configured resolver, builds the configured checks,
// and executes sweeps across them.
type Checker struct {
	cfg           *config.Config
	runner        *checks.Runner
	sweepInterval time.Duration
	log           logger.Logger
}

// NewChecker builds a checker runtime from config files and the live
// cluster.
func NewChecker(ctx context.Context, cfg *config.Config, log logger.Logger) (*Checker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	resolver, err := NewResolver(cfg)
	if err != nil {
		return nil, fmt.Errorf("build resolver: %w", err)
	}

	sets, err := settings.Load(ctx, resolver)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	log.InfoObj("settings loaded", "endpoints", sets.Endpoints())

	checkReg, err := checks.LoadRegistry(cfg.ChecksFile)
	if err != nil {
		return nil, fmt.Errorf("load checks registry: %w", err)
	}

	enabledChecks := checkReg.Enabled()
	if len(enabledChecks) == 0 {
		return nil, fmt.Errorf("no checks configured")
	}

	env := checks.Env{
		Settings: sets,
		Sender:   httpclient.NewRestyClient(cfg.HTTPTimeout, log),
		ODUNode:  cfg.ODUNode,
		ORUNode:  cfg.ORUNode,
	}

	built, err := checks.BuildAll(checks.DefaultRegistry(), enabledChecks, env)
	if err != nil {
		return nil, fmt.Errorf("build checks: %w", err)
	}

	checkSummaries := make([]map[string]string, 0, len(enabledChecks))
	for _, checkCfg := range enabledChecks {
		checkSummaries = append(checkSummaries, map[string]string{
			"id":   checkCfg.ID,
			"type": checkCfg.Type,
		})
	}
	log.InfoObj("checks registry loaded", "checks_meta", map[string]any{
		"count":  len(checkSummaries),
		"checks": checkSummaries,
	})

	return &Checker{
		cfg:           cfg,
		runner:        checks.NewRunner(built, log),
		sweepInterval: cfg.CheckInterval,
		log:           log,
	}, nil
}

// Run executes healthcheck sweeps. Without a sweep interval a single
// sweep runs and its verdict is returned; with one, sweeps repeat until
// the context is cancelled.
func (c *Checker) Run(ctx context.Context) error {
	if c == nil || c.runner == nil {
		return fmt.Errorf("checker is not initialized")
	}

	c.log.InfoObj("checker starting", "checker_state", map[string]any{
		"checks_count":   c.runner.Size(),
		"sweep_interval": c.sweepInterval.String(),
	})

	if c.sweepInterval <= 0 {
		return c.runOnce(ctx)
	}

	if err := c.runOnce(ctx); err != nil {
		c.log.ErrorObj("initial sweep failed", "error", err)
	}

	ticker := time.NewTicker(c.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.log.InfoObj("checker exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := c.runOnce(ctx); err != nil {
				c.log.ErrorObj("scheduled sweep failed", "error", err)
			}
		}
	}
}

// runOnce performs a single sweep across all configured checks.
func (c *Checker) runOnce(ctx context.Context) error {
	start := time.Now()
	c.log.InfoObj("sweep started", "sweep_meta", map[string]any{
		"checks_count": c.runner.Size(),
		"started_at":   start.UTC(),
	})
	passed, err := c.runner.Run(ctx)
	if err != nil {
		return err
	}
	c.log.InfoObj("sweep completed", "sweep_meta", map[string]any{
		"passed":     passed,
		"elapsed_ms": time.Since(start).Milliseconds(),
	})
	return nil
}
