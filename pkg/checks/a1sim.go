package checks

import (
	"context"
	"fmt"
	"strings"

	"github.com/o-ran-sc/oransdk-go/pkg/a1sim"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

type a1SimCheck struct {
	id       string
	instance string
	client   *a1sim.Client
}

func newA1SimCheck(cfg CheckConfig, env Env) (Check, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	if cfg.A1Sim == nil {
		return nil, fmt.Errorf("a1sim config required for check %q", cfg.ID)
	}

	baseURL, err := a1SimURL(env.Settings, cfg.A1Sim.Instance)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", cfg.ID, err)
	}

	return &a1SimCheck{
		id:       cfg.ID,
		instance: cfg.A1Sim.Instance,
		client:   a1sim.NewClient(baseURL, env.Sender),
	}, nil
}

func a1SimURL(s *settings.Settings, instance string) (string, error) {
	switch instance {
	case A1InstanceOSC:
		return s.A1SimOscURL, nil
	case A1InstanceStd1:
		return s.A1SimStd1URL, nil
	case A1InstanceStd2:
		return s.A1SimStd2URL, nil
	}
	return "", fmt.Errorf("unknown a1 simulator instance %q", instance)
}

func (c *a1SimCheck) ID() string   { return c.id }
func (c *a1SimCheck) Type() string { return TypeA1Sim }

func (c *a1SimCheck) Run(ctx context.Context) (Result, error) {
	body, err := c.client.Status(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Detail: fmt.Sprintf("%s answered %q", c.instance, strings.TrimSpace(body))}, nil
}
