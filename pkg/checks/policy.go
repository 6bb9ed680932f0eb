package checks

import (
	"context"
	"fmt"

	"github.com/o-ran-sc/oransdk-go/pkg/policy"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

type policyPapCheck struct {
	id     string
	client *policy.Client
	auth   settings.BasicAuth
}

func newPolicyPapCheck(cfg CheckConfig, env Env) (Check, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &policyPapCheck{
		id:     cfg.ID,
		client: policy.NewClient(env.Settings.PolicyPapURL, env.Settings.PolicyAPIURL, env.Sender),
		auth:   env.Settings.PolicyBasicAuth,
	}, nil
}

func (c *policyPapCheck) ID() string   { return c.id }
func (c *policyPapCheck) Type() string { return TypePolicyPap }

func (c *policyPapCheck) Run(ctx context.Context) (Result, error) {
	status, err := c.client.PapComponentsStatus(ctx, c.auth)
	if err != nil {
		return Result{}, err
	}
	return Result{Detail: fmt.Sprintf("%d components reported", len(status))}, nil
}

type policyAPICheck struct {
	id     string
	client *policy.Client
	auth   settings.BasicAuth
}

func newPolicyAPICheck(cfg CheckConfig, env Env) (Check, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &policyAPICheck{
		id:     cfg.ID,
		client: policy.NewClient(env.Settings.PolicyPapURL, env.Settings.PolicyAPIURL, env.Sender),
		auth:   env.Settings.PolicyBasicAuth,
	}, nil
}

func (c *policyAPICheck) ID() string   { return c.id }
func (c *policyAPICheck) Type() string { return TypePolicyAPI }

func (c *policyAPICheck) Run(ctx context.Context) (Result, error) {
	status, err := c.client.APIHealthcheck(ctx, c.auth)
	if err != nil {
		return Result{}, err
	}
	if healthy, ok := status["healthy"].(bool); ok && !healthy {
		return Result{}, fmt.Errorf("policy api reports unhealthy: %v", status["message"])
	}
	return Result{Detail: "policy api alive"}, nil
}
