package checks

import (
	"context"
	"fmt"

	"github.com/o-ran-sc/oransdk-go/pkg/dmaap"
)

type dmaapTopicsCheck struct {
	id     string
	client *dmaap.Client
}

func newDmaapTopicsCheck(cfg CheckConfig, env Env) (Check, error) {
	if err := env.validate(); err != nil {
		return nil, err
	}
	return &dmaapTopicsCheck{
		id:     cfg.ID,
		client: dmaap.NewClient(env.Settings.DmaapURL, env.Sender),
	}, nil
}

func (c *dmaapTopicsCheck) ID() string   { return c.id }
func (c *dmaapTopicsCheck) Type() string { return TypeDmaapTopics }

func (c *dmaapTopicsCheck) Run(ctx context.Context) (Result, error) {
	listing, err := c.client.Topics(ctx)
	if err != nil {
		return Result{}, err
	}
	if topics, ok := listing["topics"].([]interface{}); ok {
		return Result{Detail: fmt.Sprintf("%d topics", len(topics))}, nil
	}
	return Result{Detail: fmt.Sprintf("%d fields in topics listing", len(listing))}, nil
}
