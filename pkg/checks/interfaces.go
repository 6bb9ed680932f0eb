package checks

import (
	"context"
	"errors"

	"github.com/o-ran-sc/oransdk-go/pkg/httpclient"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Result is what a passing check reports.
type Result struct {
	// Detail is a short human-readable summary of what the check saw.
	Detail string
}

// Check probes one deployed component and reports whether it answered.
type Check interface {
	ID() string
	Type() string
	Run(ctx context.Context) (Result, error)
}

// Env carries the shared collaborators checks are built against.
type Env struct {
	Settings *settings.Settings
	Sender   httpclient.Sender
	// ODUNode and ORUNode are the fallback node ids for connectivity
	// checks that do not name their own.
	ODUNode string
	ORUNode string
}

func (e Env) validate() error {
	if e.Settings == nil {
		return errors.New("checks env missing settings")
	}
	if e.Sender == nil {
		return errors.New("checks env missing sender")
	}
	return nil
}
