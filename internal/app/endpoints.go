package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/o-ran-sc/oransdk-go/internal/config"
	"github.com/o-ran-sc/oransdk-go/internal/logger"
	"github.com/o-ran-sc/oransdk-go/pkg/settings"
)

// Endpoints resolves the deployment settings once and reports every
// endpoint constant, for suites and operators that need the discovered
// URLs.
type Endpoints struct {
	cfg *config.Config
	log logger.Logger
}

// NewEndpoints builds the endpoint-listing runtime.
func NewEndpoints(cfg *config.Config, log logger.Logger) (*Endpoints, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Endpoints{cfg: cfg, log: log}, nil
}

// Run resolves the settings through the configured resolver and writes
// the endpoint listing to w in the configured format.
func (e *Endpoints) Run(ctx context.Context, w io.Writer) error {
	if e == nil || e.cfg == nil {
		return fmt.Errorf("endpoints runtime is not initialized")
	}

	resolver, err := NewResolver(e.cfg)
	if err != nil {
		return fmt.Errorf("build resolver: %w", err)
	}

	sets, err := settings.Load(ctx, resolver)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	endpoints := sets.Endpoints()
	e.log.InfoObj("settings loaded", "endpoints_count", len(endpoints))

	if e.cfg.EndpointsFormat == config.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(endpoints)
	}

	names := make([]string, 0, len(endpoints))
	for name := range endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, endpoints[name]); err != nil {
			return fmt.Errorf("write endpoint listing: %w", err)
		}
	}
	return nil
}
