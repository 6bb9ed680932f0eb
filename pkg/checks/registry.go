package checks

import (
	"fmt"
	"strings"
	"sync"
)

// Builder creates a Check from a config entry and the shared environment.
type Builder func(cfg CheckConfig, env Env) (Check, error)

// Registry maps check types to builders.
type Registry interface {
	Register(typ string, builder Builder)
	CheckFor(cfg CheckConfig, env Env) (Check, error)
}

type registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns a registry with optional pre-registered builders.
func NewRegistry(builders map[string]Builder) Registry {
	r := &registry{
		builders: make(map[string]Builder),
	}
	for typ, b := range builders {
		r.Register(typ, b)
	}
	return r
}

// Register associates a builder with a check type.
func (r *registry) Register(typ string, builder Builder) {
	if typ = strings.TrimSpace(strings.ToLower(typ)); typ == "" || builder == nil {
		return
	}

	r.mu.Lock()
	r.builders[typ] = builder
	r.mu.Unlock()
}

// CheckFor returns the check built for the provided config.
func (r *registry) CheckFor(cfg CheckConfig, env Env) (Check, error) {
	if cfg.Type == "" {
		return nil, fmt.Errorf("check %q has no type configured", cfg.ID)
	}

	r.mu.RLock()
	builder := r.builders[strings.ToLower(cfg.Type)]
	r.mu.RUnlock()

	if builder == nil {
		return nil, fmt.Errorf("no check registered for type %q", cfg.Type)
	}
	return builder(cfg, env)
}

// DefaultRegistry wires up known checks.
func DefaultRegistry() Registry {
	builders := map[string]Builder{
		TypeSDNCStatus:       newSDNCStatusCheck,
		TypeSDNCConnectivity: newSDNCConnectivityCheck,
		TypePolicyPap:        newPolicyPapCheck,
		TypePolicyAPI:        newPolicyAPICheck,
		TypeA1Sim:            newA1SimCheck,
		TypeDmaapTopics:      newDmaapTopicsCheck,
	}
	return NewRegistry(builders)
}

// BuildAll instantiates checks for configs using the registry.
func BuildAll(reg Registry, cfgs []CheckConfig, env Env) ([]Check, error) {
	if reg == nil || len(cfgs) == 0 {
		return nil, nil
	}

	var cks []Check
	for _, cfg := range cfgs {
		ck, err := reg.CheckFor(cfg, env)
		if err != nil {
			return nil, err
		}
		cks = append(cks, ck)
	}
	return cks, nil
}
