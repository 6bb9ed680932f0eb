package app

import (
	"fmt"

	"github.com/o-ran-sc/oransdk-go/internal/config"
	"github.com/o-ran-sc/oransdk-go/pkg/discovery"
)

// NewResolver builds the service-discovery resolver the configuration
// selects.
func NewResolver(cfg *config.Config) (discovery.Resolver, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	switch cfg.Resolver {
	case config.ResolverKubectl:
		return discovery.NewKubectlResolver(cfg.KubectlPath), nil
	case config.ResolverKube:
		return discovery.NewKubeResolver(cfg.Kubeconfig)
	}
	return nil, fmt.Errorf("unknown resolver %q", cfg.Resolver)
}
