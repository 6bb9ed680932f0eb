package checks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	// Supported check types.
	TypeSDNCStatus       = "sdnc-status"
	TypeSDNCConnectivity = "sdnc-odu-oru"
	TypePolicyPap        = "policy-pap"
	TypePolicyAPI        = "policy-api"
	TypeA1Sim            = "a1sim"
	TypeDmaapTopics      = "dmaap-topics"

	// A1 simulator instances the a1sim check understands.
	A1InstanceOSC  = "osc"
	A1InstanceStd1 = "std1"
	A1InstanceStd2 = "std2"
)

// configFile represents the structure of the checks configuration file.
type configFile struct {
	Checks []CheckConfig `json:"checks" yaml:"checks"`
}

// CheckConfig represents a single check entry declared in config files.
type CheckConfig struct {
	ID      string            `json:"id" yaml:"id"`
	Type    string            `json:"type" yaml:"type"`
	Enabled *bool             `json:"enabled" yaml:"enabled"`
	SDNC    *SDNCCheckConfig  `json:"sdnc" yaml:"sdnc"`
	A1Sim   *A1SimCheckConfig `json:"a1sim" yaml:"a1sim"`
}

// SDNCCheckConfig holds overrides for the du-to-ru connectivity check.
type SDNCCheckConfig struct {
	ODUNode  string `json:"odu_node" yaml:"odu_node"`
	ORUNode  string `json:"oru_node" yaml:"oru_node"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// A1SimCheckConfig selects which simulator instance to probe.
type A1SimCheckConfig struct {
	Instance string `json:"instance" yaml:"instance"`
}

// ConfigRegistry materializes check definitions loaded from config files.
type ConfigRegistry struct {
	mu     sync.RWMutex
	checks []CheckConfig
	idx    map[string]CheckConfig
}

// LoadRegistry loads the check registry from a YAML/JSON file.
func LoadRegistry(path string) (*ConfigRegistry, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("checks file path is empty")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checks file: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read checks file: %w", err)
	}

	fileReg, err := parseCheckRegistry(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(fileReg.Checks) == 0 {
		return nil, errors.New("checks file contains no checks entries")
	}

	reg := &ConfigRegistry{
		checks: make([]CheckConfig, len(fileReg.Checks)),
		idx:    make(map[string]CheckConfig, len(fileReg.Checks)),
	}

	for i := range fileReg.Checks {
		cfg := sanitizeCheckConfig(fileReg.Checks[i])
		if err := validateCheckConfig(cfg); err != nil {
			return nil, fmt.Errorf("checks[%d]: %w", i, err)
		}
		if _, exists := reg.idx[cfg.ID]; exists {
			return nil, fmt.Errorf("duplicate check id %q", cfg.ID)
		}
		reg.checks[i] = cfg
		reg.idx[cfg.ID] = cfg
	}

	return reg, nil
}

// parseCheckRegistry attempts to decode the checks file content.
func parseCheckRegistry(data []byte, ext string) (configFile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	decoders := []struct {
		name string
		ext  string
		fn   func([]byte, any) error
	}{
		{name: "yaml", ext: ".yaml", fn: yaml.Unmarshal},
		{name: "yaml", ext: ".yml", fn: yaml.Unmarshal},
		{name: "json", ext: ".json", fn: json.Unmarshal},
	}

	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		if reg, err := unmarshalCheckRegistry(d.name, data, d.fn); err == nil {
			return reg, nil
		}
	}

	return configFile{}, errors.New("checks file format not recognized (expected YAML or JSON)")
}

// unmarshalCheckRegistry decodes the checks file using the provided function.
func unmarshalCheckRegistry(name string, data []byte, fn func([]byte, any) error) (configFile, error) {
	var reg configFile
	if err := fn(data, &reg); err != nil {
		return configFile{}, fmt.Errorf("decode %s checks: %w", name, err)
	}
	return reg, nil
}

// sanitizeCheckConfig trims and normalizes the check config fields.
func sanitizeCheckConfig(cfg CheckConfig) CheckConfig {
	cfg.ID = strings.TrimSpace(cfg.ID)
	cfg.Type = strings.ToLower(strings.TrimSpace(cfg.Type))

	if cfg.Enabled == nil {
		def := true
		cfg.Enabled = &def
	}
	if cfg.SDNC != nil {
		c := *cfg.SDNC
		c.ODUNode = strings.TrimSpace(c.ODUNode)
		c.ORUNode = strings.TrimSpace(c.ORUNode)
		c.Username = strings.TrimSpace(c.Username)
		cfg.SDNC = &c
	}
	if cfg.A1Sim != nil {
		c := *cfg.A1Sim
		c.Instance = strings.ToLower(strings.TrimSpace(c.Instance))
		cfg.A1Sim = &c
	}

	return cfg
}

// validateCheckConfig checks that required fields are present.
func validateCheckConfig(cfg CheckConfig) error {
	if cfg.ID == "" {
		return errors.New("id is required")
	}
	if cfg.Type == "" {
		return fmt.Errorf("type is required for check %q", cfg.ID)
	}
	if cfg.Type == TypeA1Sim {
		if cfg.A1Sim == nil {
			return fmt.Errorf("a1sim config required for check %q", cfg.ID)
		}
		switch cfg.A1Sim.Instance {
		case A1InstanceOSC, A1InstanceStd1, A1InstanceStd2:
		default:
			return fmt.Errorf("unknown a1 simulator instance %q for check %q", cfg.A1Sim.Instance, cfg.ID)
		}
	}
	return nil
}

// ByID returns the check config by id.
func (r *ConfigRegistry) ByID(id string) (CheckConfig, bool) {
	if r == nil {
		return CheckConfig{}, false
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return CheckConfig{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	cfg, ok := r.idx[id]
	return cfg, ok
}

// All returns all configured checks.
func (r *ConfigRegistry) All() []CheckConfig {
	if r == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CheckConfig, len(r.checks))
	copy(out, r.checks)
	return out
}

// Enabled returns checks that are enabled.
func (r *ConfigRegistry) Enabled() []CheckConfig {
	if r == nil {
		return nil
	}

	all := r.All()
	if len(all) == 0 {
		return nil
	}

	out := make([]CheckConfig, 0, len(all))
	for _, cfg := range all {
		if cfg.EnabledValue() {
			out = append(out, cfg)
		}
	}
	return out
}

// EnabledValue returns the enabled flag defaulting to true.
func (cfg CheckConfig) EnabledValue() bool {
	if cfg.Enabled == nil {
		return true
	}
	return *cfg.Enabled
}
