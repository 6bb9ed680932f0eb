package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Resolver kinds accepted by the "resolver" setting.
const (
	ResolverKubectl = "kubectl"
	ResolverKube    = "kube"
)

// Output formats accepted by the "endpoints_format" setting.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the SDK configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	Resolver    string `mapstructure:"resolver"`
	KubectlPath string `mapstructure:"kubectl_path"`
	Kubeconfig  string `mapstructure:"kubeconfig"`

	ChecksFile           string        `mapstructure:"checks_file"`
	CheckIntervalSeconds int64         `mapstructure:"check_interval_seconds"`
	CheckInterval        time.Duration `mapstructure:"-"`

	ODUNode string `mapstructure:"odu_node"`
	ORUNode string `mapstructure:"oru_node"`

	EndpointsFormat string `mapstructure:"endpoints_format"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "oransdk")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "debug")
	v.SetDefault("log_file", "./oransdk.debug.log")
	v.SetDefault("http_timeout_seconds", 30)
	v.SetDefault("resolver", ResolverKubectl)
	v.SetDefault("kubectl_path", "kubectl")
	v.SetDefault("kubeconfig", "")
	v.SetDefault("checks_file", "./configs/checks.yaml")
	v.SetDefault("check_interval_seconds", 0) // 0 runs a single sweep
	v.SetDefault("odu_node", "o-du-1122")
	v.SetDefault("oru_node", "o-ru-11221")
	v.SetDefault("endpoints_format", FormatText)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	switch cfg.Resolver {
	case ResolverKubectl, ResolverKube:
	default:
		return nil, fmt.Errorf("invalid resolver %q (expected %q or %q)", cfg.Resolver, ResolverKubectl, ResolverKube)
	}

	if cfg.CheckIntervalSeconds < 0 {
		return nil, fmt.Errorf("invalid check_interval_seconds (must not be negative)")
	}
	cfg.CheckInterval = time.Duration(cfg.CheckIntervalSeconds) * time.Second

	switch cfg.EndpointsFormat {
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("invalid endpoints_format %q (expected %q or %q)", cfg.EndpointsFormat, FormatText, FormatJSON)
	}

	return &cfg, nil
}
