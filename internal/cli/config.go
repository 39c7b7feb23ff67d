package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration file.
type Config struct {
	DefaultEnv   string               `yaml:"default_env"`
	Environments map[string]EnvConfig `yaml:"environments"`
}

// EnvConfig is the per-environment connection configuration.
type EnvConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".whenctl", "config.yaml"), nil
}

// LoadConfig loads the configuration from file. A missing file yields an
// empty config rather than an error.
func LoadConfig() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{
				DefaultEnv:   "prod",
				Environments: make(map[string]EnvConfig),
			}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// GetEnvConfig resolves the effective connection settings: explicit flags
// win, then the named environment from the config file, then defaults.
func GetEnvConfig(env, baseURLFlag, apiKeyFlag string) (EnvConfig, string, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return EnvConfig{}, "", err
	}

	effectiveEnv := env
	if effectiveEnv == "" {
		effectiveEnv = cfg.DefaultEnv
	}

	envCfg := cfg.Environments[effectiveEnv]
	if baseURLFlag != "" {
		envCfg.BaseURL = baseURLFlag
	}
	if apiKeyFlag != "" {
		envCfg.APIKey = apiKeyFlag
	}
	if envCfg.BaseURL == "" {
		envCfg.BaseURL = "http://localhost:8080"
	}

	return envCfg, effectiveEnv, nil
}
