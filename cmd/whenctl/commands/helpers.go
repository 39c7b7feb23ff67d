package commands

import (
	"fmt"

	"github.com/eruixma/one-click-campaign/internal/cli"
	"github.com/eruixma/one-click-campaign/internal/client"
)

// apiClient resolves the connection settings from global flags and the
// config file and returns a ready client.
func apiClient() (*client.Client, error) {
	envCfg, _, err := cli.GetEnvConfig(env, baseURL, apiKey)
	if err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return client.NewClient(envCfg.BaseURL, envCfg.APIKey), nil
}
