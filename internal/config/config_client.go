package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the rsa-vault command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"RSA_VAULT_"`
	Auth    ClientAuth    `envPrefix:"RSA_VAULT_"`
}

// ClientAdapter locates the server.
type ClientAdapter struct {
	// HTTPAddress is the server base URL; a bare host:port gets "http://".
	// Env: RSA_VAULT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every request.
	// Env: RSA_VAULT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientAuth carries the caller identity the client presents.
// Token is used in jwt mode; the principal fields in header mode.
type ClientAuth struct {
	// Env: RSA_VAULT_TOKEN
	Token string `env:"TOKEN"`
	// Env: RSA_VAULT_PRINCIPAL_ID
	PrincipalID string `env:"PRINCIPAL_ID"`
	// Env: RSA_VAULT_PRINCIPAL_NAME
	PrincipalName string `env:"PRINCIPAL_NAME"`
}

// GetClientConfig reads the client configuration from the environment and
// fills defaults. Command-line flags are applied on top by the caller via
// [ClientConfig.Override].
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}

	return cfg, cfg.validate()
}

// Override replaces fields with the non-empty values of other.
func (cfg *ClientConfig) Override(other ClientConfig) error {
	if err := mergo.Merge(cfg, other, mergo.WithOverride); err != nil {
		return fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg.validate()
}
