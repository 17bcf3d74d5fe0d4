// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.AuthMode {
	case AuthModeJWT:
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
			return fmt.Errorf("%w: jwt mode requires token sign key and issuer", ErrInvalidAppConfigs)
		}
	case AuthModeHeader:
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidAppConfigs, cfg.App.AuthMode)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.GenerationWorkers < 0 || cfg.Workers.CipherWorkers < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
