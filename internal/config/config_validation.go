// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/user-directory/internal/directory"
	"golang.org/x/text/language"
)

// validate checks the settings shared by both binaries. Binary-specific
// requirements are checked by the ServerConfig and ClientConfig views.
func (cfg *StructuredConfig) validate() error {
	if cfg.View.Locale != "" {
		if _, err := language.Parse(cfg.View.Locale); err != nil {
			return fmt.Errorf("%w: locale %q: %w", ErrInvalidViewConfigs, cfg.View.Locale, err)
		}
	}

	if _, err := directory.ParseSortMode(cfg.View.DefaultSort); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidViewConfigs, err)
	}

	if cfg.View.NoticeTTL < 0 {
		return fmt.Errorf("%w: negative notice ttl", ErrInvalidViewConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.View.NoticeTTL <= 0 {
		return ErrInvalidViewConfigs
	}

	if cfg.Seed.Count < 0 {
		return ErrInvalidSeedConfigs
	}

	return nil
}
