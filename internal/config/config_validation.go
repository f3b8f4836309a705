// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Env != EnvDevelopment && cfg.App.Env != EnvProduction {
		return fmt.Errorf("%w: unknown env %q", ErrInvalidAppConfigs, cfg.App.Env)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Security.RateLimitMax <= 0 || cfg.Security.RateLimitWindow <= 0 || cfg.Security.BodyLimit <= 0 {
		return ErrInvalidSecurityConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Query.DefaultPage <= 0 || cfg.Query.DefaultLimit <= 0 {
		return ErrInvalidQueryConfigs
	}

	return nil
}
