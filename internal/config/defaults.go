// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied by [StructuredConfig.setDefaults].
const (
	DefaultEnv              = EnvProduction
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 30 * time.Second
	DefaultCORSOrigin       = "http://127.0.0.1:5500"
	DefaultRateLimitMax     = 1000
	DefaultRateLimitWindow  = time.Hour
	DefaultRateLimitMessage = "Too many requests from this IP, please try again in an hour!"
	DefaultBodyLimit        = 10 << 10
	DefaultDriver           = DriverPostgres

	DefaultPage          = 1
	DefaultLimit         = 100
	DefaultSort          = "-createdAt"
	DefaultTieBreakField = "id"
	DefaultExcludedField = "version"
)

// setDefaults fills every zero field with its default. HPPWhitelist stays
// empty by default.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.Env == "" {
		cfg.App.Env = DefaultEnv
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	if len(cfg.Security.CORSAllowedOrigins) == 0 {
		cfg.Security.CORSAllowedOrigins = []string{DefaultCORSOrigin}
	}
	if cfg.Security.RateLimitMax == 0 {
		cfg.Security.RateLimitMax = DefaultRateLimitMax
	}
	if cfg.Security.RateLimitWindow == 0 {
		cfg.Security.RateLimitWindow = DefaultRateLimitWindow
	}
	if cfg.Security.RateLimitMessage == "" {
		cfg.Security.RateLimitMessage = DefaultRateLimitMessage
	}
	if cfg.Security.BodyLimit == 0 {
		cfg.Security.BodyLimit = DefaultBodyLimit
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}

	if cfg.Query.DefaultPage == 0 {
		cfg.Query.DefaultPage = DefaultPage
	}
	if cfg.Query.DefaultLimit == 0 {
		cfg.Query.DefaultLimit = DefaultLimit
	}
	if cfg.Query.DefaultSort == "" {
		cfg.Query.DefaultSort = DefaultSort
	}
	if cfg.Query.TieBreakField == "" {
		cfg.Query.TieBreakField = DefaultTieBreakField
	}
	if cfg.Query.ExcludedField == "" {
		cfg.Query.ExcludedField = DefaultExcludedField
	}
}
