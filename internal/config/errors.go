package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates an unknown run mode.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSecurityConfigs indicates non-positive rate limit or body
	// limit settings.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unsupported driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidQueryConfigs indicates non-positive pagination defaults.
	ErrInvalidQueryConfigs = errors.New("invalid query configuration")
)
