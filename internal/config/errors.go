package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates missing listen address or timeouts.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (public URL, session key, content-type policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidOAuthConfigs indicates an incomplete provider client registration.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidAdapterConfigs indicates invalid mirror API client settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid database or content store settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid worker pool settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
