package config

import "errors"

// Validation errors returned when a per-binary config view is incomplete.
var (
	// ErrInvalidAdapterConfigs indicates a missing Auth API address or a
	// non-positive login/health timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a negative settle delay.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates a missing token sign key, issuer, or
	// token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
)
