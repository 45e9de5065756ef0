package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidBridgeConfigs indicates invalid bridge transport settings
	// (for example, neither socket nor address, or a non-loopback address).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidStorageConfigs indicates invalid storage locator or store
	// settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid queue settings.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrNonLoopbackAddress is returned when the bridge address would be
	// reachable from other hosts.
	ErrNonLoopbackAddress = errors.New("bridge address must be a loopback address")
)
