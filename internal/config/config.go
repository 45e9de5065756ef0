// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// envPrefix is prepended to every environment variable name.
const envPrefix = "TOOLBOX_"

// StructuredConfig is the top-level configuration container for the
// toolbox-vault host and caller processes. It aggregates all
// sub-configurations and is populated by merging built-in defaults, an
// optional JSON5 file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings reported by get-app-metadata.
	App App `envPrefix:"APP_"`

	// Storage holds the storage locator and credential store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Bridge holds the transport settings of the capability bridge.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Workers holds settings of the single-writer store queue.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON5 configuration file.
	// Populated via the TOOLBOX_CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Name is the product name, also used to label log entries.
	// Env: TOOLBOX_APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Env: TOOLBOX_APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the settings used by the storage locator and the credential
// store.
type Storage struct {
	// PrimaryDir overrides the installation-derived application-data root.
	// When empty, the locator uses "<executable dir>/data".
	// Env: TOOLBOX_STORAGE_PRIMARY_DIR
	PrimaryDir string `env:"PRIMARY_DIR"`

	// HomeDirName is the directory created under the user's home directory
	// when the primary root is unusable (e.g. "ToolboxData").
	// Env: TOOLBOX_STORAGE_HOME_DIR_NAME
	HomeDirName string `env:"HOME_DIR_NAME"`

	// AllowTempFallback enables the last-resort tier under the OS temp dir.
	// Env: TOOLBOX_STORAGE_ALLOW_TEMP_FALLBACK
	AllowTempFallback bool `env:"ALLOW_TEMP_FALLBACK"`

	// MemoryFallback makes the host keep credentials in memory only when no
	// storage root can be resolved, instead of refusing to start.
	// Env: TOOLBOX_STORAGE_MEMORY_FALLBACK
	MemoryFallback bool `env:"MEMORY_FALLBACK"`

	// LockTimeout bounds the wait for the advisory file lock (e.g. "2s").
	// Env: TOOLBOX_STORAGE_LOCK_TIMEOUT
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`
}

// Bridge holds the settings of the host-side bridge server and of the
// render-side client that talks to it. Exactly one of SocketPath and Address
// is used; SocketPath wins when both are set.
type Bridge struct {
	// SocketPath is the unix domain socket the bridge listens on.
	// Env: TOOLBOX_BRIDGE_SOCKET
	SocketPath string `env:"SOCKET"`

	// Address is a loopback "host:port" used where unix sockets are
	// unavailable.
	// Env: TOOLBOX_BRIDGE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds a single bridge request (e.g. "15s").
	// Env: TOOLBOX_BRIDGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxPayloadBytes caps the request body accepted by the host.
	// Env: TOOLBOX_BRIDGE_MAX_PAYLOAD_BYTES
	MaxPayloadBytes int64 `env:"MAX_PAYLOAD_BYTES"`
}

// Workers holds configuration for the single-writer queue that serializes
// store operations.
type Workers struct {
	// QueueSize is the number of pending store operations buffered before
	// callers block.
	// Env: TOOLBOX_WORKERS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimal emitted level ("debug", "info", "warn", "error").
	// Env: TOOLBOX_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File overrides the host log file. When empty the host logs to
	// "<storage root>/host.log".
	// Env: TOOLBOX_LOG_FILE
	File string `env:"FILE"`
}

// HostConfig is the configuration view used by the host process.
type HostConfig struct {
	App     App
	Storage Storage
	Bridge  Bridge
	Workers Workers
	Log     Log
}

// CallerConfig is the configuration view used by the render-side caller.
type CallerConfig struct {
	Bridge Bridge
}

// GetStructuredConfig loads and merges the configuration from all sources.
// Later sources override earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON5 file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags parsed from args
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// GetHostConfig builds and validates the host process configuration.
func GetHostConfig(args []string) (*HostConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	hostCfg := &HostConfig{
		App:     cfg.App,
		Storage: cfg.Storage,
		Bridge:  cfg.Bridge,
		Workers: cfg.Workers,
		Log:     cfg.Log,
	}

	return hostCfg, hostCfg.validate()
}

// GetCallerConfig builds and validates the render-side caller configuration.
// Flags are owned by the caller's command line, so only defaults, the JSON5
// file and the environment are consulted.
func GetCallerConfig() (*CallerConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	callerCfg := &CallerConfig{Bridge: cfg.Bridge}
	return callerCfg, callerCfg.validate()
}
