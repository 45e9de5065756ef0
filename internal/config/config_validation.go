// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validate checks the host configuration before it is used at start-up.
func (cfg *HostConfig) validate() error {
	if err := validateBridge(cfg.Bridge); err != nil {
		return err
	}

	name := cfg.Storage.HomeDirName
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fmt.Errorf("%w: home dir name %q must be a plain directory name", ErrInvalidStorageConfigs, name)
	}

	if cfg.Storage.LockTimeout <= 0 {
		return fmt.Errorf("%w: lock timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.QueueSize <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *CallerConfig) validate() error {
	return validateBridge(cfg.Bridge)
}

func validateBridge(b Bridge) error {
	if b.SocketPath == "" && b.Address == "" {
		return fmt.Errorf("%w: socket path or address is required", ErrInvalidBridgeConfigs)
	}

	if b.SocketPath == "" {
		var addr NetAddress
		if err := addr.Set(b.Address); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBridgeConfigs, err)
		}
	}

	if b.RequestTimeout <= 0 || b.MaxPayloadBytes <= 0 {
		return fmt.Errorf("%w: request timeout and payload limit must be positive", ErrInvalidBridgeConfigs)
	}

	return nil
}
