// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/config"
)

const (
	socketDirPerm  = 0o700
	socketPerm     = 0o600
	staleDialLimit = 200 * time.Millisecond
)

// listen opens the bridge listener. A socket path wins over a TCP address.
func listen(cfg config.Bridge) (net.Listener, error) {
	switch {
	case cfg.SocketPath != "":
		return listenUnix(cfg.SocketPath)
	case cfg.Address != "":
		return net.Listen("tcp", cfg.Address)
	default:
		return nil, errNoListenAddress
	}
}

// listenUnix listens on path, only readable by the current user. A socket
// file left behind by a crashed host is removed; one that still accepts
// connections is not.
func listenUnix(path string) (net.Listener, error) {
	if err := os.MkdirAll(filepath.Dir(path), socketDirPerm); err != nil {
		return nil, fmt.Errorf("creating socket directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		conn, dialErr := net.DialTimeout("unix", path, staleDialLimit)
		if dialErr == nil {
			conn.Close()
			return nil, fmt.Errorf("%w: %s", ErrSocketInUse, path)
		}
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("removing stale socket: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, socketPerm); err != nil {
		ln.Close()
		return nil, fmt.Errorf("restricting socket permissions: %w", err)
	}
	return ln, nil
}
