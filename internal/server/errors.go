// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoListenAddress = errors.New("neither socket path nor address is configured")

	// ErrSocketInUse is returned when another host process already serves the
	// configured socket.
	ErrSocketInUse = errors.New("bridge socket is already in use")
)
