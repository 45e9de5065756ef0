// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/toolbox-vault/internal/adapter"
	"github.com/MKhiriev/toolbox-vault/models"
)

var (
	errRecordChanged = errors.New("record changed since it was loaded, list reloaded")
	errCorruptStore  = errors.New("credential file is corrupt, recover it before removing records")
)

// humanizeError turns bridge failures into a short line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrBridgeUnavailable):
		return "Toolbox host is not running"
	case errors.Is(err, adapter.ErrOperationRefused):
		return "operation refused by host"
	}

	switch adapter.CodeOf(err) {
	case models.CodeStoreBusy:
		return "credential file is busy, try again"
	case models.CodeStorageUnavailable:
		return "no writable storage location"
	case models.CodePathNotAllowed:
		return "path is outside the storage folder"
	}

	return err.Error()
}
