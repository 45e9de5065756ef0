// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the render-side end of the capability bridge.
//
// [BridgeClient] talks to the host over its unix socket (or loopback TCP)
// and turns bridge envelopes into Go values and errors. Transport failures
// map to the sentinel errors in errors.go; failures reported by an operation
// itself come back as [*OperationError] carrying the bridge failure code.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/toolbox-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_client_mock.go -package=mock

// BridgeClient invokes allowlisted host operations.
type BridgeClient interface {
	// Call issues operation with payload and returns the raw envelope.
	// payload may be nil. Only transport errors are returned as error.
	Call(ctx context.Context, operation string, payload any) (models.BridgeResponse, error)

	// ReadAllCredentials returns the stored collection. A collection that
	// was recovered from an unreadable file is returned empty with a
	// non-empty Warning and a nil error.
	ReadAllCredentials(ctx context.Context) (models.CredentialSnapshot, error)

	// ReplaceAllCredentials replaces the whole collection with the JSON
	// array in records and returns what was persisted.
	ReplaceAllCredentials(ctx context.Context, records json.RawMessage) (models.CredentialCollection, error)

	// GetStoragePath reports where the credential file lives.
	GetStoragePath(ctx context.Context) (models.StorageLocation, error)

	// OpenPathExternally asks the host to open path with the desktop
	// default handler. Only paths inside the storage root are accepted.
	OpenPathExternally(ctx context.Context, path string) (string, error)

	GetAppMetadata(ctx context.Context) (models.AppMetadata, error)

	Ping(ctx context.Context) error

	// Health checks that the host answers at all.
	Health(ctx context.Context) error
}
