// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Operation names reachable through the capability bridge.
const (
	OpReadAllCredentials    = "read-all-credentials"
	OpReplaceAllCredentials = "replace-all-credentials"
	OpGetStoragePath        = "get-storage-path"
	OpOpenPathExternally    = "open-path-externally"
	OpGetAppMetadata        = "get-app-metadata"
	OpPing                  = "ping"
)

// Failure codes carried by [BridgeResponse.Code].
const (
	CodeStorageUnavailable = "storage_unavailable"
	CodeCorruptStore       = "corrupt_store"
	CodeInvalidInput       = "invalid_input"
	CodeWriteFailure       = "write_failure"
	CodeStoreBusy          = "store_busy"
	CodePathNotAllowed     = "path_not_allowed"
	CodeOpenFailed         = "open_failed"
	CodeInternal           = "internal"
)

// BridgeRequest is a single call issued by the render-side caller.
type BridgeRequest struct {
	// Operation is the allowlisted operation name.
	Operation string `json:"operation"`

	// Payload is the operation-specific argument, raw JSON. Empty for
	// operations that take no input.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// BridgeResponse is the single eventual answer to a [BridgeRequest].
//
// A failure is always a value: Success is false and Error holds a message.
// Code classifies the outcome and may be set on a successful response too,
// e.g. a recovered corrupt store.
type BridgeResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Code    string          `json:"code,omitempty"`
}

// OpenPathRequest is the payload of open-path-externally.
type OpenPathRequest struct {
	Path string `json:"path"`
}

// OpenPathResult is returned by open-path-externally.
type OpenPathResult struct {
	Opened string `json:"opened"`
}

// CredentialSnapshot is the caller-side view of read-all-credentials.
type CredentialSnapshot struct {
	Records CredentialCollection

	// Warning and Code describe a recovered failure, e.g. a corrupt file.
	Warning string
	Code    string
}
