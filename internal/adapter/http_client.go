package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/toolbox-vault/models"
)

// ReadAllCredentials implements [BridgeClient].
func (h *httpBridgeClient) ReadAllCredentials(ctx context.Context) (models.CredentialSnapshot, error) {
	var records models.CredentialCollection

	envelope, err := h.invoke(ctx, models.OpReadAllCredentials, nil, &records)
	if err != nil {
		return models.CredentialSnapshot{}, err
	}
	if records == nil {
		records = models.CredentialCollection{}
	}

	return models.CredentialSnapshot{Records: records, Warning: envelope.Error, Code: envelope.Code}, nil
}

// ReplaceAllCredentials implements [BridgeClient]. records is sent verbatim,
// so sanitization happens on the host.
func (h *httpBridgeClient) ReplaceAllCredentials(ctx context.Context, records json.RawMessage) (models.CredentialCollection, error) {
	if len(records) == 0 {
		records = json.RawMessage("[]")
	}

	var saved models.CredentialCollection
	if _, err := h.invoke(ctx, models.OpReplaceAllCredentials, []byte(records), &saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// GetStoragePath implements [BridgeClient].
func (h *httpBridgeClient) GetStoragePath(ctx context.Context) (models.StorageLocation, error) {
	var location models.StorageLocation
	_, err := h.invoke(ctx, models.OpGetStoragePath, nil, &location)
	return location, err
}

// OpenPathExternally implements [BridgeClient]. It returns the cleaned path
// the host actually opened.
func (h *httpBridgeClient) OpenPathExternally(ctx context.Context, path string) (string, error) {
	var result models.OpenPathResult
	if _, err := h.invoke(ctx, models.OpOpenPathExternally, models.OpenPathRequest{Path: path}, &result); err != nil {
		return "", err
	}
	return result.Opened, nil
}

// GetAppMetadata implements [BridgeClient].
func (h *httpBridgeClient) GetAppMetadata(ctx context.Context) (models.AppMetadata, error) {
	var metadata models.AppMetadata
	_, err := h.invoke(ctx, models.OpGetAppMetadata, nil, &metadata)
	return metadata, err
}

// Ping implements [BridgeClient].
func (h *httpBridgeClient) Ping(ctx context.Context) error {
	var answer string
	if _, err := h.invoke(ctx, models.OpPing, nil, &answer); err != nil {
		return err
	}
	if answer != "pong" {
		return fmt.Errorf("%w: unexpected ping answer %q", ErrMalformedResponse, answer)
	}
	return nil
}

// Health implements [BridgeClient].
func (h *httpBridgeClient) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBridgeUnavailable, err)
	}
	return mapHTTPError(resp)
}
