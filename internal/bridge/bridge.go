// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bridge is the capability bridge: the only way for the render-side
// caller to reach the credential store.
//
// The set of reachable operations is fixed when the [Bridge] is built and
// cannot be changed afterwards. Requests for any other name are refused
// before anything is called.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/store"
	"github.com/MKhiriev/toolbox-vault/models"
)

type operation func(ctx context.Context, payload json.RawMessage) (any, error)

// Bridge dispatches allowlisted operations to their collaborators.
type Bridge struct {
	operations map[string]operation

	store    store.CredentialStore
	guard    PathGuard
	opener   Opener
	metadata models.AppMetadata

	logger *logger.Logger
}

// New builds a Bridge with the fixed operation allowlist.
func New(st store.CredentialStore, guard PathGuard, opener Opener, metadata models.AppMetadata, logger *logger.Logger) *Bridge {
	b := &Bridge{
		store:    st,
		guard:    guard,
		opener:   opener,
		metadata: metadata,
		logger:   logger,
	}

	b.operations = map[string]operation{
		models.OpReadAllCredentials:    b.readAllCredentials,
		models.OpReplaceAllCredentials: b.replaceAllCredentials,
		models.OpGetStoragePath:        b.getStoragePath,
		models.OpOpenPathExternally:    b.openPathExternally,
		models.OpGetAppMetadata:        b.getAppMetadata,
		models.OpPing:                  b.ping,
	}

	logger.Info().Strs("operations", b.Operations()).Msg("capability bridge created")
	return b
}

// Allowed reports whether op is on the allowlist.
func (b *Bridge) Allowed(op string) bool {
	_, ok := b.operations[op]
	return ok
}

// Operations returns a sorted copy of the allowlist.
func (b *Bridge) Operations() []string {
	ops := make([]string, 0, len(b.operations))
	for op := range b.operations {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Dispatch runs req and wraps the outcome into a response. Failures of an
// allowlisted operation are reported inside the response; the returned error
// is only ever [ErrOperationNotAllowed].
func (b *Bridge) Dispatch(ctx context.Context, req models.BridgeRequest) (models.BridgeResponse, error) {
	log := logger.FromContextOr(ctx, b.logger)

	op, ok := b.operations[req.Operation]
	if !ok {
		log.Warn().Str("operation", req.Operation).Msg("refused operation outside the allowlist")
		return models.BridgeResponse{}, ErrOperationNotAllowed
	}

	result, err := op(ctx, req.Payload)
	resp := b.respond(result, err)

	event := log.Debug()
	if !resp.Success {
		event = log.Warn().Err(err)
	}
	event.Str("operation", req.Operation).Bool("success", resp.Success).Str("code", resp.Code).Msg("bridge operation handled")

	return resp, nil
}

func (b *Bridge) respond(result any, err error) models.BridgeResponse {
	var resp models.BridgeResponse

	if err != nil {
		resp.Code = codeFromError(err)
		resp.Error = err.Error()
		// a recovered corrupt store still delivers its (empty) result
		if !errors.Is(err, store.ErrCorruptStore) || result == nil {
			return resp
		}
	}

	data, mErr := json.Marshal(result)
	if mErr != nil {
		return models.BridgeResponse{
			Error: fmt.Sprintf("encoding result: %v", mErr),
			Code:  models.CodeInternal,
		}
	}

	resp.Success = true
	resp.Data = data
	return resp
}

func (b *Bridge) readAllCredentials(ctx context.Context, _ json.RawMessage) (any, error) {
	collection, err := b.store.Load(ctx)
	if errors.Is(err, store.ErrCorruptStore) {
		if collection == nil {
			collection = models.CredentialCollection{}
		}
		return collection, err
	}
	if err != nil {
		return nil, err
	}
	return collection, nil
}

func (b *Bridge) replaceAllCredentials(ctx context.Context, payload json.RawMessage) (any, error) {
	collection, err := b.store.Save(ctx, payload)
	if err != nil {
		return nil, err
	}
	return collection, nil
}

func (b *Bridge) getStoragePath(ctx context.Context, _ json.RawMessage) (any, error) {
	location, err := b.store.StoragePath(ctx)
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (b *Bridge) openPathExternally(ctx context.Context, payload json.RawMessage) (any, error) {
	var req models.OpenPathRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if !filepath.IsAbs(req.Path) {
		return nil, fmt.Errorf("%w: an absolute path is required", ErrInvalidPayload)
	}
	path := filepath.Clean(req.Path)

	inside, err := b.guard.Contains(ctx, path)
	if err != nil {
		return nil, err
	}
	if !inside {
		return nil, fmt.Errorf("%w: %s", ErrPathNotAllowed, path)
	}

	if err := b.opener.Open(ctx, path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFailed, err)
	}
	return models.OpenPathResult{Opened: path}, nil
}

func (b *Bridge) getAppMetadata(context.Context, json.RawMessage) (any, error) {
	return b.metadata, nil
}

func (b *Bridge) ping(context.Context, json.RawMessage) (any, error) {
	return "pong", nil
}

