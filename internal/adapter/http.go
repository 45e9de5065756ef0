// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/utils"
	"github.com/MKhiriev/toolbox-vault/models"
)

const (
	// socketBaseURL is a placeholder host; the unix transport ignores it.
	socketBaseURL = "http://toolbox-vault"
	traceIDHeader = "X-Trace-ID"
)

type httpBridgeClient struct {
	client   *utils.HTTPClient
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewBridgeClient constructs the HTTP implementation of [BridgeClient].
// cfg.SocketPath wins over cfg.Address when both are set.
func NewBridgeClient(cfg config.Bridge, logger *logger.Logger) (BridgeClient, error) {
	client := utils.NewHTTPClient()

	switch {
	case cfg.SocketPath != "":
		client.UseUnixSocket(cfg.SocketPath).SetBaseURL(socketBaseURL)
	case cfg.Address != "":
		baseURL, err := normalizeBaseURL(cfg.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid bridge address: %w", err)
		}
		client.SetBaseURL(baseURL)
	default:
		return nil, errors.New("invalid bridge config: neither socket path nor address is set")
	}

	client.SetTimeout(cfg.RequestTimeout)

	return &httpBridgeClient{client: client, traceIDs: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Call implements [BridgeClient]. The trace id is taken from ctx when set,
// otherwise a fresh one is generated for the call.
func (h *httpBridgeClient) Call(ctx context.Context, operation string, payload any) (models.BridgeResponse, error) {
	traceID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		traceID = h.traceIDs.Generate()
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(traceIDHeader, traceID).
		SetPathParam("operation", operation)
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Post("/api/bridge/{operation}")
	if err != nil {
		return models.BridgeResponse{}, fmt.Errorf("%w: %w", ErrBridgeUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("operation", operation).Str("trace_id", traceID).Msg("bridge call rejected")
		return models.BridgeResponse{}, err
	}

	var envelope models.BridgeResponse
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.BridgeResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	h.logger.Debug().
		Str("operation", operation).
		Str("trace_id", traceID).
		Bool("success", envelope.Success).
		Str("code", envelope.Code).
		Msg("bridge call finished")

	return envelope, nil
}

// invoke calls operation and decodes the data of a successful envelope into
// result. A failed envelope becomes an [*OperationError].
func (h *httpBridgeClient) invoke(ctx context.Context, operation string, payload, result any) (models.BridgeResponse, error) {
	envelope, err := h.Call(ctx, operation, payload)
	if err != nil {
		return envelope, err
	}
	if !envelope.Success {
		return envelope, &OperationError{Operation: operation, Code: envelope.Code, Message: envelope.Error}
	}
	if result != nil && len(envelope.Data) > 0 {
		if err = json.Unmarshal(envelope.Data, result); err != nil {
			return envelope, fmt.Errorf("%w: decoding %s data: %w", ErrMalformedResponse, operation, err)
		}
	}
	return envelope, nil
}
