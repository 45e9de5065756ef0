// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/toolbox-vault/internal/bridge"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/utils"
	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/go-chi/chi/v5"
)

// dispatch forwards the request body to the bridge as the payload of the
// operation named in the path.
//
// Responses:
//   - 200 with a [models.BridgeResponse]; failures of the operation itself are
//     carried inside the envelope;
//   - 404 with an empty body when the operation is not allowlisted;
//   - 413 when the body exceeds the payload limit.
func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	op := chi.URLParam(r, operationParam)

	if !h.bridge.Allowed(op) {
		notFound(w, r)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxPayloadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Warn().Str("operation", op).Int64("limit", tooLarge.Limit).Msg("payload too large")
			utils.WriteJSON(w, models.BridgeResponse{
				Error: fmt.Sprintf("%s: limit is %d bytes", ErrPayloadTooLarge, tooLarge.Limit),
				Code:  models.CodeInvalidInput,
			}, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("operation", op).Msg("error reading request body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	req := models.BridgeRequest{Operation: op}
	if len(body) > 0 {
		req.Payload = body
	}

	resp, err := h.bridge.Dispatch(r.Context(), req)
	if errors.Is(err, bridge.ErrOperationNotAllowed) {
		notFound(w, r)
		return
	}
	if err != nil {
		log.Err(err).Str("operation", op).Msg("bridge dispatch failed")
		utils.WriteJSON(w, models.BridgeResponse{Error: err.Error(), Code: models.CodeInternal}, http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Str("operation", op).Msg("error writing bridge response")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
