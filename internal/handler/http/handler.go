package http

import (
	"context"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/models"
)

// Dispatcher is the bridge as seen by the transport.
type Dispatcher interface {
	Allowed(op string) bool
	Dispatch(ctx context.Context, req models.BridgeRequest) (models.BridgeResponse, error)
}

type Handler struct {
	bridge          Dispatcher
	maxPayloadBytes int64

	logger *logger.Logger
}

func NewHandler(bridge Dispatcher, cfg config.Bridge, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	maxPayload := cfg.MaxPayloadBytes
	if maxPayload <= 0 {
		maxPayload = config.DefaultMaxPayloadBytes
	}

	return &Handler{
		bridge:          bridge,
		maxPayloadBytes: maxPayload,
		logger:          logger,
	}
}
