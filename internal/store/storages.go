package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/fsys"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/internal/workers"
)

// Storages groups the credential store handed to the bridge together with the
// queue that serializes access to it.
type Storages struct {
	// CredentialStore is the serialized store the bridge talks to.
	CredentialStore CredentialStore

	// Persistent is false when the store only keeps data in memory.
	Persistent bool
}

// NewStorages builds the host's credential store:
//  1. resolves the storage root via loc;
//  2. on success, wires a file store over filesystem;
//  3. on ErrStorageUnavailable, wires a memory store when
//     cfg.MemoryFallback is set, and fails otherwise.
//
// The result is wrapped with [NewSerializedStore] over queue.
func NewStorages(ctx context.Context, filesystem fsys.FS, loc PathLocator, queue *workers.Serial, cfg config.Storage, logger *logger.Logger, opts ...Option) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	opts = append([]Option{WithLockTimeout(cfg.LockTimeout)}, opts...)

	var (
		base       CredentialStore
		persistent = true
	)

	_, err := loc.Resolve(ctx)
	switch {
	case err == nil:
		base = NewFileStore(filesystem, loc, logger, opts...)
	case errors.Is(err, ErrStorageUnavailable) && cfg.MemoryFallback:
		logger.Err(err).Msg("no storage root available, falling back to memory")
		base = NewMemoryStore(logger, opts...)
		persistent = false
	default:
		return nil, fmt.Errorf("resolving storage root: %w", err)
	}

	return &Storages{
		CredentialStore: NewSerializedStore(base, queue),
		Persistent:      persistent,
	}, nil
}
