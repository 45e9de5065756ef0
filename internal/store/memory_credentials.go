package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/models"
)

// memoryStore keeps the collection in process memory only. The host falls
// back to it when no storage root can be resolved and memory fallback is
// enabled, so the vault stays usable for the session.
type memoryStore struct {
	mu         sync.RWMutex
	collection models.CredentialCollection
	sanitizer  sanitizer
	logger     *logger.Logger
}

// NewMemoryStore constructs a [CredentialStore] that never touches the
// filesystem.
func NewMemoryStore(logger *logger.Logger, opts ...Option) CredentialStore {
	logger.Warn().Msg("credentials are kept in memory only and will be lost on exit")

	return &memoryStore{
		collection: models.CredentialCollection{},
		sanitizer:  buildOptions(opts).sanitizer(),
		logger:     logger,
	}
}

func (m *memoryStore) Load(ctx context.Context) (models.CredentialCollection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.collection), nil
}

func (m *memoryStore) Save(ctx context.Context, payload json.RawMessage) (models.CredentialCollection, error) {
	records, err := decodeCollection(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	collection := m.sanitizer.sanitize(records)
	if dups := collection.DuplicateIDs(); len(dups) > 0 {
		m.logger.Warn().Strs("ids", dups).Msg("saving credentials with duplicate ids")
	}

	m.mu.Lock()
	m.collection = collection
	m.mu.Unlock()

	return slices.Clone(collection), nil
}

// StoragePath always fails: there is no file to show.
func (m *memoryStore) StoragePath(ctx context.Context) (models.StorageLocation, error) {
	return models.StorageLocation{}, fmt.Errorf("%w: credentials are kept in memory", ErrStorageUnavailable)
}
