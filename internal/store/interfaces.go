package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/toolbox-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore persists the credential collection as a whole.
type CredentialStore interface {
	// Load returns the persisted collection. A missing file yields an empty
	// collection. An unreadable file yields an empty collection and
	// ErrCorruptStore.
	Load(ctx context.Context) (models.CredentialCollection, error)

	// Save validates and sanitizes payload, a JSON array of records, and
	// replaces the persisted collection with it. It returns what was
	// persisted.
	Save(ctx context.Context, payload json.RawMessage) (models.CredentialCollection, error)

	// StoragePath reports where the collection is persisted.
	StoragePath(ctx context.Context) (models.StorageLocation, error)
}

// PathLocator is the part of the storage locator the file store needs.
type PathLocator interface {
	Resolve(ctx context.Context) (models.StorageRoot, error)
	VaultDir(ctx context.Context) (string, error)
	CredentialFile(ctx context.Context) (string, error)
}
