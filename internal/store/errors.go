package store

import (
	"errors"

	"github.com/MKhiriev/toolbox-vault/internal/locator"
)

// Sentinel errors returned by [CredentialStore] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when no storage root could be
	// resolved or the credential file cannot be reached. It is the same value
	// as [locator.ErrStorageUnavailable].
	ErrStorageUnavailable = locator.ErrStorageUnavailable

	// ErrCorruptStore is returned together with an empty collection when the
	// credential file exists but does not hold a JSON array of records. The
	// file is left untouched.
	ErrCorruptStore = errors.New("credential file is corrupt")

	// ErrInvalidInput is returned by Save when the payload is not a JSON
	// array of record objects. Nothing is written.
	ErrInvalidInput = errors.New("credentials must be an array of records")

	// ErrWriteFailure is returned when the credential file could not be
	// replaced. The previous file content is still in place.
	ErrWriteFailure = errors.New("failed to write credentials")

	// ErrStoreBusy is returned when the advisory lock on the credential file
	// could not be acquired in time.
	ErrStoreBusy = errors.New("credential store is busy")
)
