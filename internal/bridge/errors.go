package bridge

import (
	"errors"

	"github.com/MKhiriev/toolbox-vault/internal/store"
	"github.com/MKhiriev/toolbox-vault/models"
)

var (
	// ErrOperationNotAllowed is returned by Dispatch for any operation name
	// outside the allowlist. Nothing is forwarded in that case.
	ErrOperationNotAllowed = errors.New("operation not allowed")

	// ErrPathNotAllowed is returned when open-path-externally targets a path
	// outside the storage root.
	ErrPathNotAllowed = errors.New("path is outside the storage root")

	// ErrOpenFailed is returned when the external opener fails.
	ErrOpenFailed = errors.New("failed to open path")

	// ErrInvalidPayload is returned when an operation payload cannot be
	// decoded.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrVersionIsNotSpecified is returned when the bridge is built without an
	// application version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// errorCodes maps failures to response codes. Checked in order; the first
// match wins.
var errorCodes = []struct {
	err  error
	code string
}{
	{store.ErrStoreBusy, models.CodeStoreBusy},
	{store.ErrInvalidInput, models.CodeInvalidInput},
	{ErrInvalidPayload, models.CodeInvalidInput},
	{store.ErrCorruptStore, models.CodeCorruptStore},
	{store.ErrWriteFailure, models.CodeWriteFailure},
	{store.ErrStorageUnavailable, models.CodeStorageUnavailable},
	{ErrPathNotAllowed, models.CodePathNotAllowed},
	{ErrOpenFailed, models.CodeOpenFailed},
}

func codeFromError(err error) string {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return models.CodeInternal
}
