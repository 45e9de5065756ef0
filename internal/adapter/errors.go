package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrOperationRefused is returned when the host does not expose the
	// requested operation.
	ErrOperationRefused    = errors.New("operation refused by host")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadRequest          = errors.New("bad request")
	ErrInternalServerError = errors.New("internal server error")
	ErrBridgeUnavailable   = errors.New("bridge host is unavailable")
	ErrMalformedResponse   = errors.New("malformed bridge response")
)

// OperationError is a failure reported by the host inside the bridge
// envelope. Code is one of the models.Code* values.
type OperationError struct {
	Operation string
	Code      string
	Message   string
}

func (e *OperationError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Operation, e.Message, e.Code)
}

// CodeOf returns the bridge failure code carried by err, or "" if err is not
// an [OperationError].
func CodeOf(err error) string {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Code
	}
	return ""
}
