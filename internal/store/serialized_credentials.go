package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/toolbox-vault/internal/workers"
	"github.com/MKhiriev/toolbox-vault/models"
)

// serializedStore routes every call of the wrapped store through a single
// [workers.Serial] queue, so operations run one at a time in arrival order.
type serializedStore struct {
	next  CredentialStore
	queue *workers.Serial
}

// NewSerializedStore wraps next so all of its operations go through queue.
// The queue must be running.
func NewSerializedStore(next CredentialStore, queue *workers.Serial) CredentialStore {
	return &serializedStore{next: next, queue: queue}
}

func (s *serializedStore) Load(ctx context.Context) (models.CredentialCollection, error) {
	return runQueued(ctx, s.queue, s.next.Load)
}

func (s *serializedStore) Save(ctx context.Context, payload json.RawMessage) (models.CredentialCollection, error) {
	return runQueued(ctx, s.queue, func(ctx context.Context) (models.CredentialCollection, error) {
		return s.next.Save(ctx, payload)
	})
}

func (s *serializedStore) StoragePath(ctx context.Context) (models.StorageLocation, error) {
	return runQueued(ctx, s.queue, s.next.StoragePath)
}

type queuedResult[T any] struct {
	value T
	err   error
}

// runQueued executes fn on the queue. Value and error travel over a channel
// so a caller that gave up waiting never races with the job.
func runQueued[T any](ctx context.Context, q *workers.Serial, fn func(context.Context) (T, error)) (T, error) {
	res := make(chan queuedResult[T], 1)

	err := q.Do(ctx, func(ctx context.Context) error {
		v, err := fn(ctx)
		res <- queuedResult[T]{value: v, err: err}
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	r := <-res
	return r.value, r.err
}
