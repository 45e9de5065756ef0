package store

import (
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/utils"
)

const defaultLockTimeout = 2 * time.Second

type options struct {
	ids         IDGenerator
	now         func() time.Time
	lockTimeout time.Duration
}

// Option customizes a credential store.
type Option func(*options)

// WithClock replaces the clock used for createdAt/updatedAt defaults.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the generator used for records saved without an id.
func WithIDGenerator(g IDGenerator) Option {
	return func(o *options) { o.ids = g }
}

// WithLockTimeout bounds the wait for the advisory file lock.
func WithLockTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.lockTimeout = d
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		lockTimeout: defaultLockTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) sanitizer() sanitizer {
	return sanitizer{ids: o.ids, now: o.now}
}
