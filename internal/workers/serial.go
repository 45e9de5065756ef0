// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/toolbox-vault/internal/logger"
)

// ErrQueueClosed is returned by [Serial.Do] once the queue has been stopped.
var ErrQueueClosed = errors.New("serial queue is closed")

// Job is a unit of work executed by [Serial].
type Job func(ctx context.Context) error

type queuedJob struct {
	ctx    context.Context
	fn     Job
	result chan error
}

// Serial runs jobs one at a time on a single goroutine, in the order they were
// submitted. A job that has been dequeued always runs to completion: the
// context it receives keeps the submitter's values but not its cancellation.
type Serial struct {
	jobs   chan queuedJob
	quit   chan struct{}
	done   chan struct{}
	logger *logger.Logger

	startOnce sync.Once
	stopOnce  sync.Once
}

// NewSerial creates a queue buffering up to size pending jobs.
func NewSerial(size int, log *logger.Logger) *Serial {
	if size < 0 {
		size = 0
	}
	return &Serial{
		jobs:   make(chan queuedJob, size),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		logger: log,
	}
}

// Run starts the worker goroutine. It returns immediately; the worker exits
// when ctx is done or Stop is called. Calling Run more than once is a no-op.
func (s *Serial) Run(ctx context.Context) {
	s.startOnce.Do(func() {
		go s.loop(ctx)
	})
}

// Stop stops accepting jobs, finishes the ones already queued and waits for
// the worker to exit. Stop must only be called after Run.
func (s *Serial) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	<-s.done
}

// Do submits fn and waits for its result. If ctx ends first, Do returns
// ctx.Err(); a job that was already queued still runs.
func (s *Serial) Do(ctx context.Context, fn Job) error {
	j := queuedJob{ctx: context.WithoutCancel(ctx), fn: fn, result: make(chan error, 1)}

	select {
	case <-s.quit:
		return ErrQueueClosed
	default:
	}

	select {
	case s.jobs <- j:
	case <-s.quit:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-j.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-s.done:
		// the worker may have finished the job right before exiting
		select {
		case err := <-j.result:
			return err
		default:
			return ErrQueueClosed
		}
	}
}

func (s *Serial) loop(ctx context.Context) {
	defer close(s.done)

	for {
		select {
		case j := <-s.jobs:
			s.exec(j)
		case <-s.quit:
			s.drain()
			return
		case <-ctx.Done():
			s.stopOnce.Do(func() { close(s.quit) })
			s.drain()
			return
		}
	}
}

func (s *Serial) drain() {
	for {
		select {
		case j := <-s.jobs:
			s.exec(j)
		default:
			return
		}
	}
}

func (s *Serial) exec(j queuedJob) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("serial job panicked")
			j.result <- fmt.Errorf("job panicked: %v", r)
		}
	}()

	j.result <- j.fn(j.ctx)
}
