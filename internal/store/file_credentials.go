// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/fsys"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/gofrs/flock"
)

const (
	filePerm       = 0o600
	lockSuffix     = ".lock"
	lockRetryDelay = 25 * time.Millisecond
)

// fileStore is the [CredentialStore] backed by a single JSON file whose
// location comes from a [PathLocator].
//
// Every operation holds an advisory lock on "<file>.lock" so two host
// processes never interleave. Within one process callers are expected to go
// through [NewSerializedStore].
type fileStore struct {
	fs      fsys.FS
	locator PathLocator
	logger  *logger.Logger

	sanitizer   sanitizer
	lockTimeout time.Duration
}

// NewFileStore constructs the file-backed [CredentialStore].
func NewFileStore(filesystem fsys.FS, loc PathLocator, logger *logger.Logger, opts ...Option) CredentialStore {
	logger.Debug().Msg("creating file credential store")

	o := buildOptions(opts)
	return &fileStore{
		fs:          filesystem,
		locator:     loc,
		logger:      logger,
		sanitizer:   o.sanitizer(),
		lockTimeout: o.lockTimeout,
	}
}

// Load reads the credential file.
//
// A missing file yields an empty collection; neither it nor its lock file is
// created. A file that does not decode into records yields an empty
// collection and [ErrCorruptStore]; its bytes are kept on disk for manual
// recovery.
func (s *fileStore) Load(ctx context.Context) (models.CredentialCollection, error) {
	path, err := s.locator.CredentialFile(ctx)
	if err != nil {
		return models.CredentialCollection{}, fmt.Errorf("resolving credential file: %w", err)
	}

	exists, err := fsys.Exists(s.fs, path)
	if err != nil {
		s.logger.Err(err).Str("path", path).Msg("error checking credential file")
		return models.CredentialCollection{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if !exists {
		s.logger.Debug().Str("path", path).Msg("credential file does not exist yet")
		return models.CredentialCollection{}, nil
	}

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return models.CredentialCollection{}, classify(err, ErrStorageUnavailable)
	}
	defer unlock()

	data, err := s.fs.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", path).Msg("credential file removed before read")
		return models.CredentialCollection{}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("path", path).Msg("error reading credential file")
		return models.CredentialCollection{}, fmt.Errorf("%w: reading %s: %w", ErrStorageUnavailable, path, err)
	}

	records, err := decodeCollection(data)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("credential file is corrupt, treating as empty")
		return models.CredentialCollection{}, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	collection := toCollection(records)
	s.logger.Debug().Int("count", len(collection)).Msg("credentials loaded")
	return collection, nil
}

// Save validates payload before touching the filesystem, then replaces the
// credential file atomically.
func (s *fileStore) Save(ctx context.Context, payload json.RawMessage) (models.CredentialCollection, error) {
	records, err := decodeCollection(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	collection := s.sanitizer.sanitize(records)
	if dups := collection.DuplicateIDs(); len(dups) > 0 {
		s.logger.Warn().Strs("ids", dups).Msg("saving credentials with duplicate ids")
	}

	data, err := encodeCollection(collection)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding: %w", ErrWriteFailure, err)
	}

	path, err := s.locator.CredentialFile(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving credential file: %w", err)
	}

	unlock, err := s.lock(ctx, path)
	if err != nil {
		return nil, classify(err, ErrWriteFailure)
	}
	defer unlock()

	if err := s.fs.WriteFile(path, data, filePerm); err != nil {
		s.logger.Err(err).Str("path", path).Msg("error writing credential file")
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	s.logger.Info().Int("count", len(collection)).Msg("credentials saved")
	return collection, nil
}

// StoragePath reports the credential file, its directory and the fallback
// tier they were resolved from.
func (s *fileStore) StoragePath(ctx context.Context) (models.StorageLocation, error) {
	root, err := s.locator.Resolve(ctx)
	if err != nil {
		return models.StorageLocation{}, err
	}
	dir, err := s.locator.VaultDir(ctx)
	if err != nil {
		return models.StorageLocation{}, err
	}
	file, err := s.locator.CredentialFile(ctx)
	if err != nil {
		return models.StorageLocation{}, err
	}

	return models.StorageLocation{FilePath: file, Directory: dir, Strategy: root.Strategy}, nil
}

// lock takes the advisory lock next to path, waiting at most lockTimeout.
func (s *fileStore) lock(ctx context.Context, path string) (func(), error) {
	fl := flock.New(path + lockSuffix)

	lockCtx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	locked, err := fl.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("locking %s: %w", fl.Path(), err)
	}
	if !locked {
		s.logger.Warn().Str("lock", fl.Path()).Dur("timeout", s.lockTimeout).Msg("credential file is locked by another process")
		return nil, fmt.Errorf("%w: lock %s not acquired within %s", ErrStoreBusy, fl.Path(), s.lockTimeout)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			s.logger.Err(err).Str("lock", fl.Path()).Msg("error releasing lock")
		}
	}, nil
}

// classify keeps ErrStoreBusy as is and files every other lock error under
// fallback.
func classify(err, fallback error) error {
	if errors.Is(err, ErrStoreBusy) {
		return err
	}
	return fmt.Errorf("%w: %w", fallback, err)
}
