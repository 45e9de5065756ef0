// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locator resolves the single writable storage root of the host
// process and derives every credential-related path from it.
//
// Resolution walks an ordered fallback chain and stops at the first tier
// whose directories can be ensured:
//  1. primary: the configured data root, or "<executable dir>/data";
//  2. home: "<user home>/<HomeDirName>";
//  3. temp: "<os temp dir>/<HomeDirName>", only when enabled.
//
// The result, success or failure, is computed once per [Locator] and reused.
package locator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/toolbox-vault/internal/config"
	"github.com/MKhiriev/toolbox-vault/internal/fsys"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/adrg/xdg"
)

const (
	vaultDirName       = "passwords"
	credentialFileName = "passwords.json"
	logFileName        = "host.log"
	primaryDataDirName = "data"

	dirPerm = 0o700
)

// ErrStorageUnavailable is returned when no tier of the fallback chain
// yielded a usable directory.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Locator resolves and caches the storage root of the process that owns it.
type Locator struct {
	fs     fsys.FS
	logger *logger.Logger

	primaryDir  string
	homeBase    string
	tempBase    string
	homeDirName string
	allowTemp   bool
	executable  func() (string, error)

	once sync.Once
	root models.StorageRoot
	err  error
}

// Option customizes a Locator.
type Option func(*Locator)

// WithHomeBase overrides the user home directory (xdg.Home by default).
func WithHomeBase(dir string) Option {
	return func(l *Locator) { l.homeBase = dir }
}

// WithTempBase overrides the temp directory (os.TempDir by default).
func WithTempBase(dir string) Option {
	return func(l *Locator) { l.tempBase = dir }
}

// WithExecutable overrides how the host executable path is found when no
// primary directory is configured.
func WithExecutable(fn func() (string, error)) Option {
	return func(l *Locator) { l.executable = fn }
}

// New constructs a Locator over fs using the storage configuration.
func New(filesystem fsys.FS, cfg config.Storage, log *logger.Logger, opts ...Option) *Locator {
	l := &Locator{
		fs:          filesystem,
		logger:      log,
		primaryDir:  cfg.PrimaryDir,
		homeBase:    xdg.Home,
		tempBase:    os.TempDir(),
		homeDirName: cfg.HomeDirName,
		allowTemp:   cfg.AllowTempFallback,
		executable:  os.Executable,
	}
	if l.homeDirName == "" {
		l.homeDirName = config.DefaultHomeDirName
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Resolve returns the storage root, resolving it on the first call.
// Later calls return the same root or the same error.
func (l *Locator) Resolve(ctx context.Context) (models.StorageRoot, error) {
	l.once.Do(func() {
		l.root, l.err = l.resolve()
	})
	return l.root, l.err
}

type tier struct {
	strategy models.Strategy
	dir      func() (string, error)
}

func (l *Locator) tiers() []tier {
	tiers := []tier{
		{strategy: models.StrategyPrimary, dir: l.primaryRoot},
		{strategy: models.StrategyHome, dir: func() (string, error) {
			if l.homeBase == "" {
				return "", errors.New("home directory is unknown")
			}
			return filepath.Join(l.homeBase, l.homeDirName), nil
		}},
	}
	if l.allowTemp {
		tiers = append(tiers, tier{strategy: models.StrategyTemp, dir: func() (string, error) {
			return filepath.Join(l.tempBase, l.homeDirName), nil
		}})
	}
	return tiers
}

func (l *Locator) resolve() (models.StorageRoot, error) {
	var errs []error

	for _, t := range l.tiers() {
		dir, err := t.dir()
		if err == nil {
			dir, err = filepath.Abs(dir)
		}
		if err == nil {
			err = l.ensure(dir)
		}
		if err != nil {
			l.logger.Warn().Err(err).Str("strategy", string(t.strategy)).Msg("storage tier unusable")
			errs = append(errs, fmt.Errorf("%s tier: %w", t.strategy, err))
			continue
		}

		l.logger.Info().Str("dir", dir).Str("strategy", string(t.strategy)).Msg("storage root resolved")
		return models.StorageRoot{Dir: dir, Strategy: t.strategy}, nil
	}

	l.logger.Error().Msg("no storage tier could be used")
	return models.StorageRoot{}, fmt.Errorf("%w: %w", ErrStorageUnavailable, errors.Join(errs...))
}

func (l *Locator) primaryRoot() (string, error) {
	if l.primaryDir != "" {
		return l.primaryDir, nil
	}

	exe, err := l.executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), primaryDataDirName), nil
}

// ensure makes sure root and its vault directory exist. An existing
// directory counts as success.
func (l *Locator) ensure(root string) error {
	info, err := l.fs.Stat(root)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("%s is not a directory", root)
		}
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Debug().Str("dir", root).Msg("creating storage root")
		if err := l.fs.MkdirAll(root, dirPerm); err != nil {
			return err
		}
	default:
		return err
	}

	return l.fs.MkdirAll(filepath.Join(root, vaultDirName), dirPerm)
}

// VaultDir returns "<root>/passwords".
func (l *Locator) VaultDir(ctx context.Context) (string, error) {
	root, err := l.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(root.Dir, vaultDirName), nil
}

// CredentialFile returns "<root>/passwords/passwords.json".
func (l *Locator) CredentialFile(ctx context.Context) (string, error) {
	dir, err := l.VaultDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialFileName), nil
}

// LogFile returns "<root>/host.log".
func (l *Locator) LogFile(ctx context.Context) (string, error) {
	root, err := l.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(root.Dir, logFileName), nil
}

// Contains reports whether path lies inside the resolved root. Relative
// paths are interpreted relative to the root. Symlinks are followed on both
// sides, so a link inside the root that points elsewhere is outside.
func (l *Locator) Contains(ctx context.Context, path string) (bool, error) {
	root, err := l.Resolve(ctx)
	if err != nil {
		return false, err
	}
	if path == "" {
		return false, nil
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(root.Dir, path)
	}

	rel, err := filepath.Rel(evalExisting(root.Dir), evalExisting(path))
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

// evalExisting resolves symlinks in the longest existing prefix of path and
// appends the remaining components unchanged.
func evalExisting(path string) string {
	path = filepath.Clean(path)

	var rest []string
	for {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			return filepath.Join(append([]string{resolved}, rest...)...)
		}
		parent := filepath.Dir(path)
		if parent == path {
			return filepath.Join(append([]string{path}, rest...)...)
		}
		rest = append([]string{filepath.Base(path)}, rest...)
		path = parent
	}
}
