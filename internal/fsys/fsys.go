// Package fsys is the filesystem capability consumed by the storage locator
// and the credential store. Only the host process holds an FS; nothing on the
// caller side of the bridge can reach one.
package fsys

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"

	"github.com/natefinch/atomic"
)

//go:generate mockgen -source=fsys.go -destination=../mock/fsys_mock.go -package=mock

// FS is the exists/mkdir/readFile/writeFile capability.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	ReadFile(name string) ([]byte, error)
	// WriteFile replaces name with data. Implementations must never leave a
	// truncated file behind: either the old or the new content survives.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type osFS struct{}

// OS returns the FS backed by the real operating system.
func OS() FS {
	return osFS{}
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes to a temp file in the same directory and renames it over
// name.
func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := atomic.WriteFile(name, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("atomic write %s: %w", name, err)
	}
	if err := os.Chmod(name, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", name, err)
	}
	return nil
}

// Exists reports whether name exists. Errors other than "not exist" are
// returned as is.
func Exists(fsys FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}
