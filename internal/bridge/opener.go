package bridge

import (
	"context"

	"github.com/cli/browser"
)

//go:generate mockgen -source=opener.go -destination=../mock/opener_mock.go -package=mock

// Opener hands a path to the desktop environment (file manager, default
// application).
type Opener interface {
	Open(ctx context.Context, path string) error
}

// PathGuard decides which paths may be opened.
type PathGuard interface {
	Contains(ctx context.Context, path string) (bool, error)
}

type desktopOpener struct{}

// NewDesktopOpener returns the [Opener] backed by the platform's default
// handler (xdg-open, open, explorer).
func NewDesktopOpener() Opener {
	return desktopOpener{}
}

func (desktopOpener) Open(_ context.Context, path string) error {
	return browser.OpenFile(path)
}
