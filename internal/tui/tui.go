// Package tui is the interactive credential browser of the vault CLI.
//
// It lists the stored records through the capability bridge and lets the
// user filter, inspect, copy and remove them, or open the storage folder.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/toolbox-vault/internal/adapter"
	"github.com/MKhiriev/toolbox-vault/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	client adapter.BridgeClient
	logger *logger.Logger
}

func New(client adapter.BridgeClient, logger *logger.Logger) *TUI {
	return &TUI{client: client, logger: logger}
}

// Browse runs the browser until the user quits.
func (t *TUI) Browse(ctx context.Context) error {
	final, err := tea.NewProgram(newBrowserModel(ctx, t.client), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if m, ok := final.(browserModel); ok && m.fatal != nil {
		return m.fatal
	}
	return nil
}
