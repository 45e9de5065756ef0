package tui

import (
	"github.com/MKhiriev/toolbox-vault/models"
)

type listLoadedMsg struct {
	snapshot models.CredentialSnapshot
	err      error
}

type itemDeletedMsg struct {
	records models.CredentialCollection
	title   string
	err     error
}

type storageOpenedMsg struct {
	path string
	err  error
}

type clearStatusMsg struct{}
