package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/toolbox-vault/models"
)

type detailModel struct {
	item   models.CredentialRecord
	reveal bool
}

func (m detailModel) View() string {
	password := mask(m.item.Password)
	if m.reveal {
		password = valueOrDash(m.item.Password)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Title:     %s\n", valueOrDash(m.item.Title))
	fmt.Fprintf(&b, "Username:  %s\n", valueOrDash(m.item.Username))
	fmt.Fprintf(&b, "Password:  %s\n", password)
	fmt.Fprintf(&b, "Website:   %s\n", valueOrDash(m.item.Website))
	fmt.Fprintf(&b, "Notes:     %s\n", valueOrDash(m.item.Notes))
	fmt.Fprintf(&b, "Created:   %s\n", valueOrDash(m.item.CreatedAt))
	fmt.Fprintf(&b, "Updated:   %s\n", valueOrDash(m.item.UpdatedAt))
	fmt.Fprintf(&b, "ID:        %s\n", valueOrDash(m.item.ID))

	return renderPage(valueOrDash(m.item.Title), b.String(), "space show/hide  c copy password  u copy username  d remove  esc back")
}
