package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

func printRecords(w io.Writer, records models.CredentialCollection) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No credentials stored")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("ID")+"\t"+headerStyle.Render("TITLE")+"\t"+headerStyle.Render("USERNAME")+"\t"+headerStyle.Render("WEBSITE"))
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Title, r.Username, r.Website)
	}
	tw.Flush()
}

func printRecord(w io.Writer, r models.CredentialRecord, reveal bool) {
	password := strings.Repeat("*", 8)
	if reveal || r.Password == "" {
		password = r.Password
	}

	fields := [][2]string{
		{"ID", r.ID},
		{"Title", r.Title},
		{"Username", r.Username},
		{"Password", password},
		{"Website", r.Website},
		{"Notes", r.Notes},
		{"Created", r.CreatedAt},
		{"Updated", r.UpdatedAt},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render(fmt.Sprintf("%-9s", f[0]+":")), f[1])
	}
}

func printWarning(w io.Writer, snap models.CredentialSnapshot) {
	if snap.Warning == "" {
		return
	}
	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("warning: %s (%s)", snap.Warning, snap.Code)))
}
