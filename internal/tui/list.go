// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/adapter"
	"github.com/MKhiriev/toolbox-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

var writeClipboard = clipboard.WriteAll

type browserModel struct {
	ctx    context.Context
	client adapter.BridgeClient

	items   models.CredentialCollection
	visible []int
	idx     int

	loading bool
	spinner spinner.Model

	filter    textinput.Model
	filtering bool

	detail        bool
	reveal        bool
	confirmDelete bool

	status  string
	warning string
	errMsg  string

	// fatal ends the program, e.g. when the host is not reachable at start.
	fatal error
}

func newBrowserModel(ctx context.Context, client adapter.BridgeClient) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	f := textinput.New()
	f.Prompt = "/ "
	f.Placeholder = "filter by title, username or website"

	return browserModel{
		ctx:     ctx,
		client:  client,
		loading: true,
		spinner: s,
		filter:  f,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m browserModel) cmdLoad() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.client.ReadAllCredentials(m.ctx)
		return listLoadedMsg{snapshot: snap, err: err}
	}
}

// cmdDelete re-reads the collection and replaces it with every record except
// the one shown at index i, so records written by other callers since the
// last load survive.
func (m browserModel) cmdDelete(i int) tea.Cmd {
	removed := m.items[i]

	return func() tea.Msg {
		snap, err := m.client.ReadAllCredentials(m.ctx)
		if err != nil {
			return itemDeletedMsg{err: err}
		}
		if snap.Code == models.CodeCorruptStore {
			return itemDeletedMsg{err: errCorruptStore}
		}

		at := slices.Index(snap.Records, removed)
		if at < 0 {
			return itemDeletedMsg{err: errRecordChanged}
		}
		rest := slices.Delete(slices.Clone(snap.Records), at, at+1)

		payload, err := json.Marshal(rest)
		if err != nil {
			return itemDeletedMsg{err: err}
		}
		saved, err := m.client.ReplaceAllCredentials(m.ctx, payload)
		return itemDeletedMsg{records: saved, title: removed.Title, err: err}
	}
}

func (m browserModel) cmdOpenStorage() tea.Cmd {
	return func() tea.Msg {
		loc, err := m.client.GetStoragePath(m.ctx)
		if err != nil {
			return storageOpenedMsg{err: err}
		}
		opened, err := m.client.OpenPathExternally(m.ctx, loc.Directory)
		return storageOpenedMsg{path: opened, err: err}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m browserModel) current() (int, models.CredentialRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return -1, models.CredentialRecord{}, false
	}
	i := m.visible[m.idx]
	return i, m.items[i], true
}

func (m *browserModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	m.visible = make([]int, 0, len(m.items))
	for i, r := range m.items {
		if query == "" ||
			strings.Contains(strings.ToLower(r.Title), query) ||
			strings.Contains(strings.ToLower(r.Username), query) ||
			strings.Contains(strings.ToLower(r.Website), query) {
			m.visible = append(m.visible, i)
		}
	}

	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *browserModel) setItems(items models.CredentialCollection) {
	m.items = items
	m.applyFilter()
}

func (m browserModel) copyField(label, value string) (browserModel, tea.Cmd) {
	if value == "" {
		m.status = "nothing to copy"
		return m, clearStatusAfter(statusTTL)
	}
	if err := writeClipboard(value); err != nil {
		m.errMsg = fmt.Sprintf("copy failed: %v", err)
		return m, nil
	}
	m.status = label + " copied"
	return m, clearStatusAfter(statusTTL)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if m.items == nil && adapter.CodeOf(msg.err) == "" {
				m.fatal = msg.err
				return m, tea.Quit
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.warning = msg.snapshot.Warning
		m.setItems(msg.snapshot.Records)
		return m, nil

	case itemDeletedMsg:
		m.loading = false
		if errors.Is(msg.err, errRecordChanged) {
			m.status = humanizeError(msg.err)
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdLoad(), clearStatusAfter(statusTTL))
		}
		if msg.err != nil {
			m.errMsg = "remove failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%q removed", msg.title)
		m.setItems(msg.records)
		return m, clearStatusAfter(statusTTL)

	case storageOpenedMsg:
		if msg.err != nil {
			m.errMsg = "open failed: " + humanizeError(msg.err)
			return m, nil
		}
		m.status = "opened " + msg.path
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.filtering:
		return m.updateFilter(keyMsg)
	case m.confirmDelete:
		return m.updateConfirm(keyMsg)
	case m.detail:
		return m.updateDetail(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.filtering = false
		m.filter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m browserModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		m.detail = false
		i, _, ok := m.current()
		if !ok {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdDelete(i))
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirmDelete = false
	}
	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	_, item, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.detail = false
		m.reveal = false
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		return m.copyField("password", item.Password)
	case key.Matches(msg, keys.copyUser):
		return m.copyField("username", item.Username)
	case key.Matches(msg, keys.delete):
		m.confirmDelete = true
	}
	return m, nil
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, _, ok := m.current(); ok {
			m.detail = true
		}
	case key.Matches(msg, keys.filter):
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case key.Matches(msg, keys.copy):
		if _, item, ok := m.current(); ok {
			return m.copyField("password", item.Password)
		}
	case key.Matches(msg, keys.copyUser):
		if _, item, ok := m.current(); ok {
			return m.copyField("username", item.Username)
		}
	case key.Matches(msg, keys.delete):
		if _, _, ok := m.current(); ok {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.open):
		return m, m.cmdOpenStorage()
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	}
	return m, nil
}

func (m browserModel) View() string {
	if m.confirmDelete {
		if _, item, ok := m.current(); ok {
			return appStyle.Render(confirmModel{title: item.Title}.View())
		}
	}
	if m.detail {
		if _, item, ok := m.current(); ok {
			return detailModel{item: item, reveal: m.reveal}.View() + m.footer()
		}
	}

	title := fmt.Sprintf("Toolbox vault (%d)", len(m.items))
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var b strings.Builder
	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && m.items == nil:
		b.WriteString("loading...\n")
	case len(m.visible) == 0:
		b.WriteString("no records\n")
	default:
		for pos, i := range m.visible {
			r := m.items[i]
			line := fmt.Sprintf("%-28s %-24s %s", fitText(valueOrDash(r.Title), 28), fitText(r.Username, 24), fitText(r.Website, 32))
			if pos == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	return renderPage(title, b.String(), "enter details  / filter  c copy  u user  d remove  o open folder  r reload  q quit") + m.footer()
}

func (m browserModel) footer() string {
	var b strings.Builder
	if m.warning != "" {
		b.WriteString("\n" + warnStyle.Render("warning: "+m.warning))
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg))
	}
	return b.String()
}
