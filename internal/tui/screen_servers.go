// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type serversModel struct {
	idx    int
	adding bool
	inputs []textinput.Model
	focus  int
}

func newServersModel() serversModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 256
	}
	inputs[0].Placeholder = "My server"
	inputs[1].Placeholder = "auth.example.com"
	return serversModel{inputs: inputs}
}

// reset closes the add form and empties its inputs, keeping the cursor.
func (m serversModel) reset() serversModel {
	fresh := newServersModel()
	fresh.idx = m.idx
	return fresh
}

func (m serversModel) withFocus(focus int) serversModel {
	m.focus = (focus + len(m.inputs)) % len(m.inputs)
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.focus].Focus()
	return m
}

func (m *serversModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m appModel) updateServers(msg tea.Msg) (tea.Model, tea.Cmd) {
	sessions := m.services.Accounts
	if m.servers.adding {
		return m.updateServerForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	servers := sessions.AvailableServers()
	switch {
	case key.Matches(keyMsg, keys.esc):
		sessions.ClearError()
		m.currentScreen = screenAccounts
	case key.Matches(keyMsg, keys.up):
		if m.servers.idx > 0 {
			m.servers.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.servers.idx < len(servers)-1 {
			m.servers.idx++
		}
	case key.Matches(keyMsg, keys.add):
		sessions.ClearError()
		m.servers.adding = true
		m.servers = m.servers.withFocus(0)
	case key.Matches(keyMsg, keys.delete):
		if m.servers.idx >= len(servers) {
			return m, nil
		}
		address := servers[m.servers.idx].Address
		return m, m.cmdServers("Server removed", func(ctx context.Context) error {
			return sessions.RemoveCustomServer(ctx, address)
		})
	}
	return m, nil
}

func (m appModel) updateServerForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.servers = m.servers.reset()
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.servers = m.servers.withFocus(m.servers.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			name := m.servers.inputs[0].Value()
			address := m.servers.inputs[1].Value()
			return m, m.cmdServers("Server added", func(ctx context.Context) error {
				return m.services.Accounts.AddCustomServer(ctx, name, address)
			})
		}
	}

	var cmd tea.Cmd
	m.servers.inputs[m.servers.focus], cmd = m.servers.inputs[m.servers.focus].Update(msg)
	return m, cmd
}

func (m appModel) viewServers() string {
	servers := m.services.Accounts.AvailableServers()

	var b strings.Builder
	b.WriteString(renderServerTable(servers, m.servers.idx))

	hotKeys := "a: add  d: remove  esc: back"
	if m.servers.adding {
		b.WriteString("\n\nName:    [" + m.servers.inputs[0].View() + "]\n")
		b.WriteString("Address: [" + m.servers.inputs[1].View() + "]")
		hotKeys = "tab: next field  enter: save  esc: cancel"
	}

	if errMsg := m.services.Accounts.Error(); errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(errMsg))
	}

	return renderPage("AUTHENTICATION SERVERS", b.String(), hotKeys)
}

func renderServerTable(servers []models.ExternalServer, idx int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s │ %s │ %s\n", cell("Name", 16), cell("Address", 28), "Kind"))
	for i, s := range servers {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		kind := "custom"
		if s.BuiltIn {
			kind = "built-in"
		}
		b.WriteString(fmt.Sprintf("%s%s │ %s │ %s\n", cursor, cell(s.Name, 16), cell(s.Address, 28), kind))
	}
	return strings.TrimRight(b.String(), "\n")
}
