// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus 0 is the server selector, the rest index inputs shifted by one.
const loginFieldCount = 3

type loginFormModel struct {
	serverIdx  int
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginFormModel() loginFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 128
	}
	inputs[0].Placeholder = "email or username"
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '*'
	return loginFormModel{inputs: inputs}
}

func (m loginFormModel) withFocus(focus int) loginFormModel {
	m.focus = (focus + loginFieldCount) % loginFieldCount
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if m.focus > 0 {
		m.inputs[m.focus-1].Focus()
	}
	return m
}

func (m loginFormModel) cycleServer(delta, count int) loginFormModel {
	if count == 0 {
		m.serverIdx = 0
		return m
	}
	m.serverIdx = ((m.serverIdx+delta)%count + count) % count
	return m
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	servers := m.services.Accounts.AvailableServers()

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.services.Accounts.ClearError()
			m.currentScreen = screenAccounts
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.withFocus(m.login.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.withFocus(m.login.focus - 1)
			return m, nil
		case m.login.focus == 0 && key.Matches(keyMsg, keys.left):
			m.login = m.login.cycleServer(-1, len(servers))
			return m, nil
		case m.login.focus == 0 && key.Matches(keyMsg, keys.right):
			m.login = m.login.cycleServer(1, len(servers))
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting || len(servers) == 0 {
				return m, nil
			}
			address := servers[m.login.serverIdx%len(servers)].Address
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			m.login.submitting = true
			return m, m.cmdAccounts("Logged in", func(ctx context.Context) error {
				return m.services.Accounts.LoginExternal(ctx, address, username, password)
			})
		}
	}

	if m.login.focus == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	i := m.login.focus - 1
	m.login.inputs[i], cmd = m.login.inputs[i].Update(msg)
	return m, cmd
}

func (m appModel) viewLogin() string {
	servers := m.services.Accounts.AvailableServers()

	var b strings.Builder
	b.WriteString("Server:   ")
	b.WriteString(renderServerChoice(servers, m.login.serverIdx, m.login.focus == 0))
	b.WriteString("\n")
	b.WriteString("Username: [" + m.login.inputs[0].View() + "]\n")
	b.WriteString("Password: [" + m.login.inputs[1].View() + "]")

	if m.login.submitting {
		b.WriteString("\n\n" + m.spinner.View() + " logging in...")
	}
	if errMsg := m.services.Accounts.Error(); errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(errMsg))
	}

	return renderPage("LOG IN", b.String(), "←/→: server  tab: next field  enter: log in  esc: back")
}

func renderServerChoice(servers []models.ExternalServer, idx int, focused bool) string {
	if len(servers) == 0 {
		return "-"
	}
	s := servers[idx%len(servers)]
	choice := "◀ " + s.Name + " (" + s.Address + ") ▶"
	if focused {
		return selectedStyle.Render(choice)
	}
	return choice
}
