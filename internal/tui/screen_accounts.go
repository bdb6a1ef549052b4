// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type accountsModel struct {
	idx int
}

func (m *accountsModel) clamp(n int) {
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m accountsModel) current(accounts []models.Account) (models.Account, bool) {
	if m.idx < 0 || m.idx >= len(accounts) {
		return models.Account{}, false
	}
	return accounts[m.idx], true
}

func (m appModel) updateAccounts(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	sessions := m.services.Accounts
	accounts := sessions.Accounts()

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.accounts.idx > 0 {
			m.accounts.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.accounts.idx < len(accounts)-1 {
			m.accounts.idx++
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.login):
		sessions.ClearError()
		m.login = newLoginFormModel()
		m.currentScreen = screenLogin
	case key.Matches(keyMsg, keys.servers):
		sessions.ClearError()
		m.servers = m.servers.reset()
		m.currentScreen = screenServers
	case key.Matches(keyMsg, keys.download):
		m.currentScreen = screenDownload
	case key.Matches(keyMsg, keys.console):
		m.console = m.console.focusCommand()
		m.currentScreen = screenConsole
	}

	if sessions.Loading() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.list):
		return m, m.cmdAccounts("Accounts reloaded", sessions.ListAccounts)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdAccounts("Account refreshed", sessions.RefreshCurrent)
	case key.Matches(keyMsg, keys.enter):
		account, ok := m.accounts.current(accounts)
		if !ok {
			return m, nil
		}
		return m, m.cmdAccounts("Account selected", func(ctx context.Context) error {
			return sessions.SelectAccount(ctx, account.ID)
		})
	case key.Matches(keyMsg, keys.delete):
		account, ok := m.accounts.current(accounts)
		if !ok {
			return m, nil
		}
		m.pendingDelete = account.ID
		m.confirm.message = account.Name
		m.showConfirm = true
	}
	return m, nil
}

func (m appModel) viewAccounts() string {
	sessions := m.services.Accounts
	accounts := sessions.Accounts()

	var b strings.Builder
	b.WriteString("Core: ")
	if m.core.Exists {
		b.WriteString(successStyle.Render("installed") + " (" + formatSize(m.core.Size) + ")")
	} else {
		b.WriteString(errorStyle.Render("missing"))
	}
	if sessions.Loading() {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	switch {
	case len(accounts) == 0 && !m.core.Exists:
		b.WriteString("The launcher core is not installed. Press g to download it.")
	case len(accounts) == 0:
		b.WriteString("No accounts. Press a to log in to an authentication server.")
	default:
		b.WriteString(renderAccountTable(accounts, m.accounts.idx))
	}

	if errMsg := sessions.Error(); errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(errMsg))
	}

	return renderPage(
		"ACCOUNTS",
		b.String(),
		"enter: select  d: delete  r: refresh  L: reload  a: login  s: servers  g: download  c: console  v: about  q: quit",
	)
}

func renderAccountTable(accounts []models.Account, idx int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("    %s │ %s │ %s │ %s\n", cell("#", 3), cell("Name", 18), cell("Type", 10), "Server"))
	for i, a := range accounts {
		cursor := "  "
		if i == idx {
			cursor = "> "
		}
		mark := " "
		if a.Selected {
			mark = "*"
		}
		line := fmt.Sprintf("%s%s %s │ %s │ %s │ %s",
			cursor,
			mark,
			cell(fmt.Sprint(a.ID), 3),
			cell(a.Name, 18),
			cell(a.Type, 10),
			fitText(valueOrDash(a.Server), 28),
		)
		if a.Selected {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
