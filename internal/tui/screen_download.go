// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type downloadModel struct {
	bar progress.Model
}

func newDownloadModel() downloadModel {
	return downloadModel{bar: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))}
}

func (m appModel) updateDownload(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenAccounts
	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.download):
		if m.services.Download.Loading() {
			return m, nil
		}
		return m, m.cmdDownload()
	}
	return m, nil
}

func (m appModel) viewDownload() string {
	session := m.services.Download

	var b strings.Builder
	if m.core.Exists {
		b.WriteString("Core: " + successStyle.Render("installed") + "\n")
		b.WriteString("Path: " + m.core.Path + "\n")
		b.WriteString("Size: " + formatSize(m.core.Size))
	} else {
		b.WriteString("Core: " + errorStyle.Render("missing"))
	}

	if session.Loading() {
		b.WriteString("\n\n" + m.download.progressLine(session.Progress(), m.spinner.View()))
	}

	if errMsg := session.Error(); errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render(errMsg))
	}

	hotKeys := "enter: download  esc: back"
	if m.core.Exists {
		hotKeys = "enter: download again  esc: back"
	}
	return renderPage("LAUNCHER CORE", b.String(), hotKeys)
}

// progressLine renders the transfer state below the core status. A finished
// transfer is still loading while the file is moved into place.
func (m downloadModel) progressLine(p *models.DownloadProgress, spin string) string {
	switch {
	case p == nil:
		return spin + " connecting..."
	case p.Done():
		return m.bar.ViewAs(1) + "  " + spin + " finishing..."
	case p.TotalBytes != nil:
		return m.bar.ViewAs(p.Percentage/100) + "  " + formatSize(p.DownloadedBytes) + " / " + formatSize(*p.TotalBytes)
	default:
		return spin + " " + formatSize(p.DownloadedBytes) + " downloaded"
	}
}
