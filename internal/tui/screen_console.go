// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const transcriptTail = 20

type consoleModel struct {
	command     textinput.Model
	stdin       textarea.Model
	interactive bool
	focusStdin  bool
}

func newConsoleModel() consoleModel {
	command := textinput.New()
	command.Prompt = "> "
	command.Placeholder = "account --list"
	command.Width = 60

	stdin := textarea.New()
	stdin.Placeholder = "one input line per row"
	stdin.ShowLineNumbers = false
	stdin.SetWidth(60)
	stdin.SetHeight(4)

	return consoleModel{command: command, stdin: stdin}
}

func (m consoleModel) focusCommand() consoleModel {
	m.focusStdin = false
	m.stdin.Blur()
	m.command.Focus()
	return m
}

func (m consoleModel) focusInput() consoleModel {
	m.focusStdin = true
	m.command.Blur()
	m.stdin.Focus()
	return m
}

func (m appModel) updateConsole(msg tea.Msg) (tea.Model, tea.Cmd) {
	session := m.services.Console

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenAccounts
			return m, nil
		case key.Matches(keyMsg, keys.clear):
			session.Clear()
			return m, nil
		case key.Matches(keyMsg, keys.interactive):
			m.console.interactive = !m.console.interactive
			m.console = m.console.focusCommand()
			return m, nil
		case m.console.interactive && key.Matches(keyMsg, keys.tab):
			if m.console.focusStdin {
				m.console = m.console.focusCommand()
			} else {
				m.console = m.console.focusInput()
			}
			return m, nil
		case !m.console.focusStdin && key.Matches(keyMsg, keys.enter):
			if session.Executing() {
				return m, nil
			}
			command := m.console.command.Value()
			m.console.command.Reset()
			if !m.console.interactive {
				return m, m.cmdConsole(func(ctx context.Context) error {
					return session.Submit(ctx, command)
				})
			}
			input := strings.Split(m.console.stdin.Value(), "\n")
			m.console.stdin.Reset()
			return m, m.cmdConsole(func(ctx context.Context) error {
				return session.SubmitInteractive(ctx, command, input)
			})
		}
	}

	var cmd tea.Cmd
	if m.console.focusStdin {
		m.console.stdin, cmd = m.console.stdin.Update(msg)
	} else {
		m.console.command, cmd = m.console.command.Update(msg)
	}
	return m, cmd
}

func (m appModel) viewConsole() string {
	session := m.services.Console

	var b strings.Builder
	b.WriteString(renderTranscript(session.Transcript(), transcriptTail))
	if session.Executing() {
		b.WriteString("\n" + m.spinner.View() + " running...")
	}

	b.WriteString("\n\n" + m.console.command.View())
	hotKeys := "enter: run  ctrl+t: interactive  ctrl+l: clear  esc: back"
	if m.console.interactive {
		b.WriteString("\n\nInput:\n" + m.console.stdin.View())
		hotKeys = "enter: run  tab: switch field  ctrl+t: plain mode  ctrl+l: clear  esc: back"
	}

	return renderPage("CONSOLE", b.String(), hotKeys)
}

func renderTranscript(entries []models.TranscriptEntry, tail int) string {
	if len(entries) == 0 {
		return helpStyle.Render("No commands yet.")
	}
	if len(entries) > tail {
		entries = entries[len(entries)-tail:]
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		style, ok := transcriptStyles[e.Kind]
		if !ok {
			lines = append(lines, e.Text)
			continue
		}
		lines = append(lines, style.Render(e.Text))
	}
	return strings.Join(lines, "\n")
}
