// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	transcriptStyles = map[models.EntryKind]lipgloss.Style{
		models.EntryCommand: lipgloss.NewStyle().Bold(true),
		models.EntryOutput:  lipgloss.NewStyle(),
		models.EntryError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		models.EntryStdin:   lipgloss.NewStyle().Faint(true),
	}
)
