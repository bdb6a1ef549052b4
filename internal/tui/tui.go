// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the launcher.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/service"
	"github.com/MKhiriev/acgs-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services   *service.LauncherServices
	coreStatus <-chan models.CoreStatus
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

// New builds the UI. coreStatus may be nil when the core watcher is
// disabled; the core status is then refreshed only after downloads.
func New(services *service.LauncherServices, coreStatus <-chan models.CoreStatus, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:   services,
		coreStatus: coreStatus,
		buildInfo:  buildInfo,
		logger:     log,
	}
}

// Run blocks until the user quits or ctx is cancelled. A running download is
// cancelled on return.
func (t *TUI) Run(ctx context.Context) error {
	defer t.services.Download.Close()

	model := newAppModel(ctx, t.services, t.coreStatus, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
