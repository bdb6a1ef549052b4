// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/acgs-launcher/internal/adapter"
	"github.com/MKhiriev/acgs-launcher/internal/browser"
	"github.com/MKhiriev/acgs-launcher/internal/environment"
	"github.com/MKhiriev/acgs-launcher/internal/events"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/process"
	"github.com/MKhiriev/acgs-launcher/internal/store"
	"github.com/MKhiriev/acgs-launcher/internal/utils"
	"github.com/MKhiriev/acgs-launcher/models"
)

// Dependencies are the collaborators the launcher sessions are built from.
type Dependencies struct {
	Storages   *store.LauncherStorages
	Shell      process.Invoker
	Tool       process.ToolRunner
	Downloader adapter.CoreDownloader
	Java       environment.JavaChecker
	Opener     browser.Opener
	Progress   *events.Broker[models.DownloadProgress]
	Links      WizardLinks
}

type LauncherServices struct {
	Accounts AccountSession
	Download DownloadSession
	Console  ConsoleSession
	// Wizard is nil when first-run setup has already been completed.
	Wizard   SetupWizard
	Links    WizardLinks
}

func NewLauncherServices(ctx context.Context, deps Dependencies, log *logger.Logger) *LauncherServices {
	ids := utils.NewUUIDGenerator()
	workspace := deps.Storages.Workspace

	services := &LauncherServices{
		Accounts: NewAccountSession(ctx, deps.Tool, workspace, deps.Storages.Preferences, log),
		Download: NewDownloadSession(deps.Downloader, workspace, deps.Progress, ids, log),
		Console:  NewConsoleSession(deps.Shell, ids, log),
		Links:    deps.Links,
	}

	if !workspace.CompletionMarkerExists() {
		services.Wizard = NewSetupWizard(ctx, deps.Java, workspace, deps.Opener, deps.Links, log)
	}

	return services
}
