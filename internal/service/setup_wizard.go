// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/acgs-launcher/internal/browser"
	"github.com/MKhiriev/acgs-launcher/internal/environment"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/store"
	"github.com/MKhiriev/acgs-launcher/models"
)

// WizardLinks are the pages the wizard can open in the browser.
type WizardLinks struct {
	JavaDownloadURL string
	LicenseURL      string
}

type setupWizard struct {
	env       environment.JavaChecker
	workspace store.Workspace
	opener    browser.Opener
	links     WizardLinks

	mu    sync.Mutex
	state models.WizardState

	logger *logger.Logger
}

// NewSetupWizard creates a [SetupWizard] positioned at the environment check
// and runs that check before returning.
func NewSetupWizard(
	ctx context.Context,
	env environment.JavaChecker,
	workspace store.Workspace,
	opener browser.Opener,
	links WizardLinks,
	log *logger.Logger,
) SetupWizard {
	w := &setupWizard{
		env:       env,
		workspace: workspace,
		opener:    opener,
		links:     links,
		logger:    log.WithComponent("wizard"),
	}
	w.CheckEnvironment(ctx)
	return w
}

func (w *setupWizard) CheckEnvironment(ctx context.Context) {
	if !w.begin(models.StepEnvironmentCheck) {
		return
	}

	status := w.env.Check(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Loading = false
	w.state.Java = status
	w.state.StepCompleted[models.StepEnvironmentCheck] = status.Installed
	if !status.Installed {
		err := fmt.Errorf("%w: found %q", ErrEnvironmentUnmet, status.Version)
		if status.Version == "" {
			err = ErrEnvironmentUnmet
		}
		w.state.Error = UserMessage(err)
		w.logger.Warn().Str("func", "setupWizard.CheckEnvironment").Str("version", status.Version).Msg("java requirement not met")
	}
}

func (w *setupWizard) Advance(ctx context.Context) {
	w.mu.Lock()
	s := &w.state
	if s.Done || s.Loading || !s.StepCompleted[s.CurrentStep] || s.CurrentStep >= models.LastWizardStep {
		w.mu.Unlock()
		return
	}
	s.CurrentStep++
	s.Error = ""
	entered := s.CurrentStep
	pending := !s.StepCompleted[entered]
	w.mu.Unlock()

	w.logger.Debug().Str("func", "setupWizard.Advance").Stringer("step", entered).Msg("step entered")

	if pending {
		w.runStep(ctx, entered)
	}
}

func (w *setupWizard) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := &w.state
	if s.Done || s.Loading || s.CurrentStep == models.StepEnvironmentCheck {
		return
	}
	s.CurrentStep--
	s.Error = ""
	s.LicensePromptOpen = false
}

func (w *setupWizard) RetryCurrent(ctx context.Context) {
	w.mu.Lock()
	step := w.state.CurrentStep
	w.mu.Unlock()

	w.runStep(ctx, step)
}

// runStep performs the side effect of step. Directory setup and finalize are
// idempotent, so re-running them after success is harmless.
func (w *setupWizard) runStep(ctx context.Context, step models.WizardStep) {
	switch step {
	case models.StepEnvironmentCheck:
		w.CheckEnvironment(ctx)
	case models.StepDirectorySetup:
		w.createDirectory()
	case models.StepLicenseAgreement:
		w.OpenLicense()
	case models.StepFinalize:
		w.finalize()
	}
}

func (w *setupWizard) createDirectory() {
	if !w.begin(models.StepDirectorySetup) {
		return
	}

	dir, err := w.workspace.CreateWorkingDirectory()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Loading = false
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDirectoryCreateFailed, err)
		w.state.Error = UserMessage(err)
		w.logger.Err(err).Str("func", "setupWizard.createDirectory").Msg("error creating working directory")
		return
	}
	w.state.WorkDir = dir
	w.state.StepCompleted[models.StepDirectorySetup] = true
}

func (w *setupWizard) finalize() {
	if !w.begin(models.StepFinalize) {
		return
	}

	err := w.workspace.PersistCompletionMarker()

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Loading = false
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
		w.state.Error = UserMessage(err)
		w.logger.Err(err).Str("func", "setupWizard.finalize").Msg("error writing completion marker")
		return
	}
	w.state.StepCompleted[models.StepFinalize] = true
	w.state.Done = true
	w.logger.Info().Str("func", "setupWizard.finalize").Str("workdir", w.workspace.Root()).Msg("setup completed")
}

// begin marks the wizard as loading when step is the current step and no
// other side effect is running.
func (w *setupWizard) begin(step models.WizardStep) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Done || w.state.Loading || w.state.CurrentStep != step {
		return false
	}
	w.state.Loading = true
	w.state.Error = ""
	return true
}

func (w *setupWizard) OpenLicense() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Done || w.state.CurrentStep != models.StepLicenseAgreement {
		return
	}
	w.state.LicensePromptOpen = true
}

func (w *setupWizard) AcceptLicense() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Done || w.state.CurrentStep != models.StepLicenseAgreement {
		return
	}
	w.state.StepCompleted[models.StepLicenseAgreement] = true
	w.state.LicensePromptOpen = false
	w.state.Error = ""
}

func (w *setupWizard) DeclineLicense() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Done || w.state.CurrentStep != models.StepLicenseAgreement {
		return
	}
	w.state.StepCompleted[models.StepLicenseAgreement] = false
	w.state.LicensePromptOpen = false
	w.state.Error = UserMessage(ErrLicenseDeclined)
}

func (w *setupWizard) OpenJavaDownload() error {
	return w.openLink("setupWizard.OpenJavaDownload", w.links.JavaDownloadURL)
}

func (w *setupWizard) OpenLicenseDocument() error {
	return w.openLink("setupWizard.OpenLicenseDocument", w.links.LicenseURL)
}

func (w *setupWizard) openLink(fn, url string) error {
	if err := w.opener.Open(url); err != nil {
		w.logger.Err(err).Str("func", fn).Str("url", url).Msg("error opening link")
		return fmt.Errorf("%w: %v", ErrOpenLinkFailed, err)
	}
	return nil
}

func (w *setupWizard) State() models.WizardState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *setupWizard) Done() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Done
}
