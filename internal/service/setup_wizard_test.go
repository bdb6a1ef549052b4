// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/acgs-launcher/internal/app"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/mock"
	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const workDir = "/home/alex/Documents/acgsnetwork"

var testLinks = WizardLinks{
	JavaDownloadURL: "https://java.example/download",
	LicenseURL:      "https://eula.example/",
}

func newTestWizard(
	t *testing.T,
	ctrl *gomock.Controller,
	java models.JavaStatus,
) (
	*setupWizard,
	*mock.MockJavaChecker,
	*mock.MockWorkspace,
	*mock.MockOpener,
) {
	t.Helper()
	mockJava := mock.NewMockJavaChecker(ctrl)
	mockWorkspace := mock.NewMockWorkspace(ctrl)
	mockOpener := mock.NewMockOpener(ctrl)

	mockJava.EXPECT().Check(gomock.Any()).Return(java)
	mockWorkspace.EXPECT().Root().Return(workDir).AnyTimes()

	w := NewSetupWizard(context.Background(), mockJava, mockWorkspace, mockOpener, testLinks, logger.Nop()).(*setupWizard)
	return w, mockJava, mockWorkspace, mockOpener
}

var java21 = models.JavaStatus{Installed: true, Version: "21.0.2"}

// ── Environment check ────────────────────────────────────────────────────────

func TestSetupWizard_ConstructionRunsEnvironmentCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, _ := newTestWizard(t, ctrl, java21)

	state := w.State()
	assert.Equal(t, models.StepEnvironmentCheck, state.CurrentStep)
	assert.True(t, state.Completed(models.StepEnvironmentCheck))
	assert.Equal(t, java21, state.Java)
	assert.Empty(t, state.Error)
	assert.False(t, state.Loading)
}

func TestSetupWizard_EnvironmentUnmetThenRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, mockJava, _, _ := newTestWizard(t, ctrl, models.JavaStatus{Version: "1.8.0_392"})

	state := w.State()
	assert.False(t, state.Completed(models.StepEnvironmentCheck))
	assert.Equal(t, app.MsgJavaRequired+`: found "1.8.0_392"`, state.Error)

	w.Advance(context.Background())
	assert.Equal(t, state, w.State())

	mockJava.EXPECT().Check(gomock.Any()).Return(java21)
	w.RetryCurrent(context.Background())

	state = w.State()
	assert.Equal(t, models.StepEnvironmentCheck, state.CurrentStep)
	assert.True(t, state.Completed(models.StepEnvironmentCheck))
	assert.Empty(t, state.Error)
}

func TestSetupWizard_NoJavaAtAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, _ := newTestWizard(t, ctrl, models.JavaStatus{})
	assert.Equal(t, app.MsgJavaRequired, w.State().Error)
}

// ── Advance / Retreat ────────────────────────────────────────────────────────

func TestSetupWizard_AdvanceIncompleteStepIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)

	mockWorkspace.EXPECT().CreateWorkingDirectory().Return("", errors.New("permission denied"))
	w.Advance(context.Background())

	before := w.State()
	require.Equal(t, models.StepDirectorySetup, before.CurrentStep)
	require.False(t, before.Completed(models.StepDirectorySetup))
	assert.Equal(t, app.MsgCreateDirectoryFailed+": permission denied", before.Error)

	w.Advance(context.Background())
	assert.Equal(t, before, w.State())
}

func TestSetupWizard_FullRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)
	ctx := context.Background()

	mockWorkspace.EXPECT().CreateWorkingDirectory().Return(workDir, nil)
	w.Advance(ctx)
	assert.Equal(t, workDir, w.State().WorkDir)
	assert.True(t, w.State().Completed(models.StepDirectorySetup))

	w.Advance(ctx)
	state := w.State()
	assert.Equal(t, models.StepLicenseAgreement, state.CurrentStep)
	assert.True(t, state.LicensePromptOpen)
	assert.False(t, state.Completed(models.StepLicenseAgreement))

	w.AcceptLicense()
	assert.False(t, w.State().LicensePromptOpen)

	mockWorkspace.EXPECT().PersistCompletionMarker().Return(nil)
	w.Advance(ctx)

	state = w.State()
	assert.Equal(t, models.StepFinalize, state.CurrentStep)
	assert.True(t, state.Completed(models.StepFinalize))
	assert.True(t, state.Done)
	assert.True(t, w.Done())
}

func TestSetupWizard_RetreatKeepsCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)
	ctx := context.Background()

	// Directory creation must run exactly once even when the step is
	// entered again.
	mockWorkspace.EXPECT().CreateWorkingDirectory().Return(workDir, nil).Times(1)
	w.Advance(ctx)
	w.Retreat()

	state := w.State()
	assert.Equal(t, models.StepEnvironmentCheck, state.CurrentStep)
	assert.True(t, state.Completed(models.StepDirectorySetup))

	w.Advance(ctx)
	state = w.State()
	assert.Equal(t, models.StepDirectorySetup, state.CurrentStep)
	assert.True(t, state.Completed(models.StepDirectorySetup))
}

func TestSetupWizard_RetreatAtFirstStepIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, _ := newTestWizard(t, ctrl, models.JavaStatus{})
	before := w.State()

	w.Retreat()
	assert.Equal(t, before, w.State())
}

func TestSetupWizard_RetreatClearsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)

	mockWorkspace.EXPECT().CreateWorkingDirectory().Return("", errors.New("read-only"))
	w.Advance(context.Background())
	require.NotEmpty(t, w.State().Error)

	w.Retreat()
	assert.Empty(t, w.State().Error)
}

func TestSetupWizard_RetryDirectoryCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)

	gomock.InOrder(
		mockWorkspace.EXPECT().CreateWorkingDirectory().Return("", errors.New("busy")),
		mockWorkspace.EXPECT().CreateWorkingDirectory().Return(workDir, nil),
	)
	w.Advance(context.Background())
	w.RetryCurrent(context.Background())

	state := w.State()
	assert.True(t, state.Completed(models.StepDirectorySetup))
	assert.Empty(t, state.Error)
}

// ── License ──────────────────────────────────────────────────────────────────

func advanceToLicense(t *testing.T, w *setupWizard, mockWorkspace *mock.MockWorkspace) {
	t.Helper()
	mockWorkspace.EXPECT().CreateWorkingDirectory().Return(workDir, nil)
	w.Advance(context.Background())
	w.Advance(context.Background())
	require.Equal(t, models.StepLicenseAgreement, w.State().CurrentStep)
}

func TestSetupWizard_DeclineLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)
	advanceToLicense(t, w, mockWorkspace)

	w.AcceptLicense()
	w.OpenLicense()
	w.DeclineLicense()

	state := w.State()
	assert.False(t, state.Completed(models.StepLicenseAgreement))
	assert.False(t, state.LicensePromptOpen)
	assert.Equal(t, app.MsgLicenseDeclined, state.Error)

	w.Advance(context.Background())
	assert.Equal(t, models.StepLicenseAgreement, w.State().CurrentStep)

	w.RetryCurrent(context.Background())
	assert.True(t, w.State().LicensePromptOpen)
}

func TestSetupWizard_LicenseCallsIgnoredOnOtherSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, _ := newTestWizard(t, ctrl, java21)
	before := w.State()

	w.OpenLicense()
	w.AcceptLicense()
	w.DeclineLicense()
	assert.Equal(t, before, w.State())
}

// ── Finalize / Done ──────────────────────────────────────────────────────────

func TestSetupWizard_FinalizeFailureThenRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)
	advanceToLicense(t, w, mockWorkspace)
	w.AcceptLicense()

	gomock.InOrder(
		mockWorkspace.EXPECT().PersistCompletionMarker().Return(errors.New("disk full")),
		mockWorkspace.EXPECT().PersistCompletionMarker().Return(nil),
	)

	w.Advance(context.Background())
	state := w.State()
	assert.False(t, state.Done)
	assert.Equal(t, app.MsgFinalizeFailed+": disk full", state.Error)

	w.RetryCurrent(context.Background())
	assert.True(t, w.Done())
}

func TestSetupWizard_DoneIsOneWay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, mockWorkspace, _ := newTestWizard(t, ctrl, java21)
	advanceToLicense(t, w, mockWorkspace)
	w.AcceptLicense()
	mockWorkspace.EXPECT().PersistCompletionMarker().Return(nil)
	w.Advance(context.Background())
	require.True(t, w.Done())

	done := w.State()
	w.Retreat()
	w.Advance(context.Background())
	w.RetryCurrent(context.Background())
	w.CheckEnvironment(context.Background())
	w.DeclineLicense()

	assert.Equal(t, done, w.State())
}

// ── Links ────────────────────────────────────────────────────────────────────

func TestSetupWizard_OpenLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w, _, _, mockOpener := newTestWizard(t, ctrl, java21)

	gomock.InOrder(
		mockOpener.EXPECT().Open(testLinks.JavaDownloadURL).Return(nil),
		mockOpener.EXPECT().Open(testLinks.LicenseURL).Return(errors.New("no browser")),
	)

	require.NoError(t, w.OpenJavaDownload())
	assert.ErrorIs(t, w.OpenLicenseDocument(), ErrOpenLinkFailed)
}
