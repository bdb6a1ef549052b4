// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/acgs-launcher/internal/app"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/mock"
	"github.com/MKhiriev/acgs-launcher/internal/service"
	"github.com/MKhiriev/acgs-launcher/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testSessions struct {
	accounts *mock.MockAccountSession
	download *mock.MockDownloadSession
	console  *mock.MockConsoleSession
	wizard   *mock.MockSetupWizard
}

var testAccounts = []models.Account{
	{ID: 1, Name: "Alex", Type: models.AccountTypeAuthlib, Server: "id.acgstation.com", Selected: true},
	{ID: 2, Name: "Bob", Type: "离线账号", Server: models.UnknownServer},
}

func newTestSessions(ctrl *gomock.Controller) testSessions {
	return testSessions{
		accounts: mock.NewMockAccountSession(ctrl),
		download: mock.NewMockDownloadSession(ctrl),
		console:  mock.NewMockConsoleSession(ctrl),
		wizard:   mock.NewMockSetupWizard(ctrl),
	}
}

// newTestApp builds a model on the accounts screen with an installed core and
// no pending setup.
func newTestApp(t *testing.T, s testSessions, withWizard bool) appModel {
	t.Helper()
	s.download.EXPECT().CoreStatus().Return(models.CoreStatus{Exists: true, Path: "/w/core.jar", Size: 2048}).AnyTimes()
	s.download.EXPECT().Loading().Return(false).AnyTimes()
	s.accounts.EXPECT().Loading().Return(false).AnyTimes()
	s.console.EXPECT().Executing().Return(false).AnyTimes()

	services := &service.LauncherServices{
		Accounts: s.accounts,
		Download: s.download,
		Console:  s.console,
		Links: service.WizardLinks{
			JavaDownloadURL: "https://java.example.com",
			LicenseURL:      "https://license.example.com",
		},
	}
	if withWizard {
		services.Wizard = s.wizard
	}
	return newAppModel(context.Background(), services, nil, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(appModel)
	require.True(t, ok)
	return got, cmd
}

// collect runs cmd and returns the messages it produces, unwrapping batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func findMsg[T tea.Msg](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %v", zero, msgs)
	return zero
}

// ── Routing ──

func TestNewAppModel_StartsOnWizardWhenSetupPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.wizard.EXPECT().Done().Return(false)

	m := newTestApp(t, s, true)
	assert.Equal(t, screenWizard, m.currentScreen)
}

func TestNewAppModel_StartsOnAccountsWithoutWizard(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)

	m := newTestApp(t, s, false)
	assert.Equal(t, screenAccounts, m.currentScreen)
	assert.True(t, m.core.Exists)
}

func TestInit_ListsAccountsWhenCoreInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().ListAccounts(gomock.Any()).Return(nil)

	m := newTestApp(t, s, false)
	done := findMsg[accountsDoneMsg](t, collect(m.Init()))
	assert.NoError(t, done.err)
}

func TestWizardDone_RetiresToAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.wizard.EXPECT().Done().Return(false)
	m := newTestApp(t, s, true)

	s.wizard.EXPECT().Done().Return(true)
	m, cmd := press(t, m, wizardUpdatedMsg{})
	assert.True(t, m.wizardRetiring)
	require.NotNil(t, cmd)

	m, cmd = press(t, m, wizardRetiredMsg{})
	assert.Equal(t, screenAccounts, m.currentScreen)
	assert.NotNil(t, cmd)
}

func TestBuildInfo_ToggleWithV(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Accounts().Return(nil).AnyTimes()
	m := newTestApp(t, s, false)

	m, _ = press(t, m, runes("v"))
	assert.True(t, m.showBuildInfo)
	assert.Contains(t, m.View(), "1.0.0")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showBuildInfo)
}

// ── Accounts ──

func TestAccounts_SelectCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Accounts().Return(testAccounts).AnyTimes()
	s.accounts.EXPECT().SelectAccount(gomock.Any(), 2).Return(nil)
	m := newTestApp(t, s, false)

	m, _ = press(t, m, runes("j"))
	assert.Equal(t, 1, m.accounts.idx)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	done := findMsg[accountsDoneMsg](t, collect(cmd))
	assert.NoError(t, done.err)
	assert.Equal(t, "Account selected", done.status)
}

func TestAccounts_DeleteAsksForConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Accounts().Return(testAccounts).AnyTimes()
	s.accounts.EXPECT().Error().Return("").AnyTimes()
	m := newTestApp(t, s, false)

	m, cmd := press(t, m, runes("d"))
	assert.Nil(t, cmd)
	assert.True(t, m.showConfirm)
	assert.Equal(t, 1, m.pendingDelete)
	assert.Contains(t, m.View(), "Alex")

	s.accounts.EXPECT().DeleteAccount(gomock.Any(), 1).Return(nil)
	m, cmd = press(t, m, runes("y"))
	assert.False(t, m.showConfirm)
	findMsg[accountsDoneMsg](t, collect(cmd))
}

func TestAccounts_DeleteCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Accounts().Return(testAccounts).AnyTimes()
	m := newTestApp(t, s, false)

	m, _ = press(t, m, runes("d"))
	m, cmd := press(t, m, runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.Zero(t, m.pendingDelete)
}

func TestAccountsDone_ErrorRecordedBySessionIsNotDuplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Error().Return(app.MsgCoreMissing).AnyTimes()
	m := newTestApp(t, s, false)

	m, _ = press(t, m, accountsDoneMsg{err: service.ErrCoreMissing})
	assert.False(t, m.showError)
}

func TestAccountsDone_BusyShowsOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Error().Return("")
	m := newTestApp(t, s, false)

	m, _ = press(t, m, accountsDoneMsg{err: service.ErrBusy})
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgOperationInProgress, m.errorOverlay.message)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.showError)
}

func TestAccountsDone_LoginSuccessReturnsToAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().Accounts().Return(testAccounts).AnyTimes()
	m := newTestApp(t, s, false)
	m.currentScreen = screenLogin
	m.login.submitting = true

	m, cmd := press(t, m, accountsDoneMsg{status: "Logged in"})
	assert.Equal(t, screenAccounts, m.currentScreen)
	assert.False(t, m.login.submitting)
	assert.Equal(t, "Logged in", m.status)
	assert.NotNil(t, cmd)
}

// ── Login ──

func TestLogin_SubmitsSelectedServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().AvailableServers().Return(models.BuiltInServers()).AnyTimes()
	s.accounts.EXPECT().LoginExternal(gomock.Any(), "id.jb.wiki", "alex@example.com", "secret").Return(nil)
	m := newTestApp(t, s, false)
	m.currentScreen = screenLogin

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.login.serverIdx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("  alex@example.com "))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("secret"))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.login.submitting)
	done := findMsg[accountsDoneMsg](t, collect(cmd))
	assert.NoError(t, done.err)
}

func TestLoginForm_CycleServerWraps(t *testing.T) {
	f := newLoginFormModel()
	f = f.cycleServer(-1, 2)
	assert.Equal(t, 1, f.serverIdx)
	f = f.cycleServer(1, 2)
	assert.Equal(t, 0, f.serverIdx)
	f = f.cycleServer(1, 0)
	assert.Equal(t, 0, f.serverIdx)
}

// ── Servers ──

func TestServers_AddCustomServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.accounts.EXPECT().AvailableServers().Return(models.BuiltInServers()).AnyTimes()
	s.accounts.EXPECT().ClearError().AnyTimes()
	s.accounts.EXPECT().AddCustomServer(gomock.Any(), "Home", "auth.home.net").Return(nil)
	m := newTestApp(t, s, false)
	m.currentScreen = screenServers

	m, _ = press(t, m, runes("a"))
	require.True(t, m.servers.adding)
	m, _ = press(t, m, runes("Home"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, runes("auth.home.net"))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	done := findMsg[serversDoneMsg](t, collect(cmd))
	require.NoError(t, done.err)

	m, _ = press(t, m, done)
	assert.False(t, m.servers.adding)
	assert.Empty(t, m.servers.inputs[0].Value())
	assert.Equal(t, "Server added", m.status)
}

func TestServers_RemoveSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	servers := append(models.BuiltInServers(), models.ExternalServer{Name: "Home", Address: "auth.home.net"})
	s.accounts.EXPECT().AvailableServers().Return(servers).AnyTimes()
	s.accounts.EXPECT().RemoveCustomServer(gomock.Any(), "auth.home.net").Return(nil)
	m := newTestApp(t, s, false)
	m.currentScreen = screenServers

	m, _ = press(t, m, runes("j"))
	m, _ = press(t, m, runes("j"))
	_, cmd := press(t, m, runes("d"))
	done := findMsg[serversDoneMsg](t, collect(cmd))
	assert.NoError(t, done.err)
}

// ── Download ──

func TestDownloadDone_FailureShownInline(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.download.EXPECT().Error().Return(app.MsgDownloadFailed + ": boom").AnyTimes()
	s.download.EXPECT().Progress().Return(nil).AnyTimes()
	m := newTestApp(t, s, false)
	m.currentScreen = screenDownload

	m, _ = press(t, m, downloadDoneMsg{err: errors.New("boom")})
	assert.False(t, m.showError)
	assert.Contains(t, m.View(), "download failed: boom")
}

func TestDownload_StartsTransfer(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.download.EXPECT().Start(gomock.Any()).Return("/w/core.jar", nil)
	m := newTestApp(t, s, false)
	m.currentScreen = screenDownload

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	done := findMsg[downloadDoneMsg](t, collect(cmd))
	assert.Equal(t, "/w/core.jar", done.path)
	assert.NoError(t, done.err)
}

// ── Console ──

func TestConsole_SubmitPlainCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.console.EXPECT().Submit(gomock.Any(), "account --list").Return(nil)
	m := newTestApp(t, s, false)
	m.currentScreen = screenConsole
	m.console = m.console.focusCommand()

	m, _ = press(t, m, runes("account --list"))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.console.command.Value())
	done := findMsg[consoleDoneMsg](t, collect(cmd))
	assert.NoError(t, done.err)
}

func TestConsole_SubmitInteractiveSendsInputLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.console.EXPECT().SubmitInteractive(gomock.Any(), "account --login=authlib", []string{"alex", "secret"}).Return(nil)
	m := newTestApp(t, s, false)
	m.currentScreen = screenConsole
	m.console = m.console.focusCommand()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.True(t, m.console.interactive)
	m, _ = press(t, m, runes("account --login=authlib"))
	m.console.stdin.SetValue("alex\nsecret")

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	findMsg[consoleDoneMsg](t, collect(cmd))
}

func TestConsoleDone_EmptyCommandIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	m := newTestApp(t, s, false)

	m, _ = press(t, m, consoleDoneMsg{err: service.ErrEmptyCommand})
	assert.False(t, m.showError)
}

func TestConsole_ClearTranscript(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	s.console.EXPECT().Clear()
	m := newTestApp(t, s, false)
	m.currentScreen = screenConsole

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Nil(t, cmd)
}

// ── Links ──

func TestCmdOpenLink_CopiesURLWhenBrowserFails(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	msg := cmdOpenLink(func() error { return service.ErrOpenLinkFailed }, "https://java.example.com")()
	opened, ok := msg.(linkOpenedMsg)
	require.True(t, ok)
	assert.True(t, opened.copied)
	assert.Error(t, opened.err)
	assert.Equal(t, "https://java.example.com", copied)
}

func TestLinkOpened_FallbackMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestSessions(ctrl)
	m := newTestApp(t, s, false)

	m, _ = press(t, m, linkOpenedMsg{url: "https://x", err: service.ErrOpenLinkFailed, copied: true})
	assert.Equal(t, app.MsgOpenURLFailed, m.errorOverlay.message)
}
