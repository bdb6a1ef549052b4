// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/app"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/service"
	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWizard screen = iota
	screenAccounts
	screenLogin
	screenServers
	screenDownload
	screenConsole
)

const (
	wizardRetireDelay = 500 * time.Millisecond
	statusTimeout     = 2 * time.Second
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx        context.Context
	services   *service.LauncherServices
	coreStatus <-chan models.CoreStatus
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger

	currentScreen screen
	spinner       spinner.Model
	status        string
	core          models.CoreStatus

	accounts accountsModel
	login    loginFormModel
	servers  serversModel
	download downloadModel
	console  consoleModel

	showError      bool
	errorOverlay   errorOverlayModel
	showConfirm    bool
	confirm        confirmModel
	pendingDelete  int
	showBuildInfo  bool
	wizardRetiring bool
}

func newAppModel(
	ctx context.Context,
	services *service.LauncherServices,
	coreStatus <-chan models.CoreStatus,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:           ctx,
		services:      services,
		coreStatus:    coreStatus,
		buildInfo:     buildInfo,
		logger:        log.WithComponent("tui"),
		currentScreen: screenAccounts,
		spinner:       s,
		core:          services.Download.CoreStatus(),
		login:         newLoginFormModel(),
		servers:       newServersModel(),
		download:      newDownloadModel(),
		console:       newConsoleModel(),
	}
	if services.Wizard != nil && !services.Wizard.Done() {
		m.currentScreen = screenWizard
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForCoreStatus(m.coreStatus)}
	if m.currentScreen == screenAccounts && m.core.Exists {
		cmds = append(cmds, m.cmdAccounts("", m.services.Accounts.ListAccounts))
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				id := m.pendingDelete
				return m, m.cmdAccounts("Account deleted", func(ctx context.Context) error {
					return m.services.Accounts.DeleteAccount(ctx, id)
				})
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = 0
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case coreStatusMsg:
		m.core = models.CoreStatus(msg)
		return m, waitForCoreStatus(m.coreStatus)
	case wizardUpdatedMsg:
		if m.services.Wizard != nil && m.services.Wizard.Done() && !m.wizardRetiring {
			m.wizardRetiring = true
			return m, tea.Tick(wizardRetireDelay, func(time.Time) tea.Msg { return wizardRetiredMsg{} })
		}
		return m, nil
	case wizardRetiredMsg:
		m.currentScreen = screenAccounts
		m.core = m.services.Download.CoreStatus()
		if m.core.Exists {
			return m, m.cmdAccounts("", m.services.Accounts.ListAccounts)
		}
		return m, nil
	case accountsDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.reportSessionError(msg.err, m.services.Accounts.Error())
			return m, nil
		}
		if m.currentScreen == screenLogin {
			m.login = newLoginFormModel()
			m.currentScreen = screenAccounts
		}
		m.accounts.clamp(len(m.services.Accounts.Accounts()))
		return m, m.setStatus(msg.status)
	case serversDoneMsg:
		if msg.err != nil {
			m.reportSessionError(msg.err, m.services.Accounts.Error())
			return m, nil
		}
		m.servers = m.servers.reset()
		m.servers.clamp(len(m.services.Accounts.AvailableServers()))
		return m, m.setStatus(msg.status)
	case downloadDoneMsg:
		m.core = m.services.Download.CoreStatus()
		if msg.err != nil {
			m.reportSessionError(msg.err, m.services.Download.Error())
			return m, nil
		}
		return m, m.setStatus("Core saved to " + msg.path)
	case downloadTickMsg:
		if m.services.Download.Loading() {
			return m, cmdDownloadTick()
		}
		return m, nil
	case consoleDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, service.ErrEmptyCommand) {
			m.showErrorf(service.UserMessage(msg.err))
		}
		return m, nil
	case linkOpenedMsg:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "appModel.Update").Str("url", msg.url).Bool("copied", msg.copied).Msg("failed to open link")
			if msg.copied {
				m.showErrorf(app.MsgOpenURLFailed)
			} else {
				m.showErrorf(service.UserMessage(msg.err) + ": " + msg.url)
			}
			return m, nil
		}
		return m, m.setStatus("Opened " + msg.url)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWizard:
		return m.updateWizard(msg)
	case screenAccounts:
		return m.updateAccounts(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenServers:
		return m.updateServers(msg)
	case screenDownload:
		return m.updateDownload(msg)
	case screenConsole:
		return m.updateConsole(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	case m.currentScreen == screenWizard:
		body = m.viewWizard()
	case m.currentScreen == screenAccounts:
		body = m.viewAccounts()
	case m.currentScreen == screenLogin:
		body = m.viewLogin()
	case m.currentScreen == screenServers:
		body = m.viewServers()
	case m.currentScreen == screenDownload:
		body = m.viewDownload()
	case m.currentScreen == screenConsole:
		body = m.viewConsole()
	}

	if m.status != "" {
		body += "\n\n" + successStyle.Render(m.status)
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// reportSessionError shows err in the overlay unless the session already
// recorded it for inline display.
func (m *appModel) reportSessionError(err error, recorded string) {
	if recorded != "" {
		return
	}
	m.showErrorf(service.UserMessage(err))
}

func (m *appModel) setStatus(status string) tea.Cmd {
	if status == "" {
		return nil
	}
	m.status = status
	return cmdClearStatus()
}

func (m appModel) busy() bool {
	if m.services.Wizard != nil && m.currentScreen == screenWizard && m.services.Wizard.State().Loading {
		return true
	}
	return m.services.Accounts.Loading() || m.services.Download.Loading() || m.services.Console.Executing()
}

func (m appModel) cmdAccounts(status string, op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return accountsDoneMsg{status: status, err: op(ctx)}
	})
}

func (m appModel) cmdServers(status string, op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return serversDoneMsg{status: status, err: op(ctx)}
	}
}

func (m appModel) cmdWizard(step func(context.Context)) tea.Cmd {
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		step(ctx)
		return wizardUpdatedMsg{}
	})
}

func (m appModel) cmdDownload() tea.Cmd {
	ctx := m.ctx
	download := m.services.Download
	return tea.Batch(m.spinner.Tick, cmdDownloadTick(), func() tea.Msg {
		path, err := download.Start(ctx)
		return downloadDoneMsg{path: path, err: err}
	})
}

func (m appModel) cmdConsole(run func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return consoleDoneMsg{err: run(ctx)}
	})
}

// cmdOpenLink opens url through open and copies it to the clipboard when the
// browser could not be launched.
func cmdOpenLink(open func() error, url string) tea.Cmd {
	return func() tea.Msg {
		err := open()
		if err == nil {
			return linkOpenedMsg{url: url}
		}
		return linkOpenedMsg{url: url, err: err, copied: writeClipboard(url) == nil}
	}
}

func cmdDownloadTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg { return downloadTickMsg{} })
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func waitForCoreStatus(ch <-chan models.CoreStatus) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		status, ok := <-ch
		if !ok {
			return nil
		}
		return coreStatusMsg(status)
	}
}
