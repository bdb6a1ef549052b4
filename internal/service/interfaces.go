// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the launcher's stateful sessions: the account roster,
// the core download, the first-run setup wizard and the command console.
//
// Each session owns its state, serializes its own operations and exposes
// read-only accessors for the UI. Operations that shell out to the launcher
// core reject a second call while one is in flight with [ErrBusy].
package service

import (
	"context"

	"github.com/MKhiriev/acgs-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountSession manages the account roster reported by the launcher core.
//
// Every account operation requires the core jar to be installed and fails
// with [ErrCoreMissing] otherwise. A failed operation leaves the roster
// untouched and records a user facing message available through Error.
type AccountSession interface {
	// ListAccounts replaces the roster with a fresh listing.
	ListAccounts(ctx context.Context) error

	// SelectAccount makes id the selected account. The roster is patched in
	// place rather than re-listed. Returns [ErrAccountNotFound] without
	// invoking the core when id is not in the roster.
	SelectAccount(ctx context.Context, id int) error

	// DeleteAccount removes id from the roster. Returns [ErrAccountNotFound]
	// without invoking the core when id is not in the roster.
	DeleteAccount(ctx context.Context, id int) error

	// RefreshCurrent refreshes the selected account's credentials and then
	// re-lists the roster.
	RefreshCurrent(ctx context.Context) error

	// LoginExternal logs in to an authlib-injector server and re-lists the
	// roster. The credentials are fed to the core on standard input. Returns
	// [ErrUnsupportedServer] when serverAddress is not an available server.
	LoginExternal(ctx context.Context, serverAddress, username, password string) error

	// AddCustomServer persists a user defined server.
	AddCustomServer(ctx context.Context, name, address string) error

	// RemoveCustomServer removes every custom server with the given address.
	// Built-in servers can not be removed.
	RemoveCustomServer(ctx context.Context, address string) error

	Accounts() []models.Account
	SelectedAccount() (models.Account, bool)
	// AvailableServers lists the built-in servers followed by custom ones.
	AvailableServers() []models.ExternalServer
	Error() string
	ClearError()
	Loading() bool
}

// DownloadSession downloads the launcher core and reports progress.
type DownloadSession interface {
	// Start downloads the core to the workspace and returns its path.
	// Progress is observable through Progress while Start runs.
	Start(ctx context.Context) (string, error)

	// Progress returns the latest snapshot of the running transfer, or nil
	// when no transfer is running.
	Progress() *models.DownloadProgress
	CoreStatus() models.CoreStatus
	Error() string
	Loading() bool

	// Close cancels a running transfer. Later calls to Start fail with
	// [ErrSessionClosed].
	Close()
}

// SetupWizard is the first-run setup state machine.
//
// Steps are completed in order: environment check, directory setup, license
// agreement and finalize. Mutating calls made after the wizard is done, or
// that are not valid for the current step, are ignored.
type SetupWizard interface {
	// CheckEnvironment re-runs the Java check of the first step.
	CheckEnvironment(ctx context.Context)
	// Advance moves to the next step when the current one is complete and
	// nothing is loading, then runs the side effect of the entered step if
	// it is not complete yet.
	Advance(ctx context.Context)
	// Retreat moves to the previous step, keeping completion flags.
	Retreat()
	// RetryCurrent re-runs the side effect of the current step.
	RetryCurrent(ctx context.Context)

	OpenLicense()
	AcceptLicense()
	DeclineLicense()

	// OpenJavaDownload opens the Java download page in the browser.
	OpenJavaDownload() error
	// OpenLicenseDocument opens the full license text in the browser.
	OpenLicenseDocument() error

	State() models.WizardState
	Done() bool
}

// ConsoleSession runs free form commands and keeps a transcript of them.
type ConsoleSession interface {
	// Submit runs cmd without standard input. Blank commands are ignored.
	Submit(ctx context.Context, cmd string) error
	// SubmitInteractive runs cmd, feeding it the non-blank input lines.
	SubmitInteractive(ctx context.Context, cmd string, input []string) error
	Clear()
	Transcript() []models.TranscriptEntry
	Executing() bool
}
