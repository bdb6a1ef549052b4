// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user facing message strings shared by the launcher
// services and the terminal UI.
//
// Services store one of these messages (optionally followed by ": " and the
// underlying cause) as their last error, and the UI renders it verbatim.
// Keeping them in one place ensures consistent wording across screens.
package app

const (
	// MsgJavaRequired is shown when no runtime satisfying the minimum Java
	// version was found.
	MsgJavaRequired = "Java 17 or newer is required"

	// MsgCreateDirectoryFailed prefixes working directory creation failures.
	MsgCreateDirectoryFailed = "failed to create the working directory"

	// MsgLicenseDeclined is shown when the user declines the license.
	MsgLicenseDeclined = "you must accept the license agreement to continue"

	// MsgFinalizeFailed prefixes failures while writing the completion marker.
	MsgFinalizeFailed = "failed to finish setup"

	// MsgCoreMissing is shown when an account operation needs the core jar
	// and it has not been downloaded yet.
	MsgCoreMissing = "the launcher core is not installed, download it first"

	// MsgUnsupportedServer is shown when a login targets a server that is
	// neither built in nor added by the user.
	MsgUnsupportedServer = "unsupported authentication server"

	// MsgAccountNotFound is shown when an account id is not in the roster.
	MsgAccountNotFound = "account not found"

	// MsgCommandFailed prefixes failures reported by the launcher core.
	MsgCommandFailed = "command failed"

	// MsgMissingCredentials is shown when a login is submitted without a
	// username or password.
	MsgMissingCredentials = "username and password are required"

	// MsgInvalidServer is shown when a custom server has no name or address.
	MsgInvalidServer = "server name and address are required"

	// MsgBuiltInServer is shown when the user tries to remove a built-in
	// server.
	MsgBuiltInServer = "built-in servers can not be removed"

	// MsgServerNotFound is shown when removing a server that is not listed.
	MsgServerNotFound = "server not found"

	// MsgSaveServersFailed prefixes failures while persisting custom servers.
	MsgSaveServersFailed = "failed to save custom servers"

	// MsgDownloadFailed prefixes core download failures.
	MsgDownloadFailed = "download failed"

	// MsgOperationInProgress is shown when an operation is rejected because
	// another one is still running.
	MsgOperationInProgress = "another operation is in progress"

	// MsgOpenURLFailed is shown when the browser could not be launched. The
	// URL is copied to the clipboard instead.
	MsgOpenURLFailed = "could not open the browser, the link was copied to the clipboard"

	// MsgCommandFinished is the console placeholder for a command that
	// printed nothing.
	MsgCommandFinished = "command finished"
)
