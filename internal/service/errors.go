// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/acgs-launcher/internal/process"
)

var (
	ErrEnvironmentUnmet      = errors.New("environment requirements not met")
	ErrDirectoryCreateFailed = errors.New("failed to create working directory")
	ErrLicenseDeclined       = errors.New("license declined")
	ErrFinalizeFailed        = errors.New("failed to finalize setup")

	ErrCoreMissing           = process.ErrCoreMissing
	ErrUnsupportedServer     = errors.New("unsupported authentication server")
	ErrExternalCommandFailed = errors.New("external command failed")
	ErrAccountNotFound       = errors.New("account not found")
	ErrMissingCredentials    = errors.New("username and password are required")

	ErrInvalidServer  = errors.New("server name and address are required")
	ErrBuiltInServer  = errors.New("built-in server can not be removed")
	ErrServerNotFound = errors.New("server not found")
	ErrSavingServers  = errors.New("failed to save custom servers")

	ErrDownloadFailed = errors.New("core download failed")
	ErrEmptyCommand   = errors.New("empty command")
	ErrBusy           = errors.New("operation already in progress")
	ErrSessionClosed  = errors.New("session closed")
	ErrOpenLinkFailed = errors.New("failed to open link")
)
