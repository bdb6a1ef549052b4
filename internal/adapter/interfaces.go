// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to fetch the launcher core.
//
// The primary abstraction is [CoreDownloader], which decouples the download
// session from the protocol. The package ships an HTTP implementation
// ([NewHTTPCoreDownloader]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/acgs-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ProgressFunc receives a progress snapshot after every chunk written.
type ProgressFunc func(models.DownloadProgress)

// CoreDownloader fetches the core artifact.
type CoreDownloader interface {
	// Download streams the artifact to dest and returns dest on success.
	// onProgress is called synchronously on the downloading goroutine.
	// A failed or cancelled download leaves dest untouched.
	Download(ctx context.Context, dest string, onProgress ProgressFunc) (string, error)
}
