// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the launcher's persistent state: user preferences in a
// SQLite database and the on-disk workspace that contains the core jar and
// the setup completion marker.
package store

import (
	"context"

	"github.com/MKhiriev/acgs-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PreferenceRepository is a string key/value store for user preferences.
type PreferenceRepository interface {
	// Get returns the stored value, or [ErrPreferenceNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Workspace is the launcher working directory on disk.
type Workspace interface {
	// Root is the working directory path.
	Root() string
	// CoreDir is the directory holding the core jar.
	CoreDir() string
	// CorePath is the location of the core jar.
	CorePath() string

	// CreateWorkingDirectory creates the working and core directories if
	// needed and returns the working directory path.
	CreateWorkingDirectory() (string, error)
	// CoreStatus reports whether the core jar exists and its size.
	CoreStatus() models.CoreStatus

	// PersistCompletionMarker records that first-run setup finished.
	PersistCompletionMarker() error
	// CompletionMarkerExists reports whether first-run setup finished.
	CompletionMarkerExists() bool
}
