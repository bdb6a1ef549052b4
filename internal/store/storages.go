// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/acgs-launcher/internal/config"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
)

// LauncherStorages groups the launcher's persistent state.
type LauncherStorages struct {
	// Preferences is the SQLite backed preference repository.
	Preferences PreferenceRepository
	// Workspace is the working directory holding the core and markers.
	Workspace Workspace

	db *DB
}

// NewLauncherStorages opens the preference database at cfg.Storage.DSN,
// applies migrations and roots the workspace at cfg.App.DataDir.
func NewLauncherStorages(ctx context.Context, cfg *config.LauncherConfig, logger *logger.Logger) (*LauncherStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &LauncherStorages{
		Preferences: NewPreferenceRepository(db, logger),
		Workspace:   NewWorkspace(cfg.App.DataDir, logger),
		db:          db,
	}, nil
}

// Close releases the database connection.
func (s *LauncherStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
