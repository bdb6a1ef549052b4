// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/models"
)

const (
	CoreDirName          = "core"
	CoreFileName         = "cmcl.jar"
	CompletionMarkerName = "oobe.lock"
	completionMarkerText = "OOBE completed"
)

type fsWorkspace struct {
	root   string
	logger *logger.Logger
}

// NewWorkspace returns a [Workspace] rooted at root.
func NewWorkspace(root string, log *logger.Logger) Workspace {
	return &fsWorkspace{root: root, logger: log}
}

func (w *fsWorkspace) Root() string     { return w.root }
func (w *fsWorkspace) CoreDir() string  { return filepath.Join(w.root, CoreDirName) }
func (w *fsWorkspace) CorePath() string { return filepath.Join(w.CoreDir(), CoreFileName) }

func (w *fsWorkspace) CreateWorkingDirectory() (string, error) {
	for _, dir := range []string{w.root, w.CoreDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			w.logger.Err(err).
				Str("func", "fsWorkspace.CreateWorkingDirectory").
				Str("dir", dir).
				Msg("failed to create directory")
			return "", fmt.Errorf("%w: %v", ErrCreatingDirectory, err)
		}
	}
	return w.root, nil
}

func (w *fsWorkspace) CoreStatus() models.CoreStatus {
	path := w.CorePath()
	info, err := os.Stat(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			w.logger.Err(err).Str("func", "fsWorkspace.CoreStatus").Msg("failed to stat core")
		}
		return models.CoreStatus{Path: path}
	}
	if !info.Mode().IsRegular() {
		return models.CoreStatus{Path: path}
	}
	return models.CoreStatus{Exists: true, Path: path, Size: info.Size()}
}

func (w *fsWorkspace) PersistCompletionMarker() error {
	marker := filepath.Join(w.root, CompletionMarkerName)
	if err := os.WriteFile(marker, []byte(completionMarkerText), 0o644); err != nil {
		w.logger.Err(err).
			Str("func", "fsWorkspace.PersistCompletionMarker").
			Str("path", marker).
			Msg("failed to write completion marker")
		return fmt.Errorf("%w: %v", ErrWritingMarker, err)
	}
	return nil
}

func (w *fsWorkspace) CompletionMarkerExists() bool {
	_, err := os.Stat(filepath.Join(w.root, CompletionMarkerName))
	return err == nil
}
