// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
)

func TestWorkspace_Paths(t *testing.T) {
	w := NewWorkspace("/data/acgsnetwork", logger.Nop())

	assert.Equal(t, "/data/acgsnetwork", w.Root())
	assert.Equal(t, filepath.Join("/data/acgsnetwork", "core"), w.CoreDir())
	assert.Equal(t, filepath.Join("/data/acgsnetwork", "core", "cmcl.jar"), w.CorePath())
}

func TestWorkspace_CreateWorkingDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Documents", "acgsnetwork")
	w := NewWorkspace(root, logger.Nop())

	got, err := w.CreateWorkingDirectory()
	require.NoError(t, err)
	assert.Equal(t, root, got)
	assert.DirExists(t, root)
	assert.DirExists(t, filepath.Join(root, "core"))

	// Idempotent.
	got, err = w.CreateWorkingDirectory()
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestWorkspace_CreateWorkingDirectory_Fails(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := NewWorkspace(filepath.Join(blocker, "acgs"), logger.Nop()).CreateWorkingDirectory()
	assert.ErrorIs(t, err, ErrCreatingDirectory)
}

func TestWorkspace_CoreStatus(t *testing.T) {
	root := t.TempDir()
	w := NewWorkspace(root, logger.Nop())

	status := w.CoreStatus()
	assert.False(t, status.Exists)
	assert.Equal(t, w.CorePath(), status.Path)

	require.NoError(t, os.MkdirAll(w.CoreDir(), 0o755))
	require.NoError(t, os.WriteFile(w.CorePath(), []byte("12345"), 0o644))

	status = w.CoreStatus()
	assert.True(t, status.Exists)
	assert.Equal(t, int64(5), status.Size)
}

func TestWorkspace_CoreStatus_DirectoryIsNotCore(t *testing.T) {
	w := NewWorkspace(t.TempDir(), logger.Nop())
	require.NoError(t, os.MkdirAll(w.CorePath(), 0o755))

	assert.False(t, w.CoreStatus().Exists)
}

func TestWorkspace_CompletionMarker(t *testing.T) {
	root := t.TempDir()
	w := NewWorkspace(root, logger.Nop())

	assert.False(t, w.CompletionMarkerExists())
	require.NoError(t, w.PersistCompletionMarker())
	assert.True(t, w.CompletionMarkerExists())

	data, err := os.ReadFile(filepath.Join(root, CompletionMarkerName))
	require.NoError(t, err)
	assert.Equal(t, "OOBE completed", string(data))
}

func TestWorkspace_PersistCompletionMarker_Fails(t *testing.T) {
	w := NewWorkspace(filepath.Join(t.TempDir(), "missing"), logger.Nop())
	assert.ErrorIs(t, w.PersistCompletionMarker(), ErrWritingMarker)
}
