// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLauncherConfig_Defaults(t *testing.T) {
	cfg := newLauncherConfig(&StructuredConfig{}, "/home/alex")

	dataDir := filepath.Join("/home/alex", "Documents", DefaultDataDirName)
	assert.Equal(t, dataDir, cfg.App.DataDir)
	assert.Equal(t, DefaultJavaBinary, cfg.App.JavaBinary)
	assert.Equal(t, DefaultMinJavaMajor, cfg.App.MinJavaMajor)
	assert.Equal(t, DefaultJavaDownloadURL, cfg.App.JavaDownloadURL)
	assert.Equal(t, DefaultEulaURL, cfg.App.EulaURL)
	assert.Equal(t, DefaultCoreURL, cfg.Adapter.CoreURL)
	assert.Equal(t, DefaultDownloadTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, filepath.Join(dataDir, DefaultDBFileName), cfg.Storage.DSN)
	assert.Zero(t, cfg.Process.CommandTimeout)
	assert.True(t, cfg.Workers.CoreWatch)

	require.NoError(t, cfg.validate())
}

func TestNewLauncherConfig_KeepsExplicitValues(t *testing.T) {
	cfg := newLauncherConfig(&StructuredConfig{
		App:     App{DataDir: "/srv/acgs", MinJavaMajor: 21},
		Storage: Storage{DB: DB{DSN: "/var/prefs.db"}},
		Process: Process{CommandTimeout: time.Minute},
		Workers: Workers{CoreWatchDisabled: true},
	}, "/home/alex")

	assert.Equal(t, "/srv/acgs", cfg.App.DataDir)
	assert.Equal(t, 21, cfg.App.MinJavaMajor)
	assert.Equal(t, "/var/prefs.db", cfg.Storage.DSN)
	assert.Equal(t, time.Minute, cfg.Process.CommandTimeout)
	assert.False(t, cfg.Workers.CoreWatch)
}

func TestLauncherConfig_Validate(t *testing.T) {
	valid := func() *LauncherConfig {
		return newLauncherConfig(&StructuredConfig{}, "/home/alex")
	}

	tests := []struct {
		name    string
		mutate  func(c *LauncherConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *LauncherConfig) {}},
		{name: "bad min java", mutate: func(c *LauncherConfig) { c.App.MinJavaMajor = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "bad eula url", mutate: func(c *LauncherConfig) { c.App.EulaURL = "eula" }, wantErr: ErrInvalidAppConfigs},
		{name: "bad core url", mutate: func(c *LauncherConfig) { c.Adapter.CoreURL = "file:///cmcl.jar" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero download timeout", mutate: func(c *LauncherConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "memory dsn", mutate: func(c *LauncherConfig) { c.Storage.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative command timeout", mutate: func(c *LauncherConfig) { c.Process.CommandTimeout = -1 }, wantErr: ErrInvalidProcessConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
