// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied to the launcher view when no source provides a value.
const (
	DefaultJavaBinary      = "java"
	DefaultMinJavaMajor    = 17
	DefaultJavaDownloadURL = "https://go.acgstation.com/acgsnjava.html"
	DefaultEulaURL         = "https://go.acgstation.com/eula.html"
	DefaultCoreURL         = "https://static.v0.net.cn/cmcl.jar"
	DefaultDownloadTimeout = 10 * time.Minute
	DefaultDataDirName     = "acgsnetwork"
	DefaultDBFileName      = "launcher.db"
)

// LauncherApp holds the launcher-level settings.
type LauncherApp struct {
	DataDir         string
	JavaBinary      string
	MinJavaMajor    int
	JavaDownloadURL string
	EulaURL         string
}

// LauncherAdapter holds the download transport settings.
type LauncherAdapter struct {
	CoreURL        string
	RequestTimeout time.Duration
}

// LauncherStorage holds the preference database settings.
type LauncherStorage struct {
	DSN string
}

// LauncherProcess holds external process settings.
type LauncherProcess struct {
	CommandTimeout time.Duration
}

// LauncherWorkers holds background worker settings.
type LauncherWorkers struct {
	CoreWatch bool
}

// LauncherConfig is the configuration view consumed by the launcher runtime,
// assembled from [StructuredConfig] with defaults applied.
type LauncherConfig struct {
	App     LauncherApp
	Adapter LauncherAdapter
	Storage LauncherStorage
	Process LauncherProcess
	Workers LauncherWorkers
}

// GetLauncherConfig builds and validates the launcher config from the merged
// structured configuration.
func GetLauncherConfig() (*LauncherConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	launcherCfg := newLauncherConfig(cfg, home)
	return launcherCfg, launcherCfg.validate()
}

// newLauncherConfig maps cfg onto a [LauncherConfig], filling unset fields
// with defaults. The default data directory is home/Documents/acgsnetwork.
func newLauncherConfig(cfg *StructuredConfig, home string) *LauncherConfig {
	c := &LauncherConfig{
		App: LauncherApp{
			DataDir:         cfg.App.DataDir,
			JavaBinary:      cfg.App.JavaBinary,
			MinJavaMajor:    cfg.App.MinJavaMajor,
			JavaDownloadURL: cfg.App.JavaDownloadURL,
			EulaURL:         cfg.App.EulaURL,
		},
		Adapter: LauncherAdapter{
			CoreURL:        cfg.Adapter.CoreURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: LauncherStorage{DSN: cfg.Storage.DB.DSN},
		Process: LauncherProcess{CommandTimeout: cfg.Process.CommandTimeout},
		Workers: LauncherWorkers{CoreWatch: !cfg.Workers.CoreWatchDisabled},
	}

	if c.App.DataDir == "" {
		c.App.DataDir = filepath.Join(home, "Documents", DefaultDataDirName)
	}
	if c.App.JavaBinary == "" {
		c.App.JavaBinary = DefaultJavaBinary
	}
	if c.App.MinJavaMajor == 0 {
		c.App.MinJavaMajor = DefaultMinJavaMajor
	}
	if c.App.JavaDownloadURL == "" {
		c.App.JavaDownloadURL = DefaultJavaDownloadURL
	}
	if c.App.EulaURL == "" {
		c.App.EulaURL = DefaultEulaURL
	}
	if c.Adapter.CoreURL == "" {
		c.Adapter.CoreURL = DefaultCoreURL
	}
	if c.Adapter.RequestTimeout == 0 {
		c.Adapter.RequestTimeout = DefaultDownloadTimeout
	}
	if c.Storage.DSN == "" {
		c.Storage.DSN = filepath.Join(c.App.DataDir, DefaultDBFileName)
	}

	return c
}
