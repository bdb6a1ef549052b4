// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig]. Only values that are
// present are checked; missing values get defaults in the launcher view.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.MinJavaMajor < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Process.CommandTimeout < 0 {
		return ErrInvalidProcessConfigs
	}
	return nil
}

func (cfg *LauncherConfig) validate() error {
	if cfg.App.DataDir == "" || cfg.App.JavaBinary == "" || cfg.App.MinJavaMajor < 1 {
		return ErrInvalidAppConfigs
	}
	for _, u := range []string{cfg.App.JavaDownloadURL, cfg.App.EulaURL} {
		if err := validateHTTPURL(u); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
		}
	}

	if err := validateHTTPURL(cfg.Adapter.CoreURL); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Process.CommandTimeout < 0 {
		return ErrInvalidProcessConfigs
	}

	return nil
}
