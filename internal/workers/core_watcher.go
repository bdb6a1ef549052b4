// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/events"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/process"
	"github.com/MKhiriev/acgs-launcher/models"
	"github.com/fsnotify/fsnotify"
)

// CoreStatusTopic is the broker topic core status changes are published on.
const CoreStatusTopic = "core-status"

const defaultDirPollInterval = 2 * time.Second

// CoreDirLocator is the part of the workspace the watcher needs.
type CoreDirLocator interface {
	process.CoreLocator
	CoreDir() string
}

type coreWatcher struct {
	workspace    CoreDirLocator
	broker       *events.Broker[models.CoreStatus]
	pollInterval time.Duration
	logger       *logger.Logger
}

// NewCoreWatcher returns a [Worker] that watches the core directory and
// publishes the core status on [CoreStatusTopic] whenever it changes. The
// current status is published once at start.
//
// The core directory may not exist before first-run setup; until it appears
// the watcher polls for it.
func NewCoreWatcher(workspace CoreDirLocator, broker *events.Broker[models.CoreStatus], log *logger.Logger) Worker {
	return &coreWatcher{
		workspace:    workspace,
		broker:       broker,
		pollInterval: defaultDirPollInterval,
		logger:       log.WithComponent("core-watcher"),
	}
}

func (w *coreWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating core watcher: %w", err)
	}
	defer watcher.Close()

	last := w.workspace.CoreStatus()
	w.broker.Publish(CoreStatusTopic, last)

	if !w.waitForDir(ctx) {
		return nil
	}

	dir := w.workspace.CoreDir()
	if err = watcher.Add(dir); err != nil {
		return fmt.Errorf("error watching %s: %w", dir, err)
	}
	w.logger.Debug().Str("func", "coreWatcher.Run").Str("dir", dir).Msg("watching core directory")

	// The jar may have appeared between the first publish and Add.
	last = w.publishIfChanged(last)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.workspace.CoreStatus().Path) {
				continue
			}
			last = w.publishIfChanged(last)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Err(err).Str("func", "coreWatcher.Run").Msg("core watcher error")
		}
	}
}

// waitForDir blocks until the core directory exists. It returns false when
// ctx is cancelled first.
func (w *coreWatcher) waitForDir(ctx context.Context) bool {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		info, err := os.Stat(w.workspace.CoreDir())
		if err == nil && info.IsDir() {
			return true
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			w.logger.Err(err).Str("func", "coreWatcher.waitForDir").Msg("error checking core directory")
		}

		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

func (w *coreWatcher) publishIfChanged(last models.CoreStatus) models.CoreStatus {
	current := w.workspace.CoreStatus()
	if current == last {
		return last
	}
	w.logger.Info().
		Str("func", "coreWatcher.publishIfChanged").
		Bool("exists", current.Exists).
		Int64("size", current.Size).
		Msg("core status changed")
	w.broker.Publish(CoreStatusTopic, current)
	return current
}
