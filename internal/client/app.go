// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
)

type App struct {
	ui      Runner
	workers Runner
	storage io.Closer
	logger  *logger.Logger
}

// NewApp assembles the runtime. storage is closed when Run returns and may be
// nil.
func NewApp(ui Runner, workers Runner, storage io.Closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is required")
	}
	return &App{
		ui:      ui,
		workers: workers,
		storage: storage,
		logger:  log.WithComponent("app"),
	}, nil
}

// Run blocks until the UI exits. Workers are stopped afterwards; a worker
// failure is logged and does not end the UI.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	if a.workers == nil {
		workersDone <- nil
	} else {
		go func() { workersDone <- a.workers.Run(ctx) }()
	}

	a.logger.Info().Str("func", "App.Run").Msg("launcher started")
	uiErr := a.ui.Run(ctx)
	cancel()

	if err := <-workersDone; err != nil && !errors.Is(err, context.Canceled) {
		a.logger.Err(err).Str("func", "App.Run").Msg("background worker failed")
	}

	if uiErr != nil {
		return fmt.Errorf("ui: %w", uiErr)
	}
	a.logger.Info().Str("func", "App.Run").Msg("launcher stopped")
	return nil
}

func (a *App) close() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Err(err).Str("func", "App.close").Msg("failed to close storage")
	}
}
