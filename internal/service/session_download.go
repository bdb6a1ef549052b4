// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/adapter"
	"github.com/MKhiriev/acgs-launcher/internal/events"
	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/store"
	"github.com/MKhiriev/acgs-launcher/internal/utils"
	"github.com/MKhiriev/acgs-launcher/models"
	"golang.org/x/sync/semaphore"
)

type downloadSession struct {
	downloader adapter.CoreDownloader
	workspace  store.Workspace
	progress   *events.Broker[models.DownloadProgress]
	ids        utils.IDGenerator

	sem *semaphore.Weighted

	mu         sync.RWMutex
	transferID string
	snapshot   *models.DownloadProgress
	core       models.CoreStatus
	lastErr    string
	loading    bool
	closed     bool
	cancel     context.CancelFunc

	logger *logger.Logger
}

// NewDownloadSession creates a [DownloadSession] that stores the core in
// workspace. Progress events are routed through broker under a fresh transfer
// id per Start call.
func NewDownloadSession(
	downloader adapter.CoreDownloader,
	workspace store.Workspace,
	broker *events.Broker[models.DownloadProgress],
	ids utils.IDGenerator,
	log *logger.Logger,
) DownloadSession {
	return &downloadSession{
		downloader: downloader,
		workspace:  workspace,
		progress:   broker,
		ids:        ids,
		sem:        semaphore.NewWeighted(1),
		core:       workspace.CoreStatus(),
		logger:     log.WithComponent("download"),
	}
}

func (s *downloadSession) Start(ctx context.Context) (string, error) {
	if !s.sem.TryAcquire(1) {
		return "", ErrBusy
	}
	defer s.sem.Release(1)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	id := s.ids.Generate()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrSessionClosed
	}
	s.transferID = id
	s.snapshot = &models.DownloadProgress{}
	s.lastErr = ""
	s.loading = true
	s.cancel = cancel
	s.mu.Unlock()

	unsubscribe := s.progress.Subscribe(id, func(p models.DownloadProgress) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.transferID == id && !s.closed {
			s.snapshot = &p
		}
	})
	defer unsubscribe()
	s.logger.Debug().
		Str("func", "downloadSession.Start").
		Str("transfer_id", id).
		Int("subscribers", s.progress.Subscribers(id)).
		Msg("core download started")

	started := time.Now()
	dest := s.workspace.CorePath()
	path, err := s.downloader.Download(ctx, dest, func(p models.DownloadProgress) {
		s.progress.Publish(id, p)
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transferID = ""
	s.snapshot = nil
	s.loading = false
	s.cancel = nil

	if err != nil {
		err = fmt.Errorf("%w: %v", ErrDownloadFailed, err)
		s.lastErr = UserMessage(err)
		s.logger.Err(err).Str("func", "downloadSession.Start").Str("transfer_id", id).Msg("core download failed")
		return "", err
	}

	s.core = s.workspace.CoreStatus()
	s.logger.Info().
		Str("func", "downloadSession.Start").
		Str("transfer_id", id).
		Str("path", path).
		Int64("size", s.core.Size).
		Dur("elapsed", time.Since(started)).
		Msg("core downloaded")

	return path, nil
}

func (s *downloadSession) Progress() *models.DownloadProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil
	}
	p := *s.snapshot
	return &p
}

func (s *downloadSession) CoreStatus() models.CoreStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.core
}

func (s *downloadSession) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *downloadSession) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *downloadSession) Close() {
	s.mu.Lock()
	cancel := s.cancel
	s.closed = true
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
