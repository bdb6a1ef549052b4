// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/internal/process"
	"github.com/MKhiriev/acgs-launcher/internal/utils"
	"github.com/MKhiriev/acgs-launcher/models"
	"golang.org/x/sync/semaphore"
)

type consoleSession struct {
	invoker process.Invoker
	ids     utils.IDGenerator
	now     func() time.Time

	sem *semaphore.Weighted

	mu         sync.RWMutex
	transcript []models.TranscriptEntry
	executing  bool

	logger *logger.Logger
}

// NewConsoleSession creates a [ConsoleSession] that runs commands through
// invoker.
func NewConsoleSession(invoker process.Invoker, ids utils.IDGenerator, log *logger.Logger) ConsoleSession {
	return &consoleSession{
		invoker: invoker,
		ids:     ids,
		now:     time.Now,
		sem:     semaphore.NewWeighted(1),
		logger:  log.WithComponent("console"),
	}
}

func (c *consoleSession) Submit(ctx context.Context, cmd string) error {
	return c.submit(ctx, cmd, nil)
}

func (c *consoleSession) SubmitInteractive(ctx context.Context, cmd string, input []string) error {
	return c.submit(ctx, cmd, process.FilterInput(input))
}

// submit runs cmd; a nil stdin selects a plain run.
func (c *consoleSession) submit(ctx context.Context, cmd string, stdin []string) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" {
		return ErrEmptyCommand
	}
	if !c.sem.TryAcquire(1) {
		return ErrBusy
	}
	defer c.sem.Release(1)

	c.mu.Lock()
	c.executing = true
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		c.executing = false
		c.mu.Unlock()
	}()

	c.append(models.EntryCommand, "> "+cmd)
	for i, line := range stdin {
		c.append(models.EntryStdin, fmt.Sprintf("[input %d] %s", i+1, line))
	}

	started := time.Now()
	var result models.CommandResult
	if stdin != nil {
		result = c.invoker.RunInteractive(ctx, cmd, stdin)
	} else {
		result = c.invoker.RunOnce(ctx, cmd)
	}

	if result.Output != "" {
		c.append(models.EntryOutput, result.Output)
	}
	if !result.Success && result.Error != "" {
		c.append(models.EntryError, result.Error)
	}

	c.logger.Debug().
		Str("func", "consoleSession.submit").
		Str("command", cmd).
		Int("stdin_lines", len(stdin)).
		Bool("success", result.Success).
		Dur("elapsed", time.Since(started)).
		Msg("console command finished")

	return nil
}

func (c *consoleSession) append(kind models.EntryKind, text string) {
	entry := models.TranscriptEntry{
		ID:        c.ids.Generate(),
		Timestamp: c.now(),
		Text:      text,
		Kind:      kind,
	}
	c.mu.Lock()
	c.transcript = append(c.transcript, entry)
	c.mu.Unlock()
}

func (c *consoleSession) Clear() {
	c.mu.Lock()
	c.transcript = nil
	c.mu.Unlock()
}

func (c *consoleSession) Transcript() []models.TranscriptEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.transcript)
}

func (c *consoleSession) Executing() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.executing
}
