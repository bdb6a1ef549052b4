// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import (
	"context"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/models"
)

type shellInvoker struct {
	timeout time.Duration
	logger  *logger.Logger
}

// NewShellInvoker returns an [Invoker] that runs command lines through
// "sh -c", or "cmd.exe /c" on Windows. A positive timeout bounds every call.
func NewShellInvoker(timeout time.Duration, log *logger.Logger) Invoker {
	return &shellInvoker{
		timeout: timeout,
		logger:  log.WithComponent("shell"),
	}
}

func (s *shellInvoker) RunOnce(ctx context.Context, commandLine string) models.CommandResult {
	return s.run(ctx, "shellInvoker.RunOnce", commandLine, nil)
}

func (s *shellInvoker) RunInteractive(ctx context.Context, commandLine string, stdin []string) models.CommandResult {
	if stdin == nil {
		stdin = []string{}
	}
	return s.run(ctx, "shellInvoker.RunInteractive", commandLine, stdin)
}

func (s *shellInvoker) run(ctx context.Context, fn, commandLine string, stdin []string) models.CommandResult {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	name, args := shellCommand(commandLine)
	started := time.Now()
	result := execute(ctx, execRequest{
		name:        name,
		args:        args,
		stdin:       stdin,
		placeholder: FinishedPlaceholder,
	})

	event := s.logger.Debug()
	if !result.Success {
		event = s.logger.Warn().Str("error", result.Error)
	}
	event.Str("func", fn).
		Str("command", commandLine).
		Int("stdin_lines", len(FilterInput(stdin))).
		Dur("elapsed", time.Since(started)).
		Bool("success", result.Success).
		Msg("shell command finished")

	return result
}
