// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import (
	"context"
	"time"

	"github.com/MKhiriev/acgs-launcher/internal/logger"
	"github.com/MKhiriev/acgs-launcher/models"
)

// toolPrefix forces UTF-8 so the account table survives non UTF-8 consoles.
var toolPrefix = []string{
	"-Dfile.encoding=UTF-8",
	"-Dconsole.encoding=UTF-8",
	"-jar",
}

type toolRunner struct {
	javaBinary string
	core       CoreLocator
	timeout    time.Duration
	logger     *logger.Logger
}

// NewToolRunner returns a [ToolRunner] that launches the core jar reported by
// core with javaBinary.
func NewToolRunner(javaBinary string, core CoreLocator, timeout time.Duration, log *logger.Logger) ToolRunner {
	return &toolRunner{
		javaBinary: javaBinary,
		core:       core,
		timeout:    timeout,
		logger:     log.WithComponent("tool"),
	}
}

func (t *toolRunner) RunTool(ctx context.Context, args []string) (models.CommandResult, error) {
	return t.run(ctx, "toolRunner.RunTool", args, nil)
}

func (t *toolRunner) RunToolInteractive(ctx context.Context, args []string, stdin []string) (models.CommandResult, error) {
	if stdin == nil {
		stdin = []string{}
	}
	return t.run(ctx, "toolRunner.RunToolInteractive", args, stdin)
}

func (t *toolRunner) run(ctx context.Context, fn string, args, stdin []string) (models.CommandResult, error) {
	status := t.core.CoreStatus()
	if !status.Exists {
		t.logger.Warn().Str("func", fn).Str("path", status.Path).Msg("core jar is missing")
		return models.CommandResult{}, ErrCoreMissing
	}

	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	argv := ToolArgs(status.Path, args)
	started := time.Now()
	result := execute(ctx, execRequest{name: t.javaBinary, args: argv, stdin: stdin})

	event := t.logger.Debug()
	if !result.Success {
		event = t.logger.Warn().Str("error", result.Error)
	}
	event.Str("func", fn).
		Strs("args", args).
		Dur("elapsed", time.Since(started)).
		Bool("success", result.Success).
		Msg("core command finished")

	return result, nil
}

// ToolArgs returns the java arguments that run corePath with args.
func ToolArgs(corePath string, args []string) []string {
	argv := make([]string, 0, len(toolPrefix)+1+len(args))
	argv = append(argv, toolPrefix...)
	argv = append(argv, corePath)
	return append(argv, args...)
}
