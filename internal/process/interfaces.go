// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import (
	"context"

	"github.com/MKhiriev/acgs-launcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/process_mock.go -package=mock

// Invoker runs free form shell command lines.
//
// Both methods block until the process exits or ctx is done. Spawn failures,
// non-zero exits and cancellation are reported through the returned
// [models.CommandResult]; the methods never panic and never return an error.
type Invoker interface {
	// RunOnce runs commandLine with no standard input.
	RunOnce(ctx context.Context, commandLine string) models.CommandResult
	// RunInteractive runs commandLine and feeds the non-blank stdin lines to
	// it in order, each terminated by a newline, then closes its input.
	RunInteractive(ctx context.Context, commandLine string, stdin []string) models.CommandResult
}

// ToolRunner runs the launcher core. Arguments are appended to the fixed java
// invocation of the core jar and passed as argv, without a shell.
type ToolRunner interface {
	// RunTool fails with [ErrCoreMissing] when the core jar is absent.
	RunTool(ctx context.Context, args []string) (models.CommandResult, error)
	// RunToolInteractive is RunTool with queued standard input.
	RunToolInteractive(ctx context.Context, args []string, stdin []string) (models.CommandResult, error)
}

// CoreLocator reports where the core jar is and whether it exists.
type CoreLocator interface {
	CoreStatus() models.CoreStatus
}
