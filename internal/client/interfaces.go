// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Runner is a blocking component of the launcher, such as the UI or the
// worker set. Run returns when the component finishes or ctx is done.
type Runner interface {
	Run(ctx context.Context) error
}
