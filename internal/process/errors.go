// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package process

import "errors"

// ErrCoreMissing is returned by [ToolRunner] when the core jar does not exist.
var ErrCoreMissing = errors.New("core artifact is missing")
