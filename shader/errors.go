// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpuutil/device"
)

// ErrCompileFailed is wrapped by every CompileError.
var ErrCompileFailed = errors.New("shader: compilation failed")

// CompileError reports a source the backend could not compile.
type CompileError struct {
	Stage       device.Stage
	Diagnostics []Diagnostic
}

func (e *CompileError) Error() string {
	for _, d := range e.Diagnostics {
		if d.Severity == SeverityError {
			return fmt.Sprintf("shader: %v compilation failed: %s", e.Stage, d)
		}
	}
	return fmt.Sprintf("shader: %v compilation failed", e.Stage)
}

// Unwrap returns ErrCompileFailed.
func (e *CompileError) Unwrap() error { return ErrCompileFailed }
