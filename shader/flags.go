// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"fmt"
	"strings"
)

// Flags is a bitmask of backend compile options. Backends ignore bits they
// do not understand.
type Flags uint32

const (
	// FlagDebug asks the backend to embed debug information.
	FlagDebug Flags = 1 << iota

	// FlagSkipValidation skips IR validation before code generation.
	FlagSkipValidation

	// FlagWarningsAsErrors fails compilation when any warning is reported.
	FlagWarningsAsErrors
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	if f.Has(FlagDebug) {
		parts = append(parts, "debug")
	}
	if f.Has(FlagSkipValidation) {
		parts = append(parts, "skip-validation")
	}
	if f.Has(FlagWarningsAsErrors) {
		parts = append(parts, "warnings-as-errors")
	}
	if rest := f &^ (FlagDebug | FlagSkipValidation | FlagWarningsAsErrors); rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}
