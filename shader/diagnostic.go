// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Severity classifies a diagnostic.
type Severity uint8

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is one message emitted by a shader backend. Line and Column are
// 1-based; zero means the backend gave no location.
type Diagnostic struct {
	Severity Severity
	Message  string
	Line     int
	Column   int
}

// String formats the diagnostic as "line:col: severity: message".
func (d Diagnostic) String() string {
	switch {
	case d.Line > 0 && d.Column > 0:
		return fmt.Sprintf("%d:%d: %s: %s", d.Line, d.Column, d.Severity, d.Message)
	case d.Line > 0:
		return fmt.Sprintf("%d: %s: %s", d.Line, d.Severity, d.Message)
	default:
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatDiagnostics joins diagnostics one per line.
func FormatDiagnostics(diags []Diagnostic) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Backends report locations as "line N, column M" or a "N:M:" prefix.
var (
	lineColumnRe = regexp.MustCompile(`line (\d+), column (\d+)`)
	prefixRe     = regexp.MustCompile(`(?:^|\s)(\d+):(\d+):`)
)

// errorDiagnostic converts a backend error into a located diagnostic.
func errorDiagnostic(err error) Diagnostic {
	d := Diagnostic{Severity: SeverityError, Message: err.Error()}
	m := lineColumnRe.FindStringSubmatch(d.Message)
	if m == nil {
		m = prefixRe.FindStringSubmatch(d.Message)
	}
	if m != nil {
		d.Line, _ = strconv.Atoi(m[1])
		d.Column, _ = strconv.Atoi(m[2])
	}
	return d
}
