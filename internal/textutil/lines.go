// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package textutil formats shader source text for diagnostic output.
package textutil

import (
	"fmt"
	"strings"
)

// LineNumbered prefixes every line of src with its 1-based line number,
// right-aligned to the width of the largest number. A trailing newline does
// not produce an extra empty line.
func LineNumbered(src string) string {
	if src == "" {
		return ""
	}
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	width := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&b, "%*d: %s\n", width, i+1, line)
	}
	return b.String()
}

// Excerpt returns the numbered lines of src within radius lines of line
// (1-based). Out-of-range lines return an empty string.
func Excerpt(src string, line, radius int) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	lo := max(line-radius, 1)
	hi := min(line+radius, len(lines))
	width := len(fmt.Sprint(hi))

	var b strings.Builder
	for n := lo; n <= hi; n++ {
		marker := " "
		if n == line {
			marker = ">"
		}
		fmt.Fprintf(&b, "%s%*d: %s\n", marker, width, n, lines[n-1])
	}
	return b.String()
}
