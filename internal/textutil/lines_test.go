// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package textutil

import "testing"

func TestLineNumbered(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"single", "fn main() {}", "1: fn main() {}\n"},
		{"trailing newline", "a\nb\n", "1: a\n2: b\n"},
		{"crlf", "a\r\nb", "1: a\n2: b\n"},
		{
			"width",
			"1\n2\n3\n4\n5\n6\n7\n8\n9\n10",
			" 1: 1\n 2: 2\n 3: 3\n 4: 4\n 5: 5\n 6: 6\n 7: 7\n 8: 8\n 9: 9\n10: 10\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineNumbered(tt.src); got != tt.want {
				t.Errorf("LineNumbered() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	src := "a\nb\nc\nd\ne\n"
	if got, want := Excerpt(src, 3, 1), " 2: b\n>3: c\n 4: d\n"; got != want {
		t.Errorf("Excerpt(3,1) = %q, want %q", got, want)
	}
	if got, want := Excerpt(src, 1, 1), ">1: a\n 2: b\n"; got != want {
		t.Errorf("Excerpt(1,1) = %q, want %q", got, want)
	}
	if got := Excerpt(src, 0, 1); got != "" {
		t.Errorf("Excerpt(0) = %q, want empty", got)
	}
	if got := Excerpt(src, 9, 1); got != "" {
		t.Errorf("Excerpt(9) = %q, want empty", got)
	}
}
