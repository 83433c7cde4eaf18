// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// errNotText is reported for source that is neither UTF-8 nor BOM-marked UTF-16.
var errNotText = errors.New("source is not valid UTF-8 or UTF-16 text")

// decodeSource returns src as a Go string. UTF-8 (with or without BOM) and
// UTF-16 with a BOM are accepted; the BOM is dropped.
func decodeSource(src []byte) (string, error) {
	utf16 := bytes.HasPrefix(src, bomUTF16BE) || bytes.HasPrefix(src, bomUTF16LE)
	if !utf16 && !utf8.Valid(src) {
		return "", errNotText
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), src)
	if err != nil {
		return "", fmt.Errorf("decode source: %w", err)
	}
	return string(decoded), nil
}
