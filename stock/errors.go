// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package stock

import "errors"

var (
	// ErrAlreadyCreated is returned by Create on a pool that holds a catalog.
	ErrAlreadyCreated = errors.New("stock: pool already created")

	// ErrNotCreated is returned by Lookup on a pool without a catalog.
	ErrNotCreated = errors.New("stock: pool not created")
)
