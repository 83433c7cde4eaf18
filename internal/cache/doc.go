// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a bounded, thread-safe LRU cache.
//
//	c := cache.New[string, []byte](64)
//	c.Set("key", data)
//	data, ok := c.Get("key")
//
// GetOrLoad fills a missing entry from a loader and never caches a failed
// load:
//
//	v, err := c.GetOrLoad(key, func() ([]byte, error) { return compile(src) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
