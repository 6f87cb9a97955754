// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/rpcpool/yellowstone-faithful

package lzdict

import "github.com/cespare/xxhash/v2"

// xxhash64Slices hashes two byte slices as one logical stream, matching the
// (older, newer) split that DictionarySlices and RingBuffer.Slices return.
func xxhash64Slices(older, newer []byte) uint64 {
	d := xxhash.New()
	_, _ = d.Write(older)
	_, _ = d.Write(newer)
	return d.Sum64()
}
