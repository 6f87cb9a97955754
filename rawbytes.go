// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

import (
	"encoding/binary"
	"math/bits"
)

// readU64LE returns the little-endian 64-bit value at buf[i:i+8].
func readU64LE(buf []byte, i int) (uint64, error) {
	if i < 0 || i+8 > len(buf) {
		return 0, outOfBoundsf("readU64LE", "index out of range")
	}
	return binary.LittleEndian.Uint64(buf[i : i+8]), nil
}

// writeU64LE writes v as little-endian 64 bits at buf[i:i+8].
func writeU64LE(buf []byte, i int, v uint64) error {
	if i < 0 || i+8 > len(buf) {
		return outOfBoundsf("writeU64LE", "index out of range")
	}
	binary.LittleEndian.PutUint64(buf[i:i+8], v)
	return nil
}

// matchLength returns the largest k <= min(len(a), len(b)) such that
// a[:k] == b[:k]. It compares 8 bytes at a time via readU64LE while equal,
// falling back to a byte-wise scan for the remainder; the result is
// identical to a plain byte-by-byte loop.
func matchLength(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	chunk := n &^ 7
	i := 0
	for i < chunk {
		va, _ := readU64LE(a, i)
		vb, _ := readU64LE(b, i)
		if va != vb {
			return i + bits.TrailingZeros64(va^vb)/8
		}
		i += 8
	}

	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
