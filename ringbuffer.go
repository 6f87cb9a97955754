// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

import "math/bits"

// RingBuffer is a power-of-two circular byte buffer addressed by a
// monotonically increasing virtual position. Positions older than the
// current window are reported as overwritten rather than silently
// returning stale data.
type RingBuffer struct {
	buf  []byte
	mask uint64
	head uint64 // n mod cap
	len  uint64 // filled length L, 0 <= len <= cap
	n    uint64 // total bytes ever written
}

// nextPow2 returns the smallest power of two >= v, with a floor of 1.
func nextPow2(v int) int {
	if v <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(v-1))
}

// NewRingBuffer allocates a ring buffer whose physical capacity is the
// smallest power of two >= capacity. Contents are unspecified until written.
func NewRingBuffer(capacity int) *RingBuffer {
	c := nextPow2(capacity)
	return &RingBuffer{
		buf:  make([]byte, c),
		mask: uint64(c - 1),
	}
}

// Cap returns the physical capacity C (a power of two).
func (r *RingBuffer) Cap() int { return len(r.buf) }

// Len returns the current filled length L.
func (r *RingBuffer) Len() int { return int(r.len) }

// N returns the total number of bytes ever written.
func (r *RingBuffer) N() uint64 { return r.n }

// Write appends all of p, advancing head and growing len up to C. It
// performs at most two contiguous physical copies, each moved 8 bytes at a
// time where possible via the standard library's copy (which itself uses
// word-sized moves). Write never fails and always returns len(p).
func (r *RingBuffer) Write(p []byte) int {
	total := len(p)
	if total == 0 {
		return 0
	}

	capc := len(r.buf)
	if total >= capc {
		// Only the trailing C bytes of p remain observable once this call
		// completes, but they still land at (head+total) mod C, not at 0:
		// subtracting a whole C from the write count never changes that
		// position mod C, so placing trailing[i] at (newHead+i) mod C for
		// each of the C bytes reproduces writing them one at a time.
		trailing := p[total-capc:]
		newHead := int((r.head + uint64(total)) & r.mask)
		first := capc - newHead
		copy(r.buf[newHead:], trailing[:first])
		copy(r.buf[:newHead], trailing[first:])

		r.head = uint64(newHead)
		r.len = uint64(capc)
		r.n += uint64(total)
		return total
	}

	headIdx := int(r.head)
	first := capc - headIdx
	if first > total {
		first = total
	}
	copy(r.buf[headIdx:], p[:first])
	if first < total {
		copy(r.buf, p[first:])
	}

	r.head = (r.head + uint64(total)) & r.mask
	r.n += uint64(total)
	if r.len+uint64(total) > uint64(capc) {
		r.len = uint64(capc)
	} else {
		r.len += uint64(total)
	}
	return total
}

// Flush is a no-op, kept for interface parity with downstream sinks that
// expect a Flush method.
func (r *RingBuffer) Flush() {}

// Get returns the byte at virtual position p, or ok=false if p is outside
// [n-len, n): either not yet written (p >= n) or overwritten (p+C < n).
func (r *RingBuffer) Get(p uint64) (b byte, ok bool) {
	if p >= r.n {
		return 0, false
	}
	if p+uint64(len(r.buf)) < r.n {
		return 0, false
	}
	return r.buf[p&r.mask], true
}

// Slices returns (older, newer) byte ranges whose concatenation equals the
// valid window in ascending virtual order. Either may be nil.
func (r *RingBuffer) Slices() (older, newer []byte) {
	capc := len(r.buf)
	length := int(r.len)
	if length == 0 {
		return nil, nil
	}

	start := int((r.head - r.len) & r.mask)
	if start+length <= capc {
		return nil, r.buf[start : start+length]
	}
	return r.buf[start:capc], r.buf[:start+length-capc]
}
