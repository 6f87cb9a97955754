// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

import "math/bits"

// Dictionary is a ring of size dictCap (history + pending lookahead,
// combined) augmented with an lookaheadCap-sized mirror tail so that any
// forward read of up to lookaheadCap bytes, starting anywhere in the ring,
// can be taken as a single contiguous slice without a wrap check.
//
// Physical layout: buf[0:dictCap) is the ring; buf[dictCap:dictCap+lookaheadCap)
// always mirrors buf[0:lookaheadCap).
type Dictionary struct {
	buf          []byte
	dictCap      uint64
	dictMask     uint64
	lookaheadCap uint64

	head     uint64 // next ring position for pending lookahead bytes
	dictSize uint64 // committed history length behind head
	laSize   uint64 // pending lookahead length at [head, head+laSize)
}

// NewDictionary allocates a Dictionary. dictCap must be a nonzero power of
// two; lookaheadCap must be nonzero and <= dictCap. Both are programming
// preconditions: violations return a *ConfigError wrapping ErrConfig.
func NewDictionary(dictCap, lookaheadCap int) (*Dictionary, error) {
	if dictCap <= 0 || dictCap&(dictCap-1) != 0 {
		return nil, configErrorf("DictCap", dictCap, "must be a positive power of two")
	}
	if lookaheadCap <= 0 {
		return nil, configErrorf("LookaheadCap", lookaheadCap, "must be positive")
	}
	if lookaheadCap > dictCap {
		return nil, configErrorf("LookaheadCap", lookaheadCap, "must not exceed DictCap")
	}

	return &Dictionary{
		buf:          make([]byte, dictCap+lookaheadCap),
		dictCap:      uint64(dictCap),
		dictMask:     uint64(dictCap - 1),
		lookaheadCap: uint64(lookaheadCap),
	}, nil
}

// DictCap returns the configured history-ring capacity.
func (d *Dictionary) DictCap() int { return int(d.dictCap) }

// LookaheadCap returns the configured lookahead capacity.
func (d *Dictionary) LookaheadCap() int { return int(d.lookaheadCap) }

// DictSize returns the current committed history length.
func (d *Dictionary) DictSize() int { return int(d.dictSize) }

// LookaheadSize returns the current pending lookahead length.
func (d *Dictionary) LookaheadSize() int { return int(d.laSize) }

// Head returns the current ring head (physical index of the next pending
// byte), a position in [0, DictCap()).
func (d *Dictionary) Head() int { return int(d.head) }

// writeRing stores v at ring position p (p < dictCap) and propagates the
// mirror when p falls within the mirrored front region [0, lookaheadCap).
func (d *Dictionary) writeRing(p uint64, v byte) {
	d.buf[p] = v
	if p < d.lookaheadCap {
		d.buf[d.dictCap+p] = v
	}
}

// AddToLookahead copies at most (LookaheadCap - LookaheadSize) bytes from p
// into the pending lookahead region and returns the count copied. Committed
// dictionary history that would now overlap the (grown) lookahead region is
// shrunk out of validity.
func (d *Dictionary) AddToLookahead(p []byte) int {
	avail := d.lookaheadCap - d.laSize
	n := uint64(len(p))
	if n > avail {
		n = avail
	}

	for i := uint64(0); i < n; i++ {
		pos := (d.head + d.laSize + i) & d.dictMask
		d.writeRing(pos, p[i])
	}
	d.laSize += n

	if d.dictSize > d.dictCap-d.laSize {
		d.dictSize = d.dictCap - d.laSize
	}
	return int(n)
}

// AddToDictionary discards any pending lookahead, then writes all of p
// directly into committed history starting at head.
func (d *Dictionary) AddToDictionary(p []byte) {
	d.laSize = 0
	for _, b := range p {
		d.writeRing(d.head, b)
		d.head = (d.head + 1) & d.dictMask
		if d.dictSize < d.dictCap {
			d.dictSize++
		}
	}
}

// ClearLookahead discards any pending lookahead bytes without committing them.
func (d *Dictionary) ClearLookahead() {
	d.laSize = 0
}

// CommitLookaheadBytes moves the first k bytes of the pending lookahead into
// committed history. The underlying bytes do not move; only the head/size
// counters change. Requires k <= LookaheadSize(); violations return
// *OutOfBoundsError.
func (d *Dictionary) CommitLookaheadBytes(k int) ([]byte, error) {
	if k < 0 || uint64(k) > d.laSize {
		return nil, outOfBoundsf("CommitLookaheadBytes", "k exceeds pending lookahead size")
	}

	committed := append([]byte(nil), d.buf[d.head:d.head+uint64(k)]...)
	d.head = (d.head + uint64(k)) & d.dictMask
	d.laSize -= uint64(k)
	if d.dictSize+uint64(k) > d.dictCap {
		d.dictSize = d.dictCap
	} else {
		d.dictSize += uint64(k)
	}
	return committed, nil
}

// DictionarySlices returns (older, newer) slices whose concatenation is the
// current valid committed history, oldest first.
func (d *Dictionary) DictionarySlices() (older, newer []byte) {
	size := int(d.dictSize)
	if size == 0 {
		return nil, nil
	}

	start := int((d.head - d.dictSize) & d.dictMask)
	capc := int(d.dictCap)
	if start+size <= capc {
		return nil, d.buf[start : start+size]
	}
	return d.buf[start:capc], d.buf[:start+size-capc]
}

// Lookahead returns the single contiguous slice of currently pending
// lookahead bytes. Safe to take as one slice because the mirror lets
// [head, head+laSize) be read directly even when it crosses the dictCap
// boundary, and laSize <= lookaheadCap <= dictCap guarantees it never wraps
// past the mirror's own length.
func (d *Dictionary) Lookahead() []byte {
	if d.laSize == 0 {
		return nil
	}
	return d.buf[d.head : d.head+d.laSize]
}

// distanceFromSlot converts a ring slot (as recorded by a MatchFinder chain)
// to a distance-from-head value.
func (d *Dictionary) distanceFromSlot(slot uint64) uint64 {
	return (d.head - slot - 1) & d.dictMask
}

// firstByteAt returns the byte currently stored at ring slot p. Used by
// MatchFinder to detect stale chain entries (a slot whose content has since
// been overwritten by ring reuse).
func (d *Dictionary) firstByteAt(p uint64) byte {
	return d.buf[p]
}

// MatchLength returns the length of the common prefix between the current
// lookahead and the history starting at the given distance (0 = most
// recently committed byte). Requires distance < DictSize(); violations
// return *OutOfBoundsError. Supports matches whose length exceeds
// distance+1 (overlap / run-length): the comparison reads forward through
// the real, already-staged lookahead bytes, which is equivalent to "as if
// the matched bytes were appended one by one and subsequent comparisons
// could read them".
func (d *Dictionary) MatchLength(distance int) (int, error) {
	if distance < 0 || uint64(distance) >= d.dictSize {
		return 0, outOfBoundsf("MatchLength", "distance >= DictSize")
	}
	if d.laSize == 0 {
		return 0, nil
	}

	pos := (d.head - uint64(distance) - 1) & d.dictMask
	source := d.buf[pos : pos+d.laSize]
	lookahead := d.buf[d.head : d.head+d.laSize]
	return matchLength(source, lookahead), nil
}

// LoadMatchIntoLookahead copies length bytes starting at distance from head
// into the pending lookahead region, one byte at a time so that overlapping
// (length > distance+1) copies correctly re-read bytes they themselves just
// produced. Requires distance < DictSize() and length+LookaheadSize() <=
// LookaheadCap(); violations return *OutOfBoundsError.
func (d *Dictionary) LoadMatchIntoLookahead(distance, length int) ([]byte, error) {
	if distance < 0 || uint64(distance) >= d.dictSize {
		return nil, outOfBoundsf("LoadMatchIntoLookahead", "distance >= DictSize")
	}
	if length < 0 || uint64(length)+d.laSize > d.lookaheadCap {
		return nil, outOfBoundsf("LoadMatchIntoLookahead", "length+LookaheadSize exceeds LookaheadCap")
	}

	pos := (d.head - uint64(distance) - 1) & d.dictMask
	start := d.laSize
	for i := 0; i < length; i++ {
		srcPos := (pos + uint64(i)) & d.dictMask
		dstPos := (d.head + d.laSize) & d.dictMask
		d.writeRing(dstPos, d.buf[srcPos])
		d.laSize++
	}
	return append([]byte(nil), d.buf[d.head+start:d.head+start+uint64(length)]...), nil
}

// LoadMatchIntoDictionary is like LoadMatchIntoLookahead but commits the
// copy directly into history, discarding any pending lookahead first.
// Requires distance < DictSize(); violations return *OutOfBoundsError.
func (d *Dictionary) LoadMatchIntoDictionary(distance, length int) ([]byte, error) {
	if distance < 0 || uint64(distance) >= d.dictSize {
		return nil, outOfBoundsf("LoadMatchIntoDictionary", "distance >= DictSize")
	}
	if length < 0 {
		return nil, outOfBoundsf("LoadMatchIntoDictionary", "length must be non-negative")
	}

	d.laSize = 0
	pos := (d.head - uint64(distance) - 1) & d.dictMask
	out := make([]byte, length)
	for i := 0; i < length; i++ {
		srcPos := (pos + uint64(i)) & d.dictMask
		v := d.buf[srcPos]
		d.writeRing(d.head, v)
		out[i] = v
		d.head = (d.head + 1) & d.dictMask
		if d.dictSize < d.dictCap {
			d.dictSize++
		}
	}
	return out, nil
}

// reset zeroes all bookkeeping counters so a pooled Dictionary can be
// reused for a new stream. The backing buffer is left as-is; it holds no
// meaningful content once dictSize and laSize are both zero.
func (d *Dictionary) reset() {
	d.head = 0
	d.dictSize = 0
	d.laSize = 0
}

// Checksum returns a fingerprint of the current committed history window.
// A cheap equality oracle for tests and for the CLI's --verify self-check,
// not part of the core match algorithm.
func (d *Dictionary) Checksum() uint64 {
	older, newer := d.DictionarySlices()
	return xxhash64Slices(older, newer)
}

// isPowerOfTwo reports whether v is a nonzero power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// bitLen returns the number of bits needed to represent v.
func bitLen(v int) int { return bits.Len(uint(v)) }
