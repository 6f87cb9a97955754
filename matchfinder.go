// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

// matchFinderNone marks an empty head/chain slot.
const matchFinderNone = -1

// MatchFinder is a per-first-byte hash-chain index over a Dictionary's ring
// positions, enumerating candidate match sources in most-recent-first order.
type MatchFinder struct {
	head  [256]int32
	chain []int32
}

// NewMatchFinder allocates a MatchFinder sized for a dictionary ring of the
// given capacity (one chain slot per physical ring position).
func NewMatchFinder(dictCap int) *MatchFinder {
	m := &MatchFinder{chain: make([]int32, dictCap)}
	for i := range m.head {
		m.head[i] = matchFinderNone
	}
	for i := range m.chain {
		m.chain[i] = matchFinderNone
	}
	return m
}

// Insert prepends slot to the chain for byte b: chain[slot] = head[b];
// head[b] = slot. Must be called exactly once per byte committed to the
// dictionary, with slot equal to that byte's physical ring index.
func (m *MatchFinder) Insert(b byte, slot int) {
	m.chain[slot] = m.head[b]
	m.head[b] = int32(slot)
}

// reset clears every chain head and link so a pooled MatchFinder can be
// reused for a new dictionary without leaking stale slot references.
func (m *MatchFinder) reset() {
	for i := range m.head {
		m.head[i] = matchFinderNone
	}
	for i := range m.chain {
		m.chain[i] = matchFinderNone
	}
}

// FindBest traverses the chain for lookahead[0], validating each candidate
// against the dictionary's current content (the stale-chain guard: a slot
// whose current first byte disagrees with the query byte ends traversal,
// since it means the slot was overwritten by ring reuse since insertion).
// It returns the longest match found and its distance; found is false if no
// candidate reached length >= 1.
func (m *MatchFinder) FindBest(dict *Dictionary, lookahead []byte) (length int, distance int, found bool) {
	if len(lookahead) == 0 {
		return 0, 0, false
	}

	b0 := lookahead[0]
	slot := m.head[b0]
	bestLen := 0
	bestDist := 0
	prevDist := -1

	for slot != matchFinderNone {
		s := uint64(slot)
		if dict.firstByteAt(s) != b0 {
			break
		}

		dist := dict.distanceFromSlot(s)
		// A reused slot re-inserted with the same byte links back into its own
		// chain. Distances strictly grow along a most-recent-first walk, so a
		// distance that does not grow means the walk has looped: stop there.
		if int(dist) <= prevDist {
			break
		}
		prevDist = int(dist)
		if dist < dict.dictSize {
			l, err := dict.MatchLength(int(dist))
			if err == nil {
				if l > len(lookahead) {
					l = len(lookahead)
				}
				if l > bestLen {
					bestLen = l
					bestDist = int(dist)
				}
			}
		}

		slot = m.chain[slot]
	}

	return bestLen, bestDist, bestLen > 0
}
