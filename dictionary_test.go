// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin

package lzdict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDictionary_ConfigValidation(t *testing.T) {
	_, err := NewDictionary(6, 2)
	require.ErrorIs(t, err, ErrConfig, "dictCap must be a power of two")

	_, err = NewDictionary(8, 0)
	require.ErrorIs(t, err, ErrConfig, "lookaheadCap must be positive")

	_, err = NewDictionary(8, 16)
	require.ErrorIs(t, err, ErrConfig, "lookaheadCap must not exceed dictCap")

	d, err := NewDictionary(8, 4)
	require.NoError(t, err)
	require.Equal(t, 8, d.DictCap())
	require.Equal(t, 4, d.LookaheadCap())
}

func TestDictionary_AddToLookaheadThenCommit(t *testing.T) {
	d, err := NewDictionary(16, 8)
	require.NoError(t, err)

	n := d.AddToLookahead([]byte("hello"))
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(d.Lookahead()))
	require.Equal(t, 0, d.DictSize())

	committed, err := d.CommitLookaheadBytes(3)
	require.NoError(t, err)
	require.Equal(t, "hel", string(committed))
	require.Equal(t, 3, d.DictSize())
	require.Equal(t, "lo", string(d.Lookahead()))

	_, newer := d.DictionarySlices()
	require.Equal(t, "hel", string(newer))
}

func TestDictionary_CommitLookaheadBytes_OutOfBounds(t *testing.T) {
	d, err := NewDictionary(8, 4)
	require.NoError(t, err)
	d.AddToLookahead([]byte("ab"))

	_, err = d.CommitLookaheadBytes(3)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDictionary_MatchLength_OutOfBoundsDistance(t *testing.T) {
	d, err := NewDictionary(8, 4)
	require.NoError(t, err)
	d.AddToLookahead([]byte("ab"))

	_, err = d.MatchLength(0)
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDictionary_MatchLength_Basic(t *testing.T) {
	d, err := NewDictionary(16, 8)
	require.NoError(t, err)

	d.AddToLookahead([]byte("abcabc"))
	committed, err := d.CommitLookaheadBytes(6)
	require.NoError(t, err)
	require.Equal(t, "abcabc", string(committed))

	d.AddToLookahead([]byte("abcZZZ"))
	length, err := d.MatchLength(2) // distance 2 -> source starts at 'a' (3 back)
	require.NoError(t, err)
	require.Equal(t, 3, length) // "abc" matches, "ZZZ" does not match "abc"
}

// Overlapping match: distance=0 (last committed byte repeats) should let a
// run-length match extend arbitrarily past the source's own length.
func TestDictionary_MatchLength_Overlap(t *testing.T) {
	d, err := NewDictionary(16, 8)
	require.NoError(t, err)

	d.AddToLookahead([]byte("a"))
	_, err = d.CommitLookaheadBytes(1)
	require.NoError(t, err)

	d.AddToLookahead([]byte("aaaaaaa"))
	length, err := d.MatchLength(0)
	require.NoError(t, err)
	require.Equal(t, 7, length)
}

func TestDictionary_LoadMatchIntoLookahead_Overlap(t *testing.T) {
	d, err := NewDictionary(16, 8)
	require.NoError(t, err)

	d.AddToLookahead([]byte("x"))
	_, err = d.CommitLookaheadBytes(1)
	require.NoError(t, err)

	// distance=0, length=5 > distance+1: must synthesize "xxxxx" via overlap.
	out, err := d.LoadMatchIntoLookahead(0, 5)
	require.NoError(t, err)
	require.Equal(t, "xxxxx", string(out))
	require.Equal(t, "xxxxx", string(d.Lookahead()))
}

func TestDictionary_LoadMatchIntoLookahead_OutOfBounds(t *testing.T) {
	d, err := NewDictionary(16, 4)
	require.NoError(t, err)
	d.AddToLookahead([]byte("a"))
	d.CommitLookaheadBytes(1)

	_, err = d.LoadMatchIntoLookahead(0, 5) // 5 + 0 > lookaheadCap(4)
	require.ErrorIs(t, err, ErrOutOfBounds)

	_, err = d.LoadMatchIntoLookahead(5, 1) // distance >= dictSize
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDictionary_LoadMatchIntoDictionary_Overlap(t *testing.T) {
	d, err := NewDictionary(16, 8)
	require.NoError(t, err)

	d.AddToLookahead([]byte("y"))
	_, err = d.CommitLookaheadBytes(1)
	require.NoError(t, err)

	out, err := d.LoadMatchIntoDictionary(0, 6)
	require.NoError(t, err)
	require.Equal(t, "yyyyyy", string(out))
	require.Equal(t, 0, d.LookaheadSize())
	require.Equal(t, 7, d.DictSize())
}

func TestDictionary_MirrorInvariant(t *testing.T) {
	d, err := NewDictionary(8, 4)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		d.AddToLookahead([]byte{byte('a' + i%5)})
		_, err := d.CommitLookaheadBytes(1)
		require.NoError(t, err)

		for p := 0; p < d.LookaheadCap(); p++ {
			require.Equal(t, d.buf[p], d.buf[int(d.dictCap)+p], "mirror invariant violated at front index %d", p)
		}
	}
}

func TestDictionary_DictSizeShrinksWhenLookaheadGrows(t *testing.T) {
	d, err := NewDictionary(8, 4)
	require.NoError(t, err)

	d.AddToLookahead([]byte("abcd"))
	d.CommitLookaheadBytes(4)
	require.Equal(t, 4, d.DictSize())

	d.AddToLookahead([]byte("wxyz"))
	require.LessOrEqual(t, d.DictSize(), d.DictCap()-d.LookaheadSize())
}

func TestDictionary_ClearLookahead(t *testing.T) {
	d, err := NewDictionary(8, 4)
	require.NoError(t, err)

	d.AddToLookahead([]byte("ab"))
	d.ClearLookahead()
	require.Equal(t, 0, d.LookaheadSize())
}

func TestDictionary_Checksum_StableAcrossEqualContent(t *testing.T) {
	d1, _ := NewDictionary(16, 16)
	d2, _ := NewDictionary(16, 16)

	d1.AddToLookahead([]byte("checksum-me"))
	d1.CommitLookaheadBytes(len("checksum-me"))

	d2.AddToLookahead([]byte("checksum-me"))
	d2.CommitLookaheadBytes(len("checksum-me"))

	require.Equal(t, d1.Checksum(), d2.Checksum())
}
