// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin

package lzdict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamPool_AcquireRelease_NoCrossTalk(t *testing.T) {
	pool, err := NewStreamPool(Config{DictCap: 16, LookaheadCap: 8, MinMatchLen: 3})
	require.NoError(t, err)

	sinkA := &sliceSink{}
	ts := pool.Acquire(sinkA)
	_, err = ts.Write([]byte("aaaaaaaa"))
	require.NoError(t, err)
	require.NoError(t, ts.Flush())
	require.NotEmpty(t, sinkA.tokens)
	pool.Release(ts)

	sinkB := &sliceSink{}
	ts2 := pool.Acquire(sinkB)
	require.Equal(t, 0, ts2.dict.DictSize(), "reused stream must start with no inherited history")

	_, err = ts2.Write([]byte("zzz"))
	require.NoError(t, err)
	require.NoError(t, ts2.Flush())

	// With no prior history, the first byte of a fresh stream is always a
	// literal regardless of what sinkA's stream happened to see.
	require.Equal(t, Literal{Byte: 'z'}, sinkB.tokens[0])
}

func TestNewStreamPool_InvalidConfig(t *testing.T) {
	_, err := NewStreamPool(Config{DictCap: 0, LookaheadCap: 4, MinMatchLen: 1})
	require.ErrorIs(t, err, ErrConfig)
}
