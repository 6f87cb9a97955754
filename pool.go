// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

import "sync"

// StreamPool reuses TokenStream instances (and the Dictionary/MatchFinder
// buffers they own) for one fixed Config, avoiding repeated large
// allocations when a process opens many short-lived streams back to back
// at the same size. A pool is only correct for a single Config: mixing
// configs through one StreamPool would return a TokenStream sized for the
// wrong dictionary.
type StreamPool struct {
	cfg  Config
	pool sync.Pool
}

// NewStreamPool returns a pool that lends out TokenStreams configured with
// cfg. cfg is validated once up front so Acquire never fails on config
// grounds.
func NewStreamPool(cfg Config) (*StreamPool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &StreamPool{cfg: cfg}
	p.pool.New = func() any {
		dict, err := NewDictionary(cfg.DictCap, cfg.LookaheadCap)
		if err != nil {
			// Unreachable: cfg was validated above and NewDictionary's
			// preconditions are a subset of Config.Validate's.
			panic(err)
		}
		return &TokenStream{dict: dict, mf: NewMatchFinder(cfg.DictCap), cfg: cfg}
	}
	return p, nil
}

// Acquire returns a TokenStream bound to sink, reusing a previously
// released instance when one is available. The returned stream's
// dictionary and match-finder state are freshly reset; it carries no
// history from any earlier use.
func (p *StreamPool) Acquire(sink Sink) *TokenStream {
	ts := p.pool.Get().(*TokenStream)
	ts.dict.reset()
	ts.mf.reset()
	ts.sink = sink
	ts.closed = false
	return ts
}

// Release returns ts to the pool. The caller must not use ts again after
// calling Release. Release is a no-op for a nil ts.
func (p *StreamPool) Release(ts *TokenStream) {
	if ts == nil {
		return
	}
	ts.sink = nil
	p.pool.Put(ts)
}
