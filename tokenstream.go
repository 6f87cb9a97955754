// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

// TokenStream drives a Dictionary and MatchFinder over a byte stream,
// emitting Literal/Rep tokens to a Sink. It is the only exported type that
// decides Rep vs Literal; Dictionary and MatchFinder are pure mechanism.
type TokenStream struct {
	dict   *Dictionary
	mf     *MatchFinder
	sink   Sink
	cfg    Config
	closed bool
}

// NewTokenStream validates cfg, allocates a Dictionary and MatchFinder
// sized to it, and returns a TokenStream bound to sink.
func NewTokenStream(cfg Config, sink Sink) (*TokenStream, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dict, err := NewDictionary(cfg.DictCap, cfg.LookaheadCap)
	if err != nil {
		return nil, err
	}

	return &TokenStream{
		dict: dict,
		mf:   NewMatchFinder(cfg.DictCap),
		sink: sink,
		cfg:  cfg,
	}, nil
}

// Write appends bytes into the dictionary's lookahead, topping it back up
// to capacity after every emitted token so a match can span the whole
// lookahead window rather than whatever fragment happened to be staged
// before the last commit. It drains via step until the lookahead is empty
// or, with no more input left to accept, falls below MinMatchLen. Returns
// the number of bytes accepted, which is len(p) unless the sink reports an
// error part-way through.
func (ts *TokenStream) Write(p []byte) (int, error) {
	if ts.closed {
		return 0, ErrSinkClosed
	}

	accepted := 0
	for {
		if len(p) > 0 {
			n := ts.dict.AddToLookahead(p)
			p = p[n:]
			accepted += n
		}

		laSize := ts.dict.LookaheadSize()
		if laSize == 0 {
			break
		}
		if laSize < ts.cfg.MinMatchLen && len(p) == 0 {
			break
		}

		if err := ts.step(false); err != nil {
			return accepted, err
		}
	}
	return accepted, nil
}

// Flush drains the remaining lookahead to completion, then flushes the
// sink. During this final drain a Rep covering the whole remaining
// lookahead is accepted even if its length is below MinMatchLen, since
// there is no more input that could extend it into a longer match later.
func (ts *TokenStream) Flush() error {
	if ts.closed {
		return ErrSinkClosed
	}

	for ts.dict.LookaheadSize() > 0 {
		if err := ts.step(true); err != nil {
			return err
		}
	}

	if err := ts.sink.Flush(); err != nil {
		ts.closed = true
		return sinkErrorf("Flush", err)
	}
	return nil
}

// step makes the canonical per-token decision: find the best candidate
// over the current lookahead, emit a Rep when it clears MinMatchLen (or,
// during a forced drain, when it consumes the entire remaining
// lookahead), otherwise emit a Literal for lookahead[0]. Every committed
// byte is re-indexed into the MatchFinder at its physical slot.
func (ts *TokenStream) step(forceDrain bool) error {
	laSize := ts.dict.LookaheadSize()
	if laSize == 0 {
		return nil
	}

	length, distance, found := ts.mf.FindBest(ts.dict, ts.dict.Lookahead())
	if found && (length >= ts.cfg.MinMatchLen || (forceDrain && length == laSize)) {
		headBefore := ts.dict.Head()
		committed, err := ts.dict.CommitLookaheadBytes(length)
		if err != nil {
			return err
		}
		ts.index(headBefore, committed)
		return ts.emit(Rep{Distance: distance, Length: length})
	}

	headBefore := ts.dict.Head()
	committed, err := ts.dict.CommitLookaheadBytes(1)
	if err != nil {
		return err
	}
	ts.index(headBefore, committed)
	return ts.emit(Literal{Byte: committed[0]})
}

// index re-registers each newly committed byte with the MatchFinder at
// the physical slot it now occupies, keeping the hash chain authoritative.
func (ts *TokenStream) index(headBefore int, committed []byte) {
	mask := ts.cfg.DictCap - 1
	slot := headBefore
	for _, b := range committed {
		ts.mf.Insert(b, slot)
		slot = (slot + 1) & mask
	}
}

func (ts *TokenStream) emit(tok Token) error {
	if err := ts.sink.Write(tok); err != nil {
		ts.closed = true
		return sinkErrorf("Write", err)
	}
	return nil
}
