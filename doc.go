// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

/*
Package lzdict implements the sliding-window dictionary and match engine
at the core of an LZ77-family byte-stream compressor.

It streams input bytes into a bounded ring buffer (Dictionary), finds the
longest prior occurrence of the upcoming bytes via a per-first-byte hash
chain (MatchFinder), and drives a token emitter (TokenStream) that
chooses between Literal and Rep tokens and commits consumed bytes back
into the dictionary so later matches can reference them.

Entropy coding of the token stream, a decoder, and concurrency inside the
compressor are explicitly out of scope.

# Usage

	cfg := lzdict.Config{DictCap: 1 << 16, LookaheadCap: 2048, MinMatchLen: 3}
	ts, err := lzdict.NewTokenStream(cfg, sink)
	if err != nil {
		// handle ConfigError
	}
	if _, err := ts.Write(data); err != nil {
		// handle SinkError
	}
	if err := ts.Flush(); err != nil {
		// handle SinkError
	}

sink implements the Sink interface; see sink.go.
*/
package lzdict
