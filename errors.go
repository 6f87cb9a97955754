// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error taxonomy. Callers should use errors.Is
// against these; *ConfigError additionally carries the offending field and
// value, and *OutOfBoundsError the name of the failing operation.
var (
	// ErrConfig is returned (wrapped) when a constructor is called with an
	// invalid configuration. A programming error; never recoverable internally.
	ErrConfig = errors.New("invalid configuration")

	// ErrOutOfBounds is returned (wrapped) when a match or commit API is called
	// with a distance, length, or count outside its documented precondition.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrOverwritten is returned by RingBuffer.Get when the requested virtual
	// position has fallen out of the retained window. This is a normal,
	// expected absence, not an exceptional condition.
	ErrOverwritten = errors.New("position overwritten")

	// ErrSinkClosed is returned when Write or Flush is called on a TokenStream
	// whose sink has already reported a terminal error.
	ErrSinkClosed = errors.New("sink closed after previous error")
)

// ConfigError reports an invalid constructor argument.
type ConfigError struct {
	Field string
	Value int
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("lzdict: config %s=%d: %s", e.Field, e.Value, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErrorf(field string, value int, msg string) error {
	return &ConfigError{Field: field, Value: value, Msg: msg}
}

// OutOfBoundsError reports a precondition violation on a Dictionary or
// MatchFinder operation.
type OutOfBoundsError struct {
	Op  string
	Msg string
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("lzdict: %s: %s", e.Op, e.Msg)
}

func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }

func outOfBoundsf(op, msg string) error {
	return &OutOfBoundsError{Op: op, Msg: msg}
}

// SinkError wraps an error returned by a downstream Sink. It is surfaced to
// the caller unchanged in meaning; no retry is performed.
type SinkError struct {
	Op  string
	Err error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("lzdict: sink %s: %v", e.Op, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

func sinkErrorf(op string, err error) error {
	if err == nil {
		return nil
	}
	return &SinkError{Op: op, Err: err}
}
