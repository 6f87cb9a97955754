// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin

// Command lzdictcli runs an input file through a TokenStream and reports
// the resulting token tally. It is a thin runnable surface around the
// lzdict library, not a compressor: no wire format is produced.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/slidewin/lzdict"
)

var presetsByName = map[string]lzdict.Config{
	"fast":       lzdict.PresetFast,
	"default":    lzdict.PresetDefault,
	"best-ratio": lzdict.PresetBestRatio,
}

// countingSink tallies emitted tokens instead of serializing them; a wire
// encoding is explicitly out of scope for the core this CLI wraps.
type countingSink struct {
	Literals    int `json:"literals"`
	Reps        int `json:"reps"`
	RepBytes    int `json:"rep_bytes"`
	OutputBytes int `json:"output_bytes"`
}

func (s *countingSink) Write(tok lzdict.Token) error {
	switch v := tok.(type) {
	case lzdict.Literal:
		s.Literals++
		s.OutputBytes++
	case lzdict.Rep:
		s.Reps++
		s.RepBytes += v.Length
		s.OutputBytes += v.Length
	}
	return nil
}

func (s *countingSink) Flush() error { return nil }

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Error("lzdictcli failed")
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := flag.NewFlagSet("lzdictcli", flag.ContinueOnError)
	preset := flags.String("preset", "default", "named preset: fast, default, best-ratio")
	dictCap := flags.Int("dict-cap", 0, "history ring capacity, power of two (overrides preset)")
	lookaheadCap := flags.Int("lookahead-cap", 0, "lookahead capacity (overrides preset)")
	minMatch := flags.Int("min-match", 0, "minimum Rep length (overrides preset)")
	dumpTokens := flags.String("dump-tokens", "", "write a JSON token tally to this path")
	verify := flags.Bool("verify", false, "re-run input through a second dictionary and compare checksums")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, ok := presetsByName[*preset]
	if !ok {
		return fmt.Errorf("lzdictcli: unknown preset %q", *preset)
	}
	if *dictCap != 0 {
		cfg.DictCap = *dictCap
	}
	if *lookaheadCap != 0 {
		cfg.LookaheadCap = *lookaheadCap
	}
	if *minMatch != 0 {
		cfg.MinMatchLen = *minMatch
	}

	input, err := readInput(flags.Args())
	if err != nil {
		return err
	}

	sink := &countingSink{}
	ts, err := lzdict.NewTokenStream(cfg, sink)
	if err != nil {
		return err
	}
	if _, err := ts.Write(input); err != nil {
		return err
	}
	if err := ts.Flush(); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"input_bytes":  len(input),
		"literals":     sink.Literals,
		"reps":         sink.Reps,
		"rep_bytes":    sink.RepBytes,
		"output_bytes": sink.OutputBytes,
	}).Info("token stream complete")

	if *dumpTokens != "" {
		if err := dumpTally(*dumpTokens, sink); err != nil {
			return err
		}
	}

	if *verify {
		if err := verifyChecksum(cfg, input); err != nil {
			return err
		}
		logrus.Info("verify: checksum self-check passed")
	}

	return nil
}

func readInput(positional []string) ([]byte, error) {
	if len(positional) == 0 || positional[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(positional[0])
}

func dumpTally(path string, sink *countingSink) error {
	buf, err := json.MarshalIndent(sink, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(buf))
}

// verifyChecksum feeds input into a bare Dictionary in one pass and a
// fresh Dictionary in two passes, and confirms both reach the same
// committed-history checksum. It is not a decoder: it only exercises
// Dictionary.Checksum as a cheap equality oracle across the commit path.
func verifyChecksum(cfg lzdict.Config, input []byte) error {
	whole, err := lzdict.NewDictionary(cfg.DictCap, cfg.LookaheadCap)
	if err != nil {
		return err
	}
	whole.AddToDictionary(input)

	split, err := lzdict.NewDictionary(cfg.DictCap, cfg.LookaheadCap)
	if err != nil {
		return err
	}
	mid := len(input) / 2
	split.AddToDictionary(input[:mid])
	split.AddToDictionary(input[mid:])

	if whole.Checksum() != split.Checksum() {
		return fmt.Errorf("lzdictcli: verify: checksum mismatch across commit split")
	}
	return nil
}
