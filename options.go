// SPDX-License-Identifier: MIT
// Copyright (c) 2026 slidewin
// Source: github.com/woozymasta/lzo

package lzdict

// Config configures a TokenStream: the dictionary/lookahead sizing and the
// minimum match length worth emitting as a Rep.
type Config struct {
	// DictCap is the history ring capacity; must be a power of two >= 2.
	DictCap int
	// LookaheadCap is the lookahead capacity; must be <= DictCap.
	LookaheadCap int
	// MinMatchLen is the smallest Rep length preferred over literals. 1
	// degenerates to "always Rep if possible".
	MinMatchLen int
}

// Validate reports a *ConfigError (wrapping ErrConfig) for the first
// violated constraint, or nil if cfg is usable.
func (cfg Config) Validate() error {
	if cfg.DictCap < 2 || !isPowerOfTwo(cfg.DictCap) {
		return configErrorf("DictCap", cfg.DictCap, "must be a power of two >= 2")
	}
	if cfg.LookaheadCap <= 0 {
		return configErrorf("LookaheadCap", cfg.LookaheadCap, "must be positive")
	}
	if cfg.LookaheadCap > cfg.DictCap {
		return configErrorf("LookaheadCap", cfg.LookaheadCap, "must not exceed DictCap")
	}
	if cfg.MinMatchLen <= 0 {
		return configErrorf("MinMatchLen", cfg.MinMatchLen, "must be positive")
	}
	if cfg.MinMatchLen > cfg.LookaheadCap {
		return configErrorf("MinMatchLen", cfg.MinMatchLen, "must not exceed LookaheadCap")
	}
	return nil
}

// DefaultConfig returns PresetDefault, the general-purpose starting point.
func DefaultConfig() Config {
	return PresetDefault
}

// Named presets: a small set of (DictCap, LookaheadCap, MinMatchLen) triples trading
// search depth for ratio instead of exposing the raw numbers as the only
// way to configure a stream.
var (
	// PresetFast favors throughput: a small window, short minimum match.
	PresetFast = Config{DictCap: 1 << 12, LookaheadCap: 1 << 6, MinMatchLen: 3}

	// PresetDefault is a balanced general-purpose configuration.
	PresetDefault = Config{DictCap: 1 << 16, LookaheadCap: 1 << 8, MinMatchLen: 3}

	// PresetBestRatio favors ratio over speed: a large window, longer
	// minimum match to avoid spending Rep tokens on marginal matches.
	PresetBestRatio = Config{DictCap: 1 << 20, LookaheadCap: 1 << 10, MinMatchLen: 4}
)
