// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import "fmt"

// DecompressOptions configures Decompress, DecompressBlock and DecompressFromReader.
type DecompressOptions struct {
	// MaxDecodedSize rejects streams whose header declares more bytes (0 = MaxDecodedSize).
	MaxDecodedSize int
	// RejectTrailing makes Decompress fail when bytes follow the end of the stream.
	RejectTrailing bool
}

// DefaultDecompressOptions returns options with the 8 MiB ceiling and trailing bytes allowed.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{MaxDecodedSize: MaxDecodedSize}
}

// CompressOptions configures Compress.
type CompressOptions struct {
	// WindowSize limits back-reference distance: 1..WindowSize (0 = WindowSize).
	WindowSize int
	// MaxMatchLength caps back-reference length: MinMatch..MaxMatch (0 = MaxMatch).
	MaxMatchLength int
}

// DefaultCompressOptions returns the full format limits (window 4096, max match 65808).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		WindowSize:     WindowSize,
		MaxMatchLength: MaxMatch,
	}
}

// decodeLimit returns the effective declared-size ceiling.
func (o *DecompressOptions) decodeLimit() int {
	if o == nil || o.MaxDecodedSize <= 0 {
		return MaxDecodedSize
	}

	return o.MaxDecodedSize
}

// resolve fills zero fields with defaults and validates ranges.
func (o *CompressOptions) resolve() (window, maxMatch int, err error) {
	if o == nil {
		return WindowSize, MaxMatch, nil
	}

	window = o.WindowSize
	if window == 0 {
		window = WindowSize
	}
	if window < 1 || window > WindowSize {
		return 0, 0, fmt.Errorf("%w: window size %d outside 1..%d", ErrInvalidOptions, o.WindowSize, WindowSize)
	}

	maxMatch = o.MaxMatchLength
	if maxMatch == 0 {
		maxMatch = MaxMatch
	}
	if maxMatch < MinMatch || maxMatch > MaxMatch {
		return 0, 0, fmt.Errorf("%w: max match length %d outside %d..%d", ErrInvalidOptions, o.MaxMatchLength, MinMatch, MaxMatch)
	}

	return window, maxMatch, nil
}
