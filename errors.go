// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import (
	"errors"
	"fmt"
)

// Error classes. Every decode error wraps exactly one of them, so callers can tell
// "this is not LZ11 data" apart from "this is LZ11 data, but it is damaged".
var (
	// ErrNotLZ11 is the class of errors raised while reading the stream header.
	ErrNotLZ11 = errors.New("not lz11 data")
	// ErrCorrupt is the class of errors raised while expanding the token stream.
	ErrCorrupt = errors.New("corrupt lz11 stream")
)

// Header errors (wrap ErrNotLZ11).
var (
	ErrBadTag          = fmt.Errorf("%w: bad format tag", ErrNotLZ11)
	ErrTruncatedHeader = fmt.Errorf("%w: truncated size header", ErrNotLZ11)
	ErrSizeTooLarge    = fmt.Errorf("%w: declared size exceeds limit", ErrNotLZ11)
)

// Token stream errors (wrap ErrCorrupt).
var (
	ErrUnexpectedEOF      = fmt.Errorf("%w: unexpected end of input while reading flags", ErrCorrupt)
	ErrUnexpectedEOFToken = fmt.Errorf("%w: unexpected end of input inside flags block", ErrCorrupt)
	ErrLookBehindUnderrun = fmt.Errorf("%w: back-reference before start of output", ErrCorrupt)
)

// Call errors.
var (
	ErrTrailingData   = errors.New("trailing bytes after lz11 stream")
	ErrNilReader      = errors.New("reader is nil")
	ErrInputTooLarge  = errors.New("input exceeds 32-bit size field")
	ErrInvalidOptions = errors.New("invalid options")
)
