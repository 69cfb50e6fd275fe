// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

// LZ11 format constants.
const (
	Tag            = 0x11     // First byte of every stream.
	WindowSize     = 4096     // Maximum back-reference distance (12-bit field, stored as distance-1).
	MinMatch       = 3        // Shortest back-reference; keeps short-match nibbles at 2..15.
	MaxMatch       = 65808    // Longest back-reference (ceiling of the 4-byte shape).
	FlagBits       = 8        // Tokens per flag byte, most significant bit first.
	MaxDecodedSize = 0x800000 // Default decoder ceiling for the declared size (8 MiB).
)

// Header sizes and limits.
const (
	shortHeaderLen  = 4        // tag + 24-bit size
	longHeaderLen   = 8        // tag + zero 24-bit field + 32-bit size
	maxShortSize    = 0xFFFFFF // last size representable in the 24-bit field
	maxExtendedSize = 0xFFFFFFFF
)

// Back-reference shape bounds.
const (
	maxShortLen  = 16  // 2-byte shape: nibble+1
	minMediumLen = 17  // 3-byte shape bias
	maxMediumLen = 272 // 0xFF + 17
	minLongLen   = 273 // 4-byte shape bias
)
