// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

// copyBackRef writes length bytes at out[pos:] from distance bytes back and returns
// how many were written. The copy is clamped to len(out): a stream ends the moment
// its declared size is reached, even in the middle of a token.
// When distance < length the ranges overlap and the copy must run byte by byte so
// each written byte is visible to the next read; that is how runs are encoded.
// distance must be in 1..pos; the decoder checks it against produced output first.
func copyBackRef(out []byte, pos, distance, length int) int {
	src := pos - distance
	length = min(length, len(out)-pos)
	if distance >= length {
		copy(out[pos:pos+length], out[src:src+length])
		return length
	}

	for i := range length {
		out[pos+i] = out[src+i]
	}

	return length
}
