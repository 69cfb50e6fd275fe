// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import (
	"bufio"
	"io"
)

// sliceByteReader feeds the decoder from an in-memory stream. pos is the
// consumed byte count DecompressBlock hands back, i.e. where a following
// stream in the same archive begins.
type sliceByteReader struct {
	data []byte
	pos  int
}

func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	r.pos++
	return r.data[r.pos-1], nil
}

// countingByteReader tracks how much of an io.Reader one LZ11 stream used,
// which DecompressFromReader reports even when decoding fails.
type countingByteReader struct {
	base  io.ByteReader
	count int64
}

func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err == nil {
		r.count++
	}

	return b, err
}

// newCountingByteReader reads r byte by byte, adding a bufio layer only when r
// cannot already serve single bytes.
func newCountingByteReader(r io.Reader) *countingByteReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &countingByteReader{base: br}
}
