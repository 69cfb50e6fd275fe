// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import (
	"encoding/binary"
	"errors"
	"io"
)

// appendHeader appends the tag and size field for a stream of size decoded bytes.
// A zero 24-bit field announces the extended form, so size 0 is written extended too.
func appendHeader(dst []byte, size int) []byte {
	if size > 0 && size <= maxShortSize {
		return append(dst, Tag, byte(size), byte(size>>8), byte(size>>16))
	}

	dst = append(dst, Tag, 0, 0, 0)
	return binary.LittleEndian.AppendUint32(dst, uint32(size)) // #nosec G115 -- size checked against maxExtendedSize by callers
}

// headerLen returns the encoded header length for size.
func headerLen(size int) int {
	if size > 0 && size <= maxShortSize {
		return shortHeaderLen
	}

	return longHeaderLen
}

// readHeader reads the tag and declared size from r.
// The size is not checked against any ceiling here.
func readHeader(r io.ByteReader) (int, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return 0, headerReadError(err)
	}
	if tag != Tag {
		return 0, ErrBadTag
	}

	size, err := readLE(r, 3)
	if err != nil {
		return 0, err
	}
	if size == 0 {
		size, err = readLE(r, 4)
		if err != nil {
			return 0, err
		}
	}

	return size, nil
}

// readLE reads an n-byte little-endian unsigned integer.
func readLE(r io.ByteReader, n int) (int, error) {
	v := 0
	for i := range n {
		b, err := r.ReadByte()
		if err != nil {
			return 0, headerReadError(err)
		}
		v |= int(b) << (8 * i)
	}

	return v, nil
}

// headerReadError maps EOF to ErrTruncatedHeader and passes other reader errors through.
func headerReadError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrTruncatedHeader
	}

	return err
}

// DecodedSize parses only the stream header of src.
// It returns the declared decompressed size and the header length in bytes.
// No size ceiling is applied, so it can be used to inspect streams Decompress would refuse.
func DecodedSize(src []byte) (size int, n int, err error) {
	r := &sliceByteReader{data: src}
	size, err = readHeader(r)
	if err != nil {
		return 0, 0, err
	}

	return size, r.pos, nil
}
