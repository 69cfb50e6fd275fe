// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import (
	"errors"
	"fmt"
	"io"
)

// Decompress decodes one LZ11 stream from the beginning of src.
// Options nil means DefaultDecompressOptions (8 MiB ceiling, trailing bytes ignored).
// Asset files are often padded to an alignment boundary, so bytes after the stream
// are accepted unless opts.RejectTrailing is set.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, consumed, err := DecompressBlock(src, opts)
	if err != nil {
		return nil, err
	}

	if opts != nil && opts.RejectTrailing && consumed != len(src) {
		return nil, fmt.Errorf("%w: consumed=%d input=%d", ErrTrailingData, consumed, len(src))
	}

	return out, nil
}

// DecompressBlock decodes one LZ11 stream from the beginning of src.
// It returns the decoded bytes and the number of consumed input bytes (header included),
// which is where the next stream starts in archives that store them back to back.
func DecompressBlock(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	reader := &sliceByteReader{data: src}
	out, err := decompressFromByteReader(reader, opts)
	if err != nil {
		return nil, reader.pos, err
	}

	return out, reader.pos, nil
}

// DecompressFromReader decodes one LZ11 stream from r and returns consumed bytes.
// Reading stops right after the byte that completes the declared size when r
// implements io.ByteReader; other readers are wrapped in a bufio.Reader, which may
// buffer input beyond the end of the stream.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}

	cr := newCountingByteReader(r)
	out, err := decompressFromByteReader(cr, opts)

	return out, cr.count, err
}

// decompressFromByteReader reads the header, allocates the output once and expands
// flag blocks until the declared size is produced.
func decompressFromByteReader(r io.ByteReader, opts *DecompressOptions) ([]byte, error) {
	size, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	limit := opts.decodeLimit()
	if size < 0 || size > limit {
		return nil, fmt.Errorf("%w: declared=%d limit=%d", ErrSizeTooLarge, size, limit)
	}

	out := make([]byte, size)
	pos := 0

	for pos < size {
		flags, err := r.ReadByte()
		if err != nil {
			return nil, tokenReadError(err, ErrUnexpectedEOF)
		}

		// Flags are consumed most significant bit first; 1 marks a back-reference.
		for bit := 0; bit < FlagBits && pos < size; bit++ {
			b1, err := readTokenByte(r)
			if err != nil {
				return nil, err
			}

			if flags&(0x80>>bit) == 0 {
				out[pos] = b1
				pos++
				continue
			}

			distance, length, err := readMatch(r, b1)
			if err != nil {
				return nil, err
			}

			if distance > pos {
				return nil, fmt.Errorf("%w: distance=%d produced=%d", ErrLookBehindUnderrun, distance, pos)
			}

			pos += copyBackRef(out, pos, distance, length)
		}
	}

	return out, nil
}

// readTokenByte reads one byte inside a flag block.
func readTokenByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, tokenReadError(err, ErrUnexpectedEOFToken)
	}

	return b, nil
}

// tokenReadError maps io.EOF to eofErr; other reader errors are returned as is.
func tokenReadError(err, eofErr error) error {
	if errors.Is(err, io.EOF) {
		return eofErr
	}

	return err
}
