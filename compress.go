// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import "fmt"

// Compress encodes src as one LZ11 stream. Options nil means DefaultCompressOptions().
// Empty input is valid and produces an 8-byte stream declaring size 0.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	window, maxMatch, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	if uint64(len(src)) > maxExtendedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInputTooLarge, len(src))
	}

	dict := acquireMatchDictionary(window, MinMatch, maxMatch)
	defer releaseMatchDictionary(dict)

	matches := parseGreedy(nil, src, dict)

	out := make([]byte, 0, headerLen(len(src))+encodedLen(matches))
	out = appendHeader(out, len(src))
	out = appendTokens(out, src, matches)

	return out, nil
}

// tokenWriter packs tokens into flag blocks. A flag byte is reserved when its first
// token is written and patched in place as bits are set.
type tokenWriter struct {
	out     []byte
	flagPos int
	bit     int
}

// begin starts a token, reserving a new flag byte every FlagBits tokens.
func (w *tokenWriter) begin(isMatch bool) {
	if w.bit == 0 {
		w.flagPos = len(w.out)
		w.out = append(w.out, 0)
	}

	if isMatch {
		w.out[w.flagPos] |= 0x80 >> w.bit
	}

	w.bit = (w.bit + 1) % FlagBits
}

// literals writes each byte of lit as a literal token.
func (w *tokenWriter) literals(lit []byte) {
	for _, b := range lit {
		w.begin(false)
		w.out = append(w.out, b)
	}
}

// backRef writes one back-reference token.
func (w *tokenWriter) backRef(distance, length int) {
	w.begin(true)
	w.out = appendMatch(w.out, distance, length)
}

// appendTokens appends the token stream for the parse of src to dst.
func appendTokens(dst []byte, src []byte, matches []match) []byte {
	w := tokenWriter{out: dst}
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			w.literals(src[pos : pos+m.Unmatched])
			pos += m.Unmatched
		}
		if m.Length > 0 {
			w.backRef(m.Distance, m.Length)
			pos += m.Length
		}
	}

	return w.out
}
