// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

// A match is one step of the parse: Unmatched literal bytes followed by a
// back-reference of Length bytes from Distance bytes back. The final match of a
// parse may have Length 0 to carry trailing literals.
type match struct {
	Unmatched int
	Length    int
	Distance  int
}

// parseGreedy takes the longest match at every position and appends the parse of
// src to dst. There is no lazy evaluation: a longer match one byte later is never
// considered, so output is stable across versions.
func parseGreedy(dst []match, src []byte, dict *matchDictionary) []match {
	pos := 0
	nextEmit := 0

	for pos < len(src) {
		distance, length := dict.longestMatch(src, pos)
		if length == 0 {
			dict.record(src[pos], pos)
			dict.slide(1)
			pos++
			continue
		}

		dst = append(dst, match{
			Unmatched: pos - nextEmit,
			Length:    length,
			Distance:  distance,
		})

		// Every covered byte becomes a candidate for later matches.
		dict.recordRange(src, pos, length)
		dict.slide(length)
		pos += length
		nextEmit = pos
	}

	if nextEmit < len(src) {
		dst = append(dst, match{Unmatched: len(src) - nextEmit})
	}

	return dst
}

// encodedLen returns the exact size of the token stream for matches, flag bytes included.
func encodedLen(matches []match) int {
	tokens, n := 0, 0
	for _, m := range matches {
		tokens += m.Unmatched
		n += m.Unmatched
		if m.Length > 0 {
			tokens++
			n += matchTokenLen(m.Length)
		}
	}

	return n + (tokens+FlagBits-1)/FlagBits
}
