// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import "io"

// Back-reference layout. The high nibble of the first byte picks the shape:
//
//	2..15  short   LD DD            length = L+1              (3..16)
//	0      medium  0L LD DD         length = L+17             (17..272)
//	1      long    1L LL LD DD      length = L+273            (273..65808)
//
// D is distance-1 in 12 bits. Short lengths map to nibbles 2..15 only because
// MinMatch is 3; a shorter minimum would collide with the medium and long markers.

// tokenByte keeps the low 8 bits of v.
func tokenByte(v int) byte {
	// #nosec G115 -- token fields intentionally keep only low 8 bits.
	return byte(v & 0xff)
}

// appendMatch appends one back-reference token. length must be in MinMatch..MaxMatch
// and distance in 1..WindowSize.
func appendMatch(dst []byte, distance, length int) []byte {
	d := distance - 1
	switch {
	case length <= maxShortLen:
		return append(dst,
			tokenByte((length-1)<<4|d>>8),
			tokenByte(d),
		)

	case length <= maxMediumLen:
		l := length - minMediumLen
		return append(dst,
			tokenByte(l>>4),
			tokenByte((l&0xF)<<4|d>>8),
			tokenByte(d),
		)

	default:
		l := length - minLongLen
		return append(dst,
			tokenByte(1<<4|l>>12),
			tokenByte(l>>4),
			tokenByte((l&0xF)<<4|d>>8),
			tokenByte(d),
		)
	}
}

// matchTokenLen returns the encoded size of a back-reference of the given length.
func matchTokenLen(length int) int {
	switch {
	case length <= maxShortLen:
		return 2
	case length <= maxMediumLen:
		return 3
	default:
		return 4
	}
}

// readMatch decodes the rest of a back-reference whose first byte is b1.
func readMatch(r io.ByteReader, b1 byte) (distance, length int, err error) {
	var b2, b3, b4 byte

	switch b1 >> 4 {
	case 0:
		if b2, err = readTokenByte(r); err != nil {
			return 0, 0, err
		}
		if b3, err = readTokenByte(r); err != nil {
			return 0, 0, err
		}

		length = (int(b1&0xF)<<4 | int(b2>>4)) + minMediumLen
		distance = (int(b2&0xF)<<8 | int(b3)) + 1

	case 1:
		if b2, err = readTokenByte(r); err != nil {
			return 0, 0, err
		}
		if b3, err = readTokenByte(r); err != nil {
			return 0, 0, err
		}
		if b4, err = readTokenByte(r); err != nil {
			return 0, 0, err
		}

		length = (int(b1&0xF)<<12 | int(b2)<<4 | int(b3>>4)) + minLongLen
		distance = (int(b3&0xF)<<8 | int(b4)) + 1

	default:
		if b2, err = readTokenByte(r); err != nil {
			return 0, 0, err
		}

		length = int(b1>>4) + 1
		distance = (int(b1&0xF)<<8 | int(b2)) + 1
	}

	return distance, length, nil
}
