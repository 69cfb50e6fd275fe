// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

/*
Package lz11 implements the LZ11 (LZSS 0x11) compression format used by game asset files.

Header: tag byte 0x11 and a 24-bit little-endian decompressed size. When the 24-bit field
is zero, a 32-bit little-endian size follows (used for size 0 and sizes above 0xFFFFFF).

Body: one flag byte per 8 tokens, most significant bit first; bit 0 = literal (1 byte),
bit 1 = back-reference. Back-references store distance-1 in 12 bits (window 4096) and pick
one of three shapes by the high nibble of their first byte:

	nibble 2..15  2 bytes  length 3..16
	nibble 0      3 bytes  length 17..272
	nibble 1      4 bytes  length 273..65808

Decoding stops as soon as the declared size is produced, even inside a block or a token.

Compress is a single-pass greedy encoder; for given options its output is deterministic.
Decompress rejects streams declaring more than 8 MiB unless
DecompressOptions.MaxDecodedSize says otherwise.

Errors wrap one of two classes: ErrNotLZ11 (bad tag, truncated header, declared size over
the limit) or ErrCorrupt (truncated token stream, back-reference before start of output).

# Examples

Round-trip compress and decompress:

	enc, err := lz11.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lz11.Decompress(enc, nil)
	if err != nil {
		return err
	}
	// dec equals data

Tell foreign data from damaged data:

	out, err := lz11.Decompress(src, nil)
	switch {
	case errors.Is(err, lz11.ErrNotLZ11):
		// pass src through unchanged
	case errors.Is(err, lz11.ErrCorrupt):
		return err
	}

Read back-to-back streams from an archive:

	for len(archive) > 0 {
		out, consumed, err := lz11.DecompressBlock(archive, nil)
		if err != nil {
			return err
		}
		archive = archive[consumed:]
		_ = out
	}

Peek at the declared size without decoding:

	size, headerLen, err := lz11.DecodedSize(src)

Decode textures larger than 8 MiB:

	out, err := lz11.Decompress(src, &lz11.DecompressOptions{MaxDecodedSize: 64 << 20})
*/
package lz11
