// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

/*
Package tileset unpacks RGB5A4 tileset textures into premultiplied ARGB32.

The source is a sequence of 4x4 pixel tiles, 2 bytes per pixel, laid out left to right
and top to bottom across a 1024 pixel wide surface. Each output pixel is a little-endian
uint32 0xAARRGGBB with color channels premultiplied by alpha (the layout Qt uses for
QImage.Format_ARGB32_Premultiplied).

A source pixel (a, b) uses one of two encodings:

	a&0x80 == 0: 0AAARRRR GGGGBBBB  3-bit alpha, 4-bit color
	a&0x80 != 0: 1RRRRRGG GGGBBBBB  opaque, 5-bit color

Typical use after decompressing a tileset file:

	raw, err := lz11.Decompress(file, nil)
	if err != nil {
		return err
	}
	argb, err := tileset.Unpack(raw)
*/
package tileset

import (
	"encoding/binary"
	"errors"
)

// Tileset geometry.
const (
	// Width is the surface width in pixels.
	Width = 1024
	// TileSize is the tile edge in pixels.
	TileSize = 4
	// TileCount is the number of tiles in a tileset.
	TileCount = 16384
	// Height is the surface height in pixels.
	Height = TileCount * TileSize * TileSize / Width
	// SourceSize is the RGB5A4 input size in bytes (524288).
	SourceSize = TileCount * TileSize * TileSize * 2
	// UnpackedSize is the ARGB32 output size in bytes (1048576).
	UnpackedSize = SourceSize * 2
)

// Sentinel errors.
var (
	// ErrShortInput is returned when the source holds fewer than SourceSize bytes.
	ErrShortInput = errors.New("tileset source shorter than 524288 bytes")
	// ErrShortOutput is returned when the destination holds fewer than UnpackedSize bytes.
	ErrShortOutput = errors.New("tileset destination shorter than 1048576 bytes")
)

// Unpack converts a raw RGB5A4 tileset into a new UnpackedSize-byte ARGB32 buffer.
// Bytes after the first SourceSize are ignored.
func Unpack(src []byte) ([]byte, error) {
	if len(src) < SourceSize {
		return nil, ErrShortInput
	}

	dst := make([]byte, UnpackedSize)
	if err := UnpackInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// UnpackInto is Unpack with caller-managed output memory.
func UnpackInto(dst, src []byte) error {
	if len(src) < SourceSize {
		return ErrShortInput
	}
	if len(dst) < UnpackedSize {
		return ErrShortOutput
	}

	in := 0
	tx, ty := 0, 0
	for range TileCount {
		for y := ty; y < ty+TileSize; y++ {
			for x := tx; x < tx+TileSize; x++ {
				px := PixelARGB(src[in], src[in+1])
				in += 2

				pos := (y*Width + x) * 4
				binary.LittleEndian.PutUint32(dst[pos:pos+4], px)
			}
		}

		tx += TileSize
		if tx >= Width {
			tx = 0
			ty += TileSize
		}
	}

	return nil
}

// PixelARGB converts one RGB5A4 pixel, given as its two source bytes, to premultiplied ARGB32.
func PixelARGB(a, b byte) uint32 {
	if a&0x80 != 0 {
		return 0xFF000000 |
			uint32(a&0x7C)<<17 |
			uint32(a&0x03)<<14 |
			uint32(b&0xE0)<<6 |
			uint32(b&0x1F)<<3
	}

	alpha := uint32(a&0x70) << 1
	px := alpha<<24 |
		uint32(a&0x0F)<<20 |
		uint32(b&0xF0)<<8 |
		uint32(b&0x0F)<<4

	return premultiply(px)
}

// premultiply scales the color channels of px by its alpha with Qt's PREMUL rounding.
func premultiply(px uint32) uint32 {
	al := px >> 24

	t := (px & 0xff00ff) * al
	t = (t + ((t >> 8) & 0xff00ff) + 0x800080) >> 8
	t &= 0xff00ff

	g := ((px >> 8) & 0xff) * al
	g = g + ((g >> 8) & 0xff) + 0x80
	g &= 0xff00

	return g | t | al<<24
}
