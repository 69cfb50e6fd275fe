package lz11

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "three-bytes", data: []byte("abc")},
		{name: "short-text", data: []byte("hello world, lz11 test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "random-64k", data: randomBytes(1, 64<<10)},
		{name: "mixed", data: mixedBytes()},
	}
}

func randomBytes(seed uint64, n int) []byte {
	r := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.Uint32())
	}
	return out
}

// mixedBytes interleaves incompressible noise with runs and repeats longer than
// the window, so matches of every shape and window eviction all happen.
func mixedBytes() []byte {
	var buf bytes.Buffer
	for i := range 8 {
		buf.Write(randomBytes(uint64(i+10), 700))
		buf.Write(bytes.Repeat([]byte{byte(i)}, 300+i*37))
		buf.Write(bytes.Repeat([]byte(fmt.Sprintf("sprite=%03d;", i)), 40))
	}
	return buf.Bytes()
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			enc, err := Compress(in.data, nil)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if enc[0] != Tag {
				t.Fatalf("tag = %#x, want %#x", enc[0], Tag)
			}

			dec, err := Decompress(enc, nil)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(dec, in.data) {
				t.Fatalf("round-trip mismatch: got=%d want=%d", len(dec), len(in.data))
			}

			fromReader, consumed, err := DecompressFromReader(bytes.NewReader(enc), nil)
			if err != nil {
				t.Fatalf("DecompressFromReader failed: %v", err)
			}
			if consumed != int64(len(enc)) {
				t.Fatalf("consumed=%d want=%d", consumed, len(enc))
			}
			if !bytes.Equal(fromReader, in.data) {
				t.Fatalf("reader round-trip mismatch: got=%d want=%d", len(fromReader), len(in.data))
			}
		})
	}
}

func TestCompress_RunOfTwentyBytesIsByteExact(t *testing.T) {
	input := bytes.Repeat([]byte("A"), 20)
	// Three literals, then matches of 3, 6 and 8 bytes: a match never reaches
	// into the position it is encoding, so runs grow by doubling.
	want := []byte{
		0x11, 0x14, 0x00, 0x00,
		0x1C, 'A', 'A', 'A',
		0x20, 0x02,
		0x50, 0x05,
		0x70, 0x07,
	}

	enc, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoded = % x\nwant      % x", enc, want)
	}

	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, input) {
		t.Fatalf("got %q", dec)
	}
}

func TestCompress_EmptyInputUsesExtendedHeader(t *testing.T) {
	enc, err := Compress(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	want := []byte{0x11, 0, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoded = % x, want % x", enc, want)
	}

	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(dec) != 0 {
		t.Fatalf("decoded %d bytes, want 0", len(dec))
	}
}

func TestCompress_LiteralsOnlyLayout(t *testing.T) {
	input := []byte("abcdefghij")
	enc, err := Compress(input, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Two flag blocks: 8 literals, then 2.
	want := append([]byte{0x11, 0x0A, 0x00, 0x00, 0x00}, "abcdefgh"...)
	want = append(want, 0x00, 'i', 'j')
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoded = % x\nwant      % x", enc, want)
	}
}

func TestCompress_DefaultAndExplicitOptionsMatch(t *testing.T) {
	data := mixedBytes()

	cmpNil, err := Compress(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	cmpDefault, err := Compress(data, DefaultCompressOptions())
	if err != nil {
		t.Fatal(err)
	}
	cmpZero, err := Compress(data, &CompressOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(cmpNil, cmpDefault) || !bytes.Equal(cmpNil, cmpZero) {
		t.Fatal("nil, default and zero-value options should produce identical output")
	}
}

func TestCompress_InvalidOptions(t *testing.T) {
	cases := []*CompressOptions{
		{WindowSize: WindowSize + 1},
		{WindowSize: -1},
		{MaxMatchLength: MinMatch - 1},
		{MaxMatchLength: MaxMatch + 1},
	}

	for _, opts := range cases {
		t.Run(fmt.Sprintf("window=%d/max=%d", opts.WindowSize, opts.MaxMatchLength), func(t *testing.T) {
			_, err := Compress([]byte("data"), opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("want ErrInvalidOptions, got %v", err)
			}
		})
	}
}

func TestCompress_CustomWindowAndMaxMatch(t *testing.T) {
	data := mixedBytes()
	opts := &CompressOptions{WindowSize: 256, MaxMatchLength: maxShortLen}

	enc, err := Compress(data, opts)
	if err != nil {
		t.Fatal(err)
	}

	for _, tok := range walkTokens(t, enc) {
		if tok.length > maxShortLen {
			t.Fatalf("match length %d exceeds MaxMatchLength %d", tok.length, maxShortLen)
		}
		if tok.distance > 256 {
			t.Fatalf("match distance %d exceeds WindowSize 256", tok.distance)
		}
	}

	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, data) {
		t.Fatal("round-trip mismatch with custom options")
	}
}

func TestCompress_ShortNibbleNeverBelowTwo(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			enc, err := Compress(in.data, nil)
			if err != nil {
				t.Fatal(err)
			}

			for _, tok := range walkTokens(t, enc) {
				switch {
				case tok.length <= maxShortLen:
					if tok.nibble < 2 {
						t.Fatalf("short match of %d bytes encoded with nibble %d", tok.length, tok.nibble)
					}
				case tok.length <= maxMediumLen:
					if tok.nibble != 0 {
						t.Fatalf("medium match of %d bytes encoded with nibble %d", tok.length, tok.nibble)
					}
				default:
					if tok.nibble != 1 {
						t.Fatalf("long match of %d bytes encoded with nibble %d", tok.length, tok.nibble)
					}
				}
				if tok.distance < 1 || tok.distance > WindowSize {
					t.Fatalf("distance %d outside 1..%d", tok.distance, WindowSize)
				}
			}
		})
	}
}

func TestCompress_ConcurrentCallsAreIndependent(t *testing.T) {
	inputs := testInputSet()
	want := make([][]byte, len(inputs))
	for i, in := range inputs {
		enc, err := Compress(in.data, nil)
		if err != nil {
			t.Fatal(err)
		}
		want[i] = enc
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(inputs)*4)
	for range 4 {
		for i, in := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				enc, err := Compress(in.data, nil)
				if err != nil {
					errs <- err
					return
				}
				if !bytes.Equal(enc, want[i]) {
					errs <- fmt.Errorf("%s: concurrent output differs", in.name)
				}
			}()
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestRoundTrip_MaxDecodedSize(t *testing.T) {
	if testing.Short() {
		t.Skip("8 MiB round trip skipped in short mode")
	}

	data := randomBytes(7, MaxDecodedSize)
	copy(data[1<<20:], bytes.Repeat([]byte("tile"), 4096))

	enc, err := Compress(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decompress(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(dec, data) {
		t.Fatal("8 MiB round-trip mismatch")
	}
}

// walkedToken is one back-reference found by walkTokens.
type walkedToken struct {
	nibble   int
	distance int
	length   int
}

// walkTokens parses a compressed stream independently of the decoder and returns
// its back-references. It fails the test when the token lengths do not add up to
// the declared size.
func walkTokens(t *testing.T, enc []byte) []walkedToken {
	t.Helper()

	size, pos, err := DecodedSize(enc)
	if err != nil {
		t.Fatalf("DecodedSize: %v", err)
	}

	var tokens []walkedToken
	produced := 0
	for produced < size {
		flags := enc[pos]
		pos++
		for bit := 0; bit < FlagBits && produced < size; bit++ {
			if flags&(0x80>>bit) == 0 {
				pos++
				produced++
				continue
			}

			b1 := enc[pos]
			tok := walkedToken{nibble: int(b1 >> 4)}
			switch tok.nibble {
			case 0:
				tok.length = (int(b1&0xF)<<4 | int(enc[pos+1]>>4)) + 17
				tok.distance = (int(enc[pos+1]&0xF)<<8 | int(enc[pos+2])) + 1
				pos += 3
			case 1:
				tok.length = (int(b1&0xF)<<12 | int(enc[pos+1])<<4 | int(enc[pos+2]>>4)) + 273
				tok.distance = (int(enc[pos+2]&0xF)<<8 | int(enc[pos+3])) + 1
				pos += 4
			default:
				tok.length = tok.nibble + 1
				tok.distance = (int(b1&0xF)<<8 | int(enc[pos+1])) + 1
				pos += 2
			}

			tokens = append(tokens, tok)
			produced += tok.length
		}
	}

	if produced != size {
		t.Fatalf("tokens produce %d bytes, header declares %d", produced, size)
	}
	if pos != len(enc) {
		t.Fatalf("token walk ended at %d of %d bytes", pos, len(enc))
	}

	return tokens
}

func FuzzCompressDecompressRoundTrip(f *testing.F) {
	f.Add([]byte(""), uint16(0))
	f.Add([]byte("hello world"), uint16(1))
	f.Add(bytes.Repeat([]byte{0x00}, 1024), uint16(4096))
	f.Add(bytes.Repeat([]byte("abc"), 500), uint16(17))

	f.Fuzz(func(t *testing.T, data []byte, window uint16) {
		if len(data) > 1<<16 {
			data = data[:1<<16]
		}

		opts := &CompressOptions{WindowSize: int(window)%WindowSize + 1}
		enc, err := Compress(data, opts)
		if err != nil {
			t.Fatalf("Compress failed: %v", err)
		}

		dec, err := Decompress(enc, nil)
		if err != nil {
			t.Fatalf("Decompress failed: %v", err)
		}
		if !bytes.Equal(dec, data) {
			t.Fatalf("round-trip mismatch: got=%d want=%d", len(dec), len(data))
		}
	})
}

func FuzzDecompress(f *testing.F) {
	seed, _ := Compress(mixedBytes(), nil)
	f.Add(seed)
	f.Add([]byte{0x11, 0x0A, 0x00, 0x00, 0x40, 'A', 0x80, 0x00})
	f.Add([]byte{0x11, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0x10, 0x01, 0x00, 0x00, 0x00})

	f.Fuzz(func(t *testing.T, src []byte) {
		out, consumed, err := DecompressBlock(src, &DecompressOptions{MaxDecodedSize: 1 << 20})
		if err != nil {
			if !errors.Is(err, ErrNotLZ11) && !errors.Is(err, ErrCorrupt) {
				t.Fatalf("unclassified error: %v", err)
			}
			return
		}

		size, _, err := DecodedSize(src)
		if err != nil {
			t.Fatalf("DecodedSize failed on decodable input: %v", err)
		}
		if len(out) != size {
			t.Fatalf("decoded %d bytes, header declares %d", len(out), size)
		}
		if consumed > len(src) {
			t.Fatalf("consumed %d of %d bytes", consumed, len(src))
		}
	})
}
