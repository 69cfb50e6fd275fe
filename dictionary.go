// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

// matchDictionary indexes every source position by the byte found there.
// Each bucket holds positions in ascending order; positions older than
// windowStart are dropped from the front of a bucket before it is searched.
type matchDictionary struct {
	buckets [256][]uint32 // positions per leading byte value

	windowSize   int // maximum span of positions kept reachable
	windowStart  int // oldest valid position
	windowLength int // current valid span, <= windowSize

	minMatch int // shortest match reported
	maxMatch int // search stops at this length
}

// init resets the dictionary for a new input, keeping bucket storage.
func (d *matchDictionary) init(windowSize, minMatch, maxMatch int) {
	for i := range d.buckets {
		d.buckets[i] = d.buckets[i][:0]
	}

	d.windowSize = windowSize
	d.windowStart = 0
	d.windowLength = 0
	d.minMatch = minMatch
	d.maxMatch = maxMatch
}

// record adds pos to the bucket of byte b.
func (d *matchDictionary) record(b byte, pos int) {
	d.buckets[b] = append(d.buckets[b], uint32(pos)) // #nosec G115 -- Compress rejects inputs over maxExtendedSize
}

// recordRange records count consecutive positions of data starting at start.
func (d *matchDictionary) recordRange(data []byte, start, count int) {
	for i := start; i < start+count; i++ {
		d.record(data[i], i)
	}
}

// slide advances the validity window by amount bytes. The window first grows up
// to windowSize; after that its start moves forward one for one.
func (d *matchDictionary) slide(amount int) {
	switch {
	case d.windowLength == d.windowSize:
		d.windowStart += amount
	case d.windowLength+amount <= d.windowSize:
		d.windowLength += amount
	default:
		d.windowStart += amount - (d.windowSize - d.windowLength)
		d.windowLength = d.windowSize
	}
}

// evict drops positions older than windowStart from the front of bucket b.
func (d *matchDictionary) evict(b byte) {
	bucket := d.buckets[b]
	n := 0
	for n < len(bucket) && int(bucket[n]) < d.windowStart {
		n++
	}

	if n > 0 {
		d.buckets[b] = bucket[n:]
	}
}

// longestMatch returns the distance and length of the longest earlier occurrence
// of data[pos:], or (0, 0) when none reaches minMatch. Candidates are scanned from
// the most recent one, and only a strictly longer match replaces the best, so ties
// resolve to the smallest distance. A match never reaches into pos itself.
func (d *matchDictionary) longestMatch(data []byte, pos int) (distance, length int) {
	first := data[pos]
	d.evict(first)

	if pos < d.minMatch || len(data)-pos < d.minMatch {
		return 0, 0
	}

	bucket := d.buckets[first]
	for i := len(bucket) - 1; i >= 0; i-- {
		start := int(bucket[i])

		n := 1
		for n < d.maxMatch &&
			n < d.windowLength &&
			start+n < pos &&
			pos+n < len(data) &&
			data[pos+n] == data[start+n] {
			n++
		}

		if n >= d.minMatch && n > length {
			distance = pos - start
			length = n
			if n == d.maxMatch {
				break
			}
		}
	}

	return distance, length
}
