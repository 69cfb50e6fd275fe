// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz11

package lz11

import "sync"

// maxPooledBucket keeps one huge input from pinning its bucket storage in the pool.
const maxPooledBucket = 1 << 16

// matchDictionaryPool recycles bucket storage between Compress calls.
var matchDictionaryPool = sync.Pool{
	New: func() any {
		return &matchDictionary{}
	},
}

// acquireMatchDictionary returns a dictionary initialized for one input.
func acquireMatchDictionary(windowSize, minMatch, maxMatch int) *matchDictionary {
	dict := matchDictionaryPool.Get().(*matchDictionary)
	dict.init(windowSize, minMatch, maxMatch)
	return dict
}

// releaseMatchDictionary returns dict to the pool.
func releaseMatchDictionary(dict *matchDictionary) {
	if dict == nil {
		return
	}

	for i := range dict.buckets {
		if cap(dict.buckets[i]) > maxPooledBucket {
			dict.buckets[i] = nil
		}
	}
	matchDictionaryPool.Put(dict)
}
