package search

import "bytes"

// Find returns the index of the first occurrence of needle in
// haystack, or -1 if absent. An empty needle matches at position 0,
// and a needle longer than haystack never matches.
//
// Identifies a likely-rare byte in the needle (here, simply its last
// byte), uses FindByte to jump between candidate positions, and
// verifies each candidate with a full comparison.
func Find(haystack, needle []byte) int {
	nn, hn := len(needle), len(haystack)
	if nn == 0 {
		return 0
	}
	if hn == 0 || nn > hn {
		return -1
	}
	if nn == 1 {
		return FindByte(haystack, needle[0])
	}

	anchor := needle[nn-1]
	anchorOffset := nn - 1

	searchFrom := 0
	for {
		candidate := FindByte(haystack[searchFrom:], anchor)
		if candidate == -1 {
			return -1
		}
		candidate += searchFrom

		start := candidate - anchorOffset
		if start < 0 {
			searchFrom = candidate + 1
			if searchFrom >= hn {
				return -1
			}
			continue
		}
		if start+nn > hn {
			return -1
		}
		if bytes.Equal(haystack[start:start+nn], needle) {
			return start
		}
		searchFrom = candidate + 1
		if searchFrom >= hn {
			return -1
		}
	}
}

// RFind returns the index of the last occurrence of needle in
// haystack, or -1 if absent. An empty needle matches at the end of the
// haystack.
func RFind(haystack, needle []byte) int {
	nn, hn := len(needle), len(haystack)
	if nn == 0 {
		return hn
	}
	if hn == 0 || nn > hn {
		return -1
	}
	if nn == 1 {
		return RFindByte(haystack, needle[0])
	}

	anchor := needle[0]
	searchEnd := hn

	for {
		candidate := lastByteBefore(haystack, anchor, searchEnd)
		if candidate == -1 {
			return -1
		}
		if candidate+nn <= hn && bytes.Equal(haystack[candidate:candidate+nn], needle) {
			return candidate
		}
		searchEnd = candidate
		if searchEnd == 0 {
			return -1
		}
	}
}

// lastByteBefore returns the index of the last occurrence of b in
// haystack[:limit], or -1.
func lastByteBefore(haystack []byte, b byte, limit int) int {
	return RFindByte(haystack[:limit], b)
}
