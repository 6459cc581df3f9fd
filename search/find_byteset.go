package search

import "github.com/ashvardanian/stringzilla-go/byteset"

// FindByteSet returns the index of the first byte in haystack that
// belongs to set, or -1 if no byte does. Generalizes a fixed [256]bool
// membership table into the 256-bit byteset.Set representation.
func FindByteSet(haystack []byte, set byteset.Set) int {
	for i, b := range haystack {
		if set.Contains(b) {
			return i
		}
	}
	return -1
}

// RFindByteSet returns the index of the last byte in haystack that
// belongs to set, or -1 if no byte does.
func RFindByteSet(haystack []byte, set byteset.Set) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if set.Contains(haystack[i]) {
			return i
		}
	}
	return -1
}

// FindByteNotSet returns the index of the first byte in haystack that
// does not belong to set, or -1 if every byte does.
func FindByteNotSet(haystack []byte, set byteset.Set) int {
	for i, b := range haystack {
		if !set.Contains(b) {
			return i
		}
	}
	return -1
}

// RFindByteNotSet returns the index of the last byte in haystack that
// does not belong to set, or -1 if every byte does.
func RFindByteNotSet(haystack []byte, set byteset.Set) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if !set.Contains(haystack[i]) {
			return i
		}
	}
	return -1
}
