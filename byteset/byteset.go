// Package byteset implements a 256-bit byte set: a set of byte values
// represented as four 64-bit words, queried and updated in O(1).
//
// The layout generalizes a byte-class bitmap that maps each of the 256
// byte values to an equivalence class; here we only need membership, so
// four uint64 words (one bit per byte value) replace a one-byte-per-value
// class array.
package byteset

import "math/bits"

// Set is a 256-bit bitmap over byte values.
type Set struct {
	words [4]uint64
}

// Empty returns a Set containing no bytes.
func Empty() Set {
	return Set{}
}

// All returns a Set containing every byte value 0-255.
func All() Set {
	return Set{words: [4]uint64{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}}
}

// ASCII returns a Set containing every byte value 0-127.
func ASCII() Set {
	var s Set
	s.words[0] = ^uint64(0)
	s.words[1] = ^uint64(0)
	return s
}

// FromBytes returns a Set containing exactly the given byte values.
func FromBytes(bs ...byte) Set {
	var s Set
	for _, b := range bs {
		s.Add(b)
	}
	return s
}

// FromRange returns a Set containing every byte in [lo, hi] inclusive.
func FromRange(lo, hi byte) Set {
	var s Set
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
	return s
}

// Add inserts b into the set.
func (s *Set) Add(b byte) {
	s.words[b>>6] |= 1 << (b & 63)
}

// Remove deletes b from the set.
func (s *Set) Remove(b byte) {
	s.words[b>>6] &^= 1 << (b & 63)
}

// Contains reports whether b is a member of the set.
func (s Set) Contains(b byte) bool {
	return s.words[b>>6]&(1<<(b&63)) != 0
}

// Invert returns the complement of s.
func (s Set) Invert() Set {
	var out Set
	for i := range s.words {
		out.words[i] = ^s.words[i]
	}
	return out
}

// Union returns the set of bytes in s or other.
func (s Set) Union(other Set) Set {
	var out Set
	for i := range s.words {
		out.words[i] = s.words[i] | other.words[i]
	}
	return out
}

// Intersect returns the set of bytes in both s and other.
func (s Set) Intersect(other Set) Set {
	var out Set
	for i := range s.words {
		out.words[i] = s.words[i] & other.words[i]
	}
	return out
}

// Count returns the number of bytes in the set.
func (s Set) Count() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty reports whether the set contains no bytes.
func (s Set) IsEmpty() bool {
	return s.words == [4]uint64{}
}
