// Package stringzilla provides a high-throughput string-processing
// toolkit for Go: byte- and substring-scale search, UTF-8 validation
// and Unicode case folding, byte-granularity memory primitives,
// content-addressable hashing, and batched string similarity and
// sequence operations.
//
// The most common kernels are exposed here as free functions over
// []byte; the rest (e.g. Lookup, PgramSort, FindNewline) are reached
// through their own packages. The heavier subsystems (search, hashing,
// UTF-8, similarity, sequence ops) all live in their own importable
// packages for callers who only need one slice of the surface.
//
// Basic usage:
//
//	pos := stringzilla.Find([]byte("hello 123 world"), []byte("123"))
//	fmt.Println(pos) // 6
//
//	if stringzilla.Valid([]byte("héllo")) {
//	    folded := stringzilla.CaseFold([]byte("HÉLLO"))
//	    fmt.Println(string(folded)) // "héllo"
//	}
//
//	d, _ := stringzilla.Levenshtein([]byte("kitten"), []byte("sitting"))
//	fmt.Println(d) // 3
//
// Performance characteristics:
//   - Find/RFind jump between occurrences of one needle byte (the last
//     byte for Find, the first for RFind) and verify each candidate
//     with a full comparison; the worst case is
//     O(len(haystack)*len(needle)).
//   - Byte-granularity primitives (Copy, Fill, ByteSum, and Move's
//     forward copies) process 8 bytes per step above a small-input
//     threshold.
//   - ArgSort is a stable comparison sort; PgramSort compares 8-byte
//     integer prefix keys before falling back to a byte comparison;
//     Intersect uses a sort-merge join for small inputs and an
//     Aho-Corasick pre-filter plus a hash lookup for large ones.
//   - The similarity engine never materializes a full DP matrix: three
//     rolling anti-diagonals suffice regardless of input length.
//
// Limitations:
//   - No hand-written SIMD assembly; capability.Detect() selects
//     between a scalar reference and a portable word-at-a-time (SWAR)
//     backend, not real vector instructions.
//   - No Unicode normalization, line-breaking, or grapheme
//     segmentation; case folding only.
//   - No regular-expression matching.
package stringzilla

import (
	"github.com/ashvardanian/stringzilla-go/alloc"
	"github.com/ashvardanian/stringzilla-go/byteset"
	"github.com/ashvardanian/stringzilla-go/hashkernel"
	"github.com/ashvardanian/stringzilla-go/memkernel"
	"github.com/ashvardanian/stringzilla-go/search"
	"github.com/ashvardanian/stringzilla-go/sequence"
	"github.com/ashvardanian/stringzilla-go/seqview"
	"github.com/ashvardanian/stringzilla-go/simil"
	"github.com/ashvardanian/stringzilla-go/status"
	"github.com/ashvardanian/stringzilla-go/utf8kit"
)

// Find returns the byte offset of the first occurrence of needle in
// haystack, or -1 if needle does not occur.
func Find(haystack, needle []byte) int {
	return search.Find(haystack, needle)
}

// RFind returns the byte offset of the last occurrence of needle in
// haystack, or -1 if needle does not occur.
func RFind(haystack, needle []byte) int {
	return search.RFind(haystack, needle)
}

// FindByte returns the offset of the first occurrence of needle in
// haystack, or -1 if absent.
func FindByte(haystack []byte, needle byte) int {
	return search.FindByte(haystack, needle)
}

// RFindByte returns the offset of the last occurrence of needle in
// haystack, or -1 if absent.
func RFindByte(haystack []byte, needle byte) int {
	return search.RFindByte(haystack, needle)
}

// FindByteSet returns the offset of the first byte in haystack that
// belongs to set, or -1 if none does.
func FindByteSet(haystack []byte, set byteset.Set) int {
	return search.FindByteSet(haystack, set)
}

// RFindByteSet returns the offset of the last byte in haystack that
// belongs to set, or -1 if none does.
func RFindByteSet(haystack []byte, set byteset.Set) int {
	return search.RFindByteSet(haystack, set)
}

// Copy writes src[0:n] into dst[0:n]; dst and src must not overlap.
func Copy(dst, src []byte, n int) { memkernel.Copy(dst, src, n) }

// Move copies n bytes from src to dst, tolerating arbitrary overlap.
func Move(dst, src []byte, n int) { memkernel.Move(dst, src, n) }

// Fill writes value to every byte of dst[0:n].
func Fill(dst []byte, n int, value byte) { memkernel.Fill(dst, n, value) }

// FillRandom writes a deterministic pseudo-random stream of n bytes
// into dst, keyed by nonce.
func FillRandom(dst []byte, n int, nonce uint64) { memkernel.FillRandom(dst, n, nonce) }

// ByteSum returns the sum of the byte values in src[0:n].
func ByteSum(src []byte, n int) uint64 { return memkernel.ByteSum(src, n) }

// Hash returns a 64-bit content hash of data[0:n], seeded by seed.
func Hash(data []byte, n int, seed uint64) uint64 {
	return hashkernel.Hash(data, n, seed)
}

// Valid reports whether text is well-formed UTF-8.
func Valid(text []byte) bool { return utf8kit.Valid(text) }

// CaseFold returns the Unicode case-folded form of text.
func CaseFold(text []byte) []byte {
	dst := make([]byte, len(text)*utf8kit.MaxFoldExpansion)
	n := utf8kit.CaseFold(text, dst)
	return dst[:n]
}

// CaseInsensitiveFind locates the first region of haystack that
// case-folds to the same sequence as needle, returning its byte
// offset and length, or (-1, 0) if no match exists.
func CaseInsensitiveFind(haystack, needle []byte) (pos, matchedLen int) {
	return utf8kit.CaseInsensitiveFind(haystack, needle)
}

// Levenshtein returns the edit distance between a and b using the
// system allocator for scratch space.
func Levenshtein(a, b []byte) (int, status.Code) {
	return simil.Levenshtein(a, b, alloc.System{})
}

// ArgSort returns a permutation that sorts seq lexicographically.
func ArgSort(seq seqview.View) ([]int, status.Code) {
	return sequence.ArgSort(seq, alloc.System{})
}

// Intersect returns every index pair (i, j) with a.At(i) equal to
// b.At(j).
func Intersect(a, b seqview.View, seed uint64) ([][2]int, status.Code) {
	return sequence.Intersect(a, b, alloc.System{}, seed)
}
