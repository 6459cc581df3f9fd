package simil

import (
	"unicode/utf8"

	"github.com/ashvardanian/stringzilla-go/alloc"
	"github.com/ashvardanian/stringzilla-go/status"
)

// scratchBytes estimates the rolling-buffer footprint of a distance
// computation over two strings of the given lengths, for sizing the
// allocator request that guards against allocation failure.
func scratchBytes(a, b int) int {
	shorter := a
	if b < shorter {
		shorter = b
	}
	const intSize = 8
	return 3 * (shorter + 1) * intSize
}

// Levenshtein computes the edit distance between a and b: the minimum
// number of single-byte insertions, deletions, or substitutions needed
// to turn one into the other.
func Levenshtein(a, b []byte, al alloc.Allocator) (int, status.Code) {
	scratch, ok := al.Allocate(scratchBytes(len(a), len(b)))
	if !ok {
		return 0, status.BadAlloc
	}
	defer al.Free(scratch)
	return globalDistance(a, b, 1, UniformCost()), status.Success
}

// NeedlemanWunsch computes the global-alignment distance between a and
// b under a caller-supplied gap cost and substitution cost function.
func NeedlemanWunsch(a, b []byte, gapCost int, cost CostFunc, al alloc.Allocator) (int, status.Code) {
	scratch, ok := al.Allocate(scratchBytes(len(a), len(b)))
	if !ok {
		return 0, status.BadAlloc
	}
	defer al.Free(scratch)
	return globalDistance(a, b, gapCost, cost), status.Success
}

// SmithWaterman computes the best local-alignment score between a and
// b: the highest-scoring contiguous subsequence pair under the given
// gap cost and substitution cost function, clamped at zero.
func SmithWaterman(a, b []byte, gapCost int, cost CostFunc, al alloc.Allocator) (int, status.Code) {
	scratch, ok := al.Allocate(scratchBytes(len(a), len(b)))
	if !ok {
		return 0, status.BadAlloc
	}
	defer al.Free(scratch)
	return localScore(a, b, gapCost, cost), status.Success
}

// LevenshteinUTF8 computes Levenshtein distance over Unicode
// codepoints rather than bytes. Pure-ASCII inputs (the common case)
// are routed straight to the byte-level distance; anything else is
// decoded to a rune buffer first, since a single codepoint can span
// multiple bytes and must count as one edit unit.
func LevenshteinUTF8(a, b []byte, al alloc.Allocator) (int, status.Code) {
	if isASCII(a) && isASCII(b) {
		return Levenshtein(a, b, al)
	}
	ra, rb := decodeRunes(a), decodeRunes(b)
	return runeLevenshtein(ra, rb, al)
}

func isASCII(s []byte) bool {
	for _, b := range s {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func decodeRunes(s []byte) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRune(s[i:])
		out = append(out, r)
		i += size
	}
	return out
}

// runeLevenshtein mirrors Levenshtein's DP core but over int32-width
// codepoints instead of bytes, matching the "character
// type: raw byte or 32-bit rune" parameterization.
func runeLevenshtein(a, b []rune, al alloc.Allocator) (int, status.Code) {
	shorter, longer := a, b
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	scratch, ok := al.Allocate(scratchBytes(len(shorter), len(longer)))
	if !ok {
		return 0, status.BadAlloc
	}
	defer al.Free(scratch)

	m, n := len(shorter), len(longer)
	prev := make([]int, n+1)
	cur := make([]int, n+1)
	for j := 0; j <= n; j++ {
		prev[j] = j
	}
	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if shorter[i-1] == longer[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j-1]+cost, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}
	return prev[n], status.Success
}
