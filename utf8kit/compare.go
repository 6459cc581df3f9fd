package utf8kit

import "unicode/utf8"

// maxNeedleRunes bounds the case-insensitive search needle: needles
// whose folded form exceeds this many runes are unsupported.
const maxNeedleRunes = 1024

// CaseInsensitiveFind locates the first region of haystack whose
// case-folded byte sequence equals the case-folded needle. It returns
// the starting byte position in haystack and the number of haystack
// bytes consumed by the match, or (-1, 0) if no match exists, or
// (-1, 0) if needle's folded form exceeds 1024 runes.
//
// The needle is folded once up front; the haystack is then walked
// rune-by-rune, folding each haystack rune on the fly rather than
// materializing a folded copy of the whole haystack.
func CaseInsensitiveFind(haystack, needle []byte) (pos int, matchedLen int) {
	foldedNeedle := foldToRunes(needle, maxNeedleRunes+1)
	if len(foldedNeedle) > maxNeedleRunes {
		return -1, 0
	}
	if len(foldedNeedle) == 0 {
		return 0, 0
	}

	starts := runeStarts(haystack)
	for si, start := range starts {
		end, ok := matchAt(haystack, starts, si, foldedNeedle)
		if ok {
			return start, end - start
		}
	}
	return -1, 0
}

// matchAt attempts to match foldedNeedle starting at haystack rune
// index si, folding haystack runes lazily. It returns the haystack
// byte offset just past the match and whether the match succeeded.
func matchAt(haystack []byte, starts []int, si int, foldedNeedle []rune) (int, bool) {
	needleIdx := 0
	hi := si
	for needleIdx < len(foldedNeedle) {
		if hi >= len(starts) {
			return 0, false
		}
		start := starts[hi]
		var end int
		if hi+1 < len(starts) {
			end = starts[hi+1]
		} else {
			end = len(haystack)
		}
		r, _ := utf8.DecodeRune(haystack[start:end])
		for _, folded := range FoldCodepoint(r) {
			if needleIdx >= len(foldedNeedle) || folded != foldedNeedle[needleIdx] {
				return 0, false
			}
			needleIdx++
		}
		hi++
	}
	endOffset := len(haystack)
	if hi < len(starts) {
		endOffset = starts[hi]
	}
	return endOffset, true
}

// runeStarts returns the byte offset of every codepoint start in s.
func runeStarts(s []byte) []int {
	starts := make([]int, 0, len(s))
	for i := 0; i < len(s); {
		starts = append(starts, i)
		_, size := utf8.DecodeRune(s[i:])
		i += size
	}
	return starts
}

// foldToRunes folds every codepoint of s in order, stopping early
// (returning more than limit entries) once more than limit folded
// runes have been produced, so callers can cheaply detect overflow.
func foldToRunes(s []byte, limit int) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s) && len(out) <= limit; {
		r, size := utf8.DecodeRune(s[i:])
		out = append(out, FoldCodepoint(r)...)
		i += size
	}
	return out
}

// Ordering mirrors a three-way comparison result: negative, zero, or
// positive for less, equal, greater.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// CaseInsensitiveOrder performs a three-way comparison of a and b's
// case-folded codepoint sequences. Both strings are walked through
// parallel folding iterators, each yielding one folded rune at a time
// from a small expansion buffer; the first differing rune determines
// the result, and exhaustion determines less/greater for sequences of
// unequal folded length.
func CaseInsensitiveOrder(a, b []byte) Ordering {
	ai, bi := 0, 0
	var aBuf, bBuf []rune
	for {
		for len(aBuf) == 0 && ai < len(a) {
			r, size := utf8.DecodeRune(a[ai:])
			aBuf = FoldCodepoint(r)
			ai += size
		}
		for len(bBuf) == 0 && bi < len(b) {
			r, size := utf8.DecodeRune(b[bi:])
			bBuf = FoldCodepoint(r)
			bi += size
		}
		switch {
		case len(aBuf) == 0 && len(bBuf) == 0:
			return Equal
		case len(aBuf) == 0:
			return Less
		case len(bBuf) == 0:
			return Greater
		}
		if aBuf[0] != bBuf[0] {
			if aBuf[0] < bBuf[0] {
				return Less
			}
			return Greater
		}
		aBuf = aBuf[1:]
		bBuf = bBuf[1:]
	}
}
