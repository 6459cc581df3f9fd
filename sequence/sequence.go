// Package sequence implements array-of-strings kernels: lexicographic
// argsort, a radix-flavored p-gram sort, and set intersection. Every
// kernel iterates a seqview.View rather than a concrete slice type, so
// callers can hand in an Arrow-style tape without copying, and every
// kernel that needs scratch space asks an alloc.Allocator for it.
//
// Intersect's large-input path routes through an Aho-Corasick
// automaton instead of linear alternation, the same "bypass large
// pattern sets into an automaton" strategy used for substring search,
// repurposed here into large-input set-membership testing.
package sequence

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/coregx/ahocorasick"

	"github.com/ashvardanian/stringzilla-go/alloc"
	"github.com/ashvardanian/stringzilla-go/seqview"
	"github.com/ashvardanian/stringzilla-go/status"
)

// ArgSort writes a permutation order such that for all i < j,
// seq.At(order[i]) <= seq.At(order[j]) lexicographically, with a
// shorter string sorting before any string it is a prefix of, the
// same rule bytes.Compare already implements.
func ArgSort(seq seqview.View, a alloc.Allocator) (order []int, code status.Code) {
	n := seq.Count()
	scratch, ok := a.Allocate(n * 8)
	if !ok {
		return nil, status.BadAlloc
	}
	defer a.Free(scratch)

	order = make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return bytes.Compare(seq.At(order[i]), seq.At(order[j])) < 0
	})
	return order, status.Success
}

// pgram packs the first 8 bytes of s into a big-endian uint64, zero
// padding short strings, so that comparing p-grams numerically agrees
// with comparing the corresponding byte prefixes lexicographically.
func pgram(s []byte) uint64 {
	var buf [8]byte
	copy(buf[:], s)
	return binary.BigEndian.Uint64(buf[:])
}

// PgramSort sorts by an 8-byte prefix key (a "p-gram") first, falling
// back to a full lexicographic comparison only when two entries share
// a p-gram, the common case for short keys resolves entirely from
// register-width integer comparisons instead of byte-by-byte slice
// comparisons.
func PgramSort(seq seqview.View, a alloc.Allocator) (order []int, code status.Code) {
	n := seq.Count()
	scratch, ok := a.Allocate(n * 8)
	if !ok {
		return nil, status.BadAlloc
	}
	defer a.Free(scratch)

	keys := make([]uint64, n)
	order = make([]int, n)
	for i := 0; i < n; i++ {
		keys[i] = pgram(seq.At(i))
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		ki, kj := keys[order[i]], keys[order[j]]
		if ki != kj {
			return ki < kj
		}
		return bytes.Compare(seq.At(order[i]), seq.At(order[j])) < 0
	})
	return order, status.Success
}

// automatonThreshold is the smaller-side entry count at and above
// which Intersect routes through an Aho-Corasick automaton instead of
// a sort-merge join.
const automatonThreshold = 64

// Intersect writes every index pair (i, j) with a.At(i) equal to
// b.At(j); the smaller of the two sequences drives scratch sizing.
// Pair order is unspecified. Below automatonThreshold entries in the
// smaller side, a sort-merge join is used; at or above it, the smaller side
// is compiled into an automaton and the larger side is streamed
// through it.
func Intersect(seqA, seqB seqview.View, a alloc.Allocator, seed uint64) (pairs [][2]int, code status.Code) {
	na, nb := seqA.Count(), seqB.Count()
	smaller, larger := seqA, seqB
	smallerCount, largerCount := na, nb
	swapped := false
	if nb < na {
		smaller, larger = seqB, seqA
		smallerCount, largerCount = nb, na
		swapped = true
	}

	scratch, ok := a.Allocate(smallerCount * 8)
	if !ok {
		return nil, status.BadAlloc
	}
	defer a.Free(scratch)

	var found [][2]int
	if smallerCount < automatonThreshold {
		found = intersectMergeJoin(smaller, larger)
	} else {
		found = intersectAutomaton(smaller, larger)
	}

	if !swapped {
		return found, status.Success
	}
	for i := range found {
		found[i][0], found[i][1] = found[i][1], found[i][0]
	}
	return found, status.Success
}

// intersectMergeJoin sorts indices of both sides by value and walks
// them in tandem, the classic sort-merge join, appropriate when
// building an automaton's setup cost would dominate the search itself.
func intersectMergeJoin(smaller, larger seqview.View) [][2]int {
	orderSmall := sortedIndices(smaller)
	orderLarge := sortedIndices(larger)

	var pairs [][2]int
	i, j := 0, 0
	for i < len(orderSmall) && j < len(orderLarge) {
		si, lj := orderSmall[i], orderLarge[j]
		cmp := bytes.Compare(smaller.At(si), larger.At(lj))
		switch {
		case cmp < 0:
			i++
		case cmp > 0:
			j++
		default:
			// Emit every matching pair across the equal-value run on
			// both sides before advancing past it.
			runEndI := i
			for runEndI < len(orderSmall) && bytes.Equal(smaller.At(orderSmall[runEndI]), smaller.At(si)) {
				runEndI++
			}
			runEndJ := j
			for runEndJ < len(orderLarge) && bytes.Equal(larger.At(orderLarge[runEndJ]), larger.At(lj)) {
				runEndJ++
			}
			for x := i; x < runEndI; x++ {
				for y := j; y < runEndJ; y++ {
					pairs = append(pairs, [2]int{orderSmall[x], orderLarge[y]})
				}
			}
			i, j = runEndI, runEndJ
		}
	}
	return pairs
}

func sortedIndices(seq seqview.View) []int {
	n := seq.Count()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return bytes.Compare(seq.At(order[i]), seq.At(order[j])) < 0
	})
	return order
}

// intersectAutomaton compiles every string of smaller into an
// Aho-Corasick automaton and streams larger's entries through it.
// automaton.Find reports whichever pattern match completes first
// during the left-to-right scan, which for a shorter pattern that is
// a prefix of a longer one (both present in smaller) is the shorter
// pattern, not necessarily the one spanning the whole entry. So the
// automaton is used only as a cheap pre-filter here: a nil match means
// no pattern in smaller occurs anywhere in entry, which rules out
// equality without needing a hash lookup; a non-nil match, regardless
// of its span, means entry is worth checking against byValue, the map
// that actually decides equality.
func intersectAutomaton(smaller, larger seqview.View) [][2]int {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < smaller.Count(); i++ {
		builder.AddPattern(smaller.At(i))
	}
	automaton, err := builder.Build()
	if err != nil {
		return intersectMergeJoin(smaller, larger)
	}

	byValue := make(map[string][]int, smaller.Count())
	for i := 0; i < smaller.Count(); i++ {
		key := string(smaller.At(i))
		byValue[key] = append(byValue[key], i)
	}

	var pairs [][2]int
	for j := 0; j < larger.Count(); j++ {
		entry := larger.At(j)
		if len(entry) == 0 {
			continue
		}
		if automaton.Find(entry, 0) == nil {
			continue
		}
		for _, i := range byValue[string(entry)] {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
