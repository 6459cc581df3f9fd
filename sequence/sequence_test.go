package sequence

import (
	"sort"
	"strconv"
	"testing"

	"github.com/ashvardanian/stringzilla-go/alloc"
	"github.com/ashvardanian/stringzilla-go/seqview"
	"github.com/ashvardanian/stringzilla-go/status"
)

func strSlice(words ...string) seqview.Slice {
	out := make(seqview.Slice, len(words))
	for i, w := range words {
		out[i] = []byte(w)
	}
	return out
}

func TestArgSortBasic(t *testing.T) {
	seq := strSlice("banana", "apple", "cherry")
	order, code := ArgSort(seq, alloc.System{})
	if code != status.Success {
		t.Fatalf("unexpected code %v", code)
	}
	got := []string{string(seq.At(order[0])), string(seq.At(order[1])), string(seq.At(order[2]))}
	want := []string{"apple", "banana", "cherry"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestArgSortShorterPrefixFirst(t *testing.T) {
	seq := strSlice("ab", "a", "abc")
	order, _ := ArgSort(seq, alloc.System{})
	got := []string{string(seq.At(order[0])), string(seq.At(order[1])), string(seq.At(order[2]))}
	want := []string{"a", "ab", "abc"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestArgSortProperty(t *testing.T) {
	seq := strSlice("zebra", "apple", "mango", "apple", "banana", "aardvark", "")
	order, _ := ArgSort(seq, alloc.System{})
	for i := 0; i+1 < len(order); i++ {
		a, b := seq.At(order[i]), seq.At(order[i+1])
		if string(a) > string(b) {
			t.Fatalf("not sorted at %d: %q > %q", i, a, b)
		}
	}
}

func TestArgSortBadAlloc(t *testing.T) {
	seq := strSlice("a", "b", "c")
	fixed := alloc.NewFixed(make([]byte, 1))
	_, code := ArgSort(seq, fixed)
	if code != status.BadAlloc {
		t.Fatalf("code = %v, want BadAlloc", code)
	}
}

func TestPgramSortMatchesLexicographic(t *testing.T) {
	words := []string{"banana", "apple", "application", "app", "cherry", "ba", "band"}
	seq := strSlice(words...)
	order, code := PgramSort(seq, alloc.System{})
	if code != status.Success {
		t.Fatalf("unexpected code %v", code)
	}

	sorted := append([]string{}, words...)
	sort.Strings(sorted)

	for i, idx := range order {
		if string(seq.At(idx)) != sorted[i] {
			t.Fatalf("position %d: got %q, want %q", i, seq.At(idx), sorted[i])
		}
	}
}

func TestIntersectSmallMergeJoin(t *testing.T) {
	a := strSlice("apple", "banana", "cherry", "date")
	b := strSlice("banana", "date", "fig")

	pairs, code := Intersect(a, b, alloc.System{}, 0)
	if code != status.Success {
		t.Fatalf("unexpected code %v", code)
	}
	if len(pairs) != 2 {
		t.Fatalf("len(pairs) = %d, want 2", len(pairs))
	}
	for _, p := range pairs {
		if string(a.At(p[0])) != string(b.At(p[1])) {
			t.Fatalf("pair (%d,%d) mismatched: %q != %q", p[0], p[1], a.At(p[0]), b.At(p[1]))
		}
	}
}

func TestIntersectLargeAutomatonPath(t *testing.T) {
	var aWords, bWords []string
	for i := 0; i < 100; i++ {
		aWords = append(aWords, randomishWord(i))
	}
	for i := 50; i < 150; i++ {
		bWords = append(bWords, randomishWord(i))
	}
	a := strSlice(aWords...)
	b := strSlice(bWords...)

	pairs, code := Intersect(a, b, alloc.System{}, 0)
	if code != status.Success {
		t.Fatalf("unexpected code %v", code)
	}
	if len(pairs) != 50 {
		t.Fatalf("len(pairs) = %d, want 50", len(pairs))
	}
	for _, p := range pairs {
		if string(a.At(p[0])) != string(b.At(p[1])) {
			t.Fatalf("pair mismatch: %q != %q", a.At(p[0]), b.At(p[1]))
		}
	}
}

func TestIntersectNoOverlap(t *testing.T) {
	a := strSlice("aaa", "bbb")
	b := strSlice("ccc", "ddd")
	pairs, code := Intersect(a, b, alloc.System{}, 0)
	if code != status.Success {
		t.Fatalf("unexpected code %v", code)
	}
	if len(pairs) != 0 {
		t.Fatalf("len(pairs) = %d, want 0", len(pairs))
	}
}

func TestIntersectRejectsPrefixFalsePositive(t *testing.T) {
	// "ab" is a pattern in the set compiled into the automaton; "abc"
	// on the other side must NOT be reported as matching it. Both
	// sides are kept above automatonThreshold so the automaton path
	// is actually exercised: Intersect always builds the automaton
	// from whichever side has no more entries than the other, so
	// with equal-ish counts "a" stays the automaton side.
	var aWords []string
	for i := 0; i < 70; i++ {
		aWords = append(aWords, randomishWord(i))
	}
	aWords = append(aWords, "ab")
	a := strSlice(aWords...)

	bWords := []string{"abc"}
	for i := 0; i < 99; i++ {
		bWords = append(bWords, randomishWord(1000+i))
	}
	b := strSlice(bWords...)

	pairs, _ := Intersect(a, b, alloc.System{}, 0)
	if len(pairs) != 0 {
		t.Fatalf("expected no match, got %v", pairs)
	}
}

func TestIntersectFindsExactMatchDespiteShorterPrefixInSet(t *testing.T) {
	// The automaton side ("a") holds both "ab" and "abc". A naive
	// Start==0/End==len(entry) check on automaton.Find's first
	// reported match would see "ab" complete before "abc" during the
	// scan and wrongly reject the true "abc"=="abc" pair.
	var aWords []string
	for i := 0; i < 68; i++ {
		aWords = append(aWords, randomishWord(i))
	}
	aWords = append(aWords, "ab", "abc")
	a := strSlice(aWords...)

	bWords := []string{"abc"}
	for i := 0; i < 99; i++ {
		bWords = append(bWords, randomishWord(1000+i))
	}
	b := strSlice(bWords...)

	pairs, code := Intersect(a, b, alloc.System{}, 0)
	if code != status.Success {
		t.Fatalf("unexpected code %v", code)
	}
	if len(pairs) != 1 {
		t.Fatalf("len(pairs) = %d, want 1: %v", len(pairs), pairs)
	}
	if string(a.At(pairs[0][0])) != "abc" || string(b.At(pairs[0][1])) != "abc" {
		t.Fatalf("pair = (%q,%q), want (\"abc\",\"abc\")", a.At(pairs[0][0]), b.At(pairs[0][1]))
	}
}

func randomishWord(i int) string {
	return "word-" + strconv.Itoa(i)
}
