package search

import (
	"strings"
	"testing"

	"github.com/ashvardanian/stringzilla-go/byteset"
)

// cacheLineOffsets repeats every case at a handful of representative
// alignments so a backend that mishandles partial leading/trailing
// chunks gets caught.
var cacheLineOffsets = []int{0, 1, 3, 7, 8, 31, 63, 64}

func withOffsets(t *testing.T, base string, f func(t *testing.T, haystack []byte)) {
	t.Helper()
	for _, off := range cacheLineOffsets {
		padded := strings.Repeat("z", off) + base
		f(t, []byte(padded))
	}
}

func TestFindByteBasic(t *testing.T) {
	if got := FindByte([]byte(""), 'a'); got != -1 {
		t.Fatalf("empty haystack: got %d want -1", got)
	}
	withOffsets(t, "hello world", func(t *testing.T, haystack []byte) {
		off := len(haystack) - len("hello world")
		if got := FindByte(haystack, 'w'); got != off+6 {
			t.Fatalf("FindByte(%q, 'w') = %d, want %d", haystack, got, off+6)
		}
		if got := FindByte(haystack, 'q'); got != -1 {
			t.Fatalf("FindByte(%q, 'q') = %d, want -1", haystack, got)
		}
	})
}

func TestRFindByteBasic(t *testing.T) {
	if got := RFindByte([]byte(""), 'a'); got != -1 {
		t.Fatalf("empty haystack: got %d want -1", got)
	}
	withOffsets(t, "abcabcabc", func(t *testing.T, haystack []byte) {
		want := len(haystack) - 3
		if got := RFindByte(haystack, 'a'); got != want {
			t.Fatalf("RFindByte(%q, 'a') = %d, want %d", haystack, got, want)
		}
	})
}

func TestFindByteAllPositions(t *testing.T) {
	for n := 0; n < 80; n++ {
		haystack := make([]byte, n)
		for i := range haystack {
			haystack[i] = 'x'
		}
		for pos := 0; pos < n; pos++ {
			haystack[pos] = 'y'
			if got := FindByte(haystack, 'y'); got != pos {
				t.Fatalf("n=%d pos=%d: got %d", n, pos, got)
			}
			if got := RFindByte(haystack, 'y'); got != pos {
				t.Fatalf("rfind n=%d pos=%d: got %d", n, pos, got)
			}
			haystack[pos] = 'x'
		}
	}
}

func TestFindSubstring(t *testing.T) {
	withOffsets(t, "the quick brown fox jumps over the lazy dog", func(t *testing.T, haystack []byte) {
		off := len(haystack) - len("the quick brown fox jumps over the lazy dog")
		if got := Find(haystack, []byte("brown")); got != off+10 {
			t.Fatalf("Find(brown) = %d, want %d", got, off+10)
		}
		if got := Find(haystack, []byte("missing")); got != -1 {
			t.Fatalf("Find(missing) = %d, want -1", got)
		}
	})
}

func TestFindSubstringEmptyNeedle(t *testing.T) {
	if got := Find([]byte("abc"), []byte("")); got != 0 {
		t.Fatalf("Find with empty needle = %d, want 0", got)
	}
	if got := RFind([]byte("abc"), []byte("")); got != 3 {
		t.Fatalf("RFind with empty needle = %d, want 3", got)
	}
}

func TestFindSubstringLongerThanHaystack(t *testing.T) {
	if got := Find([]byte("ab"), []byte("abc")); got != -1 {
		t.Fatalf("Find needle>haystack = %d, want -1", got)
	}
}

func TestRFindSubstring(t *testing.T) {
	haystack := []byte("abcabcabc")
	if got := RFind(haystack, []byte("abc")); got != 6 {
		t.Fatalf("RFind(abc) = %d, want 6", got)
	}
	if got := Find(haystack, []byte("abc")); got != 0 {
		t.Fatalf("Find(abc) = %d, want 0", got)
	}
}

func TestFindSubstringOverlappingCandidates(t *testing.T) {
	// the needle's prefix "aaa" occurs at every offset 0..5 of the
	// haystack, overlapping itself; only offset 5 ends at the 'b'.
	haystack := []byte("aaaaaaaab")
	needle := []byte("aaab")
	if got := Find(haystack, needle); got != 5 {
		t.Fatalf("Find(overlap) = %d, want 5", got)
	}
}

func TestFindByteSet(t *testing.T) {
	vowels := byteset.FromBytes('a', 'e', 'i', 'o', 'u')
	haystack := []byte("xyzqrstui")
	if got := FindByteSet(haystack, vowels); got != 7 {
		t.Fatalf("FindByteSet = %d, want 7", got)
	}
	if got := RFindByteSet(haystack, vowels); got != 8 {
		t.Fatalf("RFindByteSet = %d, want 8", got)
	}
	if got := FindByteSet([]byte("xyz"), vowels); got != -1 {
		t.Fatalf("FindByteSet no-match = %d, want -1", got)
	}
}

func TestFindByteNotSet(t *testing.T) {
	digits := byteset.FromRange('0', '9')
	haystack := []byte("123x45")
	if got := FindByteNotSet(haystack, digits); got != 3 {
		t.Fatalf("FindByteNotSet = %d, want 3", got)
	}
	if got := RFindByteNotSet(haystack, digits); got != 3 {
		t.Fatalf("RFindByteNotSet = %d, want 3", got)
	}
	if got := FindByteNotSet([]byte("123"), digits); got != -1 {
		t.Fatalf("FindByteNotSet all-match = %d, want -1", got)
	}
}
