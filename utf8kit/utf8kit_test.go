package utf8kit

import (
	"testing"
	"unicode/utf8"
)

func TestValidASCII(t *testing.T) {
	if !Valid([]byte("hello world")) {
		t.Fatal("expected valid")
	}
}

func TestValidMultiByte(t *testing.T) {
	if !Valid([]byte("héllo wörld日本語")) {
		t.Fatal("expected valid")
	}
}

func TestValidRejectsTruncated(t *testing.T) {
	if Valid([]byte{0xC3}) {
		t.Fatal("expected invalid (truncated 2-byte sequence)")
	}
}

func TestValidRejectsOverlong(t *testing.T) {
	if Valid([]byte{0xC0, 0x80}) {
		t.Fatal("expected invalid (overlong encoding)")
	}
}

func TestValidRejectsSurrogate(t *testing.T) {
	if Valid([]byte{0xED, 0xA0, 0x80}) {
		t.Fatal("expected invalid (surrogate codepoint)")
	}
}

func TestValidRejectsAboveMax(t *testing.T) {
	if Valid([]byte{0xF4, 0x90, 0x80, 0x80}) {
		t.Fatal("expected invalid (above U+10FFFF)")
	}
}

func caseFold(s string) string {
	dst := make([]byte, len(s)*MaxFoldExpansion)
	n := CaseFold([]byte(s), dst)
	return string(dst[:n])
}

func TestCaseFoldASCII(t *testing.T) {
	if got := caseFold("HELLO"); got != "hello" {
		t.Fatalf("got %q, want hello", got)
	}
}

func TestCaseFoldEszett(t *testing.T) {
	if got := caseFold("ß"); got != "ss" {
		t.Fatalf("got %q, want ss", got)
	}
}

func TestCaseFoldTurkishCapitalDotI(t *testing.T) {
	got := caseFold("İ")
	want := string([]rune{0x0069, 0x0307})
	if got != want {
		t.Fatalf("got %q (% x), want %q (% x)", got, []byte(got), want, []byte(want))
	}
}

func TestCaseFoldLatinExtendedBIrregular(t *testing.T) {
	got := caseFold("Ⱥ")
	want := string(rune(0x2C65))
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCaseFoldIdempotence(t *testing.T) {
	samples := []string{
		"HELLO", "ß", "İ", "Ⱥ", "ΣΊΓΜΑ", "АБВГД", "Ֆրանսերեն",
		"Straße", "ﬀﬁﬂ", "ᾼ", "ΐ", "ΰ", "mixed CASE 123 !@#",
	}
	for _, s := range samples {
		once := caseFold(s)
		twice := caseFold(once)
		if once != twice {
			t.Fatalf("fold not idempotent for %q: fold=%q fold(fold)=%q", s, once, twice)
		}
	}
}

func TestCaseFoldGreekSigma(t *testing.T) {
	if got := caseFold("Σ"); got != "σ" {
		t.Fatalf("got %q, want σ", got)
	}
	if got := caseFold("ς"); got != "σ" {
		t.Fatalf("got %q, want σ", got)
	}
}

func TestCaseFoldCyrillic(t *testing.T) {
	if got := caseFold("АБВ"); got != "абв" {
		t.Fatalf("got %q, want абв", got)
	}
}

func TestCaseFoldDoesNotExceedDeclaredExpansion(t *testing.T) {
	s := "ΐΰ" // two 3-codepoint expansions
	dst := make([]byte, len(s)*MaxFoldExpansion)
	n := CaseFold([]byte(s), dst)
	if n > len(dst) {
		t.Fatalf("wrote %d bytes, capacity was %d", n, len(dst))
	}
}

func TestFindNewlineCRLF(t *testing.T) {
	pos, n := FindNewline([]byte("abc\r\ndef"))
	if pos != 3 || n != 2 {
		t.Fatalf("got (%d,%d), want (3,2)", pos, n)
	}
}

func TestFindNewlineLoneCR(t *testing.T) {
	pos, n := FindNewline([]byte("abc\rdef"))
	if pos != 3 || n != 1 {
		t.Fatalf("got (%d,%d), want (3,1)", pos, n)
	}
}

func TestFindNewlineNone(t *testing.T) {
	pos, n := FindNewline([]byte("abcdef"))
	if pos != -1 || n != 0 {
		t.Fatalf("got (%d,%d), want (-1,0)", pos, n)
	}
}

func TestFindNewlineAllTerminators(t *testing.T) {
	cases := []struct {
		name string
		r    rune
	}{
		{"LF", 0x000A},
		{"VT", 0x000B},
		{"FF", 0x000C},
		{"CR", 0x000D},
		{"NEL", 0x0085},
		{"LineSeparator", 0x2028},
		{"ParagraphSeparator", 0x2029},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := "a" + string(c.r) + "b"
			pos, n := FindNewline([]byte(s))
			wantLen := utf8.RuneLen(c.r)
			if pos != 1 || n != wantLen {
				t.Fatalf("FindNewline(%q) = (%d,%d), want (1,%d)", s, pos, n, wantLen)
			}
		})
	}
}

func TestFindWhitespace(t *testing.T) {
	pos, n := FindWhitespace([]byte("abc def"))
	if pos != 3 || n != 1 {
		t.Fatalf("got (%d,%d), want (3,1)", pos, n)
	}
}

func TestFindWhitespaceAllCodepoints(t *testing.T) {
	codepoints := []rune{
		0x0009, 0x000A, 0x000B, 0x000C, 0x000D, 0x0020,
		0x0085, 0x00A0, 0x1680,
		0x2000, 0x2001, 0x2002, 0x2003, 0x2004,
		0x2005, 0x2006, 0x2007, 0x2008, 0x2009, 0x200A,
		0x2028, 0x2029, 0x202F, 0x205F, 0x3000,
	}
	if len(codepoints) != 25 {
		t.Fatalf("test table has %d codepoints, want 25", len(codepoints))
	}
	for _, r := range codepoints {
		s := "a" + string(r) + "b"
		pos, n := FindWhitespace([]byte(s))
		wantLen := utf8.RuneLen(r)
		if pos != 1 || n != wantLen {
			t.Fatalf("FindWhitespace(%q) = (%d,%d), want (1,%d)", s, pos, n, wantLen)
		}
	}
}

func TestFindNthAll(t *testing.T) {
	offset, n := FindNth([]byte("αβγ"), 1<<30)
	if n != 3 || offset != len("αβγ") {
		t.Fatalf("got (%d,%d), want (%d,3)", offset, n, len("αβγ"))
	}
}

func TestFindNthPartial(t *testing.T) {
	offset, n := FindNth([]byte("αβγδ"), 2)
	if n != 2 || offset != 4 {
		t.Fatalf("got (%d,%d), want (4,2)", offset, n)
	}
}

func TestCaseInsensitiveFind(t *testing.T) {
	pos, matchedLen := CaseInsensitiveFind([]byte("the STRASSE sign"), []byte("straße"))
	if pos != 4 {
		t.Fatalf("pos = %d, want 4", pos)
	}
	if matchedLen != len("STRASSE") {
		t.Fatalf("matchedLen = %d, want %d", matchedLen, len("STRASSE"))
	}
}

func TestCaseInsensitiveFindNoMatch(t *testing.T) {
	pos, _ := CaseInsensitiveFind([]byte("hello world"), []byte("xyz"))
	if pos != -1 {
		t.Fatalf("pos = %d, want -1", pos)
	}
}

func TestCaseInsensitiveOrder(t *testing.T) {
	cases := []struct {
		a, b string
		want Ordering
	}{
		{"abc", "ABC", Equal},
		{"abc", "abd", Less},
		{"abd", "abc", Greater},
		{"ab", "abc", Less},
		{"abc", "ab", Greater},
		{"STRASSE", "straße", Equal},
	}
	for _, c := range cases {
		got := CaseInsensitiveOrder([]byte(c.a), []byte(c.b))
		if got != c.want {
			t.Fatalf("CaseInsensitiveOrder(%q,%q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestFoldCodepointRoundTripsThroughUTF8(t *testing.T) {
	for r := rune(0); r <= 0x2FFFF; r += 97 {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		if !utf8.ValidRune(r) {
			continue
		}
		folded := FoldCodepoint(r)
		if len(folded) == 0 || len(folded) > 3 {
			t.Fatalf("FoldCodepoint(%#x) returned %d runes", r, len(folded))
		}
		for _, fr := range folded {
			if !utf8.ValidRune(fr) {
				t.Fatalf("FoldCodepoint(%#x) produced invalid rune %#x", r, fr)
			}
		}
	}
}
