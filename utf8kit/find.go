package utf8kit

import "unicode/utf8"

// newlineRunes lists every Unicode line terminator besides \r: the
// ASCII control codes LF, VT, FF, plus NEL, LINE SEPARATOR, and
// PARAGRAPH SEPARATOR. \r is handled separately by FindNewline so it
// can look ahead for a following \n and report the pair as one match.
var newlineRunes = map[rune]bool{
	'\n': true, '\v': true, '\f': true,
	0x0085: true, 0x2028: true, 0x2029: true,
}

// FindNewline locates the first line-ending sequence in text,
// returning its starting byte position and length, or (-1, 0) if
// none is present. CRLF (\r\n) is reported as a single 2-byte match; a
// lone \r or any other line terminator (LF, VT, FF, NEL, LINE
// SEPARATOR, PARAGRAPH SEPARATOR) is reported as its own byte length.
func FindNewline(text []byte) (pos int, matchedLen int) {
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRune(text[i:])
		if r == '\r' {
			if i+1 < len(text) && text[i+1] == '\n' {
				return i, 2
			}
			return i, 1
		}
		if newlineRunes[r] {
			return i, size
		}
		i += size
	}
	return -1, 0
}

// whitespaceRunes lists every codepoint in Unicode's White_Space
// property, matching ICU's u_isspace and Python's str.isspace().
var whitespaceRunes = map[rune]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
	0x0085: true, 0x00A0: true, 0x1680: true,
	0x2000: true, 0x2001: true, 0x2002: true, 0x2003: true, 0x2004: true,
	0x2005: true, 0x2006: true, 0x2007: true, 0x2008: true, 0x2009: true,
	0x200A: true,
	0x2028: true, 0x2029: true, 0x202F: true, 0x205F: true, 0x3000: true,
}

// FindWhitespace locates the first whitespace codepoint in text,
// returning its starting byte position and UTF-8 byte length, or
// (-1, 0) if none is present.
func FindWhitespace(text []byte) (pos int, matchedLen int) {
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRune(text[i:])
		if whitespaceRunes[r] {
			return i, size
		}
		i += size
	}
	return -1, 0
}

// FindNth decodes up to n codepoints from text (or the whole buffer
// if n exceeds the number of codepoints present) and returns the byte
// offset just past the last decoded codepoint along with the count of
// codepoints actually decoded. Passing a very large n (e.g.
// math.MaxInt) decodes the entire buffer and reports its total
// codepoint count.
func FindNth(text []byte, n int) (byteOffset int, count int) {
	i := 0
	for count = 0; count < n && i < len(text); count++ {
		_, size := utf8.DecodeRune(text[i:])
		i += size
	}
	return i, count
}
