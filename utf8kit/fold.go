package utf8kit

import "unicode/utf8"

// MaxFoldExpansion is the worst-case ratio between an input byte and
// its case-folded output: Greek composites with dialytika and tonos
// such as U+0390 and U+03B0 expand from 2 source bytes into 3
// codepoints (6 UTF-8 bytes).
// Callers must size CaseFold's destination buffer to at least
// MaxFoldExpansion * len(src).
const MaxFoldExpansion = 3

// FoldCodepoint returns the case-folded form of a single rune as 1 to
// 3 runes, following Unicode CaseFolding.txt's full folding. Folding
// is locale-independent: the same codepoint always folds the same
// way regardless of any runtime locale setting.
func FoldCodepoint(r rune) []rune {
	switch {
	case r <= 0x7F:
		if r >= 'A' && r <= 'Z' {
			return []rune{r + 0x20}
		}
		return []rune{r}

	case r <= 0x7FF:
		return fold2Byte(r)

	case r <= 0xFFFF:
		return fold3Byte(r)

	default:
		return fold4Byte(r)
	}
}

func fold2Byte(r rune) []rune {
	if r == 0x00D7 || r == 0x00F7 { // × and ÷ never fold
		return []rune{r}
	}
	if expansion, ok := twoByteExpansion[r]; ok {
		return expansion
	}
	if mapped, ok := twoByteIrregular[r]; ok {
		return []rune{mapped}
	}
	for _, rg := range twoByteRanges {
		if folded, ok := applyRange(r, rg); ok {
			return []rune{folded}
		}
	}
	return []rune{r}
}

func fold3Byte(r rune) []rune {
	if folded, ok := foldIotaSubscript(r); ok {
		return folded
	}
	if expansion, ok := threeByteExpansion[r]; ok {
		return expansion
	}
	if mapped, ok := threeByteIrregular[r]; ok {
		return []rune{mapped}
	}
	for _, rg := range threeByteRanges {
		if folded, ok := applyRange(r, rg); ok {
			return []rune{folded}
		}
	}
	return []rune{r}
}

func fold4Byte(r rune) []rune {
	if mapped, ok := fourByteIrregular[r]; ok {
		return []rune{mapped}
	}
	for _, rg := range fourByteRanges {
		if folded, ok := applyRange(r, rg); ok {
			return []rune{folded}
		}
	}
	return []rune{r}
}

// foldIotaSubscript handles the Greek iota-subscript family
// U+1F80..U+1FFC. Every codepoint in 0x1F80-0x1F8F, 0x1F90-0x1F9F and
// 0x1FA0-0x1FAF maps to base+(r&7) plus a trailing iota, where base is
// 0x1F00, 0x1F20, 0x1F60 respectively, a uniform pattern in the
// CaseFolding tables, reproduced here as a formula instead of 48
// literal table entries.
func foldIotaSubscript(r rune) ([]rune, bool) {
	switch {
	case r >= 0x1F80 && r <= 0x1F8F:
		return []rune{0x1F00 + (r & 7), 0x03B9}, true
	case r >= 0x1F90 && r <= 0x1F9F:
		return []rune{0x1F20 + (r & 7), 0x03B9}, true
	case r >= 0x1FA0 && r <= 0x1FAF:
		return []rune{0x1F60 + (r & 7), 0x03B9}, true
	case r == 0x1FB2 || r == 0x1FC2 || r == 0x1FF2:
		base := map[rune]rune{0x1FB2: 0x1F70, 0x1FC2: 0x1F74, 0x1FF2: 0x1F7C}[r]
		return []rune{base, 0x03B9}, true
	case r == 0x1FB3 || r == 0x1FBC:
		return []rune{0x03B1, 0x03B9}, true
	case r == 0x1FB4:
		return []rune{0x03AC, 0x03B9}, true
	case r == 0x1FB7:
		return []rune{0x03B1, 0x0342, 0x03B9}, true
	case r == 0x1FC3 || r == 0x1FCC:
		return []rune{0x03B7, 0x03B9}, true
	case r == 0x1FC4:
		return []rune{0x03AE, 0x03B9}, true
	case r == 0x1FC7:
		return []rune{0x03B7, 0x0342, 0x03B9}, true
	case r == 0x1FF3 || r == 0x1FFC:
		return []rune{0x03C9, 0x03B9}, true
	case r == 0x1FF4:
		return []rune{0x03CE, 0x03B9}, true
	}
	return nil, false
}

func applyRange(r rune, rg foldRange) (rune, bool) {
	if r < rg.lo || r > rg.hi {
		return 0, false
	}
	switch rg.parity {
	case parityEven:
		if r&1 != 0 {
			return r, false
		}
	case parityOdd:
		if r&1 == 0 {
			return r, false
		}
	}
	return r + rg.offset, true
}

// CaseFold writes the full Unicode case-folded form of src to dst and
// returns the number of bytes written. dst must have capacity at
// least MaxFoldExpansion*len(src). src must be well-formed UTF-8;
// behavior on invalid input is a best-effort byte-for-byte passthrough
// of the offending byte, not a hard failure.
func CaseFold(src []byte, dst []byte) int {
	n := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			dst[n] = src[i]
			n++
			i++
			continue
		}
		for _, folded := range FoldCodepoint(r) {
			n += utf8.EncodeRune(dst[n:], folded)
		}
		i += size
	}
	return n
}
