package utf8kit

// foldRange is a contiguous span of codepoints sharing one folding
// rule. parity selects which codepoints in the span the offset
// applies to: parityAll applies unconditionally, parityEven only to
// even runes, parityOdd only to odd runes (the alternating
// uppercase/lowercase layout used across most of Latin Extended-A/B).
type foldRange struct {
	lo, hi rune
	offset rune
	parity int8
}

const (
	parityAll = iota
	parityEven
	parityOdd
)

// twoByteRanges covers every additive-offset and parity-based family
// among the two-byte-encoded codepoints: Cyrillic, Latin-1, Greek,
// Armenian, and the Latin Extended-A/B parity runs.
var twoByteRanges = []foldRange{
	{0x0410, 0x042F, 0x20, parityAll}, // Cyrillic upper
	{0x0400, 0x040F, 0x50, parityAll}, // Cyrillic Ѐ-Џ
	{0x00C0, 0x00DE, 0x20, parityAll}, // Latin-1 upper (× at 0xD7 handled separately)
	{0x0391, 0x03A1, 0x20, parityAll}, // Greek Α-Ρ
	{0x03A3, 0x03AB, 0x20, parityAll}, // Greek Σ-Ϋ
	{0x0531, 0x0556, 0x30, parityAll}, // Armenian
	{0x0388, 0x038A, 0x25, parityAll}, // Greek Έ-Ί
	{0x03FD, 0x03FF, -130, parityAll}, // Greek Ͻ-Ͽ

	{0x0100, 0x012E, 1, parityEven}, // Latin Extended-A
	{0x0132, 0x0136, 1, parityEven},
	{0x0139, 0x0147, 1, parityOdd},
	{0x014A, 0x0176, 1, parityEven},
	{0x0179, 0x017D, 1, parityOdd},
	{0x01CD, 0x01DB, 1, parityOdd}, // Latin Extended-B
	{0x01DE, 0x01EE, 1, parityEven},
	{0x01F8, 0x01FE, 1, parityEven},
	{0x0200, 0x021E, 1, parityEven},
	{0x0222, 0x0232, 1, parityEven},
	{0x0246, 0x024E, 1, parityEven},
	{0x0370, 0x0372, 1, parityEven}, // Greek archaic
	{0x03D8, 0x03EE, 1, parityEven},
	{0x0460, 0x0480, 1, parityEven}, // Cyrillic extended
	{0x048A, 0x04BE, 1, parityEven},
	{0x04C1, 0x04CD, 1, parityOdd},
	{0x04D0, 0x04FE, 1, parityEven},
	{0x0500, 0x052E, 1, parityEven},
}

// twoByteIrregular holds the 2-byte one-to-one folds that don't fit a
// contiguous range: Latin-1 specials, Latin Extended-B African/IPA
// letters, digraphs, and Greek/Cyrillic singletons.
var twoByteIrregular = map[rune]rune{
	0x00B5: 0x03BC, 0x0178: 0x00FF, 0x017F: 0x0073,
	0x0181: 0x0253, 0x0182: 0x0183, 0x0184: 0x0185, 0x0186: 0x0254,
	0x0187: 0x0188, 0x0189: 0x0256, 0x018A: 0x0257, 0x018B: 0x018C,
	0x018E: 0x01DD, 0x018F: 0x0259, 0x0190: 0x025B, 0x0191: 0x0192,
	0x0193: 0x0260, 0x0194: 0x0263, 0x0196: 0x0269, 0x0197: 0x0268,
	0x0198: 0x0199, 0x019C: 0x026F, 0x019D: 0x0272, 0x019F: 0x0275,
	0x01A0: 0x01A1, 0x01A2: 0x01A3, 0x01A4: 0x01A5, 0x01A6: 0x0280,
	0x01A7: 0x01A8, 0x01A9: 0x0283, 0x01AC: 0x01AD, 0x01AE: 0x0288,
	0x01AF: 0x01B0, 0x01B1: 0x028A, 0x01B2: 0x028B, 0x01B3: 0x01B4,
	0x01B5: 0x01B6, 0x01B7: 0x0292, 0x01B8: 0x01B9, 0x01BC: 0x01BD,
	0x01C4: 0x01C6, 0x01C5: 0x01C6, 0x01C7: 0x01C9, 0x01C8: 0x01C9,
	0x01CA: 0x01CC, 0x01CB: 0x01CC, 0x01F1: 0x01F3, 0x01F2: 0x01F3,
	0x01F4: 0x01F5, 0x01F6: 0x0195, 0x01F7: 0x01BF, 0x0220: 0x019E,
	0x023A: 0x2C65, 0x023B: 0x023C, 0x023D: 0x019A, 0x023E: 0x2C66,
	0x0241: 0x0242, 0x0243: 0x0180, 0x0244: 0x0289, 0x0245: 0x028C,
	0x0345: 0x03B9, 0x0376: 0x0377, 0x037F: 0x03F3, 0x0386: 0x03AC,
	0x038C: 0x03CC, 0x038E: 0x03CD, 0x038F: 0x03CE, 0x03C2: 0x03C3,
	0x03CF: 0x03D7, 0x03D0: 0x03B2, 0x03D1: 0x03B8, 0x03D5: 0x03C6,
	0x03D6: 0x03C0, 0x03F0: 0x03BA, 0x03F1: 0x03C1, 0x03F4: 0x03B8,
	0x03F5: 0x03B5, 0x03F7: 0x03F8, 0x03F9: 0x03F2, 0x03FA: 0x03FB,
	0x04C0: 0x04CF,
}

// twoByteExpansion holds the 2-byte one-to-many expansions from
// CaseFolding.txt full folding.
var twoByteExpansion = map[rune][]rune{
	0x00DF: {0x0073, 0x0073},
	0x0130: {0x0069, 0x0307},
	0x0149: {0x02BC, 0x006E},
	0x01F0: {0x006A, 0x030C},
	0x0390: {0x03B9, 0x0308, 0x0301},
	0x03B0: {0x03C5, 0x0308, 0x0301},
	0x0587: {0x0565, 0x0582},
}

// threeByteRanges covers the three-byte-encoded offset and parity
// families: Georgian, Greek Extended -8 offsets, Roman numerals,
// circled letters, Glagolitic, fullwidth ASCII, and the Latin
// Extended Additional / Coptic / Cyrillic Extended-B / Latin
// Extended-D parity runs.
var threeByteRanges = []foldRange{
	{0x10A0, 0x10C5, 0x1C60, parityAll}, // Georgian
	{0x1C90, 0x1CBA, -0xBC0, parityAll}, // Georgian Mtavruli
	{0x1CBD, 0x1CBF, -0xBC0, parityAll},
	{0x13F8, 0x13FD, -8, parityAll}, // Cherokee
	{0xAB70, 0xABBF, -0x97D0, parityAll},
	{0x1F08, 0x1F0F, -8, parityAll}, // Greek Extended
	{0x1F18, 0x1F1D, -8, parityAll},
	{0x1F28, 0x1F2F, -8, parityAll},
	{0x1F38, 0x1F3F, -8, parityAll},
	{0x1F48, 0x1F4D, -8, parityAll},
	{0x1F68, 0x1F6F, -8, parityAll},
	{0x1FC8, 0x1FCB, -86, parityAll},
	{0x2160, 0x216F, 0x10, parityAll}, // Roman numerals
	{0x24B6, 0x24CF, 0x1A, parityAll}, // Circled letters
	{0x2C00, 0x2C2F, 0x30, parityAll}, // Glagolitic
	{0xFF21, 0xFF3A, 0x20, parityAll}, // Fullwidth ASCII

	{0x1E00, 0x1E94, 1, parityEven}, // Latin Extended Additional
	{0x1EA0, 0x1EFE, 1, parityEven},
	{0x2C80, 0x2CE2, 1, parityEven}, // Coptic
	{0xA640, 0xA66C, 1, parityEven}, // Cyrillic Extended-B
	{0xA680, 0xA69A, 1, parityEven},
	{0xA722, 0xA72E, 1, parityEven}, // Latin Extended-D
	{0xA732, 0xA76E, 1, parityEven},
	{0xA77E, 0xA786, 1, parityEven},
	{0xA790, 0xA792, 1, parityEven},
	{0xA796, 0xA7A8, 1, parityEven},
	{0xA7B4, 0xA7C2, 1, parityEven},
}

// threeByteIrregular samples the Cyrillic Extended-C, Letterlike
// Symbols, Greek Extended breathing-mark, and Latin Extended-C/D
// irregular singleton families.
var threeByteIrregular = map[rune]rune{
	0x10C7: 0x2D27, 0x10CD: 0x2D2D,
	0x1C80: 0x0432, 0x1C81: 0x0434, 0x1C82: 0x043E, 0x1C83: 0x0441,
	0x1C84: 0x0442, 0x1C85: 0x0442, 0x1C86: 0x044A, 0x1C87: 0x0463,
	0x1C88: 0xA64B,
	0x1E9B: 0x1E61,
	0x1F59: 0x1F51, 0x1F5B: 0x1F53, 0x1F5D: 0x1F55, 0x1F5F: 0x1F57,
	0x1FB8: 0x1FB0, 0x1FB9: 0x1FB1, 0x1FBA: 0x1F70, 0x1FBB: 0x1F71,
	0x1FBE: 0x03B9,
	0x1FD8: 0x1FD0, 0x1FD9: 0x1FD1, 0x1FDA: 0x1F76, 0x1FDB: 0x1F77,
	0x1FE8: 0x1FE0, 0x1FE9: 0x1FE1, 0x1FEA: 0x1F7A, 0x1FEB: 0x1F7B,
	0x1FEC: 0x1FE5,
	0x1FF8: 0x1F78, 0x1FF9: 0x1F79, 0x1FFA: 0x1F7C, 0x1FFB: 0x1F7D,
	0x2126: 0x03C9, 0x212A: 0x006B, 0x212B: 0x00E5, 0x2132: 0x214E,
	0x2183: 0x2184,
	0x2C60: 0x2C61, 0x2C62: 0x026B, 0x2C63: 0x1D7D, 0x2C64: 0x027D,
	0x2C67: 0x2C68, 0x2C69: 0x2C6A, 0x2C6B: 0x2C6C, 0x2C6D: 0x0251,
	0x2C6E: 0x0271, 0x2C6F: 0x0250, 0x2C70: 0x0252, 0x2C72: 0x2C73,
	0x2C75: 0x2C76, 0x2C7E: 0x023F, 0x2C7F: 0x0240,
}

// threeByteExpansion covers the Latin Extended Additional and
// Alphabetic Presentation Forms ligature expansions; the Greek
// iota-subscript family (U+1F80..U+1FFC) is handled programmatically
// by foldIotaSubscript since it follows a uniform formula in the
// source tables.
var threeByteExpansion = map[rune][]rune{
	0x1E96: {0x0068, 0x0331}, 0x1E97: {0x0074, 0x0308},
	0x1E98: {0x0077, 0x030A}, 0x1E99: {0x0079, 0x030A},
	0x1E9A: {0x0061, 0x02BE}, 0x1E9E: {0x0073, 0x0073},
	0x1F50: {0x03C5, 0x0313},
	0x1F52: {0x03C5, 0x0313, 0x0300}, 0x1F54: {0x03C5, 0x0313, 0x0301},
	0x1F56: {0x03C5, 0x0313, 0x0342},
	0x1FB6: {0x03B1, 0x0342}, 0x1FC6: {0x03B7, 0x0342},
	0x1FD2: {0x03B9, 0x0308, 0x0300}, 0x1FD3: {0x03B9, 0x0308, 0x0301},
	0x1FD6: {0x03B9, 0x0342}, 0x1FD7: {0x03B9, 0x0308, 0x0342},
	0x1FE2: {0x03C5, 0x0308, 0x0300}, 0x1FE3: {0x03C5, 0x0308, 0x0301},
	0x1FE4: {0x03C1, 0x0313}, 0x1FE6: {0x03C5, 0x0342},
	0x1FE7: {0x03C5, 0x0308, 0x0342}, 0x1FF6: {0x03C9, 0x0342},
	0x1FF7: {0x03C9, 0x0342, 0x03B9},
	0xFB00: {0x0066, 0x0066}, 0xFB01: {0x0066, 0x0069},
	0xFB02: {0x0066, 0x006C}, 0xFB03: {0x0066, 0x0066, 0x0069},
	0xFB04: {0x0066, 0x0066, 0x006C}, 0xFB05: {0x0073, 0x0074},
	0xFB06: {0x0073, 0x0074},
	0xFB13: {0x0574, 0x0576}, 0xFB14: {0x0574, 0x0565},
	0xFB15: {0x0574, 0x056B}, 0xFB16: {0x057E, 0x0576},
	0xFB17: {0x0574, 0x056D},
}

// fourByteRanges covers Deseret, Osage, Vithkuqi, Old Hungarian,
// Garay, Warang Citi, Medefaidrin, Beria Erfe, and Adlam, the
// four-byte-encoded supplementary-plane scripts with fold offsets.
var fourByteRanges = []foldRange{
	{0x10400, 0x10427, 0x28, parityAll}, // Deseret
	{0x104B0, 0x104D3, 0x28, parityAll}, // Osage
	{0x10570, 0x1057A, 0x27, parityAll}, // Vithkuqi
	{0x1057C, 0x1058A, 0x27, parityAll},
	{0x1058C, 0x10592, 0x27, parityAll},
	{0x10C80, 0x10CB2, 0x40, parityAll}, // Old Hungarian
	{0x10D50, 0x10D65, 0x20, parityAll}, // Garay
	{0x118A0, 0x118BF, 0x20, parityAll}, // Warang Citi
	{0x16E40, 0x16E5F, 0x20, parityAll}, // Medefaidrin
	{0x16EA0, 0x16EB8, 0x1B, parityAll}, // Beria Erfe
	{0x1E900, 0x1E921, 0x22, parityAll}, // Adlam
}

var fourByteIrregular = map[rune]rune{
	0x10594: 0x105BB,
	0x10595: 0x105BC,
}
