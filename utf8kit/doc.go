// Package utf8kit implements UTF-8 validation and Unicode case folding
// kernels: well-formedness checking, newline/whitespace/Nth-codepoint
// scanning, full case folding per Unicode CaseFolding.txt, and
// case-insensitive find/order.
//
// Folding is locale-independent per Unicode 17.0: the Turkish
// dotted/dotless-I distinction is deliberately NOT special-cased, so
// folding produces identical output regardless of runtime locale.
//
// Decoding and encoding individual runes uses the standard library's
// unicode/utf8 package; no third-party UTF-8 library fits this
// concern better, so there is no ecosystem alternative to reach for
// here.
package utf8kit
