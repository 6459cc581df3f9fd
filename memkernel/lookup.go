package memkernel

// Lookup writes dst[i] = table[src[i]] for i in [0, n). This is the
// primitive behind byte-level transliteration (e.g. the case-folding
// fast paths in utf8kit use a variant of this for ASCII lowercasing).
func Lookup(dst []byte, n int, src []byte, table *[256]byte) {
	requireLen(dst, n, "Lookup dst")
	requireLen(src, n, "Lookup src")
	dst = dst[:n]
	src = src[:n]
	for i, b := range src {
		dst[i] = table[b]
	}
}
