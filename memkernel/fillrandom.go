package memkernel

import "encoding/binary"

// FillRandom writes a deterministic pseudo-random byte stream of
// length n into dst, keyed by nonce. The stream for a given (nonce,
// length) pair must be identical across backends; since there is only
// one backend here (no hand-written SIMD), that property holds
// trivially, but the generator itself is pinned below so it never
// changes silently between releases.
//
// The generator is SplitMix64, counter-keyed by nonce: deterministic,
// fast, and has no cross-call state (each call reseeds from scratch).
func FillRandom(dst []byte, n int, nonce uint64) {
	requireLen(dst, n, "FillRandom dst")
	dst = dst[:n]

	state := nonce
	i := 0
	for ; i+8 <= n; i += 8 {
		var word uint64
		state, word = splitmix64(state)
		binary.LittleEndian.PutUint64(dst[i:], word)
	}
	if i < n {
		_, word := splitmix64(state)
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], word)
		copy(dst[i:], tail[:n-i])
	}
}

// splitmix64 advances the generator state and returns the next output word.
func splitmix64(state uint64) (next uint64, output uint64) {
	state += 0x9E3779B97F4A7C15
	z := state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return state, z
}
