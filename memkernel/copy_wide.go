package memkernel

import "encoding/binary"

// copyWide copies 8 bytes at a time via uint64 loads/stores, falling
// back to byte-at-a-time for the final partial word. This is the
// portable stand-in for a large-streaming-store fast path that kicks
// in once dst crosses several cache lines; Go has no portable
// non-temporal store intrinsic, so the win here is purely fewer loop
// iterations, not cache-bypass.
func copyWide(dst, src []byte) {
	n := len(src)
	i := 0
	for ; i+8 <= n; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], binary.LittleEndian.Uint64(src[i:]))
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
}
