package memkernel

// Move copies n bytes from src to dst, allowing arbitrary overlap. The
// result must match copying src[0:n] into an intermediate buffer and
// then writing it to dst; this is achieved without an intermediate
// allocation by choosing the copy direction based on the relative
// position of dst and src, exactly as libc's memmove does.
func Move(dst, src []byte, n int) {
	requireLen(dst, n, "Move dst")
	requireLen(src, n, "Move src")
	dst = dst[:n]
	src = src[:n]

	if n == 0 {
		return
	}

	dPtr, sPtr := sliceAddr(dst), sliceAddr(src)
	switch {
	case dPtr == sPtr:
		return // no-op: identical region
	case dPtr < sPtr || dPtr >= sPtr+uintptr(n):
		// dst starts before src, or regions don't overlap: forward copy is safe.
		if n >= wideThreshold {
			copyWide(dst, src)
		} else {
			copySerial(dst, src)
		}
	default:
		// dst overlaps src from behind: copy backward so we never read
		// a byte we've already overwritten.
		copyBackward(dst, src)
	}
}

func copyBackward(dst, src []byte) {
	for i := len(src) - 1; i >= 0; i-- {
		dst[i] = src[i]
	}
}
