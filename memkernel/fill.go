package memkernel

import "encoding/binary"

// Fill writes value to dst[0:n].
func Fill(dst []byte, n int, value byte) {
	requireLen(dst, n, "Fill dst")
	dst = dst[:n]
	if n >= wideThreshold {
		fillWide(dst, value)
		return
	}
	for i := range dst {
		dst[i] = value
	}
}

// fillWide broadcasts value into every byte of a uint64 and stores 8
// bytes per step, the SWAR analogue of a masked vector store.
func fillWide(dst []byte, value byte) {
	word := uint64(value) * 0x0101010101010101
	n := len(dst)
	i := 0
	for ; i+8 <= n; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], word)
	}
	for ; i < n; i++ {
		dst[i] = value
	}
}
