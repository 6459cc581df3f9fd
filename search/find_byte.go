package search

import (
	"encoding/binary"
	"math/bits"

	"github.com/ashvardanian/stringzilla-go/capability"
)

// swarThreshold gates the SWAR word-at-a-time backend, mirroring the
// teacher's `len(haystack) >= 32` gate for AVX2 dispatch in
// simd.Memchr.
const swarThreshold = 8

// FindByte returns the index of the first occurrence of needle in
// haystack, or -1 if absent.
func FindByte(haystack []byte, needle byte) int {
	if len(haystack) < swarThreshold || !capability.Detect().Has(capability.Swar64) {
		return findByteSerial(haystack, needle)
	}
	return findByteSWAR(haystack, needle)
}

// RFindByte returns the index of the last occurrence of needle in
// haystack, or -1 if absent.
func RFindByte(haystack []byte, needle byte) int {
	if len(haystack) < swarThreshold || !capability.Detect().Has(capability.Swar64) {
		return rFindByteSerial(haystack, needle)
	}
	return rFindByteSWAR(haystack, needle)
}

func rFindByteSerial(haystack []byte, needle byte) int {
	for i := len(haystack) - 1; i >= 0; i-- {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// rFindByteSWAR scans 8-byte chunks from the end, reusing the same
// broadcast-and-XOR zero-byte detection as the forward scan; the
// position of the last zero byte comes from lastZeroByteIndex.
func rFindByteSWAR(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * 0x0101010101010101
	i := n
	for i >= 8 {
		i -= 8
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		if hasZeroByte(xor) {
			return i + lastZeroByteIndex(xor)
		}
	}
	for j := i - 1; j >= 0; j-- {
		if haystack[j] == needle {
			return j
		}
	}
	return -1
}

// lastZeroByteIndex returns the index of the highest zero byte of v.
// It uses the carry-free zero-byte test, which flags exactly the zero
// bytes: the borrow in hasZeroByte's formula can also flag a 0x01 byte
// sitting above a real zero byte.
func lastZeroByteIndex(v uint64) int {
	const lo7 = 0x7F7F7F7F7F7F7F7F
	z := ^(((v & lo7) + lo7) | v | lo7)
	return 7 - bits.LeadingZeros64(z)/8
}

func findByteSerial(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

// findByteSWAR broadcasts needle into every lane of a uint64 and uses
// the classic Hacker's Delight zero-byte-detection formula.
func findByteSWAR(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := uint64(needle) * 0x0101010101010101
	i := 0
	for ; i+8 <= n; i += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		if hasZeroByte(xor) {
			return i + firstZeroByteIndex(xor)
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

const lo8 = 0x0101010101010101
const hi8 = 0x8080808080808080

func hasZeroByte(v uint64) bool {
	return (v-lo8)&^v&hi8 != 0
}

func firstZeroByteIndex(v uint64) int {
	return bits.TrailingZeros64((v-lo8)&^v&hi8) / 8
}
