// Package memkernel implements byte-granularity memory primitives:
// Copy, Move, Fill, FillRandom, Lookup, and ByteSum. All six are
// infallible by contract; none of them return an error.
//
// Copy, Fill, and ByteSum (and Move's forward copies) are implemented
// twice: a byte-at-a-time serial reference (used directly on small
// inputs and as the correctness oracle in tests) and a word-at-a-time
// backend that processes 8 bytes per step using the same SWAR (SIMD
// Within A Register) technique the search kernels use. The backend is
// chosen by input length (wideThreshold), not by capability.Detect().
// Lookup, FillRandom, and Move's backward copy have a single
// implementation.
package memkernel
