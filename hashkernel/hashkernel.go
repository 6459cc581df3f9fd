// Package hashkernel implements content-addressable hash kernels: a
// one-shot 64-bit hash and an incremental streaming variant that
// accepts arbitrary-length chunking.
//
// The underlying algorithm is SeaHash (blainsmith.com/go/seahash),
// used the way a genomics checksum tool holds one seahash.New()
// instance across an entire shard and Reset()/Write()/Sum64()s it per
// record: exactly the Init/Stream/Fold shape this package needs.
// SeaHash is a streaming hash.Hash64 by construction: Write has no
// block-alignment requirement, so the concatenation law holds
// unconditionally, streaming "ab" then "cd" reaches the identical
// internal state that streaming "abcd" would, regardless of where the
// caller chose to split the input.
//
// seahash.New() takes no seed argument, so State.Init folds the seed
// in as the first eight bytes written to a fresh hasher; two States
// started from different seeds diverge from their very first Write.
package hashkernel

import (
	"encoding/binary"
	"hash"

	"blainsmith.com/go/seahash"
)

// Hash computes a one-shot 64-bit hash of data[0:n] under seed. Two
// calls with equal seed and equal byte content always agree,
// regardless of how a caller might otherwise have chunked the input
// via State.
func Hash(data []byte, n int, seed uint64) uint64 {
	s := Init(seed)
	s.Stream(data[:n])
	return s.Fold()
}

// State is the incremental counterpart of Hash. Zero value is not
// usable; construct with Init.
type State struct {
	h hash.Hash64
}

// Init seeds a fresh State, writing seed as the first eight bytes
// consumed by the hasher so distinct seeds diverge immediately:
// hash("", s1) != hash("", s2) for s1 != s2.
func Init(seed uint64) State {
	h := seahash.New()
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], seed)
	h.Write(seedBytes[:])
	return State{h: h}
}

// Stream mixes data into the running state. It may be called any
// number of times with any chunking of the overall byte sequence.
func (s State) Stream(data []byte) {
	s.h.Write(data)
}

// Fold finalizes the state into its 64-bit hash. Fold does not
// consume the state: calling it twice, or calling Stream again
// afterward and folding again, both behave exactly as the
// concatenation law demands.
func (s State) Fold() uint64 {
	return s.h.Sum64()
}

// Equal reports whether a and b currently fold to the same value.
func Equal(a, b State) bool {
	return a.Fold() == b.Fold()
}
