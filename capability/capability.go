// Package capability implements a dispatch layer: a bitflag capability
// set, populated once from CPU feature detection. The search package's
// FindByte and RFindByte consult it (the Swar64 bit) to pick between
// their serial and SWAR backends; the other kernel packages choose
// their backend by input length alone.
//
// This generalizes a package-level hasAVX2-bool-checked-at-every-call
// dispatch idiom into an explicit bitflag type, an enum-as-bitflags
// set rather than a single capability value.
//
// Every kernel package in this module is pure Go: there are no hand
// written Haswell/Skylake/Ice Lake/NEON/SVE/SVE2 assembly backends.
// Instead "capability" selects between a scalar byte-at-a-time backend
// and a portable word-at-a-time (SWAR) backend, which is provably
// equivalent to the scalar reference for every input (see each
// package's _test.go for the equivalence suite). Real vector backends
// would plug into the same Feature bits without changing any call
// site; see DESIGN.md for why they are out of scope here.
package capability

import (
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// Feature identifies one dispatchable backend tier.
type Feature uint32

const (
	// Serial is always present: the byte-at-a-time reference implementation.
	Serial Feature = 1 << iota
	// Swar64 indicates the 8-byte-at-a-time word trick is safe to use
	// (true on every platform Go supports; named for parity with the
	// spec's hardware tiers rather than a real ISA requirement).
	Swar64
	// AMD64Wide is set on amd64 when AVX2 is available. No kernel reads
	// it; the search kernels use the same 8-byte SWAR stride either way.
	AMD64Wide
	// ARM64Wide is always set on arm64. No kernel reads it; no NEON
	// assembly is invoked and the stride stays at 8 bytes.
	ARM64Wide
)

// Set is a bitmask of available Features.
type Set uint32

// Has reports whether f is present in s.
func (s Set) Has(f Feature) bool {
	return s&Set(f) != 0
}

// String renders the set as a "|"-joined list of feature names, for logs
// and test failure messages.
func (s Set) String() string {
	names := []struct {
		f Feature
		n string
	}{
		{Serial, "serial"},
		{Swar64, "swar64"},
		{AMD64Wide, "amd64wide"},
		{ARM64Wide, "arm64wide"},
	}
	var parts []string
	for _, nf := range names {
		if s.Has(nf.f) {
			parts = append(parts, nf.n)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// detected is populated once at package init: a dispatch table
// initialized once and thereafter read-only.
var detected = detect()

func detect() Set {
	s := Set(Serial) | Set(Swar64)
	if wideAvailable() {
		s |= Set(wideFeature)
	}
	return s
}

// Detect returns the process-wide capability set computed at init time.
func Detect() Set {
	return detected
}

// hasAVX2 is kept as a named value (rather than inlined) so future
// real vector backends have an obvious hook point.
var hasAVX2 = cpu.X86.HasAVX2

// FeatureReport is a human-readable capability snapshot, useful for
// diagnostics and bug reports.
func FeatureReport() string {
	return fmt.Sprintf("capabilities: %s", detected)
}
