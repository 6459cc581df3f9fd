// Package search implements byte, byte-set, and substring search, each
// in forward (Find*) and reverse (RFind*) directions.
//
// All kernels are pure: identical inputs yield identical outputs, no
// hidden state. Every function returns an index into the haystack, or
// -1 for "not found", a distinguished sentinel value standing in for
// an optional result.
//
// The substring search uses a rare-byte heuristic (jump between
// candidate positions of the needle's last byte, then verify each
// candidate with a full comparison) and the byte search uses SWAR
// zero-byte detection, generalized here to also support reverse
// scanning and arbitrary 256-bit byte sets (byteset.Set) rather than a
// fixed handful of byte classes.
package search
