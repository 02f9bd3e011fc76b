// Package layout selects between the two physical encodings of host-native
// records.
//
// The host uses natural C layout on 64-bit targets and a fully packed layout
// on 32-bit targets. Packed layout forbids assuming natural alignment of any
// field after the first, so every access on those targets must go through
// the unaligned read/write accessors here.
//
// # Layout Rules
//
//   - 64-bit: fields at naturally aligned offsets, variable-length tails
//     aligned to the element type.
//   - 32-bit: fields at packed offsets with no padding anywhere; tails start
//     immediately after the fixed header.
//
// Call sites never branch on the target width themselves: they ask for
// offsets through DataOffset and access memory through Read/Write, and the
// build-tagged Packed constant does the rest.
//
// This package is internal to the handle type wrappers.
package layout
