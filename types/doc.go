// Package types provides the host-native record types exchanged through
// handles: strings, numeric arrays, error clusters, booleans and
// timestamps.
//
// The variable-length records (strings, arrays) are a fixed header followed
// by a tail whose element count derives from the header. They exist in two
// physical encodings, natural 64-bit layout and packed 32-bit layout, both
// byte-identical to the host's own in-memory representation; all field and
// tail access goes through the internal layout accessors so call sites
// never see which encoding is active.
//
// Bounds in the headers are trusted as written by the host. The indexed
// element accessors do not re-validate them; callers must check indexes
// against ElementCount first.
package types
