//go:build 386 || arm || mips || mipsle

package layout

// Packed reports whether host records use the packed 32-bit encoding.
// On 32-bit targets every record field is packed with no padding.
const Packed = true
