//go:build !(386 || arm || mips || mipsle)

package layout

// Packed reports whether host records use the packed 32-bit encoding.
// On 64-bit targets records follow natural C layout.
const Packed = false
