package types

// LVBool is the host's 8-bit boolean.
type LVBool uint8

const (
	LVFalse LVBool = 0
	LVTrue  LVBool = 1
)

// Bool converts to a Go bool. Any non-zero value is true.
func (b LVBool) Bool() bool {
	return b != LVFalse
}

// BoolFrom converts a Go bool to the host representation.
func BoolFrom(v bool) LVBool {
	if v {
		return LVTrue
	}
	return LVFalse
}

// Bool32 is the host's 32-bit boolean, used by a handful of older call
// signatures.
type Bool32 int32

const (
	False32 Bool32 = 0
	True32  Bool32 = 1
)
