package layout

// AlignUp rounds off up to the next multiple of align. align must be a
// power of two.
func AlignUp(off, align uintptr) uintptr {
	return (off + align - 1) &^ (align - 1)
}

// DataOffset returns the offset of a variable-length tail that follows a
// fixed header of the given size. Natural layout aligns the tail to the
// element alignment; packed layout starts it immediately after the header.
func DataOffset(header, elemAlign uintptr) uintptr {
	if Packed {
		return header
	}
	return AlignUp(header, elemAlign)
}

// FieldOffset returns the offset of a field that follows the given prefix
// size, honoring the active encoding.
func FieldOffset(prefix, fieldAlign uintptr) uintptr {
	if Packed {
		return prefix
	}
	return AlignUp(prefix, fieldAlign)
}
