package layout

import "unsafe"

// Read loads a value of type T from p without assuming alignment.
//
// The caller must guarantee p points at least Sizeof(T) readable bytes;
// out-of-bounds access is undefined behavior.
func Read[T any](p unsafe.Pointer) T {
	var v T
	size := int(unsafe.Sizeof(v))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), unsafe.Slice((*byte)(p), size))
	return v
}

// Write stores v at p without assuming alignment.
//
// The caller must guarantee p points at least Sizeof(T) writable bytes.
func Write[T any](p unsafe.Pointer, v T) {
	size := int(unsafe.Sizeof(v))
	copy(unsafe.Slice((*byte)(p), size), unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
}

// ReadPointer loads a pointer-sized value from p without assuming alignment.
// The value stays typed as a pointer for the whole copy so the garbage
// collector keeps seeing it as one.
func ReadPointer(p unsafe.Pointer) unsafe.Pointer {
	var v unsafe.Pointer
	size := int(unsafe.Sizeof(v))
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&v)), size), unsafe.Slice((*byte)(p), size))
	return v
}

// WritePointer stores a pointer-sized value at p without assuming alignment.
func WritePointer(p unsafe.Pointer, v unsafe.Pointer) {
	size := int(unsafe.Sizeof(v))
	copy(unsafe.Slice((*byte)(p), size), unsafe.Slice((*byte)(unsafe.Pointer(&v)), size))
}
