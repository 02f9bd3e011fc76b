//go:build !(386 || arm || mips || mipsle)

package types

import "unsafe"

// Data returns the element tail as a typed slice sharing the block.
//
// Only available with the natural 64-bit encoding, where the tail is
// aligned to the element type. The slice is invalidated by any resize.
// For multi-dimensional arrays the slice is the raw row-major storage.
func (a Array[T]) Data() ([]T, error) {
	base, err := a.block()
	if err != nil {
		return nil, err
	}
	count, err := a.ElementCount()
	if err != nil {
		return nil, err
	}
	if count <= 0 {
		return nil, nil
	}
	return unsafe.Slice((*T)(unsafe.Add(base, a.dataOffset())), count), nil
}
