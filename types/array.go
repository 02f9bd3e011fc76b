package types

import (
	"sync/atomic"
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/internal/layout"
	"github.com/wiresmithtech/labview-interop-go/memory"
)

// Element is the set of numeric types the manager's array resize routine
// understands.
type Element interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// typeCode returns the manager's numeric type code for T.
func typeCode[T Element]() int32 {
	var z T
	switch any(z).(type) {
	case int8:
		return 0x01
	case int16:
		return 0x02
	case int32:
		return 0x03
	case int64:
		return 0x04
	case uint8:
		return 0x05
	case uint16:
		return 0x06
	case uint32:
		return 0x07
	case uint64:
		return 0x08
	case float32:
		return 0x09
	default:
		return 0x0A
	}
}

const dimFieldSize = unsafe.Sizeof(int32(0))

// Array is a view of a host numeric array handle: a dimension-size header
// of ndims 32-bit fields followed by the elements in row-major order, all
// in one relocatable block.
//
// The dimension count is not stored in the block; it is fixed by the
// diagram type on the host side, so the caller supplies it when wrapping.
type Array[T Element] struct {
	raw   lvinterop.HandleValue
	ndims int
}

// ArrayFromRaw wraps an array handle received by value with its dimension
// count.
func ArrayFromRaw[T Element](raw lvinterop.HandleValue, ndims int) Array[T] {
	return Array[T]{raw: raw, ndims: ndims}
}

// Raw returns the handle as passed to the manager functions.
func (a Array[T]) Raw() lvinterop.HandleValue {
	return a.raw
}

// NDims returns the dimension count of the view.
func (a Array[T]) NDims() int {
	return a.ndims
}

// Valid reports whether the underlying handle is safe to dereference, with
// the same contract as UHandle.Valid.
func (a Array[T]) Valid() bool {
	return memory.HandleFromRaw[int32](a.raw).Valid()
}

// block resolves both levels of indirection to the record base.
func (a Array[T]) block() (unsafe.Pointer, error) {
	if a.raw == nil {
		return nil, lverrors.InvalidHandle()
	}
	inner := *(*unsafe.Pointer)(a.raw)
	if inner == nil {
		return nil, lverrors.InvalidHandle()
	}
	return inner, nil
}

// dataOffset is where the element tail starts for the active encoding.
func (a Array[T]) dataOffset() uintptr {
	var z T
	return layout.DataOffset(uintptr(a.ndims)*dimFieldSize, unsafe.Alignof(z))
}

// Dims reads the dimension sizes from the record header.
func (a Array[T]) Dims() (Dims, error) {
	base, err := a.block()
	if err != nil {
		return nil, err
	}
	dims := make(Dims, a.ndims)
	for i := range dims {
		dims[i] = layout.Read[int32](unsafe.Add(base, uintptr(i)*dimFieldSize))
	}
	return dims, nil
}

// ElementCount returns the total element count across all dimensions.
func (a Array[T]) ElementCount() (int, error) {
	dims, err := a.Dims()
	if err != nil {
		return 0, err
	}
	return dims.ElementCount(), nil
}

// At reads the element at the flat row-major index.
//
// The index is trusted: it must already have been validated against
// ElementCount, out-of-bounds access is undefined behavior.
func (a Array[T]) At(index int) (T, error) {
	var z T
	base, err := a.block()
	if err != nil {
		return z, err
	}
	return layout.Read[T](unsafe.Add(base, a.dataOffset()+uintptr(index)*unsafe.Sizeof(z))), nil
}

// SetAt writes the element at the flat row-major index. Same trusted-index
// contract as At.
func (a Array[T]) SetAt(index int, value T) error {
	base, err := a.block()
	if err != nil {
		return err
	}
	layout.Write(unsafe.Add(base, a.dataOffset()+uintptr(index)*unsafe.Sizeof(value)), value)
	return nil
}

// Element reads the element at the multi-dimensional coordinates, checking
// arity and bounds against the header.
func (a Array[T]) Element(coords ...int) (T, error) {
	var z T
	index, err := a.flatIndex(coords)
	if err != nil {
		return z, err
	}
	return a.At(index)
}

// SetElement writes the element at the multi-dimensional coordinates,
// checking arity and bounds against the header.
func (a Array[T]) SetElement(value T, coords ...int) error {
	index, err := a.flatIndex(coords)
	if err != nil {
		return err
	}
	return a.SetAt(index, value)
}

func (a Array[T]) flatIndex(coords []int) (int, error) {
	dims, err := a.Dims()
	if err != nil {
		return 0, err
	}
	if len(coords) != len(dims) {
		return 0, lverrors.DimensionMismatch(len(dims), len(coords))
	}
	index := 0
	for i, c := range coords {
		if c < 0 || c >= int(dims[i]) {
			return 0, lverrors.Newf(lverrors.KindDimensionOutOfRange,
				"coordinate %d out of range for dimension of size %d", c, dims[i])
		}
		index = index*int(dims[i]) + c
	}
	return index, nil
}

// Resize resizes the array through the manager's numeric array routine,
// which accounts for element alignment, then rewrites the dimension header
// (the manager routine leaves it untouched).
//
// The block may relocate; element slices and pointers taken before the
// resize must not be reused. If the handle is null a fresh one is
// allocated into the view; the caller then owns it.
func (a *Array[T]) Resize(dims Dims) error {
	if len(dims) != a.ndims {
		return lverrors.DimensionMismatch(a.ndims, len(dims))
	}
	mm, ok := lvinterop.Memory()
	if !ok {
		return lverrors.NoMemoryManager()
	}
	st := mm.NumericArrayResize(typeCode[T](), int32(a.ndims), &a.raw, uintptr(dims.ElementCount()))
	if err := lverrors.Check(st); err != nil {
		return err
	}
	base, err := a.block()
	if err != nil {
		return err
	}
	for i, size := range dims {
		layout.Write(unsafe.Add(base, uintptr(i)*dimFieldSize), size)
	}
	return nil
}

// OwnedArray is a host numeric array allocated and released by this
// library.
type OwnedArray[T Element] struct {
	arr      Array[T]
	released atomic.Bool
}

// NewArray allocates an owned array with the given dimension count and all
// dimensions zero. Resize it before writing elements.
func NewArray[T Element](ndims int) (*OwnedArray[T], error) {
	mm, ok := lvinterop.Memory()
	if !ok {
		return nil, lverrors.NoMemoryManager()
	}
	raw := mm.NewHandle(0)
	if raw == nil {
		return nil, lverrors.AllocationFailed()
	}
	arr := Array[T]{raw: raw, ndims: ndims}
	if err := arr.Resize(make(Dims, ndims)); err != nil {
		memory.Dispose(raw)
		return nil, err
	}
	return &OwnedArray[T]{arr: arr}, nil
}

// Array returns a borrowed view of the owned array. The view must not
// outlive the owner.
func (o *OwnedArray[T]) Array() *Array[T] {
	return &o.arr
}

// Release disposes the array block through the manager. Idempotent; dispose
// failures are reported to the diagnostic logger, never returned.
func (o *OwnedArray[T]) Release() {
	if o == nil || !o.released.CompareAndSwap(false, true) {
		return
	}
	memory.Dispose(o.arr.raw)
}
