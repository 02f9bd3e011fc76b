package memory

import (
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
)

// UHandle is a typed view of a host handle: a pointer to a pointer to the
// data, so the manager can relocate the backing block under resize.
//
// A UHandle does not own the block. Wrap it in Owned when the library is
// responsible for disposal.
type UHandle[T any] struct {
	p **T
}

// HandleFromRaw wraps a handle received by value across the call boundary.
func HandleFromRaw[T any](raw lvinterop.HandleValue) UHandle[T] {
	return UHandle[T]{p: (**T)(raw)}
}

// Raw returns the handle as passed by value to the manager functions.
func (h UHandle[T]) Raw() lvinterop.HandleValue {
	return lvinterop.HandleValue(h.p)
}

// IsNil reports whether the outer pointer is null.
func (h UHandle[T]) IsNil() bool {
	return h.p == nil
}

// Deref returns the data behind the handle. Both levels of indirection must
// be non-null; a non-null handle to a null inner pointer is still invalid.
func (h UHandle[T]) Deref() (*T, error) {
	if h.p == nil || *h.p == nil {
		return nil, lverrors.InvalidHandle()
	}
	return *h.p, nil
}

// MustDeref returns the data behind the handle and panics when either
// indirection is null. Reserved for call sites that have already proven the
// handle valid; the panic marks a caller precondition violation.
func (h UHandle[T]) MustDeref() *T {
	v, err := h.Deref()
	if err != nil {
		panic(err)
	}
	return v
}

// Valid reports whether the handle is safe to dereference.
//
// A valid handle is non-null at both levels and, when the manager is bound,
// recognized by it. Without a bound manager the null checks are the whole
// contract, a documented weaker guarantee for builds without host linkage.
//
// A handle pointing at a garbage address can still crash inside the
// manager's check; validity probing is best-effort, not provenance proof.
func (h UHandle[T]) Valid() bool {
	if h.p == nil || *h.p == nil {
		return false
	}
	mm, ok := lvinterop.Memory()
	if !ok {
		return true
	}
	return mm.CheckHandle(h.Raw()).IsSuccess()
}

// Resize changes the size of the backing block to size bytes.
//
// The handle must be valid: resizing a null handle is a caller error the
// manager rejects. The block may relocate, so pointers obtained from Deref
// before the resize must not be used afterwards.
func (h UHandle[T]) Resize(size uintptr) error {
	mm, ok := lvinterop.Memory()
	if !ok {
		return lverrors.NoMemoryManager()
	}
	return lverrors.Check(mm.SetHandleSize(h.Raw(), size))
}

// CopyInto shallow-copies the block behind h into the handle slot at other.
//
// If the slot holds a null handle the manager allocates a fresh block sized
// to the source and stores the new handle in the slot; the caller must then
// take ownership of it or it leaks. A non-null slot has its block
// overwritten.
//
// The copy duplicates the outer bytes only. If T contains nested handles
// they end up shared between source and destination; restrict CopyInto to
// types free of nested ownership.
func (h UHandle[T]) CopyInto(other *UHandle[T]) error {
	if other == nil {
		return lverrors.InvalidHandle()
	}
	mm, ok := lvinterop.Memory()
	if !ok {
		return lverrors.NoMemoryManager()
	}
	dst := (*lvinterop.HandleValue)(unsafe.Pointer(&other.p))
	return lverrors.Check(mm.CopyHandle(dst, h.Raw()))
}
