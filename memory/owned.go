package memory

import (
	"sync/atomic"
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"go.uber.org/zap"
)

// Owned is a handle the library is responsible for releasing.
//
// At most one Owned claims a given block. The invariant is held by
// construction: NewOwned and NewOwnedUninit allocate fresh blocks, TryClone
// promotes through a defensive copy. Nothing reference-counts at runtime.
type Owned[T any] struct {
	h        UHandle[T]
	released atomic.Bool
}

// NewOwned allocates a block sized to T and copies value into it.
//
// T must be a flat, fixed-size type: the copy is byte-wise. Fails with
// allocation-failed when the manager returns a null handle.
func NewOwned[T any](value *T) (*Owned[T], error) {
	mm, ok := lvinterop.Memory()
	if !ok {
		return nil, lverrors.NoMemoryManager()
	}
	raw := mm.NewHandle(unsafe.Sizeof(*value))
	if raw == nil {
		return nil, lverrors.AllocationFailed()
	}
	h := HandleFromRaw[T](raw)
	// Freshly allocated and null-checked, so the double deref holds.
	**h.p = *value
	return &Owned[T]{h: h}, nil
}

// NewOwnedUninit allocates a zero-size block and hands it to init, which
// must resize and populate it. Used for variable-length records whose final
// size is not known up front.
//
// If init fails the block is disposed before the error is returned, so the
// error path never leaks.
func NewOwnedUninit[T any](init func(UHandle[T]) error) (*Owned[T], error) {
	mm, ok := lvinterop.Memory()
	if !ok {
		return nil, lverrors.NoMemoryManager()
	}
	raw := mm.NewHandle(0)
	if raw == nil {
		return nil, lverrors.AllocationFailed()
	}
	h := HandleFromRaw[T](raw)
	if err := init(h); err != nil {
		Dispose(raw)
		return nil, err
	}
	return &Owned[T]{h: h}, nil
}

// Handle returns a borrowed handle to the owned block.
//
// The handle must not outlive the owner, and only one live handle should be
// in use at a time; Go cannot enforce either, so this is a documented
// caller obligation.
func (o *Owned[T]) Handle() UHandle[T] {
	return o.h
}

// TryClone allocates a new owned block and shallow-copies the contents.
//
// Same nested-handle aliasing hazard as UHandle.CopyInto: restrict to types
// free of nested ownership. May fail with allocation-failed.
func (o *Owned[T]) TryClone() (*Owned[T], error) {
	return NewOwnedUninit(func(h UHandle[T]) error {
		return o.h.CopyInto(&h)
	})
}

// Release disposes the block through the manager. Idempotent.
//
// Release cannot fail: dispose errors are reported to the diagnostic
// logger and swallowed.
func (o *Owned[T]) Release() {
	if o == nil || !o.released.CompareAndSwap(false, true) {
		return
	}
	Dispose(o.h.Raw())
}

// Dispose releases a raw handle, reporting any failure to the diagnostic
// logger. For use on release paths that cannot propagate errors.
func Dispose(raw lvinterop.HandleValue) {
	if raw == nil {
		return
	}
	mm, ok := lvinterop.Memory()
	if !ok {
		lvinterop.Logger().Warn("handle leaked: memory manager unavailable at dispose")
		return
	}
	if st := mm.DisposeHandle(raw); !st.IsSuccess() {
		lvinterop.Logger().Warn("failed to dispose handle",
			zap.Int32("status", int32(st)),
			zap.String("description", lverrors.Describe(st)))
	}
}
