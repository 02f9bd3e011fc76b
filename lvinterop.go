package lvinterop

import "unsafe"

// StatusCode is the numeric status returned by every fallible manager call.
// Zero means success, anything else is a host- or library-defined failure
// code. It carries no arithmetic meaning, only equality.
type StatusCode int32

// StatusSuccess is the only success value.
const StatusSuccess StatusCode = 0

// IsSuccess reports whether the code signals success.
func (c StatusCode) IsSuccess() bool {
	return c == StatusSuccess
}

// HandleValue is a handle as passed by value across the manager boundary.
//
// A handle is a pointer to a pointer: the host keeps the extra indirection so
// it can relocate the backing block on resize. The value here is the outer
// pointer. The manager functions are not generic so typed wrappers live in
// the memory package.
type HandleValue = unsafe.Pointer

// MemoryManager is the host's memory manager function table.
//
// It mirrors the data-space manager entry points of the hosting runtime.
// All calls are internally synchronized by the host; composite sequences
// (check then dereference, for example) are not atomic and must be
// serialized by the caller.
type MemoryManager interface {
	// NewHandle creates a handle to a relocatable block of the given size.
	// Returns nil when allocation fails. The memory is uninitialized.
	NewHandle(size uintptr) HandleValue

	// SetHandleSize changes the size of the block behind the handle.
	// The block may relocate; pointers previously derived from the handle
	// are invalid afterwards.
	SetHandleSize(h HandleValue, size uintptr) StatusCode

	// CopyHandle copies the block behind src into the handle stored at dst.
	// If *dst is nil a fresh handle is allocated and written to *dst.
	// The copy is shallow: nested handles inside the block are aliased.
	CopyHandle(dst *HandleValue, src HandleValue) StatusCode

	// DisposeHandle releases the block and the handle itself.
	DisposeHandle(h HandleValue) StatusCode

	// CheckHandle verifies the handle is known to the memory manager.
	CheckHandle(h HandleValue) StatusCode

	// NumericArrayResize resizes a numeric array handle, accounting for the
	// platform alignment of the element type. typeCode is the manager's
	// numeric type code, totalElems the element count across all
	// dimensions. It does not write the dimension header. If *h is nil a
	// fresh handle is allocated.
	NumericArrayResize(typeCode int32, ndims int32, h *HandleValue, totalElems uintptr) StatusCode

	// ErrorCodeDescription resolves a status code to its catalog text,
	// writing a string handle to *text. Returns false when the code is in
	// none of the installed error tables; *text is left untouched then.
	// The caller owns the returned handle.
	ErrorCodeDescription(code int32, text *HandleValue) bool
}
