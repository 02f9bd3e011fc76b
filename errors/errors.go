package errors

import (
	"fmt"
	"strings"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
)

// Kind categorizes a library-internal error.
type Kind string

const (
	KindMisc                Kind = "misc"
	KindNoMemoryManager     Kind = "no_memory_manager"
	KindInvalidHandle       Kind = "invalid_handle"
	KindAllocationFailed    Kind = "allocation_failed"
	KindDimensionOutOfRange Kind = "dimension_out_of_range"
	KindDimensionMismatch   Kind = "dimension_mismatch"
	KindInvalidCode         Kind = "invalid_code_conversion"

	// KindHost marks a host-originated status carried verbatim because it
	// is outside the known catalog.
	KindHost Kind = "host"
)

// Error is the structured error type used throughout the library.
type Error struct {
	Kind   Kind
	Code   lvinterop.StatusCode
	Detail string
	Cause  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteString("] status ")
	fmt.Fprintf(&b, "%d", int32(e.Code))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Internal errors match on
// Kind so sentinel comparison works across call sites.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an internal error of the given kind with its reserved status
// code already filled in.
func New(kind Kind) *Error {
	return &Error{Kind: kind, Code: kind.Status()}
}

// Newf creates an internal error with a formatted detail message.
func Newf(kind Kind, format string, args ...any) *Error {
	err := New(kind)
	err.Detail = fmt.Sprintf(format, args...)
	return err
}

// Wrap creates an internal error of the given kind caused by err.
func Wrap(kind Kind, err error) *Error {
	wrapped := New(kind)
	wrapped.Cause = err
	return wrapped
}

// InvalidHandle reports a null or unrecognized handle or pointer.
func InvalidHandle() *Error {
	return Newf(KindInvalidHandle, "handle or pointer is null or not recognized")
}

// NoMemoryManager reports that no memory manager table has been bound.
func NoMemoryManager() *Error {
	return Newf(KindNoMemoryManager, "memory manager capability is not available")
}

// AllocationFailed reports that the manager returned a null handle.
func AllocationFailed() *Error {
	return Newf(KindAllocationFailed, "memory manager returned a null handle")
}

// DimensionOutOfRange reports a size that does not fit the host's signed
// 32-bit dimension type.
func DimensionOutOfRange(size uint64) *Error {
	return Newf(KindDimensionOutOfRange, "dimension size %d exceeds the host dimension range", size)
}

// DimensionMismatch reports a size slice whose arity does not match the
// dimension vector exactly.
func DimensionMismatch(want, got int) *Error {
	return Newf(KindDimensionMismatch, "expected %d dimensions, got %d", want, got)
}

// InvalidCode reports a status code that cannot convert to a named error.
func InvalidCode(code lvinterop.StatusCode) *Error {
	return Newf(KindInvalidCode, "status %d is not a convertible error code", int32(code))
}
