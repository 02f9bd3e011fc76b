package memory

import (
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
)

// UPtr is a single-indirection pointer received from the host.
//
// Prefer UHandle where the host offers one: handles support resize and
// liveness checking, plain pointers do not. The host gives no liveness API
// for pointers, so a null check is the whole validity contract here.
type UPtr[T any] struct {
	p *T
}

// NewUPtr wraps a raw pointer.
func NewUPtr[T any](p *T) UPtr[T] {
	return UPtr[T]{p: p}
}

// Deref returns the pointed-to value, or an invalid-handle error when the
// pointer is null.
func (p UPtr[T]) Deref() (*T, error) {
	if p.p == nil {
		return nil, lverrors.InvalidHandle()
	}
	return p.p, nil
}

// MustDeref returns the pointed-to value and panics on null.
//
// Reserved for call sites that have already proven the pointer non-null
// through Deref or IsNil; the panic marks a caller precondition violation,
// not a recoverable condition.
func (p UPtr[T]) MustDeref() *T {
	v, err := p.Deref()
	if err != nil {
		panic(err)
	}
	return v
}

// IsNil reports whether the wrapped pointer is null.
func (p UPtr[T]) IsNil() bool {
	return p.p == nil
}
