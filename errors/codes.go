package errors

import (
	lvinterop "github.com/wiresmithtech/labview-interop-go"
)

// InternalCodeBase is the first code of the contiguous block reserved for
// library-generated errors. The block sits inside the host's user error
// range so it never collides with the official catalogs.
const InternalCodeBase lvinterop.StatusCode = 542000

// Per-kind offsets from InternalCodeBase. The mapping is fixed: codes are
// part of the external contract and must never be renumbered.
var kindCodes = map[Kind]lvinterop.StatusCode{
	KindMisc:                InternalCodeBase + 0,
	KindNoMemoryManager:     InternalCodeBase + 1,
	KindInvalidHandle:       InternalCodeBase + 2,
	KindAllocationFailed:    InternalCodeBase + 3,
	KindDimensionOutOfRange: InternalCodeBase + 4,
	KindDimensionMismatch:   InternalCodeBase + 5,
	KindInvalidCode:         InternalCodeBase + 6,
}

var codeKinds = func() map[lvinterop.StatusCode]Kind {
	m := make(map[lvinterop.StatusCode]Kind, len(kindCodes))
	for k, c := range kindCodes {
		m[c] = k
	}
	return m
}()

// Status returns the reserved status code for the kind. The mapping is
// total and injective for the internal kinds; KindHost has no code of its
// own and maps to the miscellaneous code.
func (k Kind) Status() lvinterop.StatusCode {
	if code, ok := kindCodes[k]; ok {
		return code
	}
	return kindCodes[KindMisc]
}

// KindFromStatus resolves a status code inside the reserved internal range
// back to its kind.
func KindFromStatus(code lvinterop.StatusCode) (Kind, bool) {
	k, ok := codeKinds[code]
	return k, ok
}

// StatusOf collapses any error to a status code for the call boundary.
// Internal and host errors surface their own code; foreign errors map to
// the host's generic error code so the boundary never reports success for
// a failure.
func StatusOf(err error) lvinterop.StatusCode {
	if err == nil {
		return lvinterop.StatusSuccess
	}
	switch e := err.(type) {
	case *Error:
		return e.Code
	case HostError:
		return e.Code
	}
	return BogusError.Code
}

// Check converts a manager status into the richest available error: nil on
// success, the named catalog error when the code is known, and a generic
// KindHost wrap otherwise. It never fails on unrecognized codes.
func Check(code lvinterop.StatusCode) error {
	if code.IsSuccess() {
		return nil
	}
	if host, ok := catalog[code]; ok {
		return host
	}
	return &Error{
		Kind:   KindHost,
		Code:   code,
		Detail: "unrecognized host status",
	}
}

// Generic converts a manager status into a generic KindHost error without
// consulting the catalog. Nil on success.
func Generic(code lvinterop.StatusCode) error {
	if code.IsSuccess() {
		return nil
	}
	return &Error{Kind: KindHost, Code: code}
}
