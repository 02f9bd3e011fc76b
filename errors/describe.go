package errors

import (
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	"go.uber.org/zap"
)

// DescriptionUnavailable is returned by Describe whenever the manager
// cannot supply a text for the code.
const DescriptionUnavailable = "lvinterop: description not retrievable"

// Describe returns the best-effort human-readable text for a status code.
//
// It asks the manager's error table first, so descriptions cover every
// installed host product. Without a bound manager, or for codes the host
// does not know, it falls back to the library catalog and finally to a
// fixed placeholder. It never fails.
func Describe(code lvinterop.StatusCode) string {
	if text, ok := hostDescription(code); ok {
		return text
	}
	if host, ok := catalog[code]; ok {
		return host.Description
	}
	if kind, ok := KindFromStatus(code); ok {
		return internalDescription(kind)
	}
	return DescriptionUnavailable
}

func internalDescription(kind Kind) string {
	switch kind {
	case KindNoMemoryManager:
		return NoMemoryManager().Detail
	case KindInvalidHandle:
		return InvalidHandle().Detail
	case KindAllocationFailed:
		return AllocationFailed().Detail
	case KindDimensionOutOfRange:
		return "dimension size exceeds the host dimension range"
	case KindDimensionMismatch:
		return "dimension arity does not match the dimension vector"
	case KindInvalidCode:
		return "status is not a convertible error code"
	default:
		return "library internal error"
	}
}

func hostDescription(code lvinterop.StatusCode) (string, bool) {
	mm, ok := lvinterop.Memory()
	if !ok {
		return "", false
	}

	var text lvinterop.HandleValue
	if !mm.ErrorCodeDescription(int32(code), &text) || text == nil {
		return "", false
	}

	// The description arrives as a host string handle that we now own.
	// Decode it inline rather than through the types package to keep this
	// package at the bottom of the import graph.
	inner := *(*unsafe.Pointer)(text)
	result := ""
	if inner != nil {
		size := *(*int32)(inner)
		if size > 0 {
			data := unsafe.Add(inner, unsafe.Sizeof(size))
			result = string(unsafe.Slice((*byte)(data), size))
		}
	}

	if st := mm.DisposeHandle(text); !st.IsSuccess() {
		lvinterop.Logger().Warn("failed to dispose description handle",
			zap.Int32("status", int32(st)))
	}
	return result, inner != nil
}
