package types

import (
	stderrors "errors"
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/internal/layout"
	"github.com/wiresmithtech/labview-interop-go/memory"
	"go.uber.org/zap"
)

// ErrorCluster is the host's error propagation record: a boolean status, a
// status code and a string handle carrying source and description text.
//
// Only the status field is declared; code and source sit at
// encoding-dependent offsets and are reached through the layout accessors.
// The status flag, not the code, governs execution: a cluster with a
// non-zero code but status false is a warning and does not stop work.
type ErrorCluster struct {
	status LVBool
	// code (int32) and source (string handle) follow at ABI offsets
}

func clusterCodeOffset() uintptr {
	return layout.FieldOffset(uintptr(unsafe.Sizeof(LVBool(0))), unsafe.Alignof(int32(0)))
}

func clusterSourceOffset() uintptr {
	return layout.FieldOffset(clusterCodeOffset()+unsafe.Sizeof(int32(0)), unsafe.Alignof(uintptr(0)))
}

// ErrorClusterPtr is the cluster as passed by the host's call convention:
// a single level of indirection.
type ErrorClusterPtr = memory.UPtr[ErrorCluster]

// ClusterFromRaw wraps a cluster pointer received across the call boundary.
func ClusterFromRaw(p unsafe.Pointer) ErrorClusterPtr {
	return memory.NewUPtr((*ErrorCluster)(p))
}

// IsError reports whether the cluster signals an error.
func (c *ErrorCluster) IsError() bool {
	return c.status.Bool()
}

// Code returns the cluster's status code.
func (c *ErrorCluster) Code() lvinterop.StatusCode {
	p := unsafe.Add(unsafe.Pointer(c), clusterCodeOffset())
	return lvinterop.StatusCode(layout.Read[int32](p))
}

// Source returns a handle to the cluster's source string. The slot may
// hold a null handle; writes through it fail with invalid-handle then.
func (c *ErrorCluster) Source() StringHandle {
	slot := unsafe.Add(unsafe.Pointer(c), clusterSourceOffset())
	return StringHandleFromRaw(layout.ReadPointer(slot))
}

// SetError puts the cluster into the error state with the given code and
// text.
func (c *ErrorCluster) SetError(code lvinterop.StatusCode, source, description string) error {
	return c.setState(LVTrue, code, source, description)
}

// SetWarning puts the cluster into the warning state: code and text are
// set, but the status flag stays false so downstream work still runs.
func (c *ErrorCluster) SetWarning(code lvinterop.StatusCode, source, description string) error {
	return c.setState(LVFalse, code, source, description)
}

func (c *ErrorCluster) setState(status LVBool, code lvinterop.StatusCode, source, description string) error {
	c.status = status
	layout.Write(unsafe.Add(unsafe.Pointer(c), clusterCodeOffset()), int32(code))
	return c.Source().SetString(formatErrorSource(source, description))
}

// formatErrorSource joins source and description with the marker the host
// uses to split them for display, degrading gracefully when either half is
// empty.
func formatErrorSource(source, description string) string {
	switch {
	case source == "":
		return "<ERR>\n" + description
	case description == "":
		return source
	default:
		return source + "\n<ERR>\n" + description
	}
}

// WriteError records err into the cluster, choosing error or warning state
// from the error value. Part of the boundary convention: internal failures
// collapse to a populated cluster, never a panic.
func WriteError(cluster ErrorClusterPtr, err error) error {
	c, derr := cluster.Deref()
	if derr != nil {
		return derr
	}
	code, source, description := errorParts(err)
	return c.SetError(code, source, description)
}

// errorParts extracts the cluster fields from an error value. Library and
// catalog errors carry their own code; anything else degrades to the
// host's generic error code.
func errorParts(err error) (code lvinterop.StatusCode, source, description string) {
	code = lverrors.StatusOf(err)
	description = err.Error()
	var lib *lverrors.Error
	if stderrors.As(err, &lib) && lib.Cause != nil {
		source = lib.Cause.Error()
	}
	return code, source, description
}

// WrapResult wraps one unit of work in the host's error propagation
// convention: when the cluster already signals an error the work is
// skipped and onError returned unchanged, keeping the first error sticky.
// Otherwise the work runs; its failure is written into the cluster and
// onError returned in place of a value.
//
// A null cluster pointer is treated as a clear cluster that cannot record
// failures: the work still runs, and any error is reported to the
// diagnostic logger instead.
func WrapResult[R any](cluster ErrorClusterPtr, onError R, work func() (R, error)) R {
	c, derr := cluster.Deref()
	if derr != nil {
		value, err := work()
		if err != nil {
			lvinterop.Logger().Warn("error lost: null error cluster", zap.Error(err))
			return onError
		}
		return value
	}
	if c.IsError() {
		return onError
	}
	value, err := work()
	if err == nil {
		return value
	}
	if werr := WriteError(cluster, err); werr != nil {
		lvinterop.Logger().Warn("failed to write error cluster", zap.Error(werr))
	}
	return onError
}

// WrapStatus is WrapResult for boundary functions that return the status
// code itself: the same skip-on-existing-error rule, surfacing the
// cluster's resulting code rather than a caller-chosen sentinel.
func WrapStatus(cluster ErrorClusterPtr, work func() error) lvinterop.StatusCode {
	c, derr := cluster.Deref()
	if derr != nil {
		return lverrors.StatusOf(work())
	}
	if c.IsError() {
		return c.Code()
	}
	if err := work(); err != nil {
		if werr := WriteError(cluster, err); werr != nil {
			lvinterop.Logger().Warn("failed to write error cluster", zap.Error(werr))
		}
	}
	return c.Code()
}
