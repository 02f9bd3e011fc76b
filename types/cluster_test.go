package types

import (
	stderrors "errors"
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/internal/layout"
)

// newTestCluster builds a cluster record the way the host lays it out, with
// a live string handle in the source slot.
func newTestCluster(t *testing.T) ErrorClusterPtr {
	t.Helper()

	size := clusterSourceOffset() + unsafe.Sizeof(uintptr(0))
	words := make([]uint64, (size+7)/8)
	base := unsafe.Pointer(&words[0])

	source, err := EmptyString()
	require.NoError(t, err)
	layout.WritePointer(unsafe.Add(base, clusterSourceOffset()), source.Handle().Raw())

	t.Cleanup(func() {
		runtime.KeepAlive(words)
		source.Release()
	})
	return ClusterFromRaw(base)
}

func TestCluster_SetErrorAndRead(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	c := cluster.MustDeref()

	assert.False(t, c.IsError())
	assert.Equal(t, lvinterop.StatusSuccess, c.Code())

	require.NoError(t, c.SetError(lverrors.NetworkTimeout.Code, "Reader.vi", "took too long"))
	assert.True(t, c.IsError())
	assert.Equal(t, lverrors.NetworkTimeout.Code, c.Code())

	text, err := c.Source().String()
	require.NoError(t, err)
	assert.Equal(t, "Reader.vi\n<ERR>\ntook too long", text)
}

func TestCluster_SetWarningKeepsStatusClear(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	c := cluster.MustDeref()

	require.NoError(t, c.SetWarning(42, "", "heads up"))
	assert.False(t, c.IsError())
	assert.Equal(t, lvinterop.StatusCode(42), c.Code())

	text, err := c.Source().String()
	require.NoError(t, err)
	assert.Equal(t, "<ERR>\nheads up", text)
}

func TestFormatErrorSource(t *testing.T) {
	assert.Equal(t, "src\n<ERR>\ndesc", formatErrorSource("src", "desc"))
	assert.Equal(t, "<ERR>\ndesc", formatErrorSource("", "desc"))
	assert.Equal(t, "src", formatErrorSource("src", ""))
}

func TestWriteError_LibraryErrorCarriesCause(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	cause := stderrors.New("socket reset")
	err := lverrors.Wrap(lverrors.KindInvalidHandle, cause)

	require.NoError(t, WriteError(cluster, err))

	c := cluster.MustDeref()
	assert.True(t, c.IsError())
	assert.Equal(t, lverrors.KindInvalidHandle.Status(), c.Code())

	text, terr := c.Source().String()
	require.NoError(t, terr)
	assert.Contains(t, text, "socket reset\n<ERR>\n")
	assert.Contains(t, text, "invalid_handle")
}

func TestWrapResult_SkipsWorkOnExistingError(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	require.NoError(t, cluster.MustDeref().SetError(lverrors.ArgError.Code, "caller", "bad input"))

	calls := 0
	got := WrapResult(cluster, -1, func() (int, error) {
		calls++
		return 7, nil
	})
	assert.Equal(t, -1, got)
	assert.Equal(t, 0, calls)
	// First error stays in place.
	assert.Equal(t, lverrors.ArgError.Code, cluster.MustDeref().Code())
}

func TestWrapResult_Success(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	got := WrapResult(cluster, -1, func() (int, error) {
		return 7, nil
	})
	assert.Equal(t, 7, got)
	assert.False(t, cluster.MustDeref().IsError())
}

func TestWrapResult_FailureWritesCluster(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	got := WrapResult(cluster, -1, func() (int, error) {
		return 0, lverrors.InvalidHandle()
	})
	assert.Equal(t, -1, got)

	c := cluster.MustDeref()
	assert.True(t, c.IsError())
	assert.Equal(t, lverrors.KindInvalidHandle.Status(), c.Code())
}

func TestWrapResult_NullClusterStillRunsWork(t *testing.T) {
	mgr.Reset()

	var cluster ErrorClusterPtr
	calls := 0
	got := WrapResult(cluster, -1, func() (int, error) {
		calls++
		return 7, nil
	})
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, calls)

	got = WrapResult(cluster, -1, func() (int, error) {
		return 0, lverrors.InvalidHandle()
	})
	assert.Equal(t, -1, got)
}

func TestWrapStatus(t *testing.T) {
	mgr.Reset()

	cluster := newTestCluster(t)
	st := WrapStatus(cluster, func() error { return nil })
	assert.Equal(t, lvinterop.StatusSuccess, st)

	st = WrapStatus(cluster, func() error { return lverrors.AllocationFailed() })
	assert.Equal(t, lverrors.KindAllocationFailed.Status(), st)

	// Sticky: the next unit of work is skipped and the first code returned.
	calls := 0
	st = WrapStatus(cluster, func() error {
		calls++
		return nil
	})
	assert.Equal(t, lverrors.KindAllocationFailed.Status(), st)
	assert.Equal(t, 0, calls)
}

func TestWrapStatus_NullCluster(t *testing.T) {
	var cluster ErrorClusterPtr
	st := WrapStatus(cluster, func() error { return lverrors.InvalidHandle() })
	assert.Equal(t, lverrors.KindInvalidHandle.Status(), st)
}
