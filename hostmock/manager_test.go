package hostmock

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/internal/layout"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func deref(h lvinterop.HandleValue) unsafe.Pointer {
	return *(*unsafe.Pointer)(h)
}

func TestHandleLifecycle(t *testing.T) {
	m := New()

	h := m.NewHandle(8)
	require.NotNil(t, h)
	require.NotNil(t, deref(h))
	assert.True(t, m.CheckHandle(h).IsSuccess())

	layout.Write(deref(h), uint64(0x1122334455667788))

	require.True(t, m.SetHandleSize(h, 64).IsSuccess())
	assert.Equal(t, uint64(0x1122334455667788), layout.Read[uint64](deref(h)))

	require.True(t, m.DisposeHandle(h).IsSuccess())
	assert.Nil(t, deref(h), "dispose should null the inner pointer")
	assert.Equal(t, lverrors.ZoneError.Code, m.CheckHandle(h))
	assert.Equal(t, lverrors.ZoneError.Code, m.DisposeHandle(h))

	stats := m.Stats()
	assert.Equal(t, 1, stats.Allocs)
	assert.Equal(t, 1, stats.Resizes)
	assert.Equal(t, 1, stats.Disposes)
	assert.Equal(t, 0, stats.Live)
}

func TestResizeRelocates(t *testing.T) {
	m := New()
	h := m.NewHandle(16)
	before := deref(h)

	require.True(t, m.SetHandleSize(h, 16).IsSuccess())
	assert.NotEqual(t, before, deref(h), "resize should always move the block")

	require.True(t, m.DisposeHandle(h).IsSuccess())
}

func TestCopyHandle(t *testing.T) {
	m := New()

	src := m.NewHandle(8)
	layout.Write(deref(src), uint64(42))

	// Null destination slot allocates.
	var dst lvinterop.HandleValue
	require.True(t, m.CopyHandle(&dst, src).IsSuccess())
	require.NotNil(t, dst)
	assert.Equal(t, uint64(42), layout.Read[uint64](deref(dst)))

	// Existing destination of a different size is grown to match.
	small := m.NewHandle(2)
	require.True(t, m.CopyHandle(&small, src).IsSuccess())
	assert.Equal(t, uint64(42), layout.Read[uint64](deref(small)))

	// Unknown source is rejected.
	var bogus unsafe.Pointer
	assert.Equal(t, lverrors.ZoneError.Code,
		m.CopyHandle(&dst, lvinterop.HandleValue(&bogus)))

	for _, h := range []lvinterop.HandleValue{src, dst, small} {
		require.True(t, m.DisposeHandle(h).IsSuccess())
	}
	assert.Equal(t, 0, m.Stats().Live)
}

func TestNumericArrayResize(t *testing.T) {
	m := New()

	// Null handle allocates.
	var h lvinterop.HandleValue
	require.True(t, m.NumericArrayResize(0x0A, 2, &h, 9).IsSuccess())
	require.NotNil(t, h)

	// 2 dimension fields then 9 float64 at the aligned tail.
	b := m.blocks[h]
	want := int(layout.DataOffset(8, 8)) + 9*8
	assert.Equal(t, want, b.size)

	// Existing handle resizes in place.
	require.True(t, m.NumericArrayResize(0x0A, 2, &h, 16).IsSuccess())
	assert.Equal(t, int(layout.DataOffset(8, 8))+16*8, m.blocks[h].size)

	// Bad type code is an argument error.
	assert.Equal(t, lverrors.ArgError.Code, m.NumericArrayResize(0x7F, 1, &h, 1))

	require.True(t, m.DisposeHandle(h).IsSuccess())
}

func TestErrorCodeDescription(t *testing.T) {
	m := New()

	var text lvinterop.HandleValue
	require.True(t, m.ErrorCodeDescription(int32(lverrors.ZoneError.Code), &text))
	require.NotNil(t, text)

	inner := deref(text)
	size := layout.Read[int32](inner)
	got := string(unsafe.Slice((*byte)(unsafe.Add(inner, 4)), size))
	assert.Equal(t, lverrors.ZoneError.Description, got)
	require.True(t, m.DisposeHandle(text).IsSuccess())

	assert.False(t, m.ErrorCodeDescription(999999, &text))

	m.SetDescription(999999, "custom text")
	require.True(t, m.ErrorCodeDescription(999999, &text))
	require.True(t, m.DisposeHandle(text).IsSuccess())
}

func TestReset(t *testing.T) {
	m := New()
	h := m.NewHandle(4)

	m.Reset()
	assert.Nil(t, deref(h), "reset should invalidate issued handles")
	assert.Equal(t, Stats{}, m.Stats())
	assert.Equal(t, lverrors.ZoneError.Code, m.CheckHandle(h))
}
