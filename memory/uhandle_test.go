package memory_test

import (
	stderrors "errors"
	"testing"
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/memory"
)

func TestUHandle_NullChecks(t *testing.T) {
	mgr.Reset()

	var h memory.UHandle[int32]
	if !h.IsNil() {
		t.Fatal("Zero handle should be nil")
	}
	if h.Valid() {
		t.Fatal("Zero handle should not be valid")
	}
	if _, err := h.Deref(); !stderrors.Is(err, lverrors.InvalidHandle()) {
		t.Fatalf("Expected invalid-handle, got %v", err)
	}

	// Non-null outer, null inner is still invalid.
	var inner *int32
	h = memory.HandleFromRaw[int32](lvinterop.HandleValue(&inner))
	if h.IsNil() {
		t.Fatal("Handle with live outer pointer should not be nil")
	}
	if h.Valid() {
		t.Fatal("Handle to null inner pointer should not be valid")
	}
	if _, err := h.Deref(); !stderrors.Is(err, lverrors.InvalidHandle()) {
		t.Fatalf("Expected invalid-handle, got %v", err)
	}
}

func TestUHandle_ValidAgainstManager(t *testing.T) {
	mgr.Reset()

	owned, err := memory.NewOwned(ptrTo(int32(7)))
	if err != nil {
		t.Fatalf("NewOwned failed: %v", err)
	}
	h := owned.Handle()
	if !h.Valid() {
		t.Fatal("Fresh allocation should be valid")
	}

	// A fabricated double pointer is rejected by the manager even though
	// both levels are non-null.
	value := int32(1)
	inner := &value
	forged := memory.HandleFromRaw[int32](lvinterop.HandleValue(&inner))
	if forged.Valid() {
		t.Fatal("Handle unknown to the manager should not be valid")
	}

	owned.Release()
	if h.Valid() {
		t.Fatal("Handle should not be valid after release")
	}
}

func TestUHandle_ResizePreservesPrefix(t *testing.T) {
	mgr.Reset()

	owned, err := memory.NewOwnedUninit(func(h memory.UHandle[byte]) error {
		if err := h.Resize(8); err != nil {
			return err
		}
		base, err := h.Deref()
		if err != nil {
			return err
		}
		data := unsafe.Slice(base, 8)
		for i := range data {
			data[i] = byte(i + 1)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("NewOwnedUninit failed: %v", err)
	}
	defer owned.Release()

	h := owned.Handle()
	if err := h.Resize(16); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}

	base, err := h.Deref()
	if err != nil {
		t.Fatalf("Deref after resize failed: %v", err)
	}
	data := unsafe.Slice(base, 16)
	for i := 0; i < 8; i++ {
		if data[i] != byte(i+1) {
			t.Fatalf("Prefix byte %d: expected %d, got %d", i, i+1, data[i])
		}
	}
}

func TestUHandle_CopyIntoNullSlot(t *testing.T) {
	mgr.Reset()

	src, err := memory.NewOwned(ptrTo(int64(99)))
	if err != nil {
		t.Fatalf("NewOwned failed: %v", err)
	}
	defer src.Release()

	var dst memory.UHandle[int64]
	if err := src.Handle().CopyInto(&dst); err != nil {
		t.Fatalf("CopyInto failed: %v", err)
	}
	defer memory.Dispose(dst.Raw())

	got, err := dst.Deref()
	if err != nil {
		t.Fatalf("Deref of copy failed: %v", err)
	}
	if *got != 99 {
		t.Fatalf("Expected copied value 99, got %d", *got)
	}

	// The copy is an independent block.
	*src.Handle().MustDeref() = 1
	if *got != 99 {
		t.Fatal("Copy should not alias the source block")
	}
}

func ptrTo[T any](v T) *T { return &v }
