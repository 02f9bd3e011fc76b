package memory_test

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/hostmock"
	"github.com/wiresmithtech/labview-interop-go/memory"
)

func TestOwned_Lifecycle(t *testing.T) {
	mgr.Reset()

	owned, err := memory.NewOwned(ptrTo(uint64(0xDEADBEEF)))
	if err != nil {
		t.Fatalf("NewOwned failed: %v", err)
	}

	got, err := owned.Handle().Deref()
	if err != nil {
		t.Fatalf("Deref failed: %v", err)
	}
	if *got != 0xDEADBEEF {
		t.Fatalf("Expected stored value, got %#x", *got)
	}

	owned.Release()
	want := hostmock.Stats{Allocs: 1, Disposes: 1}
	if diff := cmp.Diff(want, mgr.Stats()); diff != "" {
		t.Fatalf("Unexpected lifecycle counters (-want +got):\n%s", diff)
	}
}

func TestOwned_ReleaseIdempotent(t *testing.T) {
	mgr.Reset()

	owned, err := memory.NewOwned(ptrTo(int32(1)))
	if err != nil {
		t.Fatalf("NewOwned failed: %v", err)
	}

	owned.Release()
	owned.Release()
	owned.Release()

	if got := mgr.Stats().Disposes; got != 1 {
		t.Fatalf("Expected exactly 1 dispose, got %d", got)
	}
}

func TestOwned_ReleaseNilReceiver(t *testing.T) {
	var owned *memory.Owned[int32]
	owned.Release()
}

func TestNewOwnedUninit_ErrorPathDisposes(t *testing.T) {
	mgr.Reset()

	wantErr := stderrors.New("populate failed")
	_, err := memory.NewOwnedUninit(func(h memory.UHandle[int32]) error {
		return wantErr
	})
	if !stderrors.Is(err, wantErr) {
		t.Fatalf("Expected init error, got %v", err)
	}

	stats := mgr.Stats()
	if stats.Live != 0 {
		t.Fatalf("Failed init leaked %d blocks", stats.Live)
	}
	if stats.Disposes != 1 {
		t.Fatalf("Expected the failed block disposed, got %d disposes", stats.Disposes)
	}
}

func TestOwned_TryClone(t *testing.T) {
	mgr.Reset()

	owned, err := memory.NewOwned(ptrTo(int32(21)))
	if err != nil {
		t.Fatalf("NewOwned failed: %v", err)
	}
	defer owned.Release()

	clone, err := owned.TryClone()
	if err != nil {
		t.Fatalf("TryClone failed: %v", err)
	}
	defer clone.Release()

	if *clone.Handle().MustDeref() != 21 {
		t.Fatal("Clone should carry the source value")
	}

	*owned.Handle().MustDeref() = 5
	if *clone.Handle().MustDeref() != 21 {
		t.Fatal("Clone should not alias the source block")
	}
}

func TestDispose_FailureIsLogged(t *testing.T) {
	mgr.Reset()

	core, logs := observer.New(zap.WarnLevel)
	lvinterop.SetLogger(zap.New(core))
	defer lvinterop.SetLogger(nil)

	var inner *int32
	memory.Dispose(lvinterop.HandleValue(&inner))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected one log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if got := fields["status"]; got != int32(lverrors.ZoneError.Code) {
		t.Fatalf("Expected zone error status in log, got %v", got)
	}
}
