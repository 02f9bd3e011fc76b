// Package hostmock provides an in-process MemoryManager implementation.
//
// The mock behaves like the real manager where the behavior is documented:
// handles are double pointers, resize relocates the block (always, so
// stale-pointer bugs surface immediately), dispose invalidates the handle,
// copy-into-a-null-slot allocates. Where the real manager's behavior is
// unverified (copying into a differently sized destination) the mock grows
// or shrinks the destination to match the source; treat that as the mock's
// choice, not a host guarantee.
//
// It also counts allocations, resizes and disposals so tests can assert on
// lifecycle behavior:
//
//	mgr := hostmock.New()
//	lvinterop.Bind(mgr)
//	...
//	if mgr.Stats().Disposes != 1 { ... }
//
// The capability binding is process-wide and permanent, so test binaries
// bind one mock and Reset it between tests.
package hostmock
