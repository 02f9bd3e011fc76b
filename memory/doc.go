// Package memory provides the typed pointer and handle wrappers over
// host-managed memory.
//
// # Pointers and Handles
//
// UPtr wraps a single machine pointer; UHandle wraps the host's double
// indirection, which the manager uses so it can relocate the backing block
// on resize. Both are borrowed views: neither releases memory.
//
// Dereference is checked on both. A handle additionally requires both
// levels of indirection to be non-null; a non-null handle to a null inner
// pointer is still invalid.
//
// # Ownership
//
// Owned wraps a handle with exclusive release responsibility:
//
//	owned, err := memory.NewOwned(&value)
//	if err != nil { ... }
//	defer owned.Release()
//
// At most one Owned may claim a block; the discipline is construction-time
// (allocate fresh, or promote a borrowed handle through TryClone's
// defensive copy), not runtime reference counting. Release cannot fail:
// dispose errors go to the diagnostic logger.
//
// # Concurrency
//
// The host manager is internally synchronized, so handles may be shared and
// handed off across goroutines. Composite sequences are not atomic: a
// resize or dispose on another goroutine between a validity check and a
// dereference is a use-after-free hazard the caller must rule out.
package memory
