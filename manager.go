package lvinterop

import "sync/atomic"

// The manager table is bound once, close to process attach, and is read-only
// afterwards. Absence is a recoverable condition: builds that never bind
// (unit tests, static analysis, hosts without the manager symbols) stay
// well-defined with every capability-backed operation failing fast.
var boundManager atomic.Pointer[managerSlot]

type managerSlot struct {
	mm MemoryManager
}

// Bind installs the process-wide memory manager table. The first caller
// wins; later calls are ignored and return false. Safe to race.
func Bind(mm MemoryManager) bool {
	if mm == nil {
		return false
	}
	return boundManager.CompareAndSwap(nil, &managerSlot{mm: mm})
}

// Memory returns the bound memory manager table, or false when no table has
// been bound. It never blocks.
func Memory() (MemoryManager, bool) {
	slot := boundManager.Load()
	if slot == nil {
		return nil, false
	}
	return slot.mm, true
}
