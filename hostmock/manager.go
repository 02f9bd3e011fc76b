package hostmock

import (
	"sync"
	"unsafe"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
	lverrors "github.com/wiresmithtech/labview-interop-go/errors"
	"github.com/wiresmithtech/labview-interop-go/internal/layout"
)

// Stats is a snapshot of the manager's lifecycle counters.
type Stats struct {
	Allocs   int
	Resizes  int
	Copies   int
	Disposes int
	Live     int
}

// Manager is an in-process memory manager.
//
// A mutex serializes every entry point, matching the real manager's
// internally synchronized contract.
type Manager struct {
	mu           sync.Mutex
	blocks       map[lvinterop.HandleValue]*block
	descriptions map[int32]string
	stats        Stats
}

// block is one relocatable allocation. The words slice keeps the backing
// array reachable; the handle slot points into it.
type block struct {
	slot  *unsafe.Pointer // outer pointer storage, *slot is the data base
	words []uint64
	size  int
}

// New creates a manager whose error description table is seeded from the
// named host catalog.
func New() *Manager {
	m := &Manager{
		blocks:       make(map[lvinterop.HandleValue]*block),
		descriptions: make(map[int32]string),
	}
	m.descriptions[0] = "No error."
	for _, host := range lverrors.Catalog() {
		m.descriptions[int32(host.Code)] = host.Description
	}
	return m
}

// SetDescription adds or replaces an entry in the error description table.
func (m *Manager) SetDescription(code int32, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.descriptions[code] = text
}

// Stats returns a snapshot of the lifecycle counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.stats
	s.Live = len(m.blocks)
	return s
}

// Reset drops every live block and zeroes the counters. Handles issued
// before the reset become invalid.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.blocks {
		*b.slot = nil
	}
	m.blocks = make(map[lvinterop.HandleValue]*block)
	m.stats = Stats{}
}

// newBlock allocates a block of the given byte size. 64-bit words back the
// data so the base carries 8-byte alignment like the real manager's
// worst-case alignment guarantee.
func (m *Manager) newBlock(size int) *block {
	words := make([]uint64, max(1, (size+7)/8))
	slot := new(unsafe.Pointer)
	*slot = unsafe.Pointer(&words[0])
	b := &block{slot: slot, words: words, size: size}
	m.blocks[lvinterop.HandleValue(slot)] = b
	m.stats.Allocs++
	return b
}

// relocate gives the block a fresh backing array of the new size,
// preserving the common prefix. Always moving keeps callers honest about
// pointers held across a resize.
func (m *Manager) relocate(b *block, size int) {
	words := make([]uint64, max(1, (size+7)/8))
	copy(bytesOf(words, size), bytesOf(b.words, b.size))
	b.words = words
	b.size = size
	*b.slot = unsafe.Pointer(&words[0])
}

func bytesOf(words []uint64, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), size)
}

func (b *block) bytes() []byte {
	return bytesOf(b.words, b.size)
}

// NewHandle implements lvinterop.MemoryManager.
func (m *Manager) NewHandle(size uintptr) lvinterop.HandleValue {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.newBlock(int(size))
	return lvinterop.HandleValue(b.slot)
}

// SetHandleSize implements lvinterop.MemoryManager.
func (m *Manager) SetHandleSize(h lvinterop.HandleValue, size uintptr) lvinterop.StatusCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blocks[h]
	if !ok {
		return lverrors.ZoneError.Code
	}
	m.relocate(b, int(size))
	m.stats.Resizes++
	return lvinterop.StatusSuccess
}

// CopyHandle implements lvinterop.MemoryManager. A null destination slot
// receives a fresh handle; an existing destination is resized to the
// source size before the bytes are copied.
func (m *Manager) CopyHandle(dst *lvinterop.HandleValue, src lvinterop.HandleValue) lvinterop.StatusCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	srcBlock, ok := m.blocks[src]
	if !ok {
		return lverrors.ZoneError.Code
	}
	var dstBlock *block
	if *dst == nil {
		dstBlock = m.newBlock(srcBlock.size)
		*dst = lvinterop.HandleValue(dstBlock.slot)
	} else {
		dstBlock, ok = m.blocks[*dst]
		if !ok {
			return lverrors.ZoneError.Code
		}
		if dstBlock.size != srcBlock.size {
			m.relocate(dstBlock, srcBlock.size)
		}
	}
	copy(dstBlock.bytes(), srcBlock.bytes())
	m.stats.Copies++
	return lvinterop.StatusSuccess
}

// DisposeHandle implements lvinterop.MemoryManager.
func (m *Manager) DisposeHandle(h lvinterop.HandleValue) lvinterop.StatusCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blocks[h]
	if !ok {
		return lverrors.ZoneError.Code
	}
	// The real manager leaves the handle dangling; nil the inner pointer
	// instead so a use-after-dispose fails a null check rather than
	// reading freed memory.
	*b.slot = nil
	delete(m.blocks, h)
	m.stats.Disposes++
	return lvinterop.StatusSuccess
}

// CheckHandle implements lvinterop.MemoryManager.
func (m *Manager) CheckHandle(h lvinterop.HandleValue) lvinterop.StatusCode {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.blocks[h]; !ok {
		return lverrors.ZoneError.Code
	}
	return lvinterop.StatusSuccess
}

// elemSizes maps the manager numeric type codes to element sizes.
var elemSizes = map[int32]int{
	0x01: 1, 0x02: 2, 0x03: 4, 0x04: 8,
	0x05: 1, 0x06: 2, 0x07: 4, 0x08: 8,
	0x09: 4, 0x0A: 8,
}

// NumericArrayResize implements lvinterop.MemoryManager. The new block size
// is the dimension header plus the aligned element tail; the dimension
// header contents are preserved but not rewritten, per the real routine.
func (m *Manager) NumericArrayResize(typeCode int32, ndims int32, h *lvinterop.HandleValue, totalElems uintptr) lvinterop.StatusCode {
	elemSize, ok := elemSizes[typeCode]
	if !ok || ndims < 0 {
		return lverrors.ArgError.Code
	}

	header := uintptr(ndims) * 4
	size := int(layout.DataOffset(header, uintptr(elemSize)) + totalElems*uintptr(elemSize))

	m.mu.Lock()
	defer m.mu.Unlock()
	if *h == nil {
		b := m.newBlock(size)
		*h = lvinterop.HandleValue(b.slot)
		return lvinterop.StatusSuccess
	}
	b, ok := m.blocks[*h]
	if !ok {
		return lverrors.ZoneError.Code
	}
	m.relocate(b, size)
	m.stats.Resizes++
	return lvinterop.StatusSuccess
}

// ErrorCodeDescription implements lvinterop.MemoryManager. The caller owns
// the returned string handle.
func (m *Manager) ErrorCodeDescription(code int32, text *lvinterop.HandleValue) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	desc, ok := m.descriptions[code]
	if !ok {
		return false
	}
	b := m.newBlock(4 + len(desc))
	data := b.bytes()
	layout.Write(unsafe.Pointer(&data[0]), int32(len(desc)))
	copy(data[4:], desc)
	*text = lvinterop.HandleValue(b.slot)
	return true
}
