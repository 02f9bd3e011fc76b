package types

import (
	"unsafe"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/wiresmithtech/labview-interop-go/memory"
)

// lvEncoding is the code page the host uses for string data on this
// platform. Windows hosts use the active ANSI code page; everywhere else
// the host assumes Windows-1252.
var lvEncoding = charmap.Windows1252

// LStr is the host's string record: a 32-bit length followed by that many
// bytes in the same allocation. The size field leads the record so it sits
// at an aligned offset in both encodings.
type LStr struct {
	size int32
	// size bytes of string data follow
}

const lstrHeaderSize = unsafe.Sizeof(int32(0))

// LStrSize returns the record size in bytes for a payload of n bytes.
func LStrSize(n int) uintptr {
	return lstrHeaderSize + uintptr(n)
}

// Len returns the payload length in bytes.
func (s *LStr) Len() int {
	return int(s.size)
}

// Bytes returns the payload as a slice sharing the record's allocation.
// The slice is invalidated by any resize of the containing handle.
func (s *LStr) Bytes() []byte {
	if s.size <= 0 {
		return nil
	}
	data := unsafe.Add(unsafe.Pointer(s), lstrHeaderSize)
	return unsafe.Slice((*byte)(data), s.size)
}

// String decodes the payload from the host code page.
func (s *LStr) String() string {
	decoded, err := lvEncoding.NewDecoder().Bytes(s.Bytes())
	if err != nil {
		// Windows-1252 decodes every byte; keep the raw bytes if a
		// platform table ever disagrees.
		return string(s.Bytes())
	}
	return string(decoded)
}

// StringHandle is a handle to a host string. It is the type to use at the
// call boundary for any string the host may need to resize.
type StringHandle struct {
	memory.UHandle[LStr]
}

// StringHandleFromRaw wraps a string handle received by value.
func StringHandleFromRaw(raw unsafe.Pointer) StringHandle {
	return StringHandle{memory.HandleFromRaw[LStr](raw)}
}

// SetBytes resizes the handle to fit data and writes it as the new payload.
func (h StringHandle) SetBytes(data []byte) error {
	if err := h.Resize(LStrSize(len(data))); err != nil {
		return err
	}
	s, err := h.Deref()
	if err != nil {
		return err
	}
	s.size = int32(len(data))
	copy(s.Bytes(), data)
	return nil
}

// SetString encodes value into the host code page and writes it into the
// handle. Runes outside the code page are replaced, not rejected.
func (h StringHandle) SetString(value string) error {
	encoded, err := encoding.ReplaceUnsupported(lvEncoding.NewEncoder()).Bytes([]byte(value))
	if err != nil {
		return err
	}
	return h.SetBytes(encoded)
}

// Bytes returns the payload, or an error for a null handle.
func (h StringHandle) Bytes() ([]byte, error) {
	s, err := h.Deref()
	if err != nil {
		return nil, err
	}
	return s.Bytes(), nil
}

// String decodes the payload, or returns an error for a null handle.
func (h StringHandle) String() (string, error) {
	s, err := h.Deref()
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// OwnedString is a host string allocated and released by this library.
type OwnedString struct {
	*memory.Owned[LStr]
}

// NewString allocates an owned host string holding data.
func NewString(data []byte) (OwnedString, error) {
	owned, err := memory.NewOwnedUninit(func(h memory.UHandle[LStr]) error {
		return StringHandle{h}.SetBytes(data)
	})
	if err != nil {
		return OwnedString{}, err
	}
	return OwnedString{owned}, nil
}

// EmptyString allocates an owned host string of length zero.
func EmptyString() (OwnedString, error) {
	return NewString(nil)
}

// StringHandle returns a borrowed handle to the owned string. The handle
// must not outlive the owner.
func (o OwnedString) StringHandle() StringHandle {
	return StringHandle{o.Handle()}
}
