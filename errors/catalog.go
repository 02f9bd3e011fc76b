package errors

import (
	"fmt"

	lvinterop "github.com/wiresmithtech/labview-interop-go"
)

// HostError is a named error from the host's official catalog. The codes
// and texts are fixed by the host; the library only recognizes them.
type HostError struct {
	Code        lvinterop.StatusCode
	Name        string
	Description string
}

// Error implements the error interface.
func (e HostError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Name, int32(e.Code), e.Description)
}

// Named host errors from the manager catalog.
var (
	ArgError          = HostError{1, "mgArgErr", "An input parameter is invalid."}
	MemoryFull        = HostError{2, "mFullErr", "Memory is full."}
	ZoneError         = HostError{3, "mZoneErr", "The handle or pointer is not recognized by the memory manager."}
	EndOfFile         = HostError{4, "fEOF", "End of file encountered."}
	FileAlreadyOpen   = HostError{5, "fIsOpen", "File already open."}
	FileIOError       = HostError{6, "fIOErr", "Generic file I/O error."}
	FileNotFound      = HostError{7, "fNotFound", "File not found."}
	FilePermission    = HostError{8, "fNoPerm", "File permission error."}
	DiskFull          = HostError{9, "fDiskFull", "Disk full."}
	DuplicatePath     = HostError{10, "fDupPath", "Duplicate path."}
	TooManyFilesOpen  = HostError{11, "fTMFOpen", "Too many files open."}
	NotEnabled        = HostError{12, "fNotEnabled", "Some system capacity necessary for operation is not enabled."}
	DynamicLoadFailed = HostError{13, "rfNotFound", "Failed to load dynamic library because of missing external symbols."}
	ResourceAddFailed = HostError{14, "rAddFailed", "Cannot add resource."}
	ResourceNotFound  = HostError{15, "rNotFound", "Resource not found."}
	ImageNotFound     = HostError{16, "iNotFound", "Image not found."}
	ImageMemoryFull   = HostError{17, "iMemoryErr", "Not enough memory to manipulate image."}
	PenDoesNotExist   = HostError{18, "dPenNotExist", "Pen does not exist."}
	ConfigTypeInvalid = HostError{19, "cfgBadType", "Configuration type invalid."}
	ConfigTokenUnknown = HostError{20, "cfgTokenNotFound", "Configuration token not found."}
	ConfigParseError  = HostError{21, "cfgParseError", "Error occurred parsing configuration string."}
	ConfigMemoryError = HostError{22, "cfgAllocError", "Configuration memory error."}
	BadExternalCode   = HostError{23, "ecLVSBFormatError", "Bad external code format."}
	BogusError        = HostError{42, "bogusError", "Generic error."}
	NotSupported      = HostError{53, "mgNotSupported", "Manager call not supported."}
	BadNetworkAddress = HostError{54, "ncBadAddressErr", "The network address is ill-formed."}
	NetworkInProgress = HostError{55, "ncInProgress", "The network operation is in progress."}
	NetworkTimeout    = HostError{56, "ncTimeOutErr", "The network operation exceeded the user-specified or system time limit."}
	NetworkBusy       = HostError{57, "ncBusyErr", "The network connection is busy."}
	NotANetworkJob    = HostError{58, "ncNotJoinableErr", "The network operation is not joinable."}
	NetworkClosed     = HostError{66, "ncConnClosedErr", "The network connection was closed by the peer."}
)

var catalog = func() map[lvinterop.StatusCode]HostError {
	entries := []HostError{
		ArgError, MemoryFull, ZoneError, EndOfFile, FileAlreadyOpen,
		FileIOError, FileNotFound, FilePermission, DiskFull, DuplicatePath,
		TooManyFilesOpen, NotEnabled, DynamicLoadFailed, ResourceAddFailed,
		ResourceNotFound, ImageNotFound, ImageMemoryFull, PenDoesNotExist,
		ConfigTypeInvalid, ConfigTokenUnknown, ConfigParseError,
		ConfigMemoryError, BadExternalCode, BogusError, NotSupported,
		BadNetworkAddress, NetworkInProgress, NetworkTimeout, NetworkBusy,
		NotANetworkJob, NetworkClosed,
	}
	m := make(map[lvinterop.StatusCode]HostError, len(entries))
	for _, e := range entries {
		m[e.Code] = e
	}
	return m
}()

// HostErrorFromStatus converts a status code to its named catalog entry.
// The conversion is partial: the success code and codes outside the catalog
// fail with an invalid-code error.
func HostErrorFromStatus(code lvinterop.StatusCode) (HostError, error) {
	if code.IsSuccess() {
		return HostError{}, InvalidCode(code)
	}
	host, ok := catalog[code]
	if !ok {
		return HostError{}, InvalidCode(code)
	}
	return host, nil
}

// Catalog returns every named host error, for callers that need to seed
// description tables.
func Catalog() []HostError {
	entries := make([]HostError, 0, len(catalog))
	for _, e := range catalog {
		entries = append(entries, e)
	}
	return entries
}
