// Package lvinterop provides a safe ownership layer over the LabVIEW memory
// manager's relocatable handle model.
//
// A handle is a double pointer: the manager keeps the extra indirection so it
// can resize and relocate the backing block transparently. This library wraps
// that model with typed, checked accessors and an explicit owned wrapper for
// deterministic release, while delegating every allocation, resize and
// disposal to the host's own manager through the MemoryManager capability.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	lvinterop/        Root package with StatusCode, HandleValue and the
//	                  MemoryManager capability interface plus its
//	                  process-wide binding
//	├── errors/       Structured error taxonomy, the reserved internal code
//	                  range and the named host error catalog
//	├── memory/       UPtr, UHandle and Owned wrappers over raw pointers
//	                  and handles
//	├── types/        Host-native records: strings, numeric arrays, error
//	                  clusters, booleans and timestamps
//	├── hostmock/     In-process MemoryManager implementation for tests
//	                  and the developer testbed
//	└── cmd/lvmemtool Smoke-test CLI exercising the layer end to end
//
// # Capability Binding
//
// The manager table is bound once per process:
//
//	lvinterop.Bind(table)
//
// Every operation that needs the host fetches the table through
// lvinterop.Memory and degrades to a recoverable "no memory manager" error
// when it has never been bound. Builds without host linkage therefore remain
// well-defined, with handle validity reduced to null checks.
//
// # Ownership
//
// UHandle and UPtr are borrowed views: they never release memory. Wrapping a
// handle in memory.Owned adds exclusive release responsibility; Release
// disposes through the manager and reports failures to the diagnostic logger
// because release cannot propagate an error.
package lvinterop
