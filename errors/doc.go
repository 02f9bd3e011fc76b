// Package errors provides the structured error types for the interop layer.
//
// Errors fall into three groups:
//
//   - Library-internal errors, identified by Kind. Each Kind maps to a
//     unique status code in a reserved range (base 542000) outside every
//     host catalog, so a host-side observer can always distinguish "the
//     library said no" from "the host said no".
//   - Named host errors from the manager's closed catalog, carried as
//     HostError with their official code and description.
//   - Raw host codes outside the catalog, wrapped generically with
//     KindHost so unrecognized codes degrade instead of failing.
//
// Use the convenience constructors for the internal kinds:
//
//	err := errors.InvalidHandle()
//	err := errors.DimensionMismatch(2, 3)
//
// and Check to turn a manager status into the richest available error:
//
//	if err := errors.Check(mm.SetHandleSize(h, size)); err != nil { ... }
//
// All errors support the standard errors.Is/As matching; internal errors
// match on Kind.
package errors
