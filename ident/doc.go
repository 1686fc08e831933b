// Package ident provides process-lifetime-unique integer identifiers with
// allocation, recycling, and region classification.
//
// # Overview
//
// Identifiers are opaque wrappers around a uint64 raw value. They are cheap
// to allocate, serialize as bare integers rather than 128-bit UUIDs, and can
// be recycled when the entity they name goes away. Uniqueness holds within a
// single process only; cross-process or cross-machine uniqueness is
// explicitly out of scope (use a UUID for that), and the allocation table is
// not persisted across restarts. Callers that decode identifiers issued by a
// previous run re-register them through the decode path.
//
// # Regions
//
// The uint64 domain is partitioned into four contiguous, non-overlapping
// regions; every raw value belongs to exactly one:
//
//	General-Use  [0, 2^63)            allocatable, tracked by the registry
//	Reserved     [2^63, 2^64-257)     forward-compatibility buffer
//	Private-Use  [2^64-257, 2^64-1)   256 caller-chosen sentinel slots
//	Error        {2^64-1}             "no identifier could be produced"
//
// Private-Use and Error identifiers are built directly from fixed formulas
// via PrivateUse and ErrorIdentifier. They never pass through the registry.
//
// # Allocator
//
// An Allocator owns the set of in-use raw values plus a cursor marking the
// lowest General-Use value not known to be registered:
//
//	a := ident.New(nil)
//	id, err := a.Allocate()
//	if err != nil {
//	    return err
//	}
//	// ... later, release the value for reuse
//	a.Recycle(id)
//
// Allocate hands out the cursor value and advances past any registered
// values. Recycle returns a value to the pool and rewinds the cursor when
// the recycled value is lower, so freed values are reused before the cursor
// moves on. Register marks an externally-sourced value (for example one
// decoded from saved data) as in use so later allocations cannot collide
// with it.
//
// The package-level Default allocator backs the top-level Allocate, Register,
// Recycle, Reset, and Parse functions as well as the encoding/json and
// encoding.TextUnmarshaler hooks on Identifier. Code that wants isolated
// identifier spaces (tests in particular) creates its own instances with New
// instead of resetting Default.
//
// # Serialization
//
// An identifier encodes as its raw value: the bare number 7 in JSON, the
// string "7" in text form. Decoding registers General-Use values into the
// allocator so they cannot be handed out again; Private-Use and Error values
// decode as-is. The parse grammar is strict decimal: no sign, no separators,
// no leading zeros beyond a single "0".
//
// # Failure handling
//
// Registering a value outside General-Use inserts nothing, logs at error
// level, and substitutes the Error identifier; callers must use the returned
// identifier, not their original argument. Exhaustion of the General-Use
// range logs at LevelFatal and makes Allocate return ErrExhausted alongside
// the Error identifier. Both paths trap in builds compiled with the
// "identassert" tag and continue degraded otherwise.
//
// # Thread safety
//
// All Allocator operations are safe for concurrent use. A single mutex
// guards the registry set and the cursor together, so registration and
// cursor advance are one atomic unit: two concurrent Allocate calls can
// never return the same raw value.
package ident
