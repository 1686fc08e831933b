package ident

// Default is the process-wide allocator. The package-level operation
// functions and the Identifier decode hooks (UnmarshalJSON, UnmarshalText)
// operate on it, so identifiers decoded anywhere in the process share one
// registry.
//
// Code that needs an isolated identifier space, tests above all, should
// create its own instance with New rather than calling Reset on Default.
var Default = New(nil)

// Allocate returns a fresh identifier from the Default allocator.
func Allocate() (Identifier, error) {
	return Default.Allocate()
}

// Register marks an externally-sourced identifier as in use in the Default
// allocator. See (*Allocator).Register for the substitution contract.
func Register(existing Identifier) Identifier {
	return Default.Register(existing)
}

// Recycle returns an identifier to the Default allocator's pool.
func Recycle(id Identifier) {
	Default.Recycle(id)
}

// Reset restores the Default allocator to its initial empty state.
func Reset() {
	Default.Reset()
}
