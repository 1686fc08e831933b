package ident

import (
	"cmp"
	"strconv"
)

// Identifier is an immutable, process-lifetime-unique identifier backed by a
// single uint64 raw value. The zero Identifier has raw value 0, the first
// General-Use value; meaningful identifiers come from Allocate, Register,
// PrivateUse, ErrorIdentifier, or the decode path.
//
// Identifiers are comparable: equality, ordering, and map-key hashing are
// defined purely by the raw value. Two identifiers are equal iff their raw
// values are equal.
type Identifier struct {
	raw uint64
}

// Raw returns the underlying raw value.
func (id Identifier) Raw() uint64 {
	return id.raw
}

// Region returns the region containing id's raw value.
func (id Identifier) Region() Region {
	return RegionOf(id.raw)
}

// IsError reports whether id is the Error sentinel.
func (id Identifier) IsError() bool {
	return id.raw == ErrorValue
}

// Compare orders identifiers by raw value: -1 if id < other, 0 if equal,
// +1 if id > other.
func (id Identifier) Compare(other Identifier) int {
	return cmp.Compare(id.raw, other.raw)
}

// String returns the canonical text form: the decimal digits of the raw
// value, no sign, no separators, no leading zeros beyond a single "0".
func (id Identifier) String() string {
	return strconv.FormatUint(id.raw, 10)
}

// PrivateUse returns the identifier for one of the 256 Private-Use slots.
// The value is computed directly from the offset (Private-Use upper bound −
// offset − 1) and bypasses the registry entirely: no uniqueness check, no
// registration, no cursor interaction. The same offset always yields the
// same identifier; distinct offsets yield distinct identifiers. Keeping two
// concepts from sharing an offset is the caller's business.
func PrivateUse(offset uint8) Identifier {
	return Identifier{raw: ErrorValue - uint64(offset) - 1}
}

// ErrorIdentifier returns the single Error sentinel, the identifier meaning
// "no identifier could be produced". It is a constant, is never registered,
// and is never returned by a successful Allocate.
func ErrorIdentifier() Identifier {
	return Identifier{raw: ErrorValue}
}
