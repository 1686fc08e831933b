package ident

import "math"

// Region classifies a raw value into one of the four disjoint ranges the
// uint64 domain is partitioned into. Exactly one region contains any given
// value.
type Region uint8

const (
	// RegionGeneral is the allocatable lower half of the domain. Only
	// General-Use values are ever tracked by an Allocator's registry.
	RegionGeneral Region = iota

	// RegionReserved is the forward-compatibility buffer between the
	// General-Use and Private-Use ranges. No API constructs identifiers
	// here.
	RegionReserved

	// RegionPrivate holds the 256 caller-addressed sentinel slots built by
	// PrivateUse.
	RegionPrivate

	// RegionError holds the single Error sentinel at the domain maximum.
	RegionError
)

// Partition boundaries. The four ranges are contiguous and cover the whole
// uint64 domain with no gaps or overlaps:
//
//	[GeneralLowerBound, GeneralUpperBound)  General-Use
//	[GeneralUpperBound, PrivateLowerBound)  Reserved
//	[PrivateLowerBound, ErrorValue)         Private-Use
//	{ErrorValue}                            Error
const (
	// GeneralLowerBound is the first General-Use value and the cursor's
	// starting position.
	GeneralLowerBound uint64 = 0

	// GeneralUpperBound is the exclusive end of the General-Use range (half
	// the domain).
	GeneralUpperBound uint64 = 1 << 63

	// PrivateUseSize is the number of Private-Use slots.
	PrivateUseSize uint64 = 256

	// ErrorValue is the raw value of the Error identifier, the domain
	// maximum.
	ErrorValue uint64 = math.MaxUint64

	// PrivateLowerBound is the first Private-Use value; the range runs up
	// to, but not including, ErrorValue.
	PrivateLowerBound uint64 = ErrorValue - PrivateUseSize
)

// RegionOf maps a raw value to the region containing it. It is total and
// pure: every uint64 maps to exactly one region.
func RegionOf(raw uint64) Region {
	switch {
	case raw < GeneralUpperBound:
		return RegionGeneral
	case raw < PrivateLowerBound:
		return RegionReserved
	case raw < ErrorValue:
		return RegionPrivate
	default:
		return RegionError
	}
}

// Contains reports whether id's raw value falls inside r. It agrees exactly
// with RegionOf: for any identifier, exactly one region's Contains is true.
func (r Region) Contains(id Identifier) bool {
	return RegionOf(id.raw) == r
}

// String returns the region name for diagnostics.
func (r Region) String() string {
	switch r {
	case RegionGeneral:
		return "general-use"
	case RegionReserved:
		return "reserved"
	case RegionPrivate:
		return "private-use"
	case RegionError:
		return "error"
	default:
		return "unknown"
	}
}
