package ident

import (
	"fmt"
	"strconv"
)

// Identifiers serialize as bare integers, so an encoded identifier embeds
// directly as a field value in any structured encoding: raw value 7 encodes
// as the number 7, not as an object or a quoted string.
//
// Encoding has no side effect. Decoding is the re-registration path: a
// decoded General-Use value goes through Register so it cannot collide with
// a subsequently allocated one, and an out-of-range (Reserved) value comes
// back substituted with the Error identifier exactly as a direct Register
// call would. Private-Use and Error values decode as themselves; they are
// never registry-tracked in the first place.

// MarshalText implements encoding.TextMarshaler, producing the canonical
// decimal form. It never fails.
func (id Identifier) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, id.raw, 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, decoding through the
// Default allocator.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := Default.Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler, producing the raw value as a bare
// JSON number. It never fails.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, id.raw, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler, decoding through the Default
// allocator. Only the strict decimal grammar is accepted: a quoted string,
// a sign, a fraction, or an exponent is an error.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	parsed, err := Default.Parse(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Parse converts the canonical text form back into an identifier, decoding
// through the Default allocator. See (*Allocator).Parse.
func Parse(s string) (Identifier, error) {
	return Default.Parse(s)
}

// Parse converts the canonical text form back into an identifier, with the
// same registration side effects as decode: General-Use values are
// registered into a, and Reserved values are substituted with the Error
// identifier. Private-Use and Error values parse to themselves.
//
// The grammar is exactly the decimal digits of a uint64: no sign, no
// separators, no leading zeros beyond a single "0". Anything else fails with
// ErrMalformed and produces no identifier; malformed input is not logged.
func (a *Allocator) Parse(s string) (Identifier, error) {
	raw, err := parseRaw(s)
	if err != nil {
		return Identifier{}, err
	}

	id := Identifier{raw: raw}
	switch RegionOf(raw) {
	case RegionGeneral, RegionReserved:
		// Reserved values take the same substitution path a direct Register
		// call would: error log plus the Error identifier.
		return a.Register(id), nil
	default:
		// Private-Use and Error identifiers are never registry-tracked;
		// they decode as themselves.
		return id, nil
	}
}

// parseRaw enforces the strict literal grammar on top of strconv, which
// already rejects signs, separators, and out-of-range values for base-10
// uint64 parsing.
func parseRaw(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrMalformed)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("%w: leading zeros in %q", ErrMalformed, s)
	}

	raw, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return raw, nil
}
