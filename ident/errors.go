package ident

import "errors"

var (
	// ErrExhausted indicates that no unregistered General-Use value remains.
	ErrExhausted = errors.New("ident: general-use identifier space exhausted")

	// ErrMalformed indicates that a string is not a valid identifier literal
	// (strict decimal digits, no sign, no leading zeros, within uint64).
	ErrMalformed = errors.New("ident: malformed identifier literal")
)
