package symbol

import "errors"

var (
	// ErrInvalidCodePoint indicates a rune outside the valid Unicode scalar
	// range (negative, beyond U+10FFFF, or a surrogate half).
	ErrInvalidCodePoint = errors.New("symbol: code point outside valid Unicode range")

	// ErrBadRange indicates AddRange bounds that are reversed or outside
	// the valid code-point range.
	ErrBadRange = errors.New("symbol: invalid code-point range")

	// ErrBadPattern indicates a malformed range pattern: a dangling escape
	// or a reversed range such as "z-a".
	ErrBadPattern = errors.New("symbol: malformed range pattern")
)
