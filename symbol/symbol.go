package symbol

import "unicode/utf8"

// Symbol is a single character identified by its Unicode code point.
// It is an immutable comparable value: equality and map-key identity are
// by code point only.
type Symbol rune

// New validates r and returns it as a Symbol.
// Returns ErrInvalidCodePoint for values outside the Unicode scalar range
// (negative, beyond U+10FFFF, or surrogate halves).
//
// A plain conversion Symbol(r) is always possible; New is for inputs that
// come from outside the program and need checking first.
// Complexity: O(1).
func New(r rune) (Symbol, error) {
	if !utf8.ValidRune(r) {
		return 0, ErrInvalidCodePoint
	}

	return Symbol(r), nil
}

// Rune returns the code point of s.
// Complexity: O(1).
func (s Symbol) Rune() rune { return rune(s) }

// String returns the UTF-8 textual form of s (one to four bytes).
// Complexity: O(1).
func (s Symbol) String() string { return string(rune(s)) }
