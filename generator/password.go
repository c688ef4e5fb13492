package generator

import (
	"strings"

	"github.com/katalvlaran/passgen/symbol"
)

// Password is an immutable ordered sequence of Symbols, the output of one
// Generate call. The zero value is the empty password.
//
// Immutability holds by construction: NewPassword copies its input, Symbols
// returns a copy, and no method mutates the backing storage. Password is a
// small value type; pass it by value.
type Password struct {
	syms []symbol.Symbol
}

// NewPassword builds a Password from an ordered symbol sequence.
// The input slice is copied; later mutation of it does not affect the result.
// Complexity: O(len(syms)).
func NewPassword(syms []symbol.Symbol) Password {
	if len(syms) == 0 {
		return Password{}
	}
	own := make([]symbol.Symbol, len(syms))
	copy(own, syms)

	return Password{syms: own}
}

// Len returns the number of symbols in p.
// Complexity: O(1).
func (p Password) Len() int { return len(p.syms) }

// At returns the symbol at index i. Panics when i is out of range,
// exactly like indexing a slice.
// Complexity: O(1).
func (p Password) At(i int) symbol.Symbol { return p.syms[i] }

// Symbols returns the symbols of p in order as a fresh slice.
// Complexity: O(Len()).
func (p Password) Symbols() []symbol.Symbol {
	if len(p.syms) == 0 {
		return nil
	}
	out := make([]symbol.Symbol, len(p.syms))
	copy(out, p.syms)

	return out
}

// String returns the password text: all symbols concatenated in order.
// Complexity: O(Len()).
func (p Password) String() string {
	var b strings.Builder
	for _, sym := range p.syms {
		b.WriteRune(rune(sym))
	}

	return b.String()
}

// Count returns how many times sym occurs in p.
// Complexity: O(Len()).
func (p Password) Count(sym symbol.Symbol) int {
	var n int
	for _, s := range p.syms {
		if s == sym {
			n++
		}
	}

	return n
}

// CountAny returns how many symbols of p are members of set.
// A nil or empty set counts zero.
// Complexity: O(Len()).
func (p Password) CountAny(set *symbol.Set) int {
	var n int
	for _, s := range p.syms {
		if set.Contains(s) {
			n++
		}
	}

	return n
}
