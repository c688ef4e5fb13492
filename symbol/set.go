// Package symbol: Set container and population helpers.
//
// Set is a plain map-backed collection. All mutators return the receiver so
// population chains read naturally; the two fallible helpers (AddRange,
// AddPattern) return an error instead and commit nothing on failure.

package symbol

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Set is an unordered, deduplicated collection of Symbols.
//
// Equality between Sets is by content (size and membership), never by
// identity. Read methods are nil-receiver safe and treat nil as empty;
// mutators require a Set built by one of the constructors or a literal
// &Set{} (maps are allocated lazily).
//
// Set is not safe for concurrent mutation.
type Set struct {
	members map[Symbol]struct{}
}

// NewSet returns a Set populated with the given Symbols.
// Symbols outside the valid Unicode scalar range are skipped.
// Complexity: O(len(syms)).
func NewSet(syms ...Symbol) *Set {
	s := &Set{members: make(map[Symbol]struct{}, len(syms))}

	return s.Add(syms...)
}

// FromString returns a Set holding every distinct rune of str.
// Complexity: O(len(str)).
func FromString(str string) *Set {
	return NewSet().AddString(str)
}

// FromTable returns a Set holding every rune of the given unicode.RangeTable.
// Complexity: O(n) over the runes the table contains.
func FromTable(rt *unicode.RangeTable) *Set {
	return NewSet().AddTable(rt)
}

// init allocates the backing map so that mutators work on a zero Set.
func (s *Set) init() {
	if s.members == nil {
		s.members = make(map[Symbol]struct{})
	}
}

// Add inserts the given Symbols, skipping duplicates and values outside the
// valid Unicode scalar range. Returns the receiver for chaining.
// Complexity: O(len(syms)) amortized.
func (s *Set) Add(syms ...Symbol) *Set {
	s.init()
	for _, sym := range syms {
		if !utf8.ValidRune(rune(sym)) {
			continue // never admit non-scalar values
		}
		s.members[sym] = struct{}{}
	}

	return s
}

// AddRunes inserts the given runes, skipping duplicates and invalid scalars.
// Returns the receiver for chaining.
// Complexity: O(len(rs)) amortized.
func (s *Set) AddRunes(rs ...rune) *Set {
	s.init()
	for _, r := range rs {
		if !utf8.ValidRune(r) {
			continue
		}
		s.members[Symbol(r)] = struct{}{}
	}

	return s
}

// AddString inserts every rune of str. Returns the receiver for chaining.
// Complexity: O(len(str)) amortized.
func (s *Set) AddString(str string) *Set {
	s.init()
	for _, r := range str {
		s.members[Symbol(r)] = struct{}{}
	}

	return s
}

// AddRange inserts every valid scalar in the inclusive range [lo, hi].
// Surrogate halves inside the range are skipped silently.
// Returns ErrBadRange when lo > hi or either bound lies outside
// [0, unicode.MaxRune]; the Set is left unchanged on error.
// Complexity: O(hi-lo).
func (s *Set) AddRange(lo, hi rune) error {
	if lo < 0 || hi > unicode.MaxRune || lo > hi {
		return ErrBadRange
	}
	s.init()
	for r := lo; r <= hi; r++ {
		if !utf8.ValidRune(r) {
			continue // surrogate gap
		}
		s.members[Symbol(r)] = struct{}{}
	}

	return nil
}

// AddTable inserts every rune of the given unicode.RangeTable.
// A nil table is a no-op. Returns the receiver for chaining.
// Complexity: O(n) over the runes the table contains.
func (s *Set) AddTable(rt *unicode.RangeTable) *Set {
	if rt == nil {
		return s
	}
	s.init()
	rangetable.Visit(rt, func(r rune) {
		s.members[Symbol(r)] = struct{}{}
	})

	return s
}

// AddFunc inserts every valid scalar in the full code-point range
// U+0000..U+10FFFF for which pred returns true. Surrogate halves are never
// offered to pred. A nil pred is a no-op. Returns the receiver for chaining.
// Complexity: O(unicode.MaxRune), one pass over the code space.
func (s *Set) AddFunc(pred func(rune) bool) *Set {
	if pred == nil {
		return s
	}
	s.init()
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if !utf8.ValidRune(r) {
			continue
		}
		if pred(r) {
			s.members[Symbol(r)] = struct{}{}
		}
	}

	return s
}

// Remove deletes the given Symbols; absent members are ignored.
// Returns the receiver for chaining.
// Complexity: O(len(syms)).
func (s *Set) Remove(syms ...Symbol) *Set {
	for _, sym := range syms {
		delete(s.members, sym)
	}

	return s
}

// Clear removes every member, leaving an empty but usable Set.
// Complexity: O(1).
func (s *Set) Clear() *Set {
	s.members = make(map[Symbol]struct{})

	return s
}

// Filter removes every member for which keep returns false. A nil keep
// removes nothing. Returns the receiver for chaining.
// Complexity: O(Len()).
func (s *Set) Filter(keep func(Symbol) bool) *Set {
	if keep == nil {
		return s
	}
	for sym := range s.members {
		if !keep(sym) {
			delete(s.members, sym)
		}
	}

	return s
}

// Contains reports whether sym is a member of s.
// Complexity: O(1).
func (s *Set) Contains(sym Symbol) bool {
	if s == nil {
		return false
	}
	_, ok := s.members[sym]

	return ok
}

// Len returns the number of distinct Symbols in s.
// Complexity: O(1).
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.members)
}

// Equal reports whether s and other hold exactly the same Symbols.
// Nil and empty Sets compare equal. Identity is irrelevant.
// Complexity: O(Len()).
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil || other == nil {
		return true // both empty
	}
	for sym := range s.members {
		if _, ok := other.members[sym]; !ok {
			return false
		}
	}

	return true
}

// Symbols returns the members in ascending code-point order.
// The result is a fresh slice; mutating it does not affect s.
// Complexity: O(n log n).
func (s *Set) Symbols() []Symbol {
	if s == nil {
		return nil
	}
	out := make([]Symbol, 0, len(s.members))
	for sym := range s.members {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Clone returns an independent copy of s.
// Complexity: O(Len()).
func (s *Set) Clone() *Set {
	out := &Set{members: make(map[Symbol]struct{}, s.Len())}
	if s == nil {
		return out
	}
	for sym := range s.members {
		out.members[sym] = struct{}{}
	}

	return out
}

// Table returns the members as a unicode.RangeTable, enabling stdlib
// predicates (unicode.Is, unicode.In) over the Set's contents.
// Complexity: O(n log n).
func (s *Set) Table() *unicode.RangeTable {
	syms := s.Symbols()
	rs := make([]rune, len(syms))
	for i, sym := range syms {
		rs[i] = rune(sym)
	}

	return rangetable.New(rs...)
}

// String returns the members concatenated in ascending code-point order.
// Intended for debugging and test diagnostics.
// Complexity: O(n log n).
func (s *Set) String() string {
	var b strings.Builder
	for _, sym := range s.Symbols() {
		b.WriteRune(rune(sym))
	}

	return b.String()
}
