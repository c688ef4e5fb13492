// Package symbol provides the Symbol value type and the Set container that
// password generation draws from.
//
// 🚀 What is a Symbol?
//
//	A Symbol is a single character identified by its Unicode code point.
//	Two Symbols are equal iff their code points are equal — nothing else
//	(no normalization, no case folding, no locale rules). Symbol is a
//	comparable value type, so it works directly as a map key and with ==.
//
// ✨ What is a Set?
//
//	A Set is an unordered, deduplicated collection of Symbols with
//	content-based equality: two Sets are equal iff their memberships are
//	equal, regardless of how they were built. Population helpers cover
//	every common way to describe a character class:
//	  • Add / AddRunes / AddString — direct and bulk insertion
//	  • AddRange(lo, hi)           — inclusive code-point ranges
//	  • AddPattern("a-z0-9_")      — compact range patterns with \-escapes
//	  • AddTable(rt)               — stdlib unicode.RangeTable interop
//	  • AddFunc(pred)              — predicate over the full code-point range
//	  • Remove / Clear / Filter    — pruning the other way
//
// Determinism:
//
//	Symbols() enumerates members in ascending code-point order. Every
//	consumer that needs reproducible iteration (seeded generation, tests,
//	golden comparisons) relies on that ordering.
//
// Concurrency:
//
//	Set is NOT safe for concurrent mutation. Build a Set, hand it to a
//	generator, and leave it alone while generation is running; the
//	generator snapshots set contents at the start of each run.
//
// Errors:
//
//	ErrInvalidCodePoint - rune outside the valid Unicode scalar range.
//	ErrBadRange         - reversed or out-of-range AddRange bounds.
//	ErrBadPattern       - malformed AddPattern input.
package symbol
