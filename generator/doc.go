// Package generator produces randomized passwords from weighted symbol
// groups, per-group required minimums, an optional global repetition cap,
// and a caller-extensible chain of acceptance rules.
//
// The Generator is a configuration container: register groups and rules up
// front, then call Generate as many times as needed. Every Generate call
// works on a private snapshot, so configuration and generation may proceed
// concurrently from any number of goroutines.
//
// Generation model (one Generate call):
//
//  1. Snapshot groups, rules and the random source under the read lock.
//  2. Validate: positive length → configured groups → repetition-cap
//     feasibility → required-vs-length feasibility. First failure wins.
//  3. Loop exactly length times. Each iteration draws one candidate
//     (group, then symbol, then insertion position), runs it through the
//     rule chain, and on acceptance splices the symbol into the password
//     at the drawn position. A rejection redraws all three; the buffer
//     never changes on rejection.
//  4. Required obligations are served before any weighted draw: while a
//     group's required count is unmet, group selection is a uniform draw
//     over outstanding obligations. Afterwards groups are drawn with
//     probability proportional to their weight.
//
// Configuration Options (Option):
//
//	– WithSource(src Source)
//	    Replace the crypto/rand-backed default. Panics on nil.
//	– WithSeed(seed int64)
//	    Shorthand for WithSource(SeededSource(seed)): reproducible runs.
//
// Group Options (GroupOption):
//
//	– WithWeight(w int)
//	    Group's share in the weighted draw (default 1). w ≤ 0 drops the
//	    registration entirely; the group will not participate at all.
//	– WithRequired(n int)
//	    Guaranteed minimum occurrences from this group (default 1).
//	    Negative n is clamped to 0; n = 0 makes the group optional.
//
// Generate Options (GenerateOption):
//
//	– WithMaxRepetitions(max int)
//	    Global per-symbol occurrence cap for this call. max ≤ 0 fails
//	    validation with ErrBadRepetitions.
//
// Core Methods:
//
//	NewGenerator(opts ...Option) *Generator
//	AddGroup(set *symbol.Set, opts ...GroupOption) *Generator  // chainable
//	AddRule(r Rule) *Generator                                 // chainable
//	Generate(length int, opts ...GenerateOption) (Password, error)
//
// Stock Rules:
//
//	NoAdjacentRepeats() // no two equal symbols side by side
//	LimitAny(set, max)  // at most max symbols drawn from set
//	AppendOnly()        // force append-order construction
//
// Errors (first validation failure wins, in this order):
//
//	ErrBadLength             – requested length ≤ 0
//	ErrNotConfigured         – no groups registered
//	ErrBadRepetitions        – WithMaxRepetitions(≤ 0)
//	ErrNotEnoughSymbols      – cap × distinct symbols < length
//	ErrRequiredExceedsLength – Σ required > length
//	ErrRequiredExhausted     – mid-generation: cap starved a required group
//
// Determinism: with WithSeed (or any deterministic Source) the same
// configuration and length reproduce the same password, byte for byte.
// Group order follows registration order, symbol order within a group is
// sorted by code point, and each candidate consumes exactly three draws:
// group (or obligation), symbol, position.
//
// Caller obligations: rules must terminate and should accept often enough
// for progress. A chain that rejects every candidate loops forever, as
// Generate retries indefinitely rather than weaken a constraint. Sets may
// be mutated between calls (each Generate snapshots contents) but not
// during a call from another goroutine. A seeded Source shared across
// concurrent Generate calls must be wrapped in Locked.
package generator
