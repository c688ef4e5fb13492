// Package generator - feasibility validation shared by every Generate call.
//
// Validation is one straight-line pass over the snapshot, run before any
// symbol is committed. The check order is part of the contract; callers
// observe the FIRST failing condition:
//
//	1. length ≤ 0                       → ErrBadLength (any configuration)
//	2. zero registered groups           → ErrNotConfigured
//	3. repetition cap, when requested:
//	     cap ≤ 0                        → ErrBadRepetitions
//	     ceil(length/cap) > distinct    → ErrNotEnoughSymbols
//	4. Σ required counts > length       → ErrRequiredExceedsLength
//
// A fifth condition, a required group running out of under-cap symbols,
// depends on which symbols earlier iterations committed, so it is re-checked
// every iteration by the engine (ErrRequiredExhausted) rather than here.
// Both checks are deliberately kept: collapsing them would change when
// certain inputs fail.

package generator

import "github.com/katalvlaran/passgen/symbol"

// validate runs the pre-generation pass and, on success, builds the
// outstanding-obligation list: one entry per required unit, each the index
// of its (deduplicated) group, so required counts are never double-counted
// through weighting.
// Complexity: O(total symbols) time, O(Σ required) space.
func (e *engine) validate() error {
	// Stage 1 - request sanity; precedes configuration checks by contract.
	if e.length <= 0 {
		return ErrBadLength
	}

	// Stage 2 - configuration presence.
	if len(e.groups) == 0 {
		return ErrNotConfigured
	}

	// Stage 3 - repetition-cap feasibility (only when a cap was requested).
	if e.capped {
		if e.maxReps <= 0 {
			return ErrBadRepetitions
		}
		// Even maximal reuse of every distinct symbol must cover length.
		if ceilDiv(e.length, e.maxReps) > e.distinctSymbols() {
			return ErrNotEnoughSymbols
		}
	}

	// Stage 4 - required obligations must fit the requested length.
	var total int
	for gi, grp := range e.groups {
		total += grp.required
		for k := 0; k < grp.required; k++ {
			e.outstanding = append(e.outstanding, gi)
		}
	}
	if total > e.length {
		return ErrRequiredExceedsLength
	}

	return nil
}

// distinctSymbols counts the union of symbols across all groups. Groups may
// overlap; each symbol counts once.
// Complexity: O(total symbols).
func (e *engine) distinctSymbols() int {
	seen := make(map[symbol.Symbol]struct{})
	for _, grp := range e.groups {
		for _, sym := range grp.symbols {
			seen[sym] = struct{}{}
		}
	}

	return len(seen)
}

// ceilDiv returns ⌈a/b⌉ for positive a, b.
func ceilDiv(a, b int) int { return (a + b - 1) / b }
