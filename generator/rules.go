package generator

import "github.com/katalvlaran/passgen/symbol"

// Rule is an acceptance predicate evaluated for every candidate placement.
//
// current is the password built so far, WITHOUT the candidate. candidate
// is the symbol about to be inserted, position the index it would occupy
// (0..current.Len(); existing symbols from position onward shift right).
// Return true to accept, false to force a fresh draw of group, symbol and
// position.
//
// Contract:
//   - The current view is only valid for the duration of the call; do not
//     retain it.
//   - Rules must terminate, and the chain as a whole must eventually accept
//     some candidate for every reachable state: an always-rejecting chain
//     makes Generate spin forever (see package doc).
//   - Later insertions may land before position, so a Rule constrains the
//     construction step it sees, not the final index of the symbol.
type Rule func(current Password, candidate symbol.Symbol, position int) bool

// NoAdjacentRepeats returns a Rule that rejects a candidate equal to either
// symbol it would touch: the one ending up to its left and the one pushed to
// its right. Since every adjacency in the final text is created by some
// insertion, checking both neighbors at each step keeps the finished
// password free of equal adjacent symbols.
// Complexity per evaluation: O(1).
func NoAdjacentRepeats() Rule {
	return func(current Password, candidate symbol.Symbol, position int) bool {
		if position > 0 && current.At(position-1) == candidate {
			return false // equal left neighbor
		}
		if position < current.Len() && current.At(position) == candidate {
			return false // equal right neighbor after the shift
		}

		return true
	}
}

// LimitAny returns a Rule that caps how many symbols of set the password
// may hold: a candidate from set is rejected once max of them are already
// present. The count only grows during construction, so the bound is sound
// for the finished password too. max must be ≥ 1 when set overlaps every
// registered group, or generation cannot complete.
// Complexity per evaluation: O(current.Len()).
func LimitAny(set *symbol.Set, max int) Rule {
	return func(current Password, candidate symbol.Symbol, _ int) bool {
		if !set.Contains(candidate) {
			return true
		}

		return current.CountAny(set) < max
	}
}

// AppendOnly returns a Rule that admits only position == current.Len(),
// forcing strictly left-to-right construction. Useful when later Rules
// reason about prefixes.
// Complexity per evaluation: O(1).
func AppendOnly() Rule {
	return func(current Password, _ symbol.Symbol, position int) bool {
		return position == current.Len()
	}
}
