// Package generator - the per-symbol selection engine.
//
// One engine value services exactly one Generate call. It owns the
// configuration snapshot, the in-progress symbol buffer, the per-symbol
// occurrence counts and the outstanding required obligations; nothing here
// is shared, so the engine needs no locking.
//
// Each of the length iterations:
//
//	1. computes per-group availability under the repetition cap,
//	2. verifies every outstanding required group is still satisfiable,
//	3. draws (group, symbol, position): obligations first, then a
//	   weight-proportional draw over available groups,
//	4. filters the candidate through the rule chain; a rejection redraws
//	   group, symbol and position without touching the buffer,
//	5. commits: inserts the symbol, counts it, settles one obligation.
//
// Determinism: for one seed and one configuration the draw sequence is
// fixed. Group iteration follows registration order, symbol slices are
// pre-sorted by code point, and obligation removal is order-preserving.

package generator

import "github.com/katalvlaran/passgen/symbol"

// engine is the single-run generation state.
type engine struct {
	// Snapshot (immutable during the run).
	groups []runGroup
	rules  []Rule
	src    Source

	// Request.
	length  int
	maxReps int
	capped  bool

	// Progress.
	buf         []symbol.Symbol       // in-progress password
	counts      map[symbol.Symbol]int // occurrences committed so far
	outstanding []int                 // group index per unmet required unit
}

// run executes the fixed length-iteration loop and freezes the result.
// Validation must have succeeded first.
// Complexity: O(length × (total symbols + length)) absent rule retries.
func (e *engine) run() (Password, error) {
	e.buf = make([]symbol.Symbol, 0, e.length)
	e.counts = make(map[symbol.Symbol]int, e.length)

	for i := 0; i < e.length; i++ {
		if err := e.place(); err != nil {
			return Password{}, err // fail-fast: no partial output
		}
	}

	return NewPassword(e.buf), nil
}

// place commits exactly one symbol, or reports why no symbol can satisfy an
// outstanding obligation anymore.
func (e *engine) place() error {
	// Availability is fixed for the whole iteration: rejections redraw the
	// candidate but never mutate the buffer, so nothing can change it.
	avail := e.availability()

	if err := e.checkRequired(avail); err != nil {
		return err
	}

	for {
		gi, obligation := e.pickGroup(avail)
		syms := avail[gi]
		sym := syms[e.src.Intn(len(syms))]
		pos := e.src.Intn(len(e.buf) + 1)

		if !e.accepted(sym, pos) {
			continue // rejected: a fresh (group, symbol, position) draw
		}

		e.insert(sym, pos)
		if obligation >= 0 {
			e.settleObligation(obligation)
		}

		return nil
	}
}

// availability returns, per group, the symbols still under the repetition
// cap. Without a cap every group exposes its full sorted snapshot (shared,
// not copied).
// Complexity: O(total symbols) when capped, O(groups) otherwise.
func (e *engine) availability() [][]symbol.Symbol {
	out := make([][]symbol.Symbol, len(e.groups))
	if !e.capped {
		for gi, grp := range e.groups {
			out[gi] = grp.symbols
		}

		return out
	}

	for gi, grp := range e.groups {
		var open []symbol.Symbol
		for _, sym := range grp.symbols {
			if e.counts[sym] < e.maxReps {
				open = append(open, sym)
			}
		}
		out[gi] = open
	}

	return out
}

// checkRequired fails when the repetition cap has emptied a group that
// still holds an unmet required obligation. Only a capped run can trip
// this: uncapped groups never lose symbols.
// Complexity: O(len(outstanding)).
func (e *engine) checkRequired(avail [][]symbol.Symbol) error {
	if !e.capped {
		return nil
	}
	for _, gi := range e.outstanding {
		if len(avail[gi]) == 0 {
			return ErrRequiredExhausted
		}
	}

	return nil
}

// pickGroup selects the group for this candidate. Outstanding obligations
// take strict priority and are drawn uniformly (a group owed two symbols is
// twice as likely as one owed one); once obligations are settled, groups
// are drawn with probability proportional to their weight among groups that
// still have available symbols.
//
// Returns the group index and the obligation index served (-1 when the
// pick was the weighted branch).
func (e *engine) pickGroup(avail [][]symbol.Symbol) (int, int) {
	if len(e.outstanding) > 0 {
		j := e.src.Intn(len(e.outstanding))

		return e.outstanding[j], j
	}

	// Weighted draw via prefix walk: one uniform draw over the summed
	// weights of available groups, then subtract until it lands.
	var total int
	for gi, syms := range avail {
		if len(syms) > 0 {
			total += e.groups[gi].weight
		}
	}
	x := e.src.Intn(total)
	for gi, syms := range avail {
		if len(syms) == 0 {
			continue
		}
		x -= e.groups[gi].weight
		if x < 0 {
			return gi, -1
		}
	}

	// Unreachable: with the cap validated, committed < length ≤
	// cap × distinct symbols guarantees an under-cap symbol, hence an
	// available group; without a cap every group is available.
	panic("generator: no available group")
}

// accepted runs the rule chain in registration order. The Password handed
// to rules is a zero-copy view of the in-progress buffer, valid only for
// the duration of each call.
// Complexity: O(rules × rule cost).
func (e *engine) accepted(sym symbol.Symbol, pos int) bool {
	if len(e.rules) == 0 {
		return true
	}
	current := Password{syms: e.buf}
	for _, rule := range e.rules {
		if !rule(current, sym, pos) {
			return false
		}
	}

	return true
}

// insert places sym at pos, shifting later symbols right, and counts it.
// Complexity: O(len(buf)).
func (e *engine) insert(sym symbol.Symbol, pos int) {
	e.buf = append(e.buf, 0)
	copy(e.buf[pos+1:], e.buf[pos:])
	e.buf[pos] = sym
	e.counts[sym]++
}

// settleObligation removes the served obligation, preserving slice order so
// the draw sequence stays reproducible for seeded sources.
// Complexity: O(len(outstanding)).
func (e *engine) settleObligation(j int) {
	e.outstanding = append(e.outstanding[:j], e.outstanding[j+1:]...)
}
