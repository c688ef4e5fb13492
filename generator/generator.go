// Package generator: the Generator configuration surface.
//
// This file owns the mutable state (registered groups, the rule chain and
// the randomness Source) and the locking discipline around it. A single
// RWMutex guards groups and rules: mutators take the write lock, Generate
// takes the read lock only long enough to snapshot, so configuration stays
// consistent for each run while concurrent runs never block one another.
// The selection algorithm itself lives in engine.go; validation in
// validate.go.

package generator

import (
	"sync"

	"github.com/katalvlaran/passgen/symbol"
)

// groupEntry is one registered group: a Set reference plus its sampling
// weight and required occurrence count. Entries are deduplicated by Set
// content equality; weight is a plain field, never entry duplication, so a
// required count can never be double-counted through weighting.
type groupEntry struct {
	set      *symbol.Set
	weight   int // > 0 by registration contract
	required int // ≥ 0 by registration contract
}

// runGroup is the per-run form of a groupEntry: symbols are materialized
// into an ascending code-point slice at snapshot time, so one run observes
// stable group contents even if the caller rebuilds sets afterwards.
type runGroup struct {
	set      *symbol.Set
	symbols  []symbol.Symbol // sorted; never mutated during the run
	weight   int
	required int
}

// Generator produces randomized passwords from registered symbol groups.
//
// Configuration (AddGroup, AddRule) and Generate may be called from
// independent goroutines: every Generate call snapshots the configuration
// under the lock and then runs on the snapshot alone.
//
// The zero value is NOT usable; construct with NewGenerator.
type Generator struct {
	mu     sync.RWMutex // guards groups and rules
	groups []groupEntry
	rules  []Rule
	src    Source // immutable after construction
}

// NewGenerator returns a Generator drawing from CryptoSource unless a
// different Source is configured via WithSource or WithSeed.
// Complexity: O(len(opts)).
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{src: CryptoSource()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddGroup registers a symbol group. Chainable, never fails; instead the
// call registers nothing when:
//   - set is nil or empty,
//   - an Equal set is already registered (later weight/required values are
//     ignored; first registration wins),
//   - the resolved weight is ≤ 0.
//
// Defaults: weight 1, required 1. A negative required count is recorded
// as 0. The Set is referenced, not copied: do not mutate it concurrently
// with Generate.
// Complexity: O(existing groups × set size) for the equality scan.
func (g *Generator) AddGroup(set *symbol.Set, opts ...GroupOption) *Generator {
	if set.Len() == 0 {
		return g // nothing to draw from
	}
	cfg := newGroupConfig(opts...)
	if cfg.weight <= 0 {
		return g // documented off-switch
	}
	if cfg.required < 0 {
		cfg.required = 0
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for _, entry := range g.groups {
		if entry.set.Equal(set) {
			return g // equal content already registered
		}
	}
	g.groups = append(g.groups, groupEntry{set: set, weight: cfg.weight, required: cfg.required})

	return g
}

// AddRule appends an acceptance Rule to the chain. Chainable; nil is a
// no-op. Rules are evaluated in registration order on every candidate.
// Complexity: O(1) amortized.
func (g *Generator) AddRule(r Rule) *Generator {
	if r == nil {
		return g
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.rules = append(g.rules, r)

	return g
}

// Generate produces one password of the requested length, honoring every
// registered group's weight and required count, the optional
// WithMaxRepetitions cap, and the rule chain.
//
// Generate either returns a complete Password or the zero Password with one
// of the package sentinels (see errors.go); it never returns partial output.
// Concurrent Generate calls are independent after the snapshot step, but a
// seeded Source shared between them must be wrapped in Locked by the caller.
// Complexity: expected O(length²) from positional insertion, plus rule
// retries, which are unbounded under an adversarial rule chain.
func (g *Generator) Generate(length int, opts ...GenerateOption) (Password, error) {
	cfg := newGenerateConfig(opts...)

	e := &engine{
		length:  length,
		maxReps: cfg.maxReps,
		capped:  cfg.capped,
	}
	e.groups, e.rules, e.src = g.snapshot()

	if err := e.validate(); err != nil {
		return Password{}, err
	}

	return e.run()
}

// snapshot copies the current configuration under the read lock. Group
// symbol contents are materialized here (sorted) so the run is immune both
// to later configuration calls and to later Set mutation by the caller.
// A group whose Set was emptied since registration is dropped from the run,
// mirroring AddGroup's refusal of empty sets, so every group the engine
// sees has at least one symbol.
// Complexity: O(total symbols × log) for the sorted materialization.
func (g *Generator) snapshot() ([]runGroup, []Rule, Source) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	groups := make([]runGroup, 0, len(g.groups))
	for _, entry := range g.groups {
		syms := entry.set.Symbols()
		if len(syms) == 0 {
			continue // emptied since registration: nothing to draw from
		}
		groups = append(groups, runGroup{
			set:      entry.set,
			symbols:  syms,
			weight:   entry.weight,
			required: entry.required,
		})
	}
	rules := make([]Rule, len(g.rules))
	copy(rules, g.rules)

	return groups, rules, g.src
}
