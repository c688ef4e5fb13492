// Package generator - functional options for the three configuration
// surfaces: Generator construction, group registration, and Generate calls.
//
// Contract:
//   - Options are functional and applied in order (later overrides earlier).
//   - Option constructors panic only on unambiguous programmer error
//     (WithSource(nil)). Values whose validity depends on the generation
//     request (weights, required counts, repetition caps) are carried
//     verbatim and judged where their contract is defined: AddGroup treats
//     weight ≤ 0 as "register nothing", Generate rejects a repetition cap
//     ≤ 0 with ErrBadRepetitions.
//   - No hidden globals; everything flows through the resolved configs.

package generator

// Deterministic defaults (named, no magic numbers).
const (
	defaultWeight   = 1 // relative sampling weight of a registered group
	defaultRequired = 1 // guaranteed occurrences of a registered group
)

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithSource sets the randomness Source the Generator draws from.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1).
func WithSource(src Source) Option {
	if src == nil {
		// Fail fast to avoid silent fallback to the crypto default.
		panic("generator: WithSource(nil)")
	}

	return func(g *Generator) { g.src = src }
}

// WithSeed equips the Generator with a deterministic seeded Source.
// Use this in tests and examples to lock outcomes; the stream is not
// cryptographically strong and not safe for concurrent Generate calls.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(g *Generator) { g.src = SeededSource(seed) }
}

// groupConfig aggregates the per-group knobs AddGroup resolves.
type groupConfig struct {
	weight   int // ≤ 0 ⇒ AddGroup registers nothing
	required int // < 0 is clamped to 0 at registration
}

// GroupOption configures one AddGroup registration.
type GroupOption func(*groupConfig)

// WithWeight sets the group's relative sampling weight (default 1).
// A weight ≤ 0 makes AddGroup register nothing, silently: the documented
// way to switch a group off without restructuring configuration code.
// Complexity: O(1).
func WithWeight(w int) GroupOption {
	return func(c *groupConfig) { c.weight = w }
}

// WithRequired sets how many symbols of the group every generated password
// must contain (default 1). Zero declares a purely optional group; negative
// values are treated as zero.
// Complexity: O(1).
func WithRequired(k int) GroupOption {
	return func(c *groupConfig) { c.required = k }
}

// newGroupConfig resolves group options over the defaults.
// Complexity: O(len(opts)).
func newGroupConfig(opts ...GroupOption) groupConfig {
	cfg := groupConfig{weight: defaultWeight, required: defaultRequired}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// generateConfig aggregates the per-call knobs Generate resolves.
type generateConfig struct {
	maxReps int  // meaningful only when capped
	capped  bool // whether a repetition cap was requested
}

// GenerateOption configures one Generate call.
type GenerateOption func(*generateConfig)

// WithMaxRepetitions caps how many times any single symbol may occur in the
// generated password. Absent this option there is no cap. A bound ≤ 0 is
// rejected by Generate with ErrBadRepetitions.
// Complexity: O(1).
func WithMaxRepetitions(n int) GenerateOption {
	return func(c *generateConfig) {
		c.maxReps = n
		c.capped = true
	}
}

// newGenerateConfig resolves call options over the defaults (no cap).
// Complexity: O(len(opts)).
func newGenerateConfig(opts ...GenerateOption) generateConfig {
	var cfg generateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
