// Package symbol_test verifies the compact range-pattern syntax accepted by
// Set.AddPattern: literals, ranges, escapes and all-or-nothing commits.
package symbol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/passgen/symbol"
)

// TestAddPattern_Literals verifies that plain runes are admitted verbatim.
func TestAddPattern_Literals(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern("ab_!"), "literal pattern")

	assert.Equal(t, 4, s.Len(), "four literals")
	assert.Equal(t, "!_ab", s.String(), "members in code-point order")
}

// TestAddPattern_Ranges verifies inclusive lo-hi expansion and multiple
// ranges in one pattern.
func TestAddPattern_Ranges(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern("a-f0-9"), "two ranges")

	assert.Equal(t, 16, s.Len(), "6 letters + 10 digits")
	assert.True(t, s.Contains('a'), "range low bound")
	assert.True(t, s.Contains('f'), "range high bound")
	assert.True(t, s.Contains('0'), "second range low bound")
	assert.True(t, s.Contains('9'), "second range high bound")
	assert.False(t, s.Contains('g'), "just past the range")
}

// TestAddPattern_UnicodeRange verifies ranges over multi-byte code points.
func TestAddPattern_UnicodeRange(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern("α-ε"), "Greek range")

	assert.Equal(t, 5, s.Len(), "α β γ δ ε")
	assert.Equal(t, "αβγδε", s.String(), "contiguous Greek letters")
}

// TestAddPattern_DashLiterals verifies that a leading or trailing dash is a
// literal, not a range operator.
func TestAddPattern_DashLiterals(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern("-az-"), "dash first and last")

	assert.Equal(t, 3, s.Len(), "dash, a, z")
	assert.True(t, s.Contains('-'), "leading dash is a literal")
	assert.True(t, s.Contains('a'), "Contains(a)")
	assert.True(t, s.Contains('z'), "Contains(z)")
	assert.False(t, s.Contains('b'), "a-z range must not have been expanded")
}

// TestAddPattern_Escapes verifies that a backslash turns the next rune into
// a literal, including dash and backslash themselves.
func TestAddPattern_Escapes(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern(`a\-z`), "escaped dash")
	assert.Equal(t, 3, s.Len(), "a, dash, z; no range expansion")
	assert.True(t, s.Contains('-'), "escaped dash is a literal")
	assert.False(t, s.Contains('m'), "no a..z expansion through the escape")

	s2 := symbol.NewSet()
	require.NoError(t, s2.AddPattern(`\\`), "escaped backslash")
	assert.True(t, s2.Contains('\\'), "backslash literal")
	assert.Equal(t, 1, s2.Len(), "single member")
}

// TestAddPattern_EscapedRangeEndpoint verifies that escaped runes still work
// as range endpoints.
func TestAddPattern_EscapedRangeEndpoint(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern(`\--0`), "range from escaped dash to 0")

	// U+002D '-' .. U+0030 '0' covers - . / 0.
	assert.Equal(t, 4, s.Len(), "four code points in the range")
	assert.True(t, s.Contains('-'), "low endpoint")
	assert.True(t, s.Contains('/'), "interior member")
	assert.True(t, s.Contains('0'), "high endpoint")
}

// TestAddPattern_Reversed verifies rejection of a reversed range.
func TestAddPattern_Reversed(t *testing.T) {
	s := symbol.NewSet()
	assert.ErrorIs(t, s.AddPattern("z-a"), symbol.ErrBadPattern, "reversed range must fail")
	assert.Equal(t, 0, s.Len(), "failed pattern must leave the set unchanged")
}

// TestAddPattern_DanglingEscape verifies rejection of a trailing backslash.
func TestAddPattern_DanglingEscape(t *testing.T) {
	s := symbol.NewSet()
	assert.ErrorIs(t, s.AddPattern(`ab\`), symbol.ErrBadPattern, "dangling escape must fail")
	assert.Equal(t, 0, s.Len(), "failed pattern must leave the set unchanged")
}

// TestAddPattern_Atomic verifies the all-or-nothing commit: valid items
// before the failure point must not leak into the Set.
func TestAddPattern_Atomic(t *testing.T) {
	s := symbol.FromString("x")
	require.ErrorIs(t, s.AddPattern("a-cz-a"), symbol.ErrBadPattern, "second range is reversed")

	assert.Equal(t, 1, s.Len(), "only the pre-existing member remains")
	assert.True(t, s.Contains('x'), "pre-existing member untouched")
	assert.False(t, s.Contains('a'), "the valid prefix a-c must not have been committed")
}

// TestAddPattern_Empty verifies that an empty pattern is a successful no-op.
func TestAddPattern_Empty(t *testing.T) {
	s := symbol.NewSet()
	require.NoError(t, s.AddPattern(""), "empty pattern")
	assert.Equal(t, 0, s.Len(), "no members added")
}
