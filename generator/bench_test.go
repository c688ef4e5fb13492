// Package generator_test provides benchmarks for password generation.
package generator_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/passgen/generator"
	"github.com/katalvlaran/passgen/symbol"
)

// benchPool is a realistic mixed alphabet shared by the benchmarks.
func benchPool() (*symbol.Set, *symbol.Set, *symbol.Set) {
	lower := symbol.FromString("abcdefghijklmnopqrstuvwxyz")
	digits := symbol.FromString("0123456789")
	punct := symbol.FromString("!@#$%^&*")

	return lower, digits, punct
}

// BenchmarkGenerate_Short measures a typical 12-symbol request on a seeded
// source (no entropy syscalls in the loop).
func BenchmarkGenerate_Short(b *testing.B) {
	lower, digits, punct := benchPool()
	g := generator.NewGenerator(generator.WithSeed(1)).
		AddGroup(lower, generator.WithWeight(4)).
		AddGroup(digits, generator.WithRequired(2)).
		AddGroup(punct)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(12)
	}
}

// BenchmarkGenerate_Long measures a 64-symbol request, dominated by the
// positional insertions.
func BenchmarkGenerate_Long(b *testing.B) {
	lower, digits, punct := benchPool()
	g := generator.NewGenerator(generator.WithSeed(1)).
		AddGroup(lower, generator.WithWeight(4)).
		AddGroup(digits).
		AddGroup(punct)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(64)
	}
}

// BenchmarkGenerate_Crypto measures the same short request on the default
// crypto source, exposing the entropy-read overhead.
func BenchmarkGenerate_Crypto(b *testing.B) {
	lower, digits, punct := benchPool()
	g := generator.NewGenerator().
		AddGroup(lower, generator.WithWeight(4)).
		AddGroup(digits).
		AddGroup(punct)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(12)
	}
}

// BenchmarkGenerate_MaxRepetitions measures the per-iteration availability
// filtering a repetition cap adds.
func BenchmarkGenerate_MaxRepetitions(b *testing.B) {
	lower, digits, _ := benchPool()
	g := generator.NewGenerator(generator.WithSeed(1)).
		AddGroup(lower).
		AddGroup(digits)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(24, generator.WithMaxRepetitions(2))
	}
}

// BenchmarkGenerate_Rules measures the rule-chain overhead with both stock
// predicates attached.
func BenchmarkGenerate_Rules(b *testing.B) {
	lower, digits, _ := benchPool()
	g := generator.NewGenerator(generator.WithSeed(1)).
		AddGroup(lower).
		AddGroup(digits).
		AddRule(generator.NoAdjacentRepeats()).
		AddRule(generator.LimitAny(digits, 6))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(16)
	}
}

// BenchmarkAddGroup measures registration cost including the content
// equality scan against already-registered groups.
func BenchmarkAddGroup(b *testing.B) {
	sets := make([]*symbol.Set, 100)
	for i := range sets {
		sets[i] = symbol.FromString(fmt.Sprintf("group-%03d", i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := generator.NewGenerator(generator.WithSeed(1))
		for _, s := range sets {
			g.AddGroup(s, generator.WithRequired(0))
		}
	}
}
