// Package passgen generates randomized passwords from composable symbol
// groups — with guaranteed minimums, weighted draws, repetition caps and
// pluggable acceptance rules.
//
// 🚀 What is passgen?
//
//	A small, thread-safe library that brings together:
//		• Symbol sets: build alphabets from runes, strings, ranges,
//		  patterns ("a-z!@#") or Unicode range tables
//		• Weighted groups: each symbol group pulls its share of the
//		  password proportional to its weight
//		• Required minimums: every group can demand a guaranteed count
//		• Repetition caps: bound how often any single symbol may appear
//		• Rule chains: veto candidate symbols with custom predicates
//		  over adjacency, totals, position, anything callable
//		• Crypto-strong by default, seeded and reproducible on demand
//
// ✨ Why choose passgen?
//
//   - Beginner-friendly – two calls from zero to password
//   - Rock-solid guarantees – fail-fast validation, R/W locks, no partial output
//   - Deterministic when you need it – one seed, one password, every time
//   - Extensible – acceptance rules are plain functions over the draft
//
// Under the hood, everything is organized under two subpackages:
//
//	symbol/    — Symbol and Set: alphabet construction & queries
//	generator/ — Generator, Password, Rule: the generation engine
//
// Quick taste:
//
//	lower := symbol.FromString("abcdefghijklmnopqrstuvwxyz")
//	digits := symbol.FromString("0123456789")
//
//	g := generator.NewGenerator().
//		AddGroup(lower, generator.WithWeight(3)).
//		AddGroup(digits, generator.WithRequired(2)).
//		AddRule(generator.NoAdjacentRepeats())
//
//	pw, err := g.Generate(16, generator.WithMaxRepetitions(2))
//
// Dive into README.md for full examples and the examples/ directory for
// runnable scenarios.
//
//	go get github.com/katalvlaran/passgen
package passgen
