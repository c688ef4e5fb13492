package generator

import "errors"

// Sentinel errors for password generation. Branch with errors.Is; none of
// them is ever wrapped with dynamic text at the definition site.
//
// ErrNotConfigured is the only "not configured" condition; the rest are
// invalid-argument conditions. Every one of them fires before any symbol of
// the affected call becomes visible: Generate never returns a partial
// Password next to an error.
var (
	// ErrNotConfigured indicates Generate found no symbol group to draw
	// from: none was registered, or every registered Set has been emptied
	// since registration.
	ErrNotConfigured = errors.New("generator: no symbol groups configured")

	// ErrBadLength indicates a requested length ≤ 0. It takes priority over
	// every other validation, including ErrNotConfigured.
	ErrBadLength = errors.New("generator: length must be positive")

	// ErrBadRepetitions indicates WithMaxRepetitions with a bound ≤ 0.
	ErrBadRepetitions = errors.New("generator: max repetitions must be positive")

	// ErrNotEnoughSymbols indicates the repetition cap cannot cover the
	// requested length: ceil(length/cap) exceeds the distinct symbols
	// registered across all groups.
	ErrNotEnoughSymbols = errors.New("generator: not enough distinct symbols for repetition cap")

	// ErrRequiredExceedsLength indicates the summed required counts of all
	// groups exceed the requested length.
	ErrRequiredExceedsLength = errors.New("generator: required symbol count exceeds length")

	// ErrRequiredExhausted indicates the repetition cap consumed every
	// symbol of a group that still holds an unmet required count. Unlike
	// the up-front checks this can only surface mid-generation, because it
	// depends on which symbols earlier iterations committed.
	ErrRequiredExhausted = errors.New("generator: repetition cap exhausted a required group")
)
