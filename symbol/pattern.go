// Package symbol: compact range-pattern parsing for Set population.

package symbol

import "unicode/utf8"

// AddPattern inserts the symbols a compact range pattern describes.
//
// Pattern syntax:
//   - plain runes are literals:           "abc_"      → a b c _
//   - lo-hi is an inclusive range:        "a-f0-9"    → a..f and 0..9
//   - backslash escapes the next rune:    `a\-z`      → a - z (no range)
//   - a '-' first or last is a literal:   "-az-"      → - a z
//
// Surrogate halves inside a range are skipped silently. The parse is
// all-or-nothing: on error the Set is left unchanged.
//
// Returns ErrBadPattern for a dangling escape or a reversed range ("z-a").
// Complexity: O(len(pattern) + total range width).
func (s *Set) AddPattern(pattern string) error {
	syms, err := parsePattern(pattern)
	if err != nil {
		return err
	}
	s.Add(syms...)

	return nil
}

// parsePattern expands pattern into the symbols it denotes without touching
// any Set state, so callers can commit atomically.
func parsePattern(pattern string) ([]Symbol, error) {
	rs := []rune(pattern)
	out := make([]Symbol, 0, len(rs))

	var i int
	for i < len(rs) {
		lo, n, err := patternItem(rs, i)
		if err != nil {
			return nil, err
		}
		i += n

		// Range form: an unescaped '-' followed by at least one more rune.
		// A trailing '-' falls through and is treated as a literal.
		if i < len(rs) && rs[i] == '-' && i+1 < len(rs) {
			hi, m, err := patternItem(rs, i+1)
			if err != nil {
				return nil, err
			}
			if lo > hi {
				return nil, ErrBadPattern // reversed range
			}
			i += 1 + m
			for r := lo; r <= hi; r++ {
				if !utf8.ValidRune(r) {
					continue // surrogate gap
				}
				out = append(out, Symbol(r))
			}

			continue
		}

		out = append(out, Symbol(lo))
	}

	return out, nil
}

// patternItem reads one literal rune at position i, honoring backslash
// escapes. Returns the rune and how many input runes were consumed.
func patternItem(rs []rune, i int) (rune, int, error) {
	if rs[i] == '\\' {
		if i+1 >= len(rs) {
			return 0, 0, ErrBadPattern // dangling escape
		}

		return rs[i+1], 2, nil
	}

	return rs[i], 1, nil
}
