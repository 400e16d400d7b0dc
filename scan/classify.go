package scan

import (
	"strings"
	"unicode/utf8"
)

// Options are the caller-supplied classifier thresholds.
type Options struct {
	// MinLen is the minimum normalized length, in runes. Shorter strings
	// cannot carry a meaningful relation.
	MinLen int

	// RequireRelational demands an explicit relational operator. Most
	// genuine equations in datasheet-class documents use one; arithmetic
	// glyphs alone appear too often in ordinary prose.
	RequireRelational bool
}

// Glyph sets the classifier keys on. Kept intentionally strict so plain
// specs and prose do not classify as equations.
const (
	mathHints       = "=≤≥≈≠/∑√^"
	relationalHints = "=≤≥≈≠"
	strongHints     = "=/∑√"
)

// proseWordLimit is the word count at which a hint-bearing region is
// still rejected as prose unless a strong hint glyph appears literally.
// Empirically tuned on datasheet scans, not a principled boundary.
const proseWordLimit = 16

// IsEquation reports whether a text region looks like a mathematical
// equation rather than prose. It is stateless and reproducible: identical
// input and thresholds always agree.
func IsEquation(text string, opts Options) bool {
	t := Normalize(text)
	if utf8.RuneCountInString(t) < opts.MinLen {
		return false
	}
	if !strings.ContainsAny(t, mathHints) {
		return false
	}
	if opts.RequireRelational && !strings.ContainsAny(t, relationalHints) {
		return false
	}

	// Long word-heavy runs are prose paragraphs even when a stray glyph
	// satisfied the hint check above.
	if len(strings.Fields(t)) >= proseWordLimit && !strings.ContainsAny(t, strongHints) {
		return false
	}

	// A variable-like token plus quantitative content. Excludes pure
	// symbol soup and prose with no numbers.
	if !strings.ContainsFunc(t, isASCIILetter) {
		return false
	}
	return strings.ContainsFunc(t, isASCIIDigit) || strings.Contains(t, "=")
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
