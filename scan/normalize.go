// Package scan holds the decision-making core of the pipeline: text
// normalization, the equation classifier, reading-order sequencing, neighbor
// context building, and cross-page deduplication. Everything here is a pure
// function over in-memory values; I/O stays in the collaborators.
package scan

import "strings"

// Normalize returns the canonical form of raw region text: runs of
// whitespace (including newlines) collapse to single spaces, leading and
// trailing whitespace is trimmed, and the Unicode minus sign becomes the
// ASCII hyphen-minus. Normalize is total and idempotent; all downstream
// text comparisons operate on this form.
func Normalize(text string) string {
	t := strings.Join(strings.Fields(text), " ")
	return strings.ReplaceAll(t, "−", "-")
}
