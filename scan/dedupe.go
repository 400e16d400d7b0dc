package scan

import (
	"math"

	"github.com/mvolk/eqsift/source"
)

// Candidate is a region that passed the classifier, gathered in discovery
// order while scanning pages sequentially.
type Candidate struct {
	Page    int    // 1-based
	Text    string // normalized
	Rect    source.Rect
	Context string
}

// Key uniquely identifies one logical equation: exact page, exact
// normalized text, and the bounding box rounded to one decimal place per
// coordinate. Rounding absorbs sub-point jitter between independent
// detections of the same physical region; the original rect stays on the
// candidate untouched.
type Key struct {
	Page           int
	Text           string
	X0, Y0, X1, Y1 float64
}

// NewKey builds the deduplication key for a detection.
func NewKey(page int, text string, r source.Rect) Key {
	return Key{
		Page: page,
		Text: Normalize(text),
		X0:   round1(r.X0),
		Y0:   round1(r.Y0),
		X1:   round1(r.X1),
		Y1:   round1(r.Y1),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Dedupe removes exact duplicates from a discovery-order candidate list,
// preserving first-occurrence order; later duplicates are silently dropped
// along with their contexts. The same text at a genuinely different
// location or page is kept: position, not just text, distinguishes
// equations that look identical.
func Dedupe(candidates []Candidate) []Candidate {
	seen := make(map[Key]struct{}, len(candidates))
	unique := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		k := NewKey(c.Page, c.Text, c.Rect)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}
