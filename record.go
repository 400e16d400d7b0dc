package eqsift

import "github.com/mvolk/eqsift/source"

// Record is the final user-facing unit: a deduplicated, identified equation
// enriched with a context snippet and a snapshot image path.
type Record struct {
	// ID is sequential, 1-based, assigned after deduplication in
	// discovery order. IDs are dense and never reused.
	ID int `json:"id"`

	// Page is the 1-based page number the equation was found on.
	Page int `json:"page"`

	// Text is the normalized equation text.
	Text string `json:"text"`

	// Context holds the neighboring text snippets for human review.
	Context string `json:"context,omitempty"`

	// Rect is the bounding box in page points, y-axis downward.
	Rect source.Rect `json:"rect"`

	// ImagePath points at the rendered snapshot, empty when rendering
	// was disabled or failed for this record.
	ImagePath string `json:"image_path,omitempty"`
}

// Label identifies an equation by a literal token (typically a trailing
// equation number such as "(34)") instead of by heuristic discovery.
type Label struct {
	Token   string `json:"token"`
	Caption string `json:"caption,omitempty"`
}

// PageRange is a 1-based inclusive page interval. A zero Last means
// "through the end of the document".
type PageRange struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

// clamp restricts the range to a document with n pages.
func (pr PageRange) clamp(n int) (first, last int) {
	first, last = pr.First, pr.Last
	if first < 1 {
		first = 1
	}
	if last < 1 || last > n {
		last = n
	}
	return first, last
}
