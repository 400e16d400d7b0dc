package scan

import (
	"sort"

	"github.com/mvolk/eqsift/source"
)

// ReadingOrder returns a copy of regions sorted into reading order: top
// edge ascending, then left edge ascending. This approximates top-to-bottom,
// left-to-right reading for single and simple multi-column layouts. The
// sort is stable, so regions with identical keys keep their original
// relative order. Neighbor context depends on this total order.
func ReadingOrder(regions []source.Region) []source.Region {
	ordered := make([]source.Region, len(regions))
	copy(ordered, regions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Rect.Y0 != ordered[j].Rect.Y0 {
			return ordered[i].Rect.Y0 < ordered[j].Rect.Y0
		}
		return ordered[i].Rect.X0 < ordered[j].Rect.X0
	})
	return ordered
}
