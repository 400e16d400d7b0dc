package source

import (
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	// lineTol is the vertical distance within which two fragments are
	// considered to share a text line.
	lineTol = 2.0

	// blockGap is the largest vertical gap between consecutive lines of
	// one block; a bigger gap starts a new block.
	blockGap = 6.0
)

// fragment is one positioned text run in top-down page coordinates.
type fragment struct {
	x, top, bottom, width float64
	text                  string
}

func (f fragment) rect() Rect {
	return Rect{X0: f.x, Y0: f.top, X1: f.x + f.width, Y1: f.bottom}
}

// toFragments converts raw content-stream text runs to fragments, flipping
// the PDF bottom-up y-axis. The vertical extent is approximated from the
// font size around the baseline.
func toFragments(texts []pdf.Text, pageH float64) []fragment {
	frags := make([]fragment, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		size := t.FontSize
		if size <= 0 {
			size = 10
		}
		frags = append(frags, fragment{
			x:      t.X,
			top:    pageH - t.Y - size,
			bottom: pageH - t.Y + size*0.25,
			width:  t.W,
			text:   t.S,
		})
	}
	return frags
}

// line is a horizontal run of fragments sharing a baseline. text carries
// inferred inter-word spaces; offsets holds each fragment's byte offset
// within text, which token search maps back to rectangles.
type line struct {
	rect    Rect
	frags   []fragment
	offsets []int
	text    string
}

// buildLines groups fragments by baseline proximity and assembles each
// line's text left to right.
func buildLines(frags []fragment) []line {
	if len(frags) == 0 {
		return nil
	}

	sorted := make([]fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].top != sorted[j].top {
			return sorted[i].top < sorted[j].top
		}
		return sorted[i].x < sorted[j].x
	})

	var lines []line
	group := []fragment{sorted[0]}
	groupTop := sorted[0].top
	for _, f := range sorted[1:] {
		if f.top-groupTop > lineTol {
			lines = append(lines, newLine(group))
			group = nil
			groupTop = f.top
		}
		group = append(group, f)
	}
	lines = append(lines, newLine(group))
	return lines
}

// newLine assembles one line from its fragments. A space is inserted when
// the horizontal gap between adjacent fragments exceeds a fraction of the
// line height, since content streams carry no explicit word breaks.
func newLine(frags []fragment) line {
	sort.SliceStable(frags, func(i, j int) bool { return frags[i].x < frags[j].x })

	l := line{rect: frags[0].rect(), frags: frags}
	var b strings.Builder
	prevRight := math.Inf(-1)
	for _, f := range frags {
		if b.Len() > 0 && f.x-prevRight > 0.2*(f.bottom-f.top) {
			b.WriteByte(' ')
		}
		l.offsets = append(l.offsets, b.Len())
		b.WriteString(f.text)
		prevRight = f.x + f.width
		l.rect = l.rect.union(f.rect())
	}
	l.text = b.String()
	return l
}

// matchRect returns the union rectangle of the fragments covering the byte
// range [start, end) of the line text.
func (l line) matchRect(start, end int) (Rect, bool) {
	var r Rect
	found := false
	for i, f := range l.frags {
		fragStart := l.offsets[i]
		fragEnd := fragStart + len(f.text)
		if fragEnd <= start || fragStart >= end {
			continue
		}
		if !found {
			r = f.rect()
			found = true
		} else {
			r = r.union(f.rect())
		}
	}
	return r, found
}

// buildBlocks merges top-sorted lines into blocks wherever the vertical
// gap stays within blockGap, mirroring how paginated text naturally
// clusters into paragraphs and equation groups.
func buildBlocks(lines []line) []Region {
	var regions []Region
	var block []line

	flush := func() {
		if len(block) == 0 {
			return
		}
		r := block[0].rect
		texts := make([]string, len(block))
		for i, l := range block {
			r = r.union(l.rect)
			texts[i] = l.text
		}
		regions = append(regions, Region{Rect: r, Text: strings.Join(texts, "\n")})
		block = nil
	}

	for _, l := range lines {
		if len(block) > 0 && l.rect.Y0-block[len(block)-1].rect.Y1 > blockGap {
			flush()
		}
		block = append(block, l)
	}
	flush()
	return regions
}
