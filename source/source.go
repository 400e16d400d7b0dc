// Package source implements the document collaborators behind the
// extraction core: opening a paginated PDF, exposing positioned text
// regions per page, literal token search, and snapshot rendering.
package source

import (
	"errors"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrDocumentNotFound is returned when the document path does not resolve.
	ErrDocumentNotFound = errors.New("eqsift: document not found")

	// ErrDocumentCorrupt is returned when the content cannot be parsed.
	ErrDocumentCorrupt = errors.New("eqsift: document cannot be parsed")
)

// Rect is an axis-aligned rectangle in page points. The y-axis points
// downward: Y0 is the top edge, Y1 the bottom edge.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// union returns the smallest rectangle covering both r and o.
func (r Rect) union(o Rect) Rect {
	if o.X0 < r.X0 {
		r.X0 = o.X0
	}
	if o.Y0 < r.Y0 {
		r.Y0 = o.Y0
	}
	if o.X1 > r.X1 {
		r.X1 = o.X1
	}
	if o.Y1 > r.Y1 {
		r.Y1 = o.Y1
	}
	return r
}

// intersects reports whether r and o overlap.
func (r Rect) intersects(o Rect) bool {
	return r.X0 < o.X1 && o.X0 < r.X1 && r.Y0 < o.Y1 && o.Y0 < r.Y1
}

// Region is a rectangular area of a page carrying one string of text.
// Regions are immutable once read.
type Region struct {
	Rect Rect
	Text string
}

// Document is an open paginated document.
type Document struct {
	f *os.File
	r *pdf.Reader
}

// Open opens the document at path. A missing path maps to
// ErrDocumentNotFound, unparseable content to ErrDocumentCorrupt.
func Open(path string) (doc *Document, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, statErr)
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s: %v", ErrDocumentCorrupt, path, r)
		}
	}()

	f, r, openErr := pdf.Open(path)
	if openErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDocumentCorrupt, path, openErr)
	}
	return &Document{f: f, r: r}, nil
}

// Close releases the underlying file.
func (d *Document) Close() error { return d.f.Close() }

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return d.r.NumPage() }

// PageSize returns the page dimensions in points, taken from the page's
// MediaBox (walking up to inherited boxes when the page has none).
// page is 0-based.
func (d *Document) PageSize(page int) (w, h float64, err error) {
	p := d.r.Page(page + 1)
	if p.V.IsNull() {
		return 0, 0, fmt.Errorf("eqsift: page %d out of range", page+1)
	}

	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.IsNull() || mb.Len() != 4 {
			continue
		}
		w = mb.Index(2).Float64() - mb.Index(0).Float64()
		h = mb.Index(3).Float64() - mb.Index(1).Float64()
		return w, h, nil
	}

	// US Letter fallback when no MediaBox is reachable.
	return 612, 792, nil
}

// Regions returns the text regions of a page in no particular order.
// Positioned text fragments are grouped into lines and lines into blocks;
// coordinates are flipped from PDF bottom-up to top-down page coordinates.
// page is 0-based. Extraction failures are reported, not fatal: callers
// skip the page and continue.
func (d *Document) Regions(page int) (regions []Region, err error) {
	frags, pageErr := d.pageFragments(page)
	if pageErr != nil {
		return nil, pageErr
	}
	return buildBlocks(buildLines(frags)), nil
}

// pageFragments extracts the positioned text runs of a page in top-down
// coordinates. The underlying content-stream walker panics on malformed
// streams, so the panic is converted into an error here.
func (d *Document) pageFragments(page int) (frags []fragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("eqsift: extracting text of page %d: %v", page+1, r)
		}
	}()

	p := d.r.Page(page + 1)
	if p.V.IsNull() {
		return nil, nil
	}
	_, pageH, err := d.PageSize(page)
	if err != nil {
		return nil, err
	}
	return toFragments(p.Content().Text, pageH), nil
}
