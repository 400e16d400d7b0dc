package eqsift

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/mvolk/eqsift/scan"
	"github.com/mvolk/eqsift/source"
)

// LabelProducer resolves equations already known by a literal token (for
// example a trailing equation number) instead of discovering them. For each
// label it searches the page range for the first occurrence of the token and
// crops a region around it: a fixed margin above, since equation bodies
// typically sit above their number, and a small margin below.
type LabelProducer struct {
	cfg    Config
	labels []Label
	pages  PageRange
}

// NewLabelProducer returns a producer resolving labels over the given
// 1-based inclusive page range.
func NewLabelProducer(cfg Config, labels []Label, pages PageRange) *LabelProducer {
	return &LabelProducer{cfg: cfg, labels: labels, pages: pages}
}

// Produce looks up every label in order. A label whose token occurs nowhere
// in range is a soft miss: it is logged and skipped, not an error, since
// some labels point at purely graphical content unreachable by text search.
func (p *LabelProducer) Produce(ctx context.Context, doc PageSource) ([]Record, error) {
	first, last := p.pages.clamp(doc.PageCount())

	var records []Record
	for _, label := range p.labels {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, found := p.find(doc, label, first, last)
		if !found {
			slog.Info("label not found in page range",
				"token", label.Token, "first", first, "last", last)
			continue
		}

		rec.ID = len(records) + 1
		if p.cfg.SnapshotDir != "" {
			name := fmt.Sprintf("eq_%s_p%d.png", fileToken(label.Token), rec.Page)
			path := filepath.Join(p.cfg.SnapshotDir, name)
			if err := doc.RenderRegion(rec.Page-1, rec.Rect, p.cfg.Zoom, path); err != nil {
				slog.Warn("snapshot render failed", "token", label.Token, "error", err)
			} else {
				rec.ImagePath = path
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// find returns the record for the first occurrence of the label token
// within [first, last], with the crop rectangle clipped to page bounds.
func (p *LabelProducer) find(doc PageSource, label Label, first, last int) (Record, bool) {
	for page := first; page <= last; page++ {
		rects, err := doc.Search(page-1, label.Token)
		if err != nil {
			slog.Warn("page search failed", "page", page, "error", err)
			continue
		}
		if len(rects) == 0 {
			continue
		}

		w, h, err := doc.PageSize(page - 1)
		if err != nil {
			slog.Warn("page size unavailable", "page", page, "error", err)
			continue
		}

		match := rects[0]
		crop := source.Rect{
			X0: 0,
			Y0: math.Max(0, match.Y0-p.cfg.LabelMarginAbove),
			X1: w,
			Y1: math.Min(h, match.Y1+p.cfg.LabelMarginBelow),
		}
		return Record{
			Page:    page,
			Text:    scan.Normalize(label.Token),
			Context: label.Caption,
			Rect:    crop,
		}, true
	}
	return Record{}, false
}

// fileToken reduces a label token to characters safe in a file name.
func fileToken(token string) string {
	var b strings.Builder
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "label"
	}
	return b.String()
}
