package eqsift

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mvolk/eqsift/scan"
)

// DiscoveryProducer finds equations by scanning every page: regions are
// normalized, classified, sequenced into reading order, given neighbor
// context, then deduplicated across the whole document before IDs are
// assigned.
type DiscoveryProducer struct {
	cfg Config
}

// NewDiscoveryProducer returns a producer using the given thresholds.
func NewDiscoveryProducer(cfg Config) *DiscoveryProducer {
	return &DiscoveryProducer{cfg: cfg}
}

// Produce runs the scan over all pages in increasing index order.
// Deduplication needs the complete discovery-order list, so IDs are only
// assigned once every page has been read.
func (p *DiscoveryProducer) Produce(ctx context.Context, doc PageSource) ([]Record, error) {
	opts := scan.Options{
		MinLen:            p.cfg.MinLen,
		RequireRelational: p.cfg.RequireRelational,
	}

	var candidates []scan.Candidate
	for page := 0; page < doc.PageCount(); page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		regions, err := doc.Regions(page)
		if err != nil {
			// Pages that fail to extract are skipped, not fatal.
			slog.Warn("skipping page", "page", page+1, "error", err)
			continue
		}

		ordered := scan.ReadingOrder(regions)
		for i, region := range ordered {
			if !scan.IsEquation(region.Text, opts) {
				continue
			}
			candidates = append(candidates, scan.Candidate{
				Page:    page + 1,
				Text:    scan.Normalize(region.Text),
				Rect:    region.Rect,
				Context: scan.Context(ordered, i),
			})
		}
	}

	unique := scan.Dedupe(candidates)

	records := make([]Record, 0, len(unique))
	for i, c := range unique {
		rec := Record{
			ID:      i + 1,
			Page:    c.Page,
			Text:    c.Text,
			Context: c.Context,
			Rect:    c.Rect,
		}
		if p.cfg.SnapshotDir != "" {
			name := fmt.Sprintf("eq_p%03d_%04d.png", rec.Page, rec.ID)
			path := filepath.Join(p.cfg.SnapshotDir, name)
			if err := doc.RenderRegion(rec.Page-1, rec.Rect, p.cfg.Zoom, path); err != nil {
				// Keep the record without an image.
				slog.Warn("snapshot render failed", "id", rec.ID, "page", rec.Page, "error", err)
			} else {
				rec.ImagePath = path
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
