// Package eqsift locates equation-like content in paginated documents.
//
// Two extraction strategies share one output shape: DiscoveryProducer scans
// every page and keeps text regions that pass a heuristic classifier, while
// LabelProducer finds equations already known by number via literal token
// search. Both yield ordered Record lists ready for tabular export.
package eqsift

import (
	"context"
	"fmt"

	"github.com/mvolk/eqsift/source"
)

// PageSource is the document collaborator both producers run against.
// Pages are addressed by 0-based index; implementations are expected to be
// read-only and need no internal concurrency, the pipeline is synchronous.
type PageSource interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageSize returns the page dimensions in points.
	PageSize(page int) (w, h float64, err error)

	// Regions returns the text regions of a page, in no particular order.
	Regions(page int) ([]source.Region, error)

	// Search returns the rectangles of literal occurrences of token in
	// the page text, or an empty slice when the token does not occur.
	Search(page int, token string) ([]source.Rect, error)

	// RenderRegion writes a raster snapshot of the given page rectangle
	// to outPath at the given zoom factor.
	RenderRegion(page int, r source.Rect, zoom float64, outPath string) error
}

// Producer turns an open document into equation records. Implementations
// must assign dense 1-based IDs in discovery order.
type Producer interface {
	Produce(ctx context.Context, doc PageSource) ([]Record, error)
}

// Engine wires a configuration to the document opener and the producers.
type Engine struct {
	cfg Config
}

// New returns an Engine for the given configuration.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Discover opens the document at path and runs the heuristic scan strategy.
func (e *Engine) Discover(ctx context.Context, path string) ([]Record, error) {
	return e.run(ctx, path, NewDiscoveryProducer(e.cfg))
}

// Lookup opens the document at path and resolves the given labels to
// records via literal token search over the page range.
func (e *Engine) Lookup(ctx context.Context, path string, labels []Label, pages PageRange) ([]Record, error) {
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return e.run(ctx, path, NewLabelProducer(e.cfg, labels, pages))
}

// Run opens the document at path and hands it to an arbitrary producer.
func (e *Engine) Run(ctx context.Context, path string, p Producer) ([]Record, error) {
	return e.run(ctx, path, p)
}

func (e *Engine) run(ctx context.Context, path string, p Producer) ([]Record, error) {
	doc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	records, err := p.Produce(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extracting from %s: %w", path, err)
	}
	return records, nil
}
