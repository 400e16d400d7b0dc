package eqsift

// Config holds all tunables shared by the extraction strategies.
type Config struct {
	// MinLen is the minimum normalized text length (in runes) for a
	// region to be considered an equation candidate.
	MinLen int `json:"min_len" yaml:"min_len"`

	// RequireRelational keeps only candidates containing an explicit
	// relational operator (=, ≤, ≥, ≈, ≠). A bare '/' or '^' is not
	// enough; arithmetic glyphs alone show up too often in prose.
	RequireRelational bool `json:"require_relational" yaml:"require_relational"`

	// SnapshotDir is the directory snapshot images are written to.
	// Empty disables snapshot rendering; records then carry no image path.
	SnapshotDir string `json:"snapshot_dir" yaml:"snapshot_dir"`

	// Zoom is the render scale factor for snapshots (higher = sharper).
	Zoom float64 `json:"zoom" yaml:"zoom"`

	// LabelMarginAbove is how far (in page points) a label-lookup crop
	// extends above the matched token. Equation bodies typically sit
	// above their trailing number.
	LabelMarginAbove float64 `json:"label_margin_above" yaml:"label_margin_above"`

	// LabelMarginBelow is the crop margin below the matched token.
	LabelMarginBelow float64 `json:"label_margin_below" yaml:"label_margin_below"`
}

// DefaultConfig returns a Config with the thresholds tuned for
// datasheet-class documents.
func DefaultConfig() Config {
	return Config{
		MinLen:            6,
		RequireRelational: true,
		SnapshotDir:       "equation_images",
		Zoom:              3.0,
		LabelMarginAbove:  180,
		LabelMarginBelow:  30,
	}
}

// validate reports configuration values the engine cannot work with.
func (c Config) validate() error {
	if c.MinLen < 1 {
		return ErrInvalidConfig
	}
	if c.Zoom <= 0 {
		return ErrInvalidConfig
	}
	if c.LabelMarginAbove < 0 || c.LabelMarginBelow < 0 {
		return ErrInvalidConfig
	}
	return nil
}
