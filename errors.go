package eqsift

import (
	"errors"

	"github.com/mvolk/eqsift/source"
)

var (
	// ErrDocumentNotFound is returned when the input path does not resolve.
	ErrDocumentNotFound = source.ErrDocumentNotFound

	// ErrDocumentCorrupt is returned when the document content cannot be parsed.
	ErrDocumentCorrupt = source.ErrDocumentCorrupt

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("eqsift: invalid configuration")

	// ErrNoLabels is returned when a label lookup is requested with an
	// empty label list.
	ErrNoLabels = errors.New("eqsift: no labels to look up")
)
