package pdftomd

import "github.com/adhipk/pdf-to-md/ocr"

// Strategy selects how text is pulled out of a PDF.
type Strategy int

const (
	// StrategyAuto uses layout extraction and falls back to the naive
	// strategy when the layout dump cannot be produced.
	StrategyAuto Strategy = iota

	// StrategyLayout extracts positioned text via pdftohtml and runs the
	// full layout pipeline: reading order, line merging, block
	// segmentation and classification.
	StrategyLayout

	// StrategyNaive takes pdftotext's plain output as-is, split into
	// pages at form feeds. Faster, but with no layout reconstruction.
	StrategyNaive
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyLayout:
		return "layout"
	case StrategyNaive:
		return "naive"
	default:
		return "unknown"
	}
}

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Extraction strategy
	strategy Strategy

	// OCR fallback for pages without extractable text
	ocrEnabled bool
	ocrConfig  ocr.Config
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		pages:      nil, // nil means all pages
		strategy:   StrategyAuto,
		ocrEnabled: false,
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		strategy:   o.strategy,
		ocrEnabled: o.ocrEnabled,
		ocrConfig:  o.ocrConfig,
	}

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}
