package model

// Run is one raw positioned text record as produced by the extraction
// engine. Text is carried verbatim from the transport: it may contain
// inline markup tags (<b>, <i>, <a>) and XML entities. Normalization and
// filtering happen in the layout collector; a Run never reaches later
// pipeline stages directly.
type Run struct {
	Top  float64 // Distance from the top edge of the page
	Left float64 // Distance from the left edge of the page
	Font string  // Font table key; empty if the engine reported none
	Text string  // Raw markup-wrapped text
}

// TextRun is one atomic positioned string on a page after normalization:
// markup stripped, entities decoded, whitespace collapsed and trimmed.
// Empty-text runs are discarded upstream and never enter this type.
type TextRun struct {
	Top      float64
	Left     float64
	FontSize float64 // Resolved via the page font table; DefaultFontSize if unresolved
	Bold     bool    // True if the run's markup carried an emphasis wrapper
	Italic   bool    // True for italic markup; presentation only
	Text     string
}
