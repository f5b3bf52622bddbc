package layout

import "github.com/adhipk/pdf-to-md/model"

// PageResult is everything layout analysis learned about one page.
type PageResult struct {
	// Text is the canonical page text: lines joined by newlines, blocks
	// separated by single blank lines. Empty when nothing survived
	// collection.
	Text string

	// Blocks are the classified blocks of Text, in reading order.
	Blocks []Block

	// TwoColumn records whether the page was read as two columns.
	TwoColumn bool
}

// AnalyzePage runs the full pipeline over one page: collect, split into
// columns, order, merge lines, segment, classify. It never fails; a page
// with no usable runs yields an empty result.
func AnalyzePage(page *model.Page) *PageResult {
	runs := CollectRuns(page)
	cols := SplitColumns(runs, page.Width)
	ordered := ReadingOrder(cols.Runs)
	lines := MergeLines(ordered)
	text := SegmentBlocks(lines)
	return &PageResult{
		Text:      text,
		Blocks:    ClassifyBlocks(text),
		TwoColumn: cols.TwoColumn,
	}
}

// HeadingCount reports how many blocks classified as headings.
func (r *PageResult) HeadingCount() int {
	return r.countKind(KindHeading)
}

// ListItemCount reports how many blocks classified as list items.
func (r *PageResult) ListItemCount() int {
	return r.countKind(KindListItem)
}

func (r *PageResult) countKind(kind BlockKind) int {
	n := 0
	for _, b := range r.Blocks {
		if b.Kind == kind {
			n++
		}
	}
	return n
}
