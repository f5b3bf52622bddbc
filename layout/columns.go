package layout

import "github.com/adhipk/pdf-to-md/model"

const (
	// gutterGuard is the half-width of the band around the page midline
	// that is ignored when counting column evidence. Runs inside the band
	// could belong to either column and prove nothing.
	gutterGuard = 40

	// columnMinRuns is the number of runs that must sit clearly on each
	// side of the gutter before a page is called two-column. Fewer than
	// that and centered titles or short tables would trigger false
	// positives.
	columnMinRuns = 25
)

// ColumnRun is a normalized run tagged with the column it belongs to.
// Column 0 is the left (or only) column, column 1 the right.
type ColumnRun struct {
	model.TextRun
	Col int
}

// ColumnLayout records the column decision for one page together with
// the tagged runs.
type ColumnLayout struct {
	TwoColumn bool
	Mid       float64
	Runs      []ColumnRun
}

// SplitColumns decides whether the runs form a two-column page and tags
// every run with its column. A page is two-column only when its width is
// known and more than columnMinRuns runs sit clearly left of the midline
// as well as clearly right of it. On a single-column page every run is
// tagged column 0.
func SplitColumns(runs []model.TextRun, pageWidth float64) *ColumnLayout {
	layout := &ColumnLayout{
		Mid:  pageWidth / 2,
		Runs: make([]ColumnRun, 0, len(runs)),
	}
	if pageWidth > 0 {
		left, right := 0, 0
		for _, r := range runs {
			if r.Left < layout.Mid-gutterGuard {
				left++
			}
			if r.Left > layout.Mid+gutterGuard {
				right++
			}
		}
		layout.TwoColumn = left > columnMinRuns && right > columnMinRuns
	}
	for _, r := range runs {
		col := 0
		if layout.TwoColumn && r.Left > layout.Mid {
			col = 1
		}
		layout.Runs = append(layout.Runs, ColumnRun{TextRun: r, Col: col})
	}
	return layout
}

// ColumnCount reports the number of columns the page was read as.
func (l *ColumnLayout) ColumnCount() int {
	if l.TwoColumn {
		return 2
	}
	return 1
}

// RunsInColumn counts the runs tagged with the given column.
func (l *ColumnLayout) RunsInColumn(col int) int {
	n := 0
	for _, r := range l.Runs {
		if r.Col == col {
			n++
		}
	}
	return n
}
