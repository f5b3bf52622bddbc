package layout

import (
	"testing"

	"github.com/adhipk/pdf-to-md/model"
)

// twoColumnRuns builds n runs on each side of a 612-unit page's midline,
// clear of the gutter band.
func twoColumnRuns(n int) []model.TextRun {
	runs := make([]model.TextRun, 0, n*2)
	for i := 0; i < n; i++ {
		top := float64(100 + i*15)
		runs = append(runs, model.TextRun{Top: top, Left: 90, FontSize: 12, Text: "left column text"})
		runs = append(runs, model.TextRun{Top: top, Left: 360, FontSize: 12, Text: "right column text"})
	}
	return runs
}

func TestSplitColumns_TwoColumnPage(t *testing.T) {
	layout := SplitColumns(twoColumnRuns(26), 612)
	if !layout.TwoColumn {
		t.Fatal("expected a two-column layout")
	}
	if layout.ColumnCount() != 2 {
		t.Errorf("ColumnCount() = %d, want 2", layout.ColumnCount())
	}
	if got := layout.RunsInColumn(0); got != 26 {
		t.Errorf("left column has %d runs, want 26", got)
	}
	if got := layout.RunsInColumn(1); got != 26 {
		t.Errorf("right column has %d runs, want 26", got)
	}
}

func TestSplitColumns_RequiresMoreThanMinimumPerSide(t *testing.T) {
	layout := SplitColumns(twoColumnRuns(columnMinRuns), 612)
	if layout.TwoColumn {
		t.Errorf("%d runs per side must not qualify; the threshold is strict", columnMinRuns)
	}
}

func TestSplitColumns_SingleColumnPage(t *testing.T) {
	var runs []model.TextRun
	for i := 0; i < 40; i++ {
		runs = append(runs, model.TextRun{Top: float64(100 + i*15), Left: 80, FontSize: 12, Text: "body"})
	}
	layout := SplitColumns(runs, 612)
	if layout.TwoColumn {
		t.Error("single-column page detected as two-column")
	}
	for _, r := range layout.Runs {
		if r.Col != 0 {
			t.Fatalf("run at left=%v tagged column %d, want 0", r.Left, r.Col)
		}
	}
}

func TestSplitColumns_UnknownWidthDisablesDetection(t *testing.T) {
	layout := SplitColumns(twoColumnRuns(40), 0)
	if layout.TwoColumn {
		t.Error("width 0 must disable column detection")
	}
}

func TestSplitColumns_GutterBandCountsForNeitherSide(t *testing.T) {
	// All runs inside the band around the midline: plenty of runs, but
	// no clear evidence for either side.
	var runs []model.TextRun
	for i := 0; i < 60; i++ {
		runs = append(runs, model.TextRun{Top: float64(100 + i*10), Left: 300, FontSize: 12, Text: "centered"})
	}
	layout := SplitColumns(runs, 612)
	if layout.TwoColumn {
		t.Error("runs inside the gutter band must not establish columns")
	}
}

func TestSplitColumns_TagsByMidline(t *testing.T) {
	runs := twoColumnRuns(26)
	// A run right of the midline but inside the gutter band still lands
	// in the right column once the page is two-column.
	runs = append(runs, model.TextRun{Top: 500, Left: 310, FontSize: 12, Text: "gutter straddler"})
	layout := SplitColumns(runs, 612)
	if !layout.TwoColumn {
		t.Fatal("expected a two-column layout")
	}
	last := layout.Runs[len(layout.Runs)-1]
	if last.Col != 1 {
		t.Errorf("run at left=310 on a 612-wide page tagged column %d, want 1", last.Col)
	}
}
