package layout

const (
	// lineTopJitter is the largest difference in top coordinates two runs
	// may have and still count as the same visual line. Subscripts and
	// slightly misaligned spans land within it.
	lineTopJitter = 3.0

	// lineLeftRange is how far right of a line's first run a later run
	// may start and still be merged into it. It is generous on purpose:
	// a line's spans can be emitted far apart when words are individually
	// positioned.
	lineLeftRange = 500.0
)

// Line is one visual line of text assembled from consecutive runs.
type Line struct {
	Col      int
	Top      float64 // top of the first contributing run
	Left     float64 // left of the first contributing run
	FontSize float64 // largest size among the contributors
	Bold     bool    // true if any contributor was bold
	Italic   bool    // true if any contributor was italic
	Text     string  // contributor texts joined by single spaces
}

// MergeLines walks runs already in reading order and joins consecutive
// ones that sit on the same visual line. A run joins the line under
// construction when it is in the same column, its top is within
// lineTopJitter of the line's top, and its left is within lineLeftRange
// of the line's left; both comparisons are against the line's first run,
// so a line never drifts downward as runs accumulate.
func MergeLines(ordered []ColumnRun) []Line {
	var lines []Line
	var cur *Line
	for _, run := range ordered {
		if cur != nil && run.Col == cur.Col &&
			absFloat(run.Top-cur.Top) <= lineTopJitter &&
			absFloat(run.Left-cur.Left) < lineLeftRange {
			cur.Text += " " + run.Text
			if run.FontSize > cur.FontSize {
				cur.FontSize = run.FontSize
			}
			cur.Bold = cur.Bold || run.Bold
			cur.Italic = cur.Italic || run.Italic
			continue
		}
		if cur != nil {
			lines = append(lines, *cur)
		}
		cur = &Line{
			Col:      run.Col,
			Top:      run.Top,
			Left:     run.Left,
			FontSize: run.FontSize,
			Bold:     run.Bold,
			Italic:   run.Italic,
			Text:     run.Text,
		}
	}
	if cur != nil {
		lines = append(lines, *cur)
	}
	return lines
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
