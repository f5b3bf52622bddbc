package layout

import (
	"regexp"
	"strings"
)

const (
	// minBlockGap is the smallest vertical gap between consecutive lines
	// that forces a block break regardless of font size.
	minBlockGap = 14.0

	// blockGapFactor scales a line's font size into its block-break
	// threshold. Ordinary leading is around 1.2 times the size, so a gap
	// beyond 1.45 times means the author left deliberate space.
	blockGapFactor = 1.45
)

var blankLineRuns = regexp.MustCompile(`\n{3,}`)

// SegmentBlocks assembles the canonical text of a page from its merged
// lines. A blank line is inserted between two consecutive lines when
// they belong to different columns or when the vertical gap between them
// exceeds max(minBlockGap, fontSize*blockGapFactor), with the font size
// taken from the incoming line. Runs of blank lines are collapsed so at
// most one ever separates two blocks, and the result carries no leading
// or trailing whitespace.
func SegmentBlocks(lines []Line) string {
	var out []string
	first := true
	prevCol := 0
	prevTop := 0.0
	for _, line := range lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		if !first {
			gap := line.Top - prevTop
			threshold := max(minBlockGap, line.FontSize*blockGapFactor)
			if line.Col != prevCol || gap > threshold {
				out = append(out, "")
			}
		}
		out = append(out, text)
		prevCol = line.Col
		prevTop = line.Top
		first = false
	}
	text := strings.Join(out, "\n")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
