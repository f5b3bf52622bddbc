package layout

import (
	"testing"

	"github.com/adhipk/pdf-to-md/model"
)

func lineRun(col int, top, left float64, text string) ColumnRun {
	return ColumnRun{
		Col:     col,
		TextRun: model.TextRun{Top: top, Left: left, FontSize: 12, Text: text},
	}
}

func TestMergeLines_JoinsRunsOnOneLine(t *testing.T) {
	runs := []ColumnRun{
		lineRun(0, 100, 80, "The quick"),
		lineRun(0, 100, 150, "brown fox"),
		lineRun(0, 100, 230, "jumps"),
	}
	lines := MergeLines(runs)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if lines[0].Text != "The quick brown fox jumps" {
		t.Errorf("line text = %q", lines[0].Text)
	}
	if lines[0].Top != 100 || lines[0].Left != 80 {
		t.Errorf("line anchored at (%v, %v), want first run's (100, 80)", lines[0].Top, lines[0].Left)
	}
}

func TestMergeLines_TopJitterBoundary(t *testing.T) {
	tests := []struct {
		name      string
		secondTop float64
		wantLines int
	}{
		{"exact match", 100, 1},
		{"within jitter", 103, 1},
		{"jitter is inclusive", 97, 1},
		{"past jitter", 103.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := []ColumnRun{
				lineRun(0, 100, 80, "one"),
				lineRun(0, tt.secondTop, 150, "two"),
			}
			if got := len(MergeLines(runs)); got != tt.wantLines {
				t.Errorf("tops 100 and %v: got %d lines, want %d", tt.secondTop, got, tt.wantLines)
			}
		})
	}
}

func TestMergeLines_LeftRangeBoundary(t *testing.T) {
	tests := []struct {
		name       string
		secondLeft float64
		wantLines  int
	}{
		{"nearby", 400, 1},
		{"just inside range", 579, 1},
		{"range is exclusive", 580, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := []ColumnRun{
				lineRun(0, 100, 80, "one"),
				lineRun(0, 100, tt.secondLeft, "two"),
			}
			if got := len(MergeLines(runs)); got != tt.wantLines {
				t.Errorf("lefts 80 and %v: got %d lines, want %d", tt.secondLeft, got, tt.wantLines)
			}
		})
	}
}

func TestMergeLines_ComparesAgainstFirstRun(t *testing.T) {
	// Each run is within jitter of its neighbor, but the third is past
	// the jitter of the line's FIRST run, so the line must not drift.
	runs := []ColumnRun{
		lineRun(0, 100, 80, "one"),
		lineRun(0, 103, 150, "two"),
		lineRun(0, 106, 230, "three"),
	}
	lines := MergeLines(runs)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (line anchor must not drift)", len(lines))
	}
	if lines[0].Text != "one two" {
		t.Errorf("first line = %q, want %q", lines[0].Text, "one two")
	}
	if lines[1].Text != "three" {
		t.Errorf("second line = %q, want %q", lines[1].Text, "three")
	}
}

func TestMergeLines_ColumnBoundary(t *testing.T) {
	runs := []ColumnRun{
		lineRun(0, 100, 80, "left side"),
		lineRun(1, 100, 330, "right side"),
	}
	if got := len(MergeLines(runs)); got != 2 {
		t.Errorf("runs in different columns merged: got %d lines, want 2", got)
	}
}

func TestMergeLines_AggregatesStyle(t *testing.T) {
	runs := []ColumnRun{
		{Col: 0, TextRun: model.TextRun{Top: 100, Left: 80, FontSize: 12, Text: "small"}},
		{Col: 0, TextRun: model.TextRun{Top: 100, Left: 150, FontSize: 18, Bold: true, Text: "big bold"}},
		{Col: 0, TextRun: model.TextRun{Top: 100, Left: 240, FontSize: 10, Italic: true, Text: "tail"}},
	}
	lines := MergeLines(runs)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line.FontSize != 18 {
		t.Errorf("FontSize = %v, want the maximum 18", line.FontSize)
	}
	if !line.Bold || !line.Italic {
		t.Errorf("Bold=%v Italic=%v, want both true", line.Bold, line.Italic)
	}
}

func TestMergeLines_Empty(t *testing.T) {
	if lines := MergeLines(nil); len(lines) != 0 {
		t.Errorf("MergeLines(nil) = %d lines, want 0", len(lines))
	}
}
