package model

import (
	"strings"
	"unicode/utf8"
)

// Stats accumulates output totals across a document. Lines counts
// newline-delimited segments of each page's final text (a blank separator
// line counts as a segment; an empty page contributes zero). Chars counts
// runes. Stats is the only state shared across pages in the pipeline.
type Stats struct {
	Pages int
	Lines int
	Chars int
}

// AddPage folds one page's final text into the totals. Empty page text
// still counts as a processed page.
func (s *Stats) AddPage(text string) {
	s.Pages++
	if text == "" {
		return
	}
	s.Lines += strings.Count(text, "\n") + 1
	s.Chars += utf8.RuneCountInString(text)
}
