package layout

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// BlockKind identifies what a classified block is.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindListItem
)

// String returns a human-readable name for the block kind.
func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindListItem:
		return "list-item"
	default:
		return "unknown"
	}
}

// Block is one classified unit of page content. Text is the block's
// content with internal newlines collapsed; for list items the marker
// has been stripped. Level is the outline depth for headings (1 through
// maxHeadingLevel) and zero otherwise.
type Block struct {
	Kind  BlockKind
	Level int
	Text  string
}

const (
	// maxHeadingLength bounds the all-caps heading heuristic; anything
	// this long or longer is prose shouting, not a heading.
	maxHeadingLength = 90

	// maxHeadingLevel caps the outline depth derived from numbered
	// headings, matching the depth HTML and Markdown can express.
	maxHeadingLevel = 6

	// capsHeadingLevel is the outline depth assigned to headings spotted
	// by the all-caps heuristic, which carries no numbering to count.
	capsHeadingLevel = 2
)

var (
	outlineHeading = regexp.MustCompile(`^\d+(?:\.\d+)*\s+`)
	bulletMarker   = regexp.MustCompile(`^[-*•]\s+`)
	numberMarker   = regexp.MustCompile(`^\d+[.)]\s+`)
	bracketMarker  = regexp.MustCompile(`^\[\d+\]\s*`)
)

// terminalPunct holds the characters that end a sentence or clause; a
// block whose last line stops without one probably continues into the
// next block.
const terminalPunct = ".!?;:"

// ClassifyBlocks splits canonical page text on blank lines and labels
// each piece as a heading, list item, or paragraph. Adjacent paragraph
// blocks are re-joined when the earlier one does not end in terminal
// punctuation, which undoes over-eager splits inside a single sentence.
func ClassifyBlocks(pageText string) []Block {
	if pageText == "" {
		return nil
	}
	groups := regroupContinuations(strings.Split(pageText, "\n\n"))
	blocks := make([]Block, 0, len(groups))
	for _, g := range groups {
		text := collapseLines(g)
		if text == "" {
			continue
		}
		blocks = append(blocks, classifyBlock(text))
	}
	return blocks
}

// regroupContinuations merges a block into its predecessor when the
// predecessor's last line ends mid-sentence and neither side reads as a
// heading or list item on its own.
func regroupContinuations(blocks []string) []string {
	var out []string
	for _, b := range blocks {
		if len(out) > 0 && continuesPrevious(out[len(out)-1], b) {
			out[len(out)-1] += "\n" + b
			continue
		}
		out = append(out, b)
	}
	return out
}

func continuesPrevious(prev, next string) bool {
	lines := strings.Split(prev, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(last)
	if strings.ContainsRune(terminalPunct, r) {
		return false
	}
	// Headings and list items stand alone even when they end without
	// punctuation.
	if classifyBlock(collapseLines(prev)).Kind != KindParagraph {
		return false
	}
	if classifyBlock(collapseLines(next)).Kind != KindParagraph {
		return false
	}
	return true
}

// collapseLines flattens a block's internal newlines into spaces and
// normalizes the whitespace.
func collapseLines(block string) string {
	return strings.Join(strings.Fields(block), " ")
}

func classifyBlock(text string) Block {
	if m := outlineHeading.FindString(text); m != "" {
		return Block{Kind: KindHeading, Level: outlineLevel(m), Text: text}
	}
	if isAllCapsHeading(text) {
		return Block{Kind: KindHeading, Level: capsHeadingLevel, Text: text}
	}
	for _, marker := range []*regexp.Regexp{bulletMarker, numberMarker, bracketMarker} {
		if m := marker.FindString(text); m != "" {
			return Block{Kind: KindListItem, Text: strings.TrimSpace(text[len(m):])}
		}
	}
	return Block{Kind: KindParagraph, Text: text}
}

// outlineLevel counts the dotted components of a numbered-heading prefix:
// "3 " is level 1, "3.1 " level 2, and so on, capped at maxHeadingLevel.
func outlineLevel(prefix string) int {
	level := strings.Count(strings.TrimSpace(prefix), ".") + 1
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}

// isAllCapsHeading reports whether the text is short and contains no
// lower-case letters, the shape of an unnumbered section title. At least
// one letter is required so stray numbers do not qualify.
func isAllCapsHeading(text string) bool {
	if utf8.RuneCountInString(text) >= maxHeadingLength {
		return false
	}
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
