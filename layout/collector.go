package layout

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/adhipk/pdf-to-md/model"
)

// marginBand is the height in page units of the top and bottom zones
// whose runs are discarded as headers and footers. It is only applied
// when the page reports a usable height.
const marginBand = 80

// Structural-noise patterns, matched against fully normalized run text.
// A run matching any of them carries no body content.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),                                         // bare page number
	regexp.MustCompile(`(?i)^page\s+\d+(?:\s+of\s+\d+)?$`),              // "Page 3", "Page 3 of 12"
	regexp.MustCompile(`(?i)^(?:p|pg)\.?\s*\d+$`),                       // "p. 3", "pg 3"
	regexp.MustCompile(`^[-–—]\s*\d+\s*[-–—]$`),                         // "- 3 -"
	regexp.MustCompile(`(?i)^(?:chapter|section|appendix|part)\s+\d+$`), // running header
	regexp.MustCompile(`(?i)^(?:©|\(c\)|copyright\b)`),                  // copyright attribution
	regexp.MustCompile(`(?i)this page (?:is )?intentionally (?:left )?blank`),
}

// CollectRuns normalizes the raw runs of a page and drops the ones that
// carry no content. Markup is stripped (recording emphasis), entities are
// decoded, whitespace is collapsed, and runs that are empty, sit inside
// the top or bottom margin band, or match a structural-noise pattern are
// discarded. Font sizes are resolved through the page's font table.
//
// The order of the surviving runs matches their order in the input.
func CollectRuns(page *model.Page) []model.TextRun {
	runs := make([]model.TextRun, 0, len(page.Runs))
	for _, raw := range page.Runs {
		text, bold, italic := stripMarkup(raw.Text)
		text = normalizeText(text)
		if text == "" {
			continue
		}
		if page.Height > 0 && (raw.Top < marginBand || raw.Top > page.Height-marginBand) {
			continue
		}
		if isStructuralNoise(text) {
			continue
		}
		size, _ := page.Fonts.Size(raw.Font)
		runs = append(runs, model.TextRun{
			Top:      raw.Top,
			Left:     raw.Left,
			FontSize: size,
			Bold:     bold,
			Italic:   italic,
			Text:     text,
		})
	}
	return runs
}

// stripMarkup removes inline markup from a raw run and reports whether
// the run was wrapped in emphasis tags. Entity references (&lt;, &amp;,
// &#39; and friends) are decoded by the tokenizer as a side effect.
func stripMarkup(raw string) (text string, bold, italic bool) {
	if !strings.ContainsAny(raw, "<&") {
		return raw, false, false
	}
	tok := html.NewTokenizer(strings.NewReader(raw))
	var sb strings.Builder
	for {
		switch tok.Next() {
		case html.ErrorToken:
			// The fragment is exhausted; whatever text accumulated is
			// the answer even if the markup was malformed.
			return sb.String(), bold, italic
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := tok.TagName()
			switch string(name) {
			case "b", "strong":
				bold = true
			case "i", "em":
				italic = true
			}
		case html.TextToken:
			sb.Write(tok.Text())
		}
	}
}

// normalizeText applies Unicode NFC, collapses every whitespace sequence
// to a single space, and trims the ends.
func normalizeText(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

func isStructuralNoise(text string) bool {
	for _, p := range noisePatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
