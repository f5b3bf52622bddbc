// Package markdown renders classified layout blocks as Markdown.
package markdown

import (
	"strings"

	"github.com/adhipk/pdf-to-md/layout"
)

// Options contains Markdown output options.
type Options struct {
	// HeadingShift is added to every heading level, pushing the outline
	// deeper when converted output is embedded under existing document
	// structure. Levels are clamped to the 1..6 range Markdown can
	// express.
	HeadingShift int

	// Bullet is the marker used for list items. Defaults to "-".
	Bullet string

	// PageSeparator is written between pages. Defaults to a horizontal
	// rule.
	PageSeparator string
}

// DefaultOptions returns the standard rendering options.
func DefaultOptions() Options {
	return Options{
		Bullet:        "-",
		PageSeparator: "\n\n---\n\n",
	}
}

// Renderer turns blocks into Markdown text.
type Renderer struct {
	opts Options
}

// NewRenderer creates a renderer, filling unset options from the
// defaults.
func NewRenderer(opts Options) *Renderer {
	def := DefaultOptions()
	if opts.Bullet == "" {
		opts.Bullet = def.Bullet
	}
	if opts.PageSeparator == "" {
		opts.PageSeparator = def.PageSeparator
	}
	return &Renderer{opts: opts}
}

// RenderPage renders one page's blocks. Headings become #-prefixed
// lines, list items bulleted lines, paragraphs plain text. Consecutive
// list items are kept adjacent so they render as one tight list; other
// blocks are separated by blank lines.
func (r *Renderer) RenderPage(blocks []layout.Block) string {
	var chunks []string
	for i, b := range blocks {
		switch b.Kind {
		case layout.KindHeading:
			chunks = append(chunks, strings.Repeat("#", r.headingLevel(b.Level))+" "+b.Text)
		case layout.KindListItem:
			item := r.opts.Bullet + " " + b.Text
			if i > 0 && blocks[i-1].Kind == layout.KindListItem && len(chunks) > 0 {
				chunks[len(chunks)-1] += "\n" + item
			} else {
				chunks = append(chunks, item)
			}
		default:
			chunks = append(chunks, b.Text)
		}
	}
	return strings.Join(chunks, "\n\n")
}

// RenderDocument renders each page and joins them with the page
// separator. The result ends with a single newline when it is not
// empty.
func (r *Renderer) RenderDocument(pages [][]layout.Block) string {
	var rendered []string
	for _, blocks := range pages {
		if page := r.RenderPage(blocks); page != "" {
			rendered = append(rendered, page)
		}
	}
	if len(rendered) == 0 {
		return ""
	}
	return strings.Join(rendered, r.opts.PageSeparator) + "\n"
}

func (r *Renderer) headingLevel(level int) int {
	level += r.opts.HeadingShift
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
