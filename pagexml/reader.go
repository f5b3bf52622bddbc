// Package pagexml decodes the XML layout dump produced by pdftohtml -xml
// into the document model. The decoder is deliberately thin: coordinates
// and font references are carried over as-is, and the inner markup of
// text elements is preserved verbatim for the layout collector to
// normalize later.
package pagexml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/adhipk/pdf-to-md/model"
)

// Parse decodes a pdftohtml XML dump. It fails when the input is not
// well-formed XML or its root element is not pdf2xml.
func Parse(data []byte) (*model.Document, error) {
	var root pdfXML
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding page XML: %w", err)
	}
	return buildDocument(&root), nil
}

// ParseReader reads the stream to its end and decodes it like Parse.
func ParseReader(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading page XML: %w", err)
	}
	return Parse(data)
}

func buildDocument(root *pdfXML) *model.Document {
	doc := model.NewDocument()
	doc.Producer = root.Producer
	// pdftohtml declares each fontspec once, on the page where the font
	// first appears. Later pages reuse the id, so the table accumulates
	// across pages. Every page gets its own snapshot of the table.
	fonts := model.FontTable{}
	for _, p := range root.Pages {
		for _, f := range p.Fontspecs {
			fonts[f.ID] = f.Size
		}
		page := model.NewPage(p.Width, p.Height)
		page.Number = p.Number
		for id, size := range fonts {
			page.Fonts[id] = size
		}
		for _, t := range p.Texts {
			page.AddRun(model.Run{Top: t.Top, Left: t.Left, Font: t.Font, Text: t.Raw})
		}
		doc.AddPage(page)
	}
	return doc
}
