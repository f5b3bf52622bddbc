package model

// DefaultFontSize is used when a run's font id is missing from the page
// font table.
const DefaultFontSize = 12

// FontTable maps the engine's font ids to point sizes.
type FontTable map[string]float64

// Size resolves a font id to its size, falling back to DefaultFontSize for
// unknown ids. The ok result reports whether the id was present.
func (t FontTable) Size(id string) (float64, bool) {
	if t != nil {
		if size, ok := t[id]; ok {
			return size, true
		}
	}
	return DefaultFontSize, false
}

// Page represents a single page as decoded from the extraction transport.
// Width and Height may be 0 when the engine did not report dimensions; in
// that case margin filtering and column detection are disabled for the
// page. Runs carry no meaningful order.
type Page struct {
	Number int     // 1-indexed page number
	Width  float64 // Page width in page units; 0 if unknown
	Height float64 // Page height in page units; 0 if unknown
	Fonts  FontTable
	Runs   []Run
}

// NewPage creates an empty page with the given dimensions.
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Fonts:  make(FontTable),
		Runs:   make([]Run, 0),
	}
}

// AddRun appends a raw run to the page.
func (p *Page) AddRun(run Run) {
	p.Runs = append(p.Runs, run)
}

// Document is an ordered sequence of pages plus the producer string
// reported by the transport, when present.
type Document struct {
	Producer string
	Pages    []*Page
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a page to the document, assigning its number if the
// transport did not.
func (d *Document) AddPage(page *Page) {
	if page.Number == 0 {
		page.Number = len(d.Pages) + 1
	}
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}
