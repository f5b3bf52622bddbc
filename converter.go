package pdftomd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/adhipk/pdf-to-md/format"
	"github.com/adhipk/pdf-to-md/htmlview"
	"github.com/adhipk/pdf-to-md/layout"
	"github.com/adhipk/pdf-to-md/markdown"
	"github.com/adhipk/pdf-to-md/model"
	"github.com/adhipk/pdf-to-md/ocr"
	"github.com/adhipk/pdf-to-md/pagexml"
	"github.com/adhipk/pdf-to-md/poppler"
)

// convertedPage holds the conversion outcome for a single page.
type convertedPage struct {
	number int
	text   string
	blocks []layout.Block
}

// Converter provides a fluent interface for converting PDFs and layout
// dumps. Each configuration method returns a new Converter instance,
// making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source (exactly one is set)
	filename string
	xmlData  []byte
	doc      *model.Document

	// Detected input format, resolved lazily from filename
	srcFormat format.Format

	// Extraction engine; a default engine is created when none was
	// injected
	engine *poppler.Engine

	// Configuration
	options ConvertOptions

	// Cached run results, so several terminals on one instance convert
	// once
	ran       bool
	converted []convertedPage

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance. Cached run results are not carried over.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:  c.filename,
		xmlData:   c.xmlData,
		doc:       c.doc,
		srcFormat: c.srcFormat,
		engine:    c.engine,
		options:   c.options.clone(),
		err:       c.err,
		warnings:  append([]Warning(nil), c.warnings...),
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages specifies which pages to convert (1-indexed). Multiple calls are
// cumulative.
//
// Example:
//
//	text, _, err := pdftomd.Open("doc.pdf").Pages(1, 3, 5).Text(ctx)
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.options.pages = append(newConv.options.pages, pages...)
	return newConv
}

// PageRange specifies a range of pages to convert (1-indexed,
// inclusive).
//
// Example:
//
//	text, _, err := pdftomd.Open("doc.pdf").PageRange(5, 10).Text(ctx)
func (c *Converter) PageRange(start, end int) *Converter {
	newConv := c.clone()
	for i := start; i <= end; i++ {
		newConv.options.pages = append(newConv.options.pages, i)
	}
	return newConv
}

// WithStrategy selects the extraction strategy. The default,
// StrategyAuto, uses layout extraction and falls back to naive text when
// the layout dump cannot be produced.
//
// Example:
//
//	text, _, err := pdftomd.Open("doc.pdf").WithStrategy(pdftomd.StrategyNaive).Text(ctx)
func (c *Converter) WithStrategy(s Strategy) *Converter {
	newConv := c.clone()
	newConv.options.strategy = s
	return newConv
}

// WithEngine injects a configured poppler engine, for non-standard tool
// paths or render resolutions.
//
// Example:
//
//	engine := poppler.NewWithConfig(poppler.Config{DPI: 150})
//	text, _, err := pdftomd.Open("doc.pdf").WithEngine(engine).Text(ctx)
func (c *Converter) WithEngine(engine *poppler.Engine) *Converter {
	newConv := c.clone()
	newConv.engine = engine
	return newConv
}

// WithOCR enables the OCR fallback for pages without extractable text,
// which is what every page of a scanned PDF looks like. Requires a PDF
// source and a binary built with the ocr tag; otherwise the fallback is
// skipped with a warning.
//
// Example:
//
//	text, _, err := pdftomd.Open("scan.pdf").WithOCR(ocr.DefaultConfig()).Text(ctx)
func (c *Converter) WithOCR(cfg ocr.Config) *Converter {
	newConv := c.clone()
	newConv.options.ocrEnabled = true
	newConv.options.ocrConfig = cfg
	return newConv
}

// ============================================================================
// Terminal Operations (execute the conversion and return results)
// ============================================================================

// Result is the complete outcome of one conversion run.
type Result struct {
	// PageTexts holds the canonical text of each converted page, in
	// page order.
	PageTexts []string

	// PageBlocks holds the classified blocks of each converted page,
	// aligned with PageTexts.
	PageBlocks [][]layout.Block

	// Text is the document text: non-empty page texts joined by blank
	// lines.
	Text string

	// Markdown is the rendered Markdown document.
	Markdown string

	// Stats summarizes the converted pages.
	Stats model.Stats
}

// Convert runs the conversion once and returns everything it produced.
// Use this instead of several terminal calls when more than one kind of
// output is needed.
//
// Example:
//
//	res, warnings, err := pdftomd.Open("doc.pdf").Convert(ctx)
func (c *Converter) Convert(ctx context.Context) (*Result, []Warning, error) {
	pages, err := c.run(ctx)
	if err != nil {
		return nil, c.warnings, err
	}

	res := &Result{
		PageTexts:  make([]string, len(pages)),
		PageBlocks: make([][]layout.Block, len(pages)),
		Text:       joinPageTexts(pages),
	}
	for i, p := range pages {
		res.PageTexts[i] = p.text
		res.PageBlocks[i] = p.blocks
		res.Stats.AddPage(p.text)
	}
	res.Markdown = markdown.NewRenderer(markdown.DefaultOptions()).RenderDocument(res.PageBlocks)
	return res, c.warnings, nil
}

// Text converts the configured pages and returns the document text:
// canonical page texts joined by blank lines, empty pages skipped.
//
// Returns the text, any warnings encountered during processing, and an
// error if conversion failed. Warnings indicate non-fatal issues where
// conversion succeeded but results may be imperfect.
//
// Example:
//
//	text, warnings, err := pdftomd.Open("document.pdf").Text(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdftomd.FormatWarnings(warnings))
//	}
func (c *Converter) Text(ctx context.Context) (string, []Warning, error) {
	pages, err := c.run(ctx)
	if err != nil {
		return "", c.warnings, err
	}
	return joinPageTexts(pages), c.warnings, nil
}

// PageTexts converts the configured pages and returns each page's
// canonical text separately. Pages that produced nothing are present as
// empty strings.
//
// Example:
//
//	texts, _, err := pdftomd.Open("doc.pdf").PageRange(1, 3).PageTexts(ctx)
func (c *Converter) PageTexts(ctx context.Context) ([]string, []Warning, error) {
	pages, err := c.run(ctx)
	if err != nil {
		return nil, c.warnings, err
	}
	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = p.text
	}
	return texts, c.warnings, nil
}

// Blocks converts the configured pages and returns each page's
// classified blocks in reading order.
//
// Example:
//
//	blocks, _, err := pdftomd.Open("doc.pdf").Blocks(ctx)
//	for _, page := range blocks {
//	    for _, b := range page {
//	        fmt.Println(b.Kind, b.Text)
//	    }
//	}
func (c *Converter) Blocks(ctx context.Context) ([][]layout.Block, []Warning, error) {
	pages, err := c.run(ctx)
	if err != nil {
		return nil, c.warnings, err
	}
	blocks := make([][]layout.Block, len(pages))
	for i, p := range pages {
		blocks[i] = p.blocks
	}
	return blocks, c.warnings, nil
}

// Markdown converts the configured pages and renders them as Markdown
// with the default rendering options.
//
// Example:
//
//	md, warnings, err := pdftomd.Open("document.pdf").Markdown(ctx)
func (c *Converter) Markdown(ctx context.Context) (string, []Warning, error) {
	return c.MarkdownWithOptions(ctx, markdown.DefaultOptions())
}

// MarkdownWithOptions converts the configured pages and renders them as
// Markdown with the given rendering options.
//
// Example:
//
//	md, _, err := pdftomd.Open("doc.pdf").
//	    MarkdownWithOptions(ctx, markdown.Options{HeadingShift: 1})
func (c *Converter) MarkdownWithOptions(ctx context.Context, opts markdown.Options) (string, []Warning, error) {
	pages, err := c.run(ctx)
	if err != nil {
		return "", c.warnings, err
	}
	blocks := make([][]layout.Block, len(pages))
	for i, p := range pages {
		blocks[i] = p.blocks
	}
	return markdown.NewRenderer(opts).RenderDocument(blocks), c.warnings, nil
}

// HTML converts the configured pages and renders them as a standalone
// HTML page, titled after the source file.
//
// Example:
//
//	page, _, err := pdftomd.Open("document.pdf").HTML(ctx)
func (c *Converter) HTML(ctx context.Context) (string, []Warning, error) {
	return c.HTMLWithOptions(ctx, htmlview.Options{})
}

// HTMLWithOptions converts the configured pages and renders them as a
// standalone HTML page with the given view options.
func (c *Converter) HTMLWithOptions(ctx context.Context, opts htmlview.Options) (string, []Warning, error) {
	md, warnings, err := c.Markdown(ctx)
	if err != nil {
		return "", warnings, err
	}
	if opts.Title == "" && c.filename != "" {
		opts.Title = filepath.Base(c.filename)
	}
	page, err := htmlview.Render([]byte(md), opts)
	if err != nil {
		return "", warnings, err
	}
	return page, warnings, nil
}

// Stats converts the configured pages and returns summary statistics
// over their canonical text.
//
// Example:
//
//	stats, _, err := pdftomd.Open("doc.pdf").Stats(ctx)
//	fmt.Printf("%d pages, %d lines, %d chars\n", stats.Pages, stats.Lines, stats.Chars)
func (c *Converter) Stats(ctx context.Context) (model.Stats, []Warning, error) {
	pages, err := c.run(ctx)
	if err != nil {
		return model.Stats{}, c.warnings, err
	}
	var stats model.Stats
	for _, p := range pages {
		stats.AddPage(p.text)
	}
	return stats, c.warnings, nil
}

// Document returns the decoded document model: pages with their raw
// positioned runs and font tables. It always uses the layout transport,
// regardless of the configured strategy.
//
// Example:
//
//	doc, _, err := pdftomd.Open("document.pdf").Document(ctx)
//	fmt.Println("producer:", doc.Producer)
func (c *Converter) Document(ctx context.Context) (*model.Document, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	doc, err := c.load(ctx)
	if err != nil {
		return nil, c.warnings, err
	}
	return doc, c.warnings, nil
}

// PageCount returns the number of pages in the document.
//
// Example:
//
//	count, err := pdftomd.Open("document.pdf").PageCount(ctx)
func (c *Converter) PageCount(ctx context.Context) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	doc, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return doc.PageCount(), nil
}

// ============================================================================
// Internals
// ============================================================================

// run executes the conversion for the configured pages, caching the
// result so several terminals on one instance convert once.
func (c *Converter) run(ctx context.Context) ([]convertedPage, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.ran {
		return c.converted, nil
	}

	useNaive := c.options.strategy == StrategyNaive
	if useNaive && c.pdfPath() == "" {
		c.warn(0, "naive strategy needs a PDF source; using layout extraction")
		useNaive = false
	}

	var pages []convertedPage
	if useNaive {
		var err error
		pages, err = c.runNaive(ctx)
		if err != nil {
			return nil, err
		}
	} else {
		doc, err := c.load(ctx)
		if err != nil {
			if c.options.strategy != StrategyAuto || c.pdfPath() == "" {
				return nil, err
			}
			// The layout dump could not be produced; degrade to plain
			// text rather than failing the whole conversion.
			c.warn(0, fmt.Sprintf("layout extraction failed (%v); falling back to naive text", err))
			pages, err = c.runNaive(ctx)
			if err != nil {
				return nil, err
			}
		} else {
			pages, err = c.runLayout(ctx, doc)
			if err != nil {
				return nil, err
			}
		}
	}

	c.converted = pages
	c.ran = true
	return pages, nil
}

// runLayout converts the requested pages of a decoded document through
// the layout pipeline, applying the OCR fallback to empty pages when
// enabled.
func (c *Converter) runLayout(ctx context.Context, doc *model.Document) ([]convertedPage, error) {
	if doc.PageCount() == 0 {
		c.warn(0, "document has no pages")
		return nil, nil
	}
	nums, err := c.resolvePages(doc.PageCount())
	if err != nil {
		return nil, err
	}

	var ocrClient *ocr.Client
	defer func() { ocrClient.Close() }()

	pages := make([]convertedPage, 0, len(nums))
	for _, n := range nums {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := doc.GetPage(n)
		c.checkPage(page)

		result := layout.AnalyzePage(page)
		text, blocks := result.Text, result.Blocks
		if text == "" {
			if c.options.ocrEnabled {
				if recovered, ok := c.tryOCR(ctx, &ocrClient, n); ok {
					text = recovered
					blocks = layout.ClassifyBlocks(text)
				}
			} else {
				c.warn(n, "no extractable text")
			}
		}
		pages = append(pages, convertedPage{number: n, text: text, blocks: blocks})
	}
	return pages, nil
}

// runNaive converts the requested pages from pdftotext's plain output.
func (c *Converter) runNaive(ctx context.Context) ([]convertedPage, error) {
	raw, err := c.popplerEngine().ExtractText(ctx, c.pdfPath())
	if err != nil {
		return nil, err
	}

	rawPages := strings.Split(raw, "\f")
	// pdftotext terminates its output with a form feed.
	if len(rawPages) > 1 && strings.TrimSpace(rawPages[len(rawPages)-1]) == "" {
		rawPages = rawPages[:len(rawPages)-1]
	}
	if len(rawPages) == 0 || (len(rawPages) == 1 && strings.TrimSpace(rawPages[0]) == "") {
		c.warn(0, "document has no pages")
		return nil, nil
	}

	nums, err := c.resolvePages(len(rawPages))
	if err != nil {
		return nil, err
	}

	pages := make([]convertedPage, 0, len(nums))
	for _, n := range nums {
		text := normalizePlainText(rawPages[n-1])
		pages = append(pages, convertedPage{number: n, text: text, blocks: layout.ClassifyBlocks(text)})
	}
	return pages, nil
}

// tryOCR renders the page and recognizes its text. It returns ok=false
// after warning when any stage is unavailable or fails; conversion then
// keeps the empty page.
func (c *Converter) tryOCR(ctx context.Context, client **ocr.Client, pageNum int) (string, bool) {
	pdf := c.pdfPath()
	if pdf == "" {
		c.warn(pageNum, "no extractable text and the OCR fallback needs a PDF source")
		c.options.ocrEnabled = false // no point retrying per page
		return "", false
	}
	if *client == nil {
		cl, err := ocr.NewWithConfig(c.options.ocrConfig)
		if err != nil {
			c.warn(pageNum, fmt.Sprintf("no extractable text and OCR is unavailable: %v", err))
			c.options.ocrEnabled = false
			return "", false
		}
		*client = cl
	}

	img, err := c.popplerEngine().RenderPage(ctx, pdf, pageNum)
	if err != nil {
		c.warn(pageNum, fmt.Sprintf("rendering for OCR failed: %v", err))
		return "", false
	}
	text, err := (*client).RecognizeImage(img)
	if err != nil {
		c.warn(pageNum, fmt.Sprintf("OCR failed: %v", err))
		return "", false
	}
	text = normalizePlainText(text)
	if text == "" {
		c.warn(pageNum, "no extractable text and OCR found none")
		return "", false
	}
	c.warn(pageNum, "no extractable text; recovered with OCR")
	return text, true
}

// load decodes the document model from whichever source the Converter
// was built with, extracting the layout dump first when the source is a
// PDF file.
func (c *Converter) load(ctx context.Context) (*model.Document, error) {
	if c.doc != nil {
		return c.doc, nil
	}

	var data []byte
	switch {
	case c.xmlData != nil:
		data = c.xmlData
	case c.filename != "":
		switch f := c.inputFormat(); f {
		case format.PageXML:
			b, err := os.ReadFile(c.filename)
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", c.filename, err)
			}
			data = b
		case format.PDF:
			b, err := c.popplerEngine().ExtractXML(ctx, c.filename)
			if err != nil {
				return nil, err
			}
			data = b
		default:
			return nil, fmt.Errorf("cannot determine the format of %s", c.filename)
		}
	default:
		return nil, fmt.Errorf("no input specified")
	}

	doc, err := pagexml.Parse(data)
	if err != nil {
		return nil, err
	}
	c.doc = doc
	return doc, nil
}

// resolvePages validates the configured page selection against the page
// count and returns the 1-indexed page numbers to convert, deduplicated
// and in order. An empty selection means all pages.
func (c *Converter) resolvePages(pageCount int) ([]int, error) {
	if len(c.options.pages) == 0 {
		all := make([]int, pageCount)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	seen := make(map[int]bool)
	var nums []int
	for _, p := range c.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p] {
			seen[p] = true
			nums = append(nums, p)
		}
	}
	sort.Ints(nums)
	return nums, nil
}

// checkPage records warnings for page-level conditions that degrade
// conversion quality.
func (c *Converter) checkPage(page *model.Page) {
	if page.Width == 0 || page.Height == 0 {
		c.warn(page.Number, "no page dimensions reported; margin and column heuristics disabled")
	}
	if n := unresolvedFonts(page); n > 0 {
		c.warn(page.Number, fmt.Sprintf("%d runs reference fonts missing from the font table", n))
	}
}

func unresolvedFonts(page *model.Page) int {
	n := 0
	for _, r := range page.Runs {
		if r.Font == "" {
			continue
		}
		if _, ok := page.Fonts.Size(r.Font); !ok {
			n++
		}
	}
	return n
}

// inputFormat resolves the source file's format, first from its
// extension and then by sniffing its head.
func (c *Converter) inputFormat() format.Format {
	if c.srcFormat != format.Unknown {
		return c.srcFormat
	}
	f := format.Detect(c.filename)
	if f == format.Unknown {
		f = sniffFile(c.filename)
	}
	c.srcFormat = f
	return f
}

// pdfPath returns the source filename when it refers to a PDF, the only
// source the poppler tools can work from. Empty otherwise.
func (c *Converter) pdfPath() string {
	if c.filename != "" && c.inputFormat() == format.PDF {
		return c.filename
	}
	return ""
}

func (c *Converter) popplerEngine() *poppler.Engine {
	if c.engine == nil {
		c.engine = poppler.New()
	}
	return c.engine
}

func (c *Converter) warn(page int, msg string) {
	c.warnings = append(c.warnings, Warning{Page: page, Message: msg})
}

func sniffFile(path string) format.Format {
	f, err := os.Open(path)
	if err != nil {
		return format.Unknown
	}
	defer f.Close()

	head := make([]byte, 512)
	n, _ := f.Read(head)
	return format.DetectBytes(head[:n])
}

func joinPageTexts(pages []convertedPage) string {
	var b strings.Builder
	for _, p := range pages {
		if b.Len() > 0 && p.text != "" {
			b.WriteString("\n\n")
		}
		b.WriteString(p.text)
	}
	return b.String()
}

var multiBlank = regexp.MustCompile(`\n{3,}`)

// normalizePlainText brings externally produced text (pdftotext output,
// OCR results) to the canonical page-text conventions: Unix newlines, no
// trailing whitespace on lines, at most one blank line between blocks,
// no surrounding whitespace.
func normalizePlainText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	s = strings.Join(lines, "\n")
	s = multiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
