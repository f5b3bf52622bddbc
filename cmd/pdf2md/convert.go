package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	pdftomd "github.com/adhipk/pdf-to-md"
	"github.com/adhipk/pdf-to-md/htmlview"
	"github.com/adhipk/pdf-to-md/ocr"
)

var (
	outputPath   string
	outputFormat string
	pageSpec     string
	strategyName string
	ocrEnabled   bool
	ocrLanguage  string
	htmlTitle    string
)

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Convert a PDF or layout dump to text, Markdown, or HTML",
	Long: `Convert a PDF or pdftohtml XML dump to plain text, Markdown, or HTML.

Examples:
  # Markdown to stdout
  pdf2md convert thesis.pdf

  # Plain text to a file
  pdf2md convert thesis.pdf --format text -o thesis.txt

  # Pages 2 through 9 as HTML
  pdf2md convert thesis.pdf --format html --pages 2-9 -o thesis.html

  # Recover scanned pages with OCR (requires a build with -tags ocr)
  pdf2md convert scan.pdf --ocr --ocr-lang deu
`,
	Args: exactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
	convertCmd.Flags().StringVarP(&outputFormat, "format", "f", "markdown", "Output format: text, markdown, html")
	convertCmd.Flags().StringVarP(&pageSpec, "pages", "p", "", "Pages to convert, e.g. 3, 2-9, or 1,4,7")
	convertCmd.Flags().StringVarP(&strategyName, "strategy", "s", "auto", "Extraction strategy: auto, layout, naive")
	convertCmd.Flags().BoolVar(&ocrEnabled, "ocr", false, "Recognize pages with no extractable text")
	convertCmd.Flags().StringVar(&ocrLanguage, "ocr-lang", "", "OCR language (default eng)")
	convertCmd.Flags().StringVar(&htmlTitle, "title", "", "HTML page title (html format only)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	strategy, err := parseStrategy(strategyName)
	if err != nil {
		return err
	}
	if outputFormat != "text" && outputFormat != "markdown" && outputFormat != "html" {
		return usageErrorf("unknown format %q (want text, markdown, or html)", outputFormat)
	}

	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	conv := pdftomd.Open(args[0]).
		WithEngine(engineFromConfig()).
		WithStrategy(strategy)

	if pageSpec != "" {
		pages, err := parsePageSpec(pageSpec)
		if err != nil {
			return err
		}
		conv = conv.Pages(pages...)
	}
	if ocrEnabled || ocrLanguage != "" {
		cfg := ocr.DefaultConfig()
		if lang := ocrLang(); lang != "" {
			cfg.Language = lang
		}
		conv = conv.WithOCR(cfg)
	}

	ctx := cmd.Context()
	logger.Debug("converting", zap.String("input", args[0]), zap.String("format", outputFormat))

	var out string
	var warnings []pdftomd.Warning
	switch outputFormat {
	case "text":
		out, warnings, err = conv.Text(ctx)
	case "markdown":
		out, warnings, err = conv.Markdown(ctx)
	case "html":
		out, warnings, err = conv.HTMLWithOptions(ctx, htmlview.Options{Title: htmlTitle})
	}
	if err != nil {
		return installHint(err)
	}

	for _, w := range warnings {
		logger.Warn(w.Message, zap.Int("page", w.Page))
	}

	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	if outputPath == "" {
		fmt.Print(out)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return err
	}
	logger.Debug("wrote output", zap.String("path", outputPath), zap.Int("bytes", len(out)))
	return nil
}

// ocrLang resolves the OCR language: flag first, then the config file.
func ocrLang() string {
	if ocrLanguage != "" {
		return ocrLanguage
	}
	return viper.GetString("ocr.language")
}

func parseStrategy(name string) (pdftomd.Strategy, error) {
	switch name {
	case "auto":
		return pdftomd.StrategyAuto, nil
	case "layout":
		return pdftomd.StrategyLayout, nil
	case "naive", "text":
		return pdftomd.StrategyNaive, nil
	}
	return 0, usageErrorf("unknown strategy %q (want auto, layout, or naive)", name)
}

// parsePageSpec parses a page selection like "3", "2-9", or "1,4,7-9"
// into 1-indexed page numbers.
func parsePageSpec(spec string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if first, last, ok := strings.Cut(part, "-"); ok {
			from, err1 := strconv.Atoi(strings.TrimSpace(first))
			to, err2 := strconv.Atoi(strings.TrimSpace(last))
			if err1 != nil || err2 != nil || from < 1 || to < from {
				return nil, usageErrorf("invalid page range %q", part)
			}
			for p := from; p <= to; p++ {
				pages = append(pages, p)
			}
			continue
		}
		p, err := strconv.Atoi(part)
		if err != nil || p < 1 {
			return nil, usageErrorf("invalid page number %q", part)
		}
		pages = append(pages, p)
	}
	if len(pages) == 0 {
		return nil, usageErrorf("empty page selection %q", spec)
	}
	return pages, nil
}
