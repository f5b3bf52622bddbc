// Package poppler shells out to the poppler-utils command line tools for
// the raw extraction work: pdftohtml for positioned-text XML dumps,
// pdftotext for plain text, and pdftoppm for page images. The tools must
// be installed on the system. On macOS, install via:
//
//	brew install poppler
//
// On Ubuntu/Debian:
//
//	apt-get install poppler-utils
//
// Every extraction runs in its own scratch directory that is removed
// before the call returns, whatever the outcome.
package poppler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotFound reports that a poppler tool is not installed or not on the
// PATH.
var ErrNotFound = errors.New("poppler tool not found")

// Config selects the tool binaries and render resolution. Binaries may
// be bare names resolved through the PATH or absolute paths.
type Config struct {
	PDFToHTML string
	PDFToText string
	PDFToPPM  string

	// DPI is the resolution page images are rendered at. OCR quality
	// drops sharply below 150.
	DPI int
}

// DefaultConfig returns the standard tool names and a 300 DPI render
// resolution.
func DefaultConfig() Config {
	return Config{
		PDFToHTML: "pdftohtml",
		PDFToText: "pdftotext",
		PDFToPPM:  "pdftoppm",
		DPI:       300,
	}
}

// Engine invokes the poppler tools. The zero value is not usable; create
// engines with New or NewWithConfig.
type Engine struct {
	cfg Config
}

// New creates an engine with the default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine, filling unset fields from the
// defaults.
func NewWithConfig(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.PDFToHTML == "" {
		cfg.PDFToHTML = def.PDFToHTML
	}
	if cfg.PDFToText == "" {
		cfg.PDFToText = def.PDFToText
	}
	if cfg.PDFToPPM == "" {
		cfg.PDFToPPM = def.PDFToPPM
	}
	if cfg.DPI <= 0 {
		cfg.DPI = def.DPI
	}
	return &Engine{cfg: cfg}
}

// Check verifies that every configured tool can be found, returning an
// error wrapping ErrNotFound for the first one that cannot.
func (e *Engine) Check() error {
	for _, tool := range []string{e.cfg.PDFToHTML, e.cfg.PDFToText, e.cfg.PDFToPPM} {
		if _, err := exec.LookPath(tool); err != nil {
			return fmt.Errorf("%s: %w", tool, ErrNotFound)
		}
	}
	return nil
}

// ExtractXML runs pdftohtml -xml over the file and returns the XML dump.
// The -i flag skips embedded images and -enc pins the output to UTF-8.
func (e *Engine) ExtractXML(ctx context.Context, pdfPath string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "pdf2md-xml-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "page")
	cmd := exec.CommandContext(ctx, e.cfg.PDFToHTML, "-xml", "-i", "-q", "-enc", "UTF-8", pdfPath, base)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, runError(e.cfg.PDFToHTML, err, &stderr)
	}

	data, err := os.ReadFile(base + ".xml")
	if err != nil {
		return nil, fmt.Errorf("reading %s output: %w", e.cfg.PDFToHTML, err)
	}
	return data, nil
}

// ExtractText runs pdftotext over the file and returns its stdout. Pages
// in the output are separated by form feeds.
func (e *Engine) ExtractText(ctx context.Context, pdfPath string) (string, error) {
	cmd := exec.CommandContext(ctx, e.cfg.PDFToText, "-enc", "UTF-8", pdfPath, "-")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", runError(e.cfg.PDFToText, err, &stderr)
	}
	return stdout.String(), nil
}

// RenderPage rasterizes one page (1-indexed) to a PNG at the configured
// DPI.
func (e *Engine) RenderPage(ctx context.Context, pdfPath string, page int) ([]byte, error) {
	if page < 1 {
		return nil, fmt.Errorf("page %d out of range", page)
	}
	dir, err := os.MkdirTemp("", "pdf2md-ppm-")
	if err != nil {
		return nil, fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	base := filepath.Join(dir, "page")
	n := strconv.Itoa(page)
	cmd := exec.CommandContext(ctx, e.cfg.PDFToPPM, "-png", "-r", strconv.Itoa(e.cfg.DPI), "-f", n, "-l", n, pdfPath, base)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, runError(e.cfg.PDFToPPM, err, &stderr)
	}

	// pdftoppm zero-pads the page suffix depending on the document, so
	// glob instead of guessing the exact name.
	matches, err := filepath.Glob(base + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("locating %s output: %w", e.cfg.PDFToPPM, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s produced no image for page %d", e.cfg.PDFToPPM, page)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s output: %w", e.cfg.PDFToPPM, err)
	}
	return data, nil
}

func runError(tool string, err error, stderr *bytes.Buffer) error {
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%s: %w", tool, ErrNotFound)
	}
	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%s: %w: %s", tool, err, msg)
	}
	return fmt.Errorf("%s: %w", tool, err)
}
