package poppler

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// fakeTool writes an executable shell script into dir and returns its
// path. Tests that use it only run where /bin/sh exists.
func fakeTool(t *testing.T, dir, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PDFToHTML != "pdftohtml" || cfg.PDFToText != "pdftotext" || cfg.PDFToPPM != "pdftoppm" {
		t.Errorf("unexpected tool names: %+v", cfg)
	}
	if cfg.DPI != 300 {
		t.Errorf("DPI = %d, want 300", cfg.DPI)
	}
}

func TestNewWithConfig_FillsDefaults(t *testing.T) {
	e := NewWithConfig(Config{PDFToHTML: "/opt/poppler/pdftohtml"})
	if e.cfg.PDFToHTML != "/opt/poppler/pdftohtml" {
		t.Errorf("PDFToHTML = %q, want the override kept", e.cfg.PDFToHTML)
	}
	if e.cfg.PDFToText != "pdftotext" {
		t.Errorf("PDFToText = %q, want the default", e.cfg.PDFToText)
	}
	if e.cfg.DPI != 300 {
		t.Errorf("DPI = %d, want the default 300", e.cfg.DPI)
	}
}

func TestCheck_MissingTool(t *testing.T) {
	e := NewWithConfig(Config{PDFToHTML: "definitely-not-a-poppler-tool"})
	err := e.Check()
	if err == nil {
		t.Fatal("expected an error for a missing tool")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "definitely-not-a-poppler-tool") {
		t.Errorf("error %q does not name the missing tool", err)
	}
}

func TestCheck_FindsConfiguredTools(t *testing.T) {
	dir := t.TempDir()
	e := NewWithConfig(Config{
		PDFToHTML: fakeTool(t, dir, "pdftohtml", "exit 0"),
		PDFToText: fakeTool(t, dir, "pdftotext", "exit 0"),
		PDFToPPM:  fakeTool(t, dir, "pdftoppm", "exit 0"),
	})
	if err := e.Check(); err != nil {
		t.Errorf("Check() = %v, want nil", err)
	}
}

func TestExtractXML(t *testing.T) {
	dir := t.TempDir()
	// The last argument is the output base; pdftohtml appends ".xml".
	script := `for a in "$@"; do out=$a; done
printf '<pdf2xml producer="fake"><page number="1" width="612" height="792"/></pdf2xml>' > "$out.xml"`
	e := NewWithConfig(Config{PDFToHTML: fakeTool(t, dir, "pdftohtml", script)})

	data, err := e.ExtractXML(context.Background(), "input.pdf")
	if err != nil {
		t.Fatalf("ExtractXML: %v", err)
	}
	if !strings.Contains(string(data), `producer="fake"`) {
		t.Errorf("unexpected XML: %s", data)
	}
}

func TestExtractXML_ToolFailure(t *testing.T) {
	dir := t.TempDir()
	script := `echo 'Syntax Error: damaged xref table' >&2
exit 3`
	e := NewWithConfig(Config{PDFToHTML: fakeTool(t, dir, "pdftohtml", script)})

	_, err := e.ExtractXML(context.Background(), "input.pdf")
	if err == nil {
		t.Fatal("expected an error when the tool exits non-zero")
	}
	if !strings.Contains(err.Error(), "damaged xref table") {
		t.Errorf("error %q does not carry the tool's stderr", err)
	}
}

func TestExtractText_ToolMissing(t *testing.T) {
	e := NewWithConfig(Config{PDFToText: "definitely-not-a-poppler-tool"})
	_, err := e.ExtractText(context.Background(), "input.pdf")
	if err == nil {
		t.Fatal("expected an error for a missing tool")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestExtractText(t *testing.T) {
	dir := t.TempDir()
	script := `printf 'Hello from page one.\fSecond page.'`
	e := NewWithConfig(Config{PDFToText: fakeTool(t, dir, "pdftotext", script)})

	text, err := e.ExtractText(context.Background(), "input.pdf")
	if err != nil {
		t.Fatalf("ExtractText: %v", err)
	}
	if !strings.Contains(text, "\f") {
		t.Errorf("form feed page separator missing from %q", text)
	}
	if !strings.HasPrefix(text, "Hello from page one.") {
		t.Errorf("unexpected text: %q", text)
	}
}

func TestRenderPage(t *testing.T) {
	dir := t.TempDir()
	script := `for a in "$@"; do out=$a; done
printf 'not-really-png' > "$out-01.png"`
	e := NewWithConfig(Config{PDFToPPM: fakeTool(t, dir, "pdftoppm", script)})

	data, err := e.RenderPage(context.Background(), "input.pdf", 1)
	if err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	if string(data) != "not-really-png" {
		t.Errorf("unexpected image bytes: %q", data)
	}
}

func TestRenderPage_NoOutput(t *testing.T) {
	dir := t.TempDir()
	e := NewWithConfig(Config{PDFToPPM: fakeTool(t, dir, "pdftoppm", "exit 0")})

	_, err := e.RenderPage(context.Background(), "input.pdf", 99)
	if err == nil {
		t.Fatal("expected an error when no image is produced")
	}
	if !strings.Contains(err.Error(), "page 99") {
		t.Errorf("error %q does not name the page", err)
	}
}

func TestRenderPage_PageOutOfRange(t *testing.T) {
	e := New()
	if _, err := e.RenderPage(context.Background(), "input.pdf", 0); err == nil {
		t.Error("expected an error for page 0")
	}
}

func TestExtractText_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	e := NewWithConfig(Config{PDFToText: fakeTool(t, dir, "pdftotext", "sleep 5")})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.ExtractText(ctx, "input.pdf"); err == nil {
		t.Error("expected an error from a canceled context")
	}
}
