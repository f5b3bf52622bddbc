package htmlview

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRender_ConvertsMarkdown(t *testing.T) {
	page, err := Render([]byte("# Title\n\nBody paragraph.\n\n- item\n"), Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	for _, want := range []string{"<h1", "Title", "<p>Body paragraph.</p>", "<li>item</li>"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q:\n%s", want, page)
		}
	}
	if !strings.Contains(page, "<title>Converted document</title>") {
		t.Error("default title missing")
	}
}

func TestRender_EscapesTitle(t *testing.T) {
	page, err := Render([]byte("text"), Options{Title: `<script>"attack"</script>`})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(page, "<script>") {
		t.Error("title not escaped")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	if err := WriteFile(path, []byte("# Saved\n"), Options{Title: "Saved"}); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(data), "<title>Saved</title>") {
		t.Error("written page missing the title")
	}
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.html"), []byte("x"), Options{})
	if err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
