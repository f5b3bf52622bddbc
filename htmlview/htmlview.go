// Package htmlview renders converted Markdown as a standalone HTML page,
// for eyeballing conversion results in a browser.
package htmlview

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
)

// Options controls the page shell around the converted content.
type Options struct {
	// Title is the page title. Defaults to "Converted document".
	Title string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; font-family: Georgia, serif; line-height: 1.6; color: #222; }
main { max-width: 46rem; margin: 0 auto; padding: 2rem 1rem 4rem; }
h1, h2, h3, h4, h5, h6 { font-family: Helvetica, Arial, sans-serif; line-height: 1.25; }
hr { border: 0; border-top: 1px solid #ccc; margin: 2.5rem 0; }
</style>
</head>
<body>
<main>
{{.Body}}</main>
</body>
</html>
`))

// Render converts Markdown and wraps it in a complete HTML page.
func Render(markdown []byte, opts Options) (string, error) {
	var body bytes.Buffer
	if err := goldmark.New().Convert(markdown, &body); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	if opts.Title == "" {
		opts.Title = "Converted document"
	}

	var out bytes.Buffer
	err := pageTemplate.Execute(&out, struct {
		Title string
		Body  template.HTML
	}{
		Title: opts.Title,
		// The body is our own renderer's output, not user-authored HTML.
		Body: template.HTML(body.String()),
	})
	if err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	return out.String(), nil
}

// WriteFile renders the page and writes it to path.
func WriteFile(path string, markdown []byte, opts Options) error {
	page, err := Render(markdown, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}
