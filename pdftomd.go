// Package pdftomd converts PDF documents to structured plain text and
// Markdown. It drives the poppler command line tools for raw extraction,
// reconstructs reading order, lines, and blocks from the positioned text,
// and classifies the result into headings, list items, and paragraphs.
//
// Basic usage:
//
//	text, warnings, err := pdftomd.Open("document.pdf").Text(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdftomd.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := pdftomd.Open("report.pdf").
//	    PageRange(2, 9).
//	    WithOCR(ocr.DefaultConfig()).
//	    Markdown(ctx)
//
// For advanced use cases, the lower-level layout, pagexml, and poppler
// packages are also available.
package pdftomd

import (
	"github.com/adhipk/pdf-to-md/model"
)

// Open prepares a conversion of the named file and returns a Converter
// for fluent configuration. The file may be a PDF or an XML layout dump
// produced by pdftohtml -xml; the format is detected when a terminal
// operation runs. Nothing is read until then.
//
// Example:
//
//	text, warnings, err := pdftomd.Open("document.pdf").Text(ctx)
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromXML prepares a conversion of an already-extracted pdftohtml XML
// dump. No poppler tools are needed on this path.
//
// Example:
//
//	text, warnings, err := pdftomd.FromXML(dump).Text(ctx)
func FromXML(data []byte) *Converter {
	return &Converter{
		xmlData: data,
		options: defaultOptions(),
	}
}

// FromDocument prepares a conversion of an already-decoded document
// model. Useful with custom decode pipelines; the document is treated as
// read-only.
func FromDocument(doc *model.Document) *Converter {
	return &Converter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdftomd.Must(pdftomd.Open("document.pdf").PageCount(ctx))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to a terminal operation and
// panics if the error is non-nil. It discards warnings and returns just
// the value. It is intended for use in scripts or tests where error
// handling would be cumbersome.
//
// Example:
//
//	text := pdftomd.MustText(pdftomd.Open("document.pdf").Text(ctx))
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
