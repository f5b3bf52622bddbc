// Package format provides input format detection for the pdf-to-md
// library.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// PageXML indicates a pdftohtml -xml layout dump.
	PageXML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PageXML:
		return "PageXML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PageXML:
		return ".xml"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return PDF
	case ".xml":
		return PageXML
	default:
		return Unknown
	}
}

// DetectBytes sniffs the content to determine the format. It is more
// reliable than extension-based detection: a PDF starts with the %PDF
// magic, and a layout dump is an XML document whose root element is
// pdf2xml. Returns Unknown when neither signature is found.
func DetectBytes(data []byte) Format {
	data = bytes.TrimLeft(data, " \t\r\n")
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")) // UTF-8 BOM

	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// An XML declaration or doctype may precede the root element, so
	// search the head of the document rather than the first bytes only.
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if bytes.HasPrefix(head, []byte("<")) && bytes.Contains(head, []byte("<pdf2xml")) {
		return PageXML
	}

	return Unknown
}
