package pdftomd

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered during conversion.
// Conversion succeeded but the affected output may be imperfect.
type Warning struct {
	// Page is the 1-indexed page the warning applies to, or 0 for
	// document-level warnings.
	Page int

	// Message describes the problem.
	Message string
}

// String renders the warning as "page N: message", or just the message
// for document-level warnings.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string,
// suitable for logging.
//
// Example:
//
//	text, warnings, err := pdftomd.Open("doc.pdf").Text(ctx)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pdftomd.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
