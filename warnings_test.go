package pdftomd

import "testing"

func TestWarningString(t *testing.T) {
	tests := []struct {
		name    string
		warning Warning
		want    string
	}{
		{"page-level", Warning{Page: 3, Message: "no extractable text"}, "page 3: no extractable text"},
		{"document-level", Warning{Page: 0, Message: "document has no pages"}, "document has no pages"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.warning.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Page: 0, Message: "document has no pages"},
		{Page: 2, Message: "no extractable text"},
	}
	want := "document has no pages; page 2: no extractable text"
	if got := FormatWarnings(warnings); got != want {
		t.Errorf("FormatWarnings() = %q, want %q", got, want)
	}
}

func TestFormatWarnings_Empty(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
}
