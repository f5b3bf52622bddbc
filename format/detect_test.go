package format

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{PageXML, "PageXML"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, ".pdf"},
		{PageXML, ".xml"},
		{Unknown, ""},
	}
	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.pdf", PDF},
		{"report.PDF", PDF},
		{"dump.xml", PageXML},
		{"dump.XML", PageXML},
		{"notes.txt", Unknown},
		{"noextension", Unknown},
	}
	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectBytes(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Format
	}{
		{"pdf magic", "%PDF-1.7\n...", PDF},
		{"pdf with leading whitespace", "\n%PDF-1.4", PDF},
		{"bare pdf2xml root", `<pdf2xml producer="poppler"><page/></pdf2xml>`, PageXML},
		{"xml declaration first", "<?xml version=\"1.0\"?>\n<pdf2xml></pdf2xml>", PageXML},
		{"doctype between", "<?xml version=\"1.0\"?>\n<!DOCTYPE pdf2xml SYSTEM \"pdf2xml.dtd\">\n<pdf2xml/>", PageXML},
		{"utf8 bom", "\xef\xbb\xbf<pdf2xml/>", PageXML},
		{"other xml", "<?xml version=\"1.0\"?>\n<html></html>", Unknown},
		{"plain text", "just some text", Unknown},
		{"empty", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectBytes([]byte(tt.data)); got != tt.want {
				t.Errorf("DetectBytes(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}
