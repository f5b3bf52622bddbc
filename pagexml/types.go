package pagexml

import "encoding/xml"

// Transport structures for the pdftohtml -xml dump: a pdf2xml root with
// one page element per page, each carrying fontspec declarations and
// positioned text elements. The innerxml capture keeps a text element's
// inline markup and entity references exactly as emitted.

type pdfXML struct {
	XMLName  xml.Name  `xml:"pdf2xml"`
	Producer string    `xml:"producer,attr"`
	Version  string    `xml:"version,attr"`
	Pages    []pageXML `xml:"page"`
}

type pageXML struct {
	Number    int           `xml:"number,attr"`
	Width     float64       `xml:"width,attr"`
	Height    float64       `xml:"height,attr"`
	Fontspecs []fontspecXML `xml:"fontspec"`
	Texts     []textXML     `xml:"text"`
}

type fontspecXML struct {
	ID     string  `xml:"id,attr"`
	Size   float64 `xml:"size,attr"`
	Family string  `xml:"family,attr"`
	Color  string  `xml:"color,attr"`
}

type textXML struct {
	Top    float64 `xml:"top,attr"`
	Left   float64 `xml:"left,attr"`
	Width  float64 `xml:"width,attr"`
	Height float64 `xml:"height,attr"`
	Font   string  `xml:"font,attr"`
	Raw    string  `xml:",innerxml"`
}
