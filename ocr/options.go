package ocr

// PageSegMode controls how Tesseract segments a page before recognizing
// it. The values match Tesseract's own --psm numbering.
type PageSegMode int

const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Config tunes the OCR client.
type Config struct {
	// Language selects the recognition language(s). Multiple languages
	// are joined with "+", e.g. "eng+fra".
	Language string

	// Mode is the page segmentation mode handed to Tesseract.
	Mode PageSegMode

	// MaxDimension caps the longer side of an image in pixels before
	// recognition; larger inputs are scaled down first. High-DPI page
	// renders beyond this size slow Tesseract down without improving
	// accuracy.
	MaxDimension int
}

// DefaultConfig returns English recognition in fully automatic page
// segmentation with images capped at 3000 pixels.
func DefaultConfig() Config {
	return Config{
		Language:     "eng",
		Mode:         PSM_AUTO,
		MaxDimension: 3000,
	}
}
