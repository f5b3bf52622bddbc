//go:build ocr

// Package ocr recognizes text in rendered page images, the fallback for
// scanned PDFs whose pages carry no extractable text.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/image/draw"

	_ "image/jpeg"

	_ "golang.org/x/image/tiff"
)

// Client wraps Tesseract for OCR operations. Close it when no longer
// needed to release the engine's resources.
type Client struct {
	client *gosseract.Client
	maxDim int
}

// New creates an OCR client with the default configuration.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an OCR client. Unset config fields fall back to
// their defaults.
func NewWithConfig(cfg Config) (*Client, error) {
	def := DefaultConfig()
	if cfg.Language == "" {
		cfg.Language = def.Language
	}
	if cfg.MaxDimension <= 0 {
		cfg.MaxDimension = def.MaxDimension
	}

	client := gosseract.NewClient()
	if err := client.SetLanguage(cfg.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting language: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.Mode)); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}
	return &Client{client: client, maxDim: cfg.MaxDimension}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG). Oversized
// images are scaled down to the configured cap first. Returns the
// recognized text with leading and trailing whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	imageData, err := capImageSize(imageData, c.maxDim)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple
// languages can be specified as a "+" separated string (e.g. "eng+fra").
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}

// capImageSize scales the image down when its longer side exceeds limit,
// re-encoding it as PNG. Images within the limit pass through untouched.
func capImageSize(data []byte, limit int) ([]byte, error) {
	if limit <= 0 {
		return data, nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if cfg.Width <= limit && cfg.Height <= limit {
		return data, nil
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	scale := float64(limit) / float64(max(cfg.Width, cfg.Height))
	w := int(float64(cfg.Width) * scale)
	h := int(float64(cfg.Height) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encoding scaled image: %w", err)
	}
	return buf.Bytes(), nil
}
