//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("expected an error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("expected ErrOCRNotEnabled, got: %v", err)
	}
	if client != nil {
		t.Error("expected a nil client when OCR is disabled")
	}
}

func TestNewWithConfigReturnsError(t *testing.T) {
	if _, err := NewWithConfig(DefaultConfig()); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("expected ErrOCRNotEnabled, got: %v", err)
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Language != "eng" {
		t.Errorf("Language = %q, want %q", cfg.Language, "eng")
	}
	if cfg.Mode != PSM_AUTO {
		t.Errorf("Mode = %v, want PSM_AUTO", cfg.Mode)
	}
	if cfg.MaxDimension != 3000 {
		t.Errorf("MaxDimension = %d, want 3000", cfg.MaxDimension)
	}
}
