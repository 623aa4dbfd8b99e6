// Package extract defines the text-extraction contract the processing
// pipeline consumes, decoupling it from the concrete OCR engine.
package extract

import (
	"context"
	"time"
)

// TextExtractor turns a stored file into raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (TextExtractionResult, error)
}

type TextExtractionResult struct {
	Text       string
	Pages      int
	SourceType string // "PDF" | "IMAGE"
	Method     string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}
