// Package server exposes the document pipeline over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/internal/extract"
	"github.com/yeonjae-dev/ocrean/internal/storage"
)

// OCRRunner runs the OCR stage for a document.
type OCRRunner interface {
	Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error)
}

// SentenceRunner runs sentence extraction for a document.
type SentenceRunner interface {
	Run(ctx context.Context, documentID uuid.UUID) (storage.SentenceRecord, error)
}

// Exporter renders a document as an XLSX workbook.
type Exporter interface {
	ExportDocumentXLSX(ctx context.Context, documentID uuid.UUID, minLength int) ([]byte, error)
}

// VocabularyExtractor returns the unique Hangul words of a text.
type VocabularyExtractor interface {
	ExtractVocabulary(text string, minLength int) []string
}

// New assembles the gin engine with all routes registered.
func New(h *DocumentHandler, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ocrean: korean document text pipeline"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	docs := r.Group("/documents")
	{
		docs.POST("/upload", h.Upload)
		docs.POST("/:id/ocr", h.RunOCR)
		docs.POST("/:id/sentences", h.ExtractSentences)
		docs.GET("/:id/sentences", h.GetSentences)
		docs.POST("/:id/vocabulary", h.ExtractVocabulary)
		docs.GET("/:id/export", h.Export)
	}
	return r
}

// requestLogger logs one line per request through slog.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
