package server

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/internal/export"
	processor "github.com/yeonjae-dev/ocrean/internal/pipeline"
	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
)

// DocumentHandler serves the /documents routes.
type DocumentHandler struct {
	Docs      repository.DocumentRepository
	Store     storage.FileStorage
	OCR       OCRRunner
	Sentences SentenceRunner
	Vocab     VocabularyExtractor
	Exports   Exporter
	Logger    *slog.Logger
}

func NewDocumentHandler(
	docs repository.DocumentRepository,
	store storage.FileStorage,
	ocr OCRRunner,
	sentences SentenceRunner,
	vocab VocabularyExtractor,
	exports Exporter,
	logger *slog.Logger,
) *DocumentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentHandler{
		Docs:      docs,
		Store:     store,
		OCR:       ocr,
		Sentences: sentences,
		Vocab:     vocab,
		Exports:   exports,
		Logger:    logger,
	}
}

// Upload accepts a multipart file, deduplicates it by content hash, and
// registers it as a document.
func (h *DocumentHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}

	ext := constants.NormalizeExt(filepath.Ext(fh.Filename))
	if !constants.IsAllowedExt(ext) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file extension: %q", ext)})
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.internal(c, "open upload", err)
		return
	}
	defer f.Close()

	hash := sha256.New()
	size, err := io.Copy(hash, f)
	if err != nil {
		h.internal(c, "hash upload", err)
		return
	}
	sum := hash.Sum(nil)

	ctx := c.Request.Context()
	existing, err := h.Docs.GetByHash(ctx, sum)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"document_id":  existing.ID.String(),
			"filename":     existing.Filename,
			"deduplicated": true,
		})
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		h.internal(c, "dedup lookup", err)
		return
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		h.internal(c, "rewind upload", err)
		return
	}

	doc, err := h.Docs.Create(ctx, fh.Filename, ext, int(size), sum, "", time.Now().UTC())
	if err != nil {
		h.internal(c, "create document", err)
		return
	}
	key := storage.RawKey(doc.ID, ext)
	if err := h.Store.Put(ctx, key, f); err != nil {
		h.rollback(ctx, doc.ID)
		h.internal(c, "store upload", err)
		return
	}
	if _, err := h.Docs.SetStorageKey(ctx, doc.ID, key); err != nil {
		h.rollback(ctx, doc.ID)
		h.internal(c, "set storage key", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"document_id":  doc.ID.String(),
		"filename":     doc.Filename,
		"deduplicated": false,
	})
}

// RunOCR extracts text from the stored file and persists it.
func (h *DocumentHandler) RunOCR(c *gin.Context) {
	id, ok := h.documentID(c)
	if !ok {
		return
	}

	jobID, res, err := h.OCR.Run(c.Request.Context(), id)
	if err != nil {
		h.internal(c, "ocr", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_id": id.String(),
		"job_id":      jobID.String(),
		"text":        res.Text,
		"method":      res.Method,
		"pages":       res.Pages,
		"confidence":  res.Confidence,
	})
}

// ExtractSentences splits the document's OCR text and persists the record.
func (h *DocumentHandler) ExtractSentences(c *gin.Context) {
	id, ok := h.documentID(c)
	if !ok {
		return
	}

	rec, err := h.Sentences.Run(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, processor.ErrOCRNotRun) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ocr text not found; run ocr first"})
			return
		}
		h.internal(c, "sentence extraction", err)
		return
	}

	c.JSON(http.StatusOK, sentenceResponse(rec))
}

// GetSentences returns the last persisted sentence record.
func (h *DocumentHandler) GetSentences(c *gin.Context) {
	id, ok := h.documentID(c)
	if !ok {
		return
	}

	rec, err := storage.LoadSentenceRecord(c.Request.Context(), h.Store, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no sentence record for this document"})
			return
		}
		h.internal(c, "load sentence record", err)
		return
	}

	c.JSON(http.StatusOK, sentenceResponse(rec))
}

// ExtractVocabulary computes vocabulary from the OCR text on the fly.
func (h *DocumentHandler) ExtractVocabulary(c *gin.Context) {
	id, ok := h.documentID(c)
	if !ok {
		return
	}

	minLength := 1
	if raw := c.Query("min_length"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_length must be an integer"})
			return
		}
		minLength = v
	}
	if minLength < 1 {
		minLength = 1
	}

	text, err := storage.LoadOCRText(c.Request.Context(), h.Store, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ocr text not found; run ocr first"})
			return
		}
		h.internal(c, "load ocr text", err)
		return
	}

	vocab := h.Vocab.ExtractVocabulary(text, minLength)
	if vocab == nil {
		vocab = []string{}
	}
	c.JSON(http.StatusOK, gin.H{
		"document_id":      id.String(),
		"vocabulary":       vocab,
		"vocabulary_count": len(vocab),
		"min_length":       minLength,
	})
}

// Export streams the document as an XLSX workbook.
func (h *DocumentHandler) Export(c *gin.Context) {
	id, ok := h.documentID(c)
	if !ok {
		return
	}

	minLength := 1
	if raw := c.Query("min_length"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 1 {
			minLength = v
		}
	}

	data, err := h.Exports.ExportDocumentXLSX(c.Request.Context(), id, minLength)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, export.ErrNotReady) {
			c.JSON(http.StatusNotFound, gin.H{"error": "document has no extracted sentences yet"})
			return
		}
		h.internal(c, "export", err)
		return
	}

	filename := fmt.Sprintf("document-%s.xlsx", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// documentID parses the :id param and verifies the document exists.
func (h *DocumentHandler) documentID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document id"})
		return uuid.Nil, false
	}
	exists, err := h.Docs.Exists(c.Request.Context(), id)
	if err != nil {
		h.internal(c, "lookup document", err)
		return uuid.Nil, false
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return uuid.Nil, false
	}
	return id, true
}

// rollback removes a document row left behind by a failed upload so the
// content hash stays usable for a retry.
func (h *DocumentHandler) rollback(ctx context.Context, id uuid.UUID) {
	if err := h.Docs.Delete(ctx, id); err != nil {
		h.Logger.Error("failed to roll back document", "document_id", id, "error", err)
	}
}

func (h *DocumentHandler) internal(c *gin.Context, op string, err error) {
	h.Logger.Error("request failed", "op", op, "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func sentenceResponse(rec storage.SentenceRecord) gin.H {
	sentences := rec.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	return gin.H{
		"document_id":    rec.DocumentID,
		"sentences":      sentences,
		"sentence_count": rec.SentenceCount,
	}
}
