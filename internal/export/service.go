// Package export produces XLSX workbooks from processed documents.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

// ErrNotReady is returned when a document has no sentence record yet.
var ErrNotReady = errors.New("document has no extracted sentences yet")

// Service is a tiny façade over the document store that produces XLSX
// bytes: one sheet of sentences, one sheet of vocabulary.
type Service struct {
	docs   repository.DocumentRepository
	store  storage.FileStorage
	text   *textproc.Processor
	logger *slog.Logger
}

func NewService(docs repository.DocumentRepository, store storage.FileStorage, text *textproc.Processor, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{docs: docs, store: store, text: text, logger: logger}
}

// ExportDocumentXLSX returns an XLSX workbook (as bytes) with the
// document's sentences and its vocabulary at the given minimum word length.
func (s *Service) ExportDocumentXLSX(ctx context.Context, documentID uuid.UUID, minLength int) ([]byte, error) {
	start := time.Now()

	doc, err := s.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}

	rec, err := storage.LoadSentenceRecord(ctx, s.store, doc.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotReady
		}
		return nil, fmt.Errorf("load sentence record: %w", err)
	}

	ocrText, err := storage.LoadOCRText(ctx, s.store, doc.ID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("load ocr text: %w", err)
	}
	vocab := s.text.ExtractVocabulary(ocrText, minLength)

	f := excelize.NewFile()

	const sentSheet = "Sentences"
	if index, _ := f.GetSheetIndex(sentSheet); index == -1 {
		if _, err := f.NewSheet(sentSheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sentSheet)
	f.SetActiveSheet(activeIndex)

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(sentSheet, 1, 1, "#")
	write(sentSheet, 2, 1, "Sentence")
	for i, sent := range rec.Sentences {
		write(sentSheet, 1, i+2, i+1)
		write(sentSheet, 2, i+2, sent)
	}
	_ = f.SetColWidth(sentSheet, "A", "A", 6)
	_ = f.SetColWidth(sentSheet, "B", "B", 90)

	const vocabSheet = "Vocabulary"
	if _, err := f.NewSheet(vocabSheet); err != nil {
		return nil, err
	}
	write(vocabSheet, 1, 1, "#")
	write(vocabSheet, 2, 1, "Word")
	for i, w := range vocab {
		write(vocabSheet, 1, i+2, i+1)
		write(vocabSheet, 2, i+2, w)
	}
	_ = f.SetColWidth(vocabSheet, "A", "A", 6)
	_ = f.SetColWidth(vocabSheet, "B", "B", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"document_id", doc.ID.String(),
		"sentences", len(rec.Sentences),
		"vocabulary", len(vocab),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
