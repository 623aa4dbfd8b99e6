package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

// ErrOCRNotRun is returned when sentence extraction is requested for a
// document whose OCR text artifact does not exist yet.
var ErrOCRNotRun = errors.New("ocr has not run for this document")

type SentenceStage struct {
	Docs   repository.DocumentRepository
	Jobs   repository.ProcessJobRepository
	Store  storage.FileStorage
	Text   *textproc.Processor
	Logger *slog.Logger
}

func NewSentenceStage(docs repository.DocumentRepository, jobs repository.ProcessJobRepository, store storage.FileStorage, text *textproc.Processor, logger *slog.Logger) *SentenceStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &SentenceStage{Docs: docs, Jobs: jobs, Store: store, Text: text, Logger: logger}
}

// Run loads the OCR text for a document, splits it into sentences, and
// persists the sentence record. Returns the stored record.
func (p *SentenceStage) Run(ctx context.Context, documentID uuid.UUID) (storage.SentenceRecord, error) {
	doc, err := p.Docs.GetByID(ctx, documentID)
	if err != nil {
		return storage.SentenceRecord{}, fmt.Errorf("get document: %w", err)
	}

	text, err := storage.LoadOCRText(ctx, p.Store, doc.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.SentenceRecord{}, ErrOCRNotRun
		}
		return storage.SentenceRecord{}, fmt.Errorf("load ocr text: %w", err)
	}

	job, err := p.Jobs.Start(ctx, doc.ID, constants.MapExtToFormat(doc.FileExt), constants.JobStatusRunning)
	if err != nil {
		return storage.SentenceRecord{}, err
	}

	sentences := p.Text.SplitIntoSentences(text)
	rec := storage.SentenceRecord{
		DocumentID:    doc.ID.String(),
		Sentences:     sentences,
		SentenceCount: len(sentences),
	}
	if err := storage.SaveSentenceRecord(ctx, p.Store, doc.ID, rec); err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, fmt.Sprintf("store sentence record: %v", err))
		return storage.SentenceRecord{}, err
	}

	if err := p.Jobs.FinishSentencesSuccess(ctx, job.ID, rec.SentenceCount); err != nil {
		return rec, err
	}
	p.Logger.Info("sentence extraction ok", "document_id", doc.ID, "job_id", job.ID, "sentence_count", rec.SentenceCount)
	return rec, nil
}
