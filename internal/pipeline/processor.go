// Package processor coordinates the document pipeline: OCR first, then
// sentence extraction over the stored text.
package processor

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Processor runs both stages back to back for batch processing.
type Processor struct {
	Logger    *slog.Logger
	OCR       *OCRStage
	Sentences *SentenceStage
}

func NewProcessor(logger *slog.Logger, ocr *OCRStage, sentences *SentenceStage) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Logger: logger, OCR: ocr, Sentences: sentences}
}

// ProcessDocument runs OCR for a document, then sentence extraction over
// the resulting text. Returns the OCR job ID.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (uuid.UUID, error) {
	jobID, res, err := p.OCR.Run(ctx, documentID)
	if err != nil {
		p.Logger.Error("processor.ocr.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.ocr.ok",
		"document_id", documentID,
		"job_id", jobID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
	)

	rec, err := p.Sentences.Run(ctx, documentID)
	if err != nil {
		p.Logger.Error("processor.sentences.failed", "document_id", documentID, "err", err)
		return jobID, err
	}
	p.Logger.Info("processor.sentences.ok", "document_id", documentID, "sentence_count", rec.SentenceCount)
	return jobID, nil
}
