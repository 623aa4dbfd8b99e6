package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
)

type OCRStage struct {
	Docs          repository.DocumentRepository
	Jobs          repository.ProcessJobRepository
	Store         storage.FileStorage
	TextExtractor extract.TextExtractor
	Logger        *slog.Logger
}

func NewOCRStage(docs repository.DocumentRepository, jobs repository.ProcessJobRepository, store storage.FileStorage, tx extract.TextExtractor, logger *slog.Logger) *OCRStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &OCRStage{Docs: docs, Jobs: jobs, Store: store, TextExtractor: tx, Logger: logger}
}

// Run starts a process_job, runs text extraction on the stored file, and
// persists the OCR text artifact. Returns the job ID and the extraction
// summary.
func (p *OCRStage) Run(ctx context.Context, documentID uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	doc, err := p.Docs.GetByID(ctx, documentID)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("get document: %w", err)
	}

	format := constants.MapExtToFormat(doc.FileExt)
	if format == "" {
		return uuid.Nil, extract.TextExtractionResult{}, fmt.Errorf("unsupported format: %s", doc.FileExt)
	}

	job, err := p.Jobs.Start(ctx, doc.ID, format, constants.JobStatusRunning)
	if err != nil {
		return uuid.Nil, extract.TextExtractionResult{}, err
	}

	path, cleanup, err := p.Store.LocalPath(ctx, doc.StorageKey)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, fmt.Sprintf("materialize file: %v", err))
		return job.ID, extract.TextExtractionResult{}, err
	}
	if cleanup != nil {
		defer cleanup()
	}

	res, err := p.TextExtractor.Extract(ctx, path)
	if err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, err.Error())
		return job.ID, res, err
	}

	if err := storage.SaveOCRText(ctx, p.Store, doc.ID, res.Text); err != nil {
		_ = p.Jobs.FinishFailure(ctx, job.ID, fmt.Sprintf("store ocr text: %v", err))
		return job.ID, res, err
	}

	if err := p.Jobs.FinishOCRSuccess(ctx, job.ID, res.Text, res.Method, res.Language, res.Pages, res.Confidence); err != nil {
		return job.ID, res, err
	}
	return job.ID, res, nil
}
