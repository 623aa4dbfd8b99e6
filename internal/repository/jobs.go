package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/gen/ent"
	"github.com/yeonjae-dev/ocrean/internal/entity"
)

type ProcessJobRepository interface {
	Start(ctx context.Context, documentID uuid.UUID, format string, status constants.JobStatus) (*entity.ProcessJob, error)
	FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method, language string, pages int, confidence float32) error
	FinishSentencesSuccess(ctx context.Context, jobID uuid.UUID, sentenceCount int) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type processJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewProcessJobRepository(entc *ent.Client, log *slog.Logger) ProcessJobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &processJobRepo{ent: entc, log: log}
}

func (r *processJobRepo) Start(ctx context.Context, documentID uuid.UUID, format string, status constants.JobStatus) (*entity.ProcessJob, error) {
	job, err := r.ent.ProcessJob.
		Create().
		SetDocumentID(documentID).
		SetFormat(format).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		r.log.Error("process_job start failed", "document_id", documentID, "err", err)
		return nil, err
	}
	r.log.Info("process_job started", "job_id", job.ID, "document_id", documentID, "format", format)
	return toProcessJob(job), nil
}

func (r *processJobRepo) FinishOCRSuccess(ctx context.Context, jobID uuid.UUID, ocrText, method, language string, pages int, confidence float32) error {
	_, err := r.ent.ProcessJob.
		UpdateOneID(jobID).
		SetOcrText(ocrText).
		SetOcrMethod(method).
		SetLanguage(language).
		SetPages(pages).
		SetConfidence(confidence).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusOCROK)).
		Save(ctx)
	if err != nil {
		r.log.Error("process_job finish(OCR_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("process_job finished (OCR_OK)", "job_id", jobID, "method", method)
	return nil
}

func (r *processJobRepo) FinishSentencesSuccess(ctx context.Context, jobID uuid.UUID, sentenceCount int) error {
	_, err := r.ent.ProcessJob.
		UpdateOneID(jobID).
		SetSentenceCount(sentenceCount).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusSentencesOK)).
		Save(ctx)
	if err != nil {
		r.log.Error("process_job finish(SENTENCES_OK) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Info("process_job finished (SENTENCES_OK)", "job_id", jobID, "sentence_count", sentenceCount)
	return nil
}

func (r *processJobRepo) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	_, err := r.ent.ProcessJob.
		UpdateOneID(jobID).
		SetFinishedAt(time.Now()).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		Save(ctx)
	if err != nil {
		r.log.Error("process_job finish(FAILED) failed", "job_id", jobID, "err", err)
		return err
	}
	r.log.Warn("process_job finished (FAILED)", "job_id", jobID, "error", message)
	return nil
}

func toProcessJob(e *ent.ProcessJob) *entity.ProcessJob {
	return &entity.ProcessJob{
		ID:            e.ID,
		DocumentID:    e.DocumentID,
		Format:        e.Format,
		StartedAt:     e.StartedAt,
		FinishedAt:    e.FinishedAt,
		Status:        e.Status,
		ErrorMessage:  e.ErrorMessage,
		OCRText:       e.OcrText,
		OCRMethod:     e.OcrMethod,
		Language:      e.Language,
		Pages:         e.Pages,
		Confidence:    e.Confidence,
		SentenceCount: e.SentenceCount,
	}
}
