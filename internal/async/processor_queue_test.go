package async

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/internal/entity"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	processor "github.com/yeonjae-dev/ocrean/internal/pipeline"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

type stubDocs struct {
	docs map[uuid.UUID]*entity.Document
}

func (f *stubDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if d, ok := f.docs[id]; ok {
		return d, nil
	}
	return nil, errors.New("document not found")
}
func (f *stubDocs) GetByHash(context.Context, []byte) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *stubDocs) Create(context.Context, string, string, int, []byte, string, time.Time) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *stubDocs) UpsertByHash(context.Context, string, string, int, []byte, string, time.Time) (*entity.Document, bool, error) {
	return nil, false, errors.New("not implemented")
}
func (f *stubDocs) SetStorageKey(context.Context, uuid.UUID, string) (*entity.Document, error) {
	return nil, errors.New("not implemented")
}
func (f *stubDocs) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}
func (f *stubDocs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

type stubJobs struct{}

func (stubJobs) Start(_ context.Context, documentID uuid.UUID, format string, status constants.JobStatus) (*entity.ProcessJob, error) {
	return &entity.ProcessJob{ID: uuid.New(), DocumentID: documentID, Format: format}, nil
}
func (stubJobs) FinishOCRSuccess(context.Context, uuid.UUID, string, string, string, int, float32) error {
	return nil
}
func (stubJobs) FinishSentencesSuccess(context.Context, uuid.UUID, int) error { return nil }
func (stubJobs) FinishFailure(context.Context, uuid.UUID, string) error       { return nil }

type stubExtractor struct{}

func (stubExtractor) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{
		Text: "옷 하나를 골랐다. 마음에 들었다.", Method: "pdf-text", Pages: 1, Language: "kor", Confidence: 0.9,
	}, nil
}

func TestProcessorQueueDrains(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	docs := &stubDocs{docs: map[uuid.UUID]*entity.Document{}}
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		id := uuid.New()
		key := storage.RawKey(id, "pdf")
		require.NoError(t, store.Put(ctx, key, bytes.NewReader([]byte("raw"))))
		docs.docs[id] = &entity.Document{ID: id, Filename: "book.pdf", FileExt: "pdf", StorageKey: key}
		ids = append(ids, id)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	text := textproc.NewProcessor(nil, nil, logger)
	proc := processor.NewProcessor(logger,
		processor.NewOCRStage(docs, stubJobs{}, store, stubExtractor{}, logger),
		processor.NewSentenceStage(docs, stubJobs{}, store, text, logger),
	)

	q := NewProcessorQueue(proc, logger, WithWorkers(2), WithQueueSize(8))
	for _, id := range ids {
		require.NoError(t, q.Enqueue(ctx, Job{DocumentID: id, SubmittedAt: time.Now()}))
	}

	drainCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	q.Shutdown(drainCtx)

	for _, id := range ids {
		rec, err := storage.LoadSentenceRecord(ctx, store, id)
		require.NoError(t, err)
		require.Equal(t, 2, rec.SentenceCount)
	}
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	q := NewProcessorQueue(processor.NewProcessor(logger, nil, nil), logger, WithWorkers(1))

	ctx := context.Background()
	q.Shutdown(ctx)

	// enqueue after shutdown is a logged no-op, not a panic
	require.NoError(t, q.Enqueue(ctx, Job{DocumentID: uuid.New()}))
}
