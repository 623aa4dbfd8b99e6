package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/internal/entity"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

type fakeDocs struct {
	docs map[uuid.UUID]*entity.Document
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if d, ok := f.docs[id]; ok {
		return d, nil
	}
	return nil, errors.New("document not found")
}

func (f *fakeDocs) GetByHash(_ context.Context, hash []byte) (*entity.Document, error) {
	for _, d := range f.docs {
		if bytes.Equal(d.ContentHash, hash) {
			return d, nil
		}
	}
	return nil, errors.New("document not found")
}

func (f *fakeDocs) Create(_ context.Context, filename, ext string, size int, hash []byte, storageKey string, uploadedAt time.Time) (*entity.Document, error) {
	d := &entity.Document{
		ID: uuid.New(), Filename: filename, FileExt: ext, FileSize: size,
		ContentHash: hash, StorageKey: storageKey, UploadedAt: uploadedAt,
	}
	f.docs[d.ID] = d
	return d, nil
}

func (f *fakeDocs) UpsertByHash(ctx context.Context, filename, ext string, size int, hash []byte, storageKey string, uploadedAt time.Time) (*entity.Document, bool, error) {
	if d, err := f.GetByHash(ctx, hash); err == nil {
		return d, true, nil
	}
	d, err := f.Create(ctx, filename, ext, size, hash, storageKey, uploadedAt)
	return d, false, err
}

func (f *fakeDocs) SetStorageKey(_ context.Context, id uuid.UUID, storageKey string) (*entity.Document, error) {
	d, ok := f.docs[id]
	if !ok {
		return nil, errors.New("document not found")
	}
	d.StorageKey = storageKey
	return d, nil
}

func (f *fakeDocs) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.docs, id)
	return nil
}

func (f *fakeDocs) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

type jobRecord struct {
	status        constants.JobStatus
	errorMessage  string
	sentenceCount int
	ocrMethod     string
}

type fakeJobs struct {
	jobs map[uuid.UUID]*jobRecord
}

func (f *fakeJobs) Start(_ context.Context, documentID uuid.UUID, format string, status constants.JobStatus) (*entity.ProcessJob, error) {
	id := uuid.New()
	f.jobs[id] = &jobRecord{status: status}
	return &entity.ProcessJob{ID: id, DocumentID: documentID, Format: format}, nil
}

func (f *fakeJobs) FinishOCRSuccess(_ context.Context, jobID uuid.UUID, _, method, _ string, _ int, _ float32) error {
	j := f.jobs[jobID]
	j.status = constants.JobStatusOCROK
	j.ocrMethod = method
	return nil
}

func (f *fakeJobs) FinishSentencesSuccess(_ context.Context, jobID uuid.UUID, sentenceCount int) error {
	j := f.jobs[jobID]
	j.status = constants.JobStatusSentencesOK
	j.sentenceCount = sentenceCount
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, jobID uuid.UUID, message string) error {
	j := f.jobs[jobID]
	j.status = constants.JobStatusFailed
	j.errorMessage = message
	return nil
}

type fakeExtractor struct {
	result extract.TextExtractionResult
	err    error
	path   string
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (extract.TextExtractionResult, error) {
	f.path = path
	return f.result, f.err
}

func newFixture(t *testing.T) (*fakeDocs, *fakeJobs, storage.FileStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return &fakeDocs{docs: map[uuid.UUID]*entity.Document{}}, &fakeJobs{jobs: map[uuid.UUID]*jobRecord{}}, store
}

func seedDocument(t *testing.T, docs *fakeDocs, store storage.FileStorage, ext string) *entity.Document {
	t.Helper()
	ctx := context.Background()
	doc, err := docs.Create(ctx, "book."+ext, ext, 3, []byte{1, 2, 3}, "", time.Now().UTC())
	require.NoError(t, err)
	key := storage.RawKey(doc.ID, ext)
	require.NoError(t, store.Put(ctx, key, bytes.NewReader([]byte("raw"))))
	_, err = docs.SetStorageKey(ctx, doc.ID, key)
	require.NoError(t, err)
	return doc
}

func TestOCRStageRun(t *testing.T) {
	t.Parallel()

	docs, jobs, store := newFixture(t)
	doc := seedDocument(t, docs, store, "pdf")

	ext := &fakeExtractor{result: extract.TextExtractionResult{
		Text: "정해진 일은 아무지게 끝내고.", Method: "pdf-text", Pages: 1, Language: "kor", Confidence: 0.9,
	}}
	stage := NewOCRStage(docs, jobs, store, ext, nil)

	jobID, res, err := stage.Run(context.Background(), doc.ID)
	require.NoError(t, err)
	require.Equal(t, "pdf-text", res.Method)
	require.Equal(t, constants.JobStatusOCROK, jobs.jobs[jobID].status)

	text, err := storage.LoadOCRText(context.Background(), store, doc.ID)
	require.NoError(t, err)
	require.Equal(t, "정해진 일은 아무지게 끝내고.", text)
}

func TestOCRStageMarksFailure(t *testing.T) {
	t.Parallel()

	docs, jobs, store := newFixture(t)
	doc := seedDocument(t, docs, store, "png")

	ext := &fakeExtractor{err: fmt.Errorf("tesseract exploded")}
	stage := NewOCRStage(docs, jobs, store, ext, nil)

	jobID, _, err := stage.Run(context.Background(), doc.ID)
	require.Error(t, err)
	require.Equal(t, constants.JobStatusFailed, jobs.jobs[jobID].status)
	require.Contains(t, jobs.jobs[jobID].errorMessage, "tesseract exploded")
}

func TestOCRStageUnsupportedFormat(t *testing.T) {
	t.Parallel()

	docs, jobs, store := newFixture(t)
	ctx := context.Background()
	doc, err := docs.Create(ctx, "notes.txt", "txt", 1, []byte{9}, "k", time.Now().UTC())
	require.NoError(t, err)

	stage := NewOCRStage(docs, jobs, store, &fakeExtractor{}, nil)
	_, _, err = stage.Run(ctx, doc.ID)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported format")
	require.Empty(t, jobs.jobs) // no job row for rejected input
}

func TestSentenceStageRun(t *testing.T) {
	t.Parallel()

	docs, jobs, store := newFixture(t)
	doc := seedDocument(t, docs, store, "pdf")

	ctx := context.Background()
	require.NoError(t, storage.SaveOCRText(ctx, store, doc.ID,
		"정해진 일은 아무지게 끝내고 반성은 나중에 하는 성격이다. 그래서 오늘도 책을 읽는다."))

	text := textproc.NewProcessor(nil, nil, nil)
	stage := NewSentenceStage(docs, jobs, store, text, nil)

	rec, err := stage.Run(ctx, doc.ID)
	require.NoError(t, err)
	require.Equal(t, doc.ID.String(), rec.DocumentID)
	require.Equal(t, 2, rec.SentenceCount)
	require.Len(t, rec.Sentences, 2)

	stored, err := storage.LoadSentenceRecord(ctx, store, doc.ID)
	require.NoError(t, err)
	require.Equal(t, rec, stored)

	var found bool
	for _, j := range jobs.jobs {
		if j.status == constants.JobStatusSentencesOK {
			require.Equal(t, 2, j.sentenceCount)
			found = true
		}
	}
	require.True(t, found)
}

func TestSentenceStageRequiresOCR(t *testing.T) {
	t.Parallel()

	docs, jobs, store := newFixture(t)
	doc := seedDocument(t, docs, store, "pdf")

	text := textproc.NewProcessor(nil, nil, nil)
	stage := NewSentenceStage(docs, jobs, store, text, nil)

	_, err := stage.Run(context.Background(), doc.ID)
	require.ErrorIs(t, err, ErrOCRNotRun)
	require.Empty(t, jobs.jobs)
}

func TestProcessorRunsBothStages(t *testing.T) {
	t.Parallel()

	docs, jobs, store := newFixture(t)
	doc := seedDocument(t, docs, store, "pdf")

	ext := &fakeExtractor{result: extract.TextExtractionResult{
		Text: "옷 하나를 골랐다. 마음에 들었다.", Method: "pdf-text", Pages: 1, Language: "kor", Confidence: 0.9,
	}}
	text := textproc.NewProcessor(nil, nil, nil)
	proc := NewProcessor(nil,
		NewOCRStage(docs, jobs, store, ext, nil),
		NewSentenceStage(docs, jobs, store, text, nil),
	)

	_, err := proc.ProcessDocument(context.Background(), doc.ID)
	require.NoError(t, err)

	rec, err := storage.LoadSentenceRecord(context.Background(), store, doc.ID)
	require.NoError(t, err)
	require.Equal(t, 2, rec.SentenceCount)
}
