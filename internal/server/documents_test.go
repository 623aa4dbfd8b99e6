package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjae-dev/ocrean/internal/entity"
	"github.com/yeonjae-dev/ocrean/internal/extract"
	processor "github.com/yeonjae-dev/ocrean/internal/pipeline"
	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeDocs struct {
	docs    map[uuid.UUID]*entity.Document
	hashErr error // returned by GetByHash when set
}

func (f *fakeDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if d, ok := f.docs[id]; ok {
		return d, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDocs) GetByHash(_ context.Context, hash []byte) (*entity.Document, error) {
	if f.hashErr != nil {
		return nil, f.hashErr
	}
	for _, d := range f.docs {
		if bytes.Equal(d.ContentHash, hash) {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
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
		return nil, repository.ErrNotFound
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

type fakeOCRRunner struct {
	res extract.TextExtractionResult
	err error
}

func (f *fakeOCRRunner) Run(_ context.Context, _ uuid.UUID) (uuid.UUID, extract.TextExtractionResult, error) {
	return uuid.New(), f.res, f.err
}

type fakeSentenceRunner struct {
	rec storage.SentenceRecord
	err error
}

func (f *fakeSentenceRunner) Run(_ context.Context, _ uuid.UUID) (storage.SentenceRecord, error) {
	return f.rec, f.err
}

type fakeExporter struct {
	data []byte
	err  error
}

func (f *fakeExporter) ExportDocumentXLSX(_ context.Context, _ uuid.UUID, _ int) ([]byte, error) {
	return f.data, f.err
}

type fixture struct {
	docs      *fakeDocs
	store     storage.FileStorage
	ocr       *fakeOCRRunner
	sentences *fakeSentenceRunner
	exporter  *fakeExporter
	engine    *gin.Engine
}

// flakyStore fails writes until putErr is cleared.
type flakyStore struct {
	storage.FileStorage
	putErr error
}

func (s *flakyStore) Put(ctx context.Context, key string, r io.Reader) error {
	if s.putErr != nil {
		return s.putErr
	}
	return s.FileStorage.Put(ctx, key, r)
}

func newServerFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return newServerFixtureWith(t, store)
}

func newServerFixtureWith(t *testing.T, store storage.FileStorage) *fixture {
	t.Helper()

	f := &fixture{
		docs:      &fakeDocs{docs: map[uuid.UUID]*entity.Document{}},
		store:     store,
		ocr:       &fakeOCRRunner{},
		sentences: &fakeSentenceRunner{},
		exporter:  &fakeExporter{data: []byte("xlsx")},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewDocumentHandler(f.docs, store, f.ocr, f.sentences,
		textproc.NewProcessor(nil, nil, logger), f.exporter, logger)
	f.engine = New(h, logger)
	return f
}

func (f *fixture) seedDocument(t *testing.T) *entity.Document {
	t.Helper()
	doc, err := f.docs.Create(context.Background(), "book.pdf", "pdf", 3, []byte{1, 2, 3}, "", time.Now().UTC())
	require.NoError(t, err)
	return doc
}

func (f *fixture) do(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func multipartFile(t *testing.T, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHealth(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	w := f.do(t, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", decode(t, w)["status"])
}

func TestUpload(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	body, ct := multipartFile(t, "book.pdf", []byte("pdf bytes"))

	w := f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	require.Equal(t, false, resp["deduplicated"])
	require.Equal(t, "book.pdf", resp["filename"])

	id, err := uuid.Parse(resp["document_id"].(string))
	require.NoError(t, err)

	// the raw bytes landed in storage under the document key
	rc, err := f.store.Get(context.Background(), storage.RawKey(id, "pdf"))
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "pdf bytes", string(data))
}

func TestUploadDeduplicates(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)

	body, ct := multipartFile(t, "book.pdf", []byte("same bytes"))
	w := f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	first := decode(t, w)["document_id"]

	body, ct = multipartFile(t, "renamed.pdf", []byte("same bytes"))
	w = f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, true, resp["deduplicated"])
	require.Equal(t, first, resp["document_id"])
}

func TestUploadStoreFailureDoesNotPoisonHash(t *testing.T) {
	t.Parallel()

	inner, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	store := &flakyStore{FileStorage: inner, putErr: errors.New("disk full")}
	f := newServerFixtureWith(t, store)

	body, ct := multipartFile(t, "book.pdf", []byte("pdf bytes"))
	w := f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Empty(t, f.docs.docs)

	// No half-created row remains, so the retry is a fresh upload rather
	// than a dedup hit on a document without stored bytes.
	store.putErr = nil
	body, ct = multipartFile(t, "book.pdf", []byte("pdf bytes"))
	w = f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	require.Equal(t, false, resp["deduplicated"])

	id, err := uuid.Parse(resp["document_id"].(string))
	require.NoError(t, err)
	ok, err := inner.Exists(context.Background(), storage.RawKey(id, "pdf"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestUploadDedupLookupError(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	f.docs.hashErr = errors.New("connection reset")

	body, ct := multipartFile(t, "book.pdf", []byte("pdf bytes"))
	w := f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Empty(t, f.docs.docs)
}

func TestUploadRejectsUnsupportedExtension(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	body, ct := multipartFile(t, "notes.txt", []byte("text"))

	w := f.do(t, http.MethodPost, "/documents/upload", body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w)["error"], "unsupported file extension")
}

func TestRunOCR(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)
	f.ocr.res = extract.TextExtractionResult{Text: "정해진 일은.", Method: "pdf-text", Pages: 1, Confidence: 0.9}

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/ocr", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, doc.ID.String(), resp["document_id"])
	require.Equal(t, "정해진 일은.", resp["text"])
	require.Equal(t, "pdf-text", resp["method"])
}

func TestRunOCRUnknownDocument(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	w := f.do(t, http.MethodPost, "/documents/"+uuid.NewString()+"/ocr", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRunOCRInvalidID(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	w := f.do(t, http.MethodPost, "/documents/not-a-uuid/ocr", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractSentences(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)
	f.sentences.rec = storage.SentenceRecord{
		DocumentID:    doc.ID.String(),
		Sentences:     []string{"정해진 일은 아무지게 끝내고."},
		SentenceCount: 1,
	}

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/sentences", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, float64(1), resp["sentence_count"])
	require.Len(t, resp["sentences"], 1)
}

func TestExtractSentencesBeforeOCR(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)
	f.sentences.err = processor.ErrOCRNotRun

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/sentences", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, decode(t, w)["error"], "run ocr first")
}

func TestGetSentences(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)

	w := f.do(t, http.MethodGet, "/documents/"+doc.ID.String()+"/sentences", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	rec := storage.SentenceRecord{
		DocumentID:    doc.ID.String(),
		Sentences:     []string{"그래서 오늘도 책을 읽는다."},
		SentenceCount: 1,
	}
	require.NoError(t, storage.SaveSentenceRecord(context.Background(), f.store, doc.ID, rec))

	w = f.do(t, http.MethodGet, "/documents/"+doc.ID.String()+"/sentences", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, doc.ID.String(), resp["document_id"])
	require.Equal(t, float64(1), resp["sentence_count"])
}

func TestExtractVocabulary(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)
	require.NoError(t, storage.SaveOCRText(context.Background(), f.store, doc.ID,
		"옷 하나 옷 둘 마음 마음가짐"))

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/vocabulary?min_length=3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, float64(3), resp["min_length"])
	require.Equal(t, float64(1), resp["vocabulary_count"])
	require.Equal(t, []any{"마음가짐"}, resp["vocabulary"])
}

func TestExtractVocabularyClampsMinLength(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)
	require.NoError(t, storage.SaveOCRText(context.Background(), f.store, doc.ID, "옷 둘"))

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/vocabulary?min_length=-5", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.Equal(t, float64(1), resp["min_length"])
	require.Equal(t, float64(2), resp["vocabulary_count"])
}

func TestExtractVocabularyRejectsBadMinLength(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/vocabulary?min_length=abc", nil, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExtractVocabularyBeforeOCR(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)

	w := f.do(t, http.MethodPost, "/documents/"+doc.ID.String()+"/vocabulary", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExport(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)

	w := f.do(t, http.MethodGet, "/documents/"+doc.ID.String()+"/export", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "xlsx", w.Body.String())
	require.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestExportNotReady(t *testing.T) {
	t.Parallel()

	f := newServerFixture(t)
	doc := f.seedDocument(t)
	f.exporter.err = fmt.Errorf("wrap: %w", storage.ErrNotFound)

	w := f.do(t, http.MethodGet, "/documents/"+doc.ID.String()+"/export", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
