package export

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
	"github.com/xuri/excelize/v2"

	"github.com/yeonjae-dev/ocrean/internal/entity"
	"github.com/yeonjae-dev/ocrean/internal/storage"
	"github.com/yeonjae-dev/ocrean/internal/textproc"
)

type stubDocs struct {
	doc *entity.Document
}

func (f *stubDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	if f.doc != nil && f.doc.ID == id {
		return f.doc, nil
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
	return f.doc != nil && f.doc.ID == id, nil
}

func TestExportDocumentXLSX(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	docID := uuid.New()
	docs := &stubDocs{doc: &entity.Document{ID: docID, Filename: "book.pdf", FileExt: "pdf"}}

	ctx := context.Background()
	require.NoError(t, storage.SaveOCRText(ctx, store, docID, "옷 하나 옷 둘 마음 마음가짐"))
	require.NoError(t, storage.SaveSentenceRecord(ctx, store, docID, storage.SentenceRecord{
		DocumentID:    docID.String(),
		Sentences:     []string{"옷 하나를 골랐다.", "마음에 들었다."},
		SentenceCount: 2,
	}))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(docs, store, textproc.NewProcessor(nil, nil, logger), logger)

	data, err := svc.ExportDocumentXLSX(ctx, docID, 3)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	sent, err := wb.GetCellValue("Sentences", "B2")
	require.NoError(t, err)
	require.Equal(t, "옷 하나를 골랐다.", sent)

	word, err := wb.GetCellValue("Vocabulary", "B2")
	require.NoError(t, err)
	require.Equal(t, "마음가짐", word) // only word with >= 3 syllables

	rows, err := wb.GetRows("Vocabulary")
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one word
}

func TestExportDocumentXLSXNotReady(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	docID := uuid.New()
	docs := &stubDocs{doc: &entity.Document{ID: docID}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(docs, store, textproc.NewProcessor(nil, nil, logger), logger)

	_, err = svc.ExportDocumentXLSX(context.Background(), docID, 1)
	require.ErrorIs(t, err, ErrNotReady)
}
