package ingest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/yeonjae-dev/ocrean/internal/entity"
	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
)

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

// brokenStore fails writes until putErr is cleared.
type brokenStore struct {
	storage.FileStorage
	putErr error
}

func (s *brokenStore) Put(ctx context.Context, key string, r io.Reader) error {
	if s.putErr != nil {
		return s.putErr
	}
	return s.FileStorage.Put(ctx, key, r)
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func newIngestor(t *testing.T) (*FSIngestor, *fakeDocs, storage.FileStorage) {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	docs := &fakeDocs{docs: map[uuid.UUID]*entity.Document{}}
	return NewFSIngestor(docs, store, nil), docs, store
}

func TestIngestPath(t *testing.T) {
	t.Parallel()

	ing, docs, store := newIngestor(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "book.pdf", []byte("pdf bytes"))

	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	require.False(t, res.Deduplicated)
	require.Equal(t, "pdf", res.FileExt)
	require.NotEmpty(t, res.HashHex)

	id, err := uuid.Parse(res.DocumentID)
	require.NoError(t, err)
	doc, err := docs.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, storage.RawKey(id, "pdf"), doc.StorageKey)

	ok, err := store.Exists(context.Background(), doc.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIngestPathDeduplicates(t *testing.T) {
	t.Parallel()

	ing, _, _ := newIngestor(t)
	dir := t.TempDir()
	first := writeFile(t, dir, "a.pdf", []byte("same bytes"))
	second := writeFile(t, dir, "b.pdf", []byte("same bytes"))

	r1, err := ing.IngestPath(context.Background(), first)
	require.NoError(t, err)
	r2, err := ing.IngestPath(context.Background(), second)
	require.NoError(t, err)

	require.True(t, r2.Deduplicated)
	require.Equal(t, r1.DocumentID, r2.DocumentID)
}

func TestIngestPathStoreFailureDoesNotPoisonHash(t *testing.T) {
	t.Parallel()

	inner, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	store := &brokenStore{FileStorage: inner, putErr: errors.New("disk full")}
	docs := &fakeDocs{docs: map[uuid.UUID]*entity.Document{}}
	ing := NewFSIngestor(docs, store, nil)

	path := writeFile(t, t.TempDir(), "book.pdf", []byte("pdf bytes"))

	_, err = ing.IngestPath(context.Background(), path)
	require.Error(t, err)
	require.Empty(t, docs.docs)

	// The retry is a fresh ingest, not a dedup hit on a row without bytes.
	store.putErr = nil
	res, err := ing.IngestPath(context.Background(), path)
	require.NoError(t, err)
	require.False(t, res.Deduplicated)

	id, err := uuid.Parse(res.DocumentID)
	require.NoError(t, err)
	ok, err := inner.Exists(context.Background(), storage.RawKey(id, "pdf"))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIngestPathDedupLookupError(t *testing.T) {
	t.Parallel()

	ing, docs, _ := newIngestor(t)
	docs.hashErr = errors.New("connection reset")
	path := writeFile(t, t.TempDir(), "book.pdf", []byte("pdf bytes"))

	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dedup lookup")
	require.Empty(t, docs.docs)
}

func TestIngestPathRejectsUnsupportedExt(t *testing.T) {
	t.Parallel()

	ing, _, _ := newIngestor(t)
	path := writeFile(t, t.TempDir(), "notes.txt", []byte("text"))

	_, err := ing.IngestPath(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported or missing extension")
}

func TestIngestDirectory(t *testing.T) {
	t.Parallel()

	ing, _, _ := newIngestor(t)
	dir := t.TempDir()
	writeFile(t, dir, "one.pdf", []byte("one"))
	writeFile(t, dir, "nested/two.png", []byte("two"))
	writeFile(t, dir, "skipme.txt", []byte("txt"))
	writeFile(t, dir, ".hidden/three.pdf", []byte("three"))

	results, stats, err := ing.IngestDirectory(context.Background(), dir, true)
	require.NoError(t, err)
	require.Equal(t, uint32(2), stats.Matched)
	require.Equal(t, uint32(2), stats.Succeeded)
	require.Equal(t, uint32(0), stats.Failed)
	require.Len(t, results, 2)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	t.Parallel()

	ing, _, _ := newIngestor(t)
	_, _, err := ing.IngestDirectory(context.Background(), "  ", true)
	require.Error(t, err)
}

func TestIsHidden(t *testing.T) {
	t.Parallel()

	require.True(t, IsHidden("/tmp/.git"))
	require.True(t, IsHidden(".env"))
	require.False(t, IsHidden("/tmp/data"))
}

func TestAllowedExt(t *testing.T) {
	t.Parallel()

	for _, ext := range []string{"pdf", "PDF", ".jpg", "jpeg", "png", "heic"} {
		require.True(t, AllowedExt(ext), ext)
	}
	for _, ext := range []string{"txt", "docx", ""} {
		require.False(t, AllowedExt(ext), ext)
	}
}
