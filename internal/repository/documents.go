package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/gen/ent"
	entdoc "github.com/yeonjae-dev/ocrean/gen/ent/document"
	"github.com/yeonjae-dev/ocrean/internal/entity"
)

// ErrNotFound reports that no row matched the lookup. Callers use it to
// tell "no such document" apart from a failing database.
var ErrNotFound = errors.New("repository: not found")

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	GetByHash(ctx context.Context, hash []byte) (*entity.Document, error)
	Create(ctx context.Context, filename, ext string, size int, hash []byte, storageKey string, uploadedAt time.Time) (*entity.Document, error)
	UpsertByHash(ctx context.Context, filename, ext string, size int, hash []byte, storageKey string, uploadedAt time.Time) (*entity.Document, bool, error)
	SetStorageKey(ctx context.Context, id uuid.UUID, storageKey string) (*entity.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) GetByHash(ctx context.Context, hash []byte) (*entity.Document, error) {
	row, err := r.ent.Document.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) Create(ctx context.Context, filename, ext string, size int, hash []byte, storageKey string, uploadedAt time.Time) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetFilename(filename).
		SetFileExt(ext).
		SetFileSize(size).
		SetContentHash(hash).
		SetStorageKey(storageKey).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "filename", filename, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

// UpsertByHash returns the existing document when the content hash is
// already known, otherwise creates a new one. The bool reports dedup.
func (r *documentRepo) UpsertByHash(ctx context.Context, filename, ext string, size int, hash []byte, storageKey string, uploadedAt time.Time) (*entity.Document, bool, error) {
	existing, err := r.GetByHash(ctx, hash)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	row, err := r.Create(ctx, filename, ext, size, hash, storageKey, uploadedAt)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

// SetStorageKey records where the raw file ended up. The key embeds the
// document ID, so it is only known after the row exists.
func (r *documentRepo) SetStorageKey(ctx context.Context, id uuid.UUID, storageKey string) (*entity.Document, error) {
	row, err := r.ent.Document.UpdateOneID(id).
		SetStorageKey(storageKey).
		Save(ctx)
	if err != nil {
		return nil, err
	}
	return toDocument(row), nil
}

// Delete removes the document row. Deleting an id that is already gone
// is not an error; callers use this to undo a half-finished ingest.
func (r *documentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return err
	}
	return nil
}

func (r *documentRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Document.Query().
		Where(entdoc.ID(id)).
		Exist(ctx)
}

func toDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:          e.ID,
		Filename:    e.Filename,
		FileExt:     e.FileExt,
		FileSize:    e.FileSize,
		ContentHash: e.ContentHash,
		StorageKey:  e.StorageKey,
		UploadedAt:  e.UploadedAt,
	}
}
