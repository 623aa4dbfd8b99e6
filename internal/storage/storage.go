// Package storage persists document artifacts: the uploaded file, the
// extracted OCR text, and the sentence record derived from it. Two
// backends exist, a local data directory and an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a key has no object behind it.
var ErrNotFound = errors.New("storage: object not found")

// FileStorage is a flat key/blob store. Keys are slash-separated and
// relative to the backend root.
type FileStorage interface {
	Put(ctx context.Context, key string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Exists(ctx context.Context, key string) (bool, error)
	// LocalPath materializes the object as a file on disk for tools that
	// only read paths. cleanup is non-nil when a temporary copy was made.
	LocalPath(ctx context.Context, key string) (path string, cleanup func(), err error)
}

// Key layout: one directory per document.

func RawKey(documentID uuid.UUID, ext string) string {
	return fmt.Sprintf("%s/raw.%s", documentID, ext)
}

func OCRTextKey(documentID uuid.UUID) string {
	return fmt.Sprintf("%s/ocr.txt", documentID)
}

func SentencesKey(documentID uuid.UUID) string {
	return fmt.Sprintf("%s/sentences.json", documentID)
}
