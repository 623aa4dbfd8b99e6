package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/internal/repository"
	"github.com/yeonjae-dev/ocrean/internal/storage"
)

// FSIngestor reads from the local filesystem and copies accepted files
// into the artifact store.
type FSIngestor struct {
	Docs        repository.DocumentRepository
	Store       storage.FileStorage
	AllowedExts map[string]struct{} // lowercased sans '.'; nil -> default set
	Logger      *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, store storage.FileStorage, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{Docs: docs, Store: store, Logger: logger}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !i.allowed(ext) {
		return out, fmt.Errorf("unsupported or missing extension: %q", ext)
	}

	f, err := os.Open(abs)
	if err != nil {
		return out, err
	}
	defer f.Close()

	h := sha256.New()
	size, err := io.Copy(h, f)
	if err != nil {
		return out, err
	}
	sum := h.Sum(nil)
	now := time.Now().UTC()

	// Dedup on hash before copying bytes into the store.
	existing, err := i.Docs.GetByHash(ctx, sum)
	if err == nil {
		i.Logger.Debug("ingest dedup hit", "path", abs, "document_id", existing.ID)
		return IngestionResult{
			SourcePath:   abs,
			DocumentID:   existing.ID.String(),
			Deduplicated: true,
			HashHex:      hex.EncodeToString(sum),
			FileExt:      existing.FileExt,
			UploadedAt:   existing.UploadedAt,
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return out, fmt.Errorf("dedup lookup: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return out, err
	}

	doc, err := i.Docs.Create(ctx, filepath.Base(abs), ext, int(size), sum, "", now)
	if err != nil {
		return out, err
	}
	key := storage.RawKey(doc.ID, ext)
	if err := i.Store.Put(ctx, key, f); err != nil {
		// Drop the half-finished row so the hash stays usable for a retry.
		i.rollback(ctx, doc.ID)
		return out, fmt.Errorf("store file: %w", err)
	}
	doc, err = i.Docs.SetStorageKey(ctx, doc.ID, key)
	if err != nil {
		i.rollback(ctx, doc.ID)
		return out, err
	}

	out = IngestionResult{
		SourcePath: abs,
		DocumentID: doc.ID.String(),
		HashHex:    hex.EncodeToString(sum),
		FileExt:    doc.FileExt,
		UploadedAt: doc.UploadedAt,
	}
	return out, nil
}

func (i *FSIngestor) rollback(ctx context.Context, id uuid.UUID) {
	if err := i.Docs.Delete(ctx, id); err != nil {
		i.Logger.Error("failed to roll back document", "document_id", id, "error", err)
	}
}

// IngestDirectory walks root, skips hidden entries if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(
	ctx context.Context,
	root string,
	skipHidden bool,
) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root_path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !i.allowed(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func (i *FSIngestor) allowed(ext string) bool {
	if i.AllowedExts != nil {
		_, ok := i.AllowedExts[ext]
		return ok
	}
	return AllowedExt(ext)
}
