package storage

import (
	"context"
	"fmt"

	"github.com/yeonjae-dev/ocrean/internal/common"
)

// New builds the FileStorage named by the configuration.
func New(ctx context.Context, cfg common.StorageConfig) (FileStorage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStorage(cfg.LocalDataDir)
	case "s3":
		return NewS3Storage(ctx, cfg.S3Bucket, cfg.S3Region, cfg.S3Prefix)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
