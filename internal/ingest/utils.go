package ingest

import (
	"path/filepath"
	"strings"

	"github.com/yeonjae-dev/ocrean/constants"
)

// AllowedExt checks if a file extension is in the default allowed set.
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	return constants.IsAllowedExt(ext)
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
