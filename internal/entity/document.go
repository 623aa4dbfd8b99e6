package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document represents an uploaded document for data transfer between layers.
type Document struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	FileExt     string    `json:"file_ext"`
	FileSize    int       `json:"file_size"`
	ContentHash []byte    `json:"content_hash"`
	StorageKey  string    `json:"storage_key"`
	UploadedAt  time.Time `json:"uploaded_at"`
}
