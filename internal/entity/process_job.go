package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProcessJob represents a processing job for data transfer between layers.
type ProcessJob struct {
	ID            uuid.UUID  `json:"id"`
	DocumentID    uuid.UUID  `json:"document_id"`
	Format        string     `json:"format"`
	StartedAt     time.Time  `json:"started_at"`
	FinishedAt    *time.Time `json:"finished_at,omitempty"`
	Status        *string    `json:"status,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	OCRText       *string    `json:"ocr_text,omitempty"`
	OCRMethod     *string    `json:"ocr_method,omitempty"`
	Language      *string    `json:"language,omitempty"`
	Pages         *int       `json:"pages,omitempty"`
	Confidence    *float32   `json:"confidence,omitempty"`
	SentenceCount *int       `json:"sentence_count,omitempty"`
}
