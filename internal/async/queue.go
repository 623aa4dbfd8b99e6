// Package async provides a bounded in-process work queue that feeds
// documents through the processing pipeline.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry, priority).
type Job struct {
	DocumentID  uuid.UUID
	Force       bool // enqueue even if the document was deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
