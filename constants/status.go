package constants

// JobStatus is the canonical status for rows in process_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued      JobStatus = "QUEUED"       // queued for processing
	JobStatusRunning     JobStatus = "RUNNING"      // in progress
	JobStatusOCROK       JobStatus = "OCR_OK"       // stage 1 completed (text extracted)
	JobStatusSentencesOK JobStatus = "SENTENCES_OK" // stage 2 completed (sentence record persisted)
	JobStatusFailed      JobStatus = "FAILED"       // terminal failure
)
