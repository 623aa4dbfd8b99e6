package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SentenceRecord is the persisted result of sentence extraction.
type SentenceRecord struct {
	DocumentID    string   `json:"document_id"`
	Sentences     []string `json:"sentences"`
	SentenceCount int      `json:"sentence_count"`
}

// sentenceRecordSchema guards the artifact format: whatever writes a
// sentences.json must produce exactly this shape.
const sentenceRecordSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["document_id", "sentences", "sentence_count"],
  "additionalProperties": false,
  "properties": {
    "document_id": {"type": "string", "format": "uuid"},
    "sentences": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    },
    "sentence_count": {"type": "integer", "minimum": 0}
  }
}`

var sentenceSchema = jsonschema.MustCompileString("sentences.schema.json", sentenceRecordSchema)

// ValidateSentenceRecord checks raw JSON bytes against the record schema.
func ValidateSentenceRecord(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("sentence record is not valid JSON: %w", err)
	}
	if err := sentenceSchema.Validate(v); err != nil {
		return fmt.Errorf("sentence record failed schema validation: %w", err)
	}
	return nil
}

// EncodeSentenceRecord marshals and schema-validates a record.
func EncodeSentenceRecord(rec SentenceRecord) ([]byte, error) {
	if rec.Sentences == nil {
		rec.Sentences = []string{}
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := ValidateSentenceRecord(data); err != nil {
		return nil, err
	}
	return data, nil
}

// SaveSentenceRecord validates and writes the record for a document.
func SaveSentenceRecord(ctx context.Context, fs FileStorage, documentID uuid.UUID, rec SentenceRecord) error {
	data, err := EncodeSentenceRecord(rec)
	if err != nil {
		return err
	}
	return fs.Put(ctx, SentencesKey(documentID), bytes.NewReader(data))
}

// LoadSentenceRecord reads and validates the record for a document.
// Returns ErrNotFound when sentence extraction has not run yet.
func LoadSentenceRecord(ctx context.Context, fs FileStorage, documentID uuid.UUID) (SentenceRecord, error) {
	rc, err := fs.Get(ctx, SentencesKey(documentID))
	if err != nil {
		return SentenceRecord{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return SentenceRecord{}, err
	}
	if err := ValidateSentenceRecord(data); err != nil {
		return SentenceRecord{}, err
	}
	var rec SentenceRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SentenceRecord{}, err
	}
	return rec, nil
}

// SaveOCRText writes the raw extraction text for a document.
func SaveOCRText(ctx context.Context, fs FileStorage, documentID uuid.UUID, text string) error {
	return fs.Put(ctx, OCRTextKey(documentID), bytes.NewReader([]byte(text)))
}

// LoadOCRText reads the raw extraction text for a document.
func LoadOCRText(ctx context.Context, fs FileStorage, documentID uuid.UUID) (string, error) {
	rc, err := fs.Get(ctx, OCRTextKey(documentID))
	if err != nil {
		return "", err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
