// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeonjae-dev/ocrean/db/ent/schema"
	"github.com/yeonjae-dev/ocrean/gen/ent/document"
	"github.com/yeonjae-dev/ocrean/gen/ent/processjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[1].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescFileExt is the schema descriptor for file_ext field.
	documentDescFileExt := documentFields[2].Descriptor()
	// document.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	document.FileExtValidator = documentDescFileExt.Validators[0].(func(string) error)
	// documentDescFileSize is the schema descriptor for file_size field.
	documentDescFileSize := documentFields[3].Descriptor()
	// document.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	document.FileSizeValidator = documentDescFileSize.Validators[0].(func(int) error)
	// documentDescContentHash is the schema descriptor for content_hash field.
	documentDescContentHash := documentFields[4].Descriptor()
	// document.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	document.ContentHashValidator = documentDescContentHash.Validators[0].(func([]byte) error)
	// documentDescStorageKey is the schema descriptor for storage_key field.
	documentDescStorageKey := documentFields[5].Descriptor()
	// document.DefaultStorageKey holds the default value on creation for the storage_key field.
	document.DefaultStorageKey = documentDescStorageKey.Default.(string)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[6].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	processjobFields := schema.ProcessJob{}.Fields()
	_ = processjobFields
	// processjobDescFormat is the schema descriptor for format field.
	processjobDescFormat := processjobFields[2].Descriptor()
	// processjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	processjob.FormatValidator = func() func(string) error {
		validators := processjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processjobDescStartedAt is the schema descriptor for started_at field.
	processjobDescStartedAt := processjobFields[3].Descriptor()
	// processjob.DefaultStartedAt holds the default value on creation for the started_at field.
	processjob.DefaultStartedAt = processjobDescStartedAt.Default.(func() time.Time)
	// processjobDescID is the schema descriptor for id field.
	processjobDescID := processjobFields[0].Descriptor()
	// processjob.DefaultID holds the default value on creation for the id field.
	processjob.DefaultID = processjobDescID.Default.(func() uuid.UUID)
}
