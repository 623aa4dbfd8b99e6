// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "storage_key", Type: field.TypeString, Default: ""},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[4]},
			},
			{
				Name:    "document_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
		},
	}
	// ProcessJobsColumns holds the columns for the "process_jobs" table.
	ProcessJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_method", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "pages", Type: field.TypeInt, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "sentence_count", Type: field.TypeInt, Nullable: true},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ProcessJobsTable holds the schema information for the "process_jobs" table.
	ProcessJobsTable = &schema.Table{
		Name:       "process_jobs",
		Columns:    ProcessJobsColumns,
		PrimaryKey: []*schema.Column{ProcessJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_jobs_documents_jobs",
				Columns:    []*schema.Column{ProcessJobsColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processjob_document_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessJobsColumns[12], ProcessJobsColumns[4], ProcessJobsColumns[2]},
			},
			{
				Name:    "processjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessJobsColumns[12]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ProcessJobsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ProcessJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessJobsTable.Annotation = &entsql.Annotation{
		Table: "process_jobs",
	}
}
