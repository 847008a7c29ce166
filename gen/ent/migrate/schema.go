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
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "source_path", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_kind", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt64},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processing_status", Type: field.TypeString, Default: "pending"},
		{Name: "version_number", Type: field.TypeInt, Default: 1},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "has_structured_fields", Type: field.TypeBool, Default: false},
		{Name: "parent_document_id", Type: field.TypeInt, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "documents_documents_revisions",
				Columns:    []*schema.Column{DocumentsColumns[11]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "document_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_processing_status_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[7], DocumentsColumns[6]},
			},
		},
	}
	// ExtractionAttemptsColumns holds the columns for the "extraction_attempts" table.
	ExtractionAttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "succeeded", Type: field.TypeBool, Default: false},
		{Name: "full_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "blocks", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Default: 0},
		{Name: "engine", Type: field.TypeString},
		{Name: "elapsed_ms", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt},
	}
	// ExtractionAttemptsTable holds the schema information for the "extraction_attempts" table.
	ExtractionAttemptsTable = &schema.Table{
		Name:       "extraction_attempts",
		Columns:    ExtractionAttemptsColumns,
		PrimaryKey: []*schema.Column{ExtractionAttemptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_attempts_documents_attempts",
				Columns:    []*schema.Column{ExtractionAttemptsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionattempt_document_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{ExtractionAttemptsColumns[10], ExtractionAttemptsColumns[1]},
			},
		},
	}
	// FaceRecordsColumns holds the columns for the "face_records" table.
	FaceRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "page_number", Type: field.TypeInt, Default: 1},
		{Name: "box_x", Type: field.TypeInt},
		{Name: "box_y", Type: field.TypeInt},
		{Name: "box_w", Type: field.TypeInt},
		{Name: "box_h", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "quality", Type: field.TypeFloat32},
		{Name: "index_id", Type: field.TypeString, Nullable: true},
		{Name: "detected_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt},
	}
	// FaceRecordsTable holds the schema information for the "face_records" table.
	FaceRecordsTable = &schema.Table{
		Name:       "face_records",
		Columns:    FaceRecordsColumns,
		PrimaryKey: []*schema.Column{FaceRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "face_records_documents_faces",
				Columns:    []*schema.Column{FaceRecordsColumns[10]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "facerecord_document_id",
				Unique:  false,
				Columns: []*schema.Column{FaceRecordsColumns[10]},
			},
		},
	}
	// ProcessingFailuresColumns holds the columns for the "processing_failures" table.
	ProcessingFailuresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt, Default: 0},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt},
	}
	// ProcessingFailuresTable holds the schema information for the "processing_failures" table.
	ProcessingFailuresTable = &schema.Table{
		Name:       "processing_failures",
		Columns:    ProcessingFailuresColumns,
		PrimaryKey: []*schema.Column{ProcessingFailuresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "processing_failures_documents_failures",
				Columns:    []*schema.Column{ProcessingFailuresColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processingfailure_document_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingFailuresColumns[5], ProcessingFailuresColumns[4]},
			},
		},
	}
	// SearchLogsColumns holds the columns for the "search_logs" table.
	SearchLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "search_type", Type: field.TypeString},
		{Name: "query_hash", Type: field.TypeString},
		{Name: "scope", Type: field.TypeString, Nullable: true},
		{Name: "threshold", Type: field.TypeFloat32, Nullable: true},
		{Name: "result_count", Type: field.TypeInt, Default: 0},
		{Name: "elapsed_ms", Type: field.TypeInt64},
		{Name: "executed_at", Type: field.TypeTime},
	}
	// SearchLogsTable holds the schema information for the "search_logs" table.
	SearchLogsTable = &schema.Table{
		Name:       "search_logs",
		Columns:    SearchLogsColumns,
		PrimaryKey: []*schema.Column{SearchLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "searchlog_search_type_executed_at",
				Unique:  false,
				Columns: []*schema.Column{SearchLogsColumns[1], SearchLogsColumns[7]},
			},
		},
	}
	// StructuredFieldsColumns holds the columns for the "structured_fields" table.
	StructuredFieldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "format", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString, Nullable: true},
		{Name: "country_code", Type: field.TypeString, Nullable: true},
		{Name: "surname", Type: field.TypeString, Nullable: true},
		{Name: "given_names", Type: field.TypeString, Nullable: true},
		{Name: "document_number", Type: field.TypeString, Nullable: true},
		{Name: "nationality", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeString, Nullable: true},
		{Name: "sex", Type: field.TypeString, Nullable: true},
		{Name: "expiry_date", Type: field.TypeString, Nullable: true},
		{Name: "personal_number", Type: field.TypeString, Nullable: true},
		{Name: "checksum_valid", Type: field.TypeBool, Default: false},
		{Name: "raw_lines", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeInt, Unique: true},
	}
	// StructuredFieldsTable holds the schema information for the "structured_fields" table.
	StructuredFieldsTable = &schema.Table{
		Name:       "structured_fields",
		Columns:    StructuredFieldsColumns,
		PrimaryKey: []*schema.Column{StructuredFieldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "structured_fields_documents_fields",
				Columns:    []*schema.Column{StructuredFieldsColumns[15]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "structuredfields_document_number",
				Unique:  false,
				Columns: []*schema.Column{StructuredFieldsColumns[6]},
			},
			{
				Name:    "structuredfields_surname",
				Unique:  false,
				Columns: []*schema.Column{StructuredFieldsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		ExtractionAttemptsTable,
		FaceRecordsTable,
		ProcessingFailuresTable,
		SearchLogsTable,
		StructuredFieldsTable,
	}
)

func init() {
	DocumentsTable.ForeignKeys[0].RefTable = DocumentsTable
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ExtractionAttemptsTable.ForeignKeys[0].RefTable = DocumentsTable
	ExtractionAttemptsTable.Annotation = &entsql.Annotation{
		Table: "extraction_attempts",
	}
	FaceRecordsTable.ForeignKeys[0].RefTable = DocumentsTable
	FaceRecordsTable.Annotation = &entsql.Annotation{
		Table: "face_records",
	}
	ProcessingFailuresTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessingFailuresTable.Annotation = &entsql.Annotation{
		Table: "processing_failures",
	}
	SearchLogsTable.Annotation = &entsql.Annotation{
		Table: "search_logs",
	}
	StructuredFieldsTable.ForeignKeys[0].RefTable = DocumentsTable
	StructuredFieldsTable.Annotation = &entsql.Annotation{
		Table: "structured_fields",
	}
}
