package entity

import "time"

// Document represents a stored document for data transfer between layers.
type Document struct {
	ID                  int       `json:"id"`
	ContentHash         string    `json:"content_hash"`
	SourcePath          string    `json:"source_path"`
	Filename            string    `json:"filename"`
	FileKind            string    `json:"file_kind"`
	FileSize            int64     `json:"file_size"`
	UploadedAt          time.Time `json:"uploaded_at"`
	ProcessingStatus    string    `json:"processing_status"`
	VersionNumber       int       `json:"version_number"`
	ParentDocumentID    *int      `json:"parent_document_id,omitempty"`
	PageCount           int       `json:"page_count"`
	HasStructuredFields bool      `json:"has_structured_fields"`
}

// DocumentDetail is a document with its processing artifacts attached.
type DocumentDetail struct {
	Document
	Attempts []Attempt         `json:"attempts"`
	Fields   *StructuredFields `json:"structured_fields,omitempty"`
	Faces    []Face            `json:"faces"`
	Failures []Failure         `json:"failures"`
}
