// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileKind holds the value of the "file_kind" field.
	FileKind string `json:"file_kind,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int64 `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// ProcessingStatus holds the value of the "processing_status" field.
	ProcessingStatus string `json:"processing_status,omitempty"`
	// VersionNumber holds the value of the "version_number" field.
	VersionNumber int `json:"version_number,omitempty"`
	// ParentDocumentID holds the value of the "parent_document_id" field.
	ParentDocumentID *int `json:"parent_document_id,omitempty"`
	// PageCount holds the value of the "page_count" field.
	PageCount int `json:"page_count,omitempty"`
	// HasStructuredFields holds the value of the "has_structured_fields" field.
	HasStructuredFields bool `json:"has_structured_fields,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Attempts holds the value of the attempts edge.
	Attempts []*ExtractionAttempt `json:"attempts,omitempty"`
	// Faces holds the value of the faces edge.
	Faces []*FaceRecord `json:"faces,omitempty"`
	// Failures holds the value of the failures edge.
	Failures []*ProcessingFailure `json:"failures,omitempty"`
	// Fields holds the value of the fields edge.
	Fields *StructuredFields `json:"fields,omitempty"`
	// Parent holds the value of the parent edge.
	Parent *Document `json:"parent,omitempty"`
	// Revisions holds the value of the revisions edge.
	Revisions []*Document `json:"revisions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// AttemptsOrErr returns the Attempts value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) AttemptsOrErr() ([]*ExtractionAttempt, error) {
	if e.loadedTypes[0] {
		return e.Attempts, nil
	}
	return nil, &NotLoadedError{edge: "attempts"}
}

// FacesOrErr returns the Faces value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) FacesOrErr() ([]*FaceRecord, error) {
	if e.loadedTypes[1] {
		return e.Faces, nil
	}
	return nil, &NotLoadedError{edge: "faces"}
}

// FailuresOrErr returns the Failures value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) FailuresOrErr() ([]*ProcessingFailure, error) {
	if e.loadedTypes[2] {
		return e.Failures, nil
	}
	return nil, &NotLoadedError{edge: "failures"}
}

// FieldsOrErr returns the Fields value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) FieldsOrErr() (*StructuredFields, error) {
	if e.Fields != nil {
		return e.Fields, nil
	} else if e.loadedTypes[3] {
		return nil, &NotFoundError{label: structuredfields.Label}
	}
	return nil, &NotLoadedError{edge: "fields"}
}

// ParentOrErr returns the Parent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentEdges) ParentOrErr() (*Document, error) {
	if e.Parent != nil {
		return e.Parent, nil
	} else if e.loadedTypes[4] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "parent"}
}

// RevisionsOrErr returns the Revisions value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) RevisionsOrErr() ([]*Document, error) {
	if e.loadedTypes[5] {
		return e.Revisions, nil
	}
	return nil, &NotLoadedError{edge: "revisions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldContentHash:
			values[i] = new([]byte)
		case document.FieldHasStructuredFields:
			values[i] = new(sql.NullBool)
		case document.FieldID, document.FieldFileSize, document.FieldVersionNumber, document.FieldParentDocumentID, document.FieldPageCount:
			values[i] = new(sql.NullInt64)
		case document.FieldSourcePath, document.FieldFilename, document.FieldFileKind, document.FieldProcessingStatus:
			values[i] = new(sql.NullString)
		case document.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case document.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case document.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case document.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case document.FieldFileKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_kind", values[i])
			} else if value.Valid {
				_m.FileKind = value.String
			}
		case document.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = value.Int64
			}
		case document.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		case document.FieldProcessingStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_status", values[i])
			} else if value.Valid {
				_m.ProcessingStatus = value.String
			}
		case document.FieldVersionNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version_number", values[i])
			} else if value.Valid {
				_m.VersionNumber = int(value.Int64)
			}
		case document.FieldParentDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field parent_document_id", values[i])
			} else if value.Valid {
				_m.ParentDocumentID = new(int)
				*_m.ParentDocumentID = int(value.Int64)
			}
		case document.FieldPageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_count", values[i])
			} else if value.Valid {
				_m.PageCount = int(value.Int64)
			}
		case document.FieldHasStructuredFields:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_structured_fields", values[i])
			} else if value.Valid {
				_m.HasStructuredFields = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAttempts queries the "attempts" edge of the Document entity.
func (_m *Document) QueryAttempts() *ExtractionAttemptQuery {
	return NewDocumentClient(_m.config).QueryAttempts(_m)
}

// QueryFaces queries the "faces" edge of the Document entity.
func (_m *Document) QueryFaces() *FaceRecordQuery {
	return NewDocumentClient(_m.config).QueryFaces(_m)
}

// QueryFailures queries the "failures" edge of the Document entity.
func (_m *Document) QueryFailures() *ProcessingFailureQuery {
	return NewDocumentClient(_m.config).QueryFailures(_m)
}

// QueryFields queries the "fields" edge of the Document entity.
func (_m *Document) QueryFields() *StructuredFieldsQuery {
	return NewDocumentClient(_m.config).QueryFields(_m)
}

// QueryParent queries the "parent" edge of the Document entity.
func (_m *Document) QueryParent() *DocumentQuery {
	return NewDocumentClient(_m.config).QueryParent(_m)
}

// QueryRevisions queries the "revisions" edge of the Document entity.
func (_m *Document) QueryRevisions() *DocumentQuery {
	return NewDocumentClient(_m.config).QueryRevisions(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_kind=")
	builder.WriteString(_m.FileKind)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("processing_status=")
	builder.WriteString(_m.ProcessingStatus)
	builder.WriteString(", ")
	builder.WriteString("version_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.VersionNumber))
	builder.WriteString(", ")
	if v := _m.ParentDocumentID; v != nil {
		builder.WriteString("parent_document_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("page_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageCount))
	builder.WriteString(", ")
	builder.WriteString("has_structured_fields=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasStructuredFields))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
