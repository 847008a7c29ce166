// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldContentHash holds the string denoting the content_hash field in the database.
	FieldContentHash = "content_hash"
	// FieldSourcePath holds the string denoting the source_path field in the database.
	FieldSourcePath = "source_path"
	// FieldFilename holds the string denoting the filename field in the database.
	FieldFilename = "filename"
	// FieldFileKind holds the string denoting the file_kind field in the database.
	FieldFileKind = "file_kind"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldUploadedAt holds the string denoting the uploaded_at field in the database.
	FieldUploadedAt = "uploaded_at"
	// FieldProcessingStatus holds the string denoting the processing_status field in the database.
	FieldProcessingStatus = "processing_status"
	// FieldVersionNumber holds the string denoting the version_number field in the database.
	FieldVersionNumber = "version_number"
	// FieldParentDocumentID holds the string denoting the parent_document_id field in the database.
	FieldParentDocumentID = "parent_document_id"
	// FieldPageCount holds the string denoting the page_count field in the database.
	FieldPageCount = "page_count"
	// FieldHasStructuredFields holds the string denoting the has_structured_fields field in the database.
	FieldHasStructuredFields = "has_structured_fields"
	// EdgeAttempts holds the string denoting the attempts edge name in mutations.
	EdgeAttempts = "attempts"
	// EdgeFaces holds the string denoting the faces edge name in mutations.
	EdgeFaces = "faces"
	// EdgeFailures holds the string denoting the failures edge name in mutations.
	EdgeFailures = "failures"
	// EdgeFields holds the string denoting the fields edge name in mutations.
	EdgeFields = "fields"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeRevisions holds the string denoting the revisions edge name in mutations.
	EdgeRevisions = "revisions"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// AttemptsTable is the table that holds the attempts relation/edge.
	AttemptsTable = "extraction_attempts"
	// AttemptsInverseTable is the table name for the ExtractionAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "extractionattempt" package.
	AttemptsInverseTable = "extraction_attempts"
	// AttemptsColumn is the table column denoting the attempts relation/edge.
	AttemptsColumn = "document_id"
	// FacesTable is the table that holds the faces relation/edge.
	FacesTable = "face_records"
	// FacesInverseTable is the table name for the FaceRecord entity.
	// It exists in this package in order to avoid circular dependency with the "facerecord" package.
	FacesInverseTable = "face_records"
	// FacesColumn is the table column denoting the faces relation/edge.
	FacesColumn = "document_id"
	// FailuresTable is the table that holds the failures relation/edge.
	FailuresTable = "processing_failures"
	// FailuresInverseTable is the table name for the ProcessingFailure entity.
	// It exists in this package in order to avoid circular dependency with the "processingfailure" package.
	FailuresInverseTable = "processing_failures"
	// FailuresColumn is the table column denoting the failures relation/edge.
	FailuresColumn = "document_id"
	// FieldsTable is the table that holds the fields relation/edge.
	FieldsTable = "structured_fields"
	// FieldsInverseTable is the table name for the StructuredFields entity.
	// It exists in this package in order to avoid circular dependency with the "structuredfields" package.
	FieldsInverseTable = "structured_fields"
	// FieldsColumn is the table column denoting the fields relation/edge.
	FieldsColumn = "document_id"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "documents"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_document_id"
	// RevisionsTable is the table that holds the revisions relation/edge.
	RevisionsTable = "documents"
	// RevisionsColumn is the table column denoting the revisions relation/edge.
	RevisionsColumn = "parent_document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldContentHash,
	FieldSourcePath,
	FieldFilename,
	FieldFileKind,
	FieldFileSize,
	FieldUploadedAt,
	FieldProcessingStatus,
	FieldVersionNumber,
	FieldParentDocumentID,
	FieldPageCount,
	FieldHasStructuredFields,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	ContentHashValidator func([]byte) error
	// SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	SourcePathValidator func(string) error
	// FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	FilenameValidator func(string) error
	// FileKindValidator is a validator for the "file_kind" field. It is called by the builders before save.
	FileKindValidator func(string) error
	// FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	FileSizeValidator func(int64) error
	// DefaultUploadedAt holds the default value on creation for the "uploaded_at" field.
	DefaultUploadedAt func() time.Time
	// DefaultProcessingStatus holds the default value on creation for the "processing_status" field.
	DefaultProcessingStatus string
	// ProcessingStatusValidator is a validator for the "processing_status" field. It is called by the builders before save.
	ProcessingStatusValidator func(string) error
	// DefaultVersionNumber holds the default value on creation for the "version_number" field.
	DefaultVersionNumber int
	// VersionNumberValidator is a validator for the "version_number" field. It is called by the builders before save.
	VersionNumberValidator func(int) error
	// DefaultPageCount holds the default value on creation for the "page_count" field.
	DefaultPageCount int
	// PageCountValidator is a validator for the "page_count" field. It is called by the builders before save.
	PageCountValidator func(int) error
	// DefaultHasStructuredFields holds the default value on creation for the "has_structured_fields" field.
	DefaultHasStructuredFields bool
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourcePath orders the results by the source_path field.
func BySourcePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePath, opts...).ToFunc()
}

// ByFilename orders the results by the filename field.
func ByFilename(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilename, opts...).ToFunc()
}

// ByFileKind orders the results by the file_kind field.
func ByFileKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileKind, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByUploadedAt orders the results by the uploaded_at field.
func ByUploadedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUploadedAt, opts...).ToFunc()
}

// ByProcessingStatus orders the results by the processing_status field.
func ByProcessingStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStatus, opts...).ToFunc()
}

// ByVersionNumber orders the results by the version_number field.
func ByVersionNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersionNumber, opts...).ToFunc()
}

// ByParentDocumentID orders the results by the parent_document_id field.
func ByParentDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentDocumentID, opts...).ToFunc()
}

// ByPageCount orders the results by the page_count field.
func ByPageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageCount, opts...).ToFunc()
}

// ByHasStructuredFields orders the results by the has_structured_fields field.
func ByHasStructuredFields(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasStructuredFields, opts...).ToFunc()
}

// ByAttemptsCount orders the results by attempts count.
func ByAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttemptsStep(), opts...)
	}
}

// ByAttempts orders the results by attempts terms.
func ByAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFacesCount orders the results by faces count.
func ByFacesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFacesStep(), opts...)
	}
}

// ByFaces orders the results by faces terms.
func ByFaces(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFacesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFailuresCount orders the results by failures count.
func ByFailuresCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFailuresStep(), opts...)
	}
}

// ByFailures orders the results by failures terms.
func ByFailures(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFailuresStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByFieldsField orders the results by fields field.
func ByFieldsField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFieldsStep(), sql.OrderByField(field, opts...))
	}
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByRevisionsCount orders the results by revisions count.
func ByRevisionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRevisionsStep(), opts...)
	}
}

// ByRevisions orders the results by revisions terms.
func ByRevisions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRevisionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttemptsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
	)
}
func newFacesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FacesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FacesTable, FacesColumn),
	)
}
func newFailuresStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FailuresInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
	)
}
func newFieldsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FieldsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, FieldsTable, FieldsColumn),
	)
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newRevisionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RevisionsTable, RevisionsColumn),
	)
}
