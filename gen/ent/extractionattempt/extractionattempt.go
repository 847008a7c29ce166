// Code generated by ent, DO NOT EDIT.

package extractionattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extractionattempt type in the database.
	Label = "extraction_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldSucceeded holds the string denoting the succeeded field in the database.
	FieldSucceeded = "succeeded"
	// FieldFullText holds the string denoting the full_text field in the database.
	FieldFullText = "full_text"
	// FieldBlocks holds the string denoting the blocks field in the database.
	FieldBlocks = "blocks"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldEngine holds the string denoting the engine field in the database.
	FieldEngine = "engine"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the extractionattempt in the database.
	Table = "extraction_attempts"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "extraction_attempts"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for extractionattempt fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldAttemptNumber,
	FieldSucceeded,
	FieldFullText,
	FieldBlocks,
	FieldLanguage,
	FieldConfidence,
	FieldEngine,
	FieldElapsedMs,
	FieldCreatedAt,
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
	// AttemptNumberValidator is a validator for the "attempt_number" field. It is called by the builders before save.
	AttemptNumberValidator func(int) error
	// DefaultSucceeded holds the default value on creation for the "succeeded" field.
	DefaultSucceeded bool
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence float32
	// EngineValidator is a validator for the "engine" field. It is called by the builders before save.
	EngineValidator func(string) error
	// ElapsedMsValidator is a validator for the "elapsed_ms" field. It is called by the builders before save.
	ElapsedMsValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractionAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// BySucceeded orders the results by the succeeded field.
func BySucceeded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSucceeded, opts...).ToFunc()
}

// ByFullText orders the results by the full_text field.
func ByFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullText, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByEngine orders the results by the engine field.
func ByEngine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngine, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDocumentField orders the results by document field.
func ByDocumentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
	)
}
