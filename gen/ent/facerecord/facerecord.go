// Code generated by ent, DO NOT EDIT.

package facerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the facerecord type in the database.
	Label = "face_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldPageNumber holds the string denoting the page_number field in the database.
	FieldPageNumber = "page_number"
	// FieldBoxX holds the string denoting the box_x field in the database.
	FieldBoxX = "box_x"
	// FieldBoxY holds the string denoting the box_y field in the database.
	FieldBoxY = "box_y"
	// FieldBoxW holds the string denoting the box_w field in the database.
	FieldBoxW = "box_w"
	// FieldBoxH holds the string denoting the box_h field in the database.
	FieldBoxH = "box_h"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldQuality holds the string denoting the quality field in the database.
	FieldQuality = "quality"
	// FieldIndexID holds the string denoting the index_id field in the database.
	FieldIndexID = "index_id"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the facerecord in the database.
	Table = "face_records"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "face_records"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for facerecord fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldPageNumber,
	FieldBoxX,
	FieldBoxY,
	FieldBoxW,
	FieldBoxH,
	FieldConfidence,
	FieldQuality,
	FieldIndexID,
	FieldDetectedAt,
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
	// DefaultPageNumber holds the default value on creation for the "page_number" field.
	DefaultPageNumber int
	// PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	PageNumberValidator func(int) error
	// BoxWValidator is a validator for the "box_w" field. It is called by the builders before save.
	BoxWValidator func(int) error
	// BoxHValidator is a validator for the "box_h" field. It is called by the builders before save.
	BoxHValidator func(int) error
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
)

// OrderOption defines the ordering options for the FaceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByPageNumber orders the results by the page_number field.
func ByPageNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageNumber, opts...).ToFunc()
}

// ByBoxX orders the results by the box_x field.
func ByBoxX(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxX, opts...).ToFunc()
}

// ByBoxY orders the results by the box_y field.
func ByBoxY(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxY, opts...).ToFunc()
}

// ByBoxW orders the results by the box_w field.
func ByBoxW(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxW, opts...).ToFunc()
}

// ByBoxH orders the results by the box_h field.
func ByBoxH(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBoxH, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByQuality orders the results by the quality field.
func ByQuality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuality, opts...).ToFunc()
}

// ByIndexID orders the results by the index_id field.
func ByIndexID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIndexID, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
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
