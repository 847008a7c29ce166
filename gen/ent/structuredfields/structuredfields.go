// Code generated by ent, DO NOT EDIT.

package structuredfields

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the structuredfields type in the database.
	Label = "structured_fields"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentID holds the string denoting the document_id field in the database.
	FieldDocumentID = "document_id"
	// FieldFormat holds the string denoting the format field in the database.
	FieldFormat = "format"
	// FieldDocumentType holds the string denoting the document_type field in the database.
	FieldDocumentType = "document_type"
	// FieldCountryCode holds the string denoting the country_code field in the database.
	FieldCountryCode = "country_code"
	// FieldSurname holds the string denoting the surname field in the database.
	FieldSurname = "surname"
	// FieldGivenNames holds the string denoting the given_names field in the database.
	FieldGivenNames = "given_names"
	// FieldDocumentNumber holds the string denoting the document_number field in the database.
	FieldDocumentNumber = "document_number"
	// FieldNationality holds the string denoting the nationality field in the database.
	FieldNationality = "nationality"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldSex holds the string denoting the sex field in the database.
	FieldSex = "sex"
	// FieldExpiryDate holds the string denoting the expiry_date field in the database.
	FieldExpiryDate = "expiry_date"
	// FieldPersonalNumber holds the string denoting the personal_number field in the database.
	FieldPersonalNumber = "personal_number"
	// FieldChecksumValid holds the string denoting the checksum_valid field in the database.
	FieldChecksumValid = "checksum_valid"
	// FieldRawLines holds the string denoting the raw_lines field in the database.
	FieldRawLines = "raw_lines"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeDocument holds the string denoting the document edge name in mutations.
	EdgeDocument = "document"
	// Table holds the table name of the structuredfields in the database.
	Table = "structured_fields"
	// DocumentTable is the table that holds the document relation/edge.
	DocumentTable = "structured_fields"
	// DocumentInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentInverseTable = "documents"
	// DocumentColumn is the table column denoting the document relation/edge.
	DocumentColumn = "document_id"
)

// Columns holds all SQL columns for structuredfields fields.
var Columns = []string{
	FieldID,
	FieldDocumentID,
	FieldFormat,
	FieldDocumentType,
	FieldCountryCode,
	FieldSurname,
	FieldGivenNames,
	FieldDocumentNumber,
	FieldNationality,
	FieldBirthDate,
	FieldSex,
	FieldExpiryDate,
	FieldPersonalNumber,
	FieldChecksumValid,
	FieldRawLines,
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
	// FormatValidator is a validator for the "format" field. It is called by the builders before save.
	FormatValidator func(string) error
	// DefaultChecksumValid holds the default value on creation for the "checksum_valid" field.
	DefaultChecksumValid bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the StructuredFields queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentID orders the results by the document_id field.
func ByDocumentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentID, opts...).ToFunc()
}

// ByFormat orders the results by the format field.
func ByFormat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormat, opts...).ToFunc()
}

// ByDocumentType orders the results by the document_type field.
func ByDocumentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentType, opts...).ToFunc()
}

// ByCountryCode orders the results by the country_code field.
func ByCountryCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountryCode, opts...).ToFunc()
}

// BySurname orders the results by the surname field.
func BySurname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSurname, opts...).ToFunc()
}

// ByGivenNames orders the results by the given_names field.
func ByGivenNames(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivenNames, opts...).ToFunc()
}

// ByDocumentNumber orders the results by the document_number field.
func ByDocumentNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentNumber, opts...).ToFunc()
}

// ByNationality orders the results by the nationality field.
func ByNationality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNationality, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// BySex orders the results by the sex field.
func BySex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSex, opts...).ToFunc()
}

// ByExpiryDate orders the results by the expiry_date field.
func ByExpiryDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiryDate, opts...).ToFunc()
}

// ByPersonalNumber orders the results by the personal_number field.
func ByPersonalNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPersonalNumber, opts...).ToFunc()
}

// ByChecksumValid orders the results by the checksum_valid field.
func ByChecksumValid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksumValid, opts...).ToFunc()
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
		sqlgraph.Edge(sqlgraph.O2O, true, DocumentTable, DocumentColumn),
	)
}
