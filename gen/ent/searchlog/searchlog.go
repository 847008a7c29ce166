// Code generated by ent, DO NOT EDIT.

package searchlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the searchlog type in the database.
	Label = "search_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSearchType holds the string denoting the search_type field in the database.
	FieldSearchType = "search_type"
	// FieldQueryHash holds the string denoting the query_hash field in the database.
	FieldQueryHash = "query_hash"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldThreshold holds the string denoting the threshold field in the database.
	FieldThreshold = "threshold"
	// FieldResultCount holds the string denoting the result_count field in the database.
	FieldResultCount = "result_count"
	// FieldElapsedMs holds the string denoting the elapsed_ms field in the database.
	FieldElapsedMs = "elapsed_ms"
	// FieldExecutedAt holds the string denoting the executed_at field in the database.
	FieldExecutedAt = "executed_at"
	// Table holds the table name of the searchlog in the database.
	Table = "search_logs"
)

// Columns holds all SQL columns for searchlog fields.
var Columns = []string{
	FieldID,
	FieldSearchType,
	FieldQueryHash,
	FieldScope,
	FieldThreshold,
	FieldResultCount,
	FieldElapsedMs,
	FieldExecutedAt,
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
	// SearchTypeValidator is a validator for the "search_type" field. It is called by the builders before save.
	SearchTypeValidator func(string) error
	// QueryHashValidator is a validator for the "query_hash" field. It is called by the builders before save.
	QueryHashValidator func(string) error
	// DefaultResultCount holds the default value on creation for the "result_count" field.
	DefaultResultCount int
	// ResultCountValidator is a validator for the "result_count" field. It is called by the builders before save.
	ResultCountValidator func(int) error
	// ElapsedMsValidator is a validator for the "elapsed_ms" field. It is called by the builders before save.
	ElapsedMsValidator func(int64) error
	// DefaultExecutedAt holds the default value on creation for the "executed_at" field.
	DefaultExecutedAt func() time.Time
)

// OrderOption defines the ordering options for the SearchLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySearchType orders the results by the search_type field.
func BySearchType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSearchType, opts...).ToFunc()
}

// ByQueryHash orders the results by the query_hash field.
func ByQueryHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQueryHash, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByThreshold orders the results by the threshold field.
func ByThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldThreshold, opts...).ToFunc()
}

// ByResultCount orders the results by the result_count field.
func ByResultCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultCount, opts...).ToFunc()
}

// ByElapsedMs orders the results by the elapsed_ms field.
func ByElapsedMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedMs, opts...).ToFunc()
}

// ByExecutedAt orders the results by the executed_at field.
func ByExecutedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutedAt, opts...).ToFunc()
}
