// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scanworks/scanvault/gen/ent/searchlog"
)

// SearchLog is the model entity for the SearchLog schema.
type SearchLog struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SearchType holds the value of the "search_type" field.
	SearchType string `json:"search_type,omitempty"`
	// QueryHash holds the value of the "query_hash" field.
	QueryHash string `json:"query_hash,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// Threshold holds the value of the "threshold" field.
	Threshold float32 `json:"threshold,omitempty"`
	// ResultCount holds the value of the "result_count" field.
	ResultCount int `json:"result_count,omitempty"`
	// ElapsedMs holds the value of the "elapsed_ms" field.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`
	// ExecutedAt holds the value of the "executed_at" field.
	ExecutedAt   time.Time `json:"executed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SearchLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case searchlog.FieldThreshold:
			values[i] = new(sql.NullFloat64)
		case searchlog.FieldID, searchlog.FieldResultCount, searchlog.FieldElapsedMs:
			values[i] = new(sql.NullInt64)
		case searchlog.FieldSearchType, searchlog.FieldQueryHash, searchlog.FieldScope:
			values[i] = new(sql.NullString)
		case searchlog.FieldExecutedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SearchLog fields.
func (_m *SearchLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case searchlog.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case searchlog.FieldSearchType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field search_type", values[i])
			} else if value.Valid {
				_m.SearchType = value.String
			}
		case searchlog.FieldQueryHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field query_hash", values[i])
			} else if value.Valid {
				_m.QueryHash = value.String
			}
		case searchlog.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case searchlog.FieldThreshold:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field threshold", values[i])
			} else if value.Valid {
				_m.Threshold = float32(value.Float64)
			}
		case searchlog.FieldResultCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field result_count", values[i])
			} else if value.Valid {
				_m.ResultCount = int(value.Int64)
			}
		case searchlog.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = value.Int64
			}
		case searchlog.FieldExecutedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field executed_at", values[i])
			} else if value.Valid {
				_m.ExecutedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SearchLog.
// This includes values selected through modifiers, order, etc.
func (_m *SearchLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SearchLog.
// Note that you need to call SearchLog.Unwrap() before calling this method if this SearchLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SearchLog) Update() *SearchLogUpdateOne {
	return NewSearchLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SearchLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SearchLog) Unwrap() *SearchLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SearchLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SearchLog) String() string {
	var builder strings.Builder
	builder.WriteString("SearchLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("search_type=")
	builder.WriteString(_m.SearchType)
	builder.WriteString(", ")
	builder.WriteString("query_hash=")
	builder.WriteString(_m.QueryHash)
	builder.WriteString(", ")
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("threshold=")
	builder.WriteString(fmt.Sprintf("%v", _m.Threshold))
	builder.WriteString(", ")
	builder.WriteString("result_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultCount))
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteString(", ")
	builder.WriteString("executed_at=")
	builder.WriteString(_m.ExecutedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SearchLogs is a parsable slice of SearchLog.
type SearchLogs []*SearchLog
