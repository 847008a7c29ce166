// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/internal/entity"
)

// ExtractionAttempt is the model entity for the ExtractionAttempt schema.
type ExtractionAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// AttemptNumber holds the value of the "attempt_number" field.
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Succeeded holds the value of the "succeeded" field.
	Succeeded bool `json:"succeeded,omitempty"`
	// FullText holds the value of the "full_text" field.
	FullText string `json:"full_text,omitempty"`
	// Blocks holds the value of the "blocks" field.
	Blocks []entity.TextBlock `json:"blocks,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Engine holds the value of the "engine" field.
	Engine string `json:"engine,omitempty"`
	// ElapsedMs holds the value of the "elapsed_ms" field.
	ElapsedMs int64 `json:"elapsed_ms,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionAttemptQuery when eager-loading is set.
	Edges        ExtractionAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionAttemptEdges holds the relations/edges for other nodes in the graph.
type ExtractionAttemptEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionAttemptEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionattempt.FieldBlocks:
			values[i] = new([]byte)
		case extractionattempt.FieldSucceeded:
			values[i] = new(sql.NullBool)
		case extractionattempt.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case extractionattempt.FieldID, extractionattempt.FieldDocumentID, extractionattempt.FieldAttemptNumber, extractionattempt.FieldElapsedMs:
			values[i] = new(sql.NullInt64)
		case extractionattempt.FieldFullText, extractionattempt.FieldLanguage, extractionattempt.FieldEngine:
			values[i] = new(sql.NullString)
		case extractionattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionAttempt fields.
func (_m *ExtractionAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionattempt.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extractionattempt.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case extractionattempt.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case extractionattempt.FieldSucceeded:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field succeeded", values[i])
			} else if value.Valid {
				_m.Succeeded = value.Bool
			}
		case extractionattempt.FieldFullText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_text", values[i])
			} else if value.Valid {
				_m.FullText = value.String
			}
		case extractionattempt.FieldBlocks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blocks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Blocks); err != nil {
					return fmt.Errorf("unmarshal field blocks: %w", err)
				}
			}
		case extractionattempt.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case extractionattempt.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case extractionattempt.FieldEngine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engine", values[i])
			} else if value.Valid {
				_m.Engine = value.String
			}
		case extractionattempt.FieldElapsedMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field elapsed_ms", values[i])
			} else if value.Valid {
				_m.ElapsedMs = value.Int64
			}
		case extractionattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the ExtractionAttempt entity.
func (_m *ExtractionAttempt) QueryDocument() *DocumentQuery {
	return NewExtractionAttemptClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this ExtractionAttempt.
// Note that you need to call ExtractionAttempt.Unwrap() before calling this method if this ExtractionAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionAttempt) Update() *ExtractionAttemptUpdateOne {
	return NewExtractionAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionAttempt) Unwrap() *ExtractionAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("succeeded=")
	builder.WriteString(fmt.Sprintf("%v", _m.Succeeded))
	builder.WriteString(", ")
	builder.WriteString("full_text=")
	builder.WriteString(_m.FullText)
	builder.WriteString(", ")
	builder.WriteString("blocks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Blocks))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("engine=")
	builder.WriteString(_m.Engine)
	builder.WriteString(", ")
	builder.WriteString("elapsed_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ElapsedMs))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionAttempts is a parsable slice of ExtractionAttempt.
type ExtractionAttempts []*ExtractionAttempt
