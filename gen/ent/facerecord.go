// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/facerecord"
)

// FaceRecord is the model entity for the FaceRecord schema.
type FaceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// BoxX holds the value of the "box_x" field.
	BoxX int `json:"box_x,omitempty"`
	// BoxY holds the value of the "box_y" field.
	BoxY int `json:"box_y,omitempty"`
	// BoxW holds the value of the "box_w" field.
	BoxW int `json:"box_w,omitempty"`
	// BoxH holds the value of the "box_h" field.
	BoxH int `json:"box_h,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// Quality holds the value of the "quality" field.
	Quality float32 `json:"quality,omitempty"`
	// IndexID holds the value of the "index_id" field.
	IndexID string `json:"index_id,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt time.Time `json:"detected_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FaceRecordQuery when eager-loading is set.
	Edges        FaceRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FaceRecordEdges holds the relations/edges for other nodes in the graph.
type FaceRecordEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FaceRecordEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FaceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case facerecord.FieldConfidence, facerecord.FieldQuality:
			values[i] = new(sql.NullFloat64)
		case facerecord.FieldID, facerecord.FieldDocumentID, facerecord.FieldPageNumber, facerecord.FieldBoxX, facerecord.FieldBoxY, facerecord.FieldBoxW, facerecord.FieldBoxH:
			values[i] = new(sql.NullInt64)
		case facerecord.FieldIndexID:
			values[i] = new(sql.NullString)
		case facerecord.FieldDetectedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FaceRecord fields.
func (_m *FaceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case facerecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case facerecord.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case facerecord.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case facerecord.FieldBoxX:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box_x", values[i])
			} else if value.Valid {
				_m.BoxX = int(value.Int64)
			}
		case facerecord.FieldBoxY:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box_y", values[i])
			} else if value.Valid {
				_m.BoxY = int(value.Int64)
			}
		case facerecord.FieldBoxW:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box_w", values[i])
			} else if value.Valid {
				_m.BoxW = int(value.Int64)
			}
		case facerecord.FieldBoxH:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field box_h", values[i])
			} else if value.Valid {
				_m.BoxH = int(value.Int64)
			}
		case facerecord.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case facerecord.FieldQuality:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quality", values[i])
			} else if value.Valid {
				_m.Quality = float32(value.Float64)
			}
		case facerecord.FieldIndexID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field index_id", values[i])
			} else if value.Valid {
				_m.IndexID = value.String
			}
		case facerecord.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FaceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *FaceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the FaceRecord entity.
func (_m *FaceRecord) QueryDocument() *DocumentQuery {
	return NewFaceRecordClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this FaceRecord.
// Note that you need to call FaceRecord.Unwrap() before calling this method if this FaceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FaceRecord) Update() *FaceRecordUpdateOne {
	return NewFaceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FaceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FaceRecord) Unwrap() *FaceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FaceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FaceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("FaceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	builder.WriteString("box_x=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoxX))
	builder.WriteString(", ")
	builder.WriteString("box_y=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoxY))
	builder.WriteString(", ")
	builder.WriteString("box_w=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoxW))
	builder.WriteString(", ")
	builder.WriteString("box_h=")
	builder.WriteString(fmt.Sprintf("%v", _m.BoxH))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("quality=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quality))
	builder.WriteString(", ")
	builder.WriteString("index_id=")
	builder.WriteString(_m.IndexID)
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FaceRecords is a parsable slice of FaceRecord.
type FaceRecords []*FaceRecord
