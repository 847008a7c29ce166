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
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// StructuredFields is the model entity for the StructuredFields schema.
type StructuredFields struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// DocumentType holds the value of the "document_type" field.
	DocumentType string `json:"document_type,omitempty"`
	// CountryCode holds the value of the "country_code" field.
	CountryCode string `json:"country_code,omitempty"`
	// Surname holds the value of the "surname" field.
	Surname string `json:"surname,omitempty"`
	// GivenNames holds the value of the "given_names" field.
	GivenNames string `json:"given_names,omitempty"`
	// DocumentNumber holds the value of the "document_number" field.
	DocumentNumber string `json:"document_number,omitempty"`
	// Nationality holds the value of the "nationality" field.
	Nationality string `json:"nationality,omitempty"`
	// BirthDate holds the value of the "birth_date" field.
	BirthDate string `json:"birth_date,omitempty"`
	// Sex holds the value of the "sex" field.
	Sex string `json:"sex,omitempty"`
	// ExpiryDate holds the value of the "expiry_date" field.
	ExpiryDate string `json:"expiry_date,omitempty"`
	// PersonalNumber holds the value of the "personal_number" field.
	PersonalNumber string `json:"personal_number,omitempty"`
	// ChecksumValid holds the value of the "checksum_valid" field.
	ChecksumValid bool `json:"checksum_valid,omitempty"`
	// RawLines holds the value of the "raw_lines" field.
	RawLines []string `json:"raw_lines,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StructuredFieldsQuery when eager-loading is set.
	Edges        StructuredFieldsEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StructuredFieldsEdges holds the relations/edges for other nodes in the graph.
type StructuredFieldsEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StructuredFieldsEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StructuredFields) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case structuredfields.FieldRawLines:
			values[i] = new([]byte)
		case structuredfields.FieldChecksumValid:
			values[i] = new(sql.NullBool)
		case structuredfields.FieldID, structuredfields.FieldDocumentID:
			values[i] = new(sql.NullInt64)
		case structuredfields.FieldFormat, structuredfields.FieldDocumentType, structuredfields.FieldCountryCode, structuredfields.FieldSurname, structuredfields.FieldGivenNames, structuredfields.FieldDocumentNumber, structuredfields.FieldNationality, structuredfields.FieldBirthDate, structuredfields.FieldSex, structuredfields.FieldExpiryDate, structuredfields.FieldPersonalNumber:
			values[i] = new(sql.NullString)
		case structuredfields.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StructuredFields fields.
func (_m *StructuredFields) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case structuredfields.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case structuredfields.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case structuredfields.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case structuredfields.FieldDocumentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_type", values[i])
			} else if value.Valid {
				_m.DocumentType = value.String
			}
		case structuredfields.FieldCountryCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country_code", values[i])
			} else if value.Valid {
				_m.CountryCode = value.String
			}
		case structuredfields.FieldSurname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field surname", values[i])
			} else if value.Valid {
				_m.Surname = value.String
			}
		case structuredfields.FieldGivenNames:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field given_names", values[i])
			} else if value.Valid {
				_m.GivenNames = value.String
			}
		case structuredfields.FieldDocumentNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_number", values[i])
			} else if value.Valid {
				_m.DocumentNumber = value.String
			}
		case structuredfields.FieldNationality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nationality", values[i])
			} else if value.Valid {
				_m.Nationality = value.String
			}
		case structuredfields.FieldBirthDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = value.String
			}
		case structuredfields.FieldSex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sex", values[i])
			} else if value.Valid {
				_m.Sex = value.String
			}
		case structuredfields.FieldExpiryDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field expiry_date", values[i])
			} else if value.Valid {
				_m.ExpiryDate = value.String
			}
		case structuredfields.FieldPersonalNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field personal_number", values[i])
			} else if value.Valid {
				_m.PersonalNumber = value.String
			}
		case structuredfields.FieldChecksumValid:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field checksum_valid", values[i])
			} else if value.Valid {
				_m.ChecksumValid = value.Bool
			}
		case structuredfields.FieldRawLines:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_lines", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawLines); err != nil {
					return fmt.Errorf("unmarshal field raw_lines: %w", err)
				}
			}
		case structuredfields.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StructuredFields.
// This includes values selected through modifiers, order, etc.
func (_m *StructuredFields) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the StructuredFields entity.
func (_m *StructuredFields) QueryDocument() *DocumentQuery {
	return NewStructuredFieldsClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this StructuredFields.
// Note that you need to call StructuredFields.Unwrap() before calling this method if this StructuredFields
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StructuredFields) Update() *StructuredFieldsUpdateOne {
	return NewStructuredFieldsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StructuredFields entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StructuredFields) Unwrap() *StructuredFields {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StructuredFields is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StructuredFields) String() string {
	var builder strings.Builder
	builder.WriteString("StructuredFields(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("document_type=")
	builder.WriteString(_m.DocumentType)
	builder.WriteString(", ")
	builder.WriteString("country_code=")
	builder.WriteString(_m.CountryCode)
	builder.WriteString(", ")
	builder.WriteString("surname=")
	builder.WriteString(_m.Surname)
	builder.WriteString(", ")
	builder.WriteString("given_names=")
	builder.WriteString(_m.GivenNames)
	builder.WriteString(", ")
	builder.WriteString("document_number=")
	builder.WriteString(_m.DocumentNumber)
	builder.WriteString(", ")
	builder.WriteString("nationality=")
	builder.WriteString(_m.Nationality)
	builder.WriteString(", ")
	builder.WriteString("birth_date=")
	builder.WriteString(_m.BirthDate)
	builder.WriteString(", ")
	builder.WriteString("sex=")
	builder.WriteString(_m.Sex)
	builder.WriteString(", ")
	builder.WriteString("expiry_date=")
	builder.WriteString(_m.ExpiryDate)
	builder.WriteString(", ")
	builder.WriteString("personal_number=")
	builder.WriteString(_m.PersonalNumber)
	builder.WriteString(", ")
	builder.WriteString("checksum_valid=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChecksumValid))
	builder.WriteString(", ")
	builder.WriteString("raw_lines=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawLines))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StructuredFieldsSlice is a parsable slice of StructuredFields.
type StructuredFieldsSlice []*StructuredFields
