// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// StructuredFieldsUpdate is the builder for updating StructuredFields entities.
type StructuredFieldsUpdate struct {
	config
	hooks    []Hook
	mutation *StructuredFieldsMutation
}

// Where appends a list predicates to the StructuredFieldsUpdate builder.
func (_u *StructuredFieldsUpdate) Where(ps ...predicate.StructuredFields) *StructuredFieldsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *StructuredFieldsUpdate) SetDocumentID(v int) *StructuredFieldsUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableDocumentID(v *int) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *StructuredFieldsUpdate) SetFormat(v string) *StructuredFieldsUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableFormat(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *StructuredFieldsUpdate) SetDocumentType(v string) *StructuredFieldsUpdate {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableDocumentType(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *StructuredFieldsUpdate) ClearDocumentType() *StructuredFieldsUpdate {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *StructuredFieldsUpdate) SetCountryCode(v string) *StructuredFieldsUpdate {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableCountryCode(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// ClearCountryCode clears the value of the "country_code" field.
func (_u *StructuredFieldsUpdate) ClearCountryCode() *StructuredFieldsUpdate {
	_u.mutation.ClearCountryCode()
	return _u
}

// SetSurname sets the "surname" field.
func (_u *StructuredFieldsUpdate) SetSurname(v string) *StructuredFieldsUpdate {
	_u.mutation.SetSurname(v)
	return _u
}

// SetNillableSurname sets the "surname" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableSurname(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetSurname(*v)
	}
	return _u
}

// ClearSurname clears the value of the "surname" field.
func (_u *StructuredFieldsUpdate) ClearSurname() *StructuredFieldsUpdate {
	_u.mutation.ClearSurname()
	return _u
}

// SetGivenNames sets the "given_names" field.
func (_u *StructuredFieldsUpdate) SetGivenNames(v string) *StructuredFieldsUpdate {
	_u.mutation.SetGivenNames(v)
	return _u
}

// SetNillableGivenNames sets the "given_names" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableGivenNames(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetGivenNames(*v)
	}
	return _u
}

// ClearGivenNames clears the value of the "given_names" field.
func (_u *StructuredFieldsUpdate) ClearGivenNames() *StructuredFieldsUpdate {
	_u.mutation.ClearGivenNames()
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *StructuredFieldsUpdate) SetDocumentNumber(v string) *StructuredFieldsUpdate {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableDocumentNumber(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (_u *StructuredFieldsUpdate) ClearDocumentNumber() *StructuredFieldsUpdate {
	_u.mutation.ClearDocumentNumber()
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *StructuredFieldsUpdate) SetNationality(v string) *StructuredFieldsUpdate {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableNationality(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// ClearNationality clears the value of the "nationality" field.
func (_u *StructuredFieldsUpdate) ClearNationality() *StructuredFieldsUpdate {
	_u.mutation.ClearNationality()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *StructuredFieldsUpdate) SetBirthDate(v string) *StructuredFieldsUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableBirthDate(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *StructuredFieldsUpdate) ClearBirthDate() *StructuredFieldsUpdate {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetSex sets the "sex" field.
func (_u *StructuredFieldsUpdate) SetSex(v string) *StructuredFieldsUpdate {
	_u.mutation.SetSex(v)
	return _u
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableSex(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetSex(*v)
	}
	return _u
}

// ClearSex clears the value of the "sex" field.
func (_u *StructuredFieldsUpdate) ClearSex() *StructuredFieldsUpdate {
	_u.mutation.ClearSex()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *StructuredFieldsUpdate) SetExpiryDate(v string) *StructuredFieldsUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableExpiryDate(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *StructuredFieldsUpdate) ClearExpiryDate() *StructuredFieldsUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetPersonalNumber sets the "personal_number" field.
func (_u *StructuredFieldsUpdate) SetPersonalNumber(v string) *StructuredFieldsUpdate {
	_u.mutation.SetPersonalNumber(v)
	return _u
}

// SetNillablePersonalNumber sets the "personal_number" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillablePersonalNumber(v *string) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetPersonalNumber(*v)
	}
	return _u
}

// ClearPersonalNumber clears the value of the "personal_number" field.
func (_u *StructuredFieldsUpdate) ClearPersonalNumber() *StructuredFieldsUpdate {
	_u.mutation.ClearPersonalNumber()
	return _u
}

// SetChecksumValid sets the "checksum_valid" field.
func (_u *StructuredFieldsUpdate) SetChecksumValid(v bool) *StructuredFieldsUpdate {
	_u.mutation.SetChecksumValid(v)
	return _u
}

// SetNillableChecksumValid sets the "checksum_valid" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableChecksumValid(v *bool) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetChecksumValid(*v)
	}
	return _u
}

// SetRawLines sets the "raw_lines" field.
func (_u *StructuredFieldsUpdate) SetRawLines(v []string) *StructuredFieldsUpdate {
	_u.mutation.SetRawLines(v)
	return _u
}

// AppendRawLines appends value to the "raw_lines" field.
func (_u *StructuredFieldsUpdate) AppendRawLines(v []string) *StructuredFieldsUpdate {
	_u.mutation.AppendRawLines(v)
	return _u
}

// ClearRawLines clears the value of the "raw_lines" field.
func (_u *StructuredFieldsUpdate) ClearRawLines() *StructuredFieldsUpdate {
	_u.mutation.ClearRawLines()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StructuredFieldsUpdate) SetCreatedAt(v time.Time) *StructuredFieldsUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StructuredFieldsUpdate) SetNillableCreatedAt(v *time.Time) *StructuredFieldsUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *StructuredFieldsUpdate) SetDocument(v *Document) *StructuredFieldsUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the StructuredFieldsMutation object of the builder.
func (_u *StructuredFieldsUpdate) Mutation() *StructuredFieldsMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *StructuredFieldsUpdate) ClearDocument() *StructuredFieldsUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StructuredFieldsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StructuredFieldsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StructuredFieldsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StructuredFieldsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StructuredFieldsUpdate) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := structuredfields.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "StructuredFields.format": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StructuredFields.document"`)
	}
	return nil
}

func (_u *StructuredFieldsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(structuredfields.Table, structuredfields.Columns, sqlgraph.NewFieldSpec(structuredfields.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(structuredfields.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(structuredfields.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(structuredfields.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(structuredfields.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.CountryCodeCleared() {
		_spec.ClearField(structuredfields.FieldCountryCode, field.TypeString)
	}
	if value, ok := _u.mutation.Surname(); ok {
		_spec.SetField(structuredfields.FieldSurname, field.TypeString, value)
	}
	if _u.mutation.SurnameCleared() {
		_spec.ClearField(structuredfields.FieldSurname, field.TypeString)
	}
	if value, ok := _u.mutation.GivenNames(); ok {
		_spec.SetField(structuredfields.FieldGivenNames, field.TypeString, value)
	}
	if _u.mutation.GivenNamesCleared() {
		_spec.ClearField(structuredfields.FieldGivenNames, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(structuredfields.FieldDocumentNumber, field.TypeString, value)
	}
	if _u.mutation.DocumentNumberCleared() {
		_spec.ClearField(structuredfields.FieldDocumentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(structuredfields.FieldNationality, field.TypeString, value)
	}
	if _u.mutation.NationalityCleared() {
		_spec.ClearField(structuredfields.FieldNationality, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(structuredfields.FieldBirthDate, field.TypeString, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(structuredfields.FieldBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.Sex(); ok {
		_spec.SetField(structuredfields.FieldSex, field.TypeString, value)
	}
	if _u.mutation.SexCleared() {
		_spec.ClearField(structuredfields.FieldSex, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(structuredfields.FieldExpiryDate, field.TypeString, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(structuredfields.FieldExpiryDate, field.TypeString)
	}
	if value, ok := _u.mutation.PersonalNumber(); ok {
		_spec.SetField(structuredfields.FieldPersonalNumber, field.TypeString, value)
	}
	if _u.mutation.PersonalNumberCleared() {
		_spec.ClearField(structuredfields.FieldPersonalNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ChecksumValid(); ok {
		_spec.SetField(structuredfields.FieldChecksumValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawLines(); ok {
		_spec.SetField(structuredfields.FieldRawLines, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawLines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, structuredfields.FieldRawLines, value)
		})
	}
	if _u.mutation.RawLinesCleared() {
		_spec.ClearField(structuredfields.FieldRawLines, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(structuredfields.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   structuredfields.DocumentTable,
			Columns: []string{structuredfields.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   structuredfields.DocumentTable,
			Columns: []string{structuredfields.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{structuredfields.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StructuredFieldsUpdateOne is the builder for updating a single StructuredFields entity.
type StructuredFieldsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StructuredFieldsMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *StructuredFieldsUpdateOne) SetDocumentID(v int) *StructuredFieldsUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableDocumentID(v *int) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetFormat sets the "format" field.
func (_u *StructuredFieldsUpdateOne) SetFormat(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableFormat(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetDocumentType sets the "document_type" field.
func (_u *StructuredFieldsUpdateOne) SetDocumentType(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetDocumentType(v)
	return _u
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableDocumentType(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetDocumentType(*v)
	}
	return _u
}

// ClearDocumentType clears the value of the "document_type" field.
func (_u *StructuredFieldsUpdateOne) ClearDocumentType() *StructuredFieldsUpdateOne {
	_u.mutation.ClearDocumentType()
	return _u
}

// SetCountryCode sets the "country_code" field.
func (_u *StructuredFieldsUpdateOne) SetCountryCode(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetCountryCode(v)
	return _u
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableCountryCode(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetCountryCode(*v)
	}
	return _u
}

// ClearCountryCode clears the value of the "country_code" field.
func (_u *StructuredFieldsUpdateOne) ClearCountryCode() *StructuredFieldsUpdateOne {
	_u.mutation.ClearCountryCode()
	return _u
}

// SetSurname sets the "surname" field.
func (_u *StructuredFieldsUpdateOne) SetSurname(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetSurname(v)
	return _u
}

// SetNillableSurname sets the "surname" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableSurname(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetSurname(*v)
	}
	return _u
}

// ClearSurname clears the value of the "surname" field.
func (_u *StructuredFieldsUpdateOne) ClearSurname() *StructuredFieldsUpdateOne {
	_u.mutation.ClearSurname()
	return _u
}

// SetGivenNames sets the "given_names" field.
func (_u *StructuredFieldsUpdateOne) SetGivenNames(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetGivenNames(v)
	return _u
}

// SetNillableGivenNames sets the "given_names" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableGivenNames(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetGivenNames(*v)
	}
	return _u
}

// ClearGivenNames clears the value of the "given_names" field.
func (_u *StructuredFieldsUpdateOne) ClearGivenNames() *StructuredFieldsUpdateOne {
	_u.mutation.ClearGivenNames()
	return _u
}

// SetDocumentNumber sets the "document_number" field.
func (_u *StructuredFieldsUpdateOne) SetDocumentNumber(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetDocumentNumber(v)
	return _u
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableDocumentNumber(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetDocumentNumber(*v)
	}
	return _u
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (_u *StructuredFieldsUpdateOne) ClearDocumentNumber() *StructuredFieldsUpdateOne {
	_u.mutation.ClearDocumentNumber()
	return _u
}

// SetNationality sets the "nationality" field.
func (_u *StructuredFieldsUpdateOne) SetNationality(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetNationality(v)
	return _u
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableNationality(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetNationality(*v)
	}
	return _u
}

// ClearNationality clears the value of the "nationality" field.
func (_u *StructuredFieldsUpdateOne) ClearNationality() *StructuredFieldsUpdateOne {
	_u.mutation.ClearNationality()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *StructuredFieldsUpdateOne) SetBirthDate(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableBirthDate(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// ClearBirthDate clears the value of the "birth_date" field.
func (_u *StructuredFieldsUpdateOne) ClearBirthDate() *StructuredFieldsUpdateOne {
	_u.mutation.ClearBirthDate()
	return _u
}

// SetSex sets the "sex" field.
func (_u *StructuredFieldsUpdateOne) SetSex(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetSex(v)
	return _u
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableSex(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetSex(*v)
	}
	return _u
}

// ClearSex clears the value of the "sex" field.
func (_u *StructuredFieldsUpdateOne) ClearSex() *StructuredFieldsUpdateOne {
	_u.mutation.ClearSex()
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *StructuredFieldsUpdateOne) SetExpiryDate(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableExpiryDate(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *StructuredFieldsUpdateOne) ClearExpiryDate() *StructuredFieldsUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetPersonalNumber sets the "personal_number" field.
func (_u *StructuredFieldsUpdateOne) SetPersonalNumber(v string) *StructuredFieldsUpdateOne {
	_u.mutation.SetPersonalNumber(v)
	return _u
}

// SetNillablePersonalNumber sets the "personal_number" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillablePersonalNumber(v *string) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetPersonalNumber(*v)
	}
	return _u
}

// ClearPersonalNumber clears the value of the "personal_number" field.
func (_u *StructuredFieldsUpdateOne) ClearPersonalNumber() *StructuredFieldsUpdateOne {
	_u.mutation.ClearPersonalNumber()
	return _u
}

// SetChecksumValid sets the "checksum_valid" field.
func (_u *StructuredFieldsUpdateOne) SetChecksumValid(v bool) *StructuredFieldsUpdateOne {
	_u.mutation.SetChecksumValid(v)
	return _u
}

// SetNillableChecksumValid sets the "checksum_valid" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableChecksumValid(v *bool) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetChecksumValid(*v)
	}
	return _u
}

// SetRawLines sets the "raw_lines" field.
func (_u *StructuredFieldsUpdateOne) SetRawLines(v []string) *StructuredFieldsUpdateOne {
	_u.mutation.SetRawLines(v)
	return _u
}

// AppendRawLines appends value to the "raw_lines" field.
func (_u *StructuredFieldsUpdateOne) AppendRawLines(v []string) *StructuredFieldsUpdateOne {
	_u.mutation.AppendRawLines(v)
	return _u
}

// ClearRawLines clears the value of the "raw_lines" field.
func (_u *StructuredFieldsUpdateOne) ClearRawLines() *StructuredFieldsUpdateOne {
	_u.mutation.ClearRawLines()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *StructuredFieldsUpdateOne) SetCreatedAt(v time.Time) *StructuredFieldsUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *StructuredFieldsUpdateOne) SetNillableCreatedAt(v *time.Time) *StructuredFieldsUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *StructuredFieldsUpdateOne) SetDocument(v *Document) *StructuredFieldsUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the StructuredFieldsMutation object of the builder.
func (_u *StructuredFieldsUpdateOne) Mutation() *StructuredFieldsMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *StructuredFieldsUpdateOne) ClearDocument() *StructuredFieldsUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the StructuredFieldsUpdate builder.
func (_u *StructuredFieldsUpdateOne) Where(ps ...predicate.StructuredFields) *StructuredFieldsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StructuredFieldsUpdateOne) Select(field string, fields ...string) *StructuredFieldsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StructuredFields entity.
func (_u *StructuredFieldsUpdateOne) Save(ctx context.Context) (*StructuredFields, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StructuredFieldsUpdateOne) SaveX(ctx context.Context) *StructuredFields {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StructuredFieldsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StructuredFieldsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StructuredFieldsUpdateOne) check() error {
	if v, ok := _u.mutation.Format(); ok {
		if err := structuredfields.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "StructuredFields.format": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "StructuredFields.document"`)
	}
	return nil
}

func (_u *StructuredFieldsUpdateOne) sqlSave(ctx context.Context) (_node *StructuredFields, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(structuredfields.Table, structuredfields.Columns, sqlgraph.NewFieldSpec(structuredfields.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StructuredFields.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, structuredfields.FieldID)
		for _, f := range fields {
			if !structuredfields.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != structuredfields.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(structuredfields.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentType(); ok {
		_spec.SetField(structuredfields.FieldDocumentType, field.TypeString, value)
	}
	if _u.mutation.DocumentTypeCleared() {
		_spec.ClearField(structuredfields.FieldDocumentType, field.TypeString)
	}
	if value, ok := _u.mutation.CountryCode(); ok {
		_spec.SetField(structuredfields.FieldCountryCode, field.TypeString, value)
	}
	if _u.mutation.CountryCodeCleared() {
		_spec.ClearField(structuredfields.FieldCountryCode, field.TypeString)
	}
	if value, ok := _u.mutation.Surname(); ok {
		_spec.SetField(structuredfields.FieldSurname, field.TypeString, value)
	}
	if _u.mutation.SurnameCleared() {
		_spec.ClearField(structuredfields.FieldSurname, field.TypeString)
	}
	if value, ok := _u.mutation.GivenNames(); ok {
		_spec.SetField(structuredfields.FieldGivenNames, field.TypeString, value)
	}
	if _u.mutation.GivenNamesCleared() {
		_spec.ClearField(structuredfields.FieldGivenNames, field.TypeString)
	}
	if value, ok := _u.mutation.DocumentNumber(); ok {
		_spec.SetField(structuredfields.FieldDocumentNumber, field.TypeString, value)
	}
	if _u.mutation.DocumentNumberCleared() {
		_spec.ClearField(structuredfields.FieldDocumentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Nationality(); ok {
		_spec.SetField(structuredfields.FieldNationality, field.TypeString, value)
	}
	if _u.mutation.NationalityCleared() {
		_spec.ClearField(structuredfields.FieldNationality, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(structuredfields.FieldBirthDate, field.TypeString, value)
	}
	if _u.mutation.BirthDateCleared() {
		_spec.ClearField(structuredfields.FieldBirthDate, field.TypeString)
	}
	if value, ok := _u.mutation.Sex(); ok {
		_spec.SetField(structuredfields.FieldSex, field.TypeString, value)
	}
	if _u.mutation.SexCleared() {
		_spec.ClearField(structuredfields.FieldSex, field.TypeString)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(structuredfields.FieldExpiryDate, field.TypeString, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(structuredfields.FieldExpiryDate, field.TypeString)
	}
	if value, ok := _u.mutation.PersonalNumber(); ok {
		_spec.SetField(structuredfields.FieldPersonalNumber, field.TypeString, value)
	}
	if _u.mutation.PersonalNumberCleared() {
		_spec.ClearField(structuredfields.FieldPersonalNumber, field.TypeString)
	}
	if value, ok := _u.mutation.ChecksumValid(); ok {
		_spec.SetField(structuredfields.FieldChecksumValid, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RawLines(); ok {
		_spec.SetField(structuredfields.FieldRawLines, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawLines(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, structuredfields.FieldRawLines, value)
		})
	}
	if _u.mutation.RawLinesCleared() {
		_spec.ClearField(structuredfields.FieldRawLines, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(structuredfields.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   structuredfields.DocumentTable,
			Columns: []string{structuredfields.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   structuredfields.DocumentTable,
			Columns: []string{structuredfields.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StructuredFields{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{structuredfields.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
