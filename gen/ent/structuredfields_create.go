// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// StructuredFieldsCreate is the builder for creating a StructuredFields entity.
type StructuredFieldsCreate struct {
	config
	mutation *StructuredFieldsMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *StructuredFieldsCreate) SetDocumentID(v int) *StructuredFieldsCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *StructuredFieldsCreate) SetFormat(v string) *StructuredFieldsCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetDocumentType sets the "document_type" field.
func (_c *StructuredFieldsCreate) SetDocumentType(v string) *StructuredFieldsCreate {
	_c.mutation.SetDocumentType(v)
	return _c
}

// SetNillableDocumentType sets the "document_type" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableDocumentType(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetDocumentType(*v)
	}
	return _c
}

// SetCountryCode sets the "country_code" field.
func (_c *StructuredFieldsCreate) SetCountryCode(v string) *StructuredFieldsCreate {
	_c.mutation.SetCountryCode(v)
	return _c
}

// SetNillableCountryCode sets the "country_code" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableCountryCode(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetCountryCode(*v)
	}
	return _c
}

// SetSurname sets the "surname" field.
func (_c *StructuredFieldsCreate) SetSurname(v string) *StructuredFieldsCreate {
	_c.mutation.SetSurname(v)
	return _c
}

// SetNillableSurname sets the "surname" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableSurname(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetSurname(*v)
	}
	return _c
}

// SetGivenNames sets the "given_names" field.
func (_c *StructuredFieldsCreate) SetGivenNames(v string) *StructuredFieldsCreate {
	_c.mutation.SetGivenNames(v)
	return _c
}

// SetNillableGivenNames sets the "given_names" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableGivenNames(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetGivenNames(*v)
	}
	return _c
}

// SetDocumentNumber sets the "document_number" field.
func (_c *StructuredFieldsCreate) SetDocumentNumber(v string) *StructuredFieldsCreate {
	_c.mutation.SetDocumentNumber(v)
	return _c
}

// SetNillableDocumentNumber sets the "document_number" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableDocumentNumber(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetDocumentNumber(*v)
	}
	return _c
}

// SetNationality sets the "nationality" field.
func (_c *StructuredFieldsCreate) SetNationality(v string) *StructuredFieldsCreate {
	_c.mutation.SetNationality(v)
	return _c
}

// SetNillableNationality sets the "nationality" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableNationality(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetNationality(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *StructuredFieldsCreate) SetBirthDate(v string) *StructuredFieldsCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableBirthDate(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetBirthDate(*v)
	}
	return _c
}

// SetSex sets the "sex" field.
func (_c *StructuredFieldsCreate) SetSex(v string) *StructuredFieldsCreate {
	_c.mutation.SetSex(v)
	return _c
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableSex(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetSex(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *StructuredFieldsCreate) SetExpiryDate(v string) *StructuredFieldsCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableExpiryDate(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetPersonalNumber sets the "personal_number" field.
func (_c *StructuredFieldsCreate) SetPersonalNumber(v string) *StructuredFieldsCreate {
	_c.mutation.SetPersonalNumber(v)
	return _c
}

// SetNillablePersonalNumber sets the "personal_number" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillablePersonalNumber(v *string) *StructuredFieldsCreate {
	if v != nil {
		_c.SetPersonalNumber(*v)
	}
	return _c
}

// SetChecksumValid sets the "checksum_valid" field.
func (_c *StructuredFieldsCreate) SetChecksumValid(v bool) *StructuredFieldsCreate {
	_c.mutation.SetChecksumValid(v)
	return _c
}

// SetNillableChecksumValid sets the "checksum_valid" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableChecksumValid(v *bool) *StructuredFieldsCreate {
	if v != nil {
		_c.SetChecksumValid(*v)
	}
	return _c
}

// SetRawLines sets the "raw_lines" field.
func (_c *StructuredFieldsCreate) SetRawLines(v []string) *StructuredFieldsCreate {
	_c.mutation.SetRawLines(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StructuredFieldsCreate) SetCreatedAt(v time.Time) *StructuredFieldsCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StructuredFieldsCreate) SetNillableCreatedAt(v *time.Time) *StructuredFieldsCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *StructuredFieldsCreate) SetDocument(v *Document) *StructuredFieldsCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the StructuredFieldsMutation object of the builder.
func (_c *StructuredFieldsCreate) Mutation() *StructuredFieldsMutation {
	return _c.mutation
}

// Save creates the StructuredFields in the database.
func (_c *StructuredFieldsCreate) Save(ctx context.Context) (*StructuredFields, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StructuredFieldsCreate) SaveX(ctx context.Context) *StructuredFields {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StructuredFieldsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StructuredFieldsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StructuredFieldsCreate) defaults() {
	if _, ok := _c.mutation.ChecksumValid(); !ok {
		v := structuredfields.DefaultChecksumValid
		_c.mutation.SetChecksumValid(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := structuredfields.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StructuredFieldsCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "StructuredFields.document_id"`)}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "StructuredFields.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := structuredfields.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "StructuredFields.format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChecksumValid(); !ok {
		return &ValidationError{Name: "checksum_valid", err: errors.New(`ent: missing required field "StructuredFields.checksum_valid"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StructuredFields.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "StructuredFields.document"`)}
	}
	return nil
}

func (_c *StructuredFieldsCreate) sqlSave(ctx context.Context) (*StructuredFields, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StructuredFieldsCreate) createSpec() (*StructuredFields, *sqlgraph.CreateSpec) {
	var (
		_node = &StructuredFields{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(structuredfields.Table, sqlgraph.NewFieldSpec(structuredfields.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(structuredfields.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.DocumentType(); ok {
		_spec.SetField(structuredfields.FieldDocumentType, field.TypeString, value)
		_node.DocumentType = value
	}
	if value, ok := _c.mutation.CountryCode(); ok {
		_spec.SetField(structuredfields.FieldCountryCode, field.TypeString, value)
		_node.CountryCode = value
	}
	if value, ok := _c.mutation.Surname(); ok {
		_spec.SetField(structuredfields.FieldSurname, field.TypeString, value)
		_node.Surname = value
	}
	if value, ok := _c.mutation.GivenNames(); ok {
		_spec.SetField(structuredfields.FieldGivenNames, field.TypeString, value)
		_node.GivenNames = value
	}
	if value, ok := _c.mutation.DocumentNumber(); ok {
		_spec.SetField(structuredfields.FieldDocumentNumber, field.TypeString, value)
		_node.DocumentNumber = value
	}
	if value, ok := _c.mutation.Nationality(); ok {
		_spec.SetField(structuredfields.FieldNationality, field.TypeString, value)
		_node.Nationality = value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(structuredfields.FieldBirthDate, field.TypeString, value)
		_node.BirthDate = value
	}
	if value, ok := _c.mutation.Sex(); ok {
		_spec.SetField(structuredfields.FieldSex, field.TypeString, value)
		_node.Sex = value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(structuredfields.FieldExpiryDate, field.TypeString, value)
		_node.ExpiryDate = value
	}
	if value, ok := _c.mutation.PersonalNumber(); ok {
		_spec.SetField(structuredfields.FieldPersonalNumber, field.TypeString, value)
		_node.PersonalNumber = value
	}
	if value, ok := _c.mutation.ChecksumValid(); ok {
		_spec.SetField(structuredfields.FieldChecksumValid, field.TypeBool, value)
		_node.ChecksumValid = value
	}
	if value, ok := _c.mutation.RawLines(); ok {
		_spec.SetField(structuredfields.FieldRawLines, field.TypeJSON, value)
		_node.RawLines = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(structuredfields.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// StructuredFieldsCreateBulk is the builder for creating many StructuredFields entities in bulk.
type StructuredFieldsCreateBulk struct {
	config
	err      error
	builders []*StructuredFieldsCreate
}

// Save creates the StructuredFields entities in the database.
func (_c *StructuredFieldsCreateBulk) Save(ctx context.Context) ([]*StructuredFields, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StructuredFields, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StructuredFieldsMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *StructuredFieldsCreateBulk) SaveX(ctx context.Context) []*StructuredFields {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StructuredFieldsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StructuredFieldsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
