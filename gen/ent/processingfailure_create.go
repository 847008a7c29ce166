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
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
)

// ProcessingFailureCreate is the builder for creating a ProcessingFailure entity.
type ProcessingFailureCreate struct {
	config
	mutation *ProcessingFailureMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ProcessingFailureCreate) SetDocumentID(v int) *ProcessingFailureCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ProcessingFailureCreate) SetCategory(v string) *ProcessingFailureCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ProcessingFailureCreate) SetAttemptNumber(v int) *ProcessingFailureCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *ProcessingFailureCreate) SetNillableAttemptNumber(v *int) *ProcessingFailureCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *ProcessingFailureCreate) SetMessage(v string) *ProcessingFailureCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *ProcessingFailureCreate) SetOccurredAt(v time.Time) *ProcessingFailureCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *ProcessingFailureCreate) SetNillableOccurredAt(v *time.Time) *ProcessingFailureCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ProcessingFailureCreate) SetDocument(v *Document) *ProcessingFailureCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingFailureMutation object of the builder.
func (_c *ProcessingFailureCreate) Mutation() *ProcessingFailureMutation {
	return _c.mutation
}

// Save creates the ProcessingFailure in the database.
func (_c *ProcessingFailureCreate) Save(ctx context.Context) (*ProcessingFailure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingFailureCreate) SaveX(ctx context.Context) *ProcessingFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingFailureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingFailureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingFailureCreate) defaults() {
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := processingfailure.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := processingfailure.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingFailureCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ProcessingFailure.document_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ProcessingFailure.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := processingfailure.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProcessingFailure.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ProcessingFailure.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := processingfailure.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ProcessingFailure.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "ProcessingFailure.message"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "ProcessingFailure.occurred_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ProcessingFailure.document"`)}
	}
	return nil
}

func (_c *ProcessingFailureCreate) sqlSave(ctx context.Context) (*ProcessingFailure, error) {
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

func (_c *ProcessingFailureCreate) createSpec() (*ProcessingFailure, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingFailure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processingfailure.Table, sqlgraph.NewFieldSpec(processingfailure.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(processingfailure.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(processingfailure.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(processingfailure.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(processingfailure.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processingfailure.DocumentTable,
			Columns: []string{processingfailure.DocumentColumn},
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

// ProcessingFailureCreateBulk is the builder for creating many ProcessingFailure entities in bulk.
type ProcessingFailureCreateBulk struct {
	config
	err      error
	builders []*ProcessingFailureCreate
}

// Save creates the ProcessingFailure entities in the database.
func (_c *ProcessingFailureCreateBulk) Save(ctx context.Context) ([]*ProcessingFailure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingFailure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingFailureMutation)
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
func (_c *ProcessingFailureCreateBulk) SaveX(ctx context.Context) []*ProcessingFailure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingFailureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingFailureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
