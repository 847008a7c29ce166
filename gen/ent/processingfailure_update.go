// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
)

// ProcessingFailureUpdate is the builder for updating ProcessingFailure entities.
type ProcessingFailureUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingFailureMutation
}

// Where appends a list predicates to the ProcessingFailureUpdate builder.
func (_u *ProcessingFailureUpdate) Where(ps ...predicate.ProcessingFailure) *ProcessingFailureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingFailureUpdate) SetDocumentID(v int) *ProcessingFailureUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingFailureUpdate) SetNillableDocumentID(v *int) *ProcessingFailureUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProcessingFailureUpdate) SetCategory(v string) *ProcessingFailureUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProcessingFailureUpdate) SetNillableCategory(v *string) *ProcessingFailureUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ProcessingFailureUpdate) SetAttemptNumber(v int) *ProcessingFailureUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ProcessingFailureUpdate) SetNillableAttemptNumber(v *int) *ProcessingFailureUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ProcessingFailureUpdate) AddAttemptNumber(v int) *ProcessingFailureUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ProcessingFailureUpdate) SetMessage(v string) *ProcessingFailureUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ProcessingFailureUpdate) SetNillableMessage(v *string) *ProcessingFailureUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ProcessingFailureUpdate) SetOccurredAt(v time.Time) *ProcessingFailureUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ProcessingFailureUpdate) SetNillableOccurredAt(v *time.Time) *ProcessingFailureUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingFailureUpdate) SetDocument(v *Document) *ProcessingFailureUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingFailureMutation object of the builder.
func (_u *ProcessingFailureUpdate) Mutation() *ProcessingFailureMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingFailureUpdate) ClearDocument() *ProcessingFailureUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingFailureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingFailureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingFailureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingFailureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingFailureUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := processingfailure.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProcessingFailure.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := processingfailure.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ProcessingFailure.attempt_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingFailure.document"`)
	}
	return nil
}

func (_u *ProcessingFailureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingfailure.Table, processingfailure.Columns, sqlgraph.NewFieldSpec(processingfailure.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(processingfailure.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(processingfailure.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(processingfailure.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(processingfailure.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(processingfailure.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingFailureUpdateOne is the builder for updating a single ProcessingFailure entity.
type ProcessingFailureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingFailureMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingFailureUpdateOne) SetDocumentID(v int) *ProcessingFailureUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingFailureUpdateOne) SetNillableDocumentID(v *int) *ProcessingFailureUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ProcessingFailureUpdateOne) SetCategory(v string) *ProcessingFailureUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ProcessingFailureUpdateOne) SetNillableCategory(v *string) *ProcessingFailureUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ProcessingFailureUpdateOne) SetAttemptNumber(v int) *ProcessingFailureUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ProcessingFailureUpdateOne) SetNillableAttemptNumber(v *int) *ProcessingFailureUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ProcessingFailureUpdateOne) AddAttemptNumber(v int) *ProcessingFailureUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetMessage sets the "message" field.
func (_u *ProcessingFailureUpdateOne) SetMessage(v string) *ProcessingFailureUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ProcessingFailureUpdateOne) SetNillableMessage(v *string) *ProcessingFailureUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *ProcessingFailureUpdateOne) SetOccurredAt(v time.Time) *ProcessingFailureUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *ProcessingFailureUpdateOne) SetNillableOccurredAt(v *time.Time) *ProcessingFailureUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingFailureUpdateOne) SetDocument(v *Document) *ProcessingFailureUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingFailureMutation object of the builder.
func (_u *ProcessingFailureUpdateOne) Mutation() *ProcessingFailureMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingFailureUpdateOne) ClearDocument() *ProcessingFailureUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ProcessingFailureUpdate builder.
func (_u *ProcessingFailureUpdateOne) Where(ps ...predicate.ProcessingFailure) *ProcessingFailureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingFailureUpdateOne) Select(field string, fields ...string) *ProcessingFailureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingFailure entity.
func (_u *ProcessingFailureUpdateOne) Save(ctx context.Context) (*ProcessingFailure, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingFailureUpdateOne) SaveX(ctx context.Context) *ProcessingFailure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingFailureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingFailureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingFailureUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := processingfailure.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ProcessingFailure.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := processingfailure.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ProcessingFailure.attempt_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingFailure.document"`)
	}
	return nil
}

func (_u *ProcessingFailureUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingFailure, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processingfailure.Table, processingfailure.Columns, sqlgraph.NewFieldSpec(processingfailure.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingFailure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processingfailure.FieldID)
		for _, f := range fields {
			if !processingfailure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processingfailure.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(processingfailure.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(processingfailure.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(processingfailure.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(processingfailure.FieldMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(processingfailure.FieldOccurredAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingFailure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processingfailure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
