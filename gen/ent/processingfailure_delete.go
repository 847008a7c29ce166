// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
)

// ProcessingFailureDelete is the builder for deleting a ProcessingFailure entity.
type ProcessingFailureDelete struct {
	config
	hooks    []Hook
	mutation *ProcessingFailureMutation
}

// Where appends a list predicates to the ProcessingFailureDelete builder.
func (_d *ProcessingFailureDelete) Where(ps ...predicate.ProcessingFailure) *ProcessingFailureDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProcessingFailureDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingFailureDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProcessingFailureDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(processingfailure.Table, sqlgraph.NewFieldSpec(processingfailure.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProcessingFailureDeleteOne is the builder for deleting a single ProcessingFailure entity.
type ProcessingFailureDeleteOne struct {
	_d *ProcessingFailureDelete
}

// Where appends a list predicates to the ProcessingFailureDelete builder.
func (_d *ProcessingFailureDeleteOne) Where(ps ...predicate.ProcessingFailure) *ProcessingFailureDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProcessingFailureDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{processingfailure.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProcessingFailureDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
