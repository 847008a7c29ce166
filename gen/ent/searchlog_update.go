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
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/gen/ent/searchlog"
)

// SearchLogUpdate is the builder for updating SearchLog entities.
type SearchLogUpdate struct {
	config
	hooks    []Hook
	mutation *SearchLogMutation
}

// Where appends a list predicates to the SearchLogUpdate builder.
func (_u *SearchLogUpdate) Where(ps ...predicate.SearchLog) *SearchLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSearchType sets the "search_type" field.
func (_u *SearchLogUpdate) SetSearchType(v string) *SearchLogUpdate {
	_u.mutation.SetSearchType(v)
	return _u
}

// SetNillableSearchType sets the "search_type" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableSearchType(v *string) *SearchLogUpdate {
	if v != nil {
		_u.SetSearchType(*v)
	}
	return _u
}

// SetQueryHash sets the "query_hash" field.
func (_u *SearchLogUpdate) SetQueryHash(v string) *SearchLogUpdate {
	_u.mutation.SetQueryHash(v)
	return _u
}

// SetNillableQueryHash sets the "query_hash" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableQueryHash(v *string) *SearchLogUpdate {
	if v != nil {
		_u.SetQueryHash(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *SearchLogUpdate) SetScope(v string) *SearchLogUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableScope(v *string) *SearchLogUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *SearchLogUpdate) ClearScope() *SearchLogUpdate {
	_u.mutation.ClearScope()
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *SearchLogUpdate) SetThreshold(v float32) *SearchLogUpdate {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableThreshold(v *float32) *SearchLogUpdate {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *SearchLogUpdate) AddThreshold(v float32) *SearchLogUpdate {
	_u.mutation.AddThreshold(v)
	return _u
}

// ClearThreshold clears the value of the "threshold" field.
func (_u *SearchLogUpdate) ClearThreshold() *SearchLogUpdate {
	_u.mutation.ClearThreshold()
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *SearchLogUpdate) SetResultCount(v int) *SearchLogUpdate {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableResultCount(v *int) *SearchLogUpdate {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *SearchLogUpdate) AddResultCount(v int) *SearchLogUpdate {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *SearchLogUpdate) SetElapsedMs(v int64) *SearchLogUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableElapsedMs(v *int64) *SearchLogUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *SearchLogUpdate) AddElapsedMs(v int64) *SearchLogUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *SearchLogUpdate) SetExecutedAt(v time.Time) *SearchLogUpdate {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *SearchLogUpdate) SetNillableExecutedAt(v *time.Time) *SearchLogUpdate {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// Mutation returns the SearchLogMutation object of the builder.
func (_u *SearchLogUpdate) Mutation() *SearchLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SearchLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SearchLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchLogUpdate) check() error {
	if v, ok := _u.mutation.SearchType(); ok {
		if err := searchlog.SearchTypeValidator(v); err != nil {
			return &ValidationError{Name: "search_type", err: fmt.Errorf(`ent: validator failed for field "SearchLog.search_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QueryHash(); ok {
		if err := searchlog.QueryHashValidator(v); err != nil {
			return &ValidationError{Name: "query_hash", err: fmt.Errorf(`ent: validator failed for field "SearchLog.query_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultCount(); ok {
		if err := searchlog.ResultCountValidator(v); err != nil {
			return &ValidationError{Name: "result_count", err: fmt.Errorf(`ent: validator failed for field "SearchLog.result_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ElapsedMs(); ok {
		if err := searchlog.ElapsedMsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_ms", err: fmt.Errorf(`ent: validator failed for field "SearchLog.elapsed_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *SearchLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchlog.Table, searchlog.Columns, sqlgraph.NewFieldSpec(searchlog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SearchType(); ok {
		_spec.SetField(searchlog.FieldSearchType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryHash(); ok {
		_spec.SetField(searchlog.FieldQueryHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(searchlog.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(searchlog.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(searchlog.FieldThreshold, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(searchlog.FieldThreshold, field.TypeFloat32, value)
	}
	if _u.mutation.ThresholdCleared() {
		_spec.ClearField(searchlog.FieldThreshold, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(searchlog.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(searchlog.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(searchlog.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(searchlog.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(searchlog.FieldExecutedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SearchLogUpdateOne is the builder for updating a single SearchLog entity.
type SearchLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SearchLogMutation
}

// SetSearchType sets the "search_type" field.
func (_u *SearchLogUpdateOne) SetSearchType(v string) *SearchLogUpdateOne {
	_u.mutation.SetSearchType(v)
	return _u
}

// SetNillableSearchType sets the "search_type" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableSearchType(v *string) *SearchLogUpdateOne {
	if v != nil {
		_u.SetSearchType(*v)
	}
	return _u
}

// SetQueryHash sets the "query_hash" field.
func (_u *SearchLogUpdateOne) SetQueryHash(v string) *SearchLogUpdateOne {
	_u.mutation.SetQueryHash(v)
	return _u
}

// SetNillableQueryHash sets the "query_hash" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableQueryHash(v *string) *SearchLogUpdateOne {
	if v != nil {
		_u.SetQueryHash(*v)
	}
	return _u
}

// SetScope sets the "scope" field.
func (_u *SearchLogUpdateOne) SetScope(v string) *SearchLogUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableScope(v *string) *SearchLogUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// ClearScope clears the value of the "scope" field.
func (_u *SearchLogUpdateOne) ClearScope() *SearchLogUpdateOne {
	_u.mutation.ClearScope()
	return _u
}

// SetThreshold sets the "threshold" field.
func (_u *SearchLogUpdateOne) SetThreshold(v float32) *SearchLogUpdateOne {
	_u.mutation.ResetThreshold()
	_u.mutation.SetThreshold(v)
	return _u
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableThreshold(v *float32) *SearchLogUpdateOne {
	if v != nil {
		_u.SetThreshold(*v)
	}
	return _u
}

// AddThreshold adds value to the "threshold" field.
func (_u *SearchLogUpdateOne) AddThreshold(v float32) *SearchLogUpdateOne {
	_u.mutation.AddThreshold(v)
	return _u
}

// ClearThreshold clears the value of the "threshold" field.
func (_u *SearchLogUpdateOne) ClearThreshold() *SearchLogUpdateOne {
	_u.mutation.ClearThreshold()
	return _u
}

// SetResultCount sets the "result_count" field.
func (_u *SearchLogUpdateOne) SetResultCount(v int) *SearchLogUpdateOne {
	_u.mutation.ResetResultCount()
	_u.mutation.SetResultCount(v)
	return _u
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableResultCount(v *int) *SearchLogUpdateOne {
	if v != nil {
		_u.SetResultCount(*v)
	}
	return _u
}

// AddResultCount adds value to the "result_count" field.
func (_u *SearchLogUpdateOne) AddResultCount(v int) *SearchLogUpdateOne {
	_u.mutation.AddResultCount(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *SearchLogUpdateOne) SetElapsedMs(v int64) *SearchLogUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableElapsedMs(v *int64) *SearchLogUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *SearchLogUpdateOne) AddElapsedMs(v int64) *SearchLogUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetExecutedAt sets the "executed_at" field.
func (_u *SearchLogUpdateOne) SetExecutedAt(v time.Time) *SearchLogUpdateOne {
	_u.mutation.SetExecutedAt(v)
	return _u
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_u *SearchLogUpdateOne) SetNillableExecutedAt(v *time.Time) *SearchLogUpdateOne {
	if v != nil {
		_u.SetExecutedAt(*v)
	}
	return _u
}

// Mutation returns the SearchLogMutation object of the builder.
func (_u *SearchLogUpdateOne) Mutation() *SearchLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the SearchLogUpdate builder.
func (_u *SearchLogUpdateOne) Where(ps ...predicate.SearchLog) *SearchLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SearchLogUpdateOne) Select(field string, fields ...string) *SearchLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SearchLog entity.
func (_u *SearchLogUpdateOne) Save(ctx context.Context) (*SearchLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SearchLogUpdateOne) SaveX(ctx context.Context) *SearchLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SearchLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SearchLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SearchLogUpdateOne) check() error {
	if v, ok := _u.mutation.SearchType(); ok {
		if err := searchlog.SearchTypeValidator(v); err != nil {
			return &ValidationError{Name: "search_type", err: fmt.Errorf(`ent: validator failed for field "SearchLog.search_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QueryHash(); ok {
		if err := searchlog.QueryHashValidator(v); err != nil {
			return &ValidationError{Name: "query_hash", err: fmt.Errorf(`ent: validator failed for field "SearchLog.query_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultCount(); ok {
		if err := searchlog.ResultCountValidator(v); err != nil {
			return &ValidationError{Name: "result_count", err: fmt.Errorf(`ent: validator failed for field "SearchLog.result_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ElapsedMs(); ok {
		if err := searchlog.ElapsedMsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_ms", err: fmt.Errorf(`ent: validator failed for field "SearchLog.elapsed_ms": %w`, err)}
		}
	}
	return nil
}

func (_u *SearchLogUpdateOne) sqlSave(ctx context.Context) (_node *SearchLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(searchlog.Table, searchlog.Columns, sqlgraph.NewFieldSpec(searchlog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SearchLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, searchlog.FieldID)
		for _, f := range fields {
			if !searchlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != searchlog.FieldID {
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
	if value, ok := _u.mutation.SearchType(); ok {
		_spec.SetField(searchlog.FieldSearchType, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryHash(); ok {
		_spec.SetField(searchlog.FieldQueryHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(searchlog.FieldScope, field.TypeString, value)
	}
	if _u.mutation.ScopeCleared() {
		_spec.ClearField(searchlog.FieldScope, field.TypeString)
	}
	if value, ok := _u.mutation.Threshold(); ok {
		_spec.SetField(searchlog.FieldThreshold, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedThreshold(); ok {
		_spec.AddField(searchlog.FieldThreshold, field.TypeFloat32, value)
	}
	if _u.mutation.ThresholdCleared() {
		_spec.ClearField(searchlog.FieldThreshold, field.TypeFloat32)
	}
	if value, ok := _u.mutation.ResultCount(); ok {
		_spec.SetField(searchlog.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResultCount(); ok {
		_spec.AddField(searchlog.FieldResultCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(searchlog.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(searchlog.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ExecutedAt(); ok {
		_spec.SetField(searchlog.FieldExecutedAt, field.TypeTime, value)
	}
	_node = &SearchLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{searchlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
