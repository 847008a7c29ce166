// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/scanworks/scanvault/gen/ent/searchlog"
)

// SearchLogCreate is the builder for creating a SearchLog entity.
type SearchLogCreate struct {
	config
	mutation *SearchLogMutation
	hooks    []Hook
}

// SetSearchType sets the "search_type" field.
func (_c *SearchLogCreate) SetSearchType(v string) *SearchLogCreate {
	_c.mutation.SetSearchType(v)
	return _c
}

// SetQueryHash sets the "query_hash" field.
func (_c *SearchLogCreate) SetQueryHash(v string) *SearchLogCreate {
	_c.mutation.SetQueryHash(v)
	return _c
}

// SetScope sets the "scope" field.
func (_c *SearchLogCreate) SetScope(v string) *SearchLogCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_c *SearchLogCreate) SetNillableScope(v *string) *SearchLogCreate {
	if v != nil {
		_c.SetScope(*v)
	}
	return _c
}

// SetThreshold sets the "threshold" field.
func (_c *SearchLogCreate) SetThreshold(v float32) *SearchLogCreate {
	_c.mutation.SetThreshold(v)
	return _c
}

// SetNillableThreshold sets the "threshold" field if the given value is not nil.
func (_c *SearchLogCreate) SetNillableThreshold(v *float32) *SearchLogCreate {
	if v != nil {
		_c.SetThreshold(*v)
	}
	return _c
}

// SetResultCount sets the "result_count" field.
func (_c *SearchLogCreate) SetResultCount(v int) *SearchLogCreate {
	_c.mutation.SetResultCount(v)
	return _c
}

// SetNillableResultCount sets the "result_count" field if the given value is not nil.
func (_c *SearchLogCreate) SetNillableResultCount(v *int) *SearchLogCreate {
	if v != nil {
		_c.SetResultCount(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *SearchLogCreate) SetElapsedMs(v int64) *SearchLogCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetExecutedAt sets the "executed_at" field.
func (_c *SearchLogCreate) SetExecutedAt(v time.Time) *SearchLogCreate {
	_c.mutation.SetExecutedAt(v)
	return _c
}

// SetNillableExecutedAt sets the "executed_at" field if the given value is not nil.
func (_c *SearchLogCreate) SetNillableExecutedAt(v *time.Time) *SearchLogCreate {
	if v != nil {
		_c.SetExecutedAt(*v)
	}
	return _c
}

// Mutation returns the SearchLogMutation object of the builder.
func (_c *SearchLogCreate) Mutation() *SearchLogMutation {
	return _c.mutation
}

// Save creates the SearchLog in the database.
func (_c *SearchLogCreate) Save(ctx context.Context) (*SearchLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SearchLogCreate) SaveX(ctx context.Context) *SearchLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SearchLogCreate) defaults() {
	if _, ok := _c.mutation.ResultCount(); !ok {
		v := searchlog.DefaultResultCount
		_c.mutation.SetResultCount(v)
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		v := searchlog.DefaultExecutedAt()
		_c.mutation.SetExecutedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SearchLogCreate) check() error {
	if _, ok := _c.mutation.SearchType(); !ok {
		return &ValidationError{Name: "search_type", err: errors.New(`ent: missing required field "SearchLog.search_type"`)}
	}
	if v, ok := _c.mutation.SearchType(); ok {
		if err := searchlog.SearchTypeValidator(v); err != nil {
			return &ValidationError{Name: "search_type", err: fmt.Errorf(`ent: validator failed for field "SearchLog.search_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueryHash(); !ok {
		return &ValidationError{Name: "query_hash", err: errors.New(`ent: missing required field "SearchLog.query_hash"`)}
	}
	if v, ok := _c.mutation.QueryHash(); ok {
		if err := searchlog.QueryHashValidator(v); err != nil {
			return &ValidationError{Name: "query_hash", err: fmt.Errorf(`ent: validator failed for field "SearchLog.query_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultCount(); !ok {
		return &ValidationError{Name: "result_count", err: errors.New(`ent: missing required field "SearchLog.result_count"`)}
	}
	if v, ok := _c.mutation.ResultCount(); ok {
		if err := searchlog.ResultCountValidator(v); err != nil {
			return &ValidationError{Name: "result_count", err: fmt.Errorf(`ent: validator failed for field "SearchLog.result_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "SearchLog.elapsed_ms"`)}
	}
	if v, ok := _c.mutation.ElapsedMs(); ok {
		if err := searchlog.ElapsedMsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_ms", err: fmt.Errorf(`ent: validator failed for field "SearchLog.elapsed_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutedAt(); !ok {
		return &ValidationError{Name: "executed_at", err: errors.New(`ent: missing required field "SearchLog.executed_at"`)}
	}
	return nil
}

func (_c *SearchLogCreate) sqlSave(ctx context.Context) (*SearchLog, error) {
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

func (_c *SearchLogCreate) createSpec() (*SearchLog, *sqlgraph.CreateSpec) {
	var (
		_node = &SearchLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(searchlog.Table, sqlgraph.NewFieldSpec(searchlog.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SearchType(); ok {
		_spec.SetField(searchlog.FieldSearchType, field.TypeString, value)
		_node.SearchType = value
	}
	if value, ok := _c.mutation.QueryHash(); ok {
		_spec.SetField(searchlog.FieldQueryHash, field.TypeString, value)
		_node.QueryHash = value
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(searchlog.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.Threshold(); ok {
		_spec.SetField(searchlog.FieldThreshold, field.TypeFloat32, value)
		_node.Threshold = value
	}
	if value, ok := _c.mutation.ResultCount(); ok {
		_spec.SetField(searchlog.FieldResultCount, field.TypeInt, value)
		_node.ResultCount = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(searchlog.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.ExecutedAt(); ok {
		_spec.SetField(searchlog.FieldExecutedAt, field.TypeTime, value)
		_node.ExecutedAt = value
	}
	return _node, _spec
}

// SearchLogCreateBulk is the builder for creating many SearchLog entities in bulk.
type SearchLogCreateBulk struct {
	config
	err      error
	builders []*SearchLogCreate
}

// Save creates the SearchLog entities in the database.
func (_c *SearchLogCreateBulk) Save(ctx context.Context) ([]*SearchLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SearchLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SearchLogMutation)
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
func (_c *SearchLogCreateBulk) SaveX(ctx context.Context) []*SearchLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SearchLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SearchLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
