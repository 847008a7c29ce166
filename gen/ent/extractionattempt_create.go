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
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/internal/entity"
)

// ExtractionAttemptCreate is the builder for creating a ExtractionAttempt entity.
type ExtractionAttemptCreate struct {
	config
	mutation *ExtractionAttemptMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractionAttemptCreate) SetDocumentID(v int) *ExtractionAttemptCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *ExtractionAttemptCreate) SetAttemptNumber(v int) *ExtractionAttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetSucceeded sets the "succeeded" field.
func (_c *ExtractionAttemptCreate) SetSucceeded(v bool) *ExtractionAttemptCreate {
	_c.mutation.SetSucceeded(v)
	return _c
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_c *ExtractionAttemptCreate) SetNillableSucceeded(v *bool) *ExtractionAttemptCreate {
	if v != nil {
		_c.SetSucceeded(*v)
	}
	return _c
}

// SetFullText sets the "full_text" field.
func (_c *ExtractionAttemptCreate) SetFullText(v string) *ExtractionAttemptCreate {
	_c.mutation.SetFullText(v)
	return _c
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_c *ExtractionAttemptCreate) SetNillableFullText(v *string) *ExtractionAttemptCreate {
	if v != nil {
		_c.SetFullText(*v)
	}
	return _c
}

// SetBlocks sets the "blocks" field.
func (_c *ExtractionAttemptCreate) SetBlocks(v []entity.TextBlock) *ExtractionAttemptCreate {
	_c.mutation.SetBlocks(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ExtractionAttemptCreate) SetLanguage(v string) *ExtractionAttemptCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ExtractionAttemptCreate) SetNillableLanguage(v *string) *ExtractionAttemptCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ExtractionAttemptCreate) SetConfidence(v float32) *ExtractionAttemptCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ExtractionAttemptCreate) SetNillableConfidence(v *float32) *ExtractionAttemptCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetEngine sets the "engine" field.
func (_c *ExtractionAttemptCreate) SetEngine(v string) *ExtractionAttemptCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *ExtractionAttemptCreate) SetElapsedMs(v int64) *ExtractionAttemptCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionAttemptCreate) SetCreatedAt(v time.Time) *ExtractionAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionAttemptCreate) SetNillableCreatedAt(v *time.Time) *ExtractionAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ExtractionAttemptCreate) SetDocument(v *Document) *ExtractionAttemptCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionAttemptMutation object of the builder.
func (_c *ExtractionAttemptCreate) Mutation() *ExtractionAttemptMutation {
	return _c.mutation
}

// Save creates the ExtractionAttempt in the database.
func (_c *ExtractionAttemptCreate) Save(ctx context.Context) (*ExtractionAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionAttemptCreate) SaveX(ctx context.Context) *ExtractionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionAttemptCreate) defaults() {
	if _, ok := _c.mutation.Succeeded(); !ok {
		v := extractionattempt.DefaultSucceeded
		_c.mutation.SetSucceeded(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := extractionattempt.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionAttemptCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractionAttempt.document_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "ExtractionAttempt.attempt_number"`)}
	}
	if v, ok := _c.mutation.AttemptNumber(); ok {
		if err := extractionattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.attempt_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Succeeded(); !ok {
		return &ValidationError{Name: "succeeded", err: errors.New(`ent: missing required field "ExtractionAttempt.succeeded"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "ExtractionAttempt.confidence"`)}
	}
	if _, ok := _c.mutation.Engine(); !ok {
		return &ValidationError{Name: "engine", err: errors.New(`ent: missing required field "ExtractionAttempt.engine"`)}
	}
	if v, ok := _c.mutation.Engine(); ok {
		if err := extractionattempt.EngineValidator(v); err != nil {
			return &ValidationError{Name: "engine", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.engine": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "ExtractionAttempt.elapsed_ms"`)}
	}
	if v, ok := _c.mutation.ElapsedMs(); ok {
		if err := extractionattempt.ElapsedMsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.elapsed_ms": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionAttempt.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ExtractionAttempt.document"`)}
	}
	return nil
}

func (_c *ExtractionAttemptCreate) sqlSave(ctx context.Context) (*ExtractionAttempt, error) {
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

func (_c *ExtractionAttemptCreate) createSpec() (*ExtractionAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionattempt.Table, sqlgraph.NewFieldSpec(extractionattempt.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(extractionattempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Succeeded(); ok {
		_spec.SetField(extractionattempt.FieldSucceeded, field.TypeBool, value)
		_node.Succeeded = value
	}
	if value, ok := _c.mutation.FullText(); ok {
		_spec.SetField(extractionattempt.FieldFullText, field.TypeString, value)
		_node.FullText = value
	}
	if value, ok := _c.mutation.Blocks(); ok {
		_spec.SetField(extractionattempt.FieldBlocks, field.TypeJSON, value)
		_node.Blocks = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(extractionattempt.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(extractionattempt.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(extractionattempt.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(extractionattempt.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionattempt.DocumentTable,
			Columns: []string{extractionattempt.DocumentColumn},
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

// ExtractionAttemptCreateBulk is the builder for creating many ExtractionAttempt entities in bulk.
type ExtractionAttemptCreateBulk struct {
	config
	err      error
	builders []*ExtractionAttemptCreate
}

// Save creates the ExtractionAttempt entities in the database.
func (_c *ExtractionAttemptCreateBulk) Save(ctx context.Context) ([]*ExtractionAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionAttemptMutation)
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
func (_c *ExtractionAttemptCreateBulk) SaveX(ctx context.Context) []*ExtractionAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
