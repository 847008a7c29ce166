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
	"github.com/scanworks/scanvault/gen/ent/facerecord"
)

// FaceRecordCreate is the builder for creating a FaceRecord entity.
type FaceRecordCreate struct {
	config
	mutation *FaceRecordMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *FaceRecordCreate) SetDocumentID(v int) *FaceRecordCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *FaceRecordCreate) SetPageNumber(v int) *FaceRecordCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_c *FaceRecordCreate) SetNillablePageNumber(v *int) *FaceRecordCreate {
	if v != nil {
		_c.SetPageNumber(*v)
	}
	return _c
}

// SetBoxX sets the "box_x" field.
func (_c *FaceRecordCreate) SetBoxX(v int) *FaceRecordCreate {
	_c.mutation.SetBoxX(v)
	return _c
}

// SetBoxY sets the "box_y" field.
func (_c *FaceRecordCreate) SetBoxY(v int) *FaceRecordCreate {
	_c.mutation.SetBoxY(v)
	return _c
}

// SetBoxW sets the "box_w" field.
func (_c *FaceRecordCreate) SetBoxW(v int) *FaceRecordCreate {
	_c.mutation.SetBoxW(v)
	return _c
}

// SetBoxH sets the "box_h" field.
func (_c *FaceRecordCreate) SetBoxH(v int) *FaceRecordCreate {
	_c.mutation.SetBoxH(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *FaceRecordCreate) SetConfidence(v float32) *FaceRecordCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetQuality sets the "quality" field.
func (_c *FaceRecordCreate) SetQuality(v float32) *FaceRecordCreate {
	_c.mutation.SetQuality(v)
	return _c
}

// SetIndexID sets the "index_id" field.
func (_c *FaceRecordCreate) SetIndexID(v string) *FaceRecordCreate {
	_c.mutation.SetIndexID(v)
	return _c
}

// SetNillableIndexID sets the "index_id" field if the given value is not nil.
func (_c *FaceRecordCreate) SetNillableIndexID(v *string) *FaceRecordCreate {
	if v != nil {
		_c.SetIndexID(*v)
	}
	return _c
}

// SetDetectedAt sets the "detected_at" field.
func (_c *FaceRecordCreate) SetDetectedAt(v time.Time) *FaceRecordCreate {
	_c.mutation.SetDetectedAt(v)
	return _c
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_c *FaceRecordCreate) SetNillableDetectedAt(v *time.Time) *FaceRecordCreate {
	if v != nil {
		_c.SetDetectedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *FaceRecordCreate) SetDocument(v *Document) *FaceRecordCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the FaceRecordMutation object of the builder.
func (_c *FaceRecordCreate) Mutation() *FaceRecordMutation {
	return _c.mutation
}

// Save creates the FaceRecord in the database.
func (_c *FaceRecordCreate) Save(ctx context.Context) (*FaceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FaceRecordCreate) SaveX(ctx context.Context) *FaceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FaceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FaceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FaceRecordCreate) defaults() {
	if _, ok := _c.mutation.PageNumber(); !ok {
		v := facerecord.DefaultPageNumber
		_c.mutation.SetPageNumber(v)
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		v := facerecord.DefaultDetectedAt()
		_c.mutation.SetDetectedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FaceRecordCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "FaceRecord.document_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "FaceRecord.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := facerecord.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoxX(); !ok {
		return &ValidationError{Name: "box_x", err: errors.New(`ent: missing required field "FaceRecord.box_x"`)}
	}
	if _, ok := _c.mutation.BoxY(); !ok {
		return &ValidationError{Name: "box_y", err: errors.New(`ent: missing required field "FaceRecord.box_y"`)}
	}
	if _, ok := _c.mutation.BoxW(); !ok {
		return &ValidationError{Name: "box_w", err: errors.New(`ent: missing required field "FaceRecord.box_w"`)}
	}
	if v, ok := _c.mutation.BoxW(); ok {
		if err := facerecord.BoxWValidator(v); err != nil {
			return &ValidationError{Name: "box_w", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.box_w": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BoxH(); !ok {
		return &ValidationError{Name: "box_h", err: errors.New(`ent: missing required field "FaceRecord.box_h"`)}
	}
	if v, ok := _c.mutation.BoxH(); ok {
		if err := facerecord.BoxHValidator(v); err != nil {
			return &ValidationError{Name: "box_h", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.box_h": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "FaceRecord.confidence"`)}
	}
	if _, ok := _c.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "FaceRecord.quality"`)}
	}
	if _, ok := _c.mutation.DetectedAt(); !ok {
		return &ValidationError{Name: "detected_at", err: errors.New(`ent: missing required field "FaceRecord.detected_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "FaceRecord.document"`)}
	}
	return nil
}

func (_c *FaceRecordCreate) sqlSave(ctx context.Context) (*FaceRecord, error) {
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

func (_c *FaceRecordCreate) createSpec() (*FaceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FaceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facerecord.Table, sqlgraph.NewFieldSpec(facerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(facerecord.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.BoxX(); ok {
		_spec.SetField(facerecord.FieldBoxX, field.TypeInt, value)
		_node.BoxX = value
	}
	if value, ok := _c.mutation.BoxY(); ok {
		_spec.SetField(facerecord.FieldBoxY, field.TypeInt, value)
		_node.BoxY = value
	}
	if value, ok := _c.mutation.BoxW(); ok {
		_spec.SetField(facerecord.FieldBoxW, field.TypeInt, value)
		_node.BoxW = value
	}
	if value, ok := _c.mutation.BoxH(); ok {
		_spec.SetField(facerecord.FieldBoxH, field.TypeInt, value)
		_node.BoxH = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(facerecord.FieldConfidence, field.TypeFloat32, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Quality(); ok {
		_spec.SetField(facerecord.FieldQuality, field.TypeFloat32, value)
		_node.Quality = value
	}
	if value, ok := _c.mutation.IndexID(); ok {
		_spec.SetField(facerecord.FieldIndexID, field.TypeString, value)
		_node.IndexID = value
	}
	if value, ok := _c.mutation.DetectedAt(); ok {
		_spec.SetField(facerecord.FieldDetectedAt, field.TypeTime, value)
		_node.DetectedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   facerecord.DocumentTable,
			Columns: []string{facerecord.DocumentColumn},
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

// FaceRecordCreateBulk is the builder for creating many FaceRecord entities in bulk.
type FaceRecordCreateBulk struct {
	config
	err      error
	builders []*FaceRecordCreate
}

// Save creates the FaceRecord entities in the database.
func (_c *FaceRecordCreateBulk) Save(ctx context.Context) ([]*FaceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FaceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FaceRecordMutation)
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
func (_c *FaceRecordCreateBulk) SaveX(ctx context.Context) []*FaceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FaceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FaceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
