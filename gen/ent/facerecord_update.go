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
	"github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/gen/ent/predicate"
)

// FaceRecordUpdate is the builder for updating FaceRecord entities.
type FaceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FaceRecordMutation
}

// Where appends a list predicates to the FaceRecordUpdate builder.
func (_u *FaceRecordUpdate) Where(ps ...predicate.FaceRecord) *FaceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *FaceRecordUpdate) SetDocumentID(v int) *FaceRecordUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableDocumentID(v *int) *FaceRecordUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *FaceRecordUpdate) SetPageNumber(v int) *FaceRecordUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillablePageNumber(v *int) *FaceRecordUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *FaceRecordUpdate) AddPageNumber(v int) *FaceRecordUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetBoxX sets the "box_x" field.
func (_u *FaceRecordUpdate) SetBoxX(v int) *FaceRecordUpdate {
	_u.mutation.ResetBoxX()
	_u.mutation.SetBoxX(v)
	return _u
}

// SetNillableBoxX sets the "box_x" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableBoxX(v *int) *FaceRecordUpdate {
	if v != nil {
		_u.SetBoxX(*v)
	}
	return _u
}

// AddBoxX adds value to the "box_x" field.
func (_u *FaceRecordUpdate) AddBoxX(v int) *FaceRecordUpdate {
	_u.mutation.AddBoxX(v)
	return _u
}

// SetBoxY sets the "box_y" field.
func (_u *FaceRecordUpdate) SetBoxY(v int) *FaceRecordUpdate {
	_u.mutation.ResetBoxY()
	_u.mutation.SetBoxY(v)
	return _u
}

// SetNillableBoxY sets the "box_y" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableBoxY(v *int) *FaceRecordUpdate {
	if v != nil {
		_u.SetBoxY(*v)
	}
	return _u
}

// AddBoxY adds value to the "box_y" field.
func (_u *FaceRecordUpdate) AddBoxY(v int) *FaceRecordUpdate {
	_u.mutation.AddBoxY(v)
	return _u
}

// SetBoxW sets the "box_w" field.
func (_u *FaceRecordUpdate) SetBoxW(v int) *FaceRecordUpdate {
	_u.mutation.ResetBoxW()
	_u.mutation.SetBoxW(v)
	return _u
}

// SetNillableBoxW sets the "box_w" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableBoxW(v *int) *FaceRecordUpdate {
	if v != nil {
		_u.SetBoxW(*v)
	}
	return _u
}

// AddBoxW adds value to the "box_w" field.
func (_u *FaceRecordUpdate) AddBoxW(v int) *FaceRecordUpdate {
	_u.mutation.AddBoxW(v)
	return _u
}

// SetBoxH sets the "box_h" field.
func (_u *FaceRecordUpdate) SetBoxH(v int) *FaceRecordUpdate {
	_u.mutation.ResetBoxH()
	_u.mutation.SetBoxH(v)
	return _u
}

// SetNillableBoxH sets the "box_h" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableBoxH(v *int) *FaceRecordUpdate {
	if v != nil {
		_u.SetBoxH(*v)
	}
	return _u
}

// AddBoxH adds value to the "box_h" field.
func (_u *FaceRecordUpdate) AddBoxH(v int) *FaceRecordUpdate {
	_u.mutation.AddBoxH(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FaceRecordUpdate) SetConfidence(v float32) *FaceRecordUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableConfidence(v *float32) *FaceRecordUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FaceRecordUpdate) AddConfidence(v float32) *FaceRecordUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *FaceRecordUpdate) SetQuality(v float32) *FaceRecordUpdate {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableQuality(v *float32) *FaceRecordUpdate {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *FaceRecordUpdate) AddQuality(v float32) *FaceRecordUpdate {
	_u.mutation.AddQuality(v)
	return _u
}

// SetIndexID sets the "index_id" field.
func (_u *FaceRecordUpdate) SetIndexID(v string) *FaceRecordUpdate {
	_u.mutation.SetIndexID(v)
	return _u
}

// SetNillableIndexID sets the "index_id" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableIndexID(v *string) *FaceRecordUpdate {
	if v != nil {
		_u.SetIndexID(*v)
	}
	return _u
}

// ClearIndexID clears the value of the "index_id" field.
func (_u *FaceRecordUpdate) ClearIndexID() *FaceRecordUpdate {
	_u.mutation.ClearIndexID()
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *FaceRecordUpdate) SetDetectedAt(v time.Time) *FaceRecordUpdate {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *FaceRecordUpdate) SetNillableDetectedAt(v *time.Time) *FaceRecordUpdate {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FaceRecordUpdate) SetDocument(v *Document) *FaceRecordUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FaceRecordMutation object of the builder.
func (_u *FaceRecordUpdate) Mutation() *FaceRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FaceRecordUpdate) ClearDocument() *FaceRecordUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FaceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FaceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FaceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FaceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FaceRecordUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := facerecord.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxW(); ok {
		if err := facerecord.BoxWValidator(v); err != nil {
			return &ValidationError{Name: "box_w", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.box_w": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxH(); ok {
		if err := facerecord.BoxHValidator(v); err != nil {
			return &ValidationError{Name: "box_h", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.box_h": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FaceRecord.document"`)
	}
	return nil
}

func (_u *FaceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facerecord.Table, facerecord.Columns, sqlgraph.NewFieldSpec(facerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(facerecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(facerecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxX(); ok {
		_spec.SetField(facerecord.FieldBoxX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxX(); ok {
		_spec.AddField(facerecord.FieldBoxX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxY(); ok {
		_spec.SetField(facerecord.FieldBoxY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxY(); ok {
		_spec.AddField(facerecord.FieldBoxY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxW(); ok {
		_spec.SetField(facerecord.FieldBoxW, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxW(); ok {
		_spec.AddField(facerecord.FieldBoxW, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxH(); ok {
		_spec.SetField(facerecord.FieldBoxH, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxH(); ok {
		_spec.AddField(facerecord.FieldBoxH, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(facerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(facerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(facerecord.FieldQuality, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(facerecord.FieldQuality, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.IndexID(); ok {
		_spec.SetField(facerecord.FieldIndexID, field.TypeString, value)
	}
	if _u.mutation.IndexIDCleared() {
		_spec.ClearField(facerecord.FieldIndexID, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(facerecord.FieldDetectedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FaceRecordUpdateOne is the builder for updating a single FaceRecord entity.
type FaceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FaceRecordMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *FaceRecordUpdateOne) SetDocumentID(v int) *FaceRecordUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableDocumentID(v *int) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *FaceRecordUpdateOne) SetPageNumber(v int) *FaceRecordUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillablePageNumber(v *int) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *FaceRecordUpdateOne) AddPageNumber(v int) *FaceRecordUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetBoxX sets the "box_x" field.
func (_u *FaceRecordUpdateOne) SetBoxX(v int) *FaceRecordUpdateOne {
	_u.mutation.ResetBoxX()
	_u.mutation.SetBoxX(v)
	return _u
}

// SetNillableBoxX sets the "box_x" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableBoxX(v *int) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetBoxX(*v)
	}
	return _u
}

// AddBoxX adds value to the "box_x" field.
func (_u *FaceRecordUpdateOne) AddBoxX(v int) *FaceRecordUpdateOne {
	_u.mutation.AddBoxX(v)
	return _u
}

// SetBoxY sets the "box_y" field.
func (_u *FaceRecordUpdateOne) SetBoxY(v int) *FaceRecordUpdateOne {
	_u.mutation.ResetBoxY()
	_u.mutation.SetBoxY(v)
	return _u
}

// SetNillableBoxY sets the "box_y" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableBoxY(v *int) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetBoxY(*v)
	}
	return _u
}

// AddBoxY adds value to the "box_y" field.
func (_u *FaceRecordUpdateOne) AddBoxY(v int) *FaceRecordUpdateOne {
	_u.mutation.AddBoxY(v)
	return _u
}

// SetBoxW sets the "box_w" field.
func (_u *FaceRecordUpdateOne) SetBoxW(v int) *FaceRecordUpdateOne {
	_u.mutation.ResetBoxW()
	_u.mutation.SetBoxW(v)
	return _u
}

// SetNillableBoxW sets the "box_w" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableBoxW(v *int) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetBoxW(*v)
	}
	return _u
}

// AddBoxW adds value to the "box_w" field.
func (_u *FaceRecordUpdateOne) AddBoxW(v int) *FaceRecordUpdateOne {
	_u.mutation.AddBoxW(v)
	return _u
}

// SetBoxH sets the "box_h" field.
func (_u *FaceRecordUpdateOne) SetBoxH(v int) *FaceRecordUpdateOne {
	_u.mutation.ResetBoxH()
	_u.mutation.SetBoxH(v)
	return _u
}

// SetNillableBoxH sets the "box_h" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableBoxH(v *int) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetBoxH(*v)
	}
	return _u
}

// AddBoxH adds value to the "box_h" field.
func (_u *FaceRecordUpdateOne) AddBoxH(v int) *FaceRecordUpdateOne {
	_u.mutation.AddBoxH(v)
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *FaceRecordUpdateOne) SetConfidence(v float32) *FaceRecordUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableConfidence(v *float32) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *FaceRecordUpdateOne) AddConfidence(v float32) *FaceRecordUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQuality sets the "quality" field.
func (_u *FaceRecordUpdateOne) SetQuality(v float32) *FaceRecordUpdateOne {
	_u.mutation.ResetQuality()
	_u.mutation.SetQuality(v)
	return _u
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableQuality(v *float32) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetQuality(*v)
	}
	return _u
}

// AddQuality adds value to the "quality" field.
func (_u *FaceRecordUpdateOne) AddQuality(v float32) *FaceRecordUpdateOne {
	_u.mutation.AddQuality(v)
	return _u
}

// SetIndexID sets the "index_id" field.
func (_u *FaceRecordUpdateOne) SetIndexID(v string) *FaceRecordUpdateOne {
	_u.mutation.SetIndexID(v)
	return _u
}

// SetNillableIndexID sets the "index_id" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableIndexID(v *string) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetIndexID(*v)
	}
	return _u
}

// ClearIndexID clears the value of the "index_id" field.
func (_u *FaceRecordUpdateOne) ClearIndexID() *FaceRecordUpdateOne {
	_u.mutation.ClearIndexID()
	return _u
}

// SetDetectedAt sets the "detected_at" field.
func (_u *FaceRecordUpdateOne) SetDetectedAt(v time.Time) *FaceRecordUpdateOne {
	_u.mutation.SetDetectedAt(v)
	return _u
}

// SetNillableDetectedAt sets the "detected_at" field if the given value is not nil.
func (_u *FaceRecordUpdateOne) SetNillableDetectedAt(v *time.Time) *FaceRecordUpdateOne {
	if v != nil {
		_u.SetDetectedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *FaceRecordUpdateOne) SetDocument(v *Document) *FaceRecordUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the FaceRecordMutation object of the builder.
func (_u *FaceRecordUpdateOne) Mutation() *FaceRecordMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *FaceRecordUpdateOne) ClearDocument() *FaceRecordUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the FaceRecordUpdate builder.
func (_u *FaceRecordUpdateOne) Where(ps ...predicate.FaceRecord) *FaceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FaceRecordUpdateOne) Select(field string, fields ...string) *FaceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FaceRecord entity.
func (_u *FaceRecordUpdateOne) Save(ctx context.Context) (*FaceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FaceRecordUpdateOne) SaveX(ctx context.Context) *FaceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FaceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FaceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FaceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := facerecord.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxW(); ok {
		if err := facerecord.BoxWValidator(v); err != nil {
			return &ValidationError{Name: "box_w", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.box_w": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BoxH(); ok {
		if err := facerecord.BoxHValidator(v); err != nil {
			return &ValidationError{Name: "box_h", err: fmt.Errorf(`ent: validator failed for field "FaceRecord.box_h": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FaceRecord.document"`)
	}
	return nil
}

func (_u *FaceRecordUpdateOne) sqlSave(ctx context.Context) (_node *FaceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facerecord.Table, facerecord.Columns, sqlgraph.NewFieldSpec(facerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FaceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facerecord.FieldID)
		for _, f := range fields {
			if !facerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != facerecord.FieldID {
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
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(facerecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(facerecord.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxX(); ok {
		_spec.SetField(facerecord.FieldBoxX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxX(); ok {
		_spec.AddField(facerecord.FieldBoxX, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxY(); ok {
		_spec.SetField(facerecord.FieldBoxY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxY(); ok {
		_spec.AddField(facerecord.FieldBoxY, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxW(); ok {
		_spec.SetField(facerecord.FieldBoxW, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxW(); ok {
		_spec.AddField(facerecord.FieldBoxW, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BoxH(); ok {
		_spec.SetField(facerecord.FieldBoxH, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBoxH(); ok {
		_spec.AddField(facerecord.FieldBoxH, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(facerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(facerecord.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Quality(); ok {
		_spec.SetField(facerecord.FieldQuality, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedQuality(); ok {
		_spec.AddField(facerecord.FieldQuality, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.IndexID(); ok {
		_spec.SetField(facerecord.FieldIndexID, field.TypeString, value)
	}
	if _u.mutation.IndexIDCleared() {
		_spec.ClearField(facerecord.FieldIndexID, field.TypeString)
	}
	if value, ok := _u.mutation.DetectedAt(); ok {
		_spec.SetField(facerecord.FieldDetectedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FaceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
