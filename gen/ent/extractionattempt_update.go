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
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/internal/entity"
)

// ExtractionAttemptUpdate is the builder for updating ExtractionAttempt entities.
type ExtractionAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionAttemptMutation
}

// Where appends a list predicates to the ExtractionAttemptUpdate builder.
func (_u *ExtractionAttemptUpdate) Where(ps ...predicate.ExtractionAttempt) *ExtractionAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionAttemptUpdate) SetDocumentID(v int) *ExtractionAttemptUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableDocumentID(v *int) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ExtractionAttemptUpdate) SetAttemptNumber(v int) *ExtractionAttemptUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableAttemptNumber(v *int) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ExtractionAttemptUpdate) AddAttemptNumber(v int) *ExtractionAttemptUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *ExtractionAttemptUpdate) SetSucceeded(v bool) *ExtractionAttemptUpdate {
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableSucceeded(v *bool) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *ExtractionAttemptUpdate) SetFullText(v string) *ExtractionAttemptUpdate {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableFullText(v *string) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// ClearFullText clears the value of the "full_text" field.
func (_u *ExtractionAttemptUpdate) ClearFullText() *ExtractionAttemptUpdate {
	_u.mutation.ClearFullText()
	return _u
}

// SetBlocks sets the "blocks" field.
func (_u *ExtractionAttemptUpdate) SetBlocks(v []entity.TextBlock) *ExtractionAttemptUpdate {
	_u.mutation.SetBlocks(v)
	return _u
}

// AppendBlocks appends value to the "blocks" field.
func (_u *ExtractionAttemptUpdate) AppendBlocks(v []entity.TextBlock) *ExtractionAttemptUpdate {
	_u.mutation.AppendBlocks(v)
	return _u
}

// ClearBlocks clears the value of the "blocks" field.
func (_u *ExtractionAttemptUpdate) ClearBlocks() *ExtractionAttemptUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ExtractionAttemptUpdate) SetLanguage(v string) *ExtractionAttemptUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableLanguage(v *string) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *ExtractionAttemptUpdate) ClearLanguage() *ExtractionAttemptUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionAttemptUpdate) SetConfidence(v float32) *ExtractionAttemptUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableConfidence(v *float32) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionAttemptUpdate) AddConfidence(v float32) *ExtractionAttemptUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEngine sets the "engine" field.
func (_u *ExtractionAttemptUpdate) SetEngine(v string) *ExtractionAttemptUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableEngine(v *string) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ExtractionAttemptUpdate) SetElapsedMs(v int64) *ExtractionAttemptUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableElapsedMs(v *int64) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ExtractionAttemptUpdate) AddElapsedMs(v int64) *ExtractionAttemptUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionAttemptUpdate) SetCreatedAt(v time.Time) *ExtractionAttemptUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionAttemptUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionAttemptUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionAttemptUpdate) SetDocument(v *Document) *ExtractionAttemptUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionAttemptMutation object of the builder.
func (_u *ExtractionAttemptUpdate) Mutation() *ExtractionAttemptMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionAttemptUpdate) ClearDocument() *ExtractionAttemptUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionAttemptUpdate) check() error {
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := extractionattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.attempt_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Engine(); ok {
		if err := extractionattempt.EngineValidator(v); err != nil {
			return &ValidationError{Name: "engine", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.engine": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ElapsedMs(); ok {
		if err := extractionattempt.ElapsedMsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.elapsed_ms": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionAttempt.document"`)
	}
	return nil
}

func (_u *ExtractionAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionattempt.Table, extractionattempt.Columns, sqlgraph.NewFieldSpec(extractionattempt.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(extractionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(extractionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(extractionattempt.FieldSucceeded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(extractionattempt.FieldFullText, field.TypeString, value)
	}
	if _u.mutation.FullTextCleared() {
		_spec.ClearField(extractionattempt.FieldFullText, field.TypeString)
	}
	if value, ok := _u.mutation.Blocks(); ok {
		_spec.SetField(extractionattempt.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionattempt.FieldBlocks, value)
		})
	}
	if _u.mutation.BlocksCleared() {
		_spec.ClearField(extractionattempt.FieldBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(extractionattempt.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(extractionattempt.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionattempt.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionattempt.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(extractionattempt.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(extractionattempt.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(extractionattempt.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionattempt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionAttemptUpdateOne is the builder for updating a single ExtractionAttempt entity.
type ExtractionAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionAttemptMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractionAttemptUpdateOne) SetDocumentID(v int) *ExtractionAttemptUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableDocumentID(v *int) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *ExtractionAttemptUpdateOne) SetAttemptNumber(v int) *ExtractionAttemptUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableAttemptNumber(v *int) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *ExtractionAttemptUpdateOne) AddAttemptNumber(v int) *ExtractionAttemptUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetSucceeded sets the "succeeded" field.
func (_u *ExtractionAttemptUpdateOne) SetSucceeded(v bool) *ExtractionAttemptUpdateOne {
	_u.mutation.SetSucceeded(v)
	return _u
}

// SetNillableSucceeded sets the "succeeded" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableSucceeded(v *bool) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetSucceeded(*v)
	}
	return _u
}

// SetFullText sets the "full_text" field.
func (_u *ExtractionAttemptUpdateOne) SetFullText(v string) *ExtractionAttemptUpdateOne {
	_u.mutation.SetFullText(v)
	return _u
}

// SetNillableFullText sets the "full_text" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableFullText(v *string) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetFullText(*v)
	}
	return _u
}

// ClearFullText clears the value of the "full_text" field.
func (_u *ExtractionAttemptUpdateOne) ClearFullText() *ExtractionAttemptUpdateOne {
	_u.mutation.ClearFullText()
	return _u
}

// SetBlocks sets the "blocks" field.
func (_u *ExtractionAttemptUpdateOne) SetBlocks(v []entity.TextBlock) *ExtractionAttemptUpdateOne {
	_u.mutation.SetBlocks(v)
	return _u
}

// AppendBlocks appends value to the "blocks" field.
func (_u *ExtractionAttemptUpdateOne) AppendBlocks(v []entity.TextBlock) *ExtractionAttemptUpdateOne {
	_u.mutation.AppendBlocks(v)
	return _u
}

// ClearBlocks clears the value of the "blocks" field.
func (_u *ExtractionAttemptUpdateOne) ClearBlocks() *ExtractionAttemptUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ExtractionAttemptUpdateOne) SetLanguage(v string) *ExtractionAttemptUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableLanguage(v *string) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *ExtractionAttemptUpdateOne) ClearLanguage() *ExtractionAttemptUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ExtractionAttemptUpdateOne) SetConfidence(v float32) *ExtractionAttemptUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableConfidence(v *float32) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ExtractionAttemptUpdateOne) AddConfidence(v float32) *ExtractionAttemptUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetEngine sets the "engine" field.
func (_u *ExtractionAttemptUpdateOne) SetEngine(v string) *ExtractionAttemptUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableEngine(v *string) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *ExtractionAttemptUpdateOne) SetElapsedMs(v int64) *ExtractionAttemptUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableElapsedMs(v *int64) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *ExtractionAttemptUpdateOne) AddElapsedMs(v int64) *ExtractionAttemptUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionAttemptUpdateOne) SetCreatedAt(v time.Time) *ExtractionAttemptUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionAttemptUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionAttemptUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ExtractionAttemptUpdateOne) SetDocument(v *Document) *ExtractionAttemptUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ExtractionAttemptMutation object of the builder.
func (_u *ExtractionAttemptUpdateOne) Mutation() *ExtractionAttemptMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ExtractionAttemptUpdateOne) ClearDocument() *ExtractionAttemptUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ExtractionAttemptUpdate builder.
func (_u *ExtractionAttemptUpdateOne) Where(ps ...predicate.ExtractionAttempt) *ExtractionAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionAttemptUpdateOne) Select(field string, fields ...string) *ExtractionAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionAttempt entity.
func (_u *ExtractionAttemptUpdateOne) Save(ctx context.Context) (*ExtractionAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionAttemptUpdateOne) SaveX(ctx context.Context) *ExtractionAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.AttemptNumber(); ok {
		if err := extractionattempt.AttemptNumberValidator(v); err != nil {
			return &ValidationError{Name: "attempt_number", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.attempt_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Engine(); ok {
		if err := extractionattempt.EngineValidator(v); err != nil {
			return &ValidationError{Name: "engine", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.engine": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ElapsedMs(); ok {
		if err := extractionattempt.ElapsedMsValidator(v); err != nil {
			return &ValidationError{Name: "elapsed_ms", err: fmt.Errorf(`ent: validator failed for field "ExtractionAttempt.elapsed_ms": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionAttempt.document"`)
	}
	return nil
}

func (_u *ExtractionAttemptUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionattempt.Table, extractionattempt.Columns, sqlgraph.NewFieldSpec(extractionattempt.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionattempt.FieldID)
		for _, f := range fields {
			if !extractionattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionattempt.FieldID {
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
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(extractionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(extractionattempt.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Succeeded(); ok {
		_spec.SetField(extractionattempt.FieldSucceeded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FullText(); ok {
		_spec.SetField(extractionattempt.FieldFullText, field.TypeString, value)
	}
	if _u.mutation.FullTextCleared() {
		_spec.ClearField(extractionattempt.FieldFullText, field.TypeString)
	}
	if value, ok := _u.mutation.Blocks(); ok {
		_spec.SetField(extractionattempt.FieldBlocks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedBlocks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractionattempt.FieldBlocks, value)
		})
	}
	if _u.mutation.BlocksCleared() {
		_spec.ClearField(extractionattempt.FieldBlocks, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(extractionattempt.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(extractionattempt.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(extractionattempt.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(extractionattempt.FieldConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(extractionattempt.FieldEngine, field.TypeString, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(extractionattempt.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(extractionattempt.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionattempt.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractionAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
