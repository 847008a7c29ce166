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
	"github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v []byte) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *DocumentCreate) SetSourcePath(v string) *DocumentCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileKind sets the "file_kind" field.
func (_c *DocumentCreate) SetFileKind(v string) *DocumentCreate {
	_c.mutation.SetFileKind(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentCreate) SetFileSize(v int64) *DocumentCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *DocumentCreate) SetUploadedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUploadedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetProcessingStatus sets the "processing_status" field.
func (_c *DocumentCreate) SetProcessingStatus(v string) *DocumentCreate {
	_c.mutation.SetProcessingStatus(v)
	return _c
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingStatus(v *string) *DocumentCreate {
	if v != nil {
		_c.SetProcessingStatus(*v)
	}
	return _c
}

// SetVersionNumber sets the "version_number" field.
func (_c *DocumentCreate) SetVersionNumber(v int) *DocumentCreate {
	_c.mutation.SetVersionNumber(v)
	return _c
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableVersionNumber(v *int) *DocumentCreate {
	if v != nil {
		_c.SetVersionNumber(*v)
	}
	return _c
}

// SetParentDocumentID sets the "parent_document_id" field.
func (_c *DocumentCreate) SetParentDocumentID(v int) *DocumentCreate {
	_c.mutation.SetParentDocumentID(v)
	return _c
}

// SetNillableParentDocumentID sets the "parent_document_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableParentDocumentID(v *int) *DocumentCreate {
	if v != nil {
		_c.SetParentDocumentID(*v)
	}
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetHasStructuredFields sets the "has_structured_fields" field.
func (_c *DocumentCreate) SetHasStructuredFields(v bool) *DocumentCreate {
	_c.mutation.SetHasStructuredFields(v)
	return _c
}

// SetNillableHasStructuredFields sets the "has_structured_fields" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableHasStructuredFields(v *bool) *DocumentCreate {
	if v != nil {
		_c.SetHasStructuredFields(*v)
	}
	return _c
}

// AddAttemptIDs adds the "attempts" edge to the ExtractionAttempt entity by IDs.
func (_c *DocumentCreate) AddAttemptIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddAttemptIDs(ids...)
	return _c
}

// AddAttempts adds the "attempts" edges to the ExtractionAttempt entity.
func (_c *DocumentCreate) AddAttempts(v ...*ExtractionAttempt) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAttemptIDs(ids...)
}

// AddFaceIDs adds the "faces" edge to the FaceRecord entity by IDs.
func (_c *DocumentCreate) AddFaceIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddFaceIDs(ids...)
	return _c
}

// AddFaces adds the "faces" edges to the FaceRecord entity.
func (_c *DocumentCreate) AddFaces(v ...*FaceRecord) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFaceIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the ProcessingFailure entity by IDs.
func (_c *DocumentCreate) AddFailureIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddFailureIDs(ids...)
	return _c
}

// AddFailures adds the "failures" edges to the ProcessingFailure entity.
func (_c *DocumentCreate) AddFailures(v ...*ProcessingFailure) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFailureIDs(ids...)
}

// SetFieldsID sets the "fields" edge to the StructuredFields entity by ID.
func (_c *DocumentCreate) SetFieldsID(id int) *DocumentCreate {
	_c.mutation.SetFieldsID(id)
	return _c
}

// SetNillableFieldsID sets the "fields" edge to the StructuredFields entity by ID if the given value is not nil.
func (_c *DocumentCreate) SetNillableFieldsID(id *int) *DocumentCreate {
	if id != nil {
		_c = _c.SetFieldsID(*id)
	}
	return _c
}

// SetFields sets the "fields" edge to the StructuredFields entity.
func (_c *DocumentCreate) SetFields(v *StructuredFields) *DocumentCreate {
	return _c.SetFieldsID(v.ID)
}

// SetParentID sets the "parent" edge to the Document entity by ID.
func (_c *DocumentCreate) SetParentID(id int) *DocumentCreate {
	_c.mutation.SetParentID(id)
	return _c
}

// SetNillableParentID sets the "parent" edge to the Document entity by ID if the given value is not nil.
func (_c *DocumentCreate) SetNillableParentID(id *int) *DocumentCreate {
	if id != nil {
		_c = _c.SetParentID(*id)
	}
	return _c
}

// SetParent sets the "parent" edge to the Document entity.
func (_c *DocumentCreate) SetParent(v *Document) *DocumentCreate {
	return _c.SetParentID(v.ID)
}

// AddRevisionIDs adds the "revisions" edge to the Document entity by IDs.
func (_c *DocumentCreate) AddRevisionIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddRevisionIDs(ids...)
	return _c
}

// AddRevisions adds the "revisions" edges to the Document entity.
func (_c *DocumentCreate) AddRevisions(v ...*Document) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRevisionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := document.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		v := document.DefaultProcessingStatus
		_c.mutation.SetProcessingStatus(v)
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		v := document.DefaultVersionNumber
		_c.mutation.SetVersionNumber(v)
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		v := document.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.HasStructuredFields(); !ok {
		v := document.DefaultHasStructuredFields
		_c.mutation.SetHasStructuredFields(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Document.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileKind(); !ok {
		return &ValidationError{Name: "file_kind", err: errors.New(`ent: missing required field "Document.file_kind"`)}
	}
	if v, ok := _c.mutation.FileKind(); ok {
		if err := document.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "Document.file_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileSize(); !ok {
		return &ValidationError{Name: "file_size", err: errors.New(`ent: missing required field "Document.file_size"`)}
	}
	if v, ok := _c.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "Document.uploaded_at"`)}
	}
	if _, ok := _c.mutation.ProcessingStatus(); !ok {
		return &ValidationError{Name: "processing_status", err: errors.New(`ent: missing required field "Document.processing_status"`)}
	}
	if v, ok := _c.mutation.ProcessingStatus(); ok {
		if err := document.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Document.processing_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VersionNumber(); !ok {
		return &ValidationError{Name: "version_number", err: errors.New(`ent: missing required field "Document.version_number"`)}
	}
	if v, ok := _c.mutation.VersionNumber(); ok {
		if err := document.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "Document.version_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Document.page_count"`)}
	}
	if v, ok := _c.mutation.PageCount(); ok {
		if err := document.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "Document.page_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasStructuredFields(); !ok {
		return &ValidationError{Name: "has_structured_fields", err: errors.New(`ent: missing required field "Document.has_structured_fields"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileKind(); ok {
		_spec.SetField(document.FieldFileKind, field.TypeString, value)
		_node.FileKind = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if value, ok := _c.mutation.ProcessingStatus(); ok {
		_spec.SetField(document.FieldProcessingStatus, field.TypeString, value)
		_node.ProcessingStatus = value
	}
	if value, ok := _c.mutation.VersionNumber(); ok {
		_spec.SetField(document.FieldVersionNumber, field.TypeInt, value)
		_node.VersionNumber = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.HasStructuredFields(); ok {
		_spec.SetField(document.FieldHasStructuredFields, field.TypeBool, value)
		_node.HasStructuredFields = value
	}
	if nodes := _c.mutation.AttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.AttemptsTable,
			Columns: []string{document.AttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionattempt.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FacesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FacesTable,
			Columns: []string{document.FacesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(facerecord.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FailuresIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.FailuresTable,
			Columns: []string{document.FailuresColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processingfailure.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FieldsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   document.FieldsTable,
			Columns: []string{document.FieldsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(structuredfields.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ParentTable,
			Columns: []string{document.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParentDocumentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RevisionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.RevisionsTable,
			Columns: []string{document.RevisionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
