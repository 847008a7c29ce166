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
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v []byte) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdate) SetSourcePath(v string) *DocumentUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourcePath(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdate) SetFilename(v string) *DocumentUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFilename(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileKind sets the "file_kind" field.
func (_u *DocumentUpdate) SetFileKind(v string) *DocumentUpdate {
	_u.mutation.SetFileKind(v)
	return _u
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileKind(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetFileKind(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdate) SetFileSize(v int64) *DocumentUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFileSize(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdate) AddFileSize(v int64) *DocumentUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdate) SetUploadedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableUploadedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *DocumentUpdate) SetProcessingStatus(v string) *DocumentUpdate {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingStatus(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *DocumentUpdate) SetVersionNumber(v int) *DocumentUpdate {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableVersionNumber(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *DocumentUpdate) AddVersionNumber(v int) *DocumentUpdate {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetParentDocumentID sets the "parent_document_id" field.
func (_u *DocumentUpdate) SetParentDocumentID(v int) *DocumentUpdate {
	_u.mutation.SetParentDocumentID(v)
	return _u
}

// SetNillableParentDocumentID sets the "parent_document_id" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableParentDocumentID(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetParentDocumentID(*v)
	}
	return _u
}

// ClearParentDocumentID clears the value of the "parent_document_id" field.
func (_u *DocumentUpdate) ClearParentDocumentID() *DocumentUpdate {
	_u.mutation.ClearParentDocumentID()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdate) SetPageCount(v int) *DocumentUpdate {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillablePageCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdate) AddPageCount(v int) *DocumentUpdate {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetHasStructuredFields sets the "has_structured_fields" field.
func (_u *DocumentUpdate) SetHasStructuredFields(v bool) *DocumentUpdate {
	_u.mutation.SetHasStructuredFields(v)
	return _u
}

// SetNillableHasStructuredFields sets the "has_structured_fields" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableHasStructuredFields(v *bool) *DocumentUpdate {
	if v != nil {
		_u.SetHasStructuredFields(*v)
	}
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the ExtractionAttempt entity by IDs.
func (_u *DocumentUpdate) AddAttemptIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the ExtractionAttempt entity.
func (_u *DocumentUpdate) AddAttempts(v ...*ExtractionAttempt) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// AddFaceIDs adds the "faces" edge to the FaceRecord entity by IDs.
func (_u *DocumentUpdate) AddFaceIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddFaceIDs(ids...)
	return _u
}

// AddFaces adds the "faces" edges to the FaceRecord entity.
func (_u *DocumentUpdate) AddFaces(v ...*FaceRecord) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFaceIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the ProcessingFailure entity by IDs.
func (_u *DocumentUpdate) AddFailureIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the ProcessingFailure entity.
func (_u *DocumentUpdate) AddFailures(v ...*ProcessingFailure) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// SetFieldsID sets the "fields" edge to the StructuredFields entity by ID.
func (_u *DocumentUpdate) SetFieldsID(id int) *DocumentUpdate {
	_u.mutation.SetFieldsID(id)
	return _u
}

// SetNillableFieldsID sets the "fields" edge to the StructuredFields entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableFieldsID(id *int) *DocumentUpdate {
	if id != nil {
		_u = _u.SetFieldsID(*id)
	}
	return _u
}

// SetFields sets the "fields" edge to the StructuredFields entity.
func (_u *DocumentUpdate) SetFields(v *StructuredFields) *DocumentUpdate {
	return _u.SetFieldsID(v.ID)
}

// SetParentID sets the "parent" edge to the Document entity by ID.
func (_u *DocumentUpdate) SetParentID(id int) *DocumentUpdate {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Document entity by ID if the given value is not nil.
func (_u *DocumentUpdate) SetNillableParentID(id *int) *DocumentUpdate {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Document entity.
func (_u *DocumentUpdate) SetParent(v *Document) *DocumentUpdate {
	return _u.SetParentID(v.ID)
}

// AddRevisionIDs adds the "revisions" edge to the Document entity by IDs.
func (_u *DocumentUpdate) AddRevisionIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Document entity.
func (_u *DocumentUpdate) AddRevisions(v ...*Document) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the ExtractionAttempt entity.
func (_u *DocumentUpdate) ClearAttempts() *DocumentUpdate {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to ExtractionAttempt entities by IDs.
func (_u *DocumentUpdate) RemoveAttemptIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to ExtractionAttempt entities.
func (_u *DocumentUpdate) RemoveAttempts(v ...*ExtractionAttempt) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// ClearFaces clears all "faces" edges to the FaceRecord entity.
func (_u *DocumentUpdate) ClearFaces() *DocumentUpdate {
	_u.mutation.ClearFaces()
	return _u
}

// RemoveFaceIDs removes the "faces" edge to FaceRecord entities by IDs.
func (_u *DocumentUpdate) RemoveFaceIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveFaceIDs(ids...)
	return _u
}

// RemoveFaces removes "faces" edges to FaceRecord entities.
func (_u *DocumentUpdate) RemoveFaces(v ...*FaceRecord) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFaceIDs(ids...)
}

// ClearFailures clears all "failures" edges to the ProcessingFailure entity.
func (_u *DocumentUpdate) ClearFailures() *DocumentUpdate {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to ProcessingFailure entities by IDs.
func (_u *DocumentUpdate) RemoveFailureIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to ProcessingFailure entities.
func (_u *DocumentUpdate) RemoveFailures(v ...*ProcessingFailure) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearFields clears the "fields" edge to the StructuredFields entity.
func (_u *DocumentUpdate) ClearFields() *DocumentUpdate {
	_u.mutation.ClearFields()
	return _u
}

// ClearParent clears the "parent" edge to the Document entity.
func (_u *DocumentUpdate) ClearParent() *DocumentUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearRevisions clears all "revisions" edges to the Document entity.
func (_u *DocumentUpdate) ClearRevisions() *DocumentUpdate {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Document entities by IDs.
func (_u *DocumentUpdate) RemoveRevisionIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Document entities.
func (_u *DocumentUpdate) RemoveRevisions(v ...*Document) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKind(); ok {
		if err := document.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "Document.file_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := document.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Document.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VersionNumber(); ok {
		if err := document.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "Document.version_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageCount(); ok {
		if err := document.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "Document.page_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKind(); ok {
		_spec.SetField(document.FieldFileKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(document.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(document.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(document.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasStructuredFields(); ok {
		_spec.SetField(document.FieldHasStructuredFields, field.TypeBool, value)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFacesIDs(); len(nodes) > 0 && !_u.mutation.FacesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RevisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v []byte) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *DocumentUpdateOne) SetSourcePath(v string) *DocumentUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourcePath(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *DocumentUpdateOne) SetFilename(v string) *DocumentUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFilename(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileKind sets the "file_kind" field.
func (_u *DocumentUpdateOne) SetFileKind(v string) *DocumentUpdateOne {
	_u.mutation.SetFileKind(v)
	return _u
}

// SetNillableFileKind sets the "file_kind" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileKind(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileKind(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentUpdateOne) SetFileSize(v int64) *DocumentUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFileSize(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentUpdateOne) AddFileSize(v int64) *DocumentUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *DocumentUpdateOne) SetUploadedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableUploadedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetProcessingStatus sets the "processing_status" field.
func (_u *DocumentUpdateOne) SetProcessingStatus(v string) *DocumentUpdateOne {
	_u.mutation.SetProcessingStatus(v)
	return _u
}

// SetNillableProcessingStatus sets the "processing_status" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingStatus(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStatus(*v)
	}
	return _u
}

// SetVersionNumber sets the "version_number" field.
func (_u *DocumentUpdateOne) SetVersionNumber(v int) *DocumentUpdateOne {
	_u.mutation.ResetVersionNumber()
	_u.mutation.SetVersionNumber(v)
	return _u
}

// SetNillableVersionNumber sets the "version_number" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableVersionNumber(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetVersionNumber(*v)
	}
	return _u
}

// AddVersionNumber adds value to the "version_number" field.
func (_u *DocumentUpdateOne) AddVersionNumber(v int) *DocumentUpdateOne {
	_u.mutation.AddVersionNumber(v)
	return _u
}

// SetParentDocumentID sets the "parent_document_id" field.
func (_u *DocumentUpdateOne) SetParentDocumentID(v int) *DocumentUpdateOne {
	_u.mutation.SetParentDocumentID(v)
	return _u
}

// SetNillableParentDocumentID sets the "parent_document_id" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableParentDocumentID(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetParentDocumentID(*v)
	}
	return _u
}

// ClearParentDocumentID clears the value of the "parent_document_id" field.
func (_u *DocumentUpdateOne) ClearParentDocumentID() *DocumentUpdateOne {
	_u.mutation.ClearParentDocumentID()
	return _u
}

// SetPageCount sets the "page_count" field.
func (_u *DocumentUpdateOne) SetPageCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetPageCount()
	_u.mutation.SetPageCount(v)
	return _u
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillablePageCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetPageCount(*v)
	}
	return _u
}

// AddPageCount adds value to the "page_count" field.
func (_u *DocumentUpdateOne) AddPageCount(v int) *DocumentUpdateOne {
	_u.mutation.AddPageCount(v)
	return _u
}

// SetHasStructuredFields sets the "has_structured_fields" field.
func (_u *DocumentUpdateOne) SetHasStructuredFields(v bool) *DocumentUpdateOne {
	_u.mutation.SetHasStructuredFields(v)
	return _u
}

// SetNillableHasStructuredFields sets the "has_structured_fields" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableHasStructuredFields(v *bool) *DocumentUpdateOne {
	if v != nil {
		_u.SetHasStructuredFields(*v)
	}
	return _u
}

// AddAttemptIDs adds the "attempts" edge to the ExtractionAttempt entity by IDs.
func (_u *DocumentUpdateOne) AddAttemptIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddAttemptIDs(ids...)
	return _u
}

// AddAttempts adds the "attempts" edges to the ExtractionAttempt entity.
func (_u *DocumentUpdateOne) AddAttempts(v ...*ExtractionAttempt) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAttemptIDs(ids...)
}

// AddFaceIDs adds the "faces" edge to the FaceRecord entity by IDs.
func (_u *DocumentUpdateOne) AddFaceIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddFaceIDs(ids...)
	return _u
}

// AddFaces adds the "faces" edges to the FaceRecord entity.
func (_u *DocumentUpdateOne) AddFaces(v ...*FaceRecord) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFaceIDs(ids...)
}

// AddFailureIDs adds the "failures" edge to the ProcessingFailure entity by IDs.
func (_u *DocumentUpdateOne) AddFailureIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddFailureIDs(ids...)
	return _u
}

// AddFailures adds the "failures" edges to the ProcessingFailure entity.
func (_u *DocumentUpdateOne) AddFailures(v ...*ProcessingFailure) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFailureIDs(ids...)
}

// SetFieldsID sets the "fields" edge to the StructuredFields entity by ID.
func (_u *DocumentUpdateOne) SetFieldsID(id int) *DocumentUpdateOne {
	_u.mutation.SetFieldsID(id)
	return _u
}

// SetNillableFieldsID sets the "fields" edge to the StructuredFields entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableFieldsID(id *int) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetFieldsID(*id)
	}
	return _u
}

// SetFields sets the "fields" edge to the StructuredFields entity.
func (_u *DocumentUpdateOne) SetFields(v *StructuredFields) *DocumentUpdateOne {
	return _u.SetFieldsID(v.ID)
}

// SetParentID sets the "parent" edge to the Document entity by ID.
func (_u *DocumentUpdateOne) SetParentID(id int) *DocumentUpdateOne {
	_u.mutation.SetParentID(id)
	return _u
}

// SetNillableParentID sets the "parent" edge to the Document entity by ID if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableParentID(id *int) *DocumentUpdateOne {
	if id != nil {
		_u = _u.SetParentID(*id)
	}
	return _u
}

// SetParent sets the "parent" edge to the Document entity.
func (_u *DocumentUpdateOne) SetParent(v *Document) *DocumentUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddRevisionIDs adds the "revisions" edge to the Document entity by IDs.
func (_u *DocumentUpdateOne) AddRevisionIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddRevisionIDs(ids...)
	return _u
}

// AddRevisions adds the "revisions" edges to the Document entity.
func (_u *DocumentUpdateOne) AddRevisions(v ...*Document) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRevisionIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearAttempts clears all "attempts" edges to the ExtractionAttempt entity.
func (_u *DocumentUpdateOne) ClearAttempts() *DocumentUpdateOne {
	_u.mutation.ClearAttempts()
	return _u
}

// RemoveAttemptIDs removes the "attempts" edge to ExtractionAttempt entities by IDs.
func (_u *DocumentUpdateOne) RemoveAttemptIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveAttemptIDs(ids...)
	return _u
}

// RemoveAttempts removes "attempts" edges to ExtractionAttempt entities.
func (_u *DocumentUpdateOne) RemoveAttempts(v ...*ExtractionAttempt) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAttemptIDs(ids...)
}

// ClearFaces clears all "faces" edges to the FaceRecord entity.
func (_u *DocumentUpdateOne) ClearFaces() *DocumentUpdateOne {
	_u.mutation.ClearFaces()
	return _u
}

// RemoveFaceIDs removes the "faces" edge to FaceRecord entities by IDs.
func (_u *DocumentUpdateOne) RemoveFaceIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveFaceIDs(ids...)
	return _u
}

// RemoveFaces removes "faces" edges to FaceRecord entities.
func (_u *DocumentUpdateOne) RemoveFaces(v ...*FaceRecord) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFaceIDs(ids...)
}

// ClearFailures clears all "failures" edges to the ProcessingFailure entity.
func (_u *DocumentUpdateOne) ClearFailures() *DocumentUpdateOne {
	_u.mutation.ClearFailures()
	return _u
}

// RemoveFailureIDs removes the "failures" edge to ProcessingFailure entities by IDs.
func (_u *DocumentUpdateOne) RemoveFailureIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveFailureIDs(ids...)
	return _u
}

// RemoveFailures removes "failures" edges to ProcessingFailure entities.
func (_u *DocumentUpdateOne) RemoveFailures(v ...*ProcessingFailure) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFailureIDs(ids...)
}

// ClearFields clears the "fields" edge to the StructuredFields entity.
func (_u *DocumentUpdateOne) ClearFields() *DocumentUpdateOne {
	_u.mutation.ClearFields()
	return _u
}

// ClearParent clears the "parent" edge to the Document entity.
func (_u *DocumentUpdateOne) ClearParent() *DocumentUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearRevisions clears all "revisions" edges to the Document entity.
func (_u *DocumentUpdateOne) ClearRevisions() *DocumentUpdateOne {
	_u.mutation.ClearRevisions()
	return _u
}

// RemoveRevisionIDs removes the "revisions" edge to Document entities by IDs.
func (_u *DocumentUpdateOne) RemoveRevisionIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveRevisionIDs(ids...)
	return _u
}

// RemoveRevisions removes "revisions" edges to Document entities.
func (_u *DocumentUpdateOne) RemoveRevisions(v ...*Document) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRevisionIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := document.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Document.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := document.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Document.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileKind(); ok {
		if err := document.FileKindValidator(v); err != nil {
			return &ValidationError{Name: "file_kind", err: fmt.Errorf(`ent: validator failed for field "Document.file_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileSize(); ok {
		if err := document.FileSizeValidator(v); err != nil {
			return &ValidationError{Name: "file_size", err: fmt.Errorf(`ent: validator failed for field "Document.file_size": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessingStatus(); ok {
		if err := document.ProcessingStatusValidator(v); err != nil {
			return &ValidationError{Name: "processing_status", err: fmt.Errorf(`ent: validator failed for field "Document.processing_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VersionNumber(); ok {
		if err := document.VersionNumberValidator(v); err != nil {
			return &ValidationError{Name: "version_number", err: fmt.Errorf(`ent: validator failed for field "Document.version_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PageCount(); ok {
		if err := document.PageCountValidator(v); err != nil {
			return &ValidationError{Name: "page_count", err: fmt.Errorf(`ent: validator failed for field "Document.page_count": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(document.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileKind(); ok {
		_spec.SetField(document.FieldFileKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(document.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(document.FieldUploadedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProcessingStatus(); ok {
		_spec.SetField(document.FieldProcessingStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.VersionNumber(); ok {
		_spec.SetField(document.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersionNumber(); ok {
		_spec.AddField(document.FieldVersionNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageCount(); ok {
		_spec.AddField(document.FieldPageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HasStructuredFields(); ok {
		_spec.SetField(document.FieldHasStructuredFields, field.TypeBool, value)
	}
	if _u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAttemptsIDs(); len(nodes) > 0 && !_u.mutation.AttemptsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFacesIDs(); len(nodes) > 0 && !_u.mutation.FacesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFailuresIDs(); len(nodes) > 0 && !_u.mutation.FailuresCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FailuresIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FieldsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FieldsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ParentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RevisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRevisionsIDs(); len(nodes) > 0 && !_u.mutation.RevisionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RevisionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
