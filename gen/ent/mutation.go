// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/scanworks/scanvault/gen/ent/document"
	"github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/gen/ent/predicate"
	"github.com/scanworks/scanvault/gen/ent/processingfailure"
	"github.com/scanworks/scanvault/gen/ent/searchlog"
	"github.com/scanworks/scanvault/gen/ent/structuredfields"
	"github.com/scanworks/scanvault/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDocument          = "Document"
	TypeExtractionAttempt = "ExtractionAttempt"
	TypeFaceRecord        = "FaceRecord"
	TypeProcessingFailure = "ProcessingFailure"
	TypeSearchLog         = "SearchLog"
	TypeStructuredFields  = "StructuredFields"
)

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	content_hash          *[]byte
	source_path           *string
	filename              *string
	file_kind             *string
	file_size             *int64
	addfile_size          *int64
	uploaded_at           *time.Time
	processing_status     *string
	version_number        *int
	addversion_number     *int
	page_count            *int
	addpage_count         *int
	has_structured_fields *bool
	clearedFields         map[string]struct{}
	attempts              map[int]struct{}
	removedattempts       map[int]struct{}
	clearedattempts       bool
	faces                 map[int]struct{}
	removedfaces          map[int]struct{}
	clearedfaces          bool
	failures              map[int]struct{}
	removedfailures       map[int]struct{}
	clearedfailures       bool
	fields                *int
	clearedfields         bool
	parent                *int
	clearedparent         bool
	revisions             map[int]struct{}
	removedrevisions      map[int]struct{}
	clearedrevisions      bool
	done                  bool
	oldValue              func(context.Context) (*Document, error)
	predicates            []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetSourcePath sets the "source_path" field.
func (m *DocumentMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *DocumentMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *DocumentMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetFileKind sets the "file_kind" field.
func (m *DocumentMutation) SetFileKind(s string) {
	m.file_kind = &s
}

// FileKind returns the value of the "file_kind" field in the mutation.
func (m *DocumentMutation) FileKind() (r string, exists bool) {
	v := m.file_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldFileKind returns the old "file_kind" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileKind: %w", err)
	}
	return oldValue.FileKind, nil
}

// ResetFileKind resets all changes to the "file_kind" field.
func (m *DocumentMutation) ResetFileKind() {
	m.file_kind = nil
}

// SetFileSize sets the "file_size" field.
func (m *DocumentMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DocumentMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFileSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DocumentMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DocumentMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DocumentMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *DocumentMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *DocumentMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *DocumentMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// SetProcessingStatus sets the "processing_status" field.
func (m *DocumentMutation) SetProcessingStatus(s string) {
	m.processing_status = &s
}

// ProcessingStatus returns the value of the "processing_status" field in the mutation.
func (m *DocumentMutation) ProcessingStatus() (r string, exists bool) {
	v := m.processing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStatus returns the old "processing_status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStatus: %w", err)
	}
	return oldValue.ProcessingStatus, nil
}

// ResetProcessingStatus resets all changes to the "processing_status" field.
func (m *DocumentMutation) ResetProcessingStatus() {
	m.processing_status = nil
}

// SetVersionNumber sets the "version_number" field.
func (m *DocumentMutation) SetVersionNumber(i int) {
	m.version_number = &i
	m.addversion_number = nil
}

// VersionNumber returns the value of the "version_number" field in the mutation.
func (m *DocumentMutation) VersionNumber() (r int, exists bool) {
	v := m.version_number
	if v == nil {
		return
	}
	return *v, true
}

// OldVersionNumber returns the old "version_number" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersionNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersionNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersionNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersionNumber: %w", err)
	}
	return oldValue.VersionNumber, nil
}

// AddVersionNumber adds i to the "version_number" field.
func (m *DocumentMutation) AddVersionNumber(i int) {
	if m.addversion_number != nil {
		*m.addversion_number += i
	} else {
		m.addversion_number = &i
	}
}

// AddedVersionNumber returns the value that was added to the "version_number" field in this mutation.
func (m *DocumentMutation) AddedVersionNumber() (r int, exists bool) {
	v := m.addversion_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersionNumber resets all changes to the "version_number" field.
func (m *DocumentMutation) ResetVersionNumber() {
	m.version_number = nil
	m.addversion_number = nil
}

// SetParentDocumentID sets the "parent_document_id" field.
func (m *DocumentMutation) SetParentDocumentID(i int) {
	m.parent = &i
}

// ParentDocumentID returns the value of the "parent_document_id" field in the mutation.
func (m *DocumentMutation) ParentDocumentID() (r int, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentDocumentID returns the old "parent_document_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldParentDocumentID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentDocumentID: %w", err)
	}
	return oldValue.ParentDocumentID, nil
}

// ClearParentDocumentID clears the value of the "parent_document_id" field.
func (m *DocumentMutation) ClearParentDocumentID() {
	m.parent = nil
	m.clearedFields[document.FieldParentDocumentID] = struct{}{}
}

// ParentDocumentIDCleared returns if the "parent_document_id" field was cleared in this mutation.
func (m *DocumentMutation) ParentDocumentIDCleared() bool {
	_, ok := m.clearedFields[document.FieldParentDocumentID]
	return ok
}

// ResetParentDocumentID resets all changes to the "parent_document_id" field.
func (m *DocumentMutation) ResetParentDocumentID() {
	m.parent = nil
	delete(m.clearedFields, document.FieldParentDocumentID)
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetHasStructuredFields sets the "has_structured_fields" field.
func (m *DocumentMutation) SetHasStructuredFields(b bool) {
	m.has_structured_fields = &b
}

// HasStructuredFields returns the value of the "has_structured_fields" field in the mutation.
func (m *DocumentMutation) HasStructuredFields() (r bool, exists bool) {
	v := m.has_structured_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldHasStructuredFields returns the old "has_structured_fields" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldHasStructuredFields(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasStructuredFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasStructuredFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasStructuredFields: %w", err)
	}
	return oldValue.HasStructuredFields, nil
}

// ResetHasStructuredFields resets all changes to the "has_structured_fields" field.
func (m *DocumentMutation) ResetHasStructuredFields() {
	m.has_structured_fields = nil
}

// AddAttemptIDs adds the "attempts" edge to the ExtractionAttempt entity by ids.
func (m *DocumentMutation) AddAttemptIDs(ids ...int) {
	if m.attempts == nil {
		m.attempts = make(map[int]struct{})
	}
	for i := range ids {
		m.attempts[ids[i]] = struct{}{}
	}
}

// ClearAttempts clears the "attempts" edge to the ExtractionAttempt entity.
func (m *DocumentMutation) ClearAttempts() {
	m.clearedattempts = true
}

// AttemptsCleared reports if the "attempts" edge to the ExtractionAttempt entity was cleared.
func (m *DocumentMutation) AttemptsCleared() bool {
	return m.clearedattempts
}

// RemoveAttemptIDs removes the "attempts" edge to the ExtractionAttempt entity by IDs.
func (m *DocumentMutation) RemoveAttemptIDs(ids ...int) {
	if m.removedattempts == nil {
		m.removedattempts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.attempts, ids[i])
		m.removedattempts[ids[i]] = struct{}{}
	}
}

// RemovedAttempts returns the removed IDs of the "attempts" edge to the ExtractionAttempt entity.
func (m *DocumentMutation) RemovedAttemptsIDs() (ids []int) {
	for id := range m.removedattempts {
		ids = append(ids, id)
	}
	return
}

// AttemptsIDs returns the "attempts" edge IDs in the mutation.
func (m *DocumentMutation) AttemptsIDs() (ids []int) {
	for id := range m.attempts {
		ids = append(ids, id)
	}
	return
}

// ResetAttempts resets all changes to the "attempts" edge.
func (m *DocumentMutation) ResetAttempts() {
	m.attempts = nil
	m.clearedattempts = false
	m.removedattempts = nil
}

// AddFaceIDs adds the "faces" edge to the FaceRecord entity by ids.
func (m *DocumentMutation) AddFaceIDs(ids ...int) {
	if m.faces == nil {
		m.faces = make(map[int]struct{})
	}
	for i := range ids {
		m.faces[ids[i]] = struct{}{}
	}
}

// ClearFaces clears the "faces" edge to the FaceRecord entity.
func (m *DocumentMutation) ClearFaces() {
	m.clearedfaces = true
}

// FacesCleared reports if the "faces" edge to the FaceRecord entity was cleared.
func (m *DocumentMutation) FacesCleared() bool {
	return m.clearedfaces
}

// RemoveFaceIDs removes the "faces" edge to the FaceRecord entity by IDs.
func (m *DocumentMutation) RemoveFaceIDs(ids ...int) {
	if m.removedfaces == nil {
		m.removedfaces = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.faces, ids[i])
		m.removedfaces[ids[i]] = struct{}{}
	}
}

// RemovedFaces returns the removed IDs of the "faces" edge to the FaceRecord entity.
func (m *DocumentMutation) RemovedFacesIDs() (ids []int) {
	for id := range m.removedfaces {
		ids = append(ids, id)
	}
	return
}

// FacesIDs returns the "faces" edge IDs in the mutation.
func (m *DocumentMutation) FacesIDs() (ids []int) {
	for id := range m.faces {
		ids = append(ids, id)
	}
	return
}

// ResetFaces resets all changes to the "faces" edge.
func (m *DocumentMutation) ResetFaces() {
	m.faces = nil
	m.clearedfaces = false
	m.removedfaces = nil
}

// AddFailureIDs adds the "failures" edge to the ProcessingFailure entity by ids.
func (m *DocumentMutation) AddFailureIDs(ids ...int) {
	if m.failures == nil {
		m.failures = make(map[int]struct{})
	}
	for i := range ids {
		m.failures[ids[i]] = struct{}{}
	}
}

// ClearFailures clears the "failures" edge to the ProcessingFailure entity.
func (m *DocumentMutation) ClearFailures() {
	m.clearedfailures = true
}

// FailuresCleared reports if the "failures" edge to the ProcessingFailure entity was cleared.
func (m *DocumentMutation) FailuresCleared() bool {
	return m.clearedfailures
}

// RemoveFailureIDs removes the "failures" edge to the ProcessingFailure entity by IDs.
func (m *DocumentMutation) RemoveFailureIDs(ids ...int) {
	if m.removedfailures == nil {
		m.removedfailures = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.failures, ids[i])
		m.removedfailures[ids[i]] = struct{}{}
	}
}

// RemovedFailures returns the removed IDs of the "failures" edge to the ProcessingFailure entity.
func (m *DocumentMutation) RemovedFailuresIDs() (ids []int) {
	for id := range m.removedfailures {
		ids = append(ids, id)
	}
	return
}

// FailuresIDs returns the "failures" edge IDs in the mutation.
func (m *DocumentMutation) FailuresIDs() (ids []int) {
	for id := range m.failures {
		ids = append(ids, id)
	}
	return
}

// ResetFailures resets all changes to the "failures" edge.
func (m *DocumentMutation) ResetFailures() {
	m.failures = nil
	m.clearedfailures = false
	m.removedfailures = nil
}

// SetFieldsID sets the "fields" edge to the StructuredFields entity by id.
func (m *DocumentMutation) SetFieldsID(id int) {
	m.fields = &id
}

// ClearFields clears the "fields" edge to the StructuredFields entity.
func (m *DocumentMutation) ClearFields() {
	m.clearedfields = true
}

// FieldsCleared reports if the "fields" edge to the StructuredFields entity was cleared.
func (m *DocumentMutation) FieldsCleared() bool {
	return m.clearedfields
}

// FieldsID returns the "fields" edge ID in the mutation.
func (m *DocumentMutation) FieldsID() (id int, exists bool) {
	if m.fields != nil {
		return *m.fields, true
	}
	return
}

// FieldsIDs returns the "fields" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FieldsID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) FieldsIDs() (ids []int) {
	if id := m.fields; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFields resets all changes to the "fields" edge.
func (m *DocumentMutation) ResetFields() {
	m.fields = nil
	m.clearedfields = false
}

// SetParentID sets the "parent" edge to the Document entity by id.
func (m *DocumentMutation) SetParentID(id int) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the Document entity.
func (m *DocumentMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[document.FieldParentDocumentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Document entity was cleared.
func (m *DocumentMutation) ParentCleared() bool {
	return m.ParentDocumentIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *DocumentMutation) ParentID() (id int, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ParentIDs() (ids []int) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *DocumentMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddRevisionIDs adds the "revisions" edge to the Document entity by ids.
func (m *DocumentMutation) AddRevisionIDs(ids ...int) {
	if m.revisions == nil {
		m.revisions = make(map[int]struct{})
	}
	for i := range ids {
		m.revisions[ids[i]] = struct{}{}
	}
}

// ClearRevisions clears the "revisions" edge to the Document entity.
func (m *DocumentMutation) ClearRevisions() {
	m.clearedrevisions = true
}

// RevisionsCleared reports if the "revisions" edge to the Document entity was cleared.
func (m *DocumentMutation) RevisionsCleared() bool {
	return m.clearedrevisions
}

// RemoveRevisionIDs removes the "revisions" edge to the Document entity by IDs.
func (m *DocumentMutation) RemoveRevisionIDs(ids ...int) {
	if m.removedrevisions == nil {
		m.removedrevisions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.revisions, ids[i])
		m.removedrevisions[ids[i]] = struct{}{}
	}
}

// RemovedRevisions returns the removed IDs of the "revisions" edge to the Document entity.
func (m *DocumentMutation) RemovedRevisionsIDs() (ids []int) {
	for id := range m.removedrevisions {
		ids = append(ids, id)
	}
	return
}

// RevisionsIDs returns the "revisions" edge IDs in the mutation.
func (m *DocumentMutation) RevisionsIDs() (ids []int) {
	for id := range m.revisions {
		ids = append(ids, id)
	}
	return
}

// ResetRevisions resets all changes to the "revisions" edge.
func (m *DocumentMutation) ResetRevisions() {
	m.revisions = nil
	m.clearedrevisions = false
	m.removedrevisions = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.source_path != nil {
		fields = append(fields, document.FieldSourcePath)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.file_kind != nil {
		fields = append(fields, document.FieldFileKind)
	}
	if m.file_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, document.FieldUploadedAt)
	}
	if m.processing_status != nil {
		fields = append(fields, document.FieldProcessingStatus)
	}
	if m.version_number != nil {
		fields = append(fields, document.FieldVersionNumber)
	}
	if m.parent != nil {
		fields = append(fields, document.FieldParentDocumentID)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.has_structured_fields != nil {
		fields = append(fields, document.FieldHasStructuredFields)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldSourcePath:
		return m.SourcePath()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldFileKind:
		return m.FileKind()
	case document.FieldFileSize:
		return m.FileSize()
	case document.FieldUploadedAt:
		return m.UploadedAt()
	case document.FieldProcessingStatus:
		return m.ProcessingStatus()
	case document.FieldVersionNumber:
		return m.VersionNumber()
	case document.FieldParentDocumentID:
		return m.ParentDocumentID()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldHasStructuredFields:
		return m.HasStructuredFields()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldFileKind:
		return m.OldFileKind(ctx)
	case document.FieldFileSize:
		return m.OldFileSize(ctx)
	case document.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	case document.FieldProcessingStatus:
		return m.OldProcessingStatus(ctx)
	case document.FieldVersionNumber:
		return m.OldVersionNumber(ctx)
	case document.FieldParentDocumentID:
		return m.OldParentDocumentID(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldHasStructuredFields:
		return m.OldHasStructuredFields(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldFileKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileKind(v)
		return nil
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case document.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	case document.FieldProcessingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStatus(v)
		return nil
	case document.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersionNumber(v)
		return nil
	case document.FieldParentDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentDocumentID(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldHasStructuredFields:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasStructuredFields(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, document.FieldFileSize)
	}
	if m.addversion_number != nil {
		fields = append(fields, document.FieldVersionNumber)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldFileSize:
		return m.AddedFileSize()
	case document.FieldVersionNumber:
		return m.AddedVersionNumber()
	case document.FieldPageCount:
		return m.AddedPageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	case document.FieldVersionNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersionNumber(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldParentDocumentID) {
		fields = append(fields, document.FieldParentDocumentID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldParentDocumentID:
		m.ClearParentDocumentID()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldFileKind:
		m.ResetFileKind()
		return nil
	case document.FieldFileSize:
		m.ResetFileSize()
		return nil
	case document.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	case document.FieldProcessingStatus:
		m.ResetProcessingStatus()
		return nil
	case document.FieldVersionNumber:
		m.ResetVersionNumber()
		return nil
	case document.FieldParentDocumentID:
		m.ResetParentDocumentID()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldHasStructuredFields:
		m.ResetHasStructuredFields()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.attempts != nil {
		edges = append(edges, document.EdgeAttempts)
	}
	if m.faces != nil {
		edges = append(edges, document.EdgeFaces)
	}
	if m.failures != nil {
		edges = append(edges, document.EdgeFailures)
	}
	if m.fields != nil {
		edges = append(edges, document.EdgeFields)
	}
	if m.parent != nil {
		edges = append(edges, document.EdgeParent)
	}
	if m.revisions != nil {
		edges = append(edges, document.EdgeRevisions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.attempts))
		for id := range m.attempts {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFaces:
		ids := make([]ent.Value, 0, len(m.faces))
		for id := range m.faces {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.failures))
		for id := range m.failures {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFields:
		if id := m.fields; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case document.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.revisions))
		for id := range m.revisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedattempts != nil {
		edges = append(edges, document.EdgeAttempts)
	}
	if m.removedfaces != nil {
		edges = append(edges, document.EdgeFaces)
	}
	if m.removedfailures != nil {
		edges = append(edges, document.EdgeFailures)
	}
	if m.removedrevisions != nil {
		edges = append(edges, document.EdgeRevisions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeAttempts:
		ids := make([]ent.Value, 0, len(m.removedattempts))
		for id := range m.removedattempts {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFaces:
		ids := make([]ent.Value, 0, len(m.removedfaces))
		for id := range m.removedfaces {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeFailures:
		ids := make([]ent.Value, 0, len(m.removedfailures))
		for id := range m.removedfailures {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeRevisions:
		ids := make([]ent.Value, 0, len(m.removedrevisions))
		for id := range m.removedrevisions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedattempts {
		edges = append(edges, document.EdgeAttempts)
	}
	if m.clearedfaces {
		edges = append(edges, document.EdgeFaces)
	}
	if m.clearedfailures {
		edges = append(edges, document.EdgeFailures)
	}
	if m.clearedfields {
		edges = append(edges, document.EdgeFields)
	}
	if m.clearedparent {
		edges = append(edges, document.EdgeParent)
	}
	if m.clearedrevisions {
		edges = append(edges, document.EdgeRevisions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeAttempts:
		return m.clearedattempts
	case document.EdgeFaces:
		return m.clearedfaces
	case document.EdgeFailures:
		return m.clearedfailures
	case document.EdgeFields:
		return m.clearedfields
	case document.EdgeParent:
		return m.clearedparent
	case document.EdgeRevisions:
		return m.clearedrevisions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeFields:
		m.ClearFields()
		return nil
	case document.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeAttempts:
		m.ResetAttempts()
		return nil
	case document.EdgeFaces:
		m.ResetFaces()
		return nil
	case document.EdgeFailures:
		m.ResetFailures()
		return nil
	case document.EdgeFields:
		m.ResetFields()
		return nil
	case document.EdgeParent:
		m.ResetParent()
		return nil
	case document.EdgeRevisions:
		m.ResetRevisions()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtractionAttemptMutation represents an operation that mutates the ExtractionAttempt nodes in the graph.
type ExtractionAttemptMutation struct {
	config
	op                Op
	typ               string
	id                *int
	attempt_number    *int
	addattempt_number *int
	succeeded         *bool
	full_text         *string
	blocks            *[]entity.TextBlock
	appendblocks      []entity.TextBlock
	language          *string
	confidence        *float32
	addconfidence     *float32
	engine            *string
	elapsed_ms        *int64
	addelapsed_ms     *int64
	created_at        *time.Time
	clearedFields     map[string]struct{}
	document          *int
	cleareddocument   bool
	done              bool
	oldValue          func(context.Context) (*ExtractionAttempt, error)
	predicates        []predicate.ExtractionAttempt
}

var _ ent.Mutation = (*ExtractionAttemptMutation)(nil)

// extractionattemptOption allows management of the mutation configuration using functional options.
type extractionattemptOption func(*ExtractionAttemptMutation)

// newExtractionAttemptMutation creates new mutation for the ExtractionAttempt entity.
func newExtractionAttemptMutation(c config, op Op, opts ...extractionattemptOption) *ExtractionAttemptMutation {
	m := &ExtractionAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionAttemptID sets the ID field of the mutation.
func withExtractionAttemptID(id int) extractionattemptOption {
	return func(m *ExtractionAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionAttempt
		)
		m.oldValue = func(ctx context.Context) (*ExtractionAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionAttempt sets the old ExtractionAttempt of the mutation.
func withExtractionAttempt(node *ExtractionAttempt) extractionattemptOption {
	return func(m *ExtractionAttemptMutation) {
		m.oldValue = func(context.Context) (*ExtractionAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionAttemptMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionAttemptMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractionAttemptMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractionAttemptMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractionAttemptMutation) ResetDocumentID() {
	m.document = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *ExtractionAttemptMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *ExtractionAttemptMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *ExtractionAttemptMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *ExtractionAttemptMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *ExtractionAttemptMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetSucceeded sets the "succeeded" field.
func (m *ExtractionAttemptMutation) SetSucceeded(b bool) {
	m.succeeded = &b
}

// Succeeded returns the value of the "succeeded" field in the mutation.
func (m *ExtractionAttemptMutation) Succeeded() (r bool, exists bool) {
	v := m.succeeded
	if v == nil {
		return
	}
	return *v, true
}

// OldSucceeded returns the old "succeeded" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldSucceeded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSucceeded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSucceeded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSucceeded: %w", err)
	}
	return oldValue.Succeeded, nil
}

// ResetSucceeded resets all changes to the "succeeded" field.
func (m *ExtractionAttemptMutation) ResetSucceeded() {
	m.succeeded = nil
}

// SetFullText sets the "full_text" field.
func (m *ExtractionAttemptMutation) SetFullText(s string) {
	m.full_text = &s
}

// FullText returns the value of the "full_text" field in the mutation.
func (m *ExtractionAttemptMutation) FullText() (r string, exists bool) {
	v := m.full_text
	if v == nil {
		return
	}
	return *v, true
}

// OldFullText returns the old "full_text" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldFullText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullText: %w", err)
	}
	return oldValue.FullText, nil
}

// ClearFullText clears the value of the "full_text" field.
func (m *ExtractionAttemptMutation) ClearFullText() {
	m.full_text = nil
	m.clearedFields[extractionattempt.FieldFullText] = struct{}{}
}

// FullTextCleared returns if the "full_text" field was cleared in this mutation.
func (m *ExtractionAttemptMutation) FullTextCleared() bool {
	_, ok := m.clearedFields[extractionattempt.FieldFullText]
	return ok
}

// ResetFullText resets all changes to the "full_text" field.
func (m *ExtractionAttemptMutation) ResetFullText() {
	m.full_text = nil
	delete(m.clearedFields, extractionattempt.FieldFullText)
}

// SetBlocks sets the "blocks" field.
func (m *ExtractionAttemptMutation) SetBlocks(eb []entity.TextBlock) {
	m.blocks = &eb
	m.appendblocks = nil
}

// Blocks returns the value of the "blocks" field in the mutation.
func (m *ExtractionAttemptMutation) Blocks() (r []entity.TextBlock, exists bool) {
	v := m.blocks
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocks returns the old "blocks" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldBlocks(ctx context.Context) (v []entity.TextBlock, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocks: %w", err)
	}
	return oldValue.Blocks, nil
}

// AppendBlocks adds eb to the "blocks" field.
func (m *ExtractionAttemptMutation) AppendBlocks(eb []entity.TextBlock) {
	m.appendblocks = append(m.appendblocks, eb...)
}

// AppendedBlocks returns the list of values that were appended to the "blocks" field in this mutation.
func (m *ExtractionAttemptMutation) AppendedBlocks() ([]entity.TextBlock, bool) {
	if len(m.appendblocks) == 0 {
		return nil, false
	}
	return m.appendblocks, true
}

// ClearBlocks clears the value of the "blocks" field.
func (m *ExtractionAttemptMutation) ClearBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	m.clearedFields[extractionattempt.FieldBlocks] = struct{}{}
}

// BlocksCleared returns if the "blocks" field was cleared in this mutation.
func (m *ExtractionAttemptMutation) BlocksCleared() bool {
	_, ok := m.clearedFields[extractionattempt.FieldBlocks]
	return ok
}

// ResetBlocks resets all changes to the "blocks" field.
func (m *ExtractionAttemptMutation) ResetBlocks() {
	m.blocks = nil
	m.appendblocks = nil
	delete(m.clearedFields, extractionattempt.FieldBlocks)
}

// SetLanguage sets the "language" field.
func (m *ExtractionAttemptMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ExtractionAttemptMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *ExtractionAttemptMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[extractionattempt.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *ExtractionAttemptMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[extractionattempt.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *ExtractionAttemptMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, extractionattempt.FieldLanguage)
}

// SetConfidence sets the "confidence" field.
func (m *ExtractionAttemptMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ExtractionAttemptMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *ExtractionAttemptMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ExtractionAttemptMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ExtractionAttemptMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetEngine sets the "engine" field.
func (m *ExtractionAttemptMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *ExtractionAttemptMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ResetEngine resets all changes to the "engine" field.
func (m *ExtractionAttemptMutation) ResetEngine() {
	m.engine = nil
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *ExtractionAttemptMutation) SetElapsedMs(i int64) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *ExtractionAttemptMutation) ElapsedMs() (r int64, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldElapsedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *ExtractionAttemptMutation) AddElapsedMs(i int64) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *ExtractionAttemptMutation) AddedElapsedMs() (r int64, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *ExtractionAttemptMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionAttemptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionAttemptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionAttempt entity.
// If the ExtractionAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionAttemptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionAttemptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ExtractionAttemptMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[extractionattempt.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ExtractionAttemptMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ExtractionAttemptMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ExtractionAttemptMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ExtractionAttemptMutation builder.
func (m *ExtractionAttemptMutation) Where(ps ...predicate.ExtractionAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionAttempt).
func (m *ExtractionAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionAttemptMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, extractionattempt.FieldDocumentID)
	}
	if m.attempt_number != nil {
		fields = append(fields, extractionattempt.FieldAttemptNumber)
	}
	if m.succeeded != nil {
		fields = append(fields, extractionattempt.FieldSucceeded)
	}
	if m.full_text != nil {
		fields = append(fields, extractionattempt.FieldFullText)
	}
	if m.blocks != nil {
		fields = append(fields, extractionattempt.FieldBlocks)
	}
	if m.language != nil {
		fields = append(fields, extractionattempt.FieldLanguage)
	}
	if m.confidence != nil {
		fields = append(fields, extractionattempt.FieldConfidence)
	}
	if m.engine != nil {
		fields = append(fields, extractionattempt.FieldEngine)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, extractionattempt.FieldElapsedMs)
	}
	if m.created_at != nil {
		fields = append(fields, extractionattempt.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionattempt.FieldDocumentID:
		return m.DocumentID()
	case extractionattempt.FieldAttemptNumber:
		return m.AttemptNumber()
	case extractionattempt.FieldSucceeded:
		return m.Succeeded()
	case extractionattempt.FieldFullText:
		return m.FullText()
	case extractionattempt.FieldBlocks:
		return m.Blocks()
	case extractionattempt.FieldLanguage:
		return m.Language()
	case extractionattempt.FieldConfidence:
		return m.Confidence()
	case extractionattempt.FieldEngine:
		return m.Engine()
	case extractionattempt.FieldElapsedMs:
		return m.ElapsedMs()
	case extractionattempt.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionattempt.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractionattempt.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case extractionattempt.FieldSucceeded:
		return m.OldSucceeded(ctx)
	case extractionattempt.FieldFullText:
		return m.OldFullText(ctx)
	case extractionattempt.FieldBlocks:
		return m.OldBlocks(ctx)
	case extractionattempt.FieldLanguage:
		return m.OldLanguage(ctx)
	case extractionattempt.FieldConfidence:
		return m.OldConfidence(ctx)
	case extractionattempt.FieldEngine:
		return m.OldEngine(ctx)
	case extractionattempt.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	case extractionattempt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionattempt.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractionattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case extractionattempt.FieldSucceeded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSucceeded(v)
		return nil
	case extractionattempt.FieldFullText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullText(v)
		return nil
	case extractionattempt.FieldBlocks:
		v, ok := value.([]entity.TextBlock)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocks(v)
		return nil
	case extractionattempt.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case extractionattempt.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case extractionattempt.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case extractionattempt.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	case extractionattempt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, extractionattempt.FieldAttemptNumber)
	}
	if m.addconfidence != nil {
		fields = append(fields, extractionattempt.FieldConfidence)
	}
	if m.addelapsed_ms != nil {
		fields = append(fields, extractionattempt.FieldElapsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionattempt.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case extractionattempt.FieldConfidence:
		return m.AddedConfidence()
	case extractionattempt.FieldElapsedMs:
		return m.AddedElapsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case extractionattempt.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case extractionattempt.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionattempt.FieldFullText) {
		fields = append(fields, extractionattempt.FieldFullText)
	}
	if m.FieldCleared(extractionattempt.FieldBlocks) {
		fields = append(fields, extractionattempt.FieldBlocks)
	}
	if m.FieldCleared(extractionattempt.FieldLanguage) {
		fields = append(fields, extractionattempt.FieldLanguage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionAttemptMutation) ClearField(name string) error {
	switch name {
	case extractionattempt.FieldFullText:
		m.ClearFullText()
		return nil
	case extractionattempt.FieldBlocks:
		m.ClearBlocks()
		return nil
	case extractionattempt.FieldLanguage:
		m.ClearLanguage()
		return nil
	}
	return fmt.Errorf("unknown ExtractionAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionAttemptMutation) ResetField(name string) error {
	switch name {
	case extractionattempt.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractionattempt.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case extractionattempt.FieldSucceeded:
		m.ResetSucceeded()
		return nil
	case extractionattempt.FieldFullText:
		m.ResetFullText()
		return nil
	case extractionattempt.FieldBlocks:
		m.ResetBlocks()
		return nil
	case extractionattempt.FieldLanguage:
		m.ResetLanguage()
		return nil
	case extractionattempt.FieldConfidence:
		m.ResetConfidence()
		return nil
	case extractionattempt.FieldEngine:
		m.ResetEngine()
		return nil
	case extractionattempt.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	case extractionattempt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, extractionattempt.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionattempt.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, extractionattempt.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionattempt.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionAttemptMutation) ClearEdge(name string) error {
	switch name {
	case extractionattempt.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionAttemptMutation) ResetEdge(name string) error {
	switch name {
	case extractionattempt.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ExtractionAttempt edge %s", name)
}

// FaceRecordMutation represents an operation that mutates the FaceRecord nodes in the graph.
type FaceRecordMutation struct {
	config
	op              Op
	typ             string
	id              *int
	page_number     *int
	addpage_number  *int
	box_x           *int
	addbox_x        *int
	box_y           *int
	addbox_y        *int
	box_w           *int
	addbox_w        *int
	box_h           *int
	addbox_h        *int
	confidence      *float32
	addconfidence   *float32
	quality         *float32
	addquality      *float32
	index_id        *string
	detected_at     *time.Time
	clearedFields   map[string]struct{}
	document        *int
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*FaceRecord, error)
	predicates      []predicate.FaceRecord
}

var _ ent.Mutation = (*FaceRecordMutation)(nil)

// facerecordOption allows management of the mutation configuration using functional options.
type facerecordOption func(*FaceRecordMutation)

// newFaceRecordMutation creates new mutation for the FaceRecord entity.
func newFaceRecordMutation(c config, op Op, opts ...facerecordOption) *FaceRecordMutation {
	m := &FaceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFaceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFaceRecordID sets the ID field of the mutation.
func withFaceRecordID(id int) facerecordOption {
	return func(m *FaceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FaceRecord
		)
		m.oldValue = func(ctx context.Context) (*FaceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FaceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFaceRecord sets the old FaceRecord of the mutation.
func withFaceRecord(node *FaceRecord) facerecordOption {
	return func(m *FaceRecordMutation) {
		m.oldValue = func(context.Context) (*FaceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FaceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FaceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FaceRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FaceRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FaceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *FaceRecordMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *FaceRecordMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *FaceRecordMutation) ResetDocumentID() {
	m.document = nil
}

// SetPageNumber sets the "page_number" field.
func (m *FaceRecordMutation) SetPageNumber(i int) {
	m.page_number = &i
	m.addpage_number = nil
}

// PageNumber returns the value of the "page_number" field in the mutation.
func (m *FaceRecordMutation) PageNumber() (r int, exists bool) {
	v := m.page_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPageNumber returns the old "page_number" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldPageNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageNumber: %w", err)
	}
	return oldValue.PageNumber, nil
}

// AddPageNumber adds i to the "page_number" field.
func (m *FaceRecordMutation) AddPageNumber(i int) {
	if m.addpage_number != nil {
		*m.addpage_number += i
	} else {
		m.addpage_number = &i
	}
}

// AddedPageNumber returns the value that was added to the "page_number" field in this mutation.
func (m *FaceRecordMutation) AddedPageNumber() (r int, exists bool) {
	v := m.addpage_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageNumber resets all changes to the "page_number" field.
func (m *FaceRecordMutation) ResetPageNumber() {
	m.page_number = nil
	m.addpage_number = nil
}

// SetBoxX sets the "box_x" field.
func (m *FaceRecordMutation) SetBoxX(i int) {
	m.box_x = &i
	m.addbox_x = nil
}

// BoxX returns the value of the "box_x" field in the mutation.
func (m *FaceRecordMutation) BoxX() (r int, exists bool) {
	v := m.box_x
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxX returns the old "box_x" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldBoxX(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxX is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxX requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxX: %w", err)
	}
	return oldValue.BoxX, nil
}

// AddBoxX adds i to the "box_x" field.
func (m *FaceRecordMutation) AddBoxX(i int) {
	if m.addbox_x != nil {
		*m.addbox_x += i
	} else {
		m.addbox_x = &i
	}
}

// AddedBoxX returns the value that was added to the "box_x" field in this mutation.
func (m *FaceRecordMutation) AddedBoxX() (r int, exists bool) {
	v := m.addbox_x
	if v == nil {
		return
	}
	return *v, true
}

// ResetBoxX resets all changes to the "box_x" field.
func (m *FaceRecordMutation) ResetBoxX() {
	m.box_x = nil
	m.addbox_x = nil
}

// SetBoxY sets the "box_y" field.
func (m *FaceRecordMutation) SetBoxY(i int) {
	m.box_y = &i
	m.addbox_y = nil
}

// BoxY returns the value of the "box_y" field in the mutation.
func (m *FaceRecordMutation) BoxY() (r int, exists bool) {
	v := m.box_y
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxY returns the old "box_y" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldBoxY(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxY is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxY requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxY: %w", err)
	}
	return oldValue.BoxY, nil
}

// AddBoxY adds i to the "box_y" field.
func (m *FaceRecordMutation) AddBoxY(i int) {
	if m.addbox_y != nil {
		*m.addbox_y += i
	} else {
		m.addbox_y = &i
	}
}

// AddedBoxY returns the value that was added to the "box_y" field in this mutation.
func (m *FaceRecordMutation) AddedBoxY() (r int, exists bool) {
	v := m.addbox_y
	if v == nil {
		return
	}
	return *v, true
}

// ResetBoxY resets all changes to the "box_y" field.
func (m *FaceRecordMutation) ResetBoxY() {
	m.box_y = nil
	m.addbox_y = nil
}

// SetBoxW sets the "box_w" field.
func (m *FaceRecordMutation) SetBoxW(i int) {
	m.box_w = &i
	m.addbox_w = nil
}

// BoxW returns the value of the "box_w" field in the mutation.
func (m *FaceRecordMutation) BoxW() (r int, exists bool) {
	v := m.box_w
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxW returns the old "box_w" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldBoxW(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxW is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxW requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxW: %w", err)
	}
	return oldValue.BoxW, nil
}

// AddBoxW adds i to the "box_w" field.
func (m *FaceRecordMutation) AddBoxW(i int) {
	if m.addbox_w != nil {
		*m.addbox_w += i
	} else {
		m.addbox_w = &i
	}
}

// AddedBoxW returns the value that was added to the "box_w" field in this mutation.
func (m *FaceRecordMutation) AddedBoxW() (r int, exists bool) {
	v := m.addbox_w
	if v == nil {
		return
	}
	return *v, true
}

// ResetBoxW resets all changes to the "box_w" field.
func (m *FaceRecordMutation) ResetBoxW() {
	m.box_w = nil
	m.addbox_w = nil
}

// SetBoxH sets the "box_h" field.
func (m *FaceRecordMutation) SetBoxH(i int) {
	m.box_h = &i
	m.addbox_h = nil
}

// BoxH returns the value of the "box_h" field in the mutation.
func (m *FaceRecordMutation) BoxH() (r int, exists bool) {
	v := m.box_h
	if v == nil {
		return
	}
	return *v, true
}

// OldBoxH returns the old "box_h" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldBoxH(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBoxH is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBoxH requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBoxH: %w", err)
	}
	return oldValue.BoxH, nil
}

// AddBoxH adds i to the "box_h" field.
func (m *FaceRecordMutation) AddBoxH(i int) {
	if m.addbox_h != nil {
		*m.addbox_h += i
	} else {
		m.addbox_h = &i
	}
}

// AddedBoxH returns the value that was added to the "box_h" field in this mutation.
func (m *FaceRecordMutation) AddedBoxH() (r int, exists bool) {
	v := m.addbox_h
	if v == nil {
		return
	}
	return *v, true
}

// ResetBoxH resets all changes to the "box_h" field.
func (m *FaceRecordMutation) ResetBoxH() {
	m.box_h = nil
	m.addbox_h = nil
}

// SetConfidence sets the "confidence" field.
func (m *FaceRecordMutation) SetConfidence(f float32) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *FaceRecordMutation) Confidence() (r float32, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *FaceRecordMutation) AddConfidence(f float32) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *FaceRecordMutation) AddedConfidence() (r float32, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *FaceRecordMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetQuality sets the "quality" field.
func (m *FaceRecordMutation) SetQuality(f float32) {
	m.quality = &f
	m.addquality = nil
}

// Quality returns the value of the "quality" field in the mutation.
func (m *FaceRecordMutation) Quality() (r float32, exists bool) {
	v := m.quality
	if v == nil {
		return
	}
	return *v, true
}

// OldQuality returns the old "quality" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldQuality(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuality: %w", err)
	}
	return oldValue.Quality, nil
}

// AddQuality adds f to the "quality" field.
func (m *FaceRecordMutation) AddQuality(f float32) {
	if m.addquality != nil {
		*m.addquality += f
	} else {
		m.addquality = &f
	}
}

// AddedQuality returns the value that was added to the "quality" field in this mutation.
func (m *FaceRecordMutation) AddedQuality() (r float32, exists bool) {
	v := m.addquality
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuality resets all changes to the "quality" field.
func (m *FaceRecordMutation) ResetQuality() {
	m.quality = nil
	m.addquality = nil
}

// SetIndexID sets the "index_id" field.
func (m *FaceRecordMutation) SetIndexID(s string) {
	m.index_id = &s
}

// IndexID returns the value of the "index_id" field in the mutation.
func (m *FaceRecordMutation) IndexID() (r string, exists bool) {
	v := m.index_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIndexID returns the old "index_id" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldIndexID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndexID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndexID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndexID: %w", err)
	}
	return oldValue.IndexID, nil
}

// ClearIndexID clears the value of the "index_id" field.
func (m *FaceRecordMutation) ClearIndexID() {
	m.index_id = nil
	m.clearedFields[facerecord.FieldIndexID] = struct{}{}
}

// IndexIDCleared returns if the "index_id" field was cleared in this mutation.
func (m *FaceRecordMutation) IndexIDCleared() bool {
	_, ok := m.clearedFields[facerecord.FieldIndexID]
	return ok
}

// ResetIndexID resets all changes to the "index_id" field.
func (m *FaceRecordMutation) ResetIndexID() {
	m.index_id = nil
	delete(m.clearedFields, facerecord.FieldIndexID)
}

// SetDetectedAt sets the "detected_at" field.
func (m *FaceRecordMutation) SetDetectedAt(t time.Time) {
	m.detected_at = &t
}

// DetectedAt returns the value of the "detected_at" field in the mutation.
func (m *FaceRecordMutation) DetectedAt() (r time.Time, exists bool) {
	v := m.detected_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectedAt returns the old "detected_at" field's value of the FaceRecord entity.
// If the FaceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FaceRecordMutation) OldDetectedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectedAt: %w", err)
	}
	return oldValue.DetectedAt, nil
}

// ResetDetectedAt resets all changes to the "detected_at" field.
func (m *FaceRecordMutation) ResetDetectedAt() {
	m.detected_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *FaceRecordMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[facerecord.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *FaceRecordMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *FaceRecordMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *FaceRecordMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the FaceRecordMutation builder.
func (m *FaceRecordMutation) Where(ps ...predicate.FaceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FaceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FaceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FaceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FaceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FaceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FaceRecord).
func (m *FaceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FaceRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document != nil {
		fields = append(fields, facerecord.FieldDocumentID)
	}
	if m.page_number != nil {
		fields = append(fields, facerecord.FieldPageNumber)
	}
	if m.box_x != nil {
		fields = append(fields, facerecord.FieldBoxX)
	}
	if m.box_y != nil {
		fields = append(fields, facerecord.FieldBoxY)
	}
	if m.box_w != nil {
		fields = append(fields, facerecord.FieldBoxW)
	}
	if m.box_h != nil {
		fields = append(fields, facerecord.FieldBoxH)
	}
	if m.confidence != nil {
		fields = append(fields, facerecord.FieldConfidence)
	}
	if m.quality != nil {
		fields = append(fields, facerecord.FieldQuality)
	}
	if m.index_id != nil {
		fields = append(fields, facerecord.FieldIndexID)
	}
	if m.detected_at != nil {
		fields = append(fields, facerecord.FieldDetectedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FaceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facerecord.FieldDocumentID:
		return m.DocumentID()
	case facerecord.FieldPageNumber:
		return m.PageNumber()
	case facerecord.FieldBoxX:
		return m.BoxX()
	case facerecord.FieldBoxY:
		return m.BoxY()
	case facerecord.FieldBoxW:
		return m.BoxW()
	case facerecord.FieldBoxH:
		return m.BoxH()
	case facerecord.FieldConfidence:
		return m.Confidence()
	case facerecord.FieldQuality:
		return m.Quality()
	case facerecord.FieldIndexID:
		return m.IndexID()
	case facerecord.FieldDetectedAt:
		return m.DetectedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FaceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facerecord.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case facerecord.FieldPageNumber:
		return m.OldPageNumber(ctx)
	case facerecord.FieldBoxX:
		return m.OldBoxX(ctx)
	case facerecord.FieldBoxY:
		return m.OldBoxY(ctx)
	case facerecord.FieldBoxW:
		return m.OldBoxW(ctx)
	case facerecord.FieldBoxH:
		return m.OldBoxH(ctx)
	case facerecord.FieldConfidence:
		return m.OldConfidence(ctx)
	case facerecord.FieldQuality:
		return m.OldQuality(ctx)
	case facerecord.FieldIndexID:
		return m.OldIndexID(ctx)
	case facerecord.FieldDetectedAt:
		return m.OldDetectedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FaceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FaceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facerecord.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case facerecord.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageNumber(v)
		return nil
	case facerecord.FieldBoxX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxX(v)
		return nil
	case facerecord.FieldBoxY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxY(v)
		return nil
	case facerecord.FieldBoxW:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxW(v)
		return nil
	case facerecord.FieldBoxH:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBoxH(v)
		return nil
	case facerecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case facerecord.FieldQuality:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuality(v)
		return nil
	case facerecord.FieldIndexID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndexID(v)
		return nil
	case facerecord.FieldDetectedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FaceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FaceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addpage_number != nil {
		fields = append(fields, facerecord.FieldPageNumber)
	}
	if m.addbox_x != nil {
		fields = append(fields, facerecord.FieldBoxX)
	}
	if m.addbox_y != nil {
		fields = append(fields, facerecord.FieldBoxY)
	}
	if m.addbox_w != nil {
		fields = append(fields, facerecord.FieldBoxW)
	}
	if m.addbox_h != nil {
		fields = append(fields, facerecord.FieldBoxH)
	}
	if m.addconfidence != nil {
		fields = append(fields, facerecord.FieldConfidence)
	}
	if m.addquality != nil {
		fields = append(fields, facerecord.FieldQuality)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FaceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case facerecord.FieldPageNumber:
		return m.AddedPageNumber()
	case facerecord.FieldBoxX:
		return m.AddedBoxX()
	case facerecord.FieldBoxY:
		return m.AddedBoxY()
	case facerecord.FieldBoxW:
		return m.AddedBoxW()
	case facerecord.FieldBoxH:
		return m.AddedBoxH()
	case facerecord.FieldConfidence:
		return m.AddedConfidence()
	case facerecord.FieldQuality:
		return m.AddedQuality()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FaceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case facerecord.FieldPageNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageNumber(v)
		return nil
	case facerecord.FieldBoxX:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxX(v)
		return nil
	case facerecord.FieldBoxY:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxY(v)
		return nil
	case facerecord.FieldBoxW:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxW(v)
		return nil
	case facerecord.FieldBoxH:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBoxH(v)
		return nil
	case facerecord.FieldConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case facerecord.FieldQuality:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuality(v)
		return nil
	}
	return fmt.Errorf("unknown FaceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FaceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(facerecord.FieldIndexID) {
		fields = append(fields, facerecord.FieldIndexID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FaceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FaceRecordMutation) ClearField(name string) error {
	switch name {
	case facerecord.FieldIndexID:
		m.ClearIndexID()
		return nil
	}
	return fmt.Errorf("unknown FaceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FaceRecordMutation) ResetField(name string) error {
	switch name {
	case facerecord.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case facerecord.FieldPageNumber:
		m.ResetPageNumber()
		return nil
	case facerecord.FieldBoxX:
		m.ResetBoxX()
		return nil
	case facerecord.FieldBoxY:
		m.ResetBoxY()
		return nil
	case facerecord.FieldBoxW:
		m.ResetBoxW()
		return nil
	case facerecord.FieldBoxH:
		m.ResetBoxH()
		return nil
	case facerecord.FieldConfidence:
		m.ResetConfidence()
		return nil
	case facerecord.FieldQuality:
		m.ResetQuality()
		return nil
	case facerecord.FieldIndexID:
		m.ResetIndexID()
		return nil
	case facerecord.FieldDetectedAt:
		m.ResetDetectedAt()
		return nil
	}
	return fmt.Errorf("unknown FaceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FaceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, facerecord.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FaceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facerecord.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FaceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FaceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FaceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, facerecord.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FaceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case facerecord.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FaceRecordMutation) ClearEdge(name string) error {
	switch name {
	case facerecord.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown FaceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FaceRecordMutation) ResetEdge(name string) error {
	switch name {
	case facerecord.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown FaceRecord edge %s", name)
}

// ProcessingFailureMutation represents an operation that mutates the ProcessingFailure nodes in the graph.
type ProcessingFailureMutation struct {
	config
	op                Op
	typ               string
	id                *int
	category          *string
	attempt_number    *int
	addattempt_number *int
	message           *string
	occurred_at       *time.Time
	clearedFields     map[string]struct{}
	document          *int
	cleareddocument   bool
	done              bool
	oldValue          func(context.Context) (*ProcessingFailure, error)
	predicates        []predicate.ProcessingFailure
}

var _ ent.Mutation = (*ProcessingFailureMutation)(nil)

// processingfailureOption allows management of the mutation configuration using functional options.
type processingfailureOption func(*ProcessingFailureMutation)

// newProcessingFailureMutation creates new mutation for the ProcessingFailure entity.
func newProcessingFailureMutation(c config, op Op, opts ...processingfailureOption) *ProcessingFailureMutation {
	m := &ProcessingFailureMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingFailure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingFailureID sets the ID field of the mutation.
func withProcessingFailureID(id int) processingfailureOption {
	return func(m *ProcessingFailureMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingFailure
		)
		m.oldValue = func(ctx context.Context) (*ProcessingFailure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingFailure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingFailure sets the old ProcessingFailure of the mutation.
func withProcessingFailure(node *ProcessingFailure) processingfailureOption {
	return func(m *ProcessingFailureMutation) {
		m.oldValue = func(context.Context) (*ProcessingFailure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingFailureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingFailureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingFailureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingFailureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingFailure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessingFailureMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessingFailureMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessingFailure entity.
// If the ProcessingFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingFailureMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessingFailureMutation) ResetDocumentID() {
	m.document = nil
}

// SetCategory sets the "category" field.
func (m *ProcessingFailureMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ProcessingFailureMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ProcessingFailure entity.
// If the ProcessingFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingFailureMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ProcessingFailureMutation) ResetCategory() {
	m.category = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *ProcessingFailureMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *ProcessingFailureMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the ProcessingFailure entity.
// If the ProcessingFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingFailureMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *ProcessingFailureMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *ProcessingFailureMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *ProcessingFailureMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetMessage sets the "message" field.
func (m *ProcessingFailureMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ProcessingFailureMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ProcessingFailure entity.
// If the ProcessingFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingFailureMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ProcessingFailureMutation) ResetMessage() {
	m.message = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *ProcessingFailureMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *ProcessingFailureMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the ProcessingFailure entity.
// If the ProcessingFailure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingFailureMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *ProcessingFailureMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ProcessingFailureMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[processingfailure.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ProcessingFailureMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ProcessingFailureMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ProcessingFailureMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ProcessingFailureMutation builder.
func (m *ProcessingFailureMutation) Where(ps ...predicate.ProcessingFailure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingFailureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingFailureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingFailure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingFailureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingFailureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingFailure).
func (m *ProcessingFailureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingFailureMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.document != nil {
		fields = append(fields, processingfailure.FieldDocumentID)
	}
	if m.category != nil {
		fields = append(fields, processingfailure.FieldCategory)
	}
	if m.attempt_number != nil {
		fields = append(fields, processingfailure.FieldAttemptNumber)
	}
	if m.message != nil {
		fields = append(fields, processingfailure.FieldMessage)
	}
	if m.occurred_at != nil {
		fields = append(fields, processingfailure.FieldOccurredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingFailureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processingfailure.FieldDocumentID:
		return m.DocumentID()
	case processingfailure.FieldCategory:
		return m.Category()
	case processingfailure.FieldAttemptNumber:
		return m.AttemptNumber()
	case processingfailure.FieldMessage:
		return m.Message()
	case processingfailure.FieldOccurredAt:
		return m.OccurredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingFailureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processingfailure.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processingfailure.FieldCategory:
		return m.OldCategory(ctx)
	case processingfailure.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case processingfailure.FieldMessage:
		return m.OldMessage(ctx)
	case processingfailure.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingFailure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingFailureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processingfailure.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processingfailure.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case processingfailure.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case processingfailure.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case processingfailure.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingFailure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingFailureMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, processingfailure.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingFailureMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processingfailure.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingFailureMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processingfailure.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingFailure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingFailureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingFailureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingFailureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProcessingFailure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingFailureMutation) ResetField(name string) error {
	switch name {
	case processingfailure.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processingfailure.FieldCategory:
		m.ResetCategory()
		return nil
	case processingfailure.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case processingfailure.FieldMessage:
		m.ResetMessage()
		return nil
	case processingfailure.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingFailure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingFailureMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, processingfailure.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingFailureMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processingfailure.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingFailureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingFailureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingFailureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, processingfailure.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingFailureMutation) EdgeCleared(name string) bool {
	switch name {
	case processingfailure.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingFailureMutation) ClearEdge(name string) error {
	switch name {
	case processingfailure.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingFailure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingFailureMutation) ResetEdge(name string) error {
	switch name {
	case processingfailure.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingFailure edge %s", name)
}

// SearchLogMutation represents an operation that mutates the SearchLog nodes in the graph.
type SearchLogMutation struct {
	config
	op              Op
	typ             string
	id              *int
	search_type     *string
	query_hash      *string
	scope           *string
	threshold       *float32
	addthreshold    *float32
	result_count    *int
	addresult_count *int
	elapsed_ms      *int64
	addelapsed_ms   *int64
	executed_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*SearchLog, error)
	predicates      []predicate.SearchLog
}

var _ ent.Mutation = (*SearchLogMutation)(nil)

// searchlogOption allows management of the mutation configuration using functional options.
type searchlogOption func(*SearchLogMutation)

// newSearchLogMutation creates new mutation for the SearchLog entity.
func newSearchLogMutation(c config, op Op, opts ...searchlogOption) *SearchLogMutation {
	m := &SearchLogMutation{
		config:        c,
		op:            op,
		typ:           TypeSearchLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSearchLogID sets the ID field of the mutation.
func withSearchLogID(id int) searchlogOption {
	return func(m *SearchLogMutation) {
		var (
			err   error
			once  sync.Once
			value *SearchLog
		)
		m.oldValue = func(ctx context.Context) (*SearchLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SearchLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSearchLog sets the old SearchLog of the mutation.
func withSearchLog(node *SearchLog) searchlogOption {
	return func(m *SearchLogMutation) {
		m.oldValue = func(context.Context) (*SearchLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SearchLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SearchLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SearchLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SearchLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SearchLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSearchType sets the "search_type" field.
func (m *SearchLogMutation) SetSearchType(s string) {
	m.search_type = &s
}

// SearchType returns the value of the "search_type" field in the mutation.
func (m *SearchLogMutation) SearchType() (r string, exists bool) {
	v := m.search_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSearchType returns the old "search_type" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldSearchType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSearchType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSearchType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSearchType: %w", err)
	}
	return oldValue.SearchType, nil
}

// ResetSearchType resets all changes to the "search_type" field.
func (m *SearchLogMutation) ResetSearchType() {
	m.search_type = nil
}

// SetQueryHash sets the "query_hash" field.
func (m *SearchLogMutation) SetQueryHash(s string) {
	m.query_hash = &s
}

// QueryHash returns the value of the "query_hash" field in the mutation.
func (m *SearchLogMutation) QueryHash() (r string, exists bool) {
	v := m.query_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryHash returns the old "query_hash" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldQueryHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryHash: %w", err)
	}
	return oldValue.QueryHash, nil
}

// ResetQueryHash resets all changes to the "query_hash" field.
func (m *SearchLogMutation) ResetQueryHash() {
	m.query_hash = nil
}

// SetScope sets the "scope" field.
func (m *SearchLogMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *SearchLogMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ClearScope clears the value of the "scope" field.
func (m *SearchLogMutation) ClearScope() {
	m.scope = nil
	m.clearedFields[searchlog.FieldScope] = struct{}{}
}

// ScopeCleared returns if the "scope" field was cleared in this mutation.
func (m *SearchLogMutation) ScopeCleared() bool {
	_, ok := m.clearedFields[searchlog.FieldScope]
	return ok
}

// ResetScope resets all changes to the "scope" field.
func (m *SearchLogMutation) ResetScope() {
	m.scope = nil
	delete(m.clearedFields, searchlog.FieldScope)
}

// SetThreshold sets the "threshold" field.
func (m *SearchLogMutation) SetThreshold(f float32) {
	m.threshold = &f
	m.addthreshold = nil
}

// Threshold returns the value of the "threshold" field in the mutation.
func (m *SearchLogMutation) Threshold() (r float32, exists bool) {
	v := m.threshold
	if v == nil {
		return
	}
	return *v, true
}

// OldThreshold returns the old "threshold" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldThreshold(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreshold is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreshold requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreshold: %w", err)
	}
	return oldValue.Threshold, nil
}

// AddThreshold adds f to the "threshold" field.
func (m *SearchLogMutation) AddThreshold(f float32) {
	if m.addthreshold != nil {
		*m.addthreshold += f
	} else {
		m.addthreshold = &f
	}
}

// AddedThreshold returns the value that was added to the "threshold" field in this mutation.
func (m *SearchLogMutation) AddedThreshold() (r float32, exists bool) {
	v := m.addthreshold
	if v == nil {
		return
	}
	return *v, true
}

// ClearThreshold clears the value of the "threshold" field.
func (m *SearchLogMutation) ClearThreshold() {
	m.threshold = nil
	m.addthreshold = nil
	m.clearedFields[searchlog.FieldThreshold] = struct{}{}
}

// ThresholdCleared returns if the "threshold" field was cleared in this mutation.
func (m *SearchLogMutation) ThresholdCleared() bool {
	_, ok := m.clearedFields[searchlog.FieldThreshold]
	return ok
}

// ResetThreshold resets all changes to the "threshold" field.
func (m *SearchLogMutation) ResetThreshold() {
	m.threshold = nil
	m.addthreshold = nil
	delete(m.clearedFields, searchlog.FieldThreshold)
}

// SetResultCount sets the "result_count" field.
func (m *SearchLogMutation) SetResultCount(i int) {
	m.result_count = &i
	m.addresult_count = nil
}

// ResultCount returns the value of the "result_count" field in the mutation.
func (m *SearchLogMutation) ResultCount() (r int, exists bool) {
	v := m.result_count
	if v == nil {
		return
	}
	return *v, true
}

// OldResultCount returns the old "result_count" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldResultCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultCount: %w", err)
	}
	return oldValue.ResultCount, nil
}

// AddResultCount adds i to the "result_count" field.
func (m *SearchLogMutation) AddResultCount(i int) {
	if m.addresult_count != nil {
		*m.addresult_count += i
	} else {
		m.addresult_count = &i
	}
}

// AddedResultCount returns the value that was added to the "result_count" field in this mutation.
func (m *SearchLogMutation) AddedResultCount() (r int, exists bool) {
	v := m.addresult_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetResultCount resets all changes to the "result_count" field.
func (m *SearchLogMutation) ResetResultCount() {
	m.result_count = nil
	m.addresult_count = nil
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *SearchLogMutation) SetElapsedMs(i int64) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *SearchLogMutation) ElapsedMs() (r int64, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldElapsedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *SearchLogMutation) AddElapsedMs(i int64) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *SearchLogMutation) AddedElapsedMs() (r int64, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *SearchLogMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
}

// SetExecutedAt sets the "executed_at" field.
func (m *SearchLogMutation) SetExecutedAt(t time.Time) {
	m.executed_at = &t
}

// ExecutedAt returns the value of the "executed_at" field in the mutation.
func (m *SearchLogMutation) ExecutedAt() (r time.Time, exists bool) {
	v := m.executed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutedAt returns the old "executed_at" field's value of the SearchLog entity.
// If the SearchLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SearchLogMutation) OldExecutedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutedAt: %w", err)
	}
	return oldValue.ExecutedAt, nil
}

// ResetExecutedAt resets all changes to the "executed_at" field.
func (m *SearchLogMutation) ResetExecutedAt() {
	m.executed_at = nil
}

// Where appends a list predicates to the SearchLogMutation builder.
func (m *SearchLogMutation) Where(ps ...predicate.SearchLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SearchLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SearchLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SearchLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SearchLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SearchLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SearchLog).
func (m *SearchLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SearchLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.search_type != nil {
		fields = append(fields, searchlog.FieldSearchType)
	}
	if m.query_hash != nil {
		fields = append(fields, searchlog.FieldQueryHash)
	}
	if m.scope != nil {
		fields = append(fields, searchlog.FieldScope)
	}
	if m.threshold != nil {
		fields = append(fields, searchlog.FieldThreshold)
	}
	if m.result_count != nil {
		fields = append(fields, searchlog.FieldResultCount)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, searchlog.FieldElapsedMs)
	}
	if m.executed_at != nil {
		fields = append(fields, searchlog.FieldExecutedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SearchLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case searchlog.FieldSearchType:
		return m.SearchType()
	case searchlog.FieldQueryHash:
		return m.QueryHash()
	case searchlog.FieldScope:
		return m.Scope()
	case searchlog.FieldThreshold:
		return m.Threshold()
	case searchlog.FieldResultCount:
		return m.ResultCount()
	case searchlog.FieldElapsedMs:
		return m.ElapsedMs()
	case searchlog.FieldExecutedAt:
		return m.ExecutedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SearchLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case searchlog.FieldSearchType:
		return m.OldSearchType(ctx)
	case searchlog.FieldQueryHash:
		return m.OldQueryHash(ctx)
	case searchlog.FieldScope:
		return m.OldScope(ctx)
	case searchlog.FieldThreshold:
		return m.OldThreshold(ctx)
	case searchlog.FieldResultCount:
		return m.OldResultCount(ctx)
	case searchlog.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	case searchlog.FieldExecutedAt:
		return m.OldExecutedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SearchLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case searchlog.FieldSearchType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSearchType(v)
		return nil
	case searchlog.FieldQueryHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryHash(v)
		return nil
	case searchlog.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case searchlog.FieldThreshold:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreshold(v)
		return nil
	case searchlog.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultCount(v)
		return nil
	case searchlog.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	case searchlog.FieldExecutedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SearchLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SearchLogMutation) AddedFields() []string {
	var fields []string
	if m.addthreshold != nil {
		fields = append(fields, searchlog.FieldThreshold)
	}
	if m.addresult_count != nil {
		fields = append(fields, searchlog.FieldResultCount)
	}
	if m.addelapsed_ms != nil {
		fields = append(fields, searchlog.FieldElapsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SearchLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case searchlog.FieldThreshold:
		return m.AddedThreshold()
	case searchlog.FieldResultCount:
		return m.AddedResultCount()
	case searchlog.FieldElapsedMs:
		return m.AddedElapsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SearchLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case searchlog.FieldThreshold:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddThreshold(v)
		return nil
	case searchlog.FieldResultCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResultCount(v)
		return nil
	case searchlog.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown SearchLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SearchLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(searchlog.FieldScope) {
		fields = append(fields, searchlog.FieldScope)
	}
	if m.FieldCleared(searchlog.FieldThreshold) {
		fields = append(fields, searchlog.FieldThreshold)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SearchLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SearchLogMutation) ClearField(name string) error {
	switch name {
	case searchlog.FieldScope:
		m.ClearScope()
		return nil
	case searchlog.FieldThreshold:
		m.ClearThreshold()
		return nil
	}
	return fmt.Errorf("unknown SearchLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SearchLogMutation) ResetField(name string) error {
	switch name {
	case searchlog.FieldSearchType:
		m.ResetSearchType()
		return nil
	case searchlog.FieldQueryHash:
		m.ResetQueryHash()
		return nil
	case searchlog.FieldScope:
		m.ResetScope()
		return nil
	case searchlog.FieldThreshold:
		m.ResetThreshold()
		return nil
	case searchlog.FieldResultCount:
		m.ResetResultCount()
		return nil
	case searchlog.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	case searchlog.FieldExecutedAt:
		m.ResetExecutedAt()
		return nil
	}
	return fmt.Errorf("unknown SearchLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SearchLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SearchLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SearchLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SearchLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SearchLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SearchLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SearchLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SearchLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SearchLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SearchLog edge %s", name)
}

// StructuredFieldsMutation represents an operation that mutates the StructuredFields nodes in the graph.
type StructuredFieldsMutation struct {
	config
	op              Op
	typ             string
	id              *int
	format          *string
	document_type   *string
	country_code    *string
	surname         *string
	given_names     *string
	document_number *string
	nationality     *string
	birth_date      *string
	sex             *string
	expiry_date     *string
	personal_number *string
	checksum_valid  *bool
	raw_lines       *[]string
	appendraw_lines []string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *int
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*StructuredFields, error)
	predicates      []predicate.StructuredFields
}

var _ ent.Mutation = (*StructuredFieldsMutation)(nil)

// structuredfieldsOption allows management of the mutation configuration using functional options.
type structuredfieldsOption func(*StructuredFieldsMutation)

// newStructuredFieldsMutation creates new mutation for the StructuredFields entity.
func newStructuredFieldsMutation(c config, op Op, opts ...structuredfieldsOption) *StructuredFieldsMutation {
	m := &StructuredFieldsMutation{
		config:        c,
		op:            op,
		typ:           TypeStructuredFields,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStructuredFieldsID sets the ID field of the mutation.
func withStructuredFieldsID(id int) structuredfieldsOption {
	return func(m *StructuredFieldsMutation) {
		var (
			err   error
			once  sync.Once
			value *StructuredFields
		)
		m.oldValue = func(ctx context.Context) (*StructuredFields, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StructuredFields.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStructuredFields sets the old StructuredFields of the mutation.
func withStructuredFields(node *StructuredFields) structuredfieldsOption {
	return func(m *StructuredFieldsMutation) {
		m.oldValue = func(context.Context) (*StructuredFields, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StructuredFieldsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StructuredFieldsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StructuredFieldsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StructuredFieldsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StructuredFields.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *StructuredFieldsMutation) SetDocumentID(i int) {
	m.document = &i
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *StructuredFieldsMutation) DocumentID() (r int, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldDocumentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *StructuredFieldsMutation) ResetDocumentID() {
	m.document = nil
}

// SetFormat sets the "format" field.
func (m *StructuredFieldsMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *StructuredFieldsMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *StructuredFieldsMutation) ResetFormat() {
	m.format = nil
}

// SetDocumentType sets the "document_type" field.
func (m *StructuredFieldsMutation) SetDocumentType(s string) {
	m.document_type = &s
}

// DocumentType returns the value of the "document_type" field in the mutation.
func (m *StructuredFieldsMutation) DocumentType() (r string, exists bool) {
	v := m.document_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentType returns the old "document_type" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldDocumentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentType: %w", err)
	}
	return oldValue.DocumentType, nil
}

// ClearDocumentType clears the value of the "document_type" field.
func (m *StructuredFieldsMutation) ClearDocumentType() {
	m.document_type = nil
	m.clearedFields[structuredfields.FieldDocumentType] = struct{}{}
}

// DocumentTypeCleared returns if the "document_type" field was cleared in this mutation.
func (m *StructuredFieldsMutation) DocumentTypeCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldDocumentType]
	return ok
}

// ResetDocumentType resets all changes to the "document_type" field.
func (m *StructuredFieldsMutation) ResetDocumentType() {
	m.document_type = nil
	delete(m.clearedFields, structuredfields.FieldDocumentType)
}

// SetCountryCode sets the "country_code" field.
func (m *StructuredFieldsMutation) SetCountryCode(s string) {
	m.country_code = &s
}

// CountryCode returns the value of the "country_code" field in the mutation.
func (m *StructuredFieldsMutation) CountryCode() (r string, exists bool) {
	v := m.country_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCountryCode returns the old "country_code" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldCountryCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountryCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountryCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountryCode: %w", err)
	}
	return oldValue.CountryCode, nil
}

// ClearCountryCode clears the value of the "country_code" field.
func (m *StructuredFieldsMutation) ClearCountryCode() {
	m.country_code = nil
	m.clearedFields[structuredfields.FieldCountryCode] = struct{}{}
}

// CountryCodeCleared returns if the "country_code" field was cleared in this mutation.
func (m *StructuredFieldsMutation) CountryCodeCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldCountryCode]
	return ok
}

// ResetCountryCode resets all changes to the "country_code" field.
func (m *StructuredFieldsMutation) ResetCountryCode() {
	m.country_code = nil
	delete(m.clearedFields, structuredfields.FieldCountryCode)
}

// SetSurname sets the "surname" field.
func (m *StructuredFieldsMutation) SetSurname(s string) {
	m.surname = &s
}

// Surname returns the value of the "surname" field in the mutation.
func (m *StructuredFieldsMutation) Surname() (r string, exists bool) {
	v := m.surname
	if v == nil {
		return
	}
	return *v, true
}

// OldSurname returns the old "surname" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldSurname(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSurname is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSurname requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSurname: %w", err)
	}
	return oldValue.Surname, nil
}

// ClearSurname clears the value of the "surname" field.
func (m *StructuredFieldsMutation) ClearSurname() {
	m.surname = nil
	m.clearedFields[structuredfields.FieldSurname] = struct{}{}
}

// SurnameCleared returns if the "surname" field was cleared in this mutation.
func (m *StructuredFieldsMutation) SurnameCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldSurname]
	return ok
}

// ResetSurname resets all changes to the "surname" field.
func (m *StructuredFieldsMutation) ResetSurname() {
	m.surname = nil
	delete(m.clearedFields, structuredfields.FieldSurname)
}

// SetGivenNames sets the "given_names" field.
func (m *StructuredFieldsMutation) SetGivenNames(s string) {
	m.given_names = &s
}

// GivenNames returns the value of the "given_names" field in the mutation.
func (m *StructuredFieldsMutation) GivenNames() (r string, exists bool) {
	v := m.given_names
	if v == nil {
		return
	}
	return *v, true
}

// OldGivenNames returns the old "given_names" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldGivenNames(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGivenNames is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGivenNames requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGivenNames: %w", err)
	}
	return oldValue.GivenNames, nil
}

// ClearGivenNames clears the value of the "given_names" field.
func (m *StructuredFieldsMutation) ClearGivenNames() {
	m.given_names = nil
	m.clearedFields[structuredfields.FieldGivenNames] = struct{}{}
}

// GivenNamesCleared returns if the "given_names" field was cleared in this mutation.
func (m *StructuredFieldsMutation) GivenNamesCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldGivenNames]
	return ok
}

// ResetGivenNames resets all changes to the "given_names" field.
func (m *StructuredFieldsMutation) ResetGivenNames() {
	m.given_names = nil
	delete(m.clearedFields, structuredfields.FieldGivenNames)
}

// SetDocumentNumber sets the "document_number" field.
func (m *StructuredFieldsMutation) SetDocumentNumber(s string) {
	m.document_number = &s
}

// DocumentNumber returns the value of the "document_number" field in the mutation.
func (m *StructuredFieldsMutation) DocumentNumber() (r string, exists bool) {
	v := m.document_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentNumber returns the old "document_number" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldDocumentNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentNumber: %w", err)
	}
	return oldValue.DocumentNumber, nil
}

// ClearDocumentNumber clears the value of the "document_number" field.
func (m *StructuredFieldsMutation) ClearDocumentNumber() {
	m.document_number = nil
	m.clearedFields[structuredfields.FieldDocumentNumber] = struct{}{}
}

// DocumentNumberCleared returns if the "document_number" field was cleared in this mutation.
func (m *StructuredFieldsMutation) DocumentNumberCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldDocumentNumber]
	return ok
}

// ResetDocumentNumber resets all changes to the "document_number" field.
func (m *StructuredFieldsMutation) ResetDocumentNumber() {
	m.document_number = nil
	delete(m.clearedFields, structuredfields.FieldDocumentNumber)
}

// SetNationality sets the "nationality" field.
func (m *StructuredFieldsMutation) SetNationality(s string) {
	m.nationality = &s
}

// Nationality returns the value of the "nationality" field in the mutation.
func (m *StructuredFieldsMutation) Nationality() (r string, exists bool) {
	v := m.nationality
	if v == nil {
		return
	}
	return *v, true
}

// OldNationality returns the old "nationality" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldNationality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNationality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNationality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNationality: %w", err)
	}
	return oldValue.Nationality, nil
}

// ClearNationality clears the value of the "nationality" field.
func (m *StructuredFieldsMutation) ClearNationality() {
	m.nationality = nil
	m.clearedFields[structuredfields.FieldNationality] = struct{}{}
}

// NationalityCleared returns if the "nationality" field was cleared in this mutation.
func (m *StructuredFieldsMutation) NationalityCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldNationality]
	return ok
}

// ResetNationality resets all changes to the "nationality" field.
func (m *StructuredFieldsMutation) ResetNationality() {
	m.nationality = nil
	delete(m.clearedFields, structuredfields.FieldNationality)
}

// SetBirthDate sets the "birth_date" field.
func (m *StructuredFieldsMutation) SetBirthDate(s string) {
	m.birth_date = &s
}

// BirthDate returns the value of the "birth_date" field in the mutation.
func (m *StructuredFieldsMutation) BirthDate() (r string, exists bool) {
	v := m.birth_date
	if v == nil {
		return
	}
	return *v, true
}

// OldBirthDate returns the old "birth_date" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldBirthDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBirthDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBirthDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBirthDate: %w", err)
	}
	return oldValue.BirthDate, nil
}

// ClearBirthDate clears the value of the "birth_date" field.
func (m *StructuredFieldsMutation) ClearBirthDate() {
	m.birth_date = nil
	m.clearedFields[structuredfields.FieldBirthDate] = struct{}{}
}

// BirthDateCleared returns if the "birth_date" field was cleared in this mutation.
func (m *StructuredFieldsMutation) BirthDateCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldBirthDate]
	return ok
}

// ResetBirthDate resets all changes to the "birth_date" field.
func (m *StructuredFieldsMutation) ResetBirthDate() {
	m.birth_date = nil
	delete(m.clearedFields, structuredfields.FieldBirthDate)
}

// SetSex sets the "sex" field.
func (m *StructuredFieldsMutation) SetSex(s string) {
	m.sex = &s
}

// Sex returns the value of the "sex" field in the mutation.
func (m *StructuredFieldsMutation) Sex() (r string, exists bool) {
	v := m.sex
	if v == nil {
		return
	}
	return *v, true
}

// OldSex returns the old "sex" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldSex(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSex: %w", err)
	}
	return oldValue.Sex, nil
}

// ClearSex clears the value of the "sex" field.
func (m *StructuredFieldsMutation) ClearSex() {
	m.sex = nil
	m.clearedFields[structuredfields.FieldSex] = struct{}{}
}

// SexCleared returns if the "sex" field was cleared in this mutation.
func (m *StructuredFieldsMutation) SexCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldSex]
	return ok
}

// ResetSex resets all changes to the "sex" field.
func (m *StructuredFieldsMutation) ResetSex() {
	m.sex = nil
	delete(m.clearedFields, structuredfields.FieldSex)
}

// SetExpiryDate sets the "expiry_date" field.
func (m *StructuredFieldsMutation) SetExpiryDate(s string) {
	m.expiry_date = &s
}

// ExpiryDate returns the value of the "expiry_date" field in the mutation.
func (m *StructuredFieldsMutation) ExpiryDate() (r string, exists bool) {
	v := m.expiry_date
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiryDate returns the old "expiry_date" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldExpiryDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiryDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiryDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiryDate: %w", err)
	}
	return oldValue.ExpiryDate, nil
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (m *StructuredFieldsMutation) ClearExpiryDate() {
	m.expiry_date = nil
	m.clearedFields[structuredfields.FieldExpiryDate] = struct{}{}
}

// ExpiryDateCleared returns if the "expiry_date" field was cleared in this mutation.
func (m *StructuredFieldsMutation) ExpiryDateCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldExpiryDate]
	return ok
}

// ResetExpiryDate resets all changes to the "expiry_date" field.
func (m *StructuredFieldsMutation) ResetExpiryDate() {
	m.expiry_date = nil
	delete(m.clearedFields, structuredfields.FieldExpiryDate)
}

// SetPersonalNumber sets the "personal_number" field.
func (m *StructuredFieldsMutation) SetPersonalNumber(s string) {
	m.personal_number = &s
}

// PersonalNumber returns the value of the "personal_number" field in the mutation.
func (m *StructuredFieldsMutation) PersonalNumber() (r string, exists bool) {
	v := m.personal_number
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonalNumber returns the old "personal_number" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldPersonalNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonalNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonalNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonalNumber: %w", err)
	}
	return oldValue.PersonalNumber, nil
}

// ClearPersonalNumber clears the value of the "personal_number" field.
func (m *StructuredFieldsMutation) ClearPersonalNumber() {
	m.personal_number = nil
	m.clearedFields[structuredfields.FieldPersonalNumber] = struct{}{}
}

// PersonalNumberCleared returns if the "personal_number" field was cleared in this mutation.
func (m *StructuredFieldsMutation) PersonalNumberCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldPersonalNumber]
	return ok
}

// ResetPersonalNumber resets all changes to the "personal_number" field.
func (m *StructuredFieldsMutation) ResetPersonalNumber() {
	m.personal_number = nil
	delete(m.clearedFields, structuredfields.FieldPersonalNumber)
}

// SetChecksumValid sets the "checksum_valid" field.
func (m *StructuredFieldsMutation) SetChecksumValid(b bool) {
	m.checksum_valid = &b
}

// ChecksumValid returns the value of the "checksum_valid" field in the mutation.
func (m *StructuredFieldsMutation) ChecksumValid() (r bool, exists bool) {
	v := m.checksum_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldChecksumValid returns the old "checksum_valid" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldChecksumValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChecksumValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChecksumValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChecksumValid: %w", err)
	}
	return oldValue.ChecksumValid, nil
}

// ResetChecksumValid resets all changes to the "checksum_valid" field.
func (m *StructuredFieldsMutation) ResetChecksumValid() {
	m.checksum_valid = nil
}

// SetRawLines sets the "raw_lines" field.
func (m *StructuredFieldsMutation) SetRawLines(s []string) {
	m.raw_lines = &s
	m.appendraw_lines = nil
}

// RawLines returns the value of the "raw_lines" field in the mutation.
func (m *StructuredFieldsMutation) RawLines() (r []string, exists bool) {
	v := m.raw_lines
	if v == nil {
		return
	}
	return *v, true
}

// OldRawLines returns the old "raw_lines" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldRawLines(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawLines is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawLines requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawLines: %w", err)
	}
	return oldValue.RawLines, nil
}

// AppendRawLines adds s to the "raw_lines" field.
func (m *StructuredFieldsMutation) AppendRawLines(s []string) {
	m.appendraw_lines = append(m.appendraw_lines, s...)
}

// AppendedRawLines returns the list of values that were appended to the "raw_lines" field in this mutation.
func (m *StructuredFieldsMutation) AppendedRawLines() ([]string, bool) {
	if len(m.appendraw_lines) == 0 {
		return nil, false
	}
	return m.appendraw_lines, true
}

// ClearRawLines clears the value of the "raw_lines" field.
func (m *StructuredFieldsMutation) ClearRawLines() {
	m.raw_lines = nil
	m.appendraw_lines = nil
	m.clearedFields[structuredfields.FieldRawLines] = struct{}{}
}

// RawLinesCleared returns if the "raw_lines" field was cleared in this mutation.
func (m *StructuredFieldsMutation) RawLinesCleared() bool {
	_, ok := m.clearedFields[structuredfields.FieldRawLines]
	return ok
}

// ResetRawLines resets all changes to the "raw_lines" field.
func (m *StructuredFieldsMutation) ResetRawLines() {
	m.raw_lines = nil
	m.appendraw_lines = nil
	delete(m.clearedFields, structuredfields.FieldRawLines)
}

// SetCreatedAt sets the "created_at" field.
func (m *StructuredFieldsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StructuredFieldsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StructuredFields entity.
// If the StructuredFields object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StructuredFieldsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StructuredFieldsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *StructuredFieldsMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[structuredfields.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *StructuredFieldsMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *StructuredFieldsMutation) DocumentIDs() (ids []int) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *StructuredFieldsMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the StructuredFieldsMutation builder.
func (m *StructuredFieldsMutation) Where(ps ...predicate.StructuredFields) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StructuredFieldsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StructuredFieldsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StructuredFields, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StructuredFieldsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StructuredFieldsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StructuredFields).
func (m *StructuredFieldsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StructuredFieldsMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.document != nil {
		fields = append(fields, structuredfields.FieldDocumentID)
	}
	if m.format != nil {
		fields = append(fields, structuredfields.FieldFormat)
	}
	if m.document_type != nil {
		fields = append(fields, structuredfields.FieldDocumentType)
	}
	if m.country_code != nil {
		fields = append(fields, structuredfields.FieldCountryCode)
	}
	if m.surname != nil {
		fields = append(fields, structuredfields.FieldSurname)
	}
	if m.given_names != nil {
		fields = append(fields, structuredfields.FieldGivenNames)
	}
	if m.document_number != nil {
		fields = append(fields, structuredfields.FieldDocumentNumber)
	}
	if m.nationality != nil {
		fields = append(fields, structuredfields.FieldNationality)
	}
	if m.birth_date != nil {
		fields = append(fields, structuredfields.FieldBirthDate)
	}
	if m.sex != nil {
		fields = append(fields, structuredfields.FieldSex)
	}
	if m.expiry_date != nil {
		fields = append(fields, structuredfields.FieldExpiryDate)
	}
	if m.personal_number != nil {
		fields = append(fields, structuredfields.FieldPersonalNumber)
	}
	if m.checksum_valid != nil {
		fields = append(fields, structuredfields.FieldChecksumValid)
	}
	if m.raw_lines != nil {
		fields = append(fields, structuredfields.FieldRawLines)
	}
	if m.created_at != nil {
		fields = append(fields, structuredfields.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StructuredFieldsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case structuredfields.FieldDocumentID:
		return m.DocumentID()
	case structuredfields.FieldFormat:
		return m.Format()
	case structuredfields.FieldDocumentType:
		return m.DocumentType()
	case structuredfields.FieldCountryCode:
		return m.CountryCode()
	case structuredfields.FieldSurname:
		return m.Surname()
	case structuredfields.FieldGivenNames:
		return m.GivenNames()
	case structuredfields.FieldDocumentNumber:
		return m.DocumentNumber()
	case structuredfields.FieldNationality:
		return m.Nationality()
	case structuredfields.FieldBirthDate:
		return m.BirthDate()
	case structuredfields.FieldSex:
		return m.Sex()
	case structuredfields.FieldExpiryDate:
		return m.ExpiryDate()
	case structuredfields.FieldPersonalNumber:
		return m.PersonalNumber()
	case structuredfields.FieldChecksumValid:
		return m.ChecksumValid()
	case structuredfields.FieldRawLines:
		return m.RawLines()
	case structuredfields.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StructuredFieldsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case structuredfields.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case structuredfields.FieldFormat:
		return m.OldFormat(ctx)
	case structuredfields.FieldDocumentType:
		return m.OldDocumentType(ctx)
	case structuredfields.FieldCountryCode:
		return m.OldCountryCode(ctx)
	case structuredfields.FieldSurname:
		return m.OldSurname(ctx)
	case structuredfields.FieldGivenNames:
		return m.OldGivenNames(ctx)
	case structuredfields.FieldDocumentNumber:
		return m.OldDocumentNumber(ctx)
	case structuredfields.FieldNationality:
		return m.OldNationality(ctx)
	case structuredfields.FieldBirthDate:
		return m.OldBirthDate(ctx)
	case structuredfields.FieldSex:
		return m.OldSex(ctx)
	case structuredfields.FieldExpiryDate:
		return m.OldExpiryDate(ctx)
	case structuredfields.FieldPersonalNumber:
		return m.OldPersonalNumber(ctx)
	case structuredfields.FieldChecksumValid:
		return m.OldChecksumValid(ctx)
	case structuredfields.FieldRawLines:
		return m.OldRawLines(ctx)
	case structuredfields.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StructuredFields field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StructuredFieldsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case structuredfields.FieldDocumentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case structuredfields.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case structuredfields.FieldDocumentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentType(v)
		return nil
	case structuredfields.FieldCountryCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountryCode(v)
		return nil
	case structuredfields.FieldSurname:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSurname(v)
		return nil
	case structuredfields.FieldGivenNames:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGivenNames(v)
		return nil
	case structuredfields.FieldDocumentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentNumber(v)
		return nil
	case structuredfields.FieldNationality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNationality(v)
		return nil
	case structuredfields.FieldBirthDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBirthDate(v)
		return nil
	case structuredfields.FieldSex:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSex(v)
		return nil
	case structuredfields.FieldExpiryDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiryDate(v)
		return nil
	case structuredfields.FieldPersonalNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonalNumber(v)
		return nil
	case structuredfields.FieldChecksumValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChecksumValid(v)
		return nil
	case structuredfields.FieldRawLines:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawLines(v)
		return nil
	case structuredfields.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StructuredFields field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StructuredFieldsMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StructuredFieldsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StructuredFieldsMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown StructuredFields numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StructuredFieldsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(structuredfields.FieldDocumentType) {
		fields = append(fields, structuredfields.FieldDocumentType)
	}
	if m.FieldCleared(structuredfields.FieldCountryCode) {
		fields = append(fields, structuredfields.FieldCountryCode)
	}
	if m.FieldCleared(structuredfields.FieldSurname) {
		fields = append(fields, structuredfields.FieldSurname)
	}
	if m.FieldCleared(structuredfields.FieldGivenNames) {
		fields = append(fields, structuredfields.FieldGivenNames)
	}
	if m.FieldCleared(structuredfields.FieldDocumentNumber) {
		fields = append(fields, structuredfields.FieldDocumentNumber)
	}
	if m.FieldCleared(structuredfields.FieldNationality) {
		fields = append(fields, structuredfields.FieldNationality)
	}
	if m.FieldCleared(structuredfields.FieldBirthDate) {
		fields = append(fields, structuredfields.FieldBirthDate)
	}
	if m.FieldCleared(structuredfields.FieldSex) {
		fields = append(fields, structuredfields.FieldSex)
	}
	if m.FieldCleared(structuredfields.FieldExpiryDate) {
		fields = append(fields, structuredfields.FieldExpiryDate)
	}
	if m.FieldCleared(structuredfields.FieldPersonalNumber) {
		fields = append(fields, structuredfields.FieldPersonalNumber)
	}
	if m.FieldCleared(structuredfields.FieldRawLines) {
		fields = append(fields, structuredfields.FieldRawLines)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StructuredFieldsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StructuredFieldsMutation) ClearField(name string) error {
	switch name {
	case structuredfields.FieldDocumentType:
		m.ClearDocumentType()
		return nil
	case structuredfields.FieldCountryCode:
		m.ClearCountryCode()
		return nil
	case structuredfields.FieldSurname:
		m.ClearSurname()
		return nil
	case structuredfields.FieldGivenNames:
		m.ClearGivenNames()
		return nil
	case structuredfields.FieldDocumentNumber:
		m.ClearDocumentNumber()
		return nil
	case structuredfields.FieldNationality:
		m.ClearNationality()
		return nil
	case structuredfields.FieldBirthDate:
		m.ClearBirthDate()
		return nil
	case structuredfields.FieldSex:
		m.ClearSex()
		return nil
	case structuredfields.FieldExpiryDate:
		m.ClearExpiryDate()
		return nil
	case structuredfields.FieldPersonalNumber:
		m.ClearPersonalNumber()
		return nil
	case structuredfields.FieldRawLines:
		m.ClearRawLines()
		return nil
	}
	return fmt.Errorf("unknown StructuredFields nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StructuredFieldsMutation) ResetField(name string) error {
	switch name {
	case structuredfields.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case structuredfields.FieldFormat:
		m.ResetFormat()
		return nil
	case structuredfields.FieldDocumentType:
		m.ResetDocumentType()
		return nil
	case structuredfields.FieldCountryCode:
		m.ResetCountryCode()
		return nil
	case structuredfields.FieldSurname:
		m.ResetSurname()
		return nil
	case structuredfields.FieldGivenNames:
		m.ResetGivenNames()
		return nil
	case structuredfields.FieldDocumentNumber:
		m.ResetDocumentNumber()
		return nil
	case structuredfields.FieldNationality:
		m.ResetNationality()
		return nil
	case structuredfields.FieldBirthDate:
		m.ResetBirthDate()
		return nil
	case structuredfields.FieldSex:
		m.ResetSex()
		return nil
	case structuredfields.FieldExpiryDate:
		m.ResetExpiryDate()
		return nil
	case structuredfields.FieldPersonalNumber:
		m.ResetPersonalNumber()
		return nil
	case structuredfields.FieldChecksumValid:
		m.ResetChecksumValid()
		return nil
	case structuredfields.FieldRawLines:
		m.ResetRawLines()
		return nil
	case structuredfields.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StructuredFields field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StructuredFieldsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, structuredfields.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StructuredFieldsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case structuredfields.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StructuredFieldsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StructuredFieldsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StructuredFieldsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, structuredfields.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StructuredFieldsMutation) EdgeCleared(name string) bool {
	switch name {
	case structuredfields.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StructuredFieldsMutation) ClearEdge(name string) error {
	switch name {
	case structuredfields.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown StructuredFields unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StructuredFieldsMutation) ResetEdge(name string) error {
	switch name {
	case structuredfields.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown StructuredFields edge %s", name)
}
