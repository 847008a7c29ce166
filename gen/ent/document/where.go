// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/scanworks/scanvault/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// SourcePath applies equality check predicate on the "source_path" field. It's identical to SourcePathEQ.
func SourcePath(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FileKind applies equality check predicate on the "file_kind" field. It's identical to FileKindEQ.
func FileKind(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileKind, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// ProcessingStatus applies equality check predicate on the "processing_status" field. It's identical to ProcessingStatusEQ.
func ProcessingStatus(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStatus, v))
}

// VersionNumber applies equality check predicate on the "version_number" field. It's identical to VersionNumberEQ.
func VersionNumber(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersionNumber, v))
}

// ParentDocumentID applies equality check predicate on the "parent_document_id" field. It's identical to ParentDocumentIDEQ.
func ParentDocumentID(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldParentDocumentID, v))
}

// PageCount applies equality check predicate on the "page_count" field. It's identical to PageCountEQ.
func PageCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// HasStructuredFields applies equality check predicate on the "has_structured_fields" field. It's identical to HasStructuredFieldsEQ.
func HasStructuredFields(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldHasStructuredFields, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v []byte) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...[]byte) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v []byte) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// SourcePathEQ applies the EQ predicate on the "source_path" field.
func SourcePathEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourcePath, v))
}

// SourcePathNEQ applies the NEQ predicate on the "source_path" field.
func SourcePathNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourcePath, v))
}

// SourcePathIn applies the In predicate on the "source_path" field.
func SourcePathIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourcePath, vs...))
}

// SourcePathNotIn applies the NotIn predicate on the "source_path" field.
func SourcePathNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourcePath, vs...))
}

// SourcePathGT applies the GT predicate on the "source_path" field.
func SourcePathGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourcePath, v))
}

// SourcePathGTE applies the GTE predicate on the "source_path" field.
func SourcePathGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourcePath, v))
}

// SourcePathLT applies the LT predicate on the "source_path" field.
func SourcePathLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourcePath, v))
}

// SourcePathLTE applies the LTE predicate on the "source_path" field.
func SourcePathLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourcePath, v))
}

// SourcePathContains applies the Contains predicate on the "source_path" field.
func SourcePathContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourcePath, v))
}

// SourcePathHasPrefix applies the HasPrefix predicate on the "source_path" field.
func SourcePathHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourcePath, v))
}

// SourcePathHasSuffix applies the HasSuffix predicate on the "source_path" field.
func SourcePathHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourcePath, v))
}

// SourcePathEqualFold applies the EqualFold predicate on the "source_path" field.
func SourcePathEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourcePath, v))
}

// SourcePathContainsFold applies the ContainsFold predicate on the "source_path" field.
func SourcePathContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourcePath, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFilename, v))
}

// FileKindEQ applies the EQ predicate on the "file_kind" field.
func FileKindEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileKind, v))
}

// FileKindNEQ applies the NEQ predicate on the "file_kind" field.
func FileKindNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileKind, v))
}

// FileKindIn applies the In predicate on the "file_kind" field.
func FileKindIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileKind, vs...))
}

// FileKindNotIn applies the NotIn predicate on the "file_kind" field.
func FileKindNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileKind, vs...))
}

// FileKindGT applies the GT predicate on the "file_kind" field.
func FileKindGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileKind, v))
}

// FileKindGTE applies the GTE predicate on the "file_kind" field.
func FileKindGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileKind, v))
}

// FileKindLT applies the LT predicate on the "file_kind" field.
func FileKindLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileKind, v))
}

// FileKindLTE applies the LTE predicate on the "file_kind" field.
func FileKindLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileKind, v))
}

// FileKindContains applies the Contains predicate on the "file_kind" field.
func FileKindContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldFileKind, v))
}

// FileKindHasPrefix applies the HasPrefix predicate on the "file_kind" field.
func FileKindHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldFileKind, v))
}

// FileKindHasSuffix applies the HasSuffix predicate on the "file_kind" field.
func FileKindHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldFileKind, v))
}

// FileKindEqualFold applies the EqualFold predicate on the "file_kind" field.
func FileKindEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldFileKind, v))
}

// FileKindContainsFold applies the ContainsFold predicate on the "file_kind" field.
func FileKindContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldFileKind, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldFileSize, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUploadedAt, v))
}

// ProcessingStatusEQ applies the EQ predicate on the "processing_status" field.
func ProcessingStatusEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStatus, v))
}

// ProcessingStatusNEQ applies the NEQ predicate on the "processing_status" field.
func ProcessingStatusNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingStatus, v))
}

// ProcessingStatusIn applies the In predicate on the "processing_status" field.
func ProcessingStatusIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusNotIn applies the NotIn predicate on the "processing_status" field.
func ProcessingStatusNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingStatus, vs...))
}

// ProcessingStatusGT applies the GT predicate on the "processing_status" field.
func ProcessingStatusGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldProcessingStatus, v))
}

// ProcessingStatusGTE applies the GTE predicate on the "processing_status" field.
func ProcessingStatusGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldProcessingStatus, v))
}

// ProcessingStatusLT applies the LT predicate on the "processing_status" field.
func ProcessingStatusLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldProcessingStatus, v))
}

// ProcessingStatusLTE applies the LTE predicate on the "processing_status" field.
func ProcessingStatusLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldProcessingStatus, v))
}

// ProcessingStatusContains applies the Contains predicate on the "processing_status" field.
func ProcessingStatusContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldProcessingStatus, v))
}

// ProcessingStatusHasPrefix applies the HasPrefix predicate on the "processing_status" field.
func ProcessingStatusHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldProcessingStatus, v))
}

// ProcessingStatusHasSuffix applies the HasSuffix predicate on the "processing_status" field.
func ProcessingStatusHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldProcessingStatus, v))
}

// ProcessingStatusEqualFold applies the EqualFold predicate on the "processing_status" field.
func ProcessingStatusEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldProcessingStatus, v))
}

// ProcessingStatusContainsFold applies the ContainsFold predicate on the "processing_status" field.
func ProcessingStatusContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldProcessingStatus, v))
}

// VersionNumberEQ applies the EQ predicate on the "version_number" field.
func VersionNumberEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldVersionNumber, v))
}

// VersionNumberNEQ applies the NEQ predicate on the "version_number" field.
func VersionNumberNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldVersionNumber, v))
}

// VersionNumberIn applies the In predicate on the "version_number" field.
func VersionNumberIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldVersionNumber, vs...))
}

// VersionNumberNotIn applies the NotIn predicate on the "version_number" field.
func VersionNumberNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldVersionNumber, vs...))
}

// VersionNumberGT applies the GT predicate on the "version_number" field.
func VersionNumberGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldVersionNumber, v))
}

// VersionNumberGTE applies the GTE predicate on the "version_number" field.
func VersionNumberGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldVersionNumber, v))
}

// VersionNumberLT applies the LT predicate on the "version_number" field.
func VersionNumberLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldVersionNumber, v))
}

// VersionNumberLTE applies the LTE predicate on the "version_number" field.
func VersionNumberLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldVersionNumber, v))
}

// ParentDocumentIDEQ applies the EQ predicate on the "parent_document_id" field.
func ParentDocumentIDEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldParentDocumentID, v))
}

// ParentDocumentIDNEQ applies the NEQ predicate on the "parent_document_id" field.
func ParentDocumentIDNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldParentDocumentID, v))
}

// ParentDocumentIDIn applies the In predicate on the "parent_document_id" field.
func ParentDocumentIDIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldParentDocumentID, vs...))
}

// ParentDocumentIDNotIn applies the NotIn predicate on the "parent_document_id" field.
func ParentDocumentIDNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldParentDocumentID, vs...))
}

// ParentDocumentIDIsNil applies the IsNil predicate on the "parent_document_id" field.
func ParentDocumentIDIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldParentDocumentID))
}

// ParentDocumentIDNotNil applies the NotNil predicate on the "parent_document_id" field.
func ParentDocumentIDNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldParentDocumentID))
}

// PageCountEQ applies the EQ predicate on the "page_count" field.
func PageCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldPageCount, v))
}

// PageCountNEQ applies the NEQ predicate on the "page_count" field.
func PageCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldPageCount, v))
}

// PageCountIn applies the In predicate on the "page_count" field.
func PageCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldPageCount, vs...))
}

// PageCountNotIn applies the NotIn predicate on the "page_count" field.
func PageCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldPageCount, vs...))
}

// PageCountGT applies the GT predicate on the "page_count" field.
func PageCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldPageCount, v))
}

// PageCountGTE applies the GTE predicate on the "page_count" field.
func PageCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldPageCount, v))
}

// PageCountLT applies the LT predicate on the "page_count" field.
func PageCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldPageCount, v))
}

// PageCountLTE applies the LTE predicate on the "page_count" field.
func PageCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldPageCount, v))
}

// HasStructuredFieldsEQ applies the EQ predicate on the "has_structured_fields" field.
func HasStructuredFieldsEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldHasStructuredFields, v))
}

// HasStructuredFieldsNEQ applies the NEQ predicate on the "has_structured_fields" field.
func HasStructuredFieldsNEQ(v bool) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldHasStructuredFields, v))
}

// HasAttempts applies the HasEdge predicate on the "attempts" edge.
func HasAttempts() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AttemptsTable, AttemptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAttemptsWith applies the HasEdge predicate on the "attempts" edge with a given conditions (other predicates).
func HasAttemptsWith(preds ...predicate.ExtractionAttempt) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newAttemptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFaces applies the HasEdge predicate on the "faces" edge.
func HasFaces() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FacesTable, FacesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFacesWith applies the HasEdge predicate on the "faces" edge with a given conditions (other predicates).
func HasFacesWith(preds ...predicate.FaceRecord) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newFacesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFailures applies the HasEdge predicate on the "failures" edge.
func HasFailures() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FailuresTable, FailuresColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFailuresWith applies the HasEdge predicate on the "failures" edge with a given conditions (other predicates).
func HasFailuresWith(preds ...predicate.ProcessingFailure) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newFailuresStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFields applies the HasEdge predicate on the "fields" edge.
func HasFields() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, FieldsTable, FieldsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFieldsWith applies the HasEdge predicate on the "fields" edge with a given conditions (other predicates).
func HasFieldsWith(preds ...predicate.StructuredFields) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newFieldsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParent applies the HasEdge predicate on the "parent" edge.
func HasParent() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParentWith applies the HasEdge predicate on the "parent" edge with a given conditions (other predicates).
func HasParentWith(preds ...predicate.Document) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newParentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRevisions applies the HasEdge predicate on the "revisions" edge.
func HasRevisions() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RevisionsTable, RevisionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRevisionsWith applies the HasEdge predicate on the "revisions" edge with a given conditions (other predicates).
func HasRevisionsWith(preds ...predicate.Document) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newRevisionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
