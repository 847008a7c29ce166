package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	entdoc "github.com/scanworks/scanvault/gen/ent/document"
	entattempt "github.com/scanworks/scanvault/gen/ent/extractionattempt"
	entface "github.com/scanworks/scanvault/gen/ent/facerecord"
	entfailure "github.com/scanworks/scanvault/gen/ent/processingfailure"
	entfields "github.com/scanworks/scanvault/gen/ent/structuredfields"
)

// CreateDocumentParams carries everything needed to register an upload.
type CreateDocumentParams struct {
	ContentHash []byte
	SourcePath  string
	Filename    string
	FileKind    constants.FileKind
	FileSize    int64
	UploadedAt  time.Time
}

type DocumentRepository interface {
	GetByID(ctx context.Context, id int) (*ent.Document, error)
	GetByHash(ctx context.Context, hash []byte) (*ent.Document, error)
	Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error)
	// UpsertByHash returns the existing document for a known fingerprint
	// (dedup=true) instead of creating a second row.
	UpsertByHash(ctx context.Context, p CreateDocumentParams) (*ent.Document, bool, error)
	List(ctx context.Context, status string, limit, offset int) ([]*ent.Document, int, error)
	ListIDsByStatuses(ctx context.Context, statuses []string) ([]int, error)
	SetStatus(ctx context.Context, id int, status constants.ProcessingStatus) error
	SetPageCount(ctx context.Context, id, pages int) error
	SetHasStructuredFields(ctx context.Context, id int, v bool) error
	BumpVersion(ctx context.Context, id int) error
	// Delete removes the document and everything it owns.
	Delete(ctx context.Context, id int) error
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *documentRepo) GetByID(ctx context.Context, id int) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

func (r *documentRepo) GetByHash(ctx context.Context, hash []byte) (*ent.Document, error) {
	row, err := r.ent.Document.Query().
		Where(entdoc.ContentHash(hash)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) Create(ctx context.Context, p CreateDocumentParams) (*ent.Document, error) {
	row, err := r.ent.Document.Create().
		SetContentHash(p.ContentHash).
		SetSourcePath(p.SourcePath).
		SetFilename(p.Filename).
		SetFileKind(string(p.FileKind)).
		SetFileSize(p.FileSize).
		SetUploadedAt(p.UploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "source_path", p.SourcePath, "filename", p.Filename, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *documentRepo) UpsertByHash(ctx context.Context, p CreateDocumentParams) (*ent.Document, bool, error) {
	if existing, err := r.GetByHash(ctx, p.ContentHash); err == nil {
		return existing, true, nil
	} else if !ent.IsNotFound(err) {
		r.logger.Error("failed to query document by hash", "error", err)
		return nil, false, err
	}
	row, err := r.Create(ctx, p)
	if err != nil {
		return nil, false, err
	}
	return row, false, nil
}

func (r *documentRepo) List(ctx context.Context, status string, limit, offset int) ([]*ent.Document, int, error) {
	q := r.ent.Document.Query()
	if status != "" {
		q = q.Where(entdoc.ProcessingStatus(status))
	}
	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count documents", "error", err)
		return nil, 0, err
	}
	rows, err := q.
		Order(entdoc.ByUploadedAt(entsql.OrderDesc())).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "error", err)
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *documentRepo) ListIDsByStatuses(ctx context.Context, statuses []string) ([]int, error) {
	ids, err := r.ent.Document.Query().
		Where(entdoc.ProcessingStatusIn(statuses...)).
		Order(entdoc.ByID()).
		IDs(ctx)
	if err != nil {
		r.logger.Error("failed to list document ids by status", "statuses", statuses, "error", err)
		return nil, err
	}
	return ids, nil
}

func (r *documentRepo) SetStatus(ctx context.Context, id int, status constants.ProcessingStatus) error {
	err := r.ent.Document.UpdateOneID(id).
		SetProcessingStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update document status", "document_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("document status updated", "document_id", id, "status", status)
	return nil
}

func (r *documentRepo) SetPageCount(ctx context.Context, id, pages int) error {
	err := r.ent.Document.UpdateOneID(id).
		SetPageCount(pages).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set page count", "document_id", id, "pages", pages, "error", err)
	}
	return err
}

func (r *documentRepo) SetHasStructuredFields(ctx context.Context, id int, v bool) error {
	err := r.ent.Document.UpdateOneID(id).
		SetHasStructuredFields(v).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set structured fields flag", "document_id", id, "error", err)
	}
	return err
}

func (r *documentRepo) BumpVersion(ctx context.Context, id int) error {
	err := r.ent.Document.UpdateOneID(id).
		AddVersionNumber(1).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to bump document version", "document_id", id, "error", err)
	}
	return err
}

// Delete removes the document row and all rows it owns. Order matters only
// for readability; each child table is keyed by document_id.
func (r *documentRepo) Delete(ctx context.Context, id int) error {
	if _, err := r.ent.ExtractionAttempt.Delete().Where(entattempt.DocumentID(id)).Exec(ctx); err != nil {
		r.logger.Error("failed to delete attempts", "document_id", id, "error", err)
		return err
	}
	if _, err := r.ent.StructuredFields.Delete().Where(entfields.DocumentID(id)).Exec(ctx); err != nil {
		r.logger.Error("failed to delete structured fields", "document_id", id, "error", err)
		return err
	}
	if _, err := r.ent.FaceRecord.Delete().Where(entface.DocumentID(id)).Exec(ctx); err != nil {
		r.logger.Error("failed to delete face records", "document_id", id, "error", err)
		return err
	}
	if _, err := r.ent.ProcessingFailure.Delete().Where(entfailure.DocumentID(id)).Exec(ctx); err != nil {
		r.logger.Error("failed to delete processing failures", "document_id", id, "error", err)
		return err
	}
	if err := r.ent.Document.DeleteOneID(id).Exec(ctx); err != nil {
		r.logger.Error("failed to delete document", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("document deleted", "document_id", id)
	return nil
}
