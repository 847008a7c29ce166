package repository

import (
	"context"
	"log/slog"

	"github.com/scanworks/scanvault/gen/ent"
	entface "github.com/scanworks/scanvault/gen/ent/facerecord"
	"github.com/scanworks/scanvault/internal/entity"
)

// CreateFaceParams is one detected face on a page image.
type CreateFaceParams struct {
	PageNumber int
	Box        entity.FaceBox
	Confidence float32
	Quality    float32
}

type FaceRepository interface {
	Create(ctx context.Context, documentID int, p CreateFaceParams) (*ent.FaceRecord, error)
	// SetIndexID links the row to its embedding entry in the external index.
	SetIndexID(ctx context.Context, id int, indexID string) error
	GetByID(ctx context.Context, id int) (*ent.FaceRecord, error)
	ListForDocument(ctx context.Context, documentID int) ([]*ent.FaceRecord, error)
	DeleteForDocument(ctx context.Context, documentID int) (int, error)
}

type faceRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFaceRepository(entc *ent.Client, logger *slog.Logger) FaceRepository {
	return &faceRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *faceRepo) Create(ctx context.Context, documentID int, p CreateFaceParams) (*ent.FaceRecord, error) {
	row, err := r.ent.FaceRecord.Create().
		SetDocumentID(documentID).
		SetPageNumber(p.PageNumber).
		SetBoxX(p.Box.X).
		SetBoxY(p.Box.Y).
		SetBoxW(p.Box.W).
		SetBoxH(p.Box.H).
		SetConfidence(p.Confidence).
		SetQuality(p.Quality).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create face record", "document_id", documentID, "page", p.PageNumber, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *faceRepo) SetIndexID(ctx context.Context, id int, indexID string) error {
	err := r.ent.FaceRecord.UpdateOneID(id).
		SetIndexID(indexID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set face index id", "face_id", id, "index_id", indexID, "error", err)
	}
	return err
}

func (r *faceRepo) GetByID(ctx context.Context, id int) (*ent.FaceRecord, error) {
	return r.ent.FaceRecord.Get(ctx, id)
}

func (r *faceRepo) ListForDocument(ctx context.Context, documentID int) ([]*ent.FaceRecord, error) {
	rows, err := r.ent.FaceRecord.Query().
		Where(entface.DocumentID(documentID)).
		Order(entface.ByPageNumber(), entface.ByID()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list face records", "document_id", documentID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *faceRepo) DeleteForDocument(ctx context.Context, documentID int) (int, error) {
	n, err := r.ent.FaceRecord.Delete().
		Where(entface.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete face records", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}
