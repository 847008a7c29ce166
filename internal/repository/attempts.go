package repository

import (
	"context"
	"log/slog"

	"github.com/scanworks/scanvault/gen/ent"
	entattempt "github.com/scanworks/scanvault/gen/ent/extractionattempt"
	"github.com/scanworks/scanvault/internal/entity"
)

// RecordAttemptParams is one extraction attempt, successful or not.
type RecordAttemptParams struct {
	AttemptNumber int
	Succeeded     bool
	FullText      string
	Blocks        []entity.TextBlock
	Language      string
	Confidence    float32
	Engine        string
	ElapsedMS     int64
}

type AttemptRepository interface {
	Record(ctx context.Context, documentID int, p RecordAttemptParams) (*ent.ExtractionAttempt, error)
	// Authoritative returns the succeeded attempt for a document, if any.
	Authoritative(ctx context.Context, documentID int) (*ent.ExtractionAttempt, error)
	ListForDocument(ctx context.Context, documentID int) ([]*ent.ExtractionAttempt, error)
	DeleteForDocument(ctx context.Context, documentID int) (int, error)
}

type attemptRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAttemptRepository(entc *ent.Client, logger *slog.Logger) AttemptRepository {
	return &attemptRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *attemptRepo) Record(ctx context.Context, documentID int, p RecordAttemptParams) (*ent.ExtractionAttempt, error) {
	create := r.ent.ExtractionAttempt.Create().
		SetDocumentID(documentID).
		SetAttemptNumber(p.AttemptNumber).
		SetSucceeded(p.Succeeded).
		SetConfidence(p.Confidence).
		SetEngine(p.Engine).
		SetElapsedMs(p.ElapsedMS)
	if p.FullText != "" {
		create = create.SetFullText(p.FullText)
	}
	if len(p.Blocks) > 0 {
		create = create.SetBlocks(p.Blocks)
	}
	if p.Language != "" {
		create = create.SetLanguage(p.Language)
	}
	row, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to record extraction attempt",
			"document_id", documentID, "attempt", p.AttemptNumber, "error", err)
		return nil, err
	}
	return row, nil
}

func (r *attemptRepo) Authoritative(ctx context.Context, documentID int) (*ent.ExtractionAttempt, error) {
	row, err := r.ent.ExtractionAttempt.Query().
		Where(
			entattempt.DocumentID(documentID),
			entattempt.Succeeded(true),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *attemptRepo) ListForDocument(ctx context.Context, documentID int) ([]*ent.ExtractionAttempt, error) {
	rows, err := r.ent.ExtractionAttempt.Query().
		Where(entattempt.DocumentID(documentID)).
		Order(entattempt.ByAttemptNumber()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list attempts", "document_id", documentID, "error", err)
		return nil, err
	}
	return rows, nil
}

func (r *attemptRepo) DeleteForDocument(ctx context.Context, documentID int) (int, error) {
	n, err := r.ent.ExtractionAttempt.Delete().
		Where(entattempt.DocumentID(documentID)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to delete attempts", "document_id", documentID, "error", err)
		return 0, err
	}
	return n, nil
}
