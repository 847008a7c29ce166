package repository

import (
	"context"
	"log/slog"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	entfailure "github.com/scanworks/scanvault/gen/ent/processingfailure"
)

// FailureRepository is the append-only processing failure log. Rows are only
// ever removed by the document cascade delete.
type FailureRepository interface {
	Record(ctx context.Context, documentID int, category constants.FailureCategory, attempt int, message string) error
	ListForDocument(ctx context.Context, documentID int) ([]*ent.ProcessingFailure, error)
}

type failureRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewFailureRepository(entc *ent.Client, logger *slog.Logger) FailureRepository {
	return &failureRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *failureRepo) Record(ctx context.Context, documentID int, category constants.FailureCategory, attempt int, message string) error {
	err := r.ent.ProcessingFailure.Create().
		SetDocumentID(documentID).
		SetCategory(string(category)).
		SetAttemptNumber(attempt).
		SetMessage(message).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record processing failure",
			"document_id", documentID, "category", category, "attempt", attempt, "error", err)
		return err
	}
	r.logger.Warn("processing failure recorded",
		"document_id", documentID, "category", category, "attempt", attempt, "message", message)
	return nil
}

func (r *failureRepo) ListForDocument(ctx context.Context, documentID int) ([]*ent.ProcessingFailure, error) {
	rows, err := r.ent.ProcessingFailure.Query().
		Where(entfailure.DocumentID(documentID)).
		Order(entfailure.ByOccurredAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list processing failures", "document_id", documentID, "error", err)
		return nil, err
	}
	return rows, nil
}
