package repository

import (
	"context"
	"log/slog"

	"github.com/scanworks/scanvault/gen/ent"
)

// RecordSearchParams is one audit entry for a search invocation.
type RecordSearchParams struct {
	SearchType  string // "face" | "text"
	QueryHash   string
	Scope       string
	Threshold   float32
	ResultCount int
	ElapsedMS   int64
}

type SearchLogRepository interface {
	Record(ctx context.Context, p RecordSearchParams) error
}

type searchLogRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewSearchLogRepository(entc *ent.Client, logger *slog.Logger) SearchLogRepository {
	return &searchLogRepo{
		ent:    entc,
		logger: logger,
	}
}

func (r *searchLogRepo) Record(ctx context.Context, p RecordSearchParams) error {
	create := r.ent.SearchLog.Create().
		SetSearchType(p.SearchType).
		SetQueryHash(p.QueryHash).
		SetResultCount(p.ResultCount).
		SetElapsedMs(p.ElapsedMS)
	if p.Scope != "" {
		create = create.SetScope(p.Scope)
	}
	if p.Threshold > 0 {
		create = create.SetThreshold(p.Threshold)
	}
	err := create.Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record search log", "search_type", p.SearchType, "error", err)
		return err
	}
	return nil
}
