package queue

import (
	"context"
	"log/slog"
)

// FallbackDispatcher publishes to the broker when it can and runs the
// pipeline inline in the caller's context when publishing fails. A single
// run never mixes the two paths.
type FallbackDispatcher struct {
	primary Dispatcher // nil when the broker is disabled
	run     Handler
	logger  *slog.Logger
}

func NewFallbackDispatcher(primary Dispatcher, run Handler, logger *slog.Logger) *FallbackDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &FallbackDispatcher{primary: primary, run: run, logger: logger}
}

var _ Dispatcher = (*FallbackDispatcher)(nil)

func (f *FallbackDispatcher) Dispatch(ctx context.Context, documentID int) error {
	if f.primary != nil {
		err := f.primary.Dispatch(ctx, documentID)
		if err == nil {
			return nil
		}
		f.logger.Warn("broker dispatch failed, processing inline",
			"document_id", documentID, "error", err)
	}
	return f.run(ctx, documentID)
}

func (f *FallbackDispatcher) DispatchBatch(ctx context.Context, documentIDs []int) error {
	for _, id := range documentIDs {
		if err := f.Dispatch(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
