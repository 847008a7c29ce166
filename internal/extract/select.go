package extract

import (
	"context"
	"log/slog"
)

// SelectEngine probes the remote engine once and falls back to local when it
// is unreachable. The choice holds for the lifetime of the process; callers
// downstream never learn which engine answered.
func SelectEngine(ctx context.Context, remote *RemoteEngine, fallback TextEngine, logger *slog.Logger) TextEngine {
	if remote == nil {
		return fallback
	}
	if err := remote.Probe(ctx); err != nil {
		logger.Warn("recognition sidecar unavailable, using fallback engine",
			"fallback", fallback.Name(), "error", err)
		return fallback
	}
	logger.Info("recognition engine selected", "engine", remote.Name())
	return remote
}
