package face

import (
	"context"
	"log/slog"
)

// SelectEngine probes the face sidecar once and substitutes the fallback
// detector when it is unreachable. Downstream callers never learn which
// engine is active; they only see sentinel embeddings from the fallback.
func SelectEngine(ctx context.Context, remote *RemoteEngine, fallback Engine, logger *slog.Logger) Engine {
	if remote == nil {
		return fallback
	}
	if err := remote.Probe(ctx); err != nil {
		if fallback == nil {
			logger.Warn("face sidecar unavailable and no fallback detector, face stage disabled", "error", err)
			return nil
		}
		logger.Warn("face sidecar unavailable, using fallback detector",
			"fallback", fallback.Name(), "error", err)
		return fallback
	}
	logger.Info("face engine selected", "engine", remote.Name())
	return remote
}
