package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/extract"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/imaging"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/inference"
	"github.com/scanworks/scanvault/internal/lease"
	"github.com/scanworks/scanvault/internal/ocr"
	processor "github.com/scanworks/scanvault/internal/pipeline"
	"github.com/scanworks/scanvault/internal/queue"
	"github.com/scanworks/scanvault/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()
	if err := db.Ping(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	documentsRepo := repository.NewDocumentRepository(db.Client, logger)
	attemptsRepo := repository.NewAttemptRepository(db.Client, logger)
	fieldsRepo := repository.NewStructuredFieldsRepository(db.Client, logger)
	facesRepo := repository.NewFaceRepository(db.Client, logger)
	failuresRepo := repository.NewFailureRepository(db.Client, logger)

	es, err := index.NewClient(cfg.Index, logger)
	if err != nil {
		logger.Error("failed to build search index client", "error", err)
		os.Exit(1)
	}
	idx := index.New(es, cfg.Index, logger)
	if err := idx.EnsureIndices(ctx); err != nil {
		logger.Warn("search index unavailable at startup", "error", err)
	}

	probeCtx, cancelProbe := context.WithTimeout(ctx, cfg.Engines.ProbeTimeout)
	var textRemote *extract.RemoteEngine
	if cfg.Engines.OCRBaseURL != "" {
		client := inference.NewClient(cfg.Engines.OCRBaseURL, cfg.Engines.RPS, 0, logger)
		textRemote = extract.NewRemoteEngine(client, cfg.Engines.ProbeTimeout, logger)
	}
	textLocal := ocr.NewEngine(ocr.Config{TessdataDir: cfg.Engines.TessdataDir}, nil, logger)
	textEngine := extract.SelectEngine(probeCtx, textRemote, textLocal, logger)

	var faceRemote *face.RemoteEngine
	if cfg.Engines.FaceBaseURL != "" {
		client := inference.NewClient(cfg.Engines.FaceBaseURL, cfg.Engines.RPS, 0, logger)
		faceRemote = face.NewRemoteEngine(client, cfg.Engines.ProbeTimeout, logger)
	}
	var faceLocal face.Engine
	if cfg.Engines.PigoCascade != "" {
		pe, err := face.NewPigoEngine(cfg.Engines.PigoCascade, logger)
		if err != nil {
			logger.Warn("failed to load pigo cascade", "path", cfg.Engines.PigoCascade, "error", err)
		} else {
			faceLocal = pe
		}
	}
	faceEngine := face.SelectEngine(probeCtx, faceRemote, faceLocal, logger)
	cancelProbe()

	// Workers on separate hosts share the store, so leases must live in
	// redis; refuse to start without it.
	locker, err := lease.NewRedisLocker(cfg.Redis.Addr, cfg.Redis.LeaseTTL, logger)
	if err != nil {
		logger.Error("redis is required for worker leases", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = locker.Close()
	}()

	preparer := imaging.NewPreparer(imaging.Config{
		TmpDir:   cfg.Processing.TmpDir,
		DPI:      cfg.Processing.RenderDPI,
		MaxPages: cfg.Processing.MaxPDFPages,
	}, nil, logger)
	proc := processor.NewProcessor(logger, processor.Config{
		MaxAttempts:       cfg.Processing.MaxExtractionAttempts,
		FaceMinConfidence: cfg.Processing.FaceMinConfidence,
		DetectConcurrency: cfg.Processing.DetectConcurrency,
		ProcessTimeout:    cfg.Processing.ProcessTimeout,
	}, documentsRepo, attemptsRepo, fieldsRepo, facesRepo, failuresRepo,
		locker, preparer, textEngine, faceEngine, idx)

	q, err := queue.NewAMQPQueue(cfg.Queue.URL, cfg.Queue.QueueName, logger)
	if err != nil {
		logger.Error("failed to connect to task broker", "url", cfg.Queue.URL, "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = q.Close()
	}()

	logger.Info("scanvault-worker consuming", "queue", cfg.Queue.QueueName, "workers", cfg.Processing.WorkerCount)
	if err := q.Consume(ctx, cfg.Processing.WorkerCount, proc.Process); err != nil {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("worker drained, shutting down")
}
