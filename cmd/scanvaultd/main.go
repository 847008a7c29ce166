package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/export"
	"github.com/scanworks/scanvault/internal/extract"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/imaging"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/inference"
	"github.com/scanworks/scanvault/internal/ingest"
	"github.com/scanworks/scanvault/internal/lease"
	"github.com/scanworks/scanvault/internal/ocr"
	processor "github.com/scanworks/scanvault/internal/pipeline"
	"github.com/scanworks/scanvault/internal/queue"
	"github.com/scanworks/scanvault/internal/repository"
	"github.com/scanworks/scanvault/internal/search"
	"github.com/scanworks/scanvault/internal/server"
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
	logsRepo := repository.NewSearchLogRepository(db.Client, logger)

	es, err := index.NewClient(cfg.Index, logger)
	if err != nil {
		logger.Error("failed to build search index client", "error", err)
		os.Exit(1)
	}
	idx := index.New(es, cfg.Index, logger)
	if err := idx.EnsureIndices(ctx); err != nil {
		logger.Warn("search index unavailable at startup", "error", err)
	}

	// Engine selection: probe each sidecar once, fall back to the local
	// engine for the lifetime of the process.
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

	var locker lease.Locker
	if rl, err := lease.NewRedisLocker(cfg.Redis.Addr, cfg.Redis.LeaseTTL, logger); err != nil {
		logger.Warn("redis unavailable, using in-process leases", "error", err)
		locker = lease.NewLocalLocker()
	} else {
		locker = rl
		defer func() {
			_ = rl.Close()
		}()
	}

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

	var primary queue.Dispatcher
	var broker *queue.AMQPQueue
	if q, err := queue.NewAMQPQueue(cfg.Queue.URL, cfg.Queue.QueueName, logger); err != nil {
		logger.Warn("task broker unavailable, uploads will process inline", "error", err)
	} else {
		broker = q
		primary = q
		defer func() {
			_ = broker.Close()
		}()
	}
	dispatcher := queue.NewFallbackDispatcher(primary, proc.Process, logger)

	// A crash between persist and publish strands documents in pending;
	// sweep them back into the queue. Leases keep a concurrent sweep from
	// another instance benign.
	go func() {
		ids, err := documentsRepo.ListIDsByStatuses(ctx, []string{string(constants.StatusPending)})
		if err != nil {
			logger.Warn("pending sweep failed", "error", err)
			return
		}
		if len(ids) == 0 {
			return
		}
		logger.Info("re-dispatching pending documents", "count", len(ids))
		if err := dispatcher.DispatchBatch(ctx, ids); err != nil {
			logger.Warn("failed to re-dispatch pending documents", "error", err)
		}
	}()

	ingestor := ingest.NewFSIngestor(documentsRepo, cfg.Upload.Dir, cfg.Upload.MaxBytes, logger)
	searcher := search.NewService(logger, idx, faceEngine, documentsRepo, facesRepo, logsRepo, cfg.Processing.FaceMinConfidence)
	exporter := export.NewService(documentsRepo, attemptsRepo, fieldsRepo, facesRepo, failuresRepo, logger)

	probes := server.Probes{
		Index: func(ctx context.Context) error { return index.Ping(ctx, es) },
		Store: func(ctx context.Context) error { return db.Ping(ctx, 2*time.Second) },
	}
	if broker != nil {
		probes.Broker = func(context.Context) error { return broker.Ping() }
	}

	srv := server.New(logger, cfg.Server.GinMode, ingestor, dispatcher,
		documentsRepo, attemptsRepo, fieldsRepo, facesRepo, failuresRepo,
		searcher, exporter, idx, probes)

	httpSrv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("scanvaultd listening", "addr", cfg.Server.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}
