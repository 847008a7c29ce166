package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
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
	"github.com/scanworks/scanvault/internal/repository"
)

// printError prints to stderr, falling back to stdout if stderr fails.
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir          = flag.String("dir", "", "directory to ingest (required unless -reprocess-all)")
		out          = flag.String("out", "", "output XLSX report path (defaults to the parent of -dir)")
		status       = flag.String("status", "", "restrict the report to one processing status")
		skipHidden   = flag.Bool("skip-hidden", true, "skip hidden files and directories")
		reprocessAll = flag.Bool("reprocess-all", false, "re-run every completed/requires_review document instead of ingesting")
		watch        = flag.Bool("watch", false, "keep watching -dir for new files after the initial pass")
		inmem        = flag.Bool("inmem", false, "use an in-memory SQLite store")
	)
	flag.Parse()

	if *dir == "" && !*reprocessAll {
		printError("Error: -dir is required\n")
		os.Exit(1)
	}
	if *out == "" {
		base := "."
		if *dir != "" {
			base = filepath.Dir(*dir)
		}
		*out = filepath.Join(base, "documents.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = "sqlite"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if *status != "" && !validStatus(*status) {
		printError("Error: unknown status %q\n", *status)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := common.InitDatabase(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Cleanup()

	documentsRepo := repository.NewDocumentRepository(db.Client, logger)
	attemptsRepo := repository.NewAttemptRepository(db.Client, logger)
	fieldsRepo := repository.NewStructuredFieldsRepository(db.Client, logger)
	facesRepo := repository.NewFaceRepository(db.Client, logger)
	failuresRepo := repository.NewFailureRepository(db.Client, logger)

	// The index is optional for batch runs; without it the pipeline still
	// reaches terminal statuses and only search stays empty.
	var writer index.Writer
	if es, err := index.NewClient(cfg.Index, logger); err != nil {
		logger.Warn("search index client unavailable, skipping index writes", "error", err)
	} else {
		esIdx := index.New(es, cfg.Index, logger)
		if err := esIdx.EnsureIndices(ctx); err != nil {
			logger.Warn("search index unreachable, skipping index writes", "error", err)
		} else {
			writer = esIdx
		}
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
		lease.NewLocalLocker(), preparer, textEngine, faceEngine, writer)

	ingested := 0
	processed := 0
	failures := 0

	if *reprocessAll {
		ids, err := documentsRepo.ListIDsByStatuses(ctx, []string{
			string(constants.StatusCompleted),
			string(constants.StatusRequiresReview),
		})
		if err != nil {
			logger.Error("failed to list documents for reprocessing", "error", err)
			os.Exit(1)
		}
		logger.Info("reprocessing documents", "count", len(ids))
		for _, id := range ids {
			if ctx.Err() != nil {
				break
			}
			if err := proc.Process(ctx, id); err != nil {
				logger.Error("reprocess failed", "document_id", id, "error", err)
				failures++
				continue
			}
			processed++
		}
	} else {
		ingestor := ingest.NewFSIngestor(documentsRepo, cfg.Upload.Dir, cfg.Upload.MaxBytes, logger)

		logger.Info("starting ingestion", "dir", *dir)
		results, stats, err := ingestor.IngestDirectory(ctx, *dir, *skipHidden)
		if err != nil {
			logger.Error("failed to ingest directory", "error", err)
			os.Exit(1)
		}
		logger.Info("ingestion complete",
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"deduplicated", stats.Deduplicated,
			"failed", stats.Failed)

		for _, r := range results {
			if !needsRun(r) {
				continue
			}
			ingested++
			if ctx.Err() != nil {
				break
			}
			if err := proc.Process(ctx, r.DocumentID); err != nil {
				logger.Error("processing failed", "document_id", r.DocumentID, "error", err)
				failures++
				continue
			}
			processed++
		}

		if *watch {
			watchLoop(ctx, logger, ingestor, proc, *dir, &processed, &failures)
		}
	}

	exporter := export.NewService(documentsRepo, attemptsRepo, fieldsRepo, facesRepo, failuresRepo, logger)
	data, err := exporter.ExportDocumentsXLSX(context.Background(), *status)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("failed to write report", "path", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"ingested", ingested,
		"processed", processed,
		"failures", failures,
		"report", *out)

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Report: %s\n", *out)
}

// needsRun filters ingest results down to documents that still want a
// processing run. A duplicate of an already-settled document is done work.
func needsRun(r ingest.IngestionResult) bool {
	if r.Err != "" {
		return false
	}
	if !r.Deduplicated {
		return true
	}
	return r.Status == string(constants.StatusPending)
}

func watchLoop(
	ctx context.Context,
	logger *slog.Logger,
	ingestor ingest.Ingestor,
	proc *processor.Processor,
	dir string,
	processed, failures *int,
) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{dir},
		Debounce: 500 * time.Millisecond,
	})
	if err != nil {
		logger.Error("failed to start watcher", "dir", dir, "error", err)
		return
	}
	logger.Info("watching for new files", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			r, err := ingestor.IngestPath(ctx, path)
			if err != nil {
				logger.Warn("watch ingest failed", "path", path, "error", err)
				continue
			}
			if !needsRun(r) {
				continue
			}
			if err := proc.Process(ctx, r.DocumentID); err != nil {
				logger.Error("processing failed", "document_id", r.DocumentID, "error", err)
				*failures++
				continue
			}
			*processed++
		case werr, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watcher error", "error", werr)
		}
	}
}

func validStatus(s string) bool {
	for _, v := range constants.ProcessingStatuses {
		if s == v {
			return true
		}
	}
	return false
}
