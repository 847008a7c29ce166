// Package processor drives a document from pending to a terminal status:
// completed, requires_review, or failed. Every stage commit is incremental;
// reprocessing replaces prior stage outputs instead of appending.
package processor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/extract"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/imaging"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/lease"
	"github.com/scanworks/scanvault/internal/repository"
)

// Config holds pipeline tuning knobs.
type Config struct {
	MaxAttempts       int           // extraction attempts per run, default 3
	FaceMinConfidence float32       // default 0.5
	DetectConcurrency int           // pages detected in parallel, default 2
	ProcessTimeout    time.Duration // bound for one full run, default 3m
}

// Processor coordinates page preparation, text extraction, structured field
// parsing, face detection, and index writes for one document at a time.
type Processor struct {
	Logger    *slog.Logger
	Cfg       Config
	Documents repository.DocumentRepository
	Attempts  repository.AttemptRepository
	Fields    repository.StructuredFieldsRepository
	Faces     repository.FaceRepository
	Failures  repository.FailureRepository
	Locker    lease.Locker
	Preparer  *imaging.Preparer
	Text      extract.TextEngine
	Detector  face.Engine  // nil skips the face stage
	Index     index.Writer // nil skips index writes
}

func NewProcessor(
	logger *slog.Logger,
	cfg Config,
	documents repository.DocumentRepository,
	attempts repository.AttemptRepository,
	fields repository.StructuredFieldsRepository,
	faces repository.FaceRepository,
	failures repository.FailureRepository,
	locker lease.Locker,
	preparer *imaging.Preparer,
	text extract.TextEngine,
	detector face.Engine,
	idx index.Writer,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.FaceMinConfidence <= 0 {
		cfg.FaceMinConfidence = 0.5
	}
	if cfg.DetectConcurrency <= 0 {
		cfg.DetectConcurrency = 2
	}
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = 3 * time.Minute
	}
	return &Processor{
		Logger:    logger,
		Cfg:       cfg,
		Documents: documents,
		Attempts:  attempts,
		Fields:    fields,
		Faces:     faces,
		Failures:  failures,
		Locker:    locker,
		Preparer:  preparer,
		Text:      text,
		Detector:  detector,
		Index:     idx,
	}
}

// Process runs one document to a terminal status. A nil return means the
// caller may ack the task: either a terminal status was persisted or the run
// was benignly skipped. A non-nil return means the run never started.
func (p *Processor) Process(ctx context.Context, documentID int) error {
	ctx = common.WithDocumentID(ctx, documentID)
	if p.Cfg.ProcessTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Cfg.ProcessTimeout)
		defer cancel()
	}

	token, ok, err := p.Locker.Acquire(ctx, documentID)
	if err != nil {
		return fmt.Errorf("acquire lease: %w", err)
	}
	if !ok {
		p.Logger.Info("processor.lease.held_elsewhere", "document_id", documentID)
		return nil
	}
	defer p.releaseLease(documentID, token)

	doc, err := p.Documents.GetByID(ctx, documentID)
	if err != nil {
		if ent.IsNotFound(err) {
			// The row is gone; retrying cannot help.
			p.Logger.Error("processor.document.missing", "document_id", documentID)
			return nil
		}
		return fmt.Errorf("load document: %w", err)
	}

	return p.run(ctx, doc)
}

func (p *Processor) run(ctx context.Context, doc *ent.Document) (err error) {
	documentID := doc.ID
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			p.Logger.Error("processor.panic", "document_id", documentID, "panic", r)
			p.markFailed(documentID, fmt.Sprintf("panic: %v", r))
			err = nil
		}
	}()

	if err := p.resetPriorRun(ctx, doc); err != nil {
		return fmt.Errorf("reset prior run: %w", err)
	}
	if err := p.Documents.SetStatus(ctx, documentID, constants.StatusProcessing); err != nil {
		return fmt.Errorf("mark processing: %w", err)
	}

	pages, cleanup, err := p.Preparer.Prepare(ctx, doc.SourcePath, constants.FileKind(doc.FileKind))
	if err != nil {
		p.Logger.Error("processor.prepare.failed", "document_id", documentID, "error", err)
		p.markFailed(documentID, fmt.Sprintf("prepare pages: %v", err))
		return nil
	}
	defer cleanup()
	_ = p.Documents.SetPageCount(ctx, documentID, len(pages))

	res, extracted, err := p.extractText(ctx, documentID, pages, constants.FileKind(doc.FileKind))
	if err != nil {
		p.Logger.Error("processor.extract.storage_error", "document_id", documentID, "error", err)
		p.markFailed(documentID, err.Error())
		return nil
	}

	var fields fieldsOutcome
	if extracted {
		fields, err = p.extractFields(ctx, documentID, res.Text)
		if err != nil {
			p.Logger.Error("processor.fields.storage_error", "document_id", documentID, "error", err)
			p.markFailed(documentID, err.Error())
			return nil
		}
	}

	// Faces are detected regardless of the text outcome; a portrait is
	// useful even when recognition produced nothing.
	p.detectFaces(ctx, documentID, pages)

	terminal := constants.StatusRequiresReview
	if extracted {
		p.indexDocument(ctx, documentID, res, fields)
		terminal = constants.StatusCompleted
	}
	if err := p.Documents.SetStatus(ctx, documentID, terminal); err != nil {
		return fmt.Errorf("mark %s: %w", terminal, err)
	}

	p.Logger.Info("processor.done",
		"document_id", documentID,
		"status", terminal,
		"pages", len(pages),
		"structured_fields", fields.found,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// resetPriorRun clears outputs of an earlier run so reprocessing replaces
// instead of appending. First runs delete nothing and fall through cheaply.
func (p *Processor) resetPriorRun(ctx context.Context, doc *ent.Document) error {
	nAttempts, err := p.Attempts.DeleteForDocument(ctx, doc.ID)
	if err != nil {
		return err
	}
	nFields, err := p.Fields.DeleteForDocument(ctx, doc.ID)
	if err != nil {
		return err
	}
	nFaces, err := p.Faces.DeleteForDocument(ctx, doc.ID)
	if err != nil {
		return err
	}
	if nAttempts+nFields+nFaces == 0 {
		return nil
	}

	if p.Index != nil {
		// Stale entries are tolerable: search joins skip hits whose
		// canonical rows are gone, and doc entries are upserts by id.
		if err := p.Index.DeleteDocumentFaces(ctx, doc.ID); err != nil {
			p.Logger.Warn("processor.reset.face_index", "document_id", doc.ID, "error", err)
		}
		if err := p.Index.DeleteDocument(ctx, doc.ID); err != nil {
			p.Logger.Warn("processor.reset.document_index", "document_id", doc.ID, "error", err)
		}
	}
	if nFields > 0 {
		if err := p.Documents.SetHasStructuredFields(ctx, doc.ID, false); err != nil {
			return err
		}
	}
	if err := p.Documents.BumpVersion(ctx, doc.ID); err != nil {
		return err
	}

	p.Logger.Info("processor.reset.done",
		"document_id", doc.ID,
		"attempts", nAttempts,
		"fields", nFields,
		"faces", nFaces,
	)
	return nil
}

// markFailed is the orchestrator-level terminal. It uses a fresh context so
// a cancelled run can still record its own failure.
func (p *Processor) markFailed(documentID int, msg string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = p.Failures.Record(ctx, documentID, constants.FailureProcessing, 0, msg)
	if err := p.Documents.SetStatus(ctx, documentID, constants.StatusFailed); err != nil {
		p.Logger.Error("processor.mark_failed.status", "document_id", documentID, "error", err)
	}
}

func (p *Processor) releaseLease(documentID int, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = p.Locker.Release(ctx, documentID, token)
}
