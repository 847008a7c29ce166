package processor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/extract"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/imaging"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/mrz"
	"github.com/scanworks/scanvault/internal/repository"
)

// extractText runs the bounded attempt loop. Every attempt, successful or
// not, leaves a row; failures additionally append to the failure log.
// extracted=false with a nil error means all attempts were used up, which is
// the requires_review outcome, not an orchestrator error.
func (p *Processor) extractText(
	ctx context.Context,
	documentID int,
	pages []imaging.PageImage,
	kind constants.FileKind,
) (extract.DocumentResult, bool, error) {
	markers := kind == constants.PDF

	for attempt := 1; attempt <= p.Cfg.MaxAttempts; attempt++ {
		res, aerr := extract.AssembleDocument(ctx, p.Text, pages, markers, p.Logger)
		if aerr == nil {
			_, rerr := p.Attempts.Record(ctx, documentID, repository.RecordAttemptParams{
				AttemptNumber: attempt,
				Succeeded:     true,
				FullText:      res.Text,
				Blocks:        res.Blocks,
				Language:      res.Language,
				Confidence:    res.Confidence,
				Engine:        res.Engine,
				ElapsedMS:     res.Duration.Milliseconds(),
			})
			if rerr != nil {
				return extract.DocumentResult{}, false, fmt.Errorf("record attempt %d: %w", attempt, rerr)
			}
			p.Logger.Info("processor.extract.ok",
				"document_id", documentID,
				"attempt", attempt,
				"engine", res.Engine,
				"language", res.Language,
				"confidence", res.Confidence,
			)
			return res, true, nil
		}

		_, rerr := p.Attempts.Record(ctx, documentID, repository.RecordAttemptParams{
			AttemptNumber: attempt,
			Succeeded:     false,
			Engine:        res.Engine,
			ElapsedMS:     res.Duration.Milliseconds(),
		})
		if rerr != nil {
			return extract.DocumentResult{}, false, fmt.Errorf("record attempt %d: %w", attempt, rerr)
		}
		_ = p.Failures.Record(ctx, documentID, constants.FailureExtraction, attempt, aerr.Error())

		if ctx.Err() != nil {
			// The run deadline killed the attempt; more of them cannot end
			// differently.
			break
		}
	}
	return extract.DocumentResult{}, false, nil
}

// fieldsOutcome carries the structured-field stage result to the index write.
type fieldsOutcome struct {
	found  bool
	result mrz.Result
}

// extractFields scans the assembled text for a machine-readable zone and
// replaces the document's structured field set when one validates. Errors
// here are storage errors; a text without a zone is the common case.
func (p *Processor) extractFields(ctx context.Context, documentID int, text string) (fieldsOutcome, error) {
	res, ok := mrz.Scan(text)
	if !ok {
		return fieldsOutcome{}, nil
	}

	fields := entity.StructuredFields{
		DocumentID:     documentID,
		Format:         res.Format,
		DocumentType:   res.DocumentType,
		CountryCode:    res.CountryCode,
		Surname:        res.Surname,
		GivenNames:     res.GivenNames,
		DocumentNumber: res.DocumentNumber,
		Nationality:    res.Nationality,
		BirthDate:      res.BirthDate,
		Sex:            res.Sex,
		ExpiryDate:     res.ExpiryDate,
		PersonalNumber: res.PersonalNumber,
		ChecksumValid:  res.ChecksumValid,
		RawLines:       res.RawLines,
	}
	if _, err := p.Fields.Replace(ctx, documentID, fields); err != nil {
		return fieldsOutcome{}, fmt.Errorf("store structured fields: %w", err)
	}
	if err := p.Documents.SetHasStructuredFields(ctx, documentID, true); err != nil {
		return fieldsOutcome{}, fmt.Errorf("flag structured fields: %w", err)
	}
	return fieldsOutcome{found: true, result: res}, nil
}

// detectFaces fans page detection out, then persists and indexes hits in
// page order. The stage never fails the document, and one failing page does
// not stop the others: errors land in the failure log per page and
// processing moves on.
func (p *Processor) detectFaces(ctx context.Context, documentID int, pages []imaging.PageImage) {
	if p.Detector == nil {
		return
	}

	perPage := make([][]face.Detection, len(pages))
	pageErrs := make([]error, len(pages))
	var g errgroup.Group
	g.SetLimit(p.Cfg.DetectConcurrency)
	for i, page := range pages {
		g.Go(func() error {
			ds, err := p.Detector.Detect(ctx, page.Path, p.Cfg.FaceMinConfidence)
			if err != nil {
				pageErrs[i] = fmt.Errorf("page %d: %w", page.Number, err)
				return nil
			}
			perPage[i] = ds
			return nil
		})
	}
	_ = g.Wait()
	for _, perr := range pageErrs {
		if perr == nil {
			continue
		}
		p.Logger.Warn("processor.faces.detect_failed", "document_id", documentID, "error", perr)
		_ = p.Failures.Record(ctx, documentID, constants.FailureFaceDetection, 0, perr.Error())
	}

	var persisted, indexed int
	for i, page := range pages {
		for _, d := range perPage[i] {
			row, err := p.Faces.Create(ctx, documentID, repository.CreateFaceParams{
				PageNumber: page.Number,
				Box:        d.Box,
				Confidence: d.Confidence,
				Quality:    d.Quality,
			})
			if err != nil {
				_ = p.Failures.Record(ctx, documentID, constants.FailureFaceDetection, 0,
					fmt.Sprintf("persist face on page %d: %v", page.Number, err))
				continue
			}
			persisted++
			if p.indexFace(ctx, row.ID, documentID, d) {
				indexed++
			}
		}
	}
	if persisted > 0 {
		p.Logger.Info("processor.faces.done",
			"document_id", documentID, "persisted", persisted, "indexed", indexed)
	}
}

// indexFace writes one embedding entry and links the row to it. Sentinel
// embeddings stay unindexed: the row keeps an empty index_id and can never
// match a face query.
func (p *Processor) indexFace(ctx context.Context, faceID, documentID int, d face.Detection) bool {
	if p.Index == nil {
		return false
	}
	err := p.Index.IndexFace(ctx, index.FaceEntry{
		FaceID:     faceID,
		DocumentID: documentID,
		Embedding:  d.Embedding,
		Quality:    d.Quality,
	})
	if errors.Is(err, index.ErrSentinelEmbedding) {
		return false
	}
	if err != nil {
		p.Logger.Warn("processor.faces.index_failed", "face_id", faceID, "error", err)
		_ = p.Failures.Record(ctx, documentID, constants.FailureIndexWrite, 0,
			fmt.Sprintf("face %d: %v", faceID, err))
		return false
	}
	_ = p.Faces.SetIndexID(ctx, faceID, strconv.Itoa(faceID))
	return true
}

// indexDocument upserts the document's fulltext entry. Write failures are
// logged and recorded but never roll back the completed run.
func (p *Processor) indexDocument(ctx context.Context, documentID int, res extract.DocumentResult, fields fieldsOutcome) {
	if p.Index == nil {
		return
	}
	entry := index.DocEntry{
		DocumentID: documentID,
		FullText:   res.Text,
	}
	if fields.found {
		entry.MRZText = strings.Join(fields.result.RawLines, "\n")
		entry.DocumentNumber = fields.result.DocumentNumber
		entry.Surname = fields.result.Surname
		entry.GivenNames = fields.result.GivenNames
	}
	if err := p.Index.IndexDocument(ctx, entry); err != nil {
		p.Logger.Warn("processor.index.document_failed", "document_id", documentID, "error", err)
		_ = p.Failures.Record(ctx, documentID, constants.FailureIndexWrite, 0, err.Error())
	}
}
