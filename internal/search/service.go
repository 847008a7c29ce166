// Package search answers face and fulltext queries by combining the external
// index with the canonical store. The index ranks; the store is the source
// of truth for everything a hit displays.
package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/repository"
	"github.com/scanworks/scanvault/internal/utils"
)

// Reasons for an empty face result that is not an error.
const (
	ReasonNoFace      = "No face detected in query image"
	ReasonNoEmbedding = "face embeddings unavailable"
)

const (
	defaultThreshold = 0.6
	defaultLimit     = 10
)

type Service struct {
	Logger        *slog.Logger
	Reader        index.Reader
	Detector      face.Engine
	Documents     repository.DocumentRepository
	Faces         repository.FaceRepository
	Logs          repository.SearchLogRepository
	MinConfidence float32 // detection floor for the query image
}

func NewService(
	logger *slog.Logger,
	reader index.Reader,
	detector face.Engine,
	documents repository.DocumentRepository,
	faces repository.FaceRepository,
	logs repository.SearchLogRepository,
	minConfidence float32,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if minConfidence <= 0 {
		minConfidence = 0.5
	}
	return &Service{
		Logger:        logger,
		Reader:        reader,
		Detector:      detector,
		Documents:     documents,
		Faces:         faces,
		Logs:          logs,
		MinConfidence: minConfidence,
	}
}

// SearchByFace finds documents whose indexed faces resemble the best face in
// the query image. "No face" and "no usable embedding" are reported as empty
// results with a reason, not as errors.
func (s *Service) SearchByFace(ctx context.Context, imagePath string, threshold float64, limit int) (entity.FaceSearchResult, error) {
	start := time.Now()
	if threshold <= 0 {
		threshold = defaultThreshold
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	if s.Detector == nil {
		return entity.FaceSearchResult{}, common.UnavailableError("no face engine available")
	}
	detections, err := s.Detector.Detect(ctx, imagePath, s.MinConfidence)
	if err != nil {
		return entity.FaceSearchResult{}, common.UnavailableError("face detection failed: " + err.Error())
	}

	best, found := face.BestDetection(detections)
	if !found {
		return s.finishFace(ctx, imagePath, threshold, nil, ReasonNoFace, start), nil
	}
	if face.IsSentinel(best.Embedding) {
		return s.finishFace(ctx, imagePath, threshold, nil, ReasonNoEmbedding, start), nil
	}

	hits, err := s.Reader.SimilarFaces(ctx, best.Embedding, limit)
	if err != nil {
		return entity.FaceSearchResult{}, common.UnavailableError("face index query failed: " + err.Error())
	}

	matches := make([]entity.FaceMatch, 0, len(hits))
	for _, hit := range hits {
		if hit.Similarity < threshold {
			continue
		}
		row, err := s.Faces.GetByID(ctx, hit.FaceID)
		if err != nil {
			// Index entries can outlive their rows after a reprocess; a
			// dangling hit is skipped, never fatal.
			s.Logger.Warn("search.face.dangling_hit", "face_id", hit.FaceID, "error", err)
			continue
		}
		doc, err := s.Documents.GetByID(ctx, row.DocumentID)
		if err != nil {
			s.Logger.Warn("search.face.dangling_hit", "face_id", hit.FaceID, "document_id", row.DocumentID, "error", err)
			continue
		}
		f := utils.ToFace(row)
		matches = append(matches, entity.FaceMatch{
			FaceID:     hit.FaceID,
			DocumentID: row.DocumentID,
			Similarity: hit.Similarity,
			Quality:    row.Quality,
			Box:        f.Box,
			Document:   *utils.ToDocument(doc),
		})
	}

	return s.finishFace(ctx, imagePath, threshold, matches, "", start), nil
}

func (s *Service) finishFace(ctx context.Context, imagePath string, threshold float64, matches []entity.FaceMatch, reason string, start time.Time) entity.FaceSearchResult {
	elapsed := time.Since(start).Milliseconds()
	if matches == nil {
		matches = []entity.FaceMatch{}
	}
	res := entity.FaceSearchResult{
		Matches:   matches,
		Count:     len(matches),
		Reason:    reason,
		ElapsedMS: elapsed,
	}
	s.audit(ctx, repository.RecordSearchParams{
		SearchType:  "face",
		QueryHash:   hashQueryImage(imagePath),
		Threshold:   float32(threshold),
		ResultCount: res.Count,
		ElapsedMS:   elapsed,
	})
	return res
}

// SearchByText runs a scoped fulltext query and joins hits to their
// documents, keeping the index ranking.
func (s *Service) SearchByText(ctx context.Context, query, scope string, limit int) (entity.TextSearchResult, error) {
	start := time.Now()
	query = strings.TrimSpace(query)
	if query == "" {
		return entity.TextSearchResult{}, common.InvalidArgumentError("query must not be empty")
	}
	switch scope {
	case "":
		scope = index.ScopeAll
	case index.ScopeAll, index.ScopeFields, index.ScopeText:
	default:
		return entity.TextSearchResult{}, common.InvalidArgumentErrorf("unknown scope %q", scope)
	}
	if limit <= 0 {
		limit = 20
	}

	hits, err := s.Reader.SearchText(ctx, query, scope, limit)
	if err != nil {
		return entity.TextSearchResult{}, common.UnavailableError("text index query failed: " + err.Error())
	}

	matches := make([]entity.TextMatch, 0, len(hits))
	for _, hit := range hits {
		doc, err := s.Documents.GetByID(ctx, hit.DocumentID)
		if err != nil {
			s.Logger.Warn("search.text.dangling_hit", "document_id", hit.DocumentID, "error", err)
			continue
		}
		matches = append(matches, entity.TextMatch{
			DocumentID: hit.DocumentID,
			Score:      hit.Score,
			Highlights: hit.Highlight,
			Document:   *utils.ToDocument(doc),
		})
	}

	elapsed := time.Since(start).Milliseconds()
	res := entity.TextSearchResult{
		Matches:   matches,
		Count:     len(matches),
		Scope:     scope,
		ElapsedMS: elapsed,
	}
	s.audit(ctx, repository.RecordSearchParams{
		SearchType:  "text",
		QueryHash:   hashQueryText(query),
		Scope:       scope,
		ResultCount: res.Count,
		ElapsedMS:   elapsed,
	})
	return res, nil
}

// audit appends the search log entry; a failed audit never fails the search.
// The repository already logs its own errors.
func (s *Service) audit(ctx context.Context, p repository.RecordSearchParams) {
	if s.Logs == nil {
		return
	}
	_ = s.Logs.Record(ctx, p)
}

func hashQueryText(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}

// hashQueryImage fingerprints the query image content; when the file cannot
// be read the path itself is hashed so the audit row is still written.
func hashQueryImage(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return hashQueryText(path)
	}
	defer func() {
		_ = f.Close()
	}()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return hashQueryText(path)
	}
	return hex.EncodeToString(h.Sum(nil))
}
