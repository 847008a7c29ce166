package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/repository"
)

type fakeReader struct {
	faceHits  []index.FaceHit
	docHits   []index.DocHit
	err       error
	lastK     int
	lastScope string
}

func (f *fakeReader) SimilarFaces(_ context.Context, _ []float32, k int) ([]index.FaceHit, error) {
	f.lastK = k
	return f.faceHits, f.err
}

func (f *fakeReader) SearchText(_ context.Context, _ string, scope string, limit int) ([]index.DocHit, error) {
	f.lastScope = scope
	f.lastK = limit
	return f.docHits, f.err
}

type fakeDetector struct {
	detections []face.Detection
	err        error
}

func (d *fakeDetector) Name() string { return "fake" }

func (d *fakeDetector) Detect(context.Context, string, float32) ([]face.Detection, error) {
	return d.detections, d.err
}

// Unused interface methods are left to the embedded nil and would panic.
type fakeDocs struct {
	repository.DocumentRepository
	rows map[int]*ent.Document
}

func (f *fakeDocs) GetByID(_ context.Context, id int) (*ent.Document, error) {
	if d, ok := f.rows[id]; ok {
		return d, nil
	}
	return nil, &ent.NotFoundError{}
}

type fakeFaces struct {
	repository.FaceRepository
	rows map[int]*ent.FaceRecord
}

func (f *fakeFaces) GetByID(_ context.Context, id int) (*ent.FaceRecord, error) {
	if r, ok := f.rows[id]; ok {
		return r, nil
	}
	return nil, &ent.NotFoundError{}
}

type fakeLogs struct {
	entries []repository.RecordSearchParams
	err     error
}

func (f *fakeLogs) Record(_ context.Context, p repository.RecordSearchParams) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, p)
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func realEmbedding() []float32 {
	e := make([]float32, face.EmbeddingDims)
	e[0] = 1
	return e
}

func TestSearchByFaceNoFaceDetected(t *testing.T) {
	logs := &fakeLogs{}
	svc := NewService(quietLogger(), &fakeReader{}, &fakeDetector{}, &fakeDocs{}, &fakeFaces{}, logs, 0.5)

	res, err := svc.SearchByFace(context.Background(), "/queries/empty.jpg", 0.6, 10)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoFace, res.Reason)
	assert.NotNil(t, res.Matches)
	assert.Zero(t, res.Count)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "face", logs.entries[0].SearchType)
	assert.NotEmpty(t, logs.entries[0].QueryHash)
}

func TestSearchByFaceSentinelEmbedding(t *testing.T) {
	det := &fakeDetector{detections: []face.Detection{{
		Confidence: 0.9,
		Embedding:  face.SentinelEmbedding(),
		Quality:    0.4,
	}}}
	svc := NewService(quietLogger(), &fakeReader{}, det, &fakeDocs{}, &fakeFaces{}, &fakeLogs{}, 0.5)

	res, err := svc.SearchByFace(context.Background(), "/queries/q.jpg", 0.6, 10)
	require.NoError(t, err)
	assert.Equal(t, ReasonNoEmbedding, res.Reason)
	assert.Zero(t, res.Count)
}

func TestSearchByFaceFiltersJoinsAndKeepsRanking(t *testing.T) {
	reader := &fakeReader{faceHits: []index.FaceHit{
		{FaceID: 11, DocumentID: 1, Similarity: 0.92, Quality: 0.8},
		{FaceID: 12, DocumentID: 2, Similarity: 0.55, Quality: 0.9}, // below threshold
		{FaceID: 13, DocumentID: 3, Similarity: 0.74, Quality: 0.6},
		{FaceID: 14, DocumentID: 4, Similarity: 0.70, Quality: 0.7}, // row missing
	}}
	det := &fakeDetector{detections: []face.Detection{{
		Confidence: 0.9, Embedding: realEmbedding(), Quality: 0.9,
	}}}
	docs := &fakeDocs{rows: map[int]*ent.Document{
		1: {ID: 1, Filename: "a.png"},
		3: {ID: 3, Filename: "c.pdf"},
	}}
	faces := &fakeFaces{rows: map[int]*ent.FaceRecord{
		11: {ID: 11, DocumentID: 1, PageNumber: 1, BoxX: 5, BoxY: 6, BoxW: 50, BoxH: 60, Quality: 0.81},
		13: {ID: 13, DocumentID: 3, PageNumber: 2, Quality: 0.61},
	}}
	logs := &fakeLogs{}
	svc := NewService(quietLogger(), reader, det, docs, faces, logs, 0.5)

	res, err := svc.SearchByFace(context.Background(), "/queries/q.jpg", 0.6, 5)
	require.NoError(t, err)
	assert.Empty(t, res.Reason)
	assert.Equal(t, 5, reader.lastK)

	require.Len(t, res.Matches, 2)
	first, second := res.Matches[0], res.Matches[1]
	assert.Equal(t, 11, first.FaceID, "index ranking preserved")
	assert.InDelta(t, 0.92, first.Similarity, 1e-9)
	assert.Equal(t, "a.png", first.Document.Filename)
	assert.Equal(t, 5, first.Box.X)
	assert.InDelta(t, 0.81, float64(first.Quality), 1e-6, "quality comes from the canonical row")
	assert.Equal(t, 13, second.FaceID)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, 2, logs.entries[0].ResultCount)
	assert.InDelta(t, 0.6, float64(logs.entries[0].Threshold), 1e-6)
}

func TestSearchByFaceDetectorUnavailable(t *testing.T) {
	det := &fakeDetector{err: errors.New("sidecar down")}
	svc := NewService(quietLogger(), &fakeReader{}, det, &fakeDocs{}, &fakeFaces{}, &fakeLogs{}, 0.5)

	_, err := svc.SearchByFace(context.Background(), "/queries/q.jpg", 0.6, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestSearchByFaceWithoutEngine(t *testing.T) {
	svc := NewService(quietLogger(), &fakeReader{}, nil, &fakeDocs{}, &fakeFaces{}, &fakeLogs{}, 0.5)

	_, err := svc.SearchByFace(context.Background(), "/queries/q.jpg", 0.6, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestSearchByTextValidation(t *testing.T) {
	svc := NewService(quietLogger(), &fakeReader{}, &fakeDetector{}, &fakeDocs{}, &fakeFaces{}, &fakeLogs{}, 0.5)

	_, err := svc.SearchByText(context.Background(), "   ", index.ScopeAll, 10)
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.SearchByText(context.Background(), "eriksson", "everything", 10)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearchByTextJoinsAndDefaultsScope(t *testing.T) {
	reader := &fakeReader{docHits: []index.DocHit{
		{DocumentID: 1, Score: 7.2, Highlight: "<em>ERIKSSON</em>"},
		{DocumentID: 9, Score: 3.1}, // row missing
		{DocumentID: 2, Score: 1.4},
	}}
	docs := &fakeDocs{rows: map[int]*ent.Document{
		1: {ID: 1, Filename: "passport.png"},
		2: {ID: 2, Filename: "scan.pdf"},
	}}
	logs := &fakeLogs{}
	svc := NewService(quietLogger(), reader, &fakeDetector{}, docs, &fakeFaces{}, logs, 0.5)

	res, err := svc.SearchByText(context.Background(), "eriksson", "", 20)
	require.NoError(t, err)
	assert.Equal(t, index.ScopeAll, res.Scope)
	assert.Equal(t, index.ScopeAll, reader.lastScope)

	require.Len(t, res.Matches, 2)
	assert.Equal(t, 1, res.Matches[0].DocumentID)
	assert.Equal(t, "<em>ERIKSSON</em>", res.Matches[0].Highlights)
	assert.Equal(t, 2, res.Matches[1].DocumentID, "missing rows skipped without breaking order")

	require.Len(t, logs.entries, 1)
	assert.Equal(t, "text", logs.entries[0].SearchType)
	assert.Equal(t, index.ScopeAll, logs.entries[0].Scope)
	assert.Len(t, logs.entries[0].QueryHash, 64)
}

func TestSearchAuditFailureDoesNotFailSearch(t *testing.T) {
	logs := &fakeLogs{err: errors.New("log table gone")}
	reader := &fakeReader{docHits: []index.DocHit{{DocumentID: 1, Score: 1}}}
	docs := &fakeDocs{rows: map[int]*ent.Document{1: {ID: 1}}}
	svc := NewService(quietLogger(), reader, &fakeDetector{}, docs, &fakeFaces{}, logs, 0.5)

	res, err := svc.SearchByText(context.Background(), "q", index.ScopeText, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)
}
