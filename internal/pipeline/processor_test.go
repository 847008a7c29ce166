package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/extract"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/imaging"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/lease"
	"github.com/scanworks/scanvault/internal/repository"
)

// --- fakes -----------------------------------------------------------------

type fakeDocs struct {
	mu       sync.Mutex
	rows     map[int]*ent.Document
	statuses []constants.ProcessingStatus
	flagged  map[int]bool
	versions map[int]int
	pages    map[int]int
}

func newFakeDocs(rows ...*ent.Document) *fakeDocs {
	f := &fakeDocs{
		rows:     make(map[int]*ent.Document),
		flagged:  make(map[int]bool),
		versions: make(map[int]int),
		pages:    make(map[int]int),
	}
	for _, r := range rows {
		f.rows[r.ID] = r
	}
	return f
}

func (f *fakeDocs) GetByID(_ context.Context, id int) (*ent.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.rows[id]; ok {
		return d, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeDocs) GetByHash(context.Context, []byte) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) Create(context.Context, repository.CreateDocumentParams) (*ent.Document, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) UpsertByHash(context.Context, repository.CreateDocumentParams) (*ent.Document, bool, error) {
	return nil, false, errors.New("not implemented")
}

func (f *fakeDocs) List(context.Context, string, int, int) ([]*ent.Document, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (f *fakeDocs) ListIDsByStatuses(context.Context, []string) ([]int, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocs) SetStatus(_ context.Context, id int, status constants.ProcessingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statuses = append(f.statuses, status)
	if d, ok := f.rows[id]; ok {
		d.ProcessingStatus = string(status)
	}
	return nil
}

func (f *fakeDocs) SetPageCount(_ context.Context, id, pages int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[id] = pages
	return nil
}

func (f *fakeDocs) SetHasStructuredFields(_ context.Context, id int, v bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flagged[id] = v
	return nil
}

func (f *fakeDocs) BumpVersion(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.versions[id]++
	return nil
}

func (f *fakeDocs) Delete(context.Context, int) error {
	return errors.New("not implemented")
}

type fakeAttempts struct {
	mu     sync.Mutex
	rows   []*ent.ExtractionAttempt
	nextID int
}

func (f *fakeAttempts) Record(_ context.Context, documentID int, p repository.RecordAttemptParams) (*ent.ExtractionAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	row := &ent.ExtractionAttempt{
		ID:            f.nextID,
		DocumentID:    documentID,
		AttemptNumber: p.AttemptNumber,
		Succeeded:     p.Succeeded,
		FullText:      p.FullText,
		Language:      p.Language,
		Confidence:    p.Confidence,
		Engine:        p.Engine,
		ElapsedMs:     p.ElapsedMS,
	}
	f.rows = append(f.rows, row)
	return row, nil
}

func (f *fakeAttempts) Authoritative(_ context.Context, documentID int) (*ent.ExtractionAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rows {
		if r.DocumentID == documentID && r.Succeeded {
			return r, nil
		}
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeAttempts) ListForDocument(_ context.Context, documentID int) ([]*ent.ExtractionAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.ExtractionAttempt
	for _, r := range f.rows {
		if r.DocumentID == documentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttempts) DeleteForDocument(_ context.Context, documentID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var kept []*ent.ExtractionAttempt
	deleted := 0
	for _, r := range f.rows {
		if r.DocumentID == documentID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	f.rows = kept
	return deleted, nil
}

type fakeFields struct {
	mu   sync.Mutex
	rows map[int]entity.StructuredFields
}

func newFakeFields() *fakeFields {
	return &fakeFields{rows: make(map[int]entity.StructuredFields)}
}

func (f *fakeFields) Replace(_ context.Context, documentID int, fields entity.StructuredFields) (*ent.StructuredFields, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[documentID] = fields
	return &ent.StructuredFields{DocumentID: documentID, Format: fields.Format}, nil
}

func (f *fakeFields) GetForDocument(_ context.Context, documentID int) (*ent.StructuredFields, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fields, ok := f.rows[documentID]; ok {
		return &ent.StructuredFields{DocumentID: documentID, Format: fields.Format}, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeFields) DeleteForDocument(_ context.Context, documentID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[documentID]; ok {
		delete(f.rows, documentID)
		return 1, nil
	}
	return 0, nil
}

type fakeFaces struct {
	mu       sync.Mutex
	rows     map[int]*ent.FaceRecord
	indexIDs map[int]string
	nextID   int
}

func newFakeFaces() *fakeFaces {
	return &fakeFaces{rows: make(map[int]*ent.FaceRecord), indexIDs: make(map[int]string)}
}

func (f *fakeFaces) Create(_ context.Context, documentID int, p repository.CreateFaceParams) (*ent.FaceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	row := &ent.FaceRecord{
		ID:         f.nextID,
		DocumentID: documentID,
		PageNumber: p.PageNumber,
		BoxX:       p.Box.X,
		BoxY:       p.Box.Y,
		BoxW:       p.Box.W,
		BoxH:       p.Box.H,
		Confidence: p.Confidence,
		Quality:    p.Quality,
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeFaces) SetIndexID(_ context.Context, id int, indexID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.indexIDs[id] = indexID
	return nil
}

func (f *fakeFaces) GetByID(_ context.Context, id int) (*ent.FaceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.rows[id]; ok {
		return r, nil
	}
	return nil, &ent.NotFoundError{}
}

func (f *fakeFaces) ListForDocument(_ context.Context, documentID int) ([]*ent.FaceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.FaceRecord
	for _, r := range f.rows {
		if r.DocumentID == documentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFaces) DeleteForDocument(_ context.Context, documentID int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	deleted := 0
	for id, r := range f.rows {
		if r.DocumentID == documentID {
			delete(f.rows, id)
			deleted++
		}
	}
	return deleted, nil
}

type failureEntry struct {
	category constants.FailureCategory
	attempt  int
	message  string
}

type fakeFailures struct {
	mu      sync.Mutex
	entries []failureEntry
}

func (f *fakeFailures) Record(_ context.Context, _ int, category constants.FailureCategory, attempt int, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, failureEntry{category: category, attempt: attempt, message: message})
	return nil
}

func (f *fakeFailures) ListForDocument(context.Context, int) ([]*ent.ProcessingFailure, error) {
	return nil, nil
}

func (f *fakeFailures) byCategory(category constants.FailureCategory) []failureEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []failureEntry
	for _, e := range f.entries {
		if e.category == category {
			out = append(out, e)
		}
	}
	return out
}

type fakeIndex struct {
	mu           sync.Mutex
	faces        map[int]index.FaceEntry
	docs         map[int]index.DocEntry
	clearedFaces []int
	clearedDocs  []int
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{faces: make(map[int]index.FaceEntry), docs: make(map[int]index.DocEntry)}
}

func (f *fakeIndex) EnsureIndices(context.Context) error { return nil }

func (f *fakeIndex) IndexFace(_ context.Context, e index.FaceEntry) error {
	if face.IsSentinel(e.Embedding) {
		return index.ErrSentinelEmbedding
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faces[e.FaceID] = e
	return nil
}

func (f *fakeIndex) IndexDocument(_ context.Context, e index.DocEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[e.DocumentID] = e
	return nil
}

func (f *fakeIndex) DeleteFace(_ context.Context, faceID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.faces, faceID)
	return nil
}

func (f *fakeIndex) DeleteDocument(_ context.Context, documentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, documentID)
	f.clearedDocs = append(f.clearedDocs, documentID)
	return nil
}

func (f *fakeIndex) DeleteDocumentFaces(_ context.Context, documentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, e := range f.faces {
		if e.DocumentID == documentID {
			delete(f.faces, id)
		}
	}
	f.clearedFaces = append(f.clearedFaces, documentID)
	return nil
}

type scriptedEngine struct {
	mu    sync.Mutex
	calls int
	fn    func(call int) (extract.PageResult, error)
}

func (e *scriptedEngine) Name() string { return "scripted" }

func (e *scriptedEngine) ExtractPage(_ context.Context, _ string) (extract.PageResult, error) {
	e.mu.Lock()
	e.calls++
	call := e.calls
	e.mu.Unlock()
	return e.fn(call)
}

type scriptedDetector struct {
	mu         sync.Mutex
	calls      int
	detections []face.Detection
	err        error
	fn         func(path string) ([]face.Detection, error)
}

func (d *scriptedDetector) Name() string { return "scripted-face" }

func (d *scriptedDetector) Detect(_ context.Context, path string, _ float32) ([]face.Detection, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()
	if d.fn != nil {
		return d.fn(path)
	}
	if d.err != nil {
		return nil, d.err
	}
	return d.detections, nil
}

// --- harness ---------------------------------------------------------------

type harness struct {
	proc     *Processor
	docs     *fakeDocs
	attempts *fakeAttempts
	fields   *fakeFields
	faces    *fakeFaces
	failures *fakeFailures
	idx      *fakeIndex
	locker   *lease.LocalLocker
}

func imageDoc(id int) *ent.Document {
	return &ent.Document{
		ID:               id,
		SourcePath:       fmt.Sprintf("/scans/doc-%d.png", id),
		Filename:         fmt.Sprintf("doc-%d.png", id),
		FileKind:         string(constants.IMAGE),
		ProcessingStatus: string(constants.StatusPending),
		VersionNumber:    1,
	}
}

func newHarness(doc *ent.Document, eng extract.TextEngine, det face.Engine) *harness {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := &harness{
		docs:     newFakeDocs(doc),
		attempts: &fakeAttempts{},
		fields:   newFakeFields(),
		faces:    newFakeFaces(),
		failures: &fakeFailures{},
		idx:      newFakeIndex(),
		locker:   lease.NewLocalLocker(),
	}
	h.proc = NewProcessor(
		logger,
		Config{MaxAttempts: 3, FaceMinConfidence: 0.5, DetectConcurrency: 2, ProcessTimeout: time.Minute},
		h.docs, h.attempts, h.fields, h.faces, h.failures,
		h.locker,
		imaging.NewPreparer(imaging.Config{}, nil, logger),
		eng,
		det,
		h.idx,
	)
	return h
}

func realEmbedding() []float32 {
	e := make([]float32, face.EmbeddingDims)
	e[0] = 1
	return e
}

// --- tests -----------------------------------------------------------------

func TestProcessCompletes(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: "hello world", Language: "eng", Confidence: 0.9}, nil
	}}
	det := &scriptedDetector{detections: []face.Detection{{
		Box:        entity.FaceBox{X: 10, Y: 20, W: 100, H: 100},
		Confidence: 0.8,
		Embedding:  realEmbedding(),
		Quality:    0.7,
	}}}
	h := newHarness(imageDoc(1), eng, det)

	require.NoError(t, h.proc.Process(context.Background(), 1))

	assert.Equal(t,
		[]constants.ProcessingStatus{constants.StatusProcessing, constants.StatusCompleted},
		h.docs.statuses)
	assert.Equal(t, 1, h.docs.pages[1])

	require.Len(t, h.attempts.rows, 1)
	a := h.attempts.rows[0]
	assert.True(t, a.Succeeded)
	assert.Equal(t, 1, a.AttemptNumber)
	assert.Equal(t, "hello world", a.FullText)
	assert.Equal(t, "scripted", a.Engine)

	require.Len(t, h.faces.rows, 1)
	assert.Equal(t, "1", h.faces.indexIDs[1])
	require.Contains(t, h.idx.faces, 1)
	assert.Equal(t, 1, h.idx.faces[1].DocumentID)

	require.Contains(t, h.idx.docs, 1)
	assert.Equal(t, "hello world", h.idx.docs[1].FullText)
	assert.Empty(t, h.failures.entries)

	// Lease must be free again after the run.
	_, ok, err := h.locker.Acquire(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProcessRequiresReviewWhenAllAttemptsFail(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{}, errors.New("recognition crashed")
	}}
	det := &scriptedDetector{}
	h := newHarness(imageDoc(1), eng, det)

	require.NoError(t, h.proc.Process(context.Background(), 1))

	assert.Equal(t,
		[]constants.ProcessingStatus{constants.StatusProcessing, constants.StatusRequiresReview},
		h.docs.statuses)

	require.Len(t, h.attempts.rows, 3)
	for i, a := range h.attempts.rows {
		assert.Equal(t, i+1, a.AttemptNumber, "attempt numbers stay contiguous")
		assert.False(t, a.Succeeded)
	}
	assert.Len(t, h.failures.byCategory(constants.FailureExtraction), 3)

	// Face detection still ran despite the text outcome.
	assert.Equal(t, 1, det.calls)
	// No fulltext entry for an unextracted document.
	assert.NotContains(t, h.idx.docs, 1)
}

func TestProcessRecoversOnSecondAttempt(t *testing.T) {
	eng := &scriptedEngine{fn: func(call int) (extract.PageResult, error) {
		if call == 1 {
			return extract.PageResult{}, errors.New("transient")
		}
		return extract.PageResult{Text: "recovered", Language: "eng", Confidence: 0.5}, nil
	}}
	h := newHarness(imageDoc(1), eng, &scriptedDetector{})

	require.NoError(t, h.proc.Process(context.Background(), 1))

	require.Len(t, h.attempts.rows, 2)
	assert.False(t, h.attempts.rows[0].Succeeded)
	assert.True(t, h.attempts.rows[1].Succeeded)
	assert.Len(t, h.failures.byCategory(constants.FailureExtraction), 1)
	assert.Equal(t, string(constants.StatusCompleted), h.docs.rows[1].ProcessingStatus)
}

func TestProcessExtractsStructuredFields(t *testing.T) {
	mrzText := "MACHINE READABLE ZONE\n" +
		"P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<\n" +
		"L898902C36UTO7408122F1204159ZE184226B<<<<<10\n"
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: mrzText, Language: "eng", Confidence: 0.95}, nil
	}}
	h := newHarness(imageDoc(1), eng, &scriptedDetector{})

	require.NoError(t, h.proc.Process(context.Background(), 1))

	fields, ok := h.fields.rows[1]
	require.True(t, ok, "structured fields must be persisted")
	assert.Equal(t, "ERIKSSON", fields.Surname)
	assert.Equal(t, "ANNA MARIA", fields.GivenNames)
	assert.Equal(t, "L898902C3", fields.DocumentNumber)
	assert.True(t, fields.ChecksumValid)
	assert.True(t, h.docs.flagged[1])

	entry := h.idx.docs[1]
	assert.Equal(t, "L898902C3", entry.DocumentNumber)
	assert.Equal(t, "ERIKSSON", entry.Surname)
	assert.Contains(t, entry.MRZText, "L898902C36UTO")
}

func TestProcessSkipsWhenLeaseHeld(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: "x"}, nil
	}}
	h := newHarness(imageDoc(1), eng, &scriptedDetector{})

	_, ok, err := h.locker.Acquire(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, h.proc.Process(context.Background(), 1))
	assert.Empty(t, h.docs.statuses, "a leased document must not change status")
	assert.Zero(t, eng.calls)
}

func TestProcessMissingDocumentDropsTask(t *testing.T) {
	h := newHarness(imageDoc(1), &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{}, nil
	}}, &scriptedDetector{})

	require.NoError(t, h.proc.Process(context.Background(), 99))
	assert.Empty(t, h.docs.statuses)
}

func TestProcessPanicMarksFailed(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		panic("engine blew up")
	}}
	h := newHarness(imageDoc(1), eng, &scriptedDetector{})

	require.NoError(t, h.proc.Process(context.Background(), 1))

	assert.Equal(t, string(constants.StatusFailed), h.docs.rows[1].ProcessingStatus)
	failures := h.failures.byCategory(constants.FailureProcessing)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].message, "engine blew up")

	// The deferred release must still have run.
	_, ok, err := h.locker.Acquire(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProcessSentinelEmbeddingStaysUnindexed(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: "t", Confidence: 0.5}, nil
	}}
	det := &scriptedDetector{detections: []face.Detection{{
		Box:        entity.FaceBox{X: 0, Y: 0, W: 80, H: 80},
		Confidence: 0.9,
		Embedding:  face.SentinelEmbedding(),
		Quality:    0.3,
	}}}
	h := newHarness(imageDoc(1), eng, det)

	require.NoError(t, h.proc.Process(context.Background(), 1))

	require.Len(t, h.faces.rows, 1, "the face row itself is still kept")
	assert.Empty(t, h.faces.indexIDs, "sentinel faces get no index id")
	assert.Empty(t, h.idx.faces)
	assert.Empty(t, h.failures.byCategory(constants.FailureIndexWrite),
		"a sentinel skip is not an index failure")
}

func TestProcessFaceStageFailureDoesNotFailDocument(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: "t", Confidence: 0.5}, nil
	}}
	det := &scriptedDetector{err: errors.New("model sidecar 502")}
	h := newHarness(imageDoc(1), eng, det)

	require.NoError(t, h.proc.Process(context.Background(), 1))

	assert.Equal(t, string(constants.StatusCompleted), h.docs.rows[1].ProcessingStatus)
	require.Len(t, h.failures.byCategory(constants.FailureFaceDetection), 1)
}

func TestDetectFacesToleratesFailedPage(t *testing.T) {
	det := &scriptedDetector{fn: func(path string) ([]face.Detection, error) {
		if path == "/pages/p1.png" {
			return nil, errors.New("decoder crash")
		}
		return []face.Detection{{
			Box:        entity.FaceBox{X: 1, Y: 2, W: 30, H: 40},
			Confidence: 0.9,
			Embedding:  realEmbedding(),
			Quality:    0.8,
		}}, nil
	}}
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: "t"}, nil
	}}
	h := newHarness(imageDoc(1), eng, det)

	h.proc.detectFaces(context.Background(), 1, []imaging.PageImage{
		{Number: 1, Path: "/pages/p1.png"},
		{Number: 2, Path: "/pages/p2.png"},
	})

	recorded := h.failures.byCategory(constants.FailureFaceDetection)
	require.Len(t, recorded, 1)
	assert.Contains(t, recorded[0].message, "page 1")

	rows, err := h.faces.ListForDocument(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].PageNumber)
}

func TestProcessReprocessReplacesPriorRun(t *testing.T) {
	eng := &scriptedEngine{fn: func(int) (extract.PageResult, error) {
		return extract.PageResult{Text: "second run", Language: "eng", Confidence: 0.8}, nil
	}}
	h := newHarness(imageDoc(1), eng, &scriptedDetector{})

	// Outputs of an earlier run.
	ctx := context.Background()
	_, err := h.attempts.Record(ctx, 1, repository.RecordAttemptParams{AttemptNumber: 1, Succeeded: true, FullText: "first run", Engine: "scripted"})
	require.NoError(t, err)
	_, err = h.fields.Replace(ctx, 1, entity.StructuredFields{DocumentID: 1, Format: "A"})
	require.NoError(t, err)
	row, err := h.faces.Create(ctx, 1, repository.CreateFaceParams{PageNumber: 1})
	require.NoError(t, err)
	require.NoError(t, h.idx.IndexFace(ctx, index.FaceEntry{FaceID: row.ID, DocumentID: 1, Embedding: realEmbedding()}))

	require.NoError(t, h.proc.Process(ctx, 1))

	require.Len(t, h.attempts.rows, 1, "prior attempts replaced, not appended")
	assert.Equal(t, "second run", h.attempts.rows[0].FullText)
	assert.Equal(t, 1, h.docs.versions[1], "version bumped exactly once")
	assert.Equal(t, []int{1}, h.idx.clearedFaces)
	assert.Equal(t, []int{1}, h.idx.clearedDocs)
	assert.False(t, h.docs.flagged[1], "flag reset until the new run finds a zone")
	assert.NotContains(t, h.fields.rows, 1, "no zone in the rerun text")
	assert.Equal(t, string(constants.StatusCompleted), h.docs.rows[1].ProcessingStatus)
}
