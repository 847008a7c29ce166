package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/face"
	"github.com/scanworks/scanvault/internal/index"
	"github.com/scanworks/scanvault/internal/ingest"
	"github.com/scanworks/scanvault/internal/repository"
	"github.com/scanworks/scanvault/internal/search"
)

type fakeIngestor struct {
	result ingest.IngestionResult
	err    error
	calls  int
}

func (f *fakeIngestor) IngestPath(_ context.Context, _ string) (ingest.IngestionResult, error) {
	return f.result, f.err
}

func (f *fakeIngestor) IngestUpload(_ context.Context, _ string, r io.Reader) (ingest.IngestionResult, error) {
	f.calls++
	if f.err != nil {
		return ingest.IngestionResult{}, f.err
	}
	_, _ = io.Copy(io.Discard, r)
	return f.result, nil
}

func (f *fakeIngestor) IngestDirectory(_ context.Context, _ string, _ bool) ([]ingest.IngestionResult, ingest.DirStats, error) {
	return nil, ingest.DirStats{}, nil
}

type fakeDispatcher struct {
	mu  sync.Mutex
	ids []int
	err error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, documentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.ids = append(f.ids, documentID)
	return nil
}

func (f *fakeDispatcher) DispatchBatch(ctx context.Context, documentIDs []int) error {
	for _, id := range documentIDs {
		if err := f.Dispatch(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// Unused interface methods are left to the embedded nil and would panic.
type fakeDocRepo struct {
	repository.DocumentRepository
	mu      sync.Mutex
	rows    map[int]*ent.Document
	deleted []int
}

func (f *fakeDocRepo) GetByID(_ context.Context, id int) (*ent.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, &ent.NotFoundError{}
	}
	return row, nil
}

func (f *fakeDocRepo) List(_ context.Context, status string, limit, offset int) ([]*ent.Document, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*ent.Document
	for _, row := range f.rows {
		if status == "" || row.ProcessingStatus == status {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := len(out)
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, total, nil
}

func (f *fakeDocRepo) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAttemptRepo struct {
	repository.AttemptRepository
	rows []*ent.ExtractionAttempt
}

func (f *fakeAttemptRepo) ListForDocument(_ context.Context, _ int) ([]*ent.ExtractionAttempt, error) {
	return f.rows, nil
}

type fakeFieldsRepo struct {
	repository.StructuredFieldsRepository
	row *ent.StructuredFields
}

func (f *fakeFieldsRepo) GetForDocument(_ context.Context, _ int) (*ent.StructuredFields, error) {
	if f.row == nil {
		return nil, &ent.NotFoundError{}
	}
	return f.row, nil
}

type fakeFaceRepo struct {
	repository.FaceRepository
	rows []*ent.FaceRecord
}

func (f *fakeFaceRepo) ListForDocument(_ context.Context, _ int) ([]*ent.FaceRecord, error) {
	return f.rows, nil
}

type fakeFailureRepo struct {
	repository.FailureRepository
	rows []*ent.ProcessingFailure
}

func (f *fakeFailureRepo) ListForDocument(_ context.Context, _ int) ([]*ent.ProcessingFailure, error) {
	return f.rows, nil
}

type fakeIndexWriter struct {
	index.Writer
	mu           sync.Mutex
	clearedFaces []int
	clearedDocs  []int
}

func (f *fakeIndexWriter) DeleteDocumentFaces(_ context.Context, documentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearedFaces = append(f.clearedFaces, documentID)
	return nil
}

func (f *fakeIndexWriter) DeleteDocument(_ context.Context, documentID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearedDocs = append(f.clearedDocs, documentID)
	return nil
}

type fakeReader struct {
	faceHits []index.FaceHit
	docHits  []index.DocHit
}

func (f *fakeReader) SimilarFaces(_ context.Context, _ []float32, _ int) ([]index.FaceHit, error) {
	return f.faceHits, nil
}

func (f *fakeReader) SearchText(_ context.Context, _, _ string, _ int) ([]index.DocHit, error) {
	return f.docHits, nil
}

type fakeDetector struct {
	mu         sync.Mutex
	detections []face.Detection
	lastPath   string
}

func (f *fakeDetector) Name() string { return "fake" }

func (f *fakeDetector) Detect(_ context.Context, imagePath string, _ float32) ([]face.Detection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastPath = imagePath
	return f.detections, nil
}

type fakeSearchLogs struct {
	mu      sync.Mutex
	entries []repository.RecordSearchParams
}

func (f *fakeSearchLogs) Record(_ context.Context, p repository.RecordSearchParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, p)
	return nil
}

type harness struct {
	ingestor   *fakeIngestor
	dispatcher *fakeDispatcher
	docs       *fakeDocRepo
	attempts   *fakeAttemptRepo
	fields     *fakeFieldsRepo
	faces      *fakeFaceRepo
	failures   *fakeFailureRepo
	idx        *fakeIndexWriter
	reader     *fakeReader
	detector   *fakeDetector
	logs       *fakeSearchLogs
	srv        *Server
	router     *gin.Engine
}

func newHarness() *harness {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := &harness{
		ingestor:   &fakeIngestor{},
		dispatcher: &fakeDispatcher{},
		docs:       &fakeDocRepo{rows: map[int]*ent.Document{}},
		attempts:   &fakeAttemptRepo{},
		fields:     &fakeFieldsRepo{},
		faces:      &fakeFaceRepo{},
		failures:   &fakeFailureRepo{},
		idx:        &fakeIndexWriter{},
		reader:     &fakeReader{},
		detector:   &fakeDetector{},
		logs:       &fakeSearchLogs{},
	}
	searcher := search.NewService(logger, h.reader, h.detector, h.docs, h.faces, h.logs, 0.5)
	h.srv = New(logger, "", h.ingestor, h.dispatcher,
		h.docs, h.attempts, h.fields, h.faces, h.failures,
		searcher, nil, h.idx, Probes{})
	h.router = h.srv.Router()
	return h
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func docRow(id int, status constants.ProcessingStatus) *ent.Document {
	return &ent.Document{
		ID:               id,
		ContentHash:      []byte{0xab, 0xcd},
		SourcePath:       "/uploads/abcd.png",
		Filename:         "scan.png",
		FileKind:         string(constants.IMAGE),
		FileSize:         128,
		UploadedAt:       time.Now().UTC(),
		ProcessingStatus: string(status),
		VersionNumber:    1,
		PageCount:        1,
	}
}

func multipartBody(t *testing.T, field, filename string, content []byte, extra map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	for k, v := range extra {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadAcceptsAndDispatches(t *testing.T) {
	h := newHarness()
	h.ingestor.result = ingest.IngestionResult{DocumentID: 7, Filename: "scan.png", HashHex: "abcd"}
	h.docs.rows[7] = docRow(7, constants.StatusPending)

	body, ctype := multipartBody(t, "file", "scan.png", []byte("fake image bytes"), nil)
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := h.do(req)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var resp struct {
		Document  entity.Document `json:"document"`
		Duplicate bool            `json:"duplicate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Document.ID)
	assert.False(t, resp.Duplicate)
	assert.Equal(t, []int{7}, h.dispatcher.ids)
}

func TestUploadDuplicateSkipsDispatch(t *testing.T) {
	h := newHarness()
	h.ingestor.result = ingest.IngestionResult{DocumentID: 7, Deduplicated: true, HashHex: "abcd"}
	h.docs.rows[7] = docRow(7, constants.StatusCompleted)

	body, ctype := multipartBody(t, "file", "scan.png", []byte("fake image bytes"), nil)
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := h.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		Document  entity.Document `json:"document"`
		Duplicate bool            `json:"duplicate"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Duplicate)
	assert.Equal(t, 7, resp.Document.ID)
	assert.Empty(t, h.dispatcher.ids)
}

func TestUploadRejectsMissingFile(t *testing.T) {
	h := newHarness()

	req := httptest.NewRequest(http.MethodPost, "/documents", nil)
	rec := h.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, h.ingestor.calls)
}

func TestUploadRejectsUnsupportedKind(t *testing.T) {
	h := newHarness()
	h.ingestor.err = common.InvalidArgumentError(`unsupported or missing extension "exe"`)

	body, ctype := multipartBody(t, "file", "tool.exe", []byte("MZ"), nil)
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", ctype)
	rec := h.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, h.dispatcher.ids)
}

func TestListDocumentsFiltersByStatus(t *testing.T) {
	h := newHarness()
	h.docs.rows[1] = docRow(1, constants.StatusCompleted)
	h.docs.rows[2] = docRow(2, constants.StatusPending)
	h.docs.rows[3] = docRow(3, constants.StatusCompleted)

	rec := h.do(httptest.NewRequest(http.MethodGet, "/documents?status=completed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data       []entity.Document `json:"data"`
		Pagination struct {
			Total  int `json:"total"`
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Total)
	assert.Equal(t, 20, resp.Pagination.Limit)
}

func TestListDocumentsRejectsUnknownStatus(t *testing.T) {
	h := newHarness()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/documents?status=bogus", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDocumentDetail(t *testing.T) {
	h := newHarness()
	row := docRow(3, constants.StatusCompleted)
	row.HasStructuredFields = true
	h.docs.rows[3] = row
	h.attempts.rows = []*ent.ExtractionAttempt{
		{ID: 1, DocumentID: 3, AttemptNumber: 1, Succeeded: true, FullText: "P<UTO...", Engine: "tesseract", Confidence: 0.9},
	}
	h.fields.row = &ent.StructuredFields{
		DocumentID: 3, Format: "A", Surname: "ERIKSSON", GivenNames: "ANNA MARIA",
		DocumentNumber: "L898902C3", ChecksumValid: true,
	}
	h.faces.rows = []*ent.FaceRecord{
		{ID: 9, DocumentID: 3, PageNumber: 1, BoxX: 5, BoxY: 6, BoxW: 40, BoxH: 40, Confidence: 0.8, Quality: 0.7, IndexID: "9"},
	}
	h.failures.rows = []*ent.ProcessingFailure{
		{ID: 2, DocumentID: 3, Category: string(constants.FailureExtraction), AttemptNumber: 1, Message: "blur"},
	}

	rec := h.do(httptest.NewRequest(http.MethodGet, "/documents/3", nil))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var detail entity.DocumentDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, 3, detail.ID)
	require.Len(t, detail.Attempts, 1)
	assert.True(t, detail.Attempts[0].Succeeded)
	require.NotNil(t, detail.Fields)
	assert.Equal(t, "ERIKSSON", detail.Fields.Surname)
	assert.True(t, detail.Fields.ChecksumValid)
	require.Len(t, detail.Faces, 1)
	assert.Equal(t, 5, detail.Faces[0].Box.X)
	require.Len(t, detail.Failures, 1)
	assert.Equal(t, string(constants.FailureExtraction), detail.Failures[0].Category)
}

func TestGetDocumentNotFound(t *testing.T) {
	h := newHarness()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/documents/42", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Code)
}

func TestGetDocumentRejectsBadID(t *testing.T) {
	h := newHarness()

	rec := h.do(httptest.NewRequest(http.MethodGet, "/documents/abc", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteDocumentCleansStoreAndIndex(t *testing.T) {
	h := newHarness()
	h.docs.rows[4] = docRow(4, constants.StatusCompleted)

	rec := h.do(httptest.NewRequest(http.MethodDelete, "/documents/4", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []int{4}, h.docs.deleted)
	assert.Equal(t, []int{4}, h.idx.clearedFaces)
	assert.Equal(t, []int{4}, h.idx.clearedDocs)
}

func TestReprocessQueuesExistingDocument(t *testing.T) {
	h := newHarness()
	h.docs.rows[5] = docRow(5, constants.StatusRequiresReview)

	rec := h.do(httptest.NewRequest(http.MethodPost, "/documents/5/reprocess", nil))

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []int{5}, h.dispatcher.ids)
}

func TestReprocessMissingDocument(t *testing.T) {
	h := newHarness()

	rec := h.do(httptest.NewRequest(http.MethodPost, "/documents/42/reprocess", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, h.dispatcher.ids)
}

func TestSearchTextRejectsEmptyQuery(t *testing.T) {
	h := newHarness()

	req := httptest.NewRequest(http.MethodPost, "/search/text", bytes.NewBufferString(`{"query": "  "}`))
	req.Header.Set("Content-Type", "application/json")
	rec := h.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchTextReturnsJoinedMatches(t *testing.T) {
	h := newHarness()
	h.docs.rows[3] = docRow(3, constants.StatusCompleted)
	h.reader.docHits = []index.DocHit{{DocumentID: 3, Score: 1.5, Highlight: "passport"}}

	req := httptest.NewRequest(http.MethodPost, "/search/text", bytes.NewBufferString(`{"query": "passport"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := h.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res entity.TextSearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, 1, res.Count)
	assert.Equal(t, index.ScopeAll, res.Scope)
	assert.Equal(t, 3, res.Matches[0].DocumentID)
	assert.Equal(t, "passport", res.Matches[0].Highlights)
}

func TestSearchFaceNoFaceDetected(t *testing.T) {
	h := newHarness()

	body, ctype := multipartBody(t, "image", "query.png", []byte("fake image bytes"), map[string]string{"threshold": "0.7"})
	req := httptest.NewRequest(http.MethodPost, "/search/face", body)
	req.Header.Set("Content-Type", ctype)
	rec := h.do(req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res entity.FaceSearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, search.ReasonNoFace, res.Reason)
	assert.Zero(t, res.Count)

	// The spooled query image is removed once the handler returns.
	require.NotEmpty(t, h.detector.lastPath)
	_, err := os.Stat(h.detector.lastPath)
	assert.True(t, os.IsNotExist(err))
}

func TestSearchFaceRejectsNonImageQuery(t *testing.T) {
	h := newHarness()

	body, ctype := multipartBody(t, "image", "scan.pdf", []byte("%PDF-1.4"), nil)
	req := httptest.NewRequest(http.MethodPost, "/search/face", body)
	req.Header.Set("Content-Type", ctype)
	rec := h.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, h.detector.lastPath)
}

func TestSearchFaceRejectsBadThreshold(t *testing.T) {
	h := newHarness()

	body, ctype := multipartBody(t, "image", "query.jpg", []byte("fake"), map[string]string{"threshold": "1.5"})
	req := httptest.NewRequest(http.MethodPost, "/search/face", body)
	req.Header.Set("Content-Type", ctype)
	rec := h.do(req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthzReportsProbeStates(t *testing.T) {
	h := newHarness()
	h.srv.Probes = Probes{
		Store:  func(context.Context) error { return nil },
		Index:  func(context.Context) error { return context.DeadlineExceeded },
		Broker: nil,
	}

	rec := h.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "ok", resp.Checks["store"])
	assert.Equal(t, "skipped", resp.Checks["broker"])
	assert.NotEqual(t, "ok", resp.Checks["index"])
}

func TestHealthzAllProbesPass(t *testing.T) {
	h := newHarness()
	ok := func(context.Context) error { return nil }
	h.srv.Probes = Probes{Store: ok, Index: ok, Broker: ok}

	rec := h.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}
