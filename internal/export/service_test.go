package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/repository"
)

// Fakes answer from memory; unused interface methods fall through to the
// embedded nil and would panic.

type fakeDocuments struct {
	repository.DocumentRepository
	rows []*ent.Document
}

func (f *fakeDocuments) List(_ context.Context, status string, limit, offset int) ([]*ent.Document, int, error) {
	var match []*ent.Document
	for _, r := range f.rows {
		if status == "" || r.ProcessingStatus == status {
			match = append(match, r)
		}
	}
	total := len(match)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return match[offset:end], total, nil
}

type fakeAttempts struct {
	repository.AttemptRepository
	byDoc map[int]*ent.ExtractionAttempt
}

func (f *fakeAttempts) Authoritative(_ context.Context, documentID int) (*ent.ExtractionAttempt, error) {
	if a, ok := f.byDoc[documentID]; ok {
		return a, nil
	}
	return nil, &ent.NotFoundError{}
}

type fakeFields struct {
	repository.StructuredFieldsRepository
	byDoc map[int]*ent.StructuredFields
}

func (f *fakeFields) GetForDocument(_ context.Context, documentID int) (*ent.StructuredFields, error) {
	if r, ok := f.byDoc[documentID]; ok {
		return r, nil
	}
	return nil, &ent.NotFoundError{}
}

type fakeFaces struct {
	repository.FaceRepository
	byDoc map[int][]*ent.FaceRecord
}

func (f *fakeFaces) ListForDocument(_ context.Context, documentID int) ([]*ent.FaceRecord, error) {
	return f.byDoc[documentID], nil
}

type fakeFailures struct {
	repository.FailureRepository
	byDoc map[int][]*ent.ProcessingFailure
}

func (f *fakeFailures) ListForDocument(_ context.Context, documentID int) ([]*ent.ProcessingFailure, error) {
	return f.byDoc[documentID], nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	uploaded := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	docs := &fakeDocuments{rows: []*ent.Document{
		{
			ID: 1, Filename: "passport.png", FileKind: string(constants.IMAGE),
			ProcessingStatus: string(constants.StatusCompleted), PageCount: 1,
			UploadedAt: uploaded, HasStructuredFields: true,
		},
		{
			ID: 2, Filename: "blurry.pdf", FileKind: string(constants.PDF),
			ProcessingStatus: string(constants.StatusRequiresReview), PageCount: 3,
			UploadedAt: uploaded,
		},
	}}
	attempts := &fakeAttempts{byDoc: map[int]*ent.ExtractionAttempt{
		1: {ID: 10, DocumentID: 1, AttemptNumber: 1, Succeeded: true, Language: "eng", Confidence: 0.93, Engine: "tesseract"},
	}}
	fields := &fakeFields{byDoc: map[int]*ent.StructuredFields{
		1: {DocumentID: 1, DocumentNumber: "L898902C3", Surname: "ERIKSSON", GivenNames: "ANNA MARIA", ChecksumValid: true},
	}}
	faces := &fakeFaces{byDoc: map[int][]*ent.FaceRecord{
		1: {{ID: 1, DocumentID: 1}, {ID: 2, DocumentID: 1}},
	}}
	failures := &fakeFailures{byDoc: map[int][]*ent.ProcessingFailure{
		2: {
			{ID: 1, DocumentID: 2, Category: string(constants.FailureExtraction), AttemptNumber: 1, Message: "blank page"},
			{ID: 2, DocumentID: 2, Category: string(constants.FailureExtraction), AttemptNumber: 3, Message: "no text found"},
		},
	}}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(docs, attempts, fields, faces, failures, logger)
}

func openSheet(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue("Documents", ref)
	require.NoError(t, err)
	return v
}

func TestExportDocumentsXLSX(t *testing.T) {
	svc := newTestService(t)

	data, err := svc.ExportDocumentsXLSX(context.Background(), "")
	require.NoError(t, err)
	f := openSheet(t, data)

	assert.Equal(t, "ID", cell(t, f, "A1"))
	assert.Equal(t, "Last Failure", cell(t, f, "N1"))

	// completed document with fields, attempt and faces
	assert.Equal(t, "1", cell(t, f, "A2"))
	assert.Equal(t, "passport.png", cell(t, f, "B2"))
	assert.Equal(t, "completed", cell(t, f, "D2"))
	assert.Equal(t, "2026-08-25T10:00:00Z", cell(t, f, "F2"))
	assert.Equal(t, "eng", cell(t, f, "G2"))
	assert.Equal(t, "0.93", cell(t, f, "H2"))
	assert.Equal(t, "L898902C3", cell(t, f, "I2"))
	assert.Equal(t, "ERIKSSON", cell(t, f, "J2"))
	assert.Equal(t, "TRUE", cell(t, f, "L2"))
	assert.Equal(t, "2", cell(t, f, "M2"))
	assert.Equal(t, "", cell(t, f, "N2"))

	// unreviewed document: no attempt columns, newest failure in the last cell
	assert.Equal(t, "requires_review", cell(t, f, "D3"))
	assert.Equal(t, "", cell(t, f, "G3"))
	assert.Equal(t, "", cell(t, f, "I3"))
	assert.Equal(t, "0", cell(t, f, "M3"))
	assert.Equal(t, "extraction_failed: no text found", cell(t, f, "N3"))
}

func TestExportDocumentsXLSXStatusFilter(t *testing.T) {
	svc := newTestService(t)

	data, err := svc.ExportDocumentsXLSX(context.Background(), string(constants.StatusCompleted))
	require.NoError(t, err)
	f := openSheet(t, data)

	assert.Equal(t, "1", cell(t, f, "A2"))
	assert.Equal(t, "", cell(t, f, "A3"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 140))
	assert.Equal(t, "ab", truncate("ab", 2))
	assert.Equal(t, "a…", truncate("abc", 2))
	assert.Equal(t, "untouched", truncate("untouched", 0))
}
