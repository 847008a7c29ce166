package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/repository"
)

var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x42}, 32)...)
	pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n%%EOF\n")
)

// fakeDocs records upserts and answers repeats from memory. Unused interface
// methods are left to the embedded nil and would panic.
type fakeDocs struct {
	repository.DocumentRepository

	mu     sync.Mutex
	nextID int
	byHash map[string]*ent.Document
	params []repository.CreateDocumentParams
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{byHash: map[string]*ent.Document{}}
}

func (f *fakeDocs) UpsertByHash(_ context.Context, p repository.CreateDocumentParams) (*ent.Document, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := hex.EncodeToString(p.ContentHash)
	if row, ok := f.byHash[key]; ok {
		return row, true, nil
	}
	f.params = append(f.params, p)
	f.nextID++
	row := &ent.Document{
		ID:               f.nextID,
		ContentHash:      p.ContentHash,
		SourcePath:       p.SourcePath,
		Filename:         p.Filename,
		FileKind:         string(p.FileKind),
		FileSize:         p.FileSize,
		UploadedAt:       p.UploadedAt,
		ProcessingStatus: string(constants.StatusPending),
		VersionNumber:    1,
	}
	f.byHash[key] = row
	return row, false, nil
}

func newTestIngestor(t *testing.T, maxBytes int64) (*FSIngestor, *fakeDocs, string) {
	t.Helper()
	docs := newFakeDocs()
	uploadDir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFSIngestor(docs, uploadDir, maxBytes, logger), docs, uploadDir
}

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestSniffKind(t *testing.T) {
	assert.Equal(t, constants.PDF, SniffKind(pdfBytes))
	assert.Equal(t, constants.IMAGE, SniffKind(pngBytes))
	assert.Equal(t, constants.IMAGE, SniffKind([]byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}))
	assert.Equal(t, constants.FileKind(""), SniffKind([]byte("plain text, no magic")))
	assert.Equal(t, constants.FileKind(""), SniffKind(nil))
}

func TestIsHidden(t *testing.T) {
	assert.True(t, IsHidden("/scans/.inbox"))
	assert.True(t, IsHidden(".DS_Store"))
	assert.False(t, IsHidden("/scans/passport.pdf"))
}

func TestAllowedExt(t *testing.T) {
	assert.True(t, AllowedExt(".PDF"))
	assert.True(t, AllowedExt("jpeg"))
	assert.True(t, AllowedExt(".png"))
	assert.False(t, AllowedExt(".tiff"))
	assert.False(t, AllowedExt(""))
}

func TestIngestPathRegistersFile(t *testing.T) {
	ing, docs, _ := newTestIngestor(t, 0)
	src := writeFile(t, t.TempDir(), "passport.png", pngBytes)

	res, err := ing.IngestPath(context.Background(), src)
	require.NoError(t, err)

	sum := sha256.Sum256(pngBytes)
	assert.Equal(t, 1, res.DocumentID)
	assert.Equal(t, "passport.png", res.Filename)
	assert.Equal(t, string(constants.IMAGE), res.FileKind)
	assert.Equal(t, int64(len(pngBytes)), res.FileSize)
	assert.False(t, res.Deduplicated)
	assert.Equal(t, hex.EncodeToString(sum[:]), res.HashHex)
	assert.Equal(t, string(constants.StatusPending), res.Status)

	require.Len(t, docs.params, 1)
	assert.Equal(t, sum[:], docs.params[0].ContentHash)
	assert.Equal(t, constants.IMAGE, docs.params[0].FileKind)
}

func TestIngestPathRejectsUnsupportedExtension(t *testing.T) {
	ing, _, _ := newTestIngestor(t, 0)
	src := writeFile(t, t.TempDir(), "scan.tiff", pngBytes)

	_, err := ing.IngestPath(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported or missing extension")
}

func TestIngestPathRejectsMismatchedContent(t *testing.T) {
	ing, docs, _ := newTestIngestor(t, 0)
	// pdf bytes behind a png extension
	src := writeFile(t, t.TempDir(), "fake.png", pdfBytes)

	_, err := ing.IngestPath(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match extension")
	assert.Empty(t, docs.params)
}

func TestIngestPathRejectsOversizeFile(t *testing.T) {
	ing, _, _ := newTestIngestor(t, 8)
	src := writeFile(t, t.TempDir(), "big.png", pngBytes)

	_, err := ing.IngestPath(context.Background(), src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum size")
}

func TestIngestUploadStoresContentAddressed(t *testing.T) {
	ing, _, uploadDir := newTestIngestor(t, 0)

	res, err := ing.IngestUpload(context.Background(), "Photo.PNG", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	sum := sha256.Sum256(pngBytes)
	wantPath := filepath.Join(uploadDir, hex.EncodeToString(sum[:])+".png")
	assert.Equal(t, wantPath, res.SourcePath)
	assert.Equal(t, "Photo.PNG", res.Filename)
	assert.False(t, res.Deduplicated)

	stored, err := os.ReadFile(wantPath)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestIngestUploadDeduplicatesRepeatContent(t *testing.T) {
	ing, docs, _ := newTestIngestor(t, 0)

	first, err := ing.IngestUpload(context.Background(), "a.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)
	second, err := ing.IngestUpload(context.Background(), "b.png", bytes.NewReader(pngBytes))
	require.NoError(t, err)

	assert.False(t, first.Deduplicated)
	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.DocumentID, second.DocumentID)
	// the duplicate keeps the original registration
	assert.Len(t, docs.params, 1)
	assert.Equal(t, "a.png", second.Filename)
}

func TestIngestUploadRejectsEmptyStream(t *testing.T) {
	ing, _, uploadDir := newTestIngestor(t, 0)

	_, err := ing.IngestUpload(context.Background(), "empty.png", bytes.NewReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty upload")
	assertNoStoredUploads(t, uploadDir)
}

func TestIngestUploadRejectsOversizeStream(t *testing.T) {
	ing, _, uploadDir := newTestIngestor(t, 8)

	_, err := ing.IngestUpload(context.Background(), "big.png", bytes.NewReader(pngBytes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum size")
	assertNoStoredUploads(t, uploadDir)
}

func TestIngestUploadRejectsMismatchedContent(t *testing.T) {
	ing, _, uploadDir := newTestIngestor(t, 0)

	_, err := ing.IngestUpload(context.Background(), "fake.jpg", bytes.NewReader(pdfBytes))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match extension")
	assertNoStoredUploads(t, uploadDir)
}

// assertNoStoredUploads checks that a rejected upload leaves nothing behind
// under the upload directory.
func assertNoStoredUploads(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.Truef(t, IsHidden(e.Name()), "unexpected stored file %s", e.Name())
	}
}

func TestIngestDirectoryWalksAndFilters(t *testing.T) {
	ing, docs, _ := newTestIngestor(t, 0)
	root := t.TempDir()
	writeFile(t, root, "a.png", pngBytes)
	writeFile(t, root, "notes.txt", []byte("not a scan"))
	writeFile(t, root, ".inbox/hidden.png", pngBytes)
	writeFile(t, root, "sub/c.pdf", pdfBytes)

	results, stats, err := ing.IngestDirectory(context.Background(), root, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Zero(t, stats.Failed)
	assert.Zero(t, stats.Deduplicated)
	assert.Len(t, results, 2)
	assert.Len(t, docs.params, 2)
}

func TestIngestDirectoryCountsDuplicates(t *testing.T) {
	ing, _, _ := newTestIngestor(t, 0)
	root := t.TempDir()
	writeFile(t, root, "one.png", pngBytes)
	writeFile(t, root, "two.png", pngBytes)

	_, stats, err := ing.IngestDirectory(context.Background(), root, true)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), stats.Matched)
	assert.Equal(t, uint32(2), stats.Succeeded)
	assert.Equal(t, uint32(1), stats.Deduplicated)
}

func TestIngestDirectoryRequiresRoot(t *testing.T) {
	ing, _, _ := newTestIngestor(t, 0)
	_, _, err := ing.IngestDirectory(context.Background(), "   ", true)
	require.Error(t, err)
}

func TestIngestErrorsAreInvalidArgument(t *testing.T) {
	ing, _, _ := newTestIngestor(t, 0)
	src := writeFile(t, t.TempDir(), "scan.tiff", pngBytes)

	_, err := ing.IngestPath(context.Background(), src)
	require.Error(t, err)
	assert.Equal(t, 400, common.HTTPStatus(err))
}
