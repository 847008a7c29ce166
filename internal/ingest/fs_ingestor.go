package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scanworks/scanvault/constants"
	ent "github.com/scanworks/scanvault/gen/ent"
	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/repository"
)

// FSIngestor reads from the local filesystem and from upload streams.
type FSIngestor struct {
	Documents repository.DocumentRepository
	UploadDir string
	MaxBytes  int64
	logger    *slog.Logger
}

func NewFSIngestor(docs repository.DocumentRepository, uploadDir string, maxBytes int64, logger *slog.Logger) *FSIngestor {
	return &FSIngestor{
		Documents: docs,
		UploadDir: uploadDir,
		MaxBytes:  maxBytes,
		logger:    logger,
	}
}

func (i *FSIngestor) IngestPath(ctx context.Context, path string) (IngestionResult, error) {
	var out IngestionResult

	abs, err := filepath.Abs(path)
	if err != nil {
		i.logger.Error("abs path error", "path", path, "error", err)
		return out, err
	}

	ext := constants.NormalizeExt(filepath.Ext(abs))
	if ext == "" || !AllowedExt(ext) {
		return out, common.InvalidArgumentErrorf("unsupported or missing extension %q", ext)
	}
	kind := constants.MapExtToKind(ext)

	fi, err := os.Stat(abs)
	if err != nil {
		i.logger.Error("stat error", "path", abs, "error", err)
		return out, err
	}
	if i.MaxBytes > 0 && fi.Size() > i.MaxBytes {
		return out, common.InvalidArgumentErrorf("file exceeds maximum size of %d bytes", i.MaxBytes)
	}

	f, err := os.Open(abs)
	if err != nil {
		i.logger.Error("open error", "path", abs, "error", err)
		return out, err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			i.logger.Warn("close file error", "path", abs, "error", err)
		}
	}(f)

	header := make([]byte, 512)
	n, err := f.Read(header)
	if err != nil && !errors.Is(err, io.EOF) {
		return out, fmt.Errorf("read header: %w", err)
	}
	if sniffed := SniffKind(header[:n]); sniffed != "" && sniffed != kind {
		return out, common.InvalidArgumentErrorf("file content (%s) does not match extension %q", sniffed, ext)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return out, fmt.Errorf("seek: %w", err)
	}

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		i.logger.Error("hash error", "path", abs, "error", err)
		return out, err
	}
	sum := h.Sum(nil)

	row, dedup, err := i.Documents.UpsertByHash(ctx, repository.CreateDocumentParams{
		ContentHash: sum,
		SourcePath:  abs,
		Filename:    filepath.Base(abs),
		FileKind:    kind,
		FileSize:    fi.Size(),
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		return out, err
	}

	return resultFromRow(row, dedup, sum), nil
}

// IngestUpload streams r into a content-addressed file under UploadDir and
// registers it. The stored filename is the hex digest plus the original
// extension, so a duplicate upload lands on the same path.
func (i *FSIngestor) IngestUpload(ctx context.Context, filename string, r io.Reader) (IngestionResult, error) {
	var out IngestionResult

	ext := constants.NormalizeExt(filepath.Ext(filename))
	if ext == "" || !AllowedExt(ext) {
		return out, common.InvalidArgumentErrorf("unsupported or missing extension %q", ext)
	}
	kind := constants.MapExtToKind(ext)

	if err := os.MkdirAll(i.UploadDir, 0o755); err != nil {
		i.logger.Error("upload dir error", "dir", i.UploadDir, "error", err)
		return out, err
	}

	tmp, err := os.CreateTemp(i.UploadDir, ".upload-*")
	if err != nil {
		i.logger.Error("temp file error", "dir", i.UploadDir, "error", err)
		return out, err
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	src := r
	if i.MaxBytes > 0 {
		src = io.LimitReader(r, i.MaxBytes+1)
	}
	h := sha256.New()
	n, err := io.Copy(io.MultiWriter(tmp, h), src)
	if err != nil {
		_ = tmp.Close()
		return out, fmt.Errorf("store upload: %w", err)
	}
	if n == 0 {
		_ = tmp.Close()
		return out, common.InvalidArgumentError("empty upload")
	}
	if i.MaxBytes > 0 && n > i.MaxBytes {
		_ = tmp.Close()
		return out, common.InvalidArgumentErrorf("upload exceeds maximum size of %d bytes", i.MaxBytes)
	}

	header := make([]byte, 512)
	m, err := tmp.ReadAt(header, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		_ = tmp.Close()
		return out, fmt.Errorf("read header: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return out, fmt.Errorf("close temp: %w", err)
	}
	if sniffed := SniffKind(header[:m]); sniffed != "" && sniffed != kind {
		return out, common.InvalidArgumentErrorf("upload content (%s) does not match extension %q", sniffed, ext)
	}

	sum := h.Sum(nil)
	dest := filepath.Join(i.UploadDir, hex.EncodeToString(sum)+"."+ext)
	if err := os.Rename(tmpName, dest); err != nil {
		i.logger.Error("rename upload error", "dest", dest, "error", err)
		return out, err
	}
	cleanup = false

	row, dedup, err := i.Documents.UpsertByHash(ctx, repository.CreateDocumentParams{
		ContentHash: sum,
		SourcePath:  dest,
		Filename:    filepath.Base(filename),
		FileKind:    kind,
		FileSize:    n,
		UploadedAt:  time.Now().UTC(),
	})
	if err != nil {
		_ = os.Remove(dest)
		return out, err
	}

	return resultFromRow(row, dedup, sum), nil
}

// IngestDirectory walks root, skips hidden entries if requested,
// and calls IngestPath for each file. Returns per-file results + aggregate stats.
func (i *FSIngestor) IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	var results []IngestionResult
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: walkErr.Error()})
			stats.Failed++
			return nil
		}
		if skipHidden && IsHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if !AllowedExt(ext) {
			return nil
		}
		stats.Matched++

		r, err := i.IngestPath(ctx, path)
		if err != nil {
			results = append(results, IngestionResult{SourcePath: path, Err: err.Error()})
			stats.Failed++
			return nil
		}

		results = append(results, r)
		stats.Succeeded++
		if r.Deduplicated {
			stats.Deduplicated++
		}
		return nil
	})

	if err != nil {
		return results, stats, fmt.Errorf("walk: %w", err)
	}
	return results, stats, nil
}

func resultFromRow(row *ent.Document, dedup bool, sum []byte) IngestionResult {
	return IngestionResult{
		DocumentID:   row.ID,
		SourcePath:   row.SourcePath,
		Filename:     row.Filename,
		FileKind:     row.FileKind,
		FileSize:     row.FileSize,
		Deduplicated: dedup,
		HashHex:      hex.EncodeToString(sum),
		Status:       row.ProcessingStatus,
		UploadedAt:   row.UploadedAt,
	}
}
