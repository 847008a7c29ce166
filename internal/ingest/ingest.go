package ingest

import (
	"context"
	"io"
	"time"
)

// IngestionResult is the per-file ingest outcome.
type IngestionResult struct {
	DocumentID   int
	SourcePath   string
	Filename     string
	FileKind     string
	FileSize     int64
	Deduplicated bool
	HashHex      string
	Status       string
	UploadedAt   time.Time
	Err          string
}

// DirStats summarizes a directory ingest.
type DirStats struct {
	Scanned      uint32
	Matched      uint32
	Succeeded    uint32
	Deduplicated uint32
	Failed       uint32
}

// Ingestor is the behavior the server and batch CLI depend on.
type Ingestor interface {
	// IngestPath registers a single local file.
	IngestPath(ctx context.Context, path string) (IngestionResult, error)
	// IngestUpload stores an uploaded stream under the upload directory and registers it.
	IngestUpload(ctx context.Context, filename string, r io.Reader) (IngestionResult, error)
	// IngestDirectory ingests all matching files under root.
	IngestDirectory(ctx context.Context, root string, skipHidden bool) ([]IngestionResult, DirStats, error)
}
