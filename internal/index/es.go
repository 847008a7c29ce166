package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v7"

	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/face"
)

// ES implements Writer and Reader over one Elasticsearch client.
type ES struct {
	es     *elasticsearch.Client
	cfg    common.IndexConfig
	logger *slog.Logger
}

func New(es *elasticsearch.Client, cfg common.IndexConfig, logger *slog.Logger) *ES {
	return &ES{es: es, cfg: cfg, logger: logger}
}

var (
	_ Writer = (*ES)(nil)
	_ Reader = (*ES)(nil)
)

// withTimeout bounds every index call; a hung cluster must not stall the
// pipeline indefinitely.
func (x *ES) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if x.cfg.Timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, x.cfg.Timeout)
}

func (x *ES) EnsureIndices(ctx context.Context) error {
	for _, idx := range []struct {
		name    string
		mapping map[string]any
	}{
		{x.cfg.FaceIndex, faceIndexMapping()},
		{x.cfg.DocumentIndex, documentIndexMapping()},
	} {
		if err := x.ensureIndex(ctx, idx.name, idx.mapping); err != nil {
			return err
		}
	}
	return nil
}

func (x *ES) ensureIndex(ctx context.Context, name string, mapping map[string]any) error {
	ctx, cancel := x.withTimeout(ctx)
	defer cancel()

	res, err := x.es.Indices.Exists([]string{name}, x.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index %s: %w", name, err)
	}
	_ = res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}

	payload, err := json.Marshal(mapping)
	if err != nil {
		return err
	}
	createRes, err := x.es.Indices.Create(name,
		x.es.Indices.Create.WithBody(bytes.NewReader(payload)),
		x.es.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		x.logger.Error("failed to create index", "index", name, "error", err)
		return fmt.Errorf("create index %s: %w", name, err)
	}
	defer func() {
		_ = createRes.Body.Close()
	}()
	if createRes.IsError() {
		return fmt.Errorf("create index %s: %s", name, createRes.Status())
	}
	x.logger.Info("index created", "index", name)
	return nil
}

func (x *ES) IndexFace(ctx context.Context, e FaceEntry) error {
	if face.IsSentinel(e.Embedding) {
		return ErrSentinelEmbedding
	}
	ctx, cancel := x.withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(map[string]any{
		"face_id":       strconv.Itoa(e.FaceID),
		"document_id":   e.DocumentID,
		"embedding":     e.Embedding,
		"quality_score": e.Quality,
		"indexed_at":    time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	res, err := x.es.Index(x.cfg.FaceIndex, bytes.NewReader(payload),
		x.es.Index.WithDocumentID(strconv.Itoa(e.FaceID)),
		x.es.Index.WithContext(ctx),
	)
	if err != nil {
		x.logger.Error("failed to index face", "face_id", e.FaceID, "error", err)
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		err := fmt.Errorf("index face %d: %s", e.FaceID, res.Status())
		x.logger.Error("failed to index face", "face_id", e.FaceID, "error", err)
		return err
	}
	return nil
}

func (x *ES) IndexDocument(ctx context.Context, e DocEntry) error {
	ctx, cancel := x.withTimeout(ctx)
	defer cancel()

	doc := map[string]any{
		"document_id": e.DocumentID,
		"full_text":   e.FullText,
		"indexed_at":  time.Now().UTC().Format(time.RFC3339),
	}
	if e.MRZText != "" {
		doc["mrz_text"] = e.MRZText
	}
	if e.DocumentNumber != "" {
		doc["document_number"] = e.DocumentNumber
	}
	if e.Surname != "" {
		doc["surname"] = e.Surname
	}
	if e.GivenNames != "" {
		doc["given_names"] = e.GivenNames
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := x.es.Index(x.cfg.DocumentIndex, bytes.NewReader(payload),
		x.es.Index.WithDocumentID(strconv.Itoa(e.DocumentID)),
		x.es.Index.WithContext(ctx),
	)
	if err != nil {
		x.logger.Error("failed to index document text", "document_id", e.DocumentID, "error", err)
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		err := fmt.Errorf("index document %d: %s", e.DocumentID, res.Status())
		x.logger.Error("failed to index document text", "document_id", e.DocumentID, "error", err)
		return err
	}
	return nil
}

func (x *ES) DeleteFace(ctx context.Context, faceID int) error {
	return x.deleteByID(ctx, x.cfg.FaceIndex, strconv.Itoa(faceID))
}

func (x *ES) DeleteDocument(ctx context.Context, documentID int) error {
	return x.deleteByID(ctx, x.cfg.DocumentIndex, strconv.Itoa(documentID))
}

// deleteByID removes one entry; a missing entry is success, which keeps
// reprocessing and cascade delete idempotent.
func (x *ES) deleteByID(ctx context.Context, indexName, id string) error {
	ctx, cancel := x.withTimeout(ctx)
	defer cancel()

	res, err := x.es.Delete(indexName, id, x.es.Delete.WithContext(ctx))
	if err != nil {
		x.logger.Error("failed to delete index entry", "index", indexName, "id", id, "error", err)
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		err := fmt.Errorf("delete %s/%s: %s", indexName, id, res.Status())
		x.logger.Error("failed to delete index entry", "index", indexName, "id", id, "error", err)
		return err
	}
	return nil
}

func (x *ES) DeleteDocumentFaces(ctx context.Context, documentID int) error {
	ctx, cancel := x.withTimeout(ctx)
	defer cancel()

	body := fmt.Sprintf(`{"query": {"term": {"document_id": %d}}}`, documentID)
	res, err := x.es.DeleteByQuery([]string{x.cfg.FaceIndex}, strings.NewReader(body),
		x.es.DeleteByQuery.WithContext(ctx),
	)
	if err != nil {
		x.logger.Error("failed to delete document faces", "document_id", documentID, "error", err)
		return err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.StatusCode == http.StatusNotFound {
		return nil
	}
	if res.IsError() {
		err := fmt.Errorf("delete faces of document %d: %s", documentID, res.Status())
		x.logger.Error("failed to delete document faces", "document_id", documentID, "error", err)
		return err
	}
	return nil
}
