package index

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type esHit struct {
	ID        string              `json:"_id"`
	Score     float64             `json:"_score"`
	Source    json.RawMessage     `json:"_source"`
	Highlight map[string][]string `json:"highlight"`
}

type esSearchResponse struct {
	Hits struct {
		Hits []esHit `json:"hits"`
	} `json:"hits"`
}

type faceSource struct {
	FaceID     string  `json:"face_id"`
	DocumentID int     `json:"document_id"`
	Quality    float32 `json:"quality_score"`
}

type docSource struct {
	DocumentID int `json:"document_id"`
}

// SimilarFaces ranks indexed faces by cosine similarity to the query
// embedding. Results are unfiltered; the caller applies its own threshold.
func (x *ES) SimilarFaces(ctx context.Context, embedding []float32, k int) ([]FaceHit, error) {
	if len(embedding) == 0 {
		return nil, fmt.Errorf("empty query embedding")
	}
	if k <= 0 {
		k = 10
	}

	// Scores shift by +1.0 because Elasticsearch rejects negative scores;
	// cosine similarity spans [-1, 1].
	body := map[string]any{
		"size": k,
		"query": map[string]any{
			"script_score": map[string]any{
				"query": map[string]any{"match_all": map[string]any{}},
				"script": map[string]any{
					"source": "cosineSimilarity(params.query_vector, 'embedding') + 1.0",
					"params": map[string]any{"query_vector": embedding},
				},
			},
		},
		"_source": []string{"face_id", "document_id", "quality_score"},
	}

	resp, err := x.search(ctx, x.cfg.FaceIndex, body)
	if err != nil {
		return nil, err
	}

	hits := make([]FaceHit, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		var src faceSource
		if err := json.Unmarshal(h.Source, &src); err != nil {
			x.logger.Error("failed to decode face hit", "id", h.ID, "error", err)
			continue
		}
		faceID, err := strconv.Atoi(src.FaceID)
		if err != nil {
			x.logger.Error("failed to decode face hit", "id", h.ID, "error", err)
			continue
		}
		hits = append(hits, FaceHit{
			FaceID:     faceID,
			DocumentID: src.DocumentID,
			Similarity: h.Score / 2,
			Quality:    src.Quality,
		})
	}
	return hits, nil
}

func (x *ES) SearchText(ctx context.Context, query, scope string, limit int) ([]DocHit, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if limit <= 0 {
		limit = 20
	}

	body := map[string]any{
		"size":  limit,
		"query": textQuery(query, scope),
		"highlight": map[string]any{
			"fields": map[string]any{
				"full_text":   map[string]any{},
				"surname":     map[string]any{},
				"given_names": map[string]any{},
			},
		},
	}

	resp, err := x.search(ctx, x.cfg.DocumentIndex, body)
	if err != nil {
		return nil, err
	}

	hits := make([]DocHit, 0, len(resp.Hits.Hits))
	for _, h := range resp.Hits.Hits {
		var src docSource
		if err := json.Unmarshal(h.Source, &src); err != nil {
			x.logger.Error("failed to decode document hit", "id", h.ID, "error", err)
			continue
		}
		hits = append(hits, DocHit{
			DocumentID: src.DocumentID,
			Score:      h.Score,
			Highlight:  joinHighlights(h.Highlight),
		})
	}
	return hits, nil
}

// textQuery builds the scope-specific query clause. Unknown scopes fall back
// to ScopeAll.
func textQuery(query, scope string) map[string]any {
	switch scope {
	case ScopeFields:
		return map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": []string{"mrz_text", "document_number", "surname", "given_names"},
			},
		}
	case ScopeText:
		return map[string]any{
			"match": map[string]any{
				"full_text": map[string]any{"query": query},
			},
		}
	default:
		return map[string]any{
			"multi_match": map[string]any{
				"query": query,
				"fields": []string{
					"full_text^2",
					"mrz_text",
					"document_number^3",
					"surname^2",
					"given_names^2",
				},
			},
		}
	}
}

// joinHighlights flattens fragments in a fixed field order so the snippet is
// stable across calls.
func joinHighlights(highlight map[string][]string) string {
	var frags []string
	for _, field := range []string{"full_text", "surname", "given_names"} {
		frags = append(frags, highlight[field]...)
	}
	return strings.Join(frags, " ... ")
}

func (x *ES) search(ctx context.Context, indexName string, body map[string]any) (*esSearchResponse, error) {
	ctx, cancel := x.withTimeout(ctx)
	defer cancel()

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	res, err := x.es.Search(
		x.es.Search.WithContext(ctx),
		x.es.Search.WithIndex(indexName),
		x.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		x.logger.Error("search failed", "index", indexName, "error", err)
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		err := fmt.Errorf("search %s: %s", indexName, res.Status())
		x.logger.Error("search failed", "index", indexName, "error", err)
		return nil, err
	}

	var resp esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &resp, nil
}
