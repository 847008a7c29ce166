package index

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/internal/common"
	"github.com/scanworks/scanvault/internal/face"
)

func testES() *ES {
	return New(nil, common.IndexConfig{
		Timeout:       time.Second,
		FaceIndex:     "faces-test",
		DocumentIndex: "documents-test",
	}, slog.Default())
}

func TestIndexFaceRejectsSentinel(t *testing.T) {
	x := testES()

	err := x.IndexFace(context.Background(), FaceEntry{
		FaceID:     7,
		DocumentID: 3,
		Embedding:  face.SentinelEmbedding(),
		Quality:    0.4,
	})
	require.ErrorIs(t, err, ErrSentinelEmbedding)

	err = x.IndexFace(context.Background(), FaceEntry{FaceID: 7, DocumentID: 3})
	require.ErrorIs(t, err, ErrSentinelEmbedding)
}

func TestTextQueryScopes(t *testing.T) {
	q := textQuery("eriksson", ScopeFields)
	mm, ok := q["multi_match"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "eriksson", mm["query"])
	assert.Equal(t, []string{"mrz_text", "document_number", "surname", "given_names"}, mm["fields"])

	q = textQuery("eriksson", ScopeText)
	m, ok := q["match"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, m, "full_text")

	q = textQuery("eriksson", ScopeAll)
	mm, ok = q["multi_match"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []string{
		"full_text^2",
		"mrz_text",
		"document_number^3",
		"surname^2",
		"given_names^2",
	}, mm["fields"])
}

func TestTextQueryUnknownScopeFallsBackToAll(t *testing.T) {
	assert.Equal(t, textQuery("x", ScopeAll), textQuery("x", "bogus"))
	assert.Equal(t, textQuery("x", ScopeAll), textQuery("x", ""))
}

func TestJoinHighlights(t *testing.T) {
	got := joinHighlights(map[string][]string{
		"given_names": {"<em>ANNA</em>"},
		"full_text":   {"frag one", "frag two"},
		"surname":     {"<em>ERIKSSON</em>"},
	})
	assert.Equal(t, "frag one ... frag two ... <em>ERIKSSON</em> ... <em>ANNA</em>", got)

	assert.Equal(t, "", joinHighlights(nil))
	assert.Equal(t, "", joinHighlights(map[string][]string{"other": {"ignored"}}))
}

func TestFaceIndexMappingShape(t *testing.T) {
	m := faceIndexMapping()

	mappings, ok := m["mappings"].(map[string]any)
	require.True(t, ok)
	props, ok := mappings["properties"].(map[string]any)
	require.True(t, ok)

	embedding, ok := props["embedding"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "dense_vector", embedding["type"])
	assert.Equal(t, face.EmbeddingDims, embedding["dims"])
}

func TestDocumentIndexMappingShape(t *testing.T) {
	m := documentIndexMapping()

	mappings, ok := m["mappings"].(map[string]any)
	require.True(t, ok)
	props, ok := mappings["properties"].(map[string]any)
	require.True(t, ok)

	for _, field := range []string{"document_id", "full_text", "mrz_text", "document_number", "surname", "given_names", "indexed_at"} {
		assert.Contains(t, props, field)
	}

	num, ok := props["document_number"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "keyword", num["type"])

	full, ok := props["full_text"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "multilingual", full["analyzer"])
}
