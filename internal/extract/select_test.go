package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/internal/inference"
)

func newSidecar(t *testing.T, handler http.HandlerFunc) *RemoteEngine {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := inference.NewClient(srv.URL, 0, 2*time.Second, quietLogger())
	return NewRemoteEngine(client, time.Second, quietLogger())
}

func TestSelectEngineWithoutRemote(t *testing.T) {
	fallback := &pageEngine{}
	got := SelectEngine(context.Background(), nil, fallback, quietLogger())
	assert.Same(t, fallback, got)
}

func TestSelectEnginePrefersHealthySidecar(t *testing.T) {
	remote := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/healthz", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	got := SelectEngine(context.Background(), remote, &pageEngine{}, quietLogger())
	assert.Equal(t, "remote-ocr", got.Name())
}

func TestSelectEngineFallsBackWhenProbeFails(t *testing.T) {
	remote := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	fallback := &pageEngine{}
	got := SelectEngine(context.Background(), remote, fallback, quietLogger())
	assert.Same(t, fallback, got)
}

func TestRemoteEngineExtractPage(t *testing.T) {
	remote := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/ocr", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "/tmp/page-1.png", req["image_path"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"blocks": []map[string]any{
				{"text": "FIRST LINE", "bbox": []float64{1, 2, 30, 10}, "confidence": 0.9},
				{"text": "SECOND", "confidence": 0.8},
			},
			"language": "eng",
		})
	})

	res, err := remote.ExtractPage(context.Background(), "/tmp/page-1.png")
	require.NoError(t, err)

	assert.Equal(t, "FIRST LINE\nSECOND", res.Text)
	assert.Equal(t, "eng", res.Language)
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, 1, res.Blocks[0].X1)
	assert.Equal(t, 2, res.Blocks[0].Y1)
	assert.Equal(t, 30, res.Blocks[0].X2)
	assert.Equal(t, 10, res.Blocks[0].Y2)
	assert.Zero(t, res.Blocks[1].X2)
	assert.InDelta(t, 0.85, res.Confidence, 1e-6)
}

func TestRemoteEngineRejectsSchemaViolation(t *testing.T) {
	remote := newSidecar(t, func(w http.ResponseWriter, r *http.Request) {
		// confidence outside [0,1] must not be trusted
		_, _ = w.Write([]byte(`{"blocks":[{"text":"x","confidence":1.5}]}`))
	})

	_, err := remote.ExtractPage(context.Background(), "/tmp/page-1.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response schema")
}
