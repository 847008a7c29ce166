package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/imaging"
)

// pageEngine serves canned results keyed by page path.
type pageEngine struct {
	results map[string]PageResult
	errs    map[string]error
	calls   []string
}

func (e *pageEngine) Name() string { return "canned" }

func (e *pageEngine) ExtractPage(_ context.Context, imagePath string) (PageResult, error) {
	e.calls = append(e.calls, imagePath)
	if err, ok := e.errs[imagePath]; ok {
		return PageResult{}, err
	}
	return e.results[imagePath], nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pages(n int) []imaging.PageImage {
	out := make([]imaging.PageImage, n)
	for i := range out {
		out[i] = imaging.PageImage{Number: i + 1, Path: string(rune('a' + i))}
	}
	return out
}

func TestAssembleDocumentJoinsPagesWithMarkers(t *testing.T) {
	eng := &pageEngine{results: map[string]PageResult{
		"a": {Text: "first page", Confidence: 0.9, Language: "eng"},
		"b": {Text: "second page", Confidence: 0.7},
	}}

	res, err := AssembleDocument(context.Background(), eng, pages(2), true, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "--- Page 1 ---\nfirst page\n--- Page 2 ---\nsecond page", res.Text)
	assert.Equal(t, 2, res.Pages)
	assert.Equal(t, "eng", res.Language)
	assert.Equal(t, "canned", res.Engine)
	assert.InDelta(t, 0.8, res.Confidence, 1e-6)
	assert.Equal(t, []string{"a", "b"}, eng.calls)
}

func TestAssembleDocumentWithoutMarkers(t *testing.T) {
	eng := &pageEngine{results: map[string]PageResult{
		"a": {Text: "only page", Confidence: 1},
	}}

	res, err := AssembleDocument(context.Background(), eng, pages(1), false, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, "only page", res.Text)
	assert.Equal(t, "unknown", res.Language)
}

func TestAssembleDocumentToleratesFailedPage(t *testing.T) {
	eng := &pageEngine{
		results: map[string]PageResult{
			"a": {Text: "kept", Confidence: 0.9, Blocks: []entity.TextBlock{{Text: "kept"}}},
			"c": {Text: "also kept", Confidence: 0.9},
		},
		errs: map[string]error{"b": errors.New("blank page")},
	}

	res, err := AssembleDocument(context.Background(), eng, pages(3), false, quietLogger())
	require.NoError(t, err)

	// the failed page contributes no text but still drags the mean down
	assert.Equal(t, "kept\nalso kept", res.Text)
	assert.InDelta(t, 0.6, res.Confidence, 1e-6)
	assert.Len(t, res.Blocks, 1)
	assert.Equal(t, 3, res.Pages)
}

func TestAssembleDocumentFailsWhenEveryPageFails(t *testing.T) {
	boom := errors.New("engine crashed")
	eng := &pageEngine{errs: map[string]error{"a": boom, "b": boom}}

	_, err := AssembleDocument(context.Background(), eng, pages(2), true, quietLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "all 2 pages failed")
}

func TestMeanConfidence(t *testing.T) {
	assert.Zero(t, MeanConfidence(nil))
	blocks := []entity.TextBlock{{Confidence: 0.5}, {Confidence: 1.0}}
	assert.InDelta(t, 0.75, MeanConfidence(blocks), 1e-6)
}

func TestNormalize(t *testing.T) {
	in := "LINE ONE\r\nLINE\tTWO   SPACED\r\n\r\n\r\n\r\n___________\r\nLINE THREE  "
	want := "LINE ONE\nLINE TWO SPACED\n\nLINE THREE"
	assert.Equal(t, want, Normalize(in))

	assert.Equal(t, "", Normalize(""))
	// characters survive untouched, only whitespace is collapsed
	assert.Equal(t, "P<UTOERIKSSON<<ANNA", Normalize("P<UTOERIKSSON<<ANNA"))
}
