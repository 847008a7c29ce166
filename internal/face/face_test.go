package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanworks/scanvault/internal/entity"
)

func TestQualityWeights(t *testing.T) {
	ref := entity.FaceBox{W: 300, H: 300}

	// full confidence, reference-size face, unknown pose -> 0.4 + 0.3 + 0.15
	assert.InDelta(t, 0.85, Quality(1.0, ref, nil), 1e-6)

	// half confidence, quarter-area face, perfectly frontal pose
	small := entity.FaceBox{W: 150, H: 150}
	q := Quality(0.5, small, &Pose{})
	assert.InDelta(t, 0.2+0.075+0.3, q, 1e-6)

	// a fully turned head zeroes the pose term
	turned := &Pose{Yaw: 45, Pitch: 45}
	assert.InDelta(t, 0.2+0.075, Quality(0.5, small, turned), 1e-6)
}

func TestQualityClamped(t *testing.T) {
	// oversized faces cap the size term; the total never exceeds 1
	big := entity.FaceBox{W: 900, H: 900}
	assert.InDelta(t, 1.0, Quality(1.0, big, &Pose{}), 1e-6)

	for _, q := range []float32{
		Quality(0, entity.FaceBox{}, nil),
		Quality(1, big, &Pose{Yaw: 200}),
	} {
		assert.GreaterOrEqual(t, q, float32(0))
		assert.LessOrEqual(t, q, float32(1))
	}
}

func TestSizeQuality(t *testing.T) {
	assert.InDelta(t, 0.25, SizeQuality(entity.FaceBox{W: 150, H: 150}), 1e-6)
	assert.InDelta(t, 1.0, SizeQuality(entity.FaceBox{W: 600, H: 600}), 1e-6)
}

func TestCompareEmbeddings(t *testing.T) {
	a := []float32{0.3, -0.5, 0.8, 0.1}
	b := []float32{-0.2, 0.9, 0.4, -0.7}

	// symmetric, self-similarity at the maximum
	assert.InDelta(t, 1.0, CompareEmbeddings(a, a), 1e-9)
	assert.InDelta(t, CompareEmbeddings(a, b), CompareEmbeddings(b, a), 1e-12)

	// opposite vectors land at the bottom of the range
	neg := []float32{-0.3, 0.5, -0.8, -0.1}
	assert.InDelta(t, 0.0, CompareEmbeddings(a, neg), 1e-9)

	// bounded output
	s := CompareEmbeddings(a, b)
	assert.GreaterOrEqual(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)
}

func TestCompareEmbeddingsSentinel(t *testing.T) {
	real := []float32{0.1, 0.2, 0.3}
	assert.Zero(t, CompareEmbeddings(make([]float32, 3), real))
	assert.Zero(t, CompareEmbeddings(nil, nil))
	assert.Zero(t, CompareEmbeddings(real, []float32{0.1, 0.2}))
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(SentinelEmbedding()))
	assert.True(t, IsSentinel(nil))
	assert.False(t, IsSentinel([]float32{0, 0, 0.001}))
	assert.Len(t, SentinelEmbedding(), EmbeddingDims)
}

func TestBestDetection(t *testing.T) {
	_, ok := BestDetection(nil)
	require.False(t, ok)

	ds := []Detection{
		{Quality: 0.4},
		{Quality: 0.9},
		{Quality: 0.7},
	}
	best, ok := BestDetection(ds)
	require.True(t, ok)
	assert.InDelta(t, 0.9, best.Quality, 1e-6)
}
