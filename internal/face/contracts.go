package face

import (
	"context"

	"github.com/scanworks/scanvault/internal/entity"
)

// EmbeddingDims is the fixed embedding length stored in the face index.
const EmbeddingDims = 512

// Detection is one found face on a page image.
type Detection struct {
	Box        entity.FaceBox
	Confidence float32
	Embedding  []float32
	Quality    float32
}

// Engine finds faces and their embeddings on a page image. Implementations
// filter to confidence >= minConfidence before returning; zero detections
// is a normal outcome, not an error.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string
	Detect(ctx context.Context, imagePath string, minConfidence float32) ([]Detection, error)
}

// BestDetection returns the highest-quality detection. Search uses it to
// pick the query face when an image contains several.
func BestDetection(ds []Detection) (Detection, bool) {
	if len(ds) == 0 {
		return Detection{}, false
	}
	best := ds[0]
	for _, d := range ds[1:] {
		if d.Quality > best.Quality {
			best = d
		}
	}
	return best, true
}
