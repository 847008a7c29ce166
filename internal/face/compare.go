package face

import "math"

// CompareEmbeddings maps the cosine similarity of two embeddings into [0,1].
// Symmetric; identical non-zero embeddings score 1. Sentinel (all-zero)
// embeddings compare as 0: they carry no identity.
func CompareEmbeddings(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return (sim + 1) / 2
}

// SentinelEmbedding returns the non-matchable placeholder the fallback
// detector attaches to its boxes.
func SentinelEmbedding() []float32 {
	return make([]float32, EmbeddingDims)
}

// IsSentinel reports whether e carries no identity (empty or all-zero).
func IsSentinel(e []float32) bool {
	for _, v := range e {
		if v != 0 {
			return false
		}
	}
	return true
}
