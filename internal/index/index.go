// Package index projects document text and face embeddings into
// Elasticsearch. The index is derived data: the canonical store owns the
// truth and the projection can be rebuilt by reprocessing.
package index

import (
	"context"
	"errors"
)

// Search scopes for the document-text collection.
const (
	ScopeAll    = "all"
	ScopeFields = "fields" // structured fields only
	ScopeText   = "text"   // free text only
)

// ErrSentinelEmbedding rejects placeholder embeddings at the write boundary.
var ErrSentinelEmbedding = errors.New("sentinel embedding is not indexable")

// FaceEntry is one face-collection document.
type FaceEntry struct {
	FaceID     int
	DocumentID int
	Embedding  []float32
	Quality    float32
}

// DocEntry is one text-collection document. The structured fields are empty
// when the document has none.
type DocEntry struct {
	DocumentID     int
	FullText       string
	MRZText        string
	DocumentNumber string
	Surname        string
	GivenNames     string
}

// FaceHit is a face-similarity result, similarity already mapped to [0,1].
type FaceHit struct {
	FaceID     int
	DocumentID int
	Similarity float64
	Quality    float32
}

// DocHit is a ranked text-search result.
type DocHit struct {
	DocumentID int
	Score      float64
	Highlight  string
}

// Writer mutates the two collections. Writes are idempotent upserts keyed
// by the owning id; deletes tolerate entries that are already gone.
type Writer interface {
	EnsureIndices(ctx context.Context) error
	IndexFace(ctx context.Context, e FaceEntry) error
	IndexDocument(ctx context.Context, e DocEntry) error
	DeleteFace(ctx context.Context, faceID int) error
	DeleteDocument(ctx context.Context, documentID int) error
	// DeleteDocumentFaces removes every face entry owned by a document.
	DeleteDocumentFaces(ctx context.Context, documentID int) error
}

// Reader runs the two search queries.
type Reader interface {
	// SimilarFaces returns the k nearest faces by cosine similarity,
	// unfiltered; the caller applies its threshold.
	SimilarFaces(ctx context.Context, embedding []float32, k int) ([]FaceHit, error)
	// SearchText runs a ranked match limited to scope.
	SearchText(ctx context.Context, query, scope string, limit int) ([]DocHit, error)
}
