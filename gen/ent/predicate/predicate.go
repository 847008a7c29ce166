// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtractionAttempt is the predicate function for extractionattempt builders.
type ExtractionAttempt func(*sql.Selector)

// FaceRecord is the predicate function for facerecord builders.
type FaceRecord func(*sql.Selector)

// ProcessingFailure is the predicate function for processingfailure builders.
type ProcessingFailure func(*sql.Selector)

// SearchLog is the predicate function for searchlog builders.
type SearchLog func(*sql.Selector)

// StructuredFields is the predicate function for structuredfields builders.
type StructuredFields func(*sql.Selector)
