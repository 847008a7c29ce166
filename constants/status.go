package constants

// ProcessingStatus is the canonical status for rows in documents.
type ProcessingStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending        ProcessingStatus = "pending"         // uploaded, not yet picked up
	StatusProcessing     ProcessingStatus = "processing"      // a run is in flight
	StatusCompleted      ProcessingStatus = "completed"       // text extraction succeeded
	StatusRequiresReview ProcessingStatus = "requires_review" // all extraction attempts failed
	StatusFailed         ProcessingStatus = "failed"          // orchestrator-level error
)

// Terminal reports whether no further automatic transition occurs from s.
func Terminal(s ProcessingStatus) bool {
	switch s {
	case StatusCompleted, StatusRequiresReview, StatusFailed:
		return true
	}
	return false
}

// FailureCategory tags rows in processing_failures.
type FailureCategory string

const (
	FailureExtraction    FailureCategory = "extraction_failed"
	FailureFaceDetection FailureCategory = "face_detection_failed"
	FailureIndexWrite    FailureCategory = "index_write_failed"
	FailureProcessing    FailureCategory = "processing_error"
)

// ProcessingStatuses lists the allowed status values for schema validation.
var ProcessingStatuses = []string{
	string(StatusPending),
	string(StatusProcessing),
	string(StatusCompleted),
	string(StatusRequiresReview),
	string(StatusFailed),
}

// FailureCategories lists the allowed failure category values for schema validation.
var FailureCategories = []string{
	string(FailureExtraction),
	string(FailureFaceDetection),
	string(FailureIndexWrite),
	string(FailureProcessing),
}
