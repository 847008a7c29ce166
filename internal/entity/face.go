package entity

import "time"

// FaceBox is a detection bounding box in page-image pixel coordinates.
type FaceBox struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Face represents a persisted face record for data transfer between layers.
type Face struct {
	ID         int       `json:"id"`
	DocumentID int       `json:"document_id"`
	PageNumber int       `json:"page_number"`
	Box        FaceBox   `json:"box"`
	Confidence float32   `json:"confidence"`
	Quality    float32   `json:"quality"`
	IndexID    string    `json:"index_id,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}
