package entity

// FaceMatch is one face-search hit joined back to its canonical records.
type FaceMatch struct {
	FaceID     int      `json:"face_id"`
	DocumentID int      `json:"document_id"`
	Similarity float64  `json:"similarity"`
	Quality    float32  `json:"quality"`
	Box        FaceBox  `json:"box"`
	Document   Document `json:"document"`
}

// FaceSearchResult is the outcome of a face search. An empty Reason means a
// face was found in the query image and the index was consulted.
type FaceSearchResult struct {
	Matches   []FaceMatch `json:"matches"`
	Count     int         `json:"count"`
	Reason    string      `json:"reason,omitempty"`
	ElapsedMS int64       `json:"elapsed_ms"`
}

// TextMatch is one text-search hit joined back to its document.
type TextMatch struct {
	DocumentID int      `json:"document_id"`
	Score      float64  `json:"score"`
	Highlights string   `json:"highlights,omitempty"`
	Document   Document `json:"document"`
}

// TextSearchResult is the outcome of a text search.
type TextSearchResult struct {
	Matches   []TextMatch `json:"matches"`
	Count     int         `json:"count"`
	Scope     string      `json:"scope"`
	ElapsedMS int64       `json:"elapsed_ms"`
}
