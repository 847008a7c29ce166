package entity

import "time"

// TextBlock is one recognized region of a page, with its position and
// recognition confidence. Stored as the typed block list on an attempt.
type TextBlock struct {
	Text       string  `json:"text"`
	X1         int     `json:"x1"`
	Y1         int     `json:"y1"`
	X2         int     `json:"x2"`
	Y2         int     `json:"y2"`
	Confidence float32 `json:"confidence"`
}

// Attempt represents an extraction attempt for data transfer between layers.
type Attempt struct {
	ID            int         `json:"id"`
	DocumentID    int         `json:"document_id"`
	AttemptNumber int         `json:"attempt_number"`
	Succeeded     bool        `json:"succeeded"`
	FullText      string      `json:"full_text,omitempty"`
	Blocks        []TextBlock `json:"blocks,omitempty"`
	Language      string      `json:"language,omitempty"`
	Confidence    float32     `json:"confidence"`
	Engine        string      `json:"engine"`
	ElapsedMS     int64       `json:"elapsed_ms"`
	CreatedAt     time.Time   `json:"created_at"`
}

// StructuredFields is the parsed machine-readable zone of a document.
type StructuredFields struct {
	DocumentID     int      `json:"document_id"`
	Format         string   `json:"format"`
	DocumentType   string   `json:"document_type,omitempty"`
	CountryCode    string   `json:"country_code,omitempty"`
	Surname        string   `json:"surname,omitempty"`
	GivenNames     string   `json:"given_names,omitempty"`
	DocumentNumber string   `json:"document_number,omitempty"`
	Nationality    string   `json:"nationality,omitempty"`
	BirthDate      string   `json:"birth_date,omitempty"`
	Sex            string   `json:"sex,omitempty"`
	ExpiryDate     string   `json:"expiry_date,omitempty"`
	PersonalNumber string   `json:"personal_number,omitempty"`
	ChecksumValid  bool     `json:"checksum_valid"`
	RawLines       []string `json:"raw_lines,omitempty"`
}

// Failure represents a processing failure log entry.
type Failure struct {
	ID            int       `json:"id"`
	DocumentID    int       `json:"document_id"`
	Category      string    `json:"category"`
	AttemptNumber int       `json:"attempt_number"`
	Message       string    `json:"message"`
	OccurredAt    time.Time `json:"occurred_at"`
}
