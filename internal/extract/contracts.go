package extract

import (
	"context"
	"time"

	"github.com/scanworks/scanvault/internal/entity"
)

// TextEngine recognizes the text on a single page image. Implementations are
// interchangeable; the orchestrator never learns which one is active.
type TextEngine interface {
	// Name identifies the engine on attempt rows and in logs.
	Name() string
	ExtractPage(ctx context.Context, imagePath string) (PageResult, error)
}

// PageResult is the recognition outcome for one page.
type PageResult struct {
	Text       string
	Blocks     []entity.TextBlock
	Language   string
	Confidence float32 // mean of block confidences, 0 if none
}

// DocumentResult is the assembled outcome across all pages of a document.
type DocumentResult struct {
	Text       string
	Blocks     []entity.TextBlock
	Language   string
	Confidence float32 // mean of page confidences
	Pages      int
	Engine     string
	Duration   time.Duration
}
