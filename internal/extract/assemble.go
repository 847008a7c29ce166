package extract

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/imaging"
)

// MeanConfidence returns the mean of block confidences, 0 when there are none.
func MeanConfidence(blocks []entity.TextBlock) float32 {
	if len(blocks) == 0 {
		return 0
	}
	var sum float64
	for _, b := range blocks {
		sum += float64(b.Confidence)
	}
	return float32(sum / float64(len(blocks)))
}

// AssembleDocument runs eng over every page and concatenates the page texts.
// With markers enabled each page is prefixed with a "--- Page N ---" line.
// A failed page contributes no text and zero confidence but still counts in
// the document mean; the whole attempt fails only when every page fails.
func AssembleDocument(ctx context.Context, eng TextEngine, pages []imaging.PageImage, markers bool, logger *slog.Logger) (DocumentResult, error) {
	start := time.Now()

	var b strings.Builder
	var blocks []entity.TextBlock
	var confSum float64
	var failed int
	var lastErr error
	language := ""

	for _, p := range pages {
		res, err := eng.ExtractPage(ctx, p.Path)
		if err != nil {
			logger.Warn("page extraction failed", "page", p.Number, "engine", eng.Name(), "error", err)
			failed++
			lastErr = err
			continue
		}
		if markers {
			fmt.Fprintf(&b, "\n--- Page %d ---\n", p.Number)
		} else if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(res.Text)
		blocks = append(blocks, res.Blocks...)
		confSum += float64(res.Confidence)
		if language == "" && res.Language != "" {
			language = res.Language
		}
	}

	if failed == len(pages) {
		return DocumentResult{Engine: eng.Name(), Duration: time.Since(start)},
			fmt.Errorf("all %d pages failed: %w", len(pages), lastErr)
	}
	if language == "" {
		language = "unknown"
	}

	return DocumentResult{
		Text:       strings.TrimSpace(b.String()),
		Blocks:     blocks,
		Language:   language,
		Confidence: float32(confSum / float64(len(pages))),
		Pages:      len(pages),
		Engine:     eng.Name(),
		Duration:   time.Since(start),
	}, nil
}
