package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scanworks/scanvault/internal/extract"
	"github.com/scanworks/scanvault/internal/imaging"
)

type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Lang      string // default "eng"

	TessdataDir string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// Engine is the local tesseract fallback. Lower accuracy than the
// recognition sidecar, but it needs nothing beyond the binary.
type Engine struct {
	cfg    Config
	runner imaging.Runner
	logger *slog.Logger
}

func NewEngine(cfg Config, runner imaging.Runner, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if runner == nil {
		runner = imaging.NewExecRunner(logger)
	}
	return &Engine{cfg: cfg, runner: runner, logger: logger}
}

func (e *Engine) Name() string { return "tesseract" }

// ExtractPage runs tesseract once in TSV mode; the same pass yields the
// text, the line blocks, and the word confidences.
func (e *Engine) ExtractPage(ctx context.Context, imagePath string) (extract.PageResult, error) {
	blocks, err := e.tesseractTSV(ctx, imagePath)
	if err != nil {
		return extract.PageResult{}, fmt.Errorf("tesseract: %w", err)
	}
	return extract.PageResult{
		Text:       extract.Normalize(joinBlockText(blocks)),
		Blocks:     blocks,
		Language:   e.cfg.Lang,
		Confidence: extract.MeanConfidence(blocks),
	}, nil
}
