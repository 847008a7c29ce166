package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/inference"
)

type ocrRequest struct {
	ImagePath string `json:"image_path"`
}

type ocrBlock struct {
	Text       string    `json:"text"`
	BBox       []float64 `json:"bbox"`
	Confidence float32   `json:"confidence"`
}

type ocrResponse struct {
	Blocks   []ocrBlock `json:"blocks"`
	Language string     `json:"language"`
}

// RemoteEngine talks to the recognition-model sidecar. It is the
// high-accuracy engine and the preferred choice when the sidecar is up.
type RemoteEngine struct {
	client       *inference.Client
	schema       *jsonschema.Schema
	probeTimeout time.Duration
	logger       *slog.Logger
}

func NewRemoteEngine(client *inference.Client, probeTimeout time.Duration, logger *slog.Logger) *RemoteEngine {
	return &RemoteEngine{
		client:       client,
		schema:       inference.MustCompileSchema("inline://ocr-response.json", inference.BuildOCRResponseSchema()),
		probeTimeout: probeTimeout,
		logger:       logger,
	}
}

func (e *RemoteEngine) Name() string { return "remote-ocr" }

// Probe reports whether the sidecar answers its health endpoint.
func (e *RemoteEngine) Probe(ctx context.Context) error {
	return e.client.Probe(ctx, e.probeTimeout)
}

func (e *RemoteEngine) ExtractPage(ctx context.Context, imagePath string) (PageResult, error) {
	var resp ocrResponse
	if err := e.client.PostJSON(ctx, "/v1/ocr", ocrRequest{ImagePath: imagePath}, &resp, e.schema); err != nil {
		return PageResult{}, err
	}

	blocks := make([]entity.TextBlock, 0, len(resp.Blocks))
	texts := make([]string, 0, len(resp.Blocks))
	for _, b := range resp.Blocks {
		tb := entity.TextBlock{Text: b.Text, Confidence: b.Confidence}
		if len(b.BBox) == 4 {
			tb.X1, tb.Y1, tb.X2, tb.Y2 = int(b.BBox[0]), int(b.BBox[1]), int(b.BBox[2]), int(b.BBox[3])
		}
		blocks = append(blocks, tb)
		texts = append(texts, b.Text)
	}

	return PageResult{
		Text:       Normalize(strings.Join(texts, "\n")),
		Blocks:     blocks,
		Language:   resp.Language,
		Confidence: MeanConfidence(blocks),
	}, nil
}
