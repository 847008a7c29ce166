package face

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/scanworks/scanvault/internal/entity"
)

// PigoEngine is the fallback detector. It finds boxes but cannot embed, so
// every detection carries the sentinel embedding and a size-based quality.
type PigoEngine struct {
	classifier *pigo.Pigo
	logger     *slog.Logger
}

// NewPigoEngine loads and unpacks the facefinder cascade at cascadePath.
func NewPigoEngine(cascadePath string, logger *slog.Logger) (*PigoEngine, error) {
	cascade, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("read cascade: %w", err)
	}
	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade: %w", err)
	}
	return &PigoEngine{classifier: classifier, logger: logger}, nil
}

func (e *PigoEngine) Name() string { return "pigo" }

func (e *PigoEngine) Detect(ctx context.Context, imagePath string, minConfidence float32) ([]Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := pigo.GetImage(imagePath)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	pixels := pigo.RgbToGrayscale(src)
	cols, rows := src.Bounds().Max.X, src.Bounds().Max.Y

	cParams := pigo.CascadeParams{
		MinSize:     60,
		MaxSize:     1000,
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := e.classifier.RunCascade(cParams, 0.0)
	dets = e.classifier.ClusterDetections(dets, 0.2)

	out := make([]Detection, 0, len(dets))
	for _, d := range dets {
		conf := float32(math.Min(float64(d.Q)/10.0, 1.0))
		if conf < minConfidence {
			continue
		}
		box := entity.FaceBox{
			X: d.Col - d.Scale/2,
			Y: d.Row - d.Scale/2,
			W: d.Scale,
			H: d.Scale,
		}
		out = append(out, Detection{
			Box:        box,
			Confidence: conf,
			Embedding:  SentinelEmbedding(),
			Quality:    SizeQuality(box),
		})
	}
	return out, nil
}
