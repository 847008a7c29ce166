package face

import (
	"context"
	"log/slog"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/scanworks/scanvault/internal/entity"
	"github.com/scanworks/scanvault/internal/inference"
)

type faceRequest struct {
	ImagePath     string  `json:"image_path"`
	MinConfidence float32 `json:"min_confidence"`
}

type facePose struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

type faceItem struct {
	Box        []float64 `json:"box"` // x, y, w, h
	Confidence float32   `json:"confidence"`
	Embedding  []float32 `json:"embedding"`
	Pose       *facePose `json:"pose"`
}

type faceResponse struct {
	Faces []faceItem `json:"faces"`
}

// RemoteEngine talks to the face-model sidecar, the only engine that
// produces real embeddings.
type RemoteEngine struct {
	client       *inference.Client
	schema       *jsonschema.Schema
	probeTimeout time.Duration
	logger       *slog.Logger
}

func NewRemoteEngine(client *inference.Client, probeTimeout time.Duration, logger *slog.Logger) *RemoteEngine {
	return &RemoteEngine{
		client:       client,
		schema:       inference.MustCompileSchema("inline://face-response.json", inference.BuildFaceResponseSchema(EmbeddingDims)),
		probeTimeout: probeTimeout,
		logger:       logger,
	}
}

func (e *RemoteEngine) Name() string { return "remote-face" }

// Probe reports whether the sidecar answers its health endpoint.
func (e *RemoteEngine) Probe(ctx context.Context) error {
	return e.client.Probe(ctx, e.probeTimeout)
}

func (e *RemoteEngine) Detect(ctx context.Context, imagePath string, minConfidence float32) ([]Detection, error) {
	var resp faceResponse
	req := faceRequest{ImagePath: imagePath, MinConfidence: minConfidence}
	if err := e.client.PostJSON(ctx, "/v1/faces", req, &resp, e.schema); err != nil {
		return nil, err
	}

	out := make([]Detection, 0, len(resp.Faces))
	for _, f := range resp.Faces {
		// the sidecar filters too, but don't trust it blindly
		if f.Confidence < minConfidence {
			continue
		}
		var box entity.FaceBox
		if len(f.Box) == 4 {
			box = entity.FaceBox{X: int(f.Box[0]), Y: int(f.Box[1]), W: int(f.Box[2]), H: int(f.Box[3])}
		}
		var pose *Pose
		if f.Pose != nil {
			pose = &Pose{Yaw: f.Pose.Yaw, Pitch: f.Pose.Pitch, Roll: f.Pose.Roll}
		}
		out = append(out, Detection{
			Box:        box,
			Confidence: f.Confidence,
			Embedding:  f.Embedding,
			Quality:    Quality(f.Confidence, box, pose),
		})
	}
	return out, nil
}
