package face

import (
	"math"

	"github.com/scanworks/scanvault/internal/entity"
)

// referenceArea normalizes face size; a 300×300 face scores full marks.
const referenceArea = 300.0 * 300.0

// Pose carries head rotation angles in degrees when the engine knows them.
type Pose struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// Quality is the composite score: 40% detection confidence, 30% normalized
// face area, 30% pose frontality. Unknown pose scores neutral (0.5).
// Clamped to [0,1].
func Quality(confidence float32, box entity.FaceBox, pose *Pose) float32 {
	q := float64(confidence) * 0.4

	size := float64(box.W) * float64(box.H) / referenceArea
	if size > 1 {
		size = 1
	}
	q += size * 0.3

	frontal := 0.5
	if pose != nil {
		frontal = 1.0 - (math.Abs(pose.Yaw)+math.Abs(pose.Pitch)+math.Abs(pose.Roll))/90.0
		if frontal < 0 {
			frontal = 0
		}
	}
	q += frontal * 0.3

	return float32(math.Min(math.Max(q, 0.0), 1.0))
}

// SizeQuality is the fallback detector's estimate: area alone, since it has
// neither trustworthy confidence calibration nor pose.
func SizeQuality(box entity.FaceBox) float32 {
	size := float64(box.W) * float64(box.H) / referenceArea
	return float32(math.Min(size, 1.0))
}
