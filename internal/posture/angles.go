package posture

import (
	"encoding/json"
	"math"
)

// AngleName is one of the fixed joint angle names produced by ComputeAngles.
type AngleName string

const (
	AngleLeftElbow     AngleName = "left_elbow"
	AngleRightElbow    AngleName = "right_elbow"
	AngleLeftShoulder  AngleName = "left_shoulder"
	AngleRightShoulder AngleName = "right_shoulder"
	AngleLeftHip       AngleName = "left_hip"
	AngleRightHip      AngleName = "right_hip"
	AngleLeftKnee      AngleName = "left_knee"
	AngleRightKnee     AngleName = "right_knee"
	AngleTorsoVertical AngleName = "torso_vertical"
)

var allAngleNames = []AngleName{
	AngleLeftElbow, AngleRightElbow,
	AngleLeftShoulder, AngleRightShoulder,
	AngleLeftHip, AngleRightHip,
	AngleLeftKnee, AngleRightKnee,
	AngleTorsoVertical,
}

// minLandmarkScore is the detection confidence below which a landmark
// is unusable for angle computation.
const minLandmarkScore = 0.2

// torsoVerticalOffset is how far above the left hip the synthetic
// "straight up" reference point is placed (y axis points down).
const torsoVerticalOffset = 100

// AngleSet holds the computed joint angles in degrees, within [0, 180].
// An angle missing from the set could not be computed, which is
// deliberately distinct from an angle of 0.
type AngleSet struct {
	angles map[AngleName]float64
}

// NewAngleSet builds an AngleSet from already computed angles. Mostly
// useful for callers that persist and re-load assessments.
func NewAngleSet(angles map[AngleName]float64) AngleSet {
	s := AngleSet{angles: make(map[AngleName]float64, len(angles))}
	for name, deg := range angles {
		s.angles[name] = deg
	}
	return s
}

// Get returns the angle in degrees and whether it could be computed.
func (s AngleSet) Get(name AngleName) (float64, bool) {
	deg, ok := s.angles[name]
	return deg, ok
}

// Avg returns the average of two angles, present only when both are.
func (s AngleSet) Avg(a, b AngleName) (float64, bool) {
	degA, okA := s.angles[a]
	degB, okB := s.angles[b]
	if !okA || !okB {
		return 0, false
	}
	return (degA + degB) / 2, true
}

// Len returns the number of angles that could be computed.
func (s AngleSet) Len() int {
	return len(s.angles)
}

// MarshalJSON writes the full angle vocabulary, with null for angles
// that could not be computed.
func (s AngleSet) MarshalJSON() ([]byte, error) {
	out := make(map[AngleName]*float64, len(allAngleNames))
	for _, name := range allAngleNames {
		if deg, ok := s.angles[name]; ok {
			d := deg
			out[name] = &d
		} else {
			out[name] = nil
		}
	}
	return json.Marshal(out)
}

func (s *AngleSet) UnmarshalJSON(data []byte) error {
	var in map[AngleName]*float64
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.angles = make(map[AngleName]float64, len(in))
	for name, deg := range in {
		if deg != nil {
			s.angles[name] = *deg
		}
	}
	return nil
}

// angleTriples maps each angle name to its (neighbor, vertex, neighbor)
// joints. The torso angle is synthetic and handled separately.
var angleTriples = []struct {
	name    AngleName
	a, v, c Joint
}{
	{AngleLeftElbow, LeftShoulder, LeftElbow, LeftWrist},
	{AngleRightElbow, RightShoulder, RightElbow, RightWrist},
	{AngleLeftShoulder, LeftElbow, LeftShoulder, LeftHip},
	{AngleRightShoulder, RightElbow, RightShoulder, RightHip},
	{AngleLeftHip, LeftShoulder, LeftHip, LeftKnee},
	{AngleRightHip, RightShoulder, RightHip, RightKnee},
	{AngleLeftKnee, LeftHip, LeftKnee, LeftAnkle},
	{AngleRightKnee, RightHip, RightKnee, RightAnkle},
}

// ComputeAngles derives all joint angles that can be computed from the
// given frame. Angles whose landmarks are missing or below the
// confidence threshold are simply not present in the result.
func ComputeAngles(frame Frame) AngleSet {
	angles := make(map[AngleName]float64)
	if len(frame) < NumJoints {
		return AngleSet{angles: angles}
	}

	for _, t := range angleTriples {
		a, okA := confidentLandmark(frame, t.a)
		v, okV := confidentLandmark(frame, t.v)
		c, okC := confidentLandmark(frame, t.c)
		if !okA || !okV || !okC {
			continue
		}
		if deg, ok := angleBetween(a, v, c); ok {
			angles[t.name] = deg
		}
	}

	// torso lean from true vertical: angle at the left hip between a
	// synthetic point straight above it and the left shoulder
	hip, okHip := confidentLandmark(frame, LeftHip)
	shoulder, okShoulder := confidentLandmark(frame, LeftShoulder)
	if okHip && okShoulder {
		up := Landmark{X: hip.X, Y: hip.Y - torsoVerticalOffset}
		if deg, ok := angleBetween(up, hip, shoulder); ok {
			angles[AngleTorsoVertical] = deg
		}
	}

	return AngleSet{angles: angles}
}

func confidentLandmark(frame Frame, j Joint) (Landmark, bool) {
	lm, ok := frame.At(j)
	if !ok {
		return Landmark{}, false
	}
	if lm.Score != nil && *lm.Score < minLandmarkScore {
		return Landmark{}, false
	}
	return lm, true
}

// angleBetween computes the angle at vertex v formed by the segments
// v->a and v->c, in degrees within [0, 180]. The cosine is clamped to
// [-1, 1] to guard against floating point drift. Zero-length segments
// leave the angle undefined.
func angleBetween(a, v, c Landmark) (float64, bool) {
	v1x, v1y := a.X-v.X, a.Y-v.Y
	v2x, v2y := c.X-v.X, c.Y-v.Y

	mag1 := math.Hypot(v1x, v1y)
	mag2 := math.Hypot(v2x, v2y)
	if mag1 == 0 || mag2 == 0 {
		return 0, false
	}

	cosine := (v1x*v2x + v1y*v2y) / (mag1 * mag2)
	cosine = math.Max(-1, math.Min(1, cosine))

	return math.Acos(cosine) * 180 / math.Pi, true
}
