package posture

import (
	"errors"
	"fmt"
)

// Joint enumerates the 17 MoveNet/COCO keypoints, in model output order.
// The order is part of the wire contract with the pose model and must
// never change.
type Joint int

const (
	Nose Joint = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle

	// NumJoints is the number of keypoints in a complete skeleton frame.
	NumJoints = 17
)

var jointNames = [NumJoints]string{
	"nose",
	"left_eye",
	"right_eye",
	"left_ear",
	"right_ear",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
}

func (j Joint) String() string {
	if j < 0 || int(j) >= NumJoints {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// Landmark is a single tracked body point. Score is the detector
// confidence in [0, 1], nil when the upstream model did not report one.
type Landmark struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Score *float64 `json:"score,omitempty"`
}

// Frame is one complete skeleton snapshot, indexed by Joint.
type Frame []Landmark

var (
	ErrTooFewLandmarks    = errors.New("frame has fewer landmarks than a full skeleton")
	ErrMissingCoordinates = errors.New("landmark has no x/y coordinates")
)

// InvalidFrameError is returned when the caller supplied a frame that
// cannot be analyzed at all (as opposed to single angles being
// uncomputable, which is represented by angle absence).
type InvalidFrameError struct {
	Got int
}

func (e *InvalidFrameError) Error() string {
	return fmt.Sprintf("invalid frame: got %d landmarks, need %d", e.Got, NumJoints)
}

func (e *InvalidFrameError) Unwrap() error {
	return ErrTooFewLandmarks
}

// NewFrame validates the landmark count and wraps the given landmarks
// into a Frame. The slice is not copied, the caller must not mutate it.
func NewFrame(landmarks []Landmark) (Frame, error) {
	if len(landmarks) < NumJoints {
		return nil, &InvalidFrameError{Got: len(landmarks)}
	}
	return Frame(landmarks), nil
}

// Keypoint is the wire form of a landmark. Coordinates are pointers so
// that a missing field can be told apart from a legitimate zero.
type Keypoint struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Score *float64 `json:"score,omitempty"`
}

// FrameFromKeypoints validates caller-supplied keypoints and builds a
// Frame out of them. A keypoint without both coordinates makes the
// whole frame invalid.
func FrameFromKeypoints(keypoints []Keypoint) (Frame, error) {
	if len(keypoints) < NumJoints {
		return nil, &InvalidFrameError{Got: len(keypoints)}
	}

	frame := make(Frame, len(keypoints))
	for i, kp := range keypoints {
		if kp.X == nil || kp.Y == nil {
			return nil, fmt.Errorf("keypoint %d [%s]: %w", i, Joint(i), ErrMissingCoordinates)
		}
		frame[i] = Landmark{X: *kp.X, Y: *kp.Y, Score: kp.Score}
	}
	return frame, nil
}

// At returns the landmark for the given joint, or false when the frame
// does not contain it.
func (f Frame) At(j Joint) (Landmark, bool) {
	if j < 0 || int(j) >= len(f) {
		return Landmark{}, false
	}
	return f[j], true
}
