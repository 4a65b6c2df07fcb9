package posture

import "math"

// Exercise is the closed set of exercise types the engine understands.
type Exercise string

const (
	ExercisePushUp      Exercise = "push_up"
	ExerciseSquat       Exercise = "squat"
	ExercisePlank       Exercise = "plank"
	ExerciseJumpingJack Exercise = "jumping_jack"
	ExerciseUnknown     Exercise = "unknown"
)

// SupportedExercises lists every exercise type with a scoring rule set.
func SupportedExercises() []Exercise {
	return []Exercise{
		ExercisePushUp,
		ExerciseSquat,
		ExercisePlank,
		ExerciseJumpingJack,
	}
}

// ParseExercise maps a caller-supplied hint string to a scoreable
// exercise type.
func ParseExercise(s string) (Exercise, bool) {
	switch Exercise(s) {
	case ExercisePushUp, ExerciseSquat, ExercisePlank, ExerciseJumpingJack:
		return Exercise(s), true
	default:
		return ExerciseUnknown, false
	}
}

// Classification thresholds, in the coordinate units of the landmarks.
const (
	horizontalTorsoMaxDist      = 30  // shoulder/hip vertical distance below which the torso counts as horizontal
	pushUpMaxAvgElbowAngle      = 120 // horizontal body with elbows bent more than this is a push-up, else a plank
	squatMaxAvgKneeAngle        = 160 // knees bent more than this suggest a squat
	jumpingJackShoulderHipRatio = 1.5 // shoulder width vs hip width spread
)

// DetectExercise classifies the frame into an exercise type. The rules
// are checked in a fixed order and the first match wins; callers must
// not rely on any other ordering. Returns false when no exercise can
// be recognized.
func DetectExercise(frame Frame, angles AngleSet) (Exercise, bool) {
	leftShoulder, okLS := frame.At(LeftShoulder)
	rightShoulder, okRS := frame.At(RightShoulder)
	leftHip, okLH := frame.At(LeftHip)
	rightHip, okRH := frame.At(RightHip)
	if !okLS || !okRS || !okLH || !okRH {
		return ExerciseUnknown, false
	}

	shoulderY := (leftShoulder.Y + rightShoulder.Y) / 2
	hipY := (leftHip.Y + rightHip.Y) / 2

	// 1: horizontal body means push-up or plank, told apart by elbows
	if math.Abs(shoulderY-hipY) < horizontalTorsoMaxDist {
		if avgElbow, ok := angles.Avg(AngleLeftElbow, AngleRightElbow); ok {
			if avgElbow < pushUpMaxAvgElbowAngle {
				return ExercisePushUp, true
			}
			return ExercisePlank, true
		}
		// elbows unknown, fall through
	}

	// 2: bent knees with a vertical torso
	if avgKnee, ok := angles.Avg(AngleLeftKnee, AngleRightKnee); ok && avgKnee < squatMaxAvgKneeAngle {
		return ExerciseSquat, true
	}

	// 3: arms spread much wider than the hips
	shoulderWidth := math.Abs(leftShoulder.X - rightShoulder.X)
	hipWidth := math.Abs(leftHip.X - rightHip.X)
	if shoulderWidth > hipWidth*jumpingJackShoulderHipRatio {
		return ExerciseJumpingJack, true
	}

	return ExerciseUnknown, false
}
