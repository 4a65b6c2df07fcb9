package posture

// Stage is the phase of a repetition within an exercise.
type Stage string

const (
	StageUp      Stage = "up"
	StageDown    Stage = "down"
	StageNeutral Stage = "neutral"
)

// Stage thresholds, in degrees.
const (
	pushUpDownMaxElbowAngle = 100
	pushUpUpMinElbowAngle   = 160

	squatDownMaxKneeAngle = 120
	squatUpMinKneeAngle   = 160

	jumpingJackUpMinShoulderAngle   = 80
	jumpingJackDownMaxShoulderAngle = 30
)

// DetectStage determines the phase of the given exercise.
//
// NOTE: unlike classification and scoring, where a missing angle never
// fires a rule, stage detection treats a missing elbow/knee angle as
// 180 degrees (fully extended). This asymmetry is intentional and load
// bearing: it biases unclear push-up/squat frames towards the "up"
// phase instead of flapping between phases.
func DetectStage(exercise Exercise, angles AngleSet) Stage {
	switch exercise {
	case ExercisePushUp:
		avgElbow := avgOrExtended(angles, AngleLeftElbow, AngleRightElbow)
		switch {
		case avgElbow < pushUpDownMaxElbowAngle:
			return StageDown
		case avgElbow > pushUpUpMinElbowAngle:
			return StageUp
		}
		return StageNeutral

	case ExerciseSquat:
		avgKnee := avgOrExtended(angles, AngleLeftKnee, AngleRightKnee)
		switch {
		case avgKnee < squatDownMaxKneeAngle:
			return StageDown
		case avgKnee > squatUpMinKneeAngle:
			return StageUp
		}
		return StageNeutral

	case ExerciseJumpingJack:
		// the extended-arm default makes no sense for raised arms, so
		// missing shoulder angles leave the phase undecided
		avgShoulder, ok := angles.Avg(AngleLeftShoulder, AngleRightShoulder)
		if !ok {
			return StageNeutral
		}
		switch {
		case avgShoulder > jumpingJackUpMinShoulderAngle:
			return StageUp
		case avgShoulder < jumpingJackDownMaxShoulderAngle:
			return StageDown
		}
		return StageNeutral

	default:
		// planks have no phase concept
		return StageNeutral
	}
}

func avgOrExtended(angles AngleSet, a, b AngleName) float64 {
	const fullyExtended = 180
	degA, ok := angles.Get(a)
	if !ok {
		degA = fullyExtended
	}
	degB, ok := angles.Get(b)
	if !ok {
		degB = fullyExtended
	}
	return (degA + degB) / 2
}
