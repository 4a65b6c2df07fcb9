package posture

import "math"

// ScoreForm runs the rule set for the given exercise type and returns
// the form score in [0, 1] with the matching feedback, never empty.
// Every scoreable exercise type must have a case here; an exercise
// without a rule set yields the undetected result.
func ScoreForm(exercise Exercise, frame Frame, angles AngleSet, stage Stage) (float64, []string) {
	switch exercise {
	case ExercisePushUp:
		return scorePushUp(frame, angles, stage)
	case ExerciseSquat:
		return scoreSquat(frame, angles, stage)
	case ExercisePlank:
		return scorePlank(frame, angles)
	case ExerciseJumpingJack:
		return scoreJumpingJack(frame, angles, stage)
	default:
		return 0, []string{"No valid exercise detected"}
	}
}

// Alignment tolerances, in coordinate units.
const (
	bodyLineMaxDeviation  = 30 // hip/shoulder (and ankle/hip) vertical misalignment
	hipOffsetTolerance    = 20 // how far hips may sit above/below shoulders before feedback
	pushUpMaxAnkleSpread  = 50
	squatKneeToToeMax     = 30
	squatMaxTorsoLean     = 45
	plankMaxElbowDistance = 40
)

func scorePushUp(frame Frame, angles AngleSet, stage Stage) (float64, []string) {
	var feedback []string
	score := 1.0

	leftShoulder, okLS := frame.At(LeftShoulder)
	rightShoulder, okRS := frame.At(RightShoulder)
	leftHip, okLH := frame.At(LeftHip)
	rightHip, okRH := frame.At(RightHip)

	// straight body line from head to heels
	if okLS && okRS && okLH && okRH {
		shoulderY := (leftShoulder.Y + rightShoulder.Y) / 2
		hipY := (leftHip.Y + rightHip.Y) / 2

		if math.Abs(shoulderY-hipY) > bodyLineMaxDeviation {
			if hipY < shoulderY-hipOffsetTolerance {
				feedback = append(feedback, "Lower your hips - maintain a straight line from head to heels")
				score -= 0.25
			} else if hipY > shoulderY+hipOffsetTolerance {
				feedback = append(feedback, "Raise your hips - avoid sagging in the middle")
				score -= 0.25
			}
		}
	}

	if avgElbow, ok := angles.Avg(AngleLeftElbow, AngleRightElbow); ok {
		switch stage {
		case StageDown:
			if avgElbow < 70 {
				feedback = append(feedback, "You're going too deep - aim for 90° at the elbow")
				score -= 0.15
			} else if avgElbow > 110 {
				feedback = append(feedback, "Go lower - aim for 90° at the elbow")
				score -= 0.2
			}
		case StageUp:
			if avgElbow < 160 {
				feedback = append(feedback, "Fully extend your arms at the top of the push-up")
				score -= 0.15
			}
		}
	}

	leftAnkle, okLA := frame.At(LeftAnkle)
	rightAnkle, okRA := frame.At(RightAnkle)
	if okLA && okRA {
		ankleDist := math.Hypot(leftAnkle.X-rightAnkle.X, leftAnkle.Y-rightAnkle.Y)
		if ankleDist > pushUpMaxAnkleSpread {
			feedback = append(feedback, "Keep your legs together for better stability")
			score -= 0.1
		}
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Great push-up form! Maintain a straight body line.")
	}
	return clampScore(score), feedback
}

func scoreSquat(frame Frame, angles AngleSet, stage Stage) (float64, []string) {
	var feedback []string
	score := 1.0

	if avgKnee, ok := angles.Avg(AngleLeftKnee, AngleRightKnee); ok && stage == StageDown {
		if avgKnee > 140 {
			feedback = append(feedback, "Squat deeper - aim for thighs parallel to the ground")
			score -= 0.25
		} else if avgKnee < 70 {
			feedback = append(feedback, "You're squatting too deep - be careful with your knees")
			score -= 0.15
		}
	}

	leftKnee, okLK := frame.At(LeftKnee)
	rightKnee, okRK := frame.At(RightKnee)
	leftAnkle, okLA := frame.At(LeftAnkle)
	rightAnkle, okRA := frame.At(RightAnkle)
	leftHip, okLH := frame.At(LeftHip)
	rightHip, okRH := frame.At(RightHip)

	// knees should stay behind the toes
	if okLK && okRK && okLA && okRA {
		leftKneePastToes := leftKnee.X > leftAnkle.X+squatKneeToToeMax
		rightKneePastToes := rightKnee.X > rightAnkle.X+squatKneeToToeMax
		if leftKneePastToes || rightKneePastToes {
			feedback = append(feedback, "Keep your knees behind your toes")
			score -= 0.2
		}
	}

	if torso, ok := angles.Get(AngleTorsoVertical); ok && torso > squatMaxTorsoLean {
		feedback = append(feedback, "Keep your chest up and back more upright")
		score -= 0.15
	}

	if okLA && okRA {
		ankleDist := math.Abs(leftAnkle.X - rightAnkle.X)
		hipWidth := 100.0
		if okLH && okRH {
			hipWidth = math.Abs(leftHip.X - rightHip.X)
		}

		if ankleDist < hipWidth*0.8 {
			feedback = append(feedback, "Widen your stance to shoulder width or slightly wider")
			score -= 0.1
		} else if ankleDist > hipWidth*1.8 {
			feedback = append(feedback, "Narrow your stance slightly")
			score -= 0.1
		}
	}

	// knees caving inward
	if okLK && okRK && okLH && okRH {
		kneeWidth := math.Abs(leftKnee.X - rightKnee.X)
		hipWidth := math.Abs(leftHip.X - rightHip.X)
		if kneeWidth < hipWidth*0.6 {
			feedback = append(feedback, "Keep your knees in line with your toes - don't let them cave inward")
			score -= 0.15
		}
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Excellent squat form! Keep your weight in your heels.")
	}
	return clampScore(score), feedback
}

func scorePlank(frame Frame, angles AngleSet) (float64, []string) {
	var feedback []string
	score := 1.0

	leftShoulder, okLS := frame.At(LeftShoulder)
	rightShoulder, okRS := frame.At(RightShoulder)
	leftHip, okLH := frame.At(LeftHip)
	rightHip, okRH := frame.At(RightHip)
	leftAnkle, okLA := frame.At(LeftAnkle)
	rightAnkle, okRA := frame.At(RightAnkle)
	leftElbow, okLE := frame.At(LeftElbow)
	rightElbow, okRE := frame.At(RightElbow)

	if okLS && okRS && okLH && okRH {
		shoulderY := (leftShoulder.Y + rightShoulder.Y) / 2
		hipY := (leftHip.Y + rightHip.Y) / 2

		if math.Abs(shoulderY-hipY) > bodyLineMaxDeviation {
			if hipY < shoulderY-hipOffsetTolerance {
				feedback = append(feedback, "Lower your hips - your body should form a straight line")
				score -= 0.25
			} else if hipY > shoulderY+hipOffsetTolerance {
				feedback = append(feedback, "Raise your hips - don't let them sag toward the ground")
				score -= 0.25
			}
		}
	}

	if okLA && okRA && okLH && okRH {
		ankleY := (leftAnkle.Y + rightAnkle.Y) / 2
		hipY := (leftHip.Y + rightHip.Y) / 2
		if math.Abs(ankleY-hipY) > bodyLineMaxDeviation {
			feedback = append(feedback, "Keep your legs straight and in line with your body")
			score -= 0.15
		}
	}

	// elbows stacked under the shoulders
	if okLE && okRE && okLS && okRS {
		leftDist := math.Hypot(leftElbow.X-leftShoulder.X, leftElbow.Y-leftShoulder.Y)
		rightDist := math.Hypot(rightElbow.X-rightShoulder.X, rightElbow.Y-rightShoulder.Y)
		if leftDist > plankMaxElbowDistance || rightDist > plankMaxElbowDistance {
			feedback = append(feedback, "Position your elbows directly under your shoulders")
			score -= 0.15
		}
	}

	if len(feedback) == 0 {
		feedback = append(feedback, "Great plank form! Keep your core engaged and breathe steadily.")
	}
	return clampScore(score), feedback
}

func scoreJumpingJack(frame Frame, angles AngleSet, stage Stage) (float64, []string) {
	leftShoulder, okLS := frame.At(LeftShoulder)
	rightShoulder, okRS := frame.At(RightShoulder)
	leftHip, okLH := frame.At(LeftHip)
	rightHip, okRH := frame.At(RightHip)
	leftAnkle, okLA := frame.At(LeftAnkle)
	rightAnkle, okRA := frame.At(RightAnkle)
	leftWrist, okLW := frame.At(LeftWrist)
	rightWrist, okRW := frame.At(RightWrist)

	if !okLS || !okRS || !okLH || !okRH || !okLA || !okRA || !okLW || !okRW {
		return 0.5, []string{"Cannot fully analyze jumping jack - not all key points detected"}
	}

	var feedback []string
	score := 1.0

	switch stage {
	case StageUp: // arms overhead, feet apart
		leftArmRaised := leftWrist.Y < leftShoulder.Y
		rightArmRaised := rightWrist.Y < rightShoulder.Y
		if !leftArmRaised || !rightArmRaised {
			feedback = append(feedback, "Raise your arms fully above your head")
			score -= 0.2
		}

		ankleDist := math.Abs(leftAnkle.X - rightAnkle.X)
		hipDist := math.Abs(leftHip.X - rightHip.X)
		if ankleDist < hipDist {
			feedback = append(feedback, "Jump wider with your feet")
			score -= 0.15
		}

	case StageDown: // arms by the sides, feet together
		leftArmDown := leftWrist.Y > leftHip.Y
		rightArmDown := rightWrist.Y > rightHip.Y
		if !leftArmDown || !rightArmDown {
			feedback = append(feedback, "Bring your arms fully down by your sides")
			score -= 0.15
		}

		if math.Abs(leftAnkle.X-rightAnkle.X) > 30 {
			feedback = append(feedback, "Bring your feet together between jumps")
			score -= 0.15
		}
	}

	if math.Abs(leftHip.Y-rightHip.Y) > 20 {
		feedback = append(feedback, "Keep your hips level during the exercise")
		score -= 0.1
	}

	if len(feedback) == 0 {
		if stage == StageUp {
			feedback = append(feedback, "Great form! Full extension of arms and legs.")
		} else {
			feedback = append(feedback, "Good control on the landing! Maintain rhythm.")
		}
	}
	return clampScore(score), feedback
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(1, score))
}
