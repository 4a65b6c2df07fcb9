package posture

import (
	"context"

	"github.com/formcheck/formcheck/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// Assessment is the result of analyzing a single frame. It is
// self-contained and owned by the caller; the engine keeps nothing.
// Field names follow the wire format the mobile clients already use.
type Assessment struct {
	ExerciseDetected bool     `json:"exercise_detected"`
	ExerciseType     Exercise `json:"exercise_type"`
	FormScore        float64  `json:"form_score"`
	Feedback         []string `json:"feedback"`
	Stage            Stage    `json:"stage"`
	JointAngles      AngleSet `json:"joint_angles"`
}

// Analyzer is the single entry point for exercise form analysis. It is
// stateless, every call is a pure function of its input frame, so it is
// safe to share between goroutines.
type Analyzer struct{}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze assesses the exercise form in one skeleton frame. When hint
// is nil the exercise type is classified from the frame geometry; a
// non-nil hint must be one of the scoreable types and skips
// classification. Frames shorter than a full skeleton are rejected
// with an InvalidFrameError.
func (a *Analyzer) Analyze(ctx context.Context, frame Frame, hint *Exercise) (_ *Assessment, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "posture.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if len(frame) < NumJoints {
		return nil, &InvalidFrameError{Got: len(frame)}
	}

	angles := ComputeAngles(frame)

	exercise, detected := ExerciseUnknown, false
	if hint != nil && *hint != ExerciseUnknown {
		exercise, detected = *hint, true
	} else {
		exercise, detected = DetectExercise(frame, angles)
	}

	if !detected {
		span.SetAttributes(attribute.Bool("detected", false))
		return &Assessment{
			ExerciseDetected: false,
			ExerciseType:     ExerciseUnknown,
			FormScore:        0,
			Feedback:         []string{"No valid exercise detected"},
			Stage:            StageNeutral,
			JointAngles:      angles,
		}, nil
	}

	stage := DetectStage(exercise, angles)
	score, feedback := ScoreForm(exercise, frame, angles, stage)

	span.SetAttributes(
		attribute.Bool("detected", true),
		attribute.String("exercise", string(exercise)),
		attribute.String("stage", string(stage)),
		attribute.Float64("form_score", score),
	)

	return &Assessment{
		ExerciseDetected: true,
		ExerciseType:     exercise,
		FormScore:        score,
		Feedback:         feedback,
		Stage:            stage,
		JointAngles:      angles,
	}, nil
}
