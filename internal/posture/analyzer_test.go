package posture_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/formcheck/formcheck/internal/posture"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_TooFewLandmarks(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	assessment, err := analyzer.Analyze(context.Background(), make(posture.Frame, 10), nil)
	require.Error(t, err)
	assert.Nil(t, assessment)

	var invalidFrame *posture.InvalidFrameError
	require.True(t, errors.As(err, &invalidFrame))
	assert.Equal(t, 10, invalidFrame.Got)
}

func TestAnalyze_PushUp(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	assessment, err := analyzer.Analyze(context.Background(), pushUpFrame(), nil)
	require.NoError(t, err)
	require.NotNil(t, assessment)

	assert.True(t, assessment.ExerciseDetected)
	assert.Equal(t, posture.ExercisePushUp, assessment.ExerciseType)
	assert.Equal(t, posture.StageDown, assessment.Stage)
	assert.InDelta(t, 1.0, assessment.FormScore, 1e-9)
	assert.Equal(t, []string{"Great push-up form! Maintain a straight body line."}, assessment.Feedback)

	elbow, ok := assessment.JointAngles.Get(posture.AngleLeftElbow)
	require.True(t, ok)
	assert.InDelta(t, 90, elbow, 0.01)
}

func TestAnalyze_NothingDetected(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	assessment, err := analyzer.Analyze(context.Background(), standingFrame(), nil)
	require.NoError(t, err)
	require.NotNil(t, assessment)

	assert.False(t, assessment.ExerciseDetected)
	assert.Equal(t, posture.ExerciseUnknown, assessment.ExerciseType)
	assert.Equal(t, 0.0, assessment.FormScore)
	assert.Equal(t, []string{"No valid exercise detected"}, assessment.Feedback)
	assert.Equal(t, posture.StageNeutral, assessment.Stage)
	// the angles are still reported so the client can debug the pose
	assert.NotEqual(t, 0, assessment.JointAngles.Len())
}

func TestAnalyze_HintSkipsClassification(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	// the standing frame classifies as nothing, the hint forces a squat
	hint := posture.ExerciseSquat
	assessment, err := analyzer.Analyze(context.Background(), standingFrame(), &hint)
	require.NoError(t, err)
	require.NotNil(t, assessment)

	assert.True(t, assessment.ExerciseDetected)
	assert.Equal(t, posture.ExerciseSquat, assessment.ExerciseType)
	// straight knees read as the top of the rep
	assert.Equal(t, posture.StageUp, assessment.Stage)
	assert.NotEmpty(t, assessment.Feedback)
}

func TestAnalyze_HintOverridesClassification(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	// the frame would classify as a push-up, the caller says plank
	hint := posture.ExercisePlank
	assessment, err := analyzer.Analyze(context.Background(), pushUpFrame(), &hint)
	require.NoError(t, err)

	assert.True(t, assessment.ExerciseDetected)
	assert.Equal(t, posture.ExercisePlank, assessment.ExerciseType)
	assert.Equal(t, posture.StageNeutral, assessment.Stage)
}

func TestAnalyze_UnknownHintFallsBackToClassification(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	hint := posture.ExerciseUnknown
	assessment, err := analyzer.Analyze(context.Background(), pushUpFrame(), &hint)
	require.NoError(t, err)

	assert.True(t, assessment.ExerciseDetected)
	assert.Equal(t, posture.ExercisePushUp, assessment.ExerciseType)
}

func TestAnalyze_AssessmentJSON(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	assessment, err := analyzer.Analyze(context.Background(), squatFrame(), nil)
	require.NoError(t, err)

	data, err := json.Marshal(assessment)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &wire))
	for _, field := range []string{
		"exercise_detected", "exercise_type", "form_score",
		"feedback", "stage", "joint_angles",
	} {
		assert.Contains(t, wire, field)
	}

	var back posture.Assessment
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, *assessment, back)
}

// Random frames must never crash the analyzer or push the score out of
// range, whatever nonsense geometry they carry.
func TestAnalyze_RandomFrames(t *testing.T) {
	faker := gofakeit.New(42)
	analyzer := posture.NewAnalyzer()

	for i := 0; i < 200; i++ {
		landmarks := make([]posture.Landmark, posture.NumJoints)
		for j := range landmarks {
			landmarks[j] = posture.Landmark{
				X: faker.Float64Range(-500, 500),
				Y: faker.Float64Range(-500, 500),
			}
			if faker.Bool() {
				landmarks[j].Score = ptr(faker.Float64Range(0, 1))
			}
		}
		frame, err := posture.NewFrame(landmarks)
		require.NoError(t, err)

		assessment, err := analyzer.Analyze(context.Background(), frame, nil)
		require.NoError(t, err)
		require.NotNil(t, assessment)

		assert.GreaterOrEqual(t, assessment.FormScore, 0.0)
		assert.LessOrEqual(t, assessment.FormScore, 1.0)
		assert.NotEmpty(t, assessment.Feedback)
		if !assessment.ExerciseDetected {
			assert.Equal(t, posture.ExerciseUnknown, assessment.ExerciseType)
			assert.Equal(t, 0.0, assessment.FormScore)
		}
	}
}

func TestAnalyze_SameFrameSameResult(t *testing.T) {
	analyzer := posture.NewAnalyzer()

	first, err := analyzer.Analyze(context.Background(), jumpingJackUpFrame(), nil)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := analyzer.Analyze(context.Background(), jumpingJackUpFrame(), nil)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
