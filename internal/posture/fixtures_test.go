package posture_test

import (
	"github.com/formcheck/formcheck/internal/posture"
)

func ptr(f float64) *float64 {
	return &f
}

// frameWith builds a full 17-landmark frame with the given joints set
// and everything else left at the origin (which yields degenerate,
// absent angles rather than fake ones).
func frameWith(points map[posture.Joint]posture.Landmark) posture.Frame {
	landmarks := make([]posture.Landmark, posture.NumJoints)
	for joint, lm := range points {
		landmarks[joint] = lm
	}
	frame, err := posture.NewFrame(landmarks)
	if err != nil {
		panic(err) // cannot happen, the frame is complete by construction
	}
	return frame
}

// pushUpFrame is a horizontal body with both elbows bent at 90° and
// feet together: a push-up caught in the down phase, good form.
func pushUpFrame() posture.Frame {
	return frameWith(map[posture.Joint]posture.Landmark{
		posture.LeftShoulder:  {X: 100, Y: 100},
		posture.RightShoulder: {X: 300, Y: 100},
		posture.LeftElbow:     {X: 120, Y: 130},
		posture.RightElbow:    {X: 280, Y: 130},
		posture.LeftWrist:     {X: 150, Y: 110},
		posture.RightWrist:    {X: 250, Y: 110},
		posture.LeftHip:       {X: 150, Y: 110},
		posture.RightHip:      {X: 250, Y: 110},
		posture.LeftKnee:      {X: 170, Y: 111},
		posture.RightKnee:     {X: 230, Y: 111},
		posture.LeftAnkle:     {X: 195, Y: 112},
		posture.RightAnkle:    {X: 205, Y: 112},
	})
}

// plankFrame is the same horizontal body with straight arms.
func plankFrame() posture.Frame {
	return frameWith(map[posture.Joint]posture.Landmark{
		posture.LeftShoulder:  {X: 100, Y: 100},
		posture.RightShoulder: {X: 300, Y: 100},
		posture.LeftElbow:     {X: 120, Y: 100},
		posture.RightElbow:    {X: 280, Y: 100},
		posture.LeftWrist:     {X: 140, Y: 100},
		posture.RightWrist:    {X: 260, Y: 100},
		posture.LeftHip:       {X: 150, Y: 110},
		posture.RightHip:      {X: 250, Y: 110},
		posture.LeftKnee:      {X: 170, Y: 111},
		posture.RightKnee:     {X: 230, Y: 111},
		posture.LeftAnkle:     {X: 195, Y: 112},
		posture.RightAnkle:    {X: 205, Y: 112},
	})
}

// squatFrame is a side-view squat in the down phase: knees bent at
// ~100°, torso leaning 20° forward, ankles under the hips (stance
// ratio 1.0), knees behind the toes.
func squatFrame() posture.Frame {
	return frameWith(map[posture.Joint]posture.Landmark{
		posture.LeftShoulder:  {X: 211.3, Y: 59},
		posture.RightShoulder: {X: 311.3, Y: 59},
		posture.LeftElbow:     {X: 211.3, Y: 110},
		posture.RightElbow:    {X: 311.3, Y: 110},
		posture.LeftWrist:     {X: 211.3, Y: 150},
		posture.RightWrist:    {X: 311.3, Y: 150},
		posture.LeftHip:       {X: 160, Y: 200},
		posture.RightHip:      {X: 260, Y: 200},
		posture.LeftKnee:      {X: 118, Y: 250},
		posture.RightKnee:     {X: 218, Y: 250},
		posture.LeftAnkle:     {X: 160, Y: 300},
		posture.RightAnkle:    {X: 260, Y: 300},
	})
}

// jumpingJackUpFrame has the arms overhead (shoulders spread twice the
// hip width) and the feet jumped apart: the top of a jumping jack.
func jumpingJackUpFrame() posture.Frame {
	return frameWith(map[posture.Joint]posture.Landmark{
		posture.LeftShoulder:  {X: 100, Y: 100},
		posture.RightShoulder: {X: 300, Y: 100},
		posture.LeftElbow:     {X: 80, Y: 60},
		posture.RightElbow:    {X: 320, Y: 60},
		posture.LeftWrist:     {X: 70, Y: 30},
		posture.RightWrist:    {X: 330, Y: 30},
		posture.LeftHip:       {X: 150, Y: 200},
		posture.RightHip:      {X: 250, Y: 200},
		posture.LeftKnee:      {X: 140, Y: 270},
		posture.RightKnee:     {X: 260, Y: 270},
		posture.LeftAnkle:     {X: 120, Y: 340},
		posture.RightAnkle:    {X: 280, Y: 340},
	})
}

// standingFrame is a person standing straight with arms down: nothing
// to classify.
func standingFrame() posture.Frame {
	return frameWith(map[posture.Joint]posture.Landmark{
		posture.LeftShoulder:  {X: 150, Y: 100},
		posture.RightShoulder: {X: 250, Y: 100},
		posture.LeftElbow:     {X: 150, Y: 150},
		posture.RightElbow:    {X: 250, Y: 150},
		posture.LeftWrist:     {X: 150, Y: 200},
		posture.RightWrist:    {X: 250, Y: 200},
		posture.LeftHip:       {X: 160, Y: 200},
		posture.RightHip:      {X: 240, Y: 200},
		posture.LeftKnee:      {X: 160, Y: 270},
		posture.RightKnee:     {X: 240, Y: 270},
		posture.LeftAnkle:     {X: 160, Y: 340},
		posture.RightAnkle:    {X: 240, Y: 340},
	})
}

func translated(frame posture.Frame, dx, dy float64) posture.Frame {
	moved := make([]posture.Landmark, len(frame))
	for i, lm := range frame {
		moved[i] = posture.Landmark{X: lm.X + dx, Y: lm.Y + dy, Score: lm.Score}
	}
	out, err := posture.NewFrame(moved)
	if err != nil {
		panic(err)
	}
	return out
}
