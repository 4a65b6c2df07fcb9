package posture

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/formcheck/formcheck/internal/telemetry/metrics"
	"github.com/formcheck/formcheck/internal/telemetry/tracing"
	"github.com/formcheck/formcheck/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=posture_test

type frameAnalyzer interface {
	Analyze(ctx context.Context, frame Frame, hint *Exercise) (*Assessment, error)
}

type Handler struct {
	analyzer frameAnalyzer
	metrics  *metrics.Manager
}

func NewHandler(analyzer frameAnalyzer, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		analyzer: analyzer,
		metrics:  metricsManager,
	}
}

// AnalyzeRequest is one frame of keypoints from the pose model, with an
// optional exercise type hint to skip classification.
type AnalyzeRequest struct {
	Keypoints    []Keypoint `json:"keypoints"`
	ExerciseType string     `json:"exercise_type,omitempty"`
}

type SupportedExercisesResponse struct {
	Exercises []Exercise `json:"exercises"`
}

func (handler *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.analyze")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("analyze frame, unmarshal json params: %s", err)
		http.Error(w, "invalid analyze request", http.StatusBadRequest)
		return
	}

	var hint *Exercise
	if req.ExerciseType != "" {
		exercise, ok := ParseExercise(req.ExerciseType)
		if !ok {
			http.Error(w, "unknown exercise type: "+req.ExerciseType, http.StatusBadRequest)
			return
		}
		hint = &exercise
	}

	frame, err := FrameFromKeypoints(req.Keypoints)
	if err != nil {
		log.Tracef("analyze frame, invalid keypoints: %s", err)
		handler.countInvalidFrame()
		http.Error(w, "invalid frame: "+err.Error(), http.StatusBadRequest)
		return
	}

	assessment, err := handler.analyzer.Analyze(ctx, frame, hint)
	if err != nil {
		var invalidFrame *InvalidFrameError
		if errors.As(err, &invalidFrame) || errors.Is(err, ErrMissingCoordinates) {
			handler.countInvalidFrame()
			http.Error(w, "invalid frame: "+err.Error(), http.StatusBadRequest)
			return
		}
		log.Errorf("analyze frame: %s", err)
		http.Error(w, "error, failed to analyze frame", http.StatusInternalServerError)
		return
	}

	handler.countAnalysis(assessment)

	assessmentJson, err := json.Marshal(assessment)
	if err != nil {
		log.Errorf("failed to marshal assessment: %s", err)
		http.Error(w, "error, failed to analyze frame", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, assessmentJson, http.StatusOK)
}

func (handler *Handler) HandleSupportedExercises(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.posture.supportedExercises")
	defer span.End()

	resp := SupportedExercisesResponse{
		Exercises: SupportedExercises(),
	}
	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal supported exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) countAnalysis(assessment *Assessment) {
	if handler.metrics == nil {
		return
	}
	handler.metrics.CounterAnalyses.WithLabelValues(
		string(assessment.ExerciseType),
		strconv.FormatBool(assessment.ExerciseDetected),
	).Inc()
	handler.metrics.HistFormScore.Observe(assessment.FormScore)
}

func (handler *Handler) countInvalidFrame() {
	if handler.metrics == nil {
		return
	}
	handler.metrics.CounterInvalidFrames.Inc()
}
