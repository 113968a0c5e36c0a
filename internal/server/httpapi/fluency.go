package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/models"
)

// FluencyOperator is the slice of the fluency service the handlers need.
type FluencyOperator interface {
	Start(ctx context.Context, userID string) (*models.FluencyTest, error)
	Analyze(ctx context.Context, userID, testID, transcript string, audioDuration float64) (*models.FluencyTest, error)
	Score(ctx context.Context, userID, testID string) (*models.FluencyTest, error)
}

// FluencyHandler serves the speech fluency endpoints.
type FluencyHandler struct {
	fluency FluencyOperator
	logger  logging.Logger
}

func NewFluencyHandler(fluency FluencyOperator, logger logging.Logger) *FluencyHandler {
	return &FluencyHandler{fluency: fluency, logger: logger}
}

func (h *FluencyHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	test, err := h.fluency.Start(r.Context(), userID)
	if err != nil {
		h.logger.Error(r.Context(), "start fluency test failed", "error", err)
		writeInternal(w, "Failed to start fluency test", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Fluency test started", map[string]any{
		"test_id": test.ID,
	})
}

type analyzeFluencyRequest struct {
	TestID        string  `json:"test_id"`
	Transcript    string  `json:"transcript"`
	AudioDuration float64 `json:"audio_duration"`
}

func (h *FluencyHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req analyzeFluencyRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	transcript := strings.TrimSpace(req.Transcript)
	if req.TestID == "" || transcript == "" {
		writeFailure(w, http.StatusBadRequest, "test_id and transcript are required")
		return
	}

	test, err := h.fluency.Analyze(r.Context(), userID, req.TestID, transcript, req.AudioDuration)
	if err != nil {
		writeServiceError(w, err, "Fluency test not found", "Unauthorized access to test", "Failed to analyze fluency")
		return
	}

	writeSuccess(w, http.StatusOK, "Fluency analyzed successfully", map[string]any{
		"test_id":             test.ID,
		"overall_score":       test.OverallScore(),
		"fluency_score":       test.FluencyScore,
		"pronunciation_score": test.PronunciationScore,
		"grammar_score":       test.GrammarScore,
		"wpm":                 test.WPM,
		"word_count":          test.DetailedAnalysis.WordCount,
		"filler_word_count":   test.FillerWordCount,
		"pause_count":         test.PauseCount,
		"feedback":            test.Feedback,
		"detailed_analysis":   test.DetailedAnalysis,
	})
}

func (h *FluencyHandler) HandleScore(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	testID := pathParam(r, "testID")

	test, err := h.fluency.Score(r.Context(), userID, testID)
	if err != nil {
		writeServiceError(w, err, "Fluency test not found", "Unauthorized access to test", "Failed to get fluency score")
		return
	}

	writeData(w, map[string]any{
		"test_id":             test.ID,
		"overall_score":       test.OverallScore(),
		"fluency_score":       test.FluencyScore,
		"pronunciation_score": test.PronunciationScore,
		"grammar_score":       test.GrammarScore,
		"wpm":                 test.WPM,
		"filler_word_count":   test.FillerWordCount,
		"pause_count":         test.PauseCount,
		"feedback":            test.Feedback,
		"detailed_analysis":   test.DetailedAnalysis,
		"timestamp":           test.CreatedAt,
	})
}
