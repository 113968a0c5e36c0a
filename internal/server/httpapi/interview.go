package httpapi

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/mockview/mockview/internal/logging"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/textscore"
)

// InterviewOperator is the slice of the interview service the handlers need.
type InterviewOperator interface {
	Start(ctx context.Context, userID, jobRole, skillLevel, interviewType string, numQuestions int) (*models.InterviewSession, error)
	Questions(jobRole, skillLevel string, count int) []models.Question
	SubmitAnswer(ctx context.Context, userID, sessionID, questionID, question, answer string, isVoice bool, audioDuration float64) (*textscore.AnswerEvaluation, error)
	Feedback(ctx context.Context, userID, sessionID string) (*models.InterviewSession, error)
}

// InterviewHandler serves the mock interview endpoints.
type InterviewHandler struct {
	interviews InterviewOperator
	logger     logging.Logger
}

func NewInterviewHandler(interviews InterviewOperator, logger logging.Logger) *InterviewHandler {
	return &InterviewHandler{interviews: interviews, logger: logger}
}

type startInterviewRequest struct {
	JobRole       string `json:"job_role"`
	SkillLevel    string `json:"skill_level"`
	NumQuestions  int    `json:"num_questions"`
	InterviewType string `json:"interview_type"`
}

func (h *InterviewHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())

	var req startInterviewRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	session, err := h.interviews.Start(r.Context(), userID, req.JobRole, req.SkillLevel, req.InterviewType, req.NumQuestions)
	if err != nil {
		h.logger.Error(r.Context(), "start interview failed", "error", err)
		writeInternal(w, "Failed to start interview", err)
		return
	}

	writeSuccess(w, http.StatusCreated, "Interview session started", map[string]any{
		"session_id":      session.ID,
		"job_role":        session.JobRole,
		"skill_level":     session.SkillLevel,
		"questions":       session.Questions,
		"total_questions": len(session.Questions),
	})
}

func (h *InterviewHandler) HandleQuestions(w http.ResponseWriter, r *http.Request) {
	jobRole := r.URL.Query().Get("job_role")
	skillLevel := r.URL.Query().Get("skill_level")
	count, _ := strconv.Atoi(r.URL.Query().Get("count"))

	questions := h.interviews.Questions(jobRole, skillLevel, count)

	writeData(w, map[string]any{
		"questions":   questions,
		"job_role":    firstNonEmpty(jobRole, "Software Engineer"),
		"skill_level": firstNonEmpty(skillLevel, "Beginner"),
	})
}

type submitAnswerRequest struct {
	SessionID     string  `json:"session_id"`
	QuestionID    string  `json:"question_id"`
	Question      string  `json:"question"`
	Answer        string  `json:"answer"`
	Transcript    string  `json:"transcript"`
	AudioDuration float64 `json:"audio_duration"`
}

func (h *InterviewHandler) HandleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, false)
}

func (h *InterviewHandler) HandleVoiceAnswer(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, true)
}

func (h *InterviewHandler) submit(w http.ResponseWriter, r *http.Request, voice bool) {
	userID, _ := UserIDFromContext(r.Context())

	var req submitAnswerRequest
	if !decodeBody(w, r, maxBodyBytes, &req) {
		return
	}

	answer := strings.TrimSpace(req.Answer)
	failureMsg := "Failed to submit answer"
	requiredMsg := "session_id, question_id, question, and answer are required"
	successMsg := "Answer submitted and evaluated"
	if voice {
		answer = strings.TrimSpace(req.Transcript)
		failureMsg = "Failed to submit voice answer"
		requiredMsg = "session_id, question_id, question, and transcript are required"
		successMsg = "Voice answer submitted and evaluated"
	}

	if req.SessionID == "" || req.QuestionID == "" || answer == "" || req.Question == "" {
		writeFailure(w, http.StatusBadRequest, requiredMsg)
		return
	}

	evaluation, err := h.interviews.SubmitAnswer(r.Context(), userID, req.SessionID,
		req.QuestionID, req.Question, answer, voice, req.AudioDuration)
	if err != nil {
		writeServiceError(w, err, "Interview session not found", "Unauthorized access to session", failureMsg)
		return
	}

	writeSuccess(w, http.StatusOK, successMsg, map[string]any{
		"evaluation":  evaluation,
		"question_id": req.QuestionID,
	})
}

func (h *InterviewHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserIDFromContext(r.Context())
	sessionID := pathParam(r, "sessionID")

	session, err := h.interviews.Feedback(r.Context(), userID, sessionID)
	if err != nil {
		writeServiceError(w, err, "Interview session not found", "Unauthorized access to session", "Failed to get feedback")
		return
	}

	writeData(w, map[string]any{
		"session_id":    session.ID,
		"job_role":      session.JobRole,
		"skill_level":   session.SkillLevel,
		"overall_score": session.OverallScore,
		"scores":        session.Scores,
		"answers":       session.Answers,
		"questions":     session.Questions,
		"created_at":    session.CreatedAt,
	})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
