package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/textscore"
)

type fakeInterviewOperator struct {
	session  *models.InterviewSession
	startErr error

	questions []models.Question

	evaluation *textscore.AnswerEvaluation
	submitErr  error
	gotVoice   bool
	gotAnswer  string

	feedback    *models.InterviewSession
	feedbackErr error
}

func (f *fakeInterviewOperator) Start(ctx context.Context, userID, jobRole, skillLevel, interviewType string, numQuestions int) (*models.InterviewSession, error) {
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.session, nil
}

func (f *fakeInterviewOperator) Questions(jobRole, skillLevel string, count int) []models.Question {
	return f.questions
}

func (f *fakeInterviewOperator) SubmitAnswer(ctx context.Context, userID, sessionID, questionID, question, answer string, isVoice bool, audioDuration float64) (*textscore.AnswerEvaluation, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.gotVoice = isVoice
	f.gotAnswer = answer
	return f.evaluation, nil
}

func (f *fakeInterviewOperator) Feedback(ctx context.Context, userID, sessionID string) (*models.InterviewSession, error) {
	if f.feedbackErr != nil {
		return nil, f.feedbackErr
	}
	return f.feedback, nil
}

func TestHandleStart_Created(t *testing.T) {
	op := &fakeInterviewOperator{session: &models.InterviewSession{
		ID: "s-1", JobRole: "Software Engineer", SkillLevel: "Beginner",
		Questions: []models.Question{{ID: "q_1"}, {ID: "q_2"}},
	}}
	h := NewInterviewHandler(op, testLogger())

	body := `{"job_role":"Software Engineer","skill_level":"Beginner","num_questions":2}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/interview/start", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleStart(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Interview session started" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	data := dataField(t, env)
	if data["session_id"] != "s-1" || data["total_questions"] != 2.0 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestHandleQuestions_Defaults(t *testing.T) {
	op := &fakeInterviewOperator{questions: []models.Question{{ID: "q_1"}}}
	h := NewInterviewHandler(op, testLogger())

	req := authedRequest(httptest.NewRequest(http.MethodGet, "/api/interview/questions", nil), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleQuestions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := dataField(t, decodeEnvelope(t, rec))
	if data["job_role"] != "Software Engineer" || data["skill_level"] != "Beginner" {
		t.Fatalf("defaults missing: %v", data)
	}
}

func TestHandleSubmitAnswer_Success(t *testing.T) {
	op := &fakeInterviewOperator{evaluation: &textscore.AnswerEvaluation{OverallScore: 82.5}}
	h := NewInterviewHandler(op, testLogger())

	body := `{"session_id":"s-1","question_id":"q_1","question":"Tell me about yourself.","answer":"I build services."}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/interview/submit-answer", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleSubmitAnswer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Message != "Answer submitted and evaluated" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if op.gotVoice {
		t.Fatal("text answer flagged as voice")
	}
	if op.gotAnswer != "I build services." {
		t.Fatalf("unexpected answer %q", op.gotAnswer)
	}
}

func TestHandleSubmitAnswer_MissingFields(t *testing.T) {
	h := NewInterviewHandler(&fakeInterviewOperator{}, testLogger())

	body := `{"session_id":"s-1","question_id":"q_1"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/interview/submit-answer", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleSubmitAnswer(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "session_id, question_id, question, and answer are required" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestHandleVoiceAnswer_UsesTranscript(t *testing.T) {
	op := &fakeInterviewOperator{evaluation: &textscore.AnswerEvaluation{OverallScore: 75}}
	h := NewInterviewHandler(op, testLogger())

	body := `{"session_id":"s-1","question_id":"q_1","question":"Why this role?","transcript":"Because I like it.","audio_duration":12.5}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/interview/voice-answer", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleVoiceAnswer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Voice answer submitted and evaluated" {
		t.Fatalf("unexpected message %q", env.Message)
	}
	if !op.gotVoice || op.gotAnswer != "Because I like it." {
		t.Fatalf("voice submission mishandled: voice=%v answer=%q", op.gotVoice, op.gotAnswer)
	}
}

func TestHandleSubmitAnswer_SessionNotFound(t *testing.T) {
	op := &fakeInterviewOperator{submitErr: common.ErrNotFound}
	h := NewInterviewHandler(op, testLogger())

	body := `{"session_id":"missing","question_id":"q_1","question":"q","answer":"a"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/interview/submit-answer", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleSubmitAnswer(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Interview session not found" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestHandleSubmitAnswer_Forbidden(t *testing.T) {
	op := &fakeInterviewOperator{submitErr: common.ErrForbidden}
	h := NewInterviewHandler(op, testLogger())

	body := `{"session_id":"s-1","question_id":"q_1","question":"q","answer":"a"}`
	req := authedRequest(httptest.NewRequest(http.MethodPost, "/api/interview/submit-answer", strings.NewReader(body)), "u-1", "tok")
	rec := httptest.NewRecorder()
	h.HandleSubmitAnswer(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if env := decodeEnvelope(t, rec); env.Message != "Unauthorized access to session" {
		t.Fatalf("unexpected message %q", env.Message)
	}
}

func TestHandleFeedback_PathParam(t *testing.T) {
	op := &fakeInterviewOperator{feedback: &models.InterviewSession{
		ID: "s-1", JobRole: "Software Engineer", OverallScore: 85.0,
		Scores: map[string]models.QuestionScore{"q_1": {Score: 85}},
	}}
	h := NewInterviewHandler(op, testLogger())

	r := chi.NewRouter()
	r.Get("/feedback/{sessionID}", func(w http.ResponseWriter, req *http.Request) {
		h.HandleFeedback(w, authedRequest(req, "u-1", "tok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/feedback/s-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	data := dataField(t, decodeEnvelope(t, rec))
	if data["session_id"] != "s-1" || data["overall_score"] != 85.0 {
		t.Fatalf("unexpected data: %v", data)
	}
}
