package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type startInterviewRequest struct {
	JobRole      string `json:"job_role,omitempty"`
	SkillLevel   string `json:"skill_level,omitempty"`
	NumQuestions int    `json:"num_questions,omitempty"`
}

// StartInterview opens a mock interview session.
func (c *Client) StartInterview(ctx context.Context, jobRole, skillLevel string, numQuestions int) (*StartInterviewResult, error) {
	req := startInterviewRequest{JobRole: jobRole, SkillLevel: skillLevel, NumQuestions: numQuestions}
	var res StartInterviewResult
	if err := c.do(ctx, http.MethodPost, "/interview/start", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// InterviewQuestions fetches questions without opening a session.
func (c *Client) InterviewQuestions(ctx context.Context, jobRole, skillLevel string, count int) (*QuestionsResult, error) {
	q := url.Values{}
	if jobRole != "" {
		q.Set("job_role", jobRole)
	}
	if skillLevel != "" {
		q.Set("skill_level", skillLevel)
	}
	if count > 0 {
		q.Set("count", fmt.Sprint(count))
	}
	path := "/interview/questions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var res QuestionsResult
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

type submitAnswerRequest struct {
	SessionID     string  `json:"session_id"`
	QuestionID    string  `json:"question_id"`
	Question      string  `json:"question"`
	Answer        string  `json:"answer,omitempty"`
	Transcript    string  `json:"transcript,omitempty"`
	AudioDuration float64 `json:"audio_duration,omitempty"`
}

// SubmitAnswer sends a typed answer for scoring.
func (c *Client) SubmitAnswer(ctx context.Context, sessionID, questionID, question, answer string) (*SubmitAnswerResult, error) {
	req := submitAnswerRequest{SessionID: sessionID, QuestionID: questionID, Question: question, Answer: answer}
	var res SubmitAnswerResult
	if err := c.do(ctx, http.MethodPost, "/interview/submit-answer", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SubmitVoiceAnswer sends a spoken answer transcript for scoring.
func (c *Client) SubmitVoiceAnswer(ctx context.Context, sessionID, questionID, question, transcript string, audioDuration float64) (*SubmitAnswerResult, error) {
	req := submitAnswerRequest{
		SessionID:     sessionID,
		QuestionID:    questionID,
		Question:      question,
		Transcript:    transcript,
		AudioDuration: audioDuration,
	}
	var res SubmitAnswerResult
	if err := c.do(ctx, http.MethodPost, "/interview/voice-answer", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// InterviewFeedback fetches the final report of a session. Requesting
// feedback completes the session on the server.
func (c *Client) InterviewFeedback(ctx context.Context, sessionID string) (*InterviewFeedbackResult, error) {
	var res InterviewFeedbackResult
	if err := c.do(ctx, http.MethodGet, "/interview/feedback/"+url.PathEscape(sessionID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
