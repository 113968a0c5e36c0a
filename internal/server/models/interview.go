package models

import (
	"time"

	"github.com/mockview/mockview/internal/textscore"
)

// Interview session lifecycle states.
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// Question is one generated interview question. IDs are positional
// ("q_1".."q_n") within a session.
type Question struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	JobRole    string `json:"job_role"`
	SkillLevel string `json:"skill_level"`
	Order      int    `json:"order"`
}

// AnswerRecord captures one submitted answer with its evaluation.
// Voice answers carry the transcript in Answer plus IsVoice and the
// recording duration.
type AnswerRecord struct {
	QuestionID    string                      `json:"question_id"`
	Question      string                      `json:"question"`
	Answer        string                      `json:"answer"`
	IsVoice       bool                        `json:"is_voice,omitempty"`
	AudioDuration float64                     `json:"audio_duration,omitempty"`
	Evaluation    *textscore.AnswerEvaluation `json:"evaluation"`
	Timestamp     time.Time                   `json:"timestamp"`
}

// QuestionScore is the per-question score breakdown kept on the session,
// keyed by question ID.
type QuestionScore struct {
	Score        float64 `json:"score"`
	Relevance    float64 `json:"relevance"`
	Grammar      float64 `json:"grammar"`
	Completeness float64 `json:"completeness"`
	Sentiment    float64 `json:"sentiment"`
}

// InterviewSession is one mock interview run: the generated questions, the
// answers collected so far, and the accumulated scores.
type InterviewSession struct {
	ID            string                   `json:"session_id"`
	UserID        string                   `json:"user_id"`
	JobRole       string                   `json:"job_role"`
	SkillLevel    string                   `json:"skill_level"`
	InterviewType string                   `json:"interview_type"`
	Questions     []Question               `json:"questions"`
	Answers       []AnswerRecord           `json:"answers"`
	Scores        map[string]QuestionScore `json:"scores"`
	OverallScore  float64                  `json:"overall_score"`
	Status        string                   `json:"status"`
	CreatedAt     time.Time                `json:"created_at"`
	CompletedAt   *time.Time               `json:"completed_at,omitempty"`
}

// OverallFromScores averages the per-question overall scores. Sessions with
// no evaluated answers score 0.
func (s *InterviewSession) OverallFromScores() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, sc := range s.Scores {
		sum += sc.Score
	}
	return sum / float64(len(s.Scores))
}
