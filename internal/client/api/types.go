package api

import (
	"encoding/json"
	"time"

	"github.com/mockview/mockview/internal/client/models"
)

// Question is one interview question with its position in the session.
type Question struct {
	ID         string `json:"id"`
	Question   string `json:"question"`
	JobRole    string `json:"job_role"`
	SkillLevel string `json:"skill_level"`
	Order      int    `json:"order"`
}

// Relevance is the relevance slice of an answer evaluation.
type Relevance struct {
	Score               float64  `json:"score"`
	SimilarityScore     float64  `json:"similarity_score"`
	KeywordScore        float64  `json:"keyword_score"`
	MatchedKeywords     []string `json:"matched_keywords"`
	TotalKeywordMatches int      `json:"total_keyword_matches"`
}

// Grammar is the grammar slice of an answer evaluation.
type Grammar struct {
	Score         float64  `json:"score"`
	Errors        []string `json:"errors"`
	ErrorCount    int      `json:"error_count"`
	WordCount     int      `json:"word_count"`
	SentenceCount int      `json:"sentence_count"`
}

// Completeness is the completeness slice of an answer evaluation.
type Completeness struct {
	Score         float64 `json:"score"`
	WordCount     int     `json:"word_count"`
	SentenceCount int     `json:"sentence_count"`
	IsAdequate    bool    `json:"is_adequate"`
}

// Evaluation is the full scored breakdown of one submitted answer.
type Evaluation struct {
	OverallScore   float64      `json:"overall_score"`
	Relevance      Relevance    `json:"relevance"`
	Grammar        Grammar      `json:"grammar"`
	Completeness   Completeness `json:"completeness"`
	SentimentScore float64      `json:"sentiment_score"`
	Feedback       []string     `json:"feedback"`
	Question       string       `json:"question"`
	AnswerPreview  string       `json:"answer_preview"`
}

// QuestionScore is the per-question score row in session feedback.
type QuestionScore struct {
	Score        float64 `json:"score"`
	Relevance    float64 `json:"relevance"`
	Grammar      float64 `json:"grammar"`
	Completeness float64 `json:"completeness"`
	Sentiment    float64 `json:"sentiment"`
}

// AnswerRecord is one recorded answer inside session feedback.
type AnswerRecord struct {
	QuestionID    string      `json:"question_id"`
	Question      string      `json:"question"`
	Answer        string      `json:"answer"`
	IsVoice       bool        `json:"is_voice,omitempty"`
	AudioDuration float64     `json:"audio_duration,omitempty"`
	Evaluation    *Evaluation `json:"evaluation,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}

// AuthResult is the payload of successful signup and login calls.
type AuthResult struct {
	User        *models.User `json:"user"`
	AccessToken string       `json:"access_token"`
	// Token is the legacy field name some deployments still emit.
	Token string `json:"token"`
}

// StartInterviewResult is the payload of POST /interview/start.
type StartInterviewResult struct {
	SessionID      string     `json:"session_id"`
	JobRole        string     `json:"job_role"`
	SkillLevel     string     `json:"skill_level"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// QuestionsResult is the payload of GET /interview/questions.
type QuestionsResult struct {
	Questions  []Question `json:"questions"`
	JobRole    string     `json:"job_role"`
	SkillLevel string     `json:"skill_level"`
}

// SubmitAnswerResult is the payload of answer submissions.
type SubmitAnswerResult struct {
	Evaluation Evaluation `json:"evaluation"`
	QuestionID string     `json:"question_id"`
}

// InterviewFeedbackResult is the payload of GET /interview/feedback/{id}.
type InterviewFeedbackResult struct {
	SessionID    string                   `json:"session_id"`
	JobRole      string                   `json:"job_role"`
	SkillLevel   string                   `json:"skill_level"`
	OverallScore float64                  `json:"overall_score"`
	Scores       map[string]QuestionScore `json:"scores"`
	Answers      []AnswerRecord           `json:"answers"`
	Questions    []Question               `json:"questions"`
	CreatedAt    time.Time                `json:"created_at"`
}

// StartFluencyResult is the payload of POST /fluency/test.
type StartFluencyResult struct {
	TestID string `json:"test_id"`
}

// FluencyResult is the payload of fluency analyze and score calls.
type FluencyResult struct {
	TestID             string          `json:"test_id"`
	OverallScore       float64         `json:"overall_score"`
	FluencyScore       float64         `json:"fluency_score"`
	PronunciationScore float64         `json:"pronunciation_score"`
	GrammarScore       float64         `json:"grammar_score"`
	WPM                float64         `json:"wpm"`
	WordCount          int             `json:"word_count,omitempty"`
	FillerWordCount    int             `json:"filler_word_count"`
	PauseCount         int             `json:"pause_count"`
	Feedback           []string        `json:"feedback"`
	DetailedAnalysis   json.RawMessage `json:"detailed_analysis,omitempty"`
	Timestamp          time.Time       `json:"timestamp,omitempty"`
}

// ResumeSection is one dated block of a built resume.
type ResumeSection struct {
	Title       string `json:"title"`
	Institution string `json:"institution,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

// ResumeContent is the structured form payload for resume building.
type ResumeContent struct {
	PersonalInfo   map[string]string `json:"personal_info,omitempty"`
	Education      []ResumeSection   `json:"education,omitempty"`
	Experience     []ResumeSection   `json:"experience,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Certifications []string          `json:"certifications,omitempty"`
	Projects       []ResumeSection   `json:"projects,omitempty"`
}

// ResumeAnalysis is the scored breakdown returned by resume analysis.
type ResumeAnalysis struct {
	GrammarScore    float64  `json:"grammar_score"`
	StructureScore  float64  `json:"structure_score"`
	ATSScore        float64  `json:"ats_score"`
	KeywordScore    float64  `json:"keyword_score"`
	WordCount       int      `json:"word_count"`
	SentenceCount   int      `json:"sentence_count"`
	KeywordsFound   []string `json:"keywords_found"`
	MatchedKeywords int      `json:"matched_keywords"`
	GrammarErrors   []string `json:"grammar_errors"`
}

// BuildResumeResult is the payload of POST /resume/build.
type BuildResumeResult struct {
	ResumeID string        `json:"resume_id"`
	Content  ResumeContent `json:"content"`
}

// AnalyzeResumeResult is the payload of POST /resume/analyze.
type AnalyzeResumeResult struct {
	ResumeID     string          `json:"resume_id"`
	OverallScore float64         `json:"overall_score"`
	Analysis     *ResumeAnalysis `json:"analysis"`
	Suggestions  []string        `json:"suggestions"`
}

// Template describes one export layout.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PreviewURL  string `json:"preview_url"`
}

// TemplatesResult is the payload of GET /resume/templates.
type TemplatesResult struct {
	Templates []Template `json:"templates"`
}

// ExportResumeResult is the payload of POST /resume/export.
type ExportResumeResult struct {
	ResumeID    string `json:"resume_id"`
	Template    string `json:"template"`
	DownloadURL string `json:"download_url"`
}

// ResumeFeedbackResult is the payload of GET /resume/feedback/{id}.
type ResumeFeedbackResult struct {
	ResumeID    string          `json:"resume_id"`
	Score       float64         `json:"score"`
	Analysis    *ResumeAnalysis `json:"analysis"`
	Suggestions []string        `json:"suggestions"`
	Timestamp   time.Time       `json:"timestamp"`
}

// ActivityStats summarizes one activity type on the dashboard.
type ActivityStats struct {
	TotalCount   int     `json:"total_count"`
	AverageScore float64 `json:"average_score,omitempty"`
	LatestScore  float64 `json:"latest_score"`
}

// StatsResult is the payload of GET /dashboard/stats.
type StatsResult struct {
	Interviews   ActivityStats `json:"interviews"`
	FluencyTests ActivityStats `json:"fluency_tests"`
	Resumes      ActivityStats `json:"resumes"`
	Overall      struct {
		TotalActivities    int     `json:"total_activities"`
		OverallPerformance float64 `json:"overall_performance"`
	} `json:"overall"`
}

// HistoryItem is one merged activity entry.
type HistoryItem struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Score     float64        `json:"score"`
	Status    string         `json:"status"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

// HistoryResult is the payload of GET /dashboard/history.
type HistoryResult struct {
	History []HistoryItem `json:"history"`
	Total   int           `json:"total"`
}

// ScorePoint is one dated score in a trend series.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

// TrendsResult is the payload of GET /dashboard/trends.
type TrendsResult struct {
	DateRange struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
		Days  int       `json:"days"`
	} `json:"date_range"`
	Trends struct {
		Interviews []ScorePoint `json:"interviews"`
		Fluency    []ScorePoint `json:"fluency"`
	} `json:"trends"`
}
