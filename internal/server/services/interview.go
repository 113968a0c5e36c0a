package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/dbx"
	"github.com/mockview/mockview/internal/server/cache"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/questions"
	"github.com/mockview/mockview/internal/server/repositories/repomanager"
	"github.com/mockview/mockview/internal/textscore"
)

const defaultQuestionCount = 5

// InterviewService runs mock interview sessions: question selection, answer
// evaluation, and final session feedback.
type InterviewService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
	bank        *questions.Bank
}

func NewInterviewService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache, bank *questions.Bank) *InterviewService {
	return &InterviewService{db: db, repomanager: m, cache: c, bank: bank}
}

// Start creates a new session with questions selected for the role and level.
// Counts outside 1..10 fall back to the default of five questions.
func (s *InterviewService) Start(ctx context.Context, userID, jobRole, skillLevel, interviewType string, numQuestions int) (*models.InterviewSession, error) {
	if jobRole == "" {
		jobRole = common.DefaultJobRole
	}
	if skillLevel == "" {
		skillLevel = common.SkillBeginner
	}
	if interviewType == "" {
		interviewType = "text"
	}
	if numQuestions < 1 || numQuestions > 10 {
		numQuestions = defaultQuestionCount
	}

	session := &models.InterviewSession{
		ID:            uuid.NewString(),
		UserID:        userID,
		JobRole:       jobRole,
		SkillLevel:    skillLevel,
		InterviewType: interviewType,
		Questions:     s.bank.QuestionsFor(jobRole, skillLevel, numQuestions),
		Answers:       []models.AnswerRecord{},
		Scores:        map[string]models.QuestionScore{},
		Status:        models.SessionInProgress,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repomanager.Interviews(s.db).Create(ctx, session); err != nil {
		return nil, fmt.Errorf("error creating session: %v", err)
	}
	return session, nil
}

// Questions returns questions for standalone practice without a session.
func (s *InterviewService) Questions(jobRole, skillLevel string, count int) []models.Question {
	if jobRole == "" {
		jobRole = common.DefaultJobRole
	}
	if skillLevel == "" {
		skillLevel = common.SkillBeginner
	}
	if count < 1 || count > 10 {
		count = defaultQuestionCount
	}
	return s.bank.QuestionsFor(jobRole, skillLevel, count)
}

// SubmitAnswer evaluates the answer for one question and records it on the
// session. Voice answers carry a transcript plus the recording duration.
func (s *InterviewService) SubmitAnswer(ctx context.Context, userID, sessionID, questionID, question, answer string, isVoice bool, audioDuration float64) (*textscore.AnswerEvaluation, error) {
	var evaluation *textscore.AnswerEvaluation

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Interviews(tx)

		session, err := repo.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if session.UserID != userID {
			return common.ErrForbidden
		}

		evaluation = textscore.EvaluateAnswer(question, answer, s.bank.Keywords(session.JobRole))

		session.Answers = append(session.Answers, models.AnswerRecord{
			QuestionID:    questionID,
			Question:      question,
			Answer:        answer,
			IsVoice:       isVoice,
			AudioDuration: audioDuration,
			Evaluation:    evaluation,
			Timestamp:     time.Now().UTC(),
		})
		session.Scores[questionID] = models.QuestionScore{
			Score:        evaluation.OverallScore,
			Relevance:    evaluation.Relevance.Score,
			Grammar:      evaluation.Grammar.Score,
			Completeness: evaluation.Completeness.Score,
			Sentiment:    evaluation.SentimentScore,
		}

		return repo.Update(ctx, session)
	})
	if err != nil {
		return nil, err
	}
	return evaluation, nil
}

// Feedback marks the session completed and returns it with the overall score
// computed from the per-question scores.
func (s *InterviewService) Feedback(ctx context.Context, userID, sessionID string) (*models.InterviewSession, error) {
	var session *models.InterviewSession

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Interviews(tx)

		found, err := repo.GetByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return common.ErrForbidden
		}

		overall := found.OverallFromScores()
		now := time.Now().UTC()

		found.Status = models.SessionCompleted
		found.OverallScore = math.Round(overall*100) / 100
		found.CompletedAt = &now

		if err := repo.Update(ctx, found); err != nil {
			return err
		}
		session = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, dashboardStatsKey(userID))
	return session, nil
}
