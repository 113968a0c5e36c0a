package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/dbx"
	"github.com/mockview/mockview/internal/server/cache"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/repositories/repomanager"
	"github.com/mockview/mockview/internal/textscore"
)

// Pronunciation scoring needs raw audio, which transcripts do not carry.
const placeholderPronunciationScore = 85.0

// FluencyService runs speech fluency tests over submitted transcripts.
type FluencyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	cache       *cache.Cache
}

func NewFluencyService(db *sql.DB, m repomanager.RepositoryManager, c *cache.Cache) *FluencyService {
	return &FluencyService{db: db, repomanager: m, cache: c}
}

// Start creates an empty fluency test to be filled in by Analyze.
func (s *FluencyService) Start(ctx context.Context, userID string) (*models.FluencyTest, error) {
	test := &models.FluencyTest{
		ID:        uuid.NewString(),
		UserID:    userID,
		Feedback:  []string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repomanager.FluencyTests(s.db).Create(ctx, test); err != nil {
		return nil, fmt.Errorf("error creating fluency test: %v", err)
	}
	return test, nil
}

// Analyze scores the transcript and stores the results on the test.
func (s *FluencyService) Analyze(ctx context.Context, userID, testID, transcript string, audioDuration float64) (*models.FluencyTest, error) {
	analysis := textscore.AnalyzeFluency(transcript, audioDuration)

	var test *models.FluencyTest

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.FluencyTests(tx)

		found, err := repo.GetByID(ctx, testID)
		if err != nil {
			return err
		}
		if found.UserID != userID {
			return common.ErrForbidden
		}

		found.Transcript = transcript
		found.AudioDuration = audioDuration
		found.FluencyScore = analysis.FluencyScore
		found.PronunciationScore = placeholderPronunciationScore
		found.GrammarScore = float64(100 - len(analysis.GrammarErrors)*5)
		found.WPM = analysis.WPM
		found.PauseCount = analysis.Pauses.Count
		found.FillerWordCount = analysis.FillerWords.TotalCount
		found.Feedback = analysis.Feedback
		found.DetailedAnalysis = analysis

		if err := repo.Update(ctx, found); err != nil {
			return err
		}
		test = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, dashboardStatsKey(userID))
	return test, nil
}

// Score returns a previously analyzed test. Access is limited to its owner.
func (s *FluencyService) Score(ctx context.Context, userID, testID string) (*models.FluencyTest, error) {
	test, err := s.repomanager.FluencyTests(s.db).GetByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test.UserID != userID {
		return nil, common.ErrForbidden
	}
	return test, nil
}
