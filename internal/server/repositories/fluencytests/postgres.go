package fluencytests

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mockview/mockview/internal/common"
	"github.com/mockview/mockview/internal/dbx"
	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/repositories/interviews"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const testColumns = `id, user_id, transcript, audio_duration, fluency_score, pronunciation_score,
		        grammar_score, wpm, pause_count, filler_word_count, feedback, detailed_analysis, created_at`

func (r *PostgresRepository) Create(ctx context.Context, test *models.FluencyTest) error {

	query :=
		`INSERT INTO fluency_tests (id, user_id, feedback, created_at)
		 VALUES ($1, $2, '[]', $3)`

	_, err := r.db.ExecContext(ctx, query, test.ID, test.UserID, test.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.FluencyTest, error) {

	query := `SELECT ` + testColumns + ` FROM fluency_tests WHERE id = $1`

	t := &models.FluencyTest{}
	var feedback, analysis []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.UserID, &t.Transcript, &t.AudioDuration, &t.FluencyScore, &t.PronunciationScore,
		&t.GrammarScore, &t.WPM, &t.PauseCount, &t.FillerWordCount, &feedback, &analysis, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := unmarshalTest(t, feedback, analysis); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *PostgresRepository) Update(ctx context.Context, test *models.FluencyTest) error {

	feedback, err := json.Marshal(test.Feedback)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	var analysis []byte
	if test.DetailedAnalysis != nil {
		analysis, err = json.Marshal(test.DetailedAnalysis)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
	}

	query :=
		`UPDATE fluency_tests
		 SET transcript = $2, audio_duration = $3, fluency_score = $4, pronunciation_score = $5,
		     grammar_score = $6, wpm = $7, pause_count = $8, filler_word_count = $9,
		     feedback = $10, detailed_analysis = $11
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		test.ID, test.Transcript, test.AudioDuration, test.FluencyScore, test.PronunciationScore,
		test.GrammarScore, test.WPM, test.PauseCount, test.FillerWordCount, feedback, analysis)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.FluencyTest, error) {

	query :=
		`SELECT ` + testColumns + `
		 FROM fluency_tests
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, dbx.LimitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var tests []*models.FluencyTest
	for rows.Next() {
		t := &models.FluencyTest{}
		var feedback, analysis []byte
		if err := rows.Scan(&t.ID, &t.UserID, &t.Transcript, &t.AudioDuration, &t.FluencyScore,
			&t.PronunciationScore, &t.GrammarScore, &t.WPM, &t.PauseCount, &t.FillerWordCount,
			&feedback, &analysis, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := unmarshalTest(t, feedback, analysis); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tests, nil
}

func (r *PostgresRepository) ScoresSince(ctx context.Context, userID string, since time.Time) ([]interviews.ScorePoint, error) {

	query :=
		`SELECT created_at, fluency_score
		 FROM fluency_tests
		 WHERE user_id = $1 AND created_at >= $2
		 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var points []interviews.ScorePoint
	for rows.Next() {
		var p interviews.ScorePoint
		if err := rows.Scan(&p.Date, &p.Score); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return points, nil
}

func unmarshalTest(t *models.FluencyTest, feedback, analysis []byte) error {
	if err := json.Unmarshal(feedback, &t.Feedback); err != nil {
		return fmt.Errorf("unmarshal feedback: %w", err)
	}
	if len(analysis) > 0 {
		if err := json.Unmarshal(analysis, &t.DetailedAnalysis); err != nil {
			return fmt.Errorf("unmarshal analysis: %w", err)
		}
	}
	return nil
}
