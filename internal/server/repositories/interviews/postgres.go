package interviews

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
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// marshalled turns v into its JSONB representation; nil slices and maps
// still produce valid JSON.
func marshalled(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	return b, nil
}

func (r *PostgresRepository) Create(ctx context.Context, session *models.InterviewSession) error {

	questions, err := marshalled(session.Questions)
	if err != nil {
		return err
	}
	answers, err := marshalled(session.Answers)
	if err != nil {
		return err
	}
	scores, err := marshalled(session.Scores)
	if err != nil {
		return err
	}

	query :=
		`INSERT INTO interview_sessions
		 (id, user_id, job_role, skill_level, interview_type, questions, answers, scores, overall_score, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err = r.db.ExecContext(ctx, query,
		session.ID, session.UserID, session.JobRole, session.SkillLevel, session.InterviewType,
		questions, answers, scores, session.OverallScore, session.Status, session.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.InterviewSession, error) {

	query :=
		`SELECT id, user_id, job_role, skill_level, interview_type, questions, answers, scores,
		        overall_score, status, created_at, completed_at
		 FROM interview_sessions
		 WHERE id = $1`

	s := &models.InterviewSession{}
	var questions, answers, scores []byte
	var completedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.JobRole, &s.SkillLevel, &s.InterviewType,
		&questions, &answers, &scores, &s.OverallScore, &s.Status, &s.CreatedAt, &completedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := unmarshalSession(s, questions, answers, scores, completedAt); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *PostgresRepository) Update(ctx context.Context, session *models.InterviewSession) error {

	answers, err := marshalled(session.Answers)
	if err != nil {
		return err
	}
	scores, err := marshalled(session.Scores)
	if err != nil {
		return err
	}

	var completedAt any
	if session.CompletedAt != nil {
		completedAt = *session.CompletedAt
	}

	query :=
		`UPDATE interview_sessions
		 SET answers = $2, scores = $3, overall_score = $4, status = $5, completed_at = $6
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		session.ID, answers, scores, session.OverallScore, session.Status, completedAt)
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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.InterviewSession, error) {

	query :=
		`SELECT id, user_id, job_role, skill_level, interview_type, questions, answers, scores,
		        overall_score, status, created_at, completed_at
		 FROM interview_sessions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, dbx.LimitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var sessions []*models.InterviewSession
	for rows.Next() {
		s := &models.InterviewSession{}
		var questions, answers, scores []byte
		var completedAt sql.NullTime

		if err := rows.Scan(&s.ID, &s.UserID, &s.JobRole, &s.SkillLevel, &s.InterviewType,
			&questions, &answers, &scores, &s.OverallScore, &s.Status, &s.CreatedAt, &completedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := unmarshalSession(s, questions, answers, scores, completedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return sessions, nil
}

func (r *PostgresRepository) ScoresSince(ctx context.Context, userID string, since time.Time) ([]ScorePoint, error) {

	query :=
		`SELECT created_at, overall_score
		 FROM interview_sessions
		 WHERE user_id = $1 AND created_at >= $2
		 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var points []ScorePoint
	for rows.Next() {
		var p ScorePoint
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

func unmarshalSession(s *models.InterviewSession, questions, answers, scores []byte, completedAt sql.NullTime) error {
	if err := json.Unmarshal(questions, &s.Questions); err != nil {
		return fmt.Errorf("unmarshal questions: %w", err)
	}
	if err := json.Unmarshal(answers, &s.Answers); err != nil {
		return fmt.Errorf("unmarshal answers: %w", err)
	}
	if err := json.Unmarshal(scores, &s.Scores); err != nil {
		return fmt.Errorf("unmarshal scores: %w", err)
	}
	if completedAt.Valid {
		t := completedAt.Time
		s.CompletedAt = &t
	}
	return nil
}
