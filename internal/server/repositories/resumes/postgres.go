package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, resume *models.Resume) error {

	content, err := json.Marshal(resume.Content)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	suggestions, err := json.Marshal(resume.Suggestions)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	var analysis []byte
	if resume.Analysis != nil {
		analysis, err = json.Marshal(resume.Analysis)
		if err != nil {
			return fmt.Errorf("marshal error: %w", err)
		}
	}

	query :=
		`INSERT INTO resumes (id, user_id, content, analysis, score, suggestions, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.ExecContext(ctx, query,
		resume.ID, resume.UserID, content, analysis, resume.Score, suggestions, resume.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Resume, error) {

	query :=
		`SELECT id, user_id, content, analysis, score, suggestions, created_at
		 FROM resumes
		 WHERE id = $1`

	res := &models.Resume{}
	var content, analysis, suggestions []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&res.ID, &res.UserID, &content, &analysis, &res.Score, &suggestions, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := unmarshalResume(res, content, analysis, suggestions); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Resume, error) {

	query :=
		`SELECT id, user_id, content, analysis, score, suggestions, created_at
		 FROM resumes
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, dbx.LimitArg(limit))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var list []*models.Resume
	for rows.Next() {
		res := &models.Resume{}
		var content, analysis, suggestions []byte
		if err := rows.Scan(&res.ID, &res.UserID, &content, &analysis, &res.Score,
			&suggestions, &res.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := unmarshalResume(res, content, analysis, suggestions); err != nil {
			return nil, err
		}
		list = append(list, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return list, nil
}

func unmarshalResume(res *models.Resume, content, analysis, suggestions []byte) error {
	if err := json.Unmarshal(content, &res.Content); err != nil {
		return fmt.Errorf("unmarshal content: %w", err)
	}
	if len(analysis) > 0 {
		if err := json.Unmarshal(analysis, &res.Analysis); err != nil {
			return fmt.Errorf("unmarshal analysis: %w", err)
		}
	}
	if err := json.Unmarshal(suggestions, &res.Suggestions); err != nil {
		return fmt.Errorf("unmarshal suggestions: %w", err)
	}
	return nil
}
