package interviews

import (
	"context"
	"time"

	"github.com/mockview/mockview/internal/server/models"
)

// ScorePoint is one dated overall score, used for trend charts.
type ScorePoint struct {
	Date  time.Time `json:"date"`
	Score float64   `json:"score"`
}

type Repository interface {
	Create(ctx context.Context, session *models.InterviewSession) error
	GetByID(ctx context.Context, id string) (*models.InterviewSession, error)
	Update(ctx context.Context, session *models.InterviewSession) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.InterviewSession, error)
	ScoresSince(ctx context.Context, userID string, since time.Time) ([]ScorePoint, error)
}
