package fluencytests

import (
	"context"
	"time"

	"github.com/mockview/mockview/internal/server/models"
	"github.com/mockview/mockview/internal/server/repositories/interviews"
)

type Repository interface {
	Create(ctx context.Context, test *models.FluencyTest) error
	GetByID(ctx context.Context, id string) (*models.FluencyTest, error)
	Update(ctx context.Context, test *models.FluencyTest) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.FluencyTest, error)
	ScoresSince(ctx context.Context, userID string, since time.Time) ([]interviews.ScorePoint, error)
}
