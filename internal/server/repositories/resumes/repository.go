package resumes

import (
	"context"

	"github.com/mockview/mockview/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, resume *models.Resume) error
	GetByID(ctx context.Context, id string) (*models.Resume, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Resume, error)
}
