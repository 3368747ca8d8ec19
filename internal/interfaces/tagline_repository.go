package interfaces

import (
	"context"

	"phlegm-site/internal/models"
)

type TaglineRepository interface {
	List(ctx context.Context, activeOnly bool) ([]models.Tagline, error)
	GetByID(ctx context.Context, id string) (*models.Tagline, error)
	Create(ctx context.Context, tagline *models.Tagline) error
	Update(ctx context.Context, id string, req *models.UpdateTaglineRequest) error
	Delete(ctx context.Context, id string) error
}
