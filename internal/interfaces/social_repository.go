package interfaces

import (
	"context"

	"phlegm-site/internal/models"
)

type SocialLinkRepository interface {
	// List returns links ordered by sort_order ascending, optionally
	// restricted to active rows.
	List(ctx context.Context, activeOnly bool) ([]models.SocialLink, error)
	GetByID(ctx context.Context, id string) (*models.SocialLink, error)
	Create(ctx context.Context, link *models.SocialLink) error
	Update(ctx context.Context, id string, req *models.UpdateSocialLinkRequest) error
	Delete(ctx context.Context, id string) error

	// ClearPrimary and MarkPrimary are the two phases of "set as primary".
	// They are deliberately separate calls: a failure after ClearPrimary
	// leaves the list with no primary link.
	ClearPrimary(ctx context.Context) error
	MarkPrimary(ctx context.Context, id string) error
}
