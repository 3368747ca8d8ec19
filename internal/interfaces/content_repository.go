package interfaces

import (
	"context"

	"phlegm-site/internal/models"
)

// ContentRepository covers the singleton content rows. Get returns the raw
// stored row (sql.ErrNoRows when the seed is missing); Update replaces every
// editable field of the identified row.
type ContentRepository interface {
	GetHero(ctx context.Context) (*models.HeroContent, error)
	UpdateHero(ctx context.Context, id string, req *models.UpdateHeroContentRequest) error

	GetBanner(ctx context.Context) (*models.BannerContent, error)
	UpdateBanner(ctx context.Context, id string, req *models.UpdateBannerContentRequest) error

	GetBio(ctx context.Context) (*models.BioContent, error)
	UpdateBio(ctx context.Context, id string, req *models.UpdateBioContentRequest) error

	GetAbout(ctx context.Context) (*models.AboutContent, error)
	UpdateAbout(ctx context.Context, id string, req *models.UpdateAboutContentRequest) error

	GetLegal(ctx context.Context) (*models.LegalContent, error)
	UpdateLegal(ctx context.Context, id string, req *models.UpdateLegalContentRequest) error

	GetBooking(ctx context.Context) (*models.BookingInfo, error)
	UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingInfoRequest) error
}
