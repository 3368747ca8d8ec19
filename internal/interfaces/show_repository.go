package interfaces

import (
	"context"

	"phlegm-site/internal/models"
)

type ShowRepository interface {
	// ListUpcoming returns shows dated on or after the given YYYY-MM-DD day,
	// ordered by show_date ascending. The filter and ordering are applied in SQL.
	ListUpcoming(ctx context.Context, fromDate string) ([]models.UpcomingShow, error)
	// ListAllUpcoming returns every row for the admin editor, ascending.
	ListAllUpcoming(ctx context.Context) ([]models.UpcomingShow, error)
	GetUpcomingByID(ctx context.Context, id string) (*models.UpcomingShow, error)
	CreateUpcoming(ctx context.Context, show *models.UpcomingShow) error
	UpdateUpcoming(ctx context.Context, id string, req *models.UpdateUpcomingShowRequest) error
	DeleteUpcoming(ctx context.Context, id string) error

	// ListPast returns past shows ordered by show_date descending.
	ListPast(ctx context.Context) ([]models.PastShow, error)
	GetPastByID(ctx context.Context, id string) (*models.PastShow, error)
	CreatePast(ctx context.Context, show *models.PastShow) error
	UpdatePast(ctx context.Context, id string, req *models.UpdatePastShowRequest) error
	DeletePast(ctx context.Context, id string) error
}
