package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/lib/pq"
	"phlegm-site/internal/interfaces"
	"phlegm-site/internal/models"
)

type showRepository struct {
	db *sql.DB
}

func NewShowRepository(db *sql.DB) interfaces.ShowRepository {
	return &showRepository{db: db}
}

const upcomingShowColumns = `id, show_date::TEXT, show_time, event_name, venue, city, ticket_url, created_at, updated_at`

func (r *showRepository) ListUpcoming(ctx context.Context, fromDate string) ([]models.UpcomingShow, error) {
	query := `
		SELECT ` + upcomingShowColumns + `
		FROM upcoming_shows
		WHERE show_date >= $1
		ORDER BY show_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, fromDate)
	if err != nil {
		log.Printf("Error listing upcoming shows: %v", err)
		return nil, fmt.Errorf("failed to list upcoming shows: %w", err)
	}
	defer rows.Close()

	return scanUpcomingShows(rows)
}

func (r *showRepository) ListAllUpcoming(ctx context.Context) ([]models.UpcomingShow, error) {
	query := `
		SELECT ` + upcomingShowColumns + `
		FROM upcoming_shows
		ORDER BY show_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing upcoming shows: %v", err)
		return nil, fmt.Errorf("failed to list upcoming shows: %w", err)
	}
	defer rows.Close()

	return scanUpcomingShows(rows)
}

func scanUpcomingShows(rows *sql.Rows) ([]models.UpcomingShow, error) {
	var shows []models.UpcomingShow
	for rows.Next() {
		var show models.UpcomingShow
		if err := rows.Scan(
			&show.ID,
			&show.ShowDate,
			&show.ShowTime,
			&show.EventName,
			&show.Venue,
			&show.City,
			&show.TicketURL,
			&show.CreatedAt,
			&show.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning upcoming show: %v", err)
			return nil, fmt.Errorf("failed to scan upcoming show: %w", err)
		}
		shows = append(shows, show)
	}

	if err := rows.Err(); err != nil {
		log.Printf("Error iterating upcoming shows: %v", err)
		return nil, fmt.Errorf("error iterating upcoming shows: %w", err)
	}

	return shows, nil
}

func (r *showRepository) GetUpcomingByID(ctx context.Context, id string) (*models.UpcomingShow, error) {
	query := `
		SELECT ` + upcomingShowColumns + `
		FROM upcoming_shows
		WHERE id = $1
	`

	var show models.UpcomingShow
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&show.ID,
		&show.ShowDate,
		&show.ShowTime,
		&show.EventName,
		&show.Venue,
		&show.City,
		&show.TicketURL,
		&show.CreatedAt,
		&show.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting upcoming show: %v", err)
		return nil, fmt.Errorf("failed to get upcoming show: %w", err)
	}

	return &show, nil
}

func (r *showRepository) CreateUpcoming(ctx context.Context, show *models.UpcomingShow) error {
	query := `
		INSERT INTO upcoming_shows (id, show_date, show_time, event_name, venue, city, ticket_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		show.ID,
		show.ShowDate,
		show.ShowTime,
		show.EventName,
		show.Venue,
		show.City,
		show.TicketURL,
	).Scan(&show.CreatedAt, &show.UpdatedAt)
	if err != nil {
		log.Printf("Error creating upcoming show: %v", err)
		return fmt.Errorf("failed to create upcoming show: %w", err)
	}

	return nil
}

func (r *showRepository) UpdateUpcoming(ctx context.Context, id string, req *models.UpdateUpcomingShowRequest) error {
	setValues := []string{}
	args := []interface{}{}
	argId := 1

	if req.ShowDate != nil {
		setValues = append(setValues, fmt.Sprintf("show_date = $%d", argId))
		args = append(args, *req.ShowDate)
		argId++
	}
	if req.ShowTime != nil {
		setValues = append(setValues, fmt.Sprintf("show_time = $%d", argId))
		args = append(args, *req.ShowTime)
		argId++
	}
	if req.EventName != nil {
		setValues = append(setValues, fmt.Sprintf("event_name = $%d", argId))
		args = append(args, *req.EventName)
		argId++
	}
	if req.Venue != nil {
		setValues = append(setValues, fmt.Sprintf("venue = $%d", argId))
		args = append(args, *req.Venue)
		argId++
	}
	if req.City != nil {
		setValues = append(setValues, fmt.Sprintf("city = $%d", argId))
		args = append(args, *req.City)
		argId++
	}
	if req.TicketURL != nil {
		setValues = append(setValues, fmt.Sprintf("ticket_url = $%d", argId))
		args = append(args, *req.TicketURL)
		argId++
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = NOW() AT TIME ZONE 'UTC'")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE upcoming_shows SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	return execRowUpdate(ctx, r.db, query, args, "upcoming show")
}

func (r *showRepository) DeleteUpcoming(ctx context.Context, id string) error {
	return execRowDelete(ctx, r.db, `DELETE FROM upcoming_shows WHERE id = $1`, id, "upcoming show")
}

const pastShowColumns = `id, show_date::TEXT, venue, city, event_name, image_urls, created_at, updated_at`

func (r *showRepository) ListPast(ctx context.Context) ([]models.PastShow, error) {
	query := `
		SELECT ` + pastShowColumns + `
		FROM past_shows
		ORDER BY show_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing past shows: %v", err)
		return nil, fmt.Errorf("failed to list past shows: %w", err)
	}
	defer rows.Close()

	var shows []models.PastShow
	for rows.Next() {
		var show models.PastShow
		if err := rows.Scan(
			&show.ID,
			&show.ShowDate,
			&show.Venue,
			&show.City,
			&show.EventName,
			pq.Array(&show.ImageURLs),
			&show.CreatedAt,
			&show.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning past show: %v", err)
			return nil, fmt.Errorf("failed to scan past show: %w", err)
		}
		shows = append(shows, show)
	}

	if err := rows.Err(); err != nil {
		log.Printf("Error iterating past shows: %v", err)
		return nil, fmt.Errorf("error iterating past shows: %w", err)
	}

	return shows, nil
}

func (r *showRepository) GetPastByID(ctx context.Context, id string) (*models.PastShow, error) {
	query := `
		SELECT ` + pastShowColumns + `
		FROM past_shows
		WHERE id = $1
	`

	var show models.PastShow
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&show.ID,
		&show.ShowDate,
		&show.Venue,
		&show.City,
		&show.EventName,
		pq.Array(&show.ImageURLs),
		&show.CreatedAt,
		&show.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting past show: %v", err)
		return nil, fmt.Errorf("failed to get past show: %w", err)
	}

	return &show, nil
}

func (r *showRepository) CreatePast(ctx context.Context, show *models.PastShow) error {
	query := `
		INSERT INTO past_shows (id, show_date, venue, city, event_name, image_urls)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	images := show.ImageURLs
	if images == nil {
		images = []string{}
	}

	err := r.db.QueryRowContext(ctx, query,
		show.ID,
		show.ShowDate,
		show.Venue,
		show.City,
		show.EventName,
		pq.Array(images),
	).Scan(&show.CreatedAt, &show.UpdatedAt)
	if err != nil {
		log.Printf("Error creating past show: %v", err)
		return fmt.Errorf("failed to create past show: %w", err)
	}

	return nil
}

func (r *showRepository) UpdatePast(ctx context.Context, id string, req *models.UpdatePastShowRequest) error {
	setValues := []string{}
	args := []interface{}{}
	argId := 1

	if req.ShowDate != nil {
		setValues = append(setValues, fmt.Sprintf("show_date = $%d", argId))
		args = append(args, *req.ShowDate)
		argId++
	}
	if req.Venue != nil {
		setValues = append(setValues, fmt.Sprintf("venue = $%d", argId))
		args = append(args, *req.Venue)
		argId++
	}
	if req.City != nil {
		setValues = append(setValues, fmt.Sprintf("city = $%d", argId))
		args = append(args, *req.City)
		argId++
	}
	if req.EventName != nil {
		setValues = append(setValues, fmt.Sprintf("event_name = $%d", argId))
		args = append(args, *req.EventName)
		argId++
	}
	if req.ImageURLs != nil {
		setValues = append(setValues, fmt.Sprintf("image_urls = $%d", argId))
		args = append(args, pq.Array(*req.ImageURLs))
		argId++
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = NOW() AT TIME ZONE 'UTC'")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE past_shows SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	return execRowUpdate(ctx, r.db, query, args, "past show")
}

func (r *showRepository) DeletePast(ctx context.Context, id string) error {
	return execRowDelete(ctx, r.db, `DELETE FROM past_shows WHERE id = $1`, id, "past show")
}

func execRowUpdate(ctx context.Context, db *sql.DB, query string, args []interface{}, what string) error {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Printf("Error updating %s: %v", what, err)
		return fmt.Errorf("failed to update %s: %w", what, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func execRowDelete(ctx context.Context, db *sql.DB, query string, id string, what string) error {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting %s: %v", what, err)
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
