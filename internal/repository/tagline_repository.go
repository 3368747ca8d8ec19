package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"phlegm-site/internal/interfaces"
	"phlegm-site/internal/models"
)

type taglineRepository struct {
	db *sql.DB
}

func NewTaglineRepository(db *sql.DB) interfaces.TaglineRepository {
	return &taglineRepository{db: db}
}

const taglineColumns = `id, text, sort_order, is_active, created_at, updated_at`

func (r *taglineRepository) List(ctx context.Context, activeOnly bool) ([]models.Tagline, error) {
	query := `
		SELECT ` + taglineColumns + `
		FROM taglines
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing taglines: %v", err)
		return nil, fmt.Errorf("failed to list taglines: %w", err)
	}
	defer rows.Close()

	var taglines []models.Tagline
	for rows.Next() {
		var tagline models.Tagline
		if err := rows.Scan(
			&tagline.ID,
			&tagline.Text,
			&tagline.SortOrder,
			&tagline.IsActive,
			&tagline.CreatedAt,
			&tagline.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning tagline: %v", err)
			return nil, fmt.Errorf("failed to scan tagline: %w", err)
		}
		taglines = append(taglines, tagline)
	}

	if err := rows.Err(); err != nil {
		log.Printf("Error iterating taglines: %v", err)
		return nil, fmt.Errorf("error iterating taglines: %w", err)
	}

	return taglines, nil
}

func (r *taglineRepository) GetByID(ctx context.Context, id string) (*models.Tagline, error) {
	query := `
		SELECT ` + taglineColumns + `
		FROM taglines
		WHERE id = $1
	`

	var tagline models.Tagline
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&tagline.ID,
		&tagline.Text,
		&tagline.SortOrder,
		&tagline.IsActive,
		&tagline.CreatedAt,
		&tagline.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting tagline: %v", err)
		return nil, fmt.Errorf("failed to get tagline: %w", err)
	}

	return &tagline, nil
}

func (r *taglineRepository) Create(ctx context.Context, tagline *models.Tagline) error {
	query := `
		INSERT INTO taglines (id, text, sort_order, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		tagline.ID,
		tagline.Text,
		tagline.SortOrder,
		tagline.IsActive,
	).Scan(&tagline.CreatedAt, &tagline.UpdatedAt)
	if err != nil {
		log.Printf("Error creating tagline: %v", err)
		return fmt.Errorf("failed to create tagline: %w", err)
	}

	return nil
}

func (r *taglineRepository) Update(ctx context.Context, id string, req *models.UpdateTaglineRequest) error {
	setValues := []string{}
	args := []interface{}{}
	argId := 1

	if req.Text != nil {
		setValues = append(setValues, fmt.Sprintf("text = $%d", argId))
		args = append(args, *req.Text)
		argId++
	}
	if req.SortOrder != nil {
		setValues = append(setValues, fmt.Sprintf("sort_order = $%d", argId))
		args = append(args, *req.SortOrder)
		argId++
	}
	if req.IsActive != nil {
		setValues = append(setValues, fmt.Sprintf("is_active = $%d", argId))
		args = append(args, *req.IsActive)
		argId++
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = NOW() AT TIME ZONE 'UTC'")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE taglines SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	return execRowUpdate(ctx, r.db, query, args, "tagline")
}

func (r *taglineRepository) Delete(ctx context.Context, id string) error {
	return execRowDelete(ctx, r.db, `DELETE FROM taglines WHERE id = $1`, id, "tagline")
}
