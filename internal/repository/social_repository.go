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

type socialLinkRepository struct {
	db *sql.DB
}

func NewSocialLinkRepository(db *sql.DB) interfaces.SocialLinkRepository {
	return &socialLinkRepository{db: db}
}

const socialLinkColumns = `id, platform, url, is_primary, is_active, sort_order, created_at, updated_at`

func (r *socialLinkRepository) List(ctx context.Context, activeOnly bool) ([]models.SocialLink, error) {
	query := `
		SELECT ` + socialLinkColumns + `
		FROM social_links
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("Error listing social links: %v", err)
		return nil, fmt.Errorf("failed to list social links: %w", err)
	}
	defer rows.Close()

	var links []models.SocialLink
	for rows.Next() {
		var link models.SocialLink
		if err := rows.Scan(
			&link.ID,
			&link.Platform,
			&link.URL,
			&link.IsPrimary,
			&link.IsActive,
			&link.SortOrder,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			log.Printf("Error scanning social link: %v", err)
			return nil, fmt.Errorf("failed to scan social link: %w", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		log.Printf("Error iterating social links: %v", err)
		return nil, fmt.Errorf("error iterating social links: %w", err)
	}

	return links, nil
}

func (r *socialLinkRepository) GetByID(ctx context.Context, id string) (*models.SocialLink, error) {
	query := `
		SELECT ` + socialLinkColumns + `
		FROM social_links
		WHERE id = $1
	`

	var link models.SocialLink
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&link.ID,
		&link.Platform,
		&link.URL,
		&link.IsPrimary,
		&link.IsActive,
		&link.SortOrder,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting social link: %v", err)
		return nil, fmt.Errorf("failed to get social link: %w", err)
	}

	return &link, nil
}

func (r *socialLinkRepository) Create(ctx context.Context, link *models.SocialLink) error {
	query := `
		INSERT INTO social_links (id, platform, url, is_primary, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		link.ID,
		link.Platform,
		link.URL,
		link.IsPrimary,
		link.IsActive,
		link.SortOrder,
	).Scan(&link.CreatedAt, &link.UpdatedAt)
	if err != nil {
		log.Printf("Error creating social link: %v", err)
		return fmt.Errorf("failed to create social link: %w", err)
	}

	return nil
}

func (r *socialLinkRepository) Update(ctx context.Context, id string, req *models.UpdateSocialLinkRequest) error {
	setValues := []string{}
	args := []interface{}{}
	argId := 1

	if req.Platform != nil {
		setValues = append(setValues, fmt.Sprintf("platform = $%d", argId))
		args = append(args, *req.Platform)
		argId++
	}
	if req.URL != nil {
		setValues = append(setValues, fmt.Sprintf("url = $%d", argId))
		args = append(args, *req.URL)
		argId++
	}
	if req.IsActive != nil {
		setValues = append(setValues, fmt.Sprintf("is_active = $%d", argId))
		args = append(args, *req.IsActive)
		argId++
	}
	if req.SortOrder != nil {
		setValues = append(setValues, fmt.Sprintf("sort_order = $%d", argId))
		args = append(args, *req.SortOrder)
		argId++
	}

	if len(setValues) == 0 {
		return fmt.Errorf("no fields to update")
	}

	setValues = append(setValues, "updated_at = NOW() AT TIME ZONE 'UTC'")
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE social_links SET %s WHERE id = $%d",
		strings.Join(setValues, ", "),
		argId,
	)

	return execRowUpdate(ctx, r.db, query, args, "social link")
}

func (r *socialLinkRepository) Delete(ctx context.Context, id string) error {
	return execRowDelete(ctx, r.db, `DELETE FROM social_links WHERE id = $1`, id, "social link")
}

// ClearPrimary is phase one of "set as primary". It intentionally runs as its
// own statement: if MarkPrimary fails afterwards the list is left with no
// primary link, which is the documented outcome.
func (r *socialLinkRepository) ClearPrimary(ctx context.Context) error {
	query := `
		UPDATE social_links
		SET is_primary = FALSE, updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE is_primary = TRUE
	`

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		log.Printf("Error clearing primary social link: %v", err)
		return fmt.Errorf("failed to clear primary social link: %w", err)
	}

	return nil
}

func (r *socialLinkRepository) MarkPrimary(ctx context.Context, id string) error {
	query := `
		UPDATE social_links
		SET is_primary = TRUE, updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Printf("Error marking primary social link: %v", err)
		return fmt.Errorf("failed to mark primary social link: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Error getting rows affected: %v", err)
		return fmt.Errorf("failed to mark primary social link: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
