package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
	"phlegm-site/internal/interfaces"
	"phlegm-site/internal/models"
)

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) interfaces.ContentRepository {
	return &contentRepository{db: db}
}

// Singleton reads fetch the one seeded row. sql.ErrNoRows is passed through
// so callers can decide between fallback (public) and 404 (admin).

func (r *contentRepository) GetHero(ctx context.Context) (*models.HeroContent, error) {
	query := `
		SELECT id, video_url, tagline, updated_at
		FROM hero_content
		LIMIT 1
	`

	var hero models.HeroContent
	err := r.db.QueryRowContext(ctx, query).Scan(
		&hero.ID,
		&hero.VideoURL,
		&hero.Tagline,
		&hero.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting hero content: %v", err)
		return nil, fmt.Errorf("failed to get hero content: %w", err)
	}

	return &hero, nil
}

func (r *contentRepository) UpdateHero(ctx context.Context, id string, req *models.UpdateHeroContentRequest) error {
	query := `
		UPDATE hero_content
		SET video_url = $1, tagline = $2, updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, req.VideoURL, req.Tagline, id)
	if err != nil {
		log.Printf("Error updating hero content: %v", err)
		return fmt.Errorf("failed to update hero content: %w", err)
	}

	return checkSingletonUpdated(result, "hero content")
}

func (r *contentRepository) GetBanner(ctx context.Context) (*models.BannerContent, error) {
	query := `
		SELECT id, enabled, text, subtext, media_url, media_type, link_url, link_text, updated_at
		FROM banner_content
		LIMIT 1
	`

	var banner models.BannerContent
	err := r.db.QueryRowContext(ctx, query).Scan(
		&banner.ID,
		&banner.Enabled,
		&banner.Text,
		&banner.Subtext,
		&banner.MediaURL,
		&banner.MediaType,
		&banner.LinkURL,
		&banner.LinkText,
		&banner.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting banner content: %v", err)
		return nil, fmt.Errorf("failed to get banner content: %w", err)
	}

	return &banner, nil
}

func (r *contentRepository) UpdateBanner(ctx context.Context, id string, req *models.UpdateBannerContentRequest) error {
	query := `
		UPDATE banner_content
		SET enabled = $1, text = $2, subtext = $3, media_url = $4, media_type = $5,
		    link_url = $6, link_text = $7, updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $8
	`

	result, err := r.db.ExecContext(ctx, query,
		req.Enabled,
		req.Text,
		req.Subtext,
		req.MediaURL,
		req.MediaType,
		req.LinkURL,
		req.LinkText,
		id,
	)
	if err != nil {
		log.Printf("Error updating banner content: %v", err)
		return fmt.Errorf("failed to update banner content: %w", err)
	}

	return checkSingletonUpdated(result, "banner content")
}

func (r *contentRepository) GetBio(ctx context.Context) (*models.BioContent, error) {
	query := `
		SELECT id, hero_video_url, hero_video_width, hero_video_height,
		       title, tagline, bio_text, speaks_in_items, closing_text, updated_at
		FROM bio_content
		LIMIT 1
	`

	var bio models.BioContent
	err := r.db.QueryRowContext(ctx, query).Scan(
		&bio.ID,
		&bio.HeroVideoURL,
		&bio.HeroVideoWidth,
		&bio.HeroVideoHeight,
		&bio.Title,
		&bio.Tagline,
		&bio.BioText,
		pq.Array(&bio.SpeaksInItems),
		&bio.ClosingText,
		&bio.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting bio content: %v", err)
		return nil, fmt.Errorf("failed to get bio content: %w", err)
	}

	return &bio, nil
}

func (r *contentRepository) UpdateBio(ctx context.Context, id string, req *models.UpdateBioContentRequest) error {
	query := `
		UPDATE bio_content
		SET hero_video_url = $1, hero_video_width = $2, hero_video_height = $3,
		    title = $4, tagline = $5, bio_text = $6, speaks_in_items = $7,
		    closing_text = $8, updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $9
	`

	items := req.SpeaksInItems
	if items == nil {
		items = []string{}
	}

	result, err := r.db.ExecContext(ctx, query,
		req.HeroVideoURL,
		req.HeroVideoWidth,
		req.HeroVideoHeight,
		req.Title,
		req.Tagline,
		req.BioText,
		pq.Array(items),
		req.ClosingText,
		id,
	)
	if err != nil {
		log.Printf("Error updating bio content: %v", err)
		return fmt.Errorf("failed to update bio content: %w", err)
	}

	return checkSingletonUpdated(result, "bio content")
}

func (r *contentRepository) GetAbout(ctx context.Context) (*models.AboutContent, error) {
	query := `
		SELECT id, hero_video_url, hero_video_width, hero_video_height,
		       use_legal_content, title, about_text, updated_at
		FROM about_content
		LIMIT 1
	`

	var about models.AboutContent
	err := r.db.QueryRowContext(ctx, query).Scan(
		&about.ID,
		&about.HeroVideoURL,
		&about.HeroVideoWidth,
		&about.HeroVideoHeight,
		&about.UseLegalContent,
		&about.Title,
		&about.AboutText,
		&about.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting about content: %v", err)
		return nil, fmt.Errorf("failed to get about content: %w", err)
	}

	return &about, nil
}

func (r *contentRepository) UpdateAbout(ctx context.Context, id string, req *models.UpdateAboutContentRequest) error {
	query := `
		UPDATE about_content
		SET hero_video_url = $1, hero_video_width = $2, hero_video_height = $3,
		    use_legal_content = $4, title = $5, about_text = $6,
		    updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		req.HeroVideoURL,
		req.HeroVideoWidth,
		req.HeroVideoHeight,
		req.UseLegalContent,
		req.Title,
		req.AboutText,
		id,
	)
	if err != nil {
		log.Printf("Error updating about content: %v", err)
		return fmt.Errorf("failed to update about content: %w", err)
	}

	return checkSingletonUpdated(result, "about content")
}

func (r *contentRepository) GetLegal(ctx context.Context) (*models.LegalContent, error) {
	query := `
		SELECT id, title, trademark_text, trademark_link_text, trademark_url,
		       copyright_text, rights_text, updated_at
		FROM legal_content
		LIMIT 1
	`

	var legal models.LegalContent
	err := r.db.QueryRowContext(ctx, query).Scan(
		&legal.ID,
		&legal.Title,
		&legal.TrademarkText,
		&legal.TrademarkLinkText,
		&legal.TrademarkURL,
		&legal.CopyrightText,
		&legal.RightsText,
		&legal.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting legal content: %v", err)
		return nil, fmt.Errorf("failed to get legal content: %w", err)
	}

	return &legal, nil
}

func (r *contentRepository) UpdateLegal(ctx context.Context, id string, req *models.UpdateLegalContentRequest) error {
	query := `
		UPDATE legal_content
		SET title = $1, trademark_text = $2, trademark_link_text = $3,
		    trademark_url = $4, copyright_text = $5, rights_text = $6,
		    updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		req.Title,
		req.TrademarkText,
		req.TrademarkLinkText,
		req.TrademarkURL,
		req.CopyrightText,
		req.RightsText,
		id,
	)
	if err != nil {
		log.Printf("Error updating legal content: %v", err)
		return fmt.Errorf("failed to update legal content: %w", err)
	}

	return checkSingletonUpdated(result, "legal content")
}

func (r *contentRepository) GetBooking(ctx context.Context) (*models.BookingInfo, error) {
	query := `
		SELECT id, booking_email, booking_phone, manager_name, additional_notes, updated_at
		FROM booking_info
		LIMIT 1
	`

	var booking models.BookingInfo
	err := r.db.QueryRowContext(ctx, query).Scan(
		&booking.ID,
		&booking.BookingEmail,
		&booking.BookingPhone,
		&booking.ManagerName,
		&booking.AdditionalNotes,
		&booking.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, sql.ErrNoRows
		}
		log.Printf("Error getting booking info: %v", err)
		return nil, fmt.Errorf("failed to get booking info: %w", err)
	}

	return &booking, nil
}

func (r *contentRepository) UpdateBooking(ctx context.Context, id string, req *models.UpdateBookingInfoRequest) error {
	query := `
		UPDATE booking_info
		SET booking_email = $1, booking_phone = $2, manager_name = $3,
		    additional_notes = $4, updated_at = NOW() AT TIME ZONE 'UTC'
		WHERE id = $5
	`

	result, err := r.db.ExecContext(ctx, query,
		req.BookingEmail,
		req.BookingPhone,
		req.ManagerName,
		req.AdditionalNotes,
		id,
	)
	if err != nil {
		log.Printf("Error updating booking info: %v", err)
		return fmt.Errorf("failed to update booking info: %w", err)
	}

	return checkSingletonUpdated(result, "booking info")
}

func checkSingletonUpdated(result sql.Result, what string) error {
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
