package models

import (
	"time"
)

// Singleton content rows. Each table holds exactly one row, seeded by
// migration and only ever read or updated through the admin surface.

type HeroContent struct {
	ID        string    `json:"id"`
	VideoURL  *string   `json:"video_url"`
	Tagline   string    `json:"tagline"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateHeroContentRequest struct {
	VideoURL *string `json:"video_url"`
	Tagline  string  `json:"tagline" validate:"required"`
}

type BannerContent struct {
	ID        string    `json:"id"`
	Enabled   bool      `json:"enabled"`
	Text      string    `json:"text"`
	Subtext   *string   `json:"subtext"`
	MediaURL  *string   `json:"media_url"`
	MediaType *string   `json:"media_type"`
	LinkURL   *string   `json:"link_url"`
	LinkText  *string   `json:"link_text"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateBannerContentRequest struct {
	Enabled   bool    `json:"enabled"`
	Text      string  `json:"text" validate:"required"`
	Subtext   *string `json:"subtext"`
	MediaURL  *string `json:"media_url"`
	MediaType *string `json:"media_type" validate:"omitempty,oneof=image video"`
	LinkURL   *string `json:"link_url" validate:"omitempty,url"`
	LinkText  *string `json:"link_text"`
}

type BioContent struct {
	ID              string    `json:"id"`
	HeroVideoURL    *string   `json:"hero_video_url"`
	HeroVideoWidth  int       `json:"hero_video_width"`
	HeroVideoHeight int       `json:"hero_video_height"`
	Title           string    `json:"title"`
	Tagline         string    `json:"tagline"`
	BioText         string    `json:"bio_text"`
	SpeaksInItems   []string  `json:"speaks_in_items"`
	ClosingText     string    `json:"closing_text"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateBioContentRequest struct {
	HeroVideoURL    *string  `json:"hero_video_url" validate:"omitempty,url"`
	HeroVideoWidth  int      `json:"hero_video_width" validate:"omitempty,min=1"`
	HeroVideoHeight int      `json:"hero_video_height" validate:"omitempty,min=1"`
	Title           string   `json:"title"`
	Tagline         string   `json:"tagline"`
	BioText         string   `json:"bio_text"`
	SpeaksInItems   []string `json:"speaks_in_items"`
	ClosingText     string   `json:"closing_text"`
}

type AboutContent struct {
	ID              string    `json:"id"`
	HeroVideoURL    *string   `json:"hero_video_url"`
	HeroVideoWidth  int       `json:"hero_video_width"`
	HeroVideoHeight int       `json:"hero_video_height"`
	UseLegalContent bool      `json:"use_legal_content"`
	Title           string    `json:"title"`
	AboutText       string    `json:"about_text"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateAboutContentRequest struct {
	HeroVideoURL    *string `json:"hero_video_url" validate:"omitempty,url"`
	HeroVideoWidth  int     `json:"hero_video_width" validate:"omitempty,min=1"`
	HeroVideoHeight int     `json:"hero_video_height" validate:"omitempty,min=1"`
	UseLegalContent bool    `json:"use_legal_content"`
	Title           string  `json:"title"`
	AboutText       string  `json:"about_text"`
}

type LegalContent struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	TrademarkText     string    `json:"trademark_text"`
	TrademarkLinkText string    `json:"trademark_link_text"`
	TrademarkURL      string    `json:"trademark_url"`
	CopyrightText     string    `json:"copyright_text"`
	RightsText        string    `json:"rights_text"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type UpdateLegalContentRequest struct {
	Title             string `json:"title"`
	TrademarkText     string `json:"trademark_text"`
	TrademarkLinkText string `json:"trademark_link_text"`
	TrademarkURL      string `json:"trademark_url" validate:"omitempty,url"`
	CopyrightText     string `json:"copyright_text"`
	RightsText        string `json:"rights_text"`
}
