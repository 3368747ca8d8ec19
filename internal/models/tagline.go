package models

import (
	"time"
)

// Tagline rows feed the rotating hero display; only active rows participate.
type Tagline struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	SortOrder int       `json:"sort_order"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateTaglineRequest struct {
	Text      string `json:"text" validate:"required"`
	SortOrder *int   `json:"sort_order,omitempty" validate:"omitempty,min=0"`
}

type UpdateTaglineRequest struct {
	Text      *string `json:"text,omitempty" validate:"omitempty,min=1"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
	IsActive  *bool   `json:"is_active,omitempty"`
}
