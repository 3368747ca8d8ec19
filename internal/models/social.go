package models

import (
	"time"
)

type SocialLink struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	IsPrimary bool      `json:"is_primary"`
	IsActive  bool      `json:"is_active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateSocialLinkRequest struct {
	Platform  string `json:"platform" validate:"required,oneof=TikTok YouTube Instagram Spotify SoundCloud Twitter Facebook Other"`
	URL       string `json:"url" validate:"required,url"`
	SortOrder *int   `json:"sort_order,omitempty" validate:"omitempty,min=0"`
}

type UpdateSocialLinkRequest struct {
	Platform  *string `json:"platform,omitempty" validate:"omitempty,oneof=TikTok YouTube Instagram Spotify SoundCloud Twitter Facebook Other"`
	URL       *string `json:"url,omitempty" validate:"omitempty,url"`
	IsActive  *bool   `json:"is_active,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty" validate:"omitempty,min=0"`
}

type BookingInfo struct {
	ID              string    `json:"id"`
	BookingEmail    *string   `json:"booking_email"`
	BookingPhone    *string   `json:"booking_phone"`
	ManagerName     *string   `json:"manager_name"`
	AdditionalNotes *string   `json:"additional_notes"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UpdateBookingInfoRequest struct {
	BookingEmail    *string `json:"booking_email" validate:"omitempty,email"`
	BookingPhone    *string `json:"booking_phone"`
	ManagerName     *string `json:"manager_name"`
	AdditionalNotes *string `json:"additional_notes"`
}
