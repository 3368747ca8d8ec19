package models

import (
	"time"
)

// Show dates travel as YYYY-MM-DD strings; show_time is free-form text
// ("8:00 PM", "Doors 7pm") so it stays a plain string.

type UpcomingShow struct {
	ID        string    `json:"id"`
	ShowDate  string    `json:"show_date"`
	ShowTime  *string   `json:"show_time"`
	EventName *string   `json:"event_name"`
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	TicketURL *string   `json:"ticket_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUpcomingShowRequest struct {
	ShowDate  string  `json:"show_date" validate:"required,datetime=2006-01-02"`
	ShowTime  *string `json:"show_time"`
	EventName *string `json:"event_name"`
	Venue     string  `json:"venue" validate:"required"`
	City      string  `json:"city" validate:"required"`
	TicketURL *string `json:"ticket_url" validate:"omitempty,url"`
}

type UpdateUpcomingShowRequest struct {
	ShowDate  *string `json:"show_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ShowTime  *string `json:"show_time,omitempty"`
	EventName *string `json:"event_name,omitempty"`
	Venue     *string `json:"venue,omitempty" validate:"omitempty,min=1"`
	City      *string `json:"city,omitempty" validate:"omitempty,min=1"`
	TicketURL *string `json:"ticket_url,omitempty" validate:"omitempty,url"`
}

type PastShow struct {
	ID        string    `json:"id"`
	ShowDate  string    `json:"show_date"`
	Venue     string    `json:"venue"`
	City      string    `json:"city"`
	EventName *string   `json:"event_name"`
	ImageURLs []string  `json:"image_urls"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePastShowRequest struct {
	ShowDate  string   `json:"show_date" validate:"required,datetime=2006-01-02"`
	Venue     string   `json:"venue" validate:"required"`
	City      string   `json:"city" validate:"required"`
	EventName *string  `json:"event_name"`
	ImageURLs []string `json:"image_urls"`
}

type UpdatePastShowRequest struct {
	ShowDate  *string   `json:"show_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Venue     *string   `json:"venue,omitempty" validate:"omitempty,min=1"`
	City      *string   `json:"city,omitempty" validate:"omitempty,min=1"`
	EventName *string   `json:"event_name,omitempty"`
	ImageURLs *[]string `json:"image_urls,omitempty"`
}
