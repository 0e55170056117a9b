package dto

import "time"

type CreateEventInput struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date" binding:"required"`
	Venue       string    `json:"venue" binding:"omitempty,max=255"`
}

type UpdateEventInput struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	EventDate   *time.Time `json:"event_date"`
	Venue       *string    `json:"venue" binding:"omitempty,max=255"`
}
