package dto

import "github.com/google/uuid"

type SubmitFeedbackInput struct {
	EventID  uuid.UUID `json:"eventId" binding:"required"`
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	Comments string    `json:"comments" binding:"omitempty,max=1000"`
}

type UpdateFeedbackInput struct {
	Rating   *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comments *string `json:"comments" binding:"omitempty,max=1000"`
}

// FeedbackSummary aggregates an event's feedback rows.
type FeedbackSummary struct {
	TotalFeedback int     `json:"totalFeedback"`
	AverageRating float64 `json:"averageRating"`
}
