package dto

import "github.com/google/uuid"

type CreateClubInput struct {
	Title       string     `json:"title" binding:"required,max=255"`
	Description string     `json:"description"`
	Contact     string     `json:"contact" binding:"omitempty,email"`
	ImageURL    *string    `json:"image_url"`
	HeadID      *uuid.UUID `json:"head_id"`
}

type UpdateClubInput struct {
	Title       *string    `json:"title" binding:"omitempty,max=255"`
	Description *string    `json:"description"`
	Contact     *string    `json:"contact" binding:"omitempty,email"`
	ImageURL    *string    `json:"image_url"`
	HeadID      *uuid.UUID `json:"head_id"`
}
