package dto

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// CreateAnnouncementInput binds from a multipart form; the optional poster
// file itself is extracted by the handler.
type CreateAnnouncementInput struct {
	Title            string     `form:"title" binding:"required,max=255"`
	Description      string     `form:"description"`
	AnnouncementDate *time.Time `form:"date" time_format:"2006-01-02"`
	ClubID           uuid.UUID  `form:"clubId" binding:"required"`
}

type UpdateAnnouncementInput struct {
	Title            *string    `form:"title" binding:"omitempty,max=255"`
	Description      *string    `form:"description"`
	AnnouncementDate *time.Time `form:"date" time_format:"2006-01-02"`
}

// ReviewAnnouncementInput is the body of approve/reject calls.
type ReviewAnnouncementInput struct {
	Feedback *string `json:"feedback" binding:"omitempty,max=1000"`
}

// PosterFile is an uploaded poster image.
type PosterFile struct {
	Reader   io.Reader
	FileName string
}
