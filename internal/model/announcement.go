package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AnnouncementStatusPending  = "pending"
	AnnouncementStatusApproved = "approved"
	AnnouncementStatusRejected = "rejected"
)

// Announcement carries the approval workflow: created pending by a clubhead,
// moved to approved or rejected by an admin. ApprovedBy is set exactly when
// the status leaves pending.
type Announcement struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID           uuid.UUID  `gorm:"type:uuid;not null" json:"club_id"`
	Club             *Club      `gorm:"constraint:OnDelete:CASCADE" json:"club,omitempty"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description"`
	AnnouncementDate *time.Time `json:"announcement_date,omitempty"`
	PosterURL        *string    `gorm:"type:text" json:"poster_url,omitempty"`
	Status           string     `gorm:"size:20;not null;default:pending" json:"status"`
	ApprovedBy       *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	Feedback         *string    `gorm:"type:text" json:"feedback,omitempty"`
	CreatedBy        uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	Creator          *User      `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (a *Announcement) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID, err = uuid.NewV7()
	}
	return
}
