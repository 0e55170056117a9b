package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Club struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Contact     string    `gorm:"size:100" json:"contact"`
	ImageURL    *string   `gorm:"type:text" json:"image_url,omitempty"`
	Events      []Event   `gorm:"foreignKey:ClubID" json:"events,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Club) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID, err = uuid.NewV7()
	}
	return
}

// Membership links a student to a club. The composite unique index is what
// makes join a single constrained insert rather than check-then-act.
type Membership struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_club" json:"user_id"`
	ClubID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_membership_user_club" json:"club_id"`
	Club     *Club     `gorm:"constraint:OnDelete:CASCADE" json:"club,omitempty"`
	Status   string    `gorm:"size:20;not null;default:active" json:"status"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID, err = uuid.NewV7()
	}
	return
}
