package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Feedback struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_event" json:"event_id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_feedback_user_event" json:"user_id"`
	Event       *Event    `gorm:"constraint:OnDelete:CASCADE" json:"event,omitempty"`
	User        *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Rating      int       `gorm:"not null" json:"rating"`
	Comments    string    `gorm:"type:text" json:"comments"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID, err = uuid.NewV7()
	}
	return
}
