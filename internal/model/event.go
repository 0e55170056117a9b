package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClubID      uuid.UUID `gorm:"type:uuid;not null" json:"club_id"`
	Club        *Club     `gorm:"constraint:OnDelete:CASCADE" json:"club,omitempty"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	EventDate   time.Time `gorm:"not null" json:"event_date"`
	Venue       string    `gorm:"size:255" json:"venue"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID, err = uuid.NewV7()
	}
	return
}

const RegistrationStatusRegistered = "registered"

type EventRegistration struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EventID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registration_user_event" json:"event_id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registration_user_event" json:"user_id"`
	Event        *Event    `gorm:"constraint:OnDelete:CASCADE" json:"event,omitempty"`
	Status       string    `gorm:"size:20;not null;default:registered" json:"status"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`
}

func (r *EventRegistration) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID, err = uuid.NewV7()
	}
	return
}
