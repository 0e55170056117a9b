package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleStudent  = "student"
	RoleClubHead = "clubhead"
	RoleAdmin    = "admin"
)

type User struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash   string     `gorm:"size:255;not null" json:"-"`
	Role           string     `gorm:"size:20;not null" json:"role"`
	FullName       string     `gorm:"size:100;not null" json:"full_name"`
	RegisterNumber *string    `gorm:"size:50;uniqueIndex" json:"register_number,omitempty"`
	Department     *string    `gorm:"size:100" json:"department,omitempty"`
	ContactNumber  *string    `gorm:"size:20" json:"contact_number,omitempty"`
	ClubID         *uuid.UUID `gorm:"type:uuid" json:"club_id,omitempty"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID, err = uuid.NewV7()
	}
	return
}
