package dto

import "unilink.id/campusclubs/internal/model"

type RegisterInput struct {
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=8"`
	FullName       string  `json:"fullName" binding:"required"`
	Role           string  `json:"role" binding:"required,oneof=student clubhead"`
	RegisterNumber *string `json:"registerNumber"`
	Department     *string `json:"department"`
	ContactNumber  *string `json:"contactNumber"`
}

// LoginInput accepts either an email or a register number as identifier.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User      *model.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
}
