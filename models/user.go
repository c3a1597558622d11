package models

import "github.com/golang-jwt/jwt/v5"

const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
)

// SessionUser is the authenticated identity held for the lifetime of a session.
type SessionUser struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UserType  string `json:"userType"`
}

// RegisteredUser is a signup record kept in the in-memory registry.
type RegisteredUser struct {
	SessionUser
	PasswordHash string `json:"-"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	UserType        string `json:"userType" validate:"required,oneof=patient doctor"`
}

type SessionClaims struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
	jwt.RegisteredClaims
}
