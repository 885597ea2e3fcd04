package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User roles used by the catalog demo endpoints.
const (
	RoleMember    = "member"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"size:150;uniqueIndex"`
	Email          string    `json:"email" gorm:"uniqueIndex"`
	Password       string    `json:"-"` // bcrypt hash, never serialized
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profile_picture"`
	Role           string    `json:"role" gorm:"size:20;default:member"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UserCompact is the embedded author/actor representation used in
// enriched feed and notification payloads.
type UserCompact struct {
	ID             uint   `json:"id"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:             u.ID,
		Username:       u.Username,
		ProfilePicture: u.ProfilePicture,
	}
}

// RegisterRequest defines the request body for user registration
type RegisterRequest struct {
	Username       string `json:"username" validate:"required,min=2,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Bio            string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfilePicture string `json:"profile_picture,omitempty" validate:"omitempty,url"`
}

// LoginRequest defines the request body for user login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the request body for profile updates
type UpdateProfileRequest struct {
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Bio            string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfilePicture string `json:"profile_picture,omitempty" validate:"omitempty,url"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
