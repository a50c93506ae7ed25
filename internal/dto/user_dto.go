package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest represents the request to register a user
type CreateUserRequest struct {
	Name string `json:"name" binding:"required" example:"홍길동"`
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Name *string `json:"name,omitempty" example:"김철수"`
}

// LoginRequest represents a name-only login
type LoginRequest struct {
	Name string `json:"name" binding:"required" example:"홍길동"`
}

// UserResponse represents a user
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserSummary is the user embedded in votes and comments
type UserSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"is_admin"`
}

// LoginResponse carries the user and an access token
type LoginResponse struct {
	User        UserResponse `json:"user"`
	IsAdmin     bool         `json:"is_admin"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresAt   time.Time    `json:"expires_at"`
	Message     string       `json:"message"`
}

// UserStatsResponse represents user counts
type UserStatsResponse struct {
	TotalUsers   int64         `json:"total_users"`
	AdminUsers   int64         `json:"admin_users"`
	RegularUsers int64         `json:"regular_users"`
	AdminList    []UserSummary `json:"admin_list"`
}

// CheckAdminResponse reports whether a user is an admin
type CheckAdminResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name"`
	IsAdmin bool      `json:"is_admin"`
}

// VotedAccommodation is one vote in a user's activity summary
type VotedAccommodation struct {
	AccommodationID   uuid.UUID `json:"accommodation_id"`
	AccommodationName string    `json:"accommodation_name"`
	Rating            int       `json:"rating"`
	VotedAt           time.Time `json:"voted_at"`
}

// UserActivityResponse summarizes a user's votes and comments
type UserActivityResponse struct {
	User                UserSummary          `json:"user"`
	VoteCount           int64                `json:"vote_count"`
	CommentCount        int64                `json:"comment_count"`
	AverageRating       float64              `json:"average_rating"`
	VotedAccommodations []VotedAccommodation `json:"voted_accommodations"`
}
