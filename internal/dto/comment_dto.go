package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a comment
type CreateCommentRequest struct {
	UserID          uuid.UUID `json:"user_id" binding:"required"`
	AccommodationID uuid.UUID `json:"accommodation_id" binding:"required"`
	Text            string    `json:"text" example:"뷰가 정말 좋아요"`
}

// UpdateCommentRequest edits a comment; UserID must be the comment owner
type UpdateCommentRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Text   string    `json:"text" example:"수정한 댓글"`
}

// CommentResponse represents a comment with its user and accommodation
type CommentResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	AccommodationID uuid.UUID            `json:"accommodation_id"`
	User            UserSummary          `json:"user"`
	Accommodation   AccommodationSummary `json:"accommodation"`
	Text            string               `json:"text"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// UserCommentCount is one entry of the most active users ranking
type UserCommentCount struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	CommentCount int64     `json:"comment_count"`
}

// AccommodationCommentCount is one entry of the most commented ranking
type AccommodationCommentCount struct {
	AccommodationID uuid.UUID `json:"accommodation_id"`
	Name            string    `json:"name"`
	CommentCount    int64     `json:"comment_count"`
}

// CommentStatsResponse represents global comment statistics
type CommentStatsResponse struct {
	TotalComments                   int64                       `json:"total_comments"`
	AverageCommentsPerAccommodation float64                     `json:"average_comments_per_accommodation"`
	MostActiveUsers                 []UserCommentCount          `json:"most_active_users"`
	MostCommentedAccommodations     []AccommodationCommentCount `json:"most_commented_accommodations"`
}

// CommentListQuery holds optional comment list filters
type CommentListQuery struct {
	UserID          *uuid.UUID
	AccommodationID *uuid.UUID
	Search          string
}
