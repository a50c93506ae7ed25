package dto

import (
	"time"

	"github.com/google/uuid"
)

// CastVoteRequest represents a vote submission. Submitting again for the
// same user and accommodation overwrites the rating.
type CastVoteRequest struct {
	UserID          uuid.UUID `json:"user_id" binding:"required"`
	AccommodationID uuid.UUID `json:"accommodation_id" binding:"required"`
	Rating          int       `json:"rating" example:"8"`
}

// UpdateVoteRequest changes the rating of an existing vote
type UpdateVoteRequest struct {
	Rating int `json:"rating" example:"9"`
}

// VoteResponse represents a vote with its user and accommodation
type VoteResponse struct {
	ID              uuid.UUID            `json:"id"`
	UserID          uuid.UUID            `json:"user_id"`
	AccommodationID uuid.UUID            `json:"accommodation_id"`
	User            UserSummary          `json:"user"`
	Accommodation   AccommodationSummary `json:"accommodation"`
	Rating          int                  `json:"rating"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// CastVoteResult is the outcome of a vote submission
type CastVoteResult struct {
	Vote    *VoteResponse
	Created bool
}

// VoteStatsResponse represents global vote statistics
type VoteStatsResponse struct {
	TotalVotes         int64            `json:"total_votes"`
	AverageRating      float64          `json:"average_rating"`
	RatingDistribution map[string]int64 `json:"rating_distribution"`
	ParticipationRate  float64          `json:"participation_rate"`
	VotedUsers         int64            `json:"voted_users"`
	TotalUsers         int64            `json:"total_users"`
}

// VoteListQuery holds optional vote list filters
type VoteListQuery struct {
	UserID          *uuid.UUID
	AccommodationID *uuid.UUID
	MinRating       *int
	MaxRating       *int
}
