package domain

import "github.com/google/uuid"

// Rating bounds
const (
	MinRating = 1
	MaxRating = 10
)

// IsValidRating reports whether r is within [MinRating, MaxRating]
func IsValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Vote is a single rating of an accommodation by a user.
// At most one vote exists per (user, accommodation) pair.
type Vote struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_accommodation,priority:1" json:"user_id"`
	AccommodationID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_accommodation,priority:2;index:idx_votes_accommodation_id" json:"accommodation_id"`
	Rating          int            `gorm:"not null" json:"rating"`
	User            *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Accommodation   *Accommodation `gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE" json:"accommodation,omitempty"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}
