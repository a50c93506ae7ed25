package domain

import "github.com/google/uuid"

// MaxCommentLength is the maximum number of characters in a comment
const MaxCommentLength = 500

// Comment is free text left by a user on an accommodation
type Comment struct {
	BaseModel
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_comments_user_id" json:"user_id"`
	AccommodationID uuid.UUID      `gorm:"type:uuid;not null;index:idx_comments_accommodation_id" json:"accommodation_id"`
	Text            string         `gorm:"type:text;not null" json:"text"`
	User            *User          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Accommodation   *Accommodation `gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE" json:"accommodation,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
