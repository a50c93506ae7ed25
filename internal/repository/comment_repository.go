package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travel-vote-api/internal/domain"
)

// CommentFilter holds optional comment list filters
type CommentFilter struct {
	UserID          *uuid.UUID
	AccommodationID *uuid.UUID
	Search          string
}

// UserCommentCountRow is one row of the most active users ranking
type UserCommentCountRow struct {
	UserID       uuid.UUID
	Name         string
	CommentCount int64
}

// AccommodationCommentCountRow is one row of the most commented ranking
type AccommodationCommentCountRow struct {
	AccommodationID uuid.UUID
	Name            string
	CommentCount    int64
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindAll(ctx context.Context, filter CommentFilter) ([]*domain.Comment, error)
	Update(ctx context.Context, comment *domain.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	TopUsers(ctx context.Context, limit int) ([]UserCommentCountRow, error)
	TopAccommodations(ctx context.Context, limit int) ([]AccommodationCommentCountRow, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

func withCommentRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Accommodation")
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// FindByID finds a comment with its user and accommodation
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := withCommentRelations(r.db.WithContext(ctx)).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// likeEscaper makes LIKE wildcards in user input match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindAll lists comments matching filter, newest first. Search is a
// case-insensitive substring match on the text; '%' and '_' match literally.
func (r *commentRepositoryImpl) FindAll(ctx context.Context, filter CommentFilter) ([]*domain.Comment, error) {
	query := withCommentRelations(r.db.WithContext(ctx))
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.AccommodationID != nil {
		query = query.Where("accommodation_id = ?", *filter.AccommodationID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where(`LOWER(text) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(search))+"%")
	}

	var comments []*domain.Comment
	if err := query.Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Update saves the comment text
func (r *commentRepositoryImpl) Update(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Model(comment).Omit(clause.Associations).Update("text", comment.Text).Error
}

// Delete deletes a comment
func (r *commentRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of comments
func (r *commentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error
	return count, err
}

// CountByUser returns the number of comments written by a user
func (r *commentRepositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Comment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// TopUsers ranks users by comment count
func (r *commentRepositoryImpl) TopUsers(ctx context.Context, limit int) ([]UserCommentCountRow, error) {
	var rows []UserCommentCountRow
	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("u.id AS user_id, u.name AS name, COUNT(c.id) AS comment_count").
		Joins("JOIN users AS u ON u.id = c.user_id").
		Group("u.id, u.name").
		Order("comment_count DESC, u.name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TopAccommodations ranks accommodations by comment count
func (r *commentRepositoryImpl) TopAccommodations(ctx context.Context, limit int) ([]AccommodationCommentCountRow, error) {
	var rows []AccommodationCommentCountRow
	err := r.db.WithContext(ctx).
		Table("comments AS c").
		Select("a.id AS accommodation_id, a.name AS name, COUNT(c.id) AS comment_count").
		Joins("JOIN accommodations AS a ON a.id = c.accommodation_id").
		Group("a.id, a.name").
		Order("comment_count DESC, a.name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
