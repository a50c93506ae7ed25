package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"travel-vote-api/internal/domain"
)

// VoteFilter holds optional vote list filters
type VoteFilter struct {
	UserID          *uuid.UUID
	AccommodationID *uuid.UUID
	MinRating       *int
	MaxRating       *int
}

// RatingAggregate is the average rating and vote count of one accommodation
type RatingAggregate struct {
	AccommodationID uuid.UUID
	AverageRating   float64
	VoteCount       int64
}

// PopularRow is one row of the popularity ranking
type PopularRow struct {
	ID            uuid.UUID
	Name          string
	Location      string
	Price         int64
	AverageRating float64
	VoteCount     int64
}

// VoteSummary holds global vote aggregates
type VoteSummary struct {
	TotalVotes    int64
	AverageRating float64
	VotedUsers    int64
}

// RatingBucket is the number of votes with a given rating
type RatingBucket struct {
	Rating int
	Count  int64
}

// VoteRepository defines the interface for vote data access
type VoteRepository interface {
	Upsert(ctx context.Context, vote *domain.Vote) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error)
	FindAll(ctx context.Context, filter VoteFilter) ([]*domain.Vote, error)
	Update(ctx context.Context, vote *domain.Vote) error
	Delete(ctx context.Context, id uuid.UUID) error
	AggregateByAccommodation(ctx context.Context, accommodationIDs []uuid.UUID) (map[uuid.UUID]RatingAggregate, error)
	Popular(ctx context.Context, limit int) ([]PopularRow, error)
	Summary(ctx context.Context) (*VoteSummary, error)
	RatingDistribution(ctx context.Context) ([]RatingBucket, error)
	SummaryByUser(ctx context.Context, userID uuid.UUID) (*VoteSummary, error)
}

// voteRepositoryImpl is the GORM implementation of VoteRepository
type voteRepositoryImpl struct {
	db *gorm.DB
}

// NewVoteRepository creates a new instance of VoteRepository
func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepositoryImpl{db: db}
}

func withVoteRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("User").Preload("Accommodation")
}

// Upsert inserts the vote or, when the (user, accommodation) pair already
// voted, overwrites its rating. vote is replaced with the stored row.
// The returned flag is true when a new row was inserted.
func (r *voteRepositoryImpl) Upsert(ctx context.Context, vote *domain.Vote) (bool, error) {
	if vote.ID == uuid.Nil {
		vote.ID = uuid.New()
	}
	insertedID := vote.ID

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "accommodation_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(vote).Error
	if err != nil {
		return false, err
	}

	var stored domain.Vote
	if err := withVoteRelations(r.db.WithContext(ctx)).
		Where("user_id = ? AND accommodation_id = ?", vote.UserID, vote.AccommodationID).
		First(&stored).Error; err != nil {
		return false, err
	}
	*vote = stored
	return stored.ID == insertedID, nil
}

// FindByID finds a vote with its user and accommodation
func (r *voteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Vote, error) {
	var vote domain.Vote
	if err := withVoteRelations(r.db.WithContext(ctx)).Where("id = ?", id).First(&vote).Error; err != nil {
		return nil, err
	}
	return &vote, nil
}

// FindAll lists votes matching filter, newest first
func (r *voteRepositoryImpl) FindAll(ctx context.Context, filter VoteFilter) ([]*domain.Vote, error) {
	query := withVoteRelations(r.db.WithContext(ctx))
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.AccommodationID != nil {
		query = query.Where("accommodation_id = ?", *filter.AccommodationID)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	if filter.MaxRating != nil {
		query = query.Where("rating <= ?", *filter.MaxRating)
	}

	var votes []*domain.Vote
	if err := query.Order("created_at DESC").Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

// Update saves the rating of an existing vote
func (r *voteRepositoryImpl) Update(ctx context.Context, vote *domain.Vote) error {
	return r.db.WithContext(ctx).Model(vote).Omit(clause.Associations).Update("rating", vote.Rating).Error
}

// Delete deletes a vote
func (r *voteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Vote{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AggregateByAccommodation returns the raw average rating and vote count for
// each listed accommodation that has at least one vote
func (r *voteRepositoryImpl) AggregateByAccommodation(ctx context.Context, accommodationIDs []uuid.UUID) (map[uuid.UUID]RatingAggregate, error) {
	result := make(map[uuid.UUID]RatingAggregate, len(accommodationIDs))
	if len(accommodationIDs) == 0 {
		return result, nil
	}

	var rows []RatingAggregate
	if err := r.db.WithContext(ctx).Model(&domain.Vote{}).
		Select("accommodation_id, AVG(rating) AS average_rating, COUNT(*) AS vote_count").
		Where("accommodation_id IN ?", accommodationIDs).
		Group("accommodation_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.AccommodationID] = row
	}
	return result, nil
}

// Popular ranks voted accommodations by average rating, then vote count.
// Accommodations without votes never appear.
func (r *voteRepositoryImpl) Popular(ctx context.Context, limit int) ([]PopularRow, error) {
	var rows []PopularRow
	err := r.db.WithContext(ctx).
		Table("accommodations AS a").
		Select("a.id AS id, a.name AS name, a.location AS location, a.price AS price, " +
			"AVG(v.rating) AS average_rating, COUNT(v.id) AS vote_count").
		Joins("JOIN votes AS v ON v.accommodation_id = a.id").
		Group("a.id, a.name, a.location, a.price").
		Order("average_rating DESC, vote_count DESC, a.name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Summary returns the total vote count, average rating and distinct voters
func (r *voteRepositoryImpl) Summary(ctx context.Context) (*VoteSummary, error) {
	var s VoteSummary
	err := r.db.WithContext(ctx).Model(&domain.Vote{}).
		Select("COUNT(*) AS total_votes, COALESCE(AVG(rating), 0) AS average_rating, COUNT(DISTINCT user_id) AS voted_users").
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// RatingDistribution counts votes per rating value; ratings nobody gave are absent
func (r *voteRepositoryImpl) RatingDistribution(ctx context.Context) ([]RatingBucket, error) {
	var buckets []RatingBucket
	err := r.db.WithContext(ctx).Model(&domain.Vote{}).
		Select("rating, COUNT(*) AS count").
		Group("rating").
		Order("rating ASC").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// SummaryByUser returns the vote count and average rating given by one user
func (r *voteRepositoryImpl) SummaryByUser(ctx context.Context, userID uuid.UUID) (*VoteSummary, error) {
	var s VoteSummary
	err := r.db.WithContext(ctx).Model(&domain.Vote{}).
		Select("COUNT(*) AS total_votes, COALESCE(AVG(rating), 0) AS average_rating, COUNT(DISTINCT user_id) AS voted_users").
		Where("user_id = ?", userID).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
