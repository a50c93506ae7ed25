package service

import (
	"github.com/google/uuid"

	"travel-vote-api/internal/domain"
	"travel-vote-api/internal/dto"
	"travel-vote-api/internal/repository"
	"travel-vote-api/internal/storage"
	"travel-vote-api/internal/util"
)

func toUserResponse(u *domain.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserSummary(u *domain.User) dto.UserSummary {
	if u == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{ID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin}
}

func toAccommodationSummary(a *domain.Accommodation) dto.AccommodationSummary {
	if a == nil {
		return dto.AccommodationSummary{}
	}
	return dto.AccommodationSummary{ID: a.ID, Name: a.Name, Location: a.Location, Price: a.Price}
}

func toImageResponse(img *domain.AccommodationImage, files storage.FileStorage) dto.ImageResponse {
	resp := dto.ImageResponse{
		ID:              img.ID,
		AccommodationID: img.AccommodationID,
		Image:           img.File,
		AltText:         img.AltText,
		Order:           img.Order,
		CreatedAt:       img.CreatedAt,
	}
	if files != nil {
		resp.ImageURL = files.URL(img.File)
	}
	return resp
}

// toAccommodationResponse builds the response with the rounded average; a
// zero aggregate means the accommodation has no votes
func toAccommodationResponse(a *domain.Accommodation, agg repository.RatingAggregate, files storage.FileStorage) *dto.AccommodationResponse {
	images := make([]dto.ImageResponse, 0, len(a.Images))
	for i := range a.Images {
		images = append(images, toImageResponse(&a.Images[i], files))
	}
	return &dto.AccommodationResponse{
		ID:             a.ID,
		Name:           a.Name,
		Location:       a.Location,
		Price:          a.Price,
		PriceFormatted: util.FormatPrice(a.Price),
		Description:    a.Description,
		CheckIn:        a.CheckIn,
		CheckOut:       a.CheckOut,
		Amenities:      a.AmenityList(),
		Images:         images,
		AverageRating:  util.RoundTo1(agg.AverageRating),
		VoteCount:      agg.VoteCount,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toVoteResponse(v *domain.Vote) *dto.VoteResponse {
	return &dto.VoteResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		AccommodationID: v.AccommodationID,
		User:            toUserSummary(v.User),
		Accommodation:   toAccommodationSummary(v.Accommodation),
		Rating:          v.Rating,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func toVoteResponses(votes []*domain.Vote) []*dto.VoteResponse {
	responses := make([]*dto.VoteResponse, 0, len(votes))
	for _, v := range votes {
		responses = append(responses, toVoteResponse(v))
	}
	return responses
}

func toCommentResponse(c *domain.Comment) *dto.CommentResponse {
	return &dto.CommentResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		AccommodationID: c.AccommodationID,
		User:            toUserSummary(c.User),
		Accommodation:   toAccommodationSummary(c.Accommodation),
		Text:            c.Text,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toCommentResponses(comments []*domain.Comment) []*dto.CommentResponse {
	responses := make([]*dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c))
	}
	return responses
}

func accommodationIDs(accommodations []*domain.Accommodation) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(accommodations))
	for _, a := range accommodations {
		ids = append(ids, a.ID)
	}
	return ids
}
