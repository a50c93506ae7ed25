package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateAccommodationRequest represents the request to create an accommodation
type CreateAccommodationRequest struct {
	Name        string   `json:"name" binding:"required,max=200" example:"제주 오션뷰 호텔"`
	Location    string   `json:"location" binding:"required,max=200" example:"제주시 애월읍"`
	Price       int64    `json:"price" example:"120000"`
	Description string   `json:"description" example:"바다가 보이는 객실"`
	CheckIn     string   `json:"check_in" example:"15:00"`
	CheckOut    string   `json:"check_out" example:"11:00"`
	Amenities   []string `json:"amenities" example:"wifi,parking"`
}

// UpdateAccommodationRequest represents a partial accommodation update
type UpdateAccommodationRequest struct {
	Name        *string   `json:"name,omitempty" binding:"omitempty,max=200"`
	Location    *string   `json:"location,omitempty" binding:"omitempty,max=200"`
	Price       *int64    `json:"price,omitempty"`
	Description *string   `json:"description,omitempty"`
	CheckIn     *string   `json:"check_in,omitempty"`
	CheckOut    *string   `json:"check_out,omitempty"`
	Amenities   *[]string `json:"amenities,omitempty"`
}

// ImageResponse represents an accommodation image
type ImageResponse struct {
	ID              uuid.UUID `json:"id"`
	AccommodationID uuid.UUID `json:"accommodation_id"`
	Image           string    `json:"image"`
	ImageURL        string    `json:"image_url"`
	AltText         string    `json:"alt_text"`
	Order           int       `json:"order"`
	CreatedAt       time.Time `json:"created_at"`
}

// AccommodationResponse represents an accommodation with its rating aggregate
type AccommodationResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	Price          int64           `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Description    string          `json:"description"`
	CheckIn        string          `json:"check_in"`
	CheckOut       string          `json:"check_out"`
	Amenities      []string        `json:"amenities"`
	Images         []ImageResponse `json:"images"`
	AverageRating  float64         `json:"average_rating"`
	VoteCount      int64           `json:"vote_count"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AccommodationSummary is the accommodation embedded in votes and comments
type AccommodationSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
	Price    int64     `json:"price"`
}

// PopularAccommodationResponse is one entry of the popularity ranking
type PopularAccommodationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Location      string    `json:"location"`
	Price         int64     `json:"price"`
	AverageRating float64   `json:"average_rating"`
	VoteCount     int64     `json:"vote_count"`
}

// AccommodationStatsResponse represents global accommodation statistics
type AccommodationStatsResponse struct {
	TotalAccommodations int64   `json:"total_accommodations"`
	AveragePrice        int64   `json:"average_price"`
	MinPrice            int64   `json:"min_price"`
	MaxPrice            int64   `json:"max_price"`
	TotalVotes          int64   `json:"total_votes"`
	AverageRating       float64 `json:"average_rating"`
}

// UploadImageRequest carries the non-file fields of an image upload
type UploadImageRequest struct {
	AltText string `form:"alt_text" binding:"max=200"`
	Order   int    `form:"order" binding:"min=0"`
}
