package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Price bounds in KRW
const (
	MinPrice int64 = 1
	MaxPrice int64 = 10_000_000
)

// Amenity is a facility offered by an accommodation
type Amenity string

const (
	AmenityWifi       Amenity = "wifi"
	AmenityParking    Amenity = "parking"
	AmenityPool       Amenity = "pool"
	AmenityRestaurant Amenity = "restaurant"
	AmenityKitchen    Amenity = "kitchen"
)

var validAmenities = map[Amenity]bool{
	AmenityWifi:       true,
	AmenityParking:    true,
	AmenityPool:       true,
	AmenityRestaurant: true,
	AmenityKitchen:    true,
}

// IsValidAmenity reports whether a is one of the known amenities
func IsValidAmenity(a string) bool {
	return validAmenities[Amenity(a)]
}

// Accommodation is a listing users vote and comment on
type Accommodation struct {
	BaseModel
	Name        string               `gorm:"type:varchar(200);not null" json:"name"`
	Location    string               `gorm:"type:varchar(200);not null" json:"location"`
	Price       int64                `gorm:"not null" json:"price"`
	Description string               `gorm:"type:text" json:"description"`
	CheckIn     string               `gorm:"type:varchar(8);not null;default:'15:00'" json:"check_in"`
	CheckOut    string               `gorm:"type:varchar(8);not null;default:'11:00'" json:"check_out"`
	Amenities   datatypes.JSON       `json:"amenities"`
	Images      []AccommodationImage `gorm:"foreignKey:AccommodationID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
}

// TableName specifies the table name for Accommodation
func (Accommodation) TableName() string {
	return "accommodations"
}

// AmenityList decodes the stored amenities
func (a *Accommodation) AmenityList() []string {
	list := []string{}
	if len(a.Amenities) == 0 {
		return list
	}
	if err := json.Unmarshal(a.Amenities, &list); err != nil {
		return []string{}
	}
	return list
}

// SetAmenities validates and encodes amenities, dropping duplicates
func (a *Accommodation) SetAmenities(amenities []string) error {
	seen := make(map[string]bool, len(amenities))
	list := make([]string, 0, len(amenities))
	for _, am := range amenities {
		if !IsValidAmenity(am) {
			return fmt.Errorf("invalid amenity: %s", am)
		}
		if seen[am] {
			continue
		}
		seen[am] = true
		list = append(list, am)
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return err
	}
	a.Amenities = datatypes.JSON(raw)
	return nil
}

// AccommodationImage is an ordered image attached to an accommodation.
// File holds the storage key, not a URL.
type AccommodationImage struct {
	BaseModel
	AccommodationID uuid.UUID `gorm:"type:uuid;not null;index:idx_images_accommodation_id" json:"accommodation_id"`
	File            string    `gorm:"type:varchar(500);not null" json:"image"`
	AltText         string    `gorm:"type:varchar(200)" json:"alt_text"`
	Order           int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName specifies the table name for AccommodationImage
func (AccommodationImage) TableName() string {
	return "accommodation_images"
}
