package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

// PropertyLocation describes where a listing sits.
type PropertyLocation struct {
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zip_code" bson:"zip_code"`
}

// Property is a listing shown on the public site and managed by staff.
type Property struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	Title       string           `json:"title" bson:"title"`
	Description string           `json:"description" bson:"description"`
	Type        string           `json:"type" bson:"type"`
	Price       float64          `json:"price" bson:"price"`
	Currency    string           `json:"currency" bson:"currency"`
	Bedrooms    int              `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int              `json:"bathrooms" bson:"bathrooms"`
	AreaM2      float64          `json:"area_m2" bson:"area_m2"`
	Location    PropertyLocation `json:"location" bson:"location"`
	ImageURLs   []string         `json:"image_urls,omitempty" bson:"image_urls,omitempty"`
	Published   bool             `json:"published" bson:"published"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" bson:"updated_at"`
}
