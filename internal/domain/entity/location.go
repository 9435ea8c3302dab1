package entity

import (
	"time"
)

// Location is a user's single saved location. One document per user,
// updated in place when the user relocates.
type Location struct {
	ID        string  `json:"id" firestore:"id"`
	UserID    string  `json:"user_id" firestore:"userId"`
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`

	Address    string `json:"address,omitempty" firestore:"address,omitempty"`
	City       string `json:"city,omitempty" firestore:"city,omitempty"`
	Region     string `json:"region,omitempty" firestore:"region,omitempty"`
	Country    string `json:"country,omitempty" firestore:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty" firestore:"postalCode,omitempty"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	DeletedAt *time.Time `json:"-" firestore:"deletedAt,omitempty"`
}

// Snapshot returns the immutable copy of the location that gets embedded in
// a post at creation time. Posts keep pointing at the place they were
// created, even if the owner later moves.
func (l *Location) Snapshot() PostLocation {
	return PostLocation{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Address:   l.Address,
		City:      l.City,
		Region:    l.Region,
		Country:   l.Country,
	}
}
