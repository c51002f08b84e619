// Package entity defines the domain entities for the favorites feature.
package entity

import "time"

// Favorite represents a location saved by a user.
// A favorite is owned by exactly one user and is never shared.
type Favorite struct {
	// ID is the unique identifier for the favorite.
	ID uint `gorm:"primaryKey"`

	// UserID is the owning user's ID. All reads and deletes are scoped
	// to this ID.
	UserID uint `gorm:"index;not null"`

	// LocationName is the user-chosen display name for the location.
	LocationName string `gorm:"size:255;not null"`

	// Latitude in decimal degrees, -90..90.
	Latitude float64 `gorm:"not null"`

	// Longitude in decimal degrees, -180..180.
	Longitude float64 `gorm:"not null"`

	// SavedAt is the timestamp when the favorite was saved.
	SavedAt time.Time `gorm:"not null"`
}
