// Package dto defines data transfer objects for the favorites feature's HTTP transport layer.
package dto

import (
	"time"

	"astro_backend/internal/feature/favorites/domain/entity"
)

// FavoriteCreateReq represents the request body for POST /api/favorites.
// Latitude and longitude are pointers so a literal 0 passes the
// required check.
type FavoriteCreateReq struct {
	LocationName string   `json:"location_name" binding:"required"`
	Latitude     *float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
}

// FavoriteRes represents a favorite location in API responses.
type FavoriteRes struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	LocationName string    `json:"location_name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	SavedAt      time.Time `json:"saved_at"`
}

// FavoriteResFromEntity converts a domain favorite to its API view.
func FavoriteResFromEntity(f *entity.Favorite) FavoriteRes {
	return FavoriteRes{
		ID:           f.ID,
		UserID:       f.UserID,
		LocationName: f.LocationName,
		Latitude:     f.Latitude,
		Longitude:    f.Longitude,
		SavedAt:      f.SavedAt,
	}
}
