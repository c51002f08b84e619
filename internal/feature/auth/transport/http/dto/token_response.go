package dto

import (
	"time"

	"astro_backend/internal/feature/auth/domain/entity"
)

// UserRes is the public view of a user. The password hash is never
// part of any response.
type UserRes struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenRes represents the response for a successful register or login.
type TokenRes struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        UserRes `json:"user"`
}

// UserResFromEntity converts a domain user to its public view.
func UserResFromEntity(u *entity.User) UserRes {
	return UserRes{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
