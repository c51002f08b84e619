package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"astro_backend/internal/feature/auth/domain/entity"
	"astro_backend/internal/feature/auth/usecase"
)

// Context keys for values set by AuthRequired.
const (
	ContextUserID = "userID"
	ContextUser   = "user"
)

// TokenVerifier verifies a bearer token and returns the subject user ID.
// Goの慣例に従い、インターフェースはプロバイダーではなくコンシューマー（middleware）が定義します。
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

// UserFinder loads the authenticated user for the current request.
type UserFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware function that validates JWT
// tokens, loads the corresponding user, and restricts access to
// authenticated users only. The user is re-verified and re-fetched on
// every request; nothing is cached between requests.
func AuthRequired(verifier TokenVerifier, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Verify signature and expiry.
		// Malformed, forged and expired tokens all collapse into the
		// same response so callers cannot probe which check failed.
		userID, err := verifier.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Load the user behind the verified subject ID
		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		// 4. Expose identity to downstream handlers
		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)

		// 5. Pass control to the next handler
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}

// CurrentUserID returns the authenticated user ID set by AuthRequired.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
