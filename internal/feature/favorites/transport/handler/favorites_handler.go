// Package handler はfavoritesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"astro_backend/internal/feature/favorites/domain/entity"
	"astro_backend/internal/feature/favorites/transport/http/dto"
	"astro_backend/internal/feature/favorites/usecase"
	jwtmw "astro_backend/internal/platform/jwt"
)

// FavoritesUsecase はお気に入り操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FavoritesUsecase interface {
	Add(ctx context.Context, userID uint, name string, lat, long float64) (*entity.Favorite, error)
	List(ctx context.Context, userID uint) ([]entity.Favorite, error)
	Delete(ctx context.Context, userID, favoriteID uint) error
}

// FavoritesHandler はお気に入りのHTTPリクエストを処理します。
// すべてのエンドポイントはAuthRequiredミドルウェアの背後でルーティングされます。
type FavoritesHandler struct {
	uc FavoritesUsecase
}

// NewFavoritesHandler は指定されたusecaseでFavoritesHandlerの新しいインスタンスを生成します。
func NewFavoritesHandler(uc FavoritesUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc}
}

// Add は POST /api/favorites を処理します。
func (h *FavoritesHandler) Add(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.FavoriteCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("favorite validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	fav, err := h.uc.Add(c.Request.Context(), userID, req.LocationName, *req.Latitude, *req.Longitude)
	if err != nil {
		slog.Error("failed to save favorite", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save favorite"})
		return
	}

	c.JSON(http.StatusCreated, dto.FavoriteResFromEntity(fav))
}

// List は GET /api/favorites を処理します。
func (h *FavoritesHandler) List(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	favs, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		slog.Error("failed to list favorites", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list favorites"})
		return
	}

	out := make([]dto.FavoriteRes, 0, len(favs))
	for i := range favs {
		out = append(out, dto.FavoriteResFromEntity(&favs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Delete は DELETE /api/favorites/:id を処理します。
// 削除は所有者スコープで行われ、存在しない場合も他ユーザー所有の場合も404を返します。
func (h *FavoritesHandler) Delete(c *gin.Context) {
	userID, ok := jwtmw.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// 形式不正なIDは存在しないIDと同様に扱う
		c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		return
	}

	if err := h.uc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		if errors.Is(err, usecase.ErrFavoriteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
			return
		}
		slog.Error("failed to delete favorite", "error", err, "user_id", userID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite deleted successfully"})
}
