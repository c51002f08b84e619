// Package handler はastronomyフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"astro_backend/internal/feature/astronomy/domain/entity"
	"astro_backend/internal/feature/astronomy/usecase"
)

// AstronomyUsecase は天文データ取得のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AstronomyUsecase interface {
	Get(ctx context.Context, lat, long float64) (*entity.Astronomy, error)
}

// AstronomyHandler は天文データのHTTPリクエストを処理します。
type AstronomyHandler struct {
	uc AstronomyUsecase
}

// NewAstronomyHandler は指定されたusecaseでAstronomyHandlerの新しいインスタンスを生成します。
func NewAstronomyHandler(uc AstronomyUsecase) *AstronomyHandler {
	return &AstronomyHandler{uc: uc}
}

// Get は GET /api/astronomy?lat=..&long=.. を処理します。
// - 座標が欠落または範囲外の場合は400を返却
// - 上流プロバイダの失敗時は502を返却（リトライなし）
func (h *AstronomyHandler) Get(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat parameter"})
		return
	}
	long, err := strconv.ParseFloat(c.Query("long"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid long parameter"})
		return
	}

	data, err := h.uc.Get(c.Request.Context(), lat, long)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		slog.Error("failed to fetch astronomy data", "error", err, "lat", lat, "long", long)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch astronomy data"})
		return
	}

	c.JSON(http.StatusOK, data)
}
