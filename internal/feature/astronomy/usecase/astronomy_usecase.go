// Package usecase は天文データ取得のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"astro_backend/internal/feature/astronomy/domain/entity"
)

// ErrInvalidCoordinates is returned when latitude or longitude is out of range.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// AstronomyRepository は天文データの読み取りレイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type AstronomyRepository interface {
	// Fetch は指定座標の現在の太陽・月データを取得します。
	Fetch(ctx context.Context, lat, long float64) (*entity.Astronomy, error)
}

// astronomyUsecase は天文データ取得のユースケースを定義します。
type astronomyUsecase struct {
	astronomy AstronomyRepository
}

// NewAstronomyUsecase はastronomyUsecaseの新しいインスタンスを生成します。
func NewAstronomyUsecase(astronomy AstronomyRepository) *astronomyUsecase {
	return &astronomyUsecase{astronomy: astronomy}
}

// Get は座標を検証した上で太陽・月データを取得します。
// 上流プロバイダの失敗はそのまま呼び出し元へ伝播します（リトライなし）。
func (u *astronomyUsecase) Get(ctx context.Context, lat, long float64) (*entity.Astronomy, error) {
	if lat < -90 || lat > 90 || long < -180 || long > 180 {
		return nil, ErrInvalidCoordinates
	}
	return u.astronomy.Fetch(ctx, lat, long)
}
