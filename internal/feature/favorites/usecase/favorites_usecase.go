// Package usecase はfavoritesフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"astro_backend/internal/feature/favorites/domain/entity"
)

// MaxListSize はユーザーごとのお気に入り一覧の最大返却件数です。
const MaxListSize = 1000

// ErrFavoriteNotFound is returned when a favorite does not exist or is
// not owned by the requesting user. The two cases are not distinguished.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository はお気に入りエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type FavoriteRepository interface {
	// Create は新しいお気に入りをストレージに永続化します。
	Create(ctx context.Context, fav *entity.Favorite) error

	// FindByUser は指定されたユーザーのお気に入りを保存順に取得します。
	FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Favorite, error)

	// DeleteByIDAndUser は指定されたIDかつ指定されたユーザー所有の
	// お気に入りを削除します。該当行がない場合、ErrFavoriteNotFoundを返します。
	DeleteByIDAndUser(ctx context.Context, id, userID uint) error
}

// favoritesUsecase はお気に入り操作のユースケースを実装します。
type favoritesUsecase struct {
	favorites FavoriteRepository
}

// NewFavoritesUsecase はfavoritesUsecaseの新しいインスタンスを生成します。
func NewFavoritesUsecase(favorites FavoriteRepository) *favoritesUsecase {
	return &favoritesUsecase{favorites: favorites}
}

// Add は認証済みユーザーのお気に入り地点を保存します。
func (u *favoritesUsecase) Add(ctx context.Context, userID uint, name string, lat, long float64) (*entity.Favorite, error) {
	fav := &entity.Favorite{
		UserID:       userID,
		LocationName: name,
		Latitude:     lat,
		Longitude:    long,
		SavedAt:      time.Now().UTC(),
	}
	if err := u.favorites.Create(ctx, fav); err != nil {
		return nil, err
	}
	return fav, nil
}

// List は認証済みユーザーのお気に入り一覧を返します。
func (u *favoritesUsecase) List(ctx context.Context, userID uint) ([]entity.Favorite, error) {
	return u.favorites.FindByUser(ctx, userID, MaxListSize)
}

// Delete は所有者スコープでお気に入りを削除します。
// 存在しない、または他ユーザー所有の場合はErrFavoriteNotFoundを返します。
func (u *favoritesUsecase) Delete(ctx context.Context, userID, favoriteID uint) error {
	return u.favorites.DeleteByIDAndUser(ctx, favoriteID, userID)
}
