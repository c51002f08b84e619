// Package adapters はfavoritesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"astro_backend/internal/feature/favorites/domain/entity"
	"astro_backend/internal/feature/favorites/usecase"
)

// favoritePostgres はFavoriteRepositoryインターフェースのPostgreSQL実装です。
type favoritePostgres struct {
	db *gorm.DB
}

// favoritePostgresがFavoriteRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.FavoriteRepository = (*favoritePostgres)(nil)

// NewFavoritePostgres は指定されたDB接続でfavoritePostgresの新しいインスタンスを生成します。
func NewFavoritePostgres(db *gorm.DB) *favoritePostgres {
	return &favoritePostgres{db: db}
}

// Create はお気に入りをデータベースに追加します。
func (r *favoritePostgres) Create(ctx context.Context, fav *entity.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

// FindByUser は指定されたユーザーのお気に入りを保存順に返します。
func (r *favoritePostgres) FindByUser(ctx context.Context, userID uint, limit int) ([]entity.Favorite, error) {
	var favs []entity.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("saved_at ASC").
		Limit(limit).
		Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}

// DeleteByIDAndUser は所有者スコープでお気に入りを削除します。
// 削除対象が存在しない場合、usecase.ErrFavoriteNotFoundを返します。
func (r *favoritePostgres) DeleteByIDAndUser(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entity.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrFavoriteNotFound
	}
	return nil
}
