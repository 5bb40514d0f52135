package repository

import (
	"context"

	"gorm.io/gorm"

	"contentshare/internal/model"
)

// FavoriteRepository defines favorite persistence operations. Lookups are
// always keyed by the (user, content) pair, never a caller-supplied user.
type FavoriteRepository interface {
	FindByUserAndContent(ctx context.Context, userID, contentID uint) (*model.Favorite, error)
	Create(ctx context.Context, favorite *model.Favorite) error
	Delete(ctx context.Context, favorite *model.Favorite) error
	ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) FindByUserAndContent(ctx context.Context, userID, contentID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&favorite).Error
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Create(favorite).Error
}

func (r *favoriteRepository) Delete(ctx context.Context, favorite *model.Favorite) error {
	return r.db.WithContext(ctx).Delete(favorite).Error
}

// ListByUser returns the user's favorites with their content preloaded.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error) {
	var favorites []model.Favorite
	err := r.db.WithContext(ctx).
		Preload("Content").
		Where("user_id = ?", userID).
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
