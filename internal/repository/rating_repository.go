package repository

import (
	"context"

	"gorm.io/gorm"

	"contentshare/internal/model"
)

// RatingRepository defines rating persistence operations.
type RatingRepository interface {
	FindByUserAndContent(ctx context.Context, userID, contentID uint) (*model.Rating, error)
	Save(ctx context.Context, rating *model.Rating) error
	Delete(ctx context.Context, rating *model.Rating) error
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository builds a GORM-backed repository.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) FindByUserAndContent(ctx context.Context, userID, contentID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Save inserts the rating or updates it in place when it already has an ID.
func (r *ratingRepository) Save(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Save(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Delete(rating).Error
}
