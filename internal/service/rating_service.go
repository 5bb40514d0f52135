package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"contentshare/internal/errors"
	"contentshare/internal/model"
	"contentshare/internal/repository"
)

// RatingService handles 1-5 ratings with upsert semantics: a second rate
// request for the same (user, content) pair updates the existing record,
// last write wins on value and review.
type RatingService interface {
	Rate(ctx context.Context, user *model.User, contentID uint, value int, review string) error
	// Remove deletes the user's rating. removed is false when the content
	// was never rated, which is a success, not an error.
	Remove(ctx context.Context, user *model.User, contentID uint) (removed bool, err error)
}

type ratingService struct {
	contentRepo repository.ContentRepository
	ratingRepo  repository.RatingRepository
}

// NewRatingService creates a new rating service.
func NewRatingService(contentRepo repository.ContentRepository, ratingRepo repository.RatingRepository) RatingService {
	return &ratingService{
		contentRepo: contentRepo,
		ratingRepo:  ratingRepo,
	}
}

func (s *ratingService) findContent(ctx context.Context, id uint) (*model.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

func (s *ratingService) Rate(ctx context.Context, user *model.User, contentID uint, value int, review string) error {
	if value < 1 || value > 5 {
		return errors.ErrInvalidRating
	}

	content, err := s.findContent(ctx, contentID)
	if err != nil {
		return err
	}

	rating, err := s.ratingRepo.FindByUserAndContent(ctx, user.ID, content.ID)
	if err != nil {
		if !stderrors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("look up rating: %w", err)
		}
		rating = &model.Rating{UserID: user.ID, ContentID: content.ID}
	}

	rating.Rating = value
	rating.Review = review

	if err := s.ratingRepo.Save(ctx, rating); err != nil {
		return fmt.Errorf("save rating: %w", err)
	}
	return nil
}

func (s *ratingService) Remove(ctx context.Context, user *model.User, contentID uint) (bool, error) {
	content, err := s.findContent(ctx, contentID)
	if err != nil {
		return false, err
	}

	rating, err := s.ratingRepo.FindByUserAndContent(ctx, user.ID, content.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up rating: %w", err)
	}

	if err := s.ratingRepo.Delete(ctx, rating); err != nil {
		return false, fmt.Errorf("delete rating: %w", err)
	}
	return true, nil
}
