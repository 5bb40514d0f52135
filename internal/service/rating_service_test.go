package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"contentshare/internal/errors"
	"contentshare/internal/model"
)

func TestRatingService_Rate(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}
	stored := &model.Content{ID: 5, Title: "t1", UserID: 2}

	t.Run("first rating creates a record", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
		ratingRepo := new(MockRatingRepository)
		ratingRepo.On("FindByUserAndContent", mock.Anything, uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)
		ratingRepo.On("Save", mock.Anything, mock.MatchedBy(func(r *model.Rating) bool {
			return r.ID == 0 && r.Rating == 3 && r.Review == "ok" && r.UserID == 1 && r.ContentID == 5
		})).Return(nil)

		svc := NewRatingService(contentRepo, ratingRepo)
		assert.NoError(t, svc.Rate(context.Background(), alice, 5, 3, "ok"))
		ratingRepo.AssertExpectations(t)
	})

	t.Run("re-rating updates in place, last write wins", func(t *testing.T) {
		existing := &model.Rating{ID: 20, UserID: 1, ContentID: 5, Rating: 3, Review: "ok"}
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
		ratingRepo := new(MockRatingRepository)
		ratingRepo.On("FindByUserAndContent", mock.Anything, uint(1), uint(5)).Return(existing, nil)
		ratingRepo.On("Save", mock.Anything, mock.MatchedBy(func(r *model.Rating) bool {
			// Same record, new value and review: no duplicate is created.
			return r.ID == 20 && r.Rating == 5 && r.Review == "great"
		})).Return(nil)

		svc := NewRatingService(contentRepo, ratingRepo)
		assert.NoError(t, svc.Rate(context.Background(), alice, 5, 5, "great"))
		ratingRepo.AssertExpectations(t)
	})

	t.Run("value outside 1-5 is rejected before any lookup", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		ratingRepo := new(MockRatingRepository)

		svc := NewRatingService(contentRepo, ratingRepo)
		assert.ErrorIs(t, svc.Rate(context.Background(), alice, 5, 0, ""), errors.ErrInvalidRating)
		assert.ErrorIs(t, svc.Rate(context.Background(), alice, 5, 6, ""), errors.ErrInvalidRating)
		contentRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown content is 404", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRatingService(contentRepo, new(MockRatingRepository))
		assert.ErrorIs(t, svc.Rate(context.Background(), alice, 99, 4, ""), errors.ErrContentNotFound)
	})
}

func TestRatingService_Remove(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}
	stored := &model.Content{ID: 5, Title: "t1", UserID: 2}

	t.Run("removes an existing rating", func(t *testing.T) {
		existing := &model.Rating{ID: 20, UserID: 1, ContentID: 5, Rating: 4}
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
		ratingRepo := new(MockRatingRepository)
		ratingRepo.On("FindByUserAndContent", mock.Anything, uint(1), uint(5)).Return(existing, nil)
		ratingRepo.On("Delete", mock.Anything, existing).Return(nil)

		svc := NewRatingService(contentRepo, ratingRepo)
		removed, err := svc.Remove(context.Background(), alice, 5)

		assert.NoError(t, err)
		assert.True(t, removed)
	})

	t.Run("removing a never-rated content is a success no-op", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
		ratingRepo := new(MockRatingRepository)
		ratingRepo.On("FindByUserAndContent", mock.Anything, uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewRatingService(contentRepo, ratingRepo)
		removed, err := svc.Remove(context.Background(), alice, 5)

		assert.NoError(t, err)
		assert.False(t, removed)
		ratingRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
