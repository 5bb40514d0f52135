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

func TestContentService_Create(t *testing.T) {
	alice := &model.User{ID: 1, Username: "alice"}

	t.Run("creates content owned by the caller", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Content")).Return(nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		content, err := svc.Create(context.Background(), alice, ContentInput{Title: "t1", Description: "d1"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "t1", content.Title)
		assert.Equal(t, alice.ID, content.UserID)
		assert.Empty(t, content.MediaURLs)
		contentRepo.AssertExpectations(t)
	})

	t.Run("storage failure fails the whole request", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		files := new(MockFileStorage)
		files.On("Store", mock.Anything, mock.Anything).Return("", errors.ErrUnsupportedMediaType)

		svc := NewContentService(contentRepo, files, nil)
		_, err := svc.Create(context.Background(), alice, ContentInput{Title: "t1"}, fakeUploads(1))

		assert.ErrorIs(t, err, errors.ErrUnsupportedMediaType)
		contentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("stored media paths land on the record in order", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Content")).Return(nil)
		files := new(MockFileStorage)
		files.On("Store", mock.Anything, mock.Anything).Return("uploads/a.png", nil).Once()
		files.On("Store", mock.Anything, mock.Anything).Return("uploads/b.mp4", nil).Once()

		svc := NewContentService(contentRepo, files, nil)
		content, err := svc.Create(context.Background(), alice, ContentInput{Title: "t1"}, fakeUploads(2))

		assert.NoError(t, err)
		assert.Equal(t, model.StringList{"uploads/a.png", "uploads/b.mp4"}, content.MediaURLs)
	})
}

func TestContentService_Get(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		_, err := svc.Get(context.Background(), 99)
		assert.ErrorIs(t, err, errors.ErrContentNotFound)
	})

	t.Run("found", func(t *testing.T) {
		stored := &model.Content{ID: 5, Title: "t1", UserID: 1}
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		content, err := svc.Get(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, stored.Title, content.Title)
	})
}

func TestContentService_List(t *testing.T) {
	t.Run("no matches is not found", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByFilters", mock.Anything, "zzz", "", 10, 0).Return([]model.ContentSummary{}, nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		_, err := svc.List(context.Background(), "zzz", "", 10, 0)
		assert.ErrorIs(t, err, errors.ErrContentNotFound)
	})

	t.Run("matches pass through", func(t *testing.T) {
		matches := []model.ContentSummary{{ID: 1, Title: "hello world"}}
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByFilters", mock.Anything, "hello", "", 10, 0).Return(matches, nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		results, err := svc.List(context.Background(), "hello", "", 10, 0)
		assert.NoError(t, err)
		assert.Equal(t, matches, results)
	})
}

func TestContentService_OwnershipGate(t *testing.T) {
	owner := &model.User{ID: 1, Username: "alice"}
	intruder := &model.User{ID: 2, Username: "bob"}
	stored := &model.Content{ID: 5, Title: "t1", UserID: owner.ID}

	t.Run("owner can update", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)
		contentRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Content")).Return(nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		updated, err := svc.Update(context.Background(), owner, 5, ContentInput{Title: "t2"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "t2", updated.Title)
	})

	t.Run("non-owner update is denied regardless of payload", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		_, err := svc.Update(context.Background(), intruder, 5, ContentInput{Title: "perfectly valid"}, nil)

		assert.ErrorIs(t, err, errors.ErrNotOwner)
		contentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-owner delete is denied", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(5)).Return(stored, nil)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		err := svc.Delete(context.Background(), intruder, 5)

		assert.ErrorIs(t, err, errors.ErrNotOwner)
		contentRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("unknown id is 404 before ownership", func(t *testing.T) {
		contentRepo := new(MockContentRepository)
		contentRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewContentService(contentRepo, new(MockFileStorage), nil)
		err := svc.Delete(context.Background(), intruder, 99)
		assert.ErrorIs(t, err, errors.ErrContentNotFound)
	})
}
