package service

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"mime/multipart"
	"time"

	"gorm.io/gorm"

	"contentshare/internal/auth"
	"contentshare/internal/cache"
	"contentshare/internal/errors"
	"contentshare/internal/model"
	"contentshare/internal/repository"
	"contentshare/internal/storage"
)

const contentCacheTTL = 5 * time.Minute

// ContentInput carries the JSON fields of a content create/update request.
type ContentInput struct {
	Title       string
	Description string
}

// ContentService handles content CRUD, including media uploads.
type ContentService interface {
	Create(ctx context.Context, user *model.User, input ContentInput, media []*multipart.FileHeader) (*model.Content, error)
	Get(ctx context.Context, id uint) (*model.Content, error)
	List(ctx context.Context, title, description string, limit, offset int) ([]model.ContentSummary, error)
	Update(ctx context.Context, user *model.User, id uint, input ContentInput, media []*multipart.FileHeader) (*model.Content, error)
	Delete(ctx context.Context, user *model.User, id uint) error
}

type contentService struct {
	contentRepo repository.ContentRepository
	files       storage.FileStorage
	cache       *cache.Client
}

// NewContentService creates a new content service.
func NewContentService(contentRepo repository.ContentRepository, files storage.FileStorage, cache *cache.Client) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		files:       files,
		cache:       cache,
	}
}

func (s *contentService) cacheKey(id uint) string {
	return fmt.Sprintf("content:%d", id)
}

// storeMedia uploads every attached file; one bad file fails the request.
func (s *contentService) storeMedia(ctx context.Context, media []*multipart.FileHeader) (model.StringList, error) {
	urls := make(model.StringList, 0, len(media))
	for _, file := range media {
		url, err := s.files.Store(ctx, file)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}

func (s *contentService) Create(ctx context.Context, user *model.User, input ContentInput, media []*multipart.FileHeader) (*model.Content, error) {
	content := &model.Content{
		Title:       input.Title,
		Description: input.Description,
		UserID:      user.ID,
	}

	if len(media) > 0 {
		urls, err := s.storeMedia(ctx, media)
		if err != nil {
			return nil, err
		}
		content.MediaURLs = urls
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return content, nil
}

// Get retrieves content by ID with caching.
func (s *contentService) Get(ctx context.Context, id uint) (*model.Content, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Content
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrContentNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(content); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, contentCacheTTL)
	}
	return content, nil
}

// List returns content matching the title/description filters.
// No matches is a not-found condition, not an empty page.
func (s *contentService) List(ctx context.Context, title, description string, limit, offset int) ([]model.ContentSummary, error) {
	results, err := s.contentRepo.FindByFilters(ctx, title, description, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("filter content: %w", err)
	}
	if len(results) == 0 {
		return nil, errors.ErrContentNotFound
	}
	return results, nil
}

func (s *contentService) findOwned(ctx context.Context, user *model.User, id uint) (*model.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrContentNotFound
		}
		return nil, err
	}
	if !auth.IsOwner(user, content.UserID) {
		return nil, errors.ErrNotOwner
	}
	return content, nil
}

func (s *contentService) Update(ctx context.Context, user *model.User, id uint, input ContentInput, media []*multipart.FileHeader) (*model.Content, error) {
	content, err := s.findOwned(ctx, user, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		content.Title = input.Title
	}
	if input.Description != "" {
		content.Description = input.Description
	}
	if len(media) > 0 {
		urls, err := s.storeMedia(ctx, media)
		if err != nil {
			return nil, err
		}
		content.MediaURLs = urls
	}

	if err := s.contentRepo.Update(ctx, content); err != nil {
		return nil, fmt.Errorf("update content: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return content, nil
}

func (s *contentService) Delete(ctx context.Context, user *model.User, id uint) error {
	content, err := s.findOwned(ctx, user, id)
	if err != nil {
		return err
	}
	if err := s.contentRepo.Delete(ctx, content); err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
