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

// FavoriteService handles the favorite link between a user and content.
// Favorites are implicitly owner-scoped: every lookup is keyed by the
// authenticated user, so no separate ownership check exists.
type FavoriteService interface {
	// Favorite marks content as favorite. created is false when the link
	// already existed, which is a success, not an error.
	Favorite(ctx context.Context, user *model.User, contentID uint) (created bool, err error)
	// Unfavorite removes the link. removed is false when there was nothing
	// to remove, which is a success, not an error.
	Unfavorite(ctx context.Context, user *model.User, contentID uint) (removed bool, err error)
	// List returns the user's favorited contents as listing projections.
	List(ctx context.Context, user *model.User) ([]model.ContentSummary, error)
}

type favoriteService struct {
	contentRepo  repository.ContentRepository
	favoriteRepo repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service.
func NewFavoriteService(contentRepo repository.ContentRepository, favoriteRepo repository.FavoriteRepository) FavoriteService {
	return &favoriteService{
		contentRepo:  contentRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *favoriteService) findContent(ctx context.Context, id uint) (*model.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrContentNotFound
		}
		return nil, err
	}
	return content, nil
}

func (s *favoriteService) Favorite(ctx context.Context, user *model.User, contentID uint) (bool, error) {
	content, err := s.findContent(ctx, contentID)
	if err != nil {
		return false, err
	}

	if _, err := s.favoriteRepo.FindByUserAndContent(ctx, user.ID, content.ID); err == nil {
		return false, nil
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("look up favorite: %w", err)
	}

	favorite := &model.Favorite{UserID: user.ID, ContentID: content.ID}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		// A concurrent request won the check-then-insert race; the unique
		// index caught it, which reads as already favorited.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, fmt.Errorf("create favorite: %w", err)
	}
	return true, nil
}

func (s *favoriteService) Unfavorite(ctx context.Context, user *model.User, contentID uint) (bool, error) {
	content, err := s.findContent(ctx, contentID)
	if err != nil {
		return false, err
	}

	favorite, err := s.favoriteRepo.FindByUserAndContent(ctx, user.ID, content.ID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up favorite: %w", err)
	}

	if err := s.favoriteRepo.Delete(ctx, favorite); err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}
	return true, nil
}

func (s *favoriteService) List(ctx context.Context, user *model.User) ([]model.ContentSummary, error) {
	favorites, err := s.favoriteRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	contents := make([]model.ContentSummary, 0, len(favorites))
	for _, favorite := range favorites {
		contents = append(contents, favorite.Content.Summary())
	}
	return contents, nil
}
