package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"contentshare/internal/model"
)

// ContentRepository defines content persistence operations.
type ContentRepository interface {
	Create(ctx context.Context, content *model.Content) error
	FindByID(ctx context.Context, id uint) (*model.Content, error)
	FindByFilters(ctx context.Context, title, description string, limit, offset int) ([]model.ContentSummary, error)
	Update(ctx context.Context, content *model.Content) error
	Delete(ctx context.Context, content *model.Content) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository builds a GORM-backed repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}

func (r *contentRepository) FindByID(ctx context.Context, id uint) (*model.Content, error) {
	var content model.Content
	if err := r.db.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// FindByFilters returns content projections matching the title or description
// substrings, case-insensitive, OR semantics. Empty filters match everything.
func (r *contentRepository) FindByFilters(ctx context.Context, title, description string, limit, offset int) ([]model.ContentSummary, error) {
	q := r.db.WithContext(ctx).Model(&model.Content{}).
		Select("id, title, description, media_urls").
		Limit(limit).
		Offset(offset)

	titlePat := "%" + strings.ToLower(title) + "%"
	descPat := "%" + strings.ToLower(description) + "%"
	switch {
	case title != "" && description != "":
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", titlePat, descPat)
	case title != "":
		q = q.Where("LOWER(title) LIKE ?", titlePat)
	case description != "":
		q = q.Where("LOWER(description) LIKE ?", descPat)
	}

	var results []model.ContentSummary
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *contentRepository) Update(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Save(content).Error
}

func (r *contentRepository) Delete(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Delete(content).Error
}
