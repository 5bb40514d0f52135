package model

import (
	"time"
)

// Favorite links a user to a content item they marked as favorite.
// The composite unique index enforces at most one link per (user, content)
// pair even under concurrent requests.
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_content"`
	ContentID uint      `json:"content_id" gorm:"not null;uniqueIndex:idx_favorite_user_content"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Content Content `json:"-" gorm:"foreignKey:ContentID"`
}
