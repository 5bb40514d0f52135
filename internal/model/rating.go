package model

import (
	"time"
)

// Rating is a user's 1-5 score for a content item, with an optional review.
// At most one rating per (user, content) pair; re-rating updates in place.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_rating_user_content"`
	ContentID uint      `json:"content_id" gorm:"not null;uniqueIndex:idx_rating_user_content"`
	Rating    int       `json:"rating" gorm:"not null"`
	Review    string    `json:"review,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Content Content `json:"-" gorm:"foreignKey:ContentID"`
}
