package model

import (
	"time"
)

// Content represents a user-posted item with optional media attachments.
type Content struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	MediaURLs   StringList `json:"media_urls,omitempty" gorm:"type:json"`
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}

// ContentSummary is the trimmed projection returned by filtered listings
// and favorite listings.
type ContentSummary struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	MediaURLs   StringList `json:"media_urls,omitempty"`
}

// Summary converts a Content into its listing projection.
func (c *Content) Summary() ContentSummary {
	return ContentSummary{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		MediaURLs:   c.MediaURLs,
	}
}
