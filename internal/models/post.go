package models

import (
	"time"

	"gorm.io/gorm"
)

// Post is a forum entry shared with the community.
//
// The anonymous flag affects display attribution only; UserID always holds
// the true author for moderation and audit purposes.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Anonymous bool           `gorm:"not null;default:false" json:"anonymous"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostView is the API shape of a post with display attribution resolved.
// AuthorName is "Anonymous" for anonymous posts and the UnknownAuthor
// sentinel when the author record is missing.
type PostView struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	AuthorName string    `json:"author_name"`
	Anonymous  bool      `json:"anonymous"`
	CreatedAt  time.Time `json:"created_at"`
}
