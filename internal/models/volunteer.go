package models

import (
	"time"

	"gorm.io/gorm"
)

// Volunteer is a professional-volunteer directory entry.
//
// ImageRef is an opaque storage handle. It is mandatory at creation but may
// later point to a missing file; display degrades to a placeholder rather
// than failing.
type Volunteer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Role      string         `gorm:"size:120;not null" json:"role"`
	Bio       string         `gorm:"type:text;not null" json:"bio"`
	ImageRef  string         `gorm:"size:255;not null" json:"image_ref"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
