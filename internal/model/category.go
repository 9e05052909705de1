package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups medicines in the catalog.
//
// The association deliberately carries no ORM-level cascade: deleting a
// category only touches its medicines when the caller asks for it through
// CategoryService.Delete with cascade enabled.
type Category struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty" gorm:"type:text"`
	Position     int       `json:"position"`
	Active       bool      `json:"active" gorm:"default:true"`
	Deleted      bool      `json:"deleted" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Medicines []Medicine `json:"medicines,omitempty" gorm:"foreignKey:CategoryID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
