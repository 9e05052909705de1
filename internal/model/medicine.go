package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Medicine is a catalog item. Every medicine references exactly one live
// category and one live manufacturer; the services check both before
// insert and the foreign keys back that up in the schema.
type Medicine struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`

	CategoryID uuid.UUID `json:"category_id" gorm:"type:char(36);not null;index"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	ManufacturerID uuid.UUID     `json:"manufacturer_id" gorm:"type:char(36);not null;index"`
	Manufacturer   *Manufacturer `json:"manufacturer,omitempty" gorm:"foreignKey:ManufacturerID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (m *Medicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
