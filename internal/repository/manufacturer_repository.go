package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medstore/internal/model"
)

// ManufacturerRepository defines manufacturer persistence operations.
type ManufacturerRepository interface {
	Create(ctx context.Context, manufacturer *model.Manufacturer) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error)
	List(ctx context.Context) ([]model.Manufacturer, error)
}

type manufacturerRepository struct {
	db *gorm.DB
}

// NewManufacturerRepository creates a new manufacturer repository.
func NewManufacturerRepository(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(ctx context.Context, manufacturer *model.Manufacturer) error {
	return r.db.WithContext(ctx).Create(manufacturer).Error
}

func (r *manufacturerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Manufacturer, error) {
	var manufacturer model.Manufacturer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&manufacturer).Error; err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) List(ctx context.Context) ([]model.Manufacturer, error) {
	var manufacturers []model.Manufacturer
	if err := r.db.WithContext(ctx).Order("name asc").Find(&manufacturers).Error; err != nil {
		return nil, err
	}
	return manufacturers, nil
}
