package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medstore/internal/model"
)

// MedicineRepository defines medicine persistence operations.
type MedicineRepository interface {
	Create(ctx context.Context, medicine *model.Medicine) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error)
	List(ctx context.Context, offset, limit int) ([]model.Medicine, error)
	Search(ctx context.Context, keyword string, offset, limit int) ([]model.Medicine, error)
}

type medicineRepository struct {
	db *gorm.DB
}

// NewMedicineRepository creates a new medicine repository.
func NewMedicineRepository(db *gorm.DB) MedicineRepository {
	return &medicineRepository{db: db}
}

func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	return r.db.WithContext(ctx).Create(medicine).Error
}

// FindByID loads a medicine with its category and manufacturer.
func (r *medicineRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	var medicine model.Medicine
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Manufacturer").
		Where("id = ?", id).First(&medicine).Error; err != nil {
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) List(ctx context.Context, offset, limit int) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Offset(offset).Limit(limit).
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}

// Search matches the keyword against medicine names.
func (r *medicineRepository) Search(ctx context.Context, keyword string, offset, limit int) ([]model.Medicine, error) {
	var medicines []model.Medicine
	if err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+keyword+"%").
		Order("name asc").
		Offset(offset).Limit(limit).
		Find(&medicines).Error; err != nil {
		return nil, err
	}
	return medicines, nil
}
