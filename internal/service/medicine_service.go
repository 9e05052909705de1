package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"medstore/internal/cache"
	apperrors "medstore/internal/errors"
	"medstore/internal/metrics"
	"medstore/internal/model"
	"medstore/internal/repository"
)

const medicineCacheTTL = 5 * time.Minute

// CreateMedicineInput carries the fields accepted by medicine creation.
type CreateMedicineInput struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	CategoryID     uuid.UUID
	ManufacturerID uuid.UUID
}

// MedicineService exposes catalog medicine operations.
type MedicineService interface {
	Create(ctx context.Context, input CreateMedicineInput) (*model.Medicine, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Medicine, error)
	List(ctx context.Context, page, size int) ([]model.Medicine, error)
	Search(ctx context.Context, keyword string, page, size int) ([]model.Medicine, error)
}

type medicineService struct {
	repo             repository.MedicineRepository
	categoryRepo     repository.CategoryRepository
	manufacturerRepo repository.ManufacturerRepository
	cache            cache.Store
}

// NewMedicineService builds a MedicineService with its repositories and cache.
func NewMedicineService(
	repo repository.MedicineRepository,
	categoryRepo repository.CategoryRepository,
	manufacturerRepo repository.ManufacturerRepository,
	store cache.Store,
) MedicineService {
	return &medicineService{
		repo:             repo,
		categoryRepo:     categoryRepo,
		manufacturerRepo: manufacturerRepo,
		cache:            store,
	}
}

func (s *medicineService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("medicine:%s", id)
}

// Create inserts a new medicine after verifying that its category and
// manufacturer exist. A medicine is never created as an orphan: the checks
// here catch it first and the foreign keys in the schema catch anything
// that slips past them.
func (s *medicineService) Create(ctx context.Context, input CreateMedicineInput) (*model.Medicine, error) {
	if input.Price.IsNegative() {
		return nil, apperrors.ErrInvalidPrice
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	if _, err := s.manufacturerRepo.FindByID(ctx, input.ManufacturerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, err
	}

	medicine := &model.Medicine{
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		CategoryID:     input.CategoryID,
		ManufacturerID: input.ManufacturerID,
	}

	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, fmt.Errorf("create medicine: %w", err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("medicine", "create").Inc()
	return medicine, nil
}

// Get returns a medicine with its relations, served from cache when possible.
func (s *medicineService) Get(ctx context.Context, id uuid.UUID) (*model.Medicine, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Medicine
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	medicine, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMedicineNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(medicine); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, medicineCacheTTL)
	}
	return medicine, nil
}

func (s *medicineService) List(ctx context.Context, page, size int) ([]model.Medicine, error) {
	page, size = clampPage(page, size)
	return s.repo.List(ctx, page*size, size)
}

func (s *medicineService) Search(ctx context.Context, keyword string, page, size int) ([]model.Medicine, error) {
	page, size = clampPage(page, size)
	return s.repo.Search(ctx, keyword, page*size, size)
}

func clampPage(page, size int) (int, int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}
