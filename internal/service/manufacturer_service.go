package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "medstore/internal/errors"
	"medstore/internal/metrics"
	"medstore/internal/model"
	"medstore/internal/repository"
)

// ManufacturerService exposes manufacturer operations.
type ManufacturerService interface {
	Create(ctx context.Context, name, country, description string) (*model.Manufacturer, error)
	List(ctx context.Context) ([]model.Manufacturer, error)
}

type manufacturerService struct {
	repo repository.ManufacturerRepository
}

// NewManufacturerService creates a new manufacturer service.
func NewManufacturerService(repo repository.ManufacturerRepository) ManufacturerService {
	return &manufacturerService{repo: repo}
}

func (s *manufacturerService) Create(ctx context.Context, name, country, description string) (*model.Manufacturer, error) {
	manufacturer := &model.Manufacturer{
		Name:        name,
		Country:     country,
		Description: description,
	}

	if err := s.repo.Create(ctx, manufacturer); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrManufacturerExists
		}
		return nil, fmt.Errorf("create manufacturer: %w", err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("manufacturer", "create").Inc()
	return manufacturer, nil
}

func (s *manufacturerService) List(ctx context.Context) ([]model.Manufacturer, error) {
	return s.repo.List(ctx)
}
