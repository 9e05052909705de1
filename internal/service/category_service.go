package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"medstore/internal/cache"
	apperrors "medstore/internal/errors"
	"medstore/internal/metrics"
	"medstore/internal/model"
	"medstore/internal/repository"
)

const (
	categoryListCacheTTL   = 5 * time.Minute
	categoryListVersionKey = "categories:list:version"
)

// CreateCategoryInput carries the fields accepted by category creation.
type CreateCategoryInput struct {
	Name         string
	Description  string
	ThumbnailURL string
	Position     int
}

// CategoryService exposes catalog category operations.
type CategoryService interface {
	Create(ctx context.Context, input CreateCategoryInput) (*model.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, page, size int) ([]model.Category, error)
	// Delete removes a category. With cascade false it refuses when the
	// category still owns medicines; with cascade true it removes the
	// medicines as well, in one transaction.
	Delete(ctx context.Context, id uuid.UUID, cascade bool) error
}

type categoryService struct {
	repo  repository.CategoryRepository
	cache cache.Store
}

// NewCategoryService builds a CategoryService with repository and cache.
func NewCategoryService(repo repository.CategoryRepository, store cache.Store) CategoryService {
	return &categoryService{repo: repo, cache: store}
}

// listCacheKey prefixes paged list keys with a version token. Invalidation
// deletes the version key, orphaning every cached page at once without
// enumerating page/size combinations; orphaned pages expire on TTL.
func (s *categoryService) listCacheKey(ctx context.Context, page, size int) string {
	version, _ := s.cache.Get(ctx, categoryListVersionKey)
	if version == nil {
		version = []byte(uuid.NewString())
		_ = s.cache.Set(ctx, categoryListVersionKey, version, 0)
	}
	return fmt.Sprintf("categories:%s:%d:%d", version, page, size)
}

func (s *categoryService) invalidateList(ctx context.Context) {
	_ = s.cache.Delete(ctx, categoryListVersionKey)
}

// Create inserts a new category. Name uniqueness is enforced by the unique
// index, so two concurrent creations with the same name cannot both win.
func (s *categoryService) Create(ctx context.Context, input CreateCategoryInput) (*model.Category, error) {
	category := &model.Category{
		Name:         input.Name,
		Description:  input.Description,
		ThumbnailURL: input.ThumbnailURL,
		Position:     input.Position,
		Active:       true,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrCategoryExists
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.invalidateList(ctx)
	metrics.CatalogWritesTotal.WithLabelValues("category", "create").Inc()
	return category, nil
}

func (s *categoryService) Get(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// List returns a page of categories, served from cache when possible.
func (s *categoryService) List(ctx context.Context, page, size int) ([]model.Category, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}

	key := s.listCacheKey(ctx, page, size)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx, page*size, size)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, key, payload, categoryListCacheTTL)
	}
	return categories, nil
}

// Delete removes a category, cascading to its medicines only when the
// caller explicitly asks for it.
func (s *categoryService) Delete(ctx context.Context, id uuid.UUID, cascade bool) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return err
	}

	if cascade {
		if err := s.repo.DeleteCascade(ctx, id); err != nil {
			return fmt.Errorf("delete category cascade: %w", err)
		}
	} else {
		n, err := s.repo.CountMedicines(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperrors.ErrCategoryNotEmpty
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
	}

	s.invalidateList(ctx)
	metrics.CatalogWritesTotal.WithLabelValues("category", "delete").Inc()
	return nil
}
