package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "medstore/internal/errors"
	"medstore/internal/model"
)

// memoryCache is a map-backed cache.Store for exercising cache behavior in
// tests without a redis instance. TTLs are ignored.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	return m.entries[key], nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.entries[key] = value
	return nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *model.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, offset, limit int) ([]model.Category, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *MockCategoryRepository) CountMedicines(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCategoryService_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)

		service := NewCategoryService(mockRepo, newMemoryCache())
		category, err := service.Create(context.Background(), CreateCategoryInput{
			Name:        "Pain Relief",
			Description: "Analgesics",
			Position:    1,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Pain Relief", category.Name)
		assert.True(t, category.Active)
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(gorm.ErrDuplicatedKey)

		service := NewCategoryService(mockRepo, newMemoryCache())
		_, err := service.Create(context.Background(), CreateCategoryInput{Name: "Pain Relief"})

		assert.ErrorIs(t, err, apperrors.ErrCategoryExists)
	})
}

func TestCategoryService_Delete(t *testing.T) {
	id := uuid.New()

	t.Run("unknown category", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

		service := NewCategoryService(mockRepo, newMemoryCache())
		err := service.Delete(context.Background(), id, false)

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	})

	t.Run("refuses non-empty category without cascade", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id}, nil)
		mockRepo.On("CountMedicines", mock.Anything, id).Return(int64(3), nil)

		service := NewCategoryService(mockRepo, newMemoryCache())
		err := service.Delete(context.Background(), id, false)

		assert.ErrorIs(t, err, apperrors.ErrCategoryNotEmpty)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, id)
		mockRepo.AssertNotCalled(t, "DeleteCascade", mock.Anything, id)
	})

	t.Run("deletes empty category without cascade", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id}, nil)
		mockRepo.On("CountMedicines", mock.Anything, id).Return(int64(0), nil)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		service := NewCategoryService(mockRepo, newMemoryCache())
		assert.NoError(t, service.Delete(context.Background(), id, false))
		mockRepo.AssertExpectations(t)
	})

	t.Run("cascade deletes medicines too", func(t *testing.T) {
		mockRepo := new(MockCategoryRepository)
		mockRepo.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id}, nil)
		mockRepo.On("DeleteCascade", mock.Anything, id).Return(nil)

		service := NewCategoryService(mockRepo, newMemoryCache())
		assert.NoError(t, service.Delete(context.Background(), id, true))
		mockRepo.AssertNotCalled(t, "CountMedicines", mock.Anything, id)
		mockRepo.AssertExpectations(t)
	})
}

func TestCategoryService_ListCacheInvalidatedOnWrite(t *testing.T) {
	store := newMemoryCache()
	ctx := context.Background()

	mockRepo := new(MockCategoryRepository)
	mockRepo.On("List", mock.Anything, 20, 20).
		Return([]model.Category{{Name: "Pain Relief"}}, nil).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Category")).Return(nil)
	mockRepo.On("List", mock.Anything, 20, 20).
		Return([]model.Category{{Name: "Pain Relief"}, {Name: "Vitamins"}}, nil).Once()

	service := NewCategoryService(mockRepo, store)

	first, err := service.List(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, first, 1)

	// Second read of the same page is served from cache.
	again, err := service.List(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, again, 1)

	_, err = service.Create(ctx, CreateCategoryInput{Name: "Vitamins"})
	assert.NoError(t, err)

	// The write drops every cached page, not only the first one.
	after, err := service.List(ctx, 1, 20)
	assert.NoError(t, err)
	assert.Len(t, after, 2)

	mockRepo.AssertExpectations(t)
}

func TestCategoryService_ListClampsPaging(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	mockRepo.On("List", mock.Anything, 0, 10).Return([]model.Category{}, nil)

	service := NewCategoryService(mockRepo, newMemoryCache())
	_, err := service.List(context.Background(), -1, 0)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
