package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"medstore/internal/auth"
	apperrors "medstore/internal/errors"
	"medstore/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID, username string, roles []string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, username, roles, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (string, []string, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).([]string), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func newTestHasher() *auth.PasswordHasher {
	return auth.NewPasswordHasher(0)
}

func TestAuthService_Login(t *testing.T) {
	hasher := newTestHasher()
	digest, err := hasher.Hash("password123")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					Username:     "alice",
					PasswordHash: digest,
					Roles:        "ADMIN,USER",
				}, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, "alice", []string{"ADMIN", "USER"}, mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "alice").Return(&model.User{
					Username:     "alice",
					PasswordHash: digest,
				}, nil)
			},
			expectedError: apperrors.ErrAuthenticationFailed,
		},
		{
			name:     "unknown username fails identically",
			username: "nobody",
			password: "password123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret", 15*time.Minute)
			service := NewAuthService(mockRepo, hasher, jwtService, mockTokenStore)

			result, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				assert.Equal(t, 900, result.ExpiresIn)
				assert.Equal(t, "Bearer", result.TokenType)

				// The issued token must carry the user's identity and roles.
				claims, err := jwtService.ValidateToken(result.AccessToken)
				assert.NoError(t, err)
				assert.Equal(t, "alice", claims.Subject)
				assert.Equal(t, []string{"ADMIN", "USER"}, claims.Roles)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_Refresh(t *testing.T) {
	hasher := newTestHasher()
	jwtService := auth.NewJWTService("test-secret", 15*time.Minute)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("alice", []string{"USER"})
	assert.NoError(t, err)

	t.Run("valid refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return("alice", []string{"USER"}, nil)

		service := NewAuthService(mockRepo, hasher, jwtService, mockTokenStore)
		result, err := service.Refresh(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.Equal(t, 900, result.ExpiresIn)
		assert.Equal(t, "Bearer", result.TokenType)
		claims, err := jwtService.ValidateToken(result.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("revoked refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return("", nil, assert.AnError)

		service := NewAuthService(mockRepo, hasher, jwtService, mockTokenStore)
		_, err := service.Refresh(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockTokenStore := new(MockTokenStore)

		accessToken, err := jwtService.GenerateAccessToken("alice", []string{"USER"})
		assert.NoError(t, err)

		service := NewAuthService(mockRepo, hasher, jwtService, mockTokenStore)
		_, err = service.Refresh(context.Background(), accessToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	hasher := newTestHasher()
	jwtService := auth.NewJWTService("test-secret", 15*time.Minute)

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken("alice", []string{"USER"})
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	service := NewAuthService(mockRepo, hasher, jwtService, mockTokenStore)
	assert.NoError(t, service.Logout(context.Background(), refreshToken))
	mockTokenStore.AssertExpectations(t)
}
