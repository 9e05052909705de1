package service

import (
	"context"
	"time"

	"medstore/internal/auth"
	apperrors "medstore/internal/errors"
	"medstore/internal/metrics"
	"medstore/internal/repository"
)

// LoginResult carries everything the login endpoint returns to the client.
type LoginResult struct {
	AccessToken  string
	ExpiresIn    int
	RefreshToken string
	TokenType    string
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     *auth.PasswordHasher
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login authenticates a user and issues access and refresh tokens.
//
// Unknown usernames and wrong passwords fail with the same error, and the
// unknown-username path still pays for one bcrypt comparison, so neither
// the response nor its timing reveals which usernames exist.
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	start := time.Now()
	defer func() { metrics.LoginDuration.Observe(time.Since(start).Seconds()) }()

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		s.hasher.VerifyDummy(password)
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrAuthenticationFailed
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrAuthenticationFailed
	}

	roles := user.RoleList()
	accessToken, err := s.jwtService.GenerateAccessToken(user.Username, roles)
	if err != nil {
		return nil, err
	}

	tokenID, refreshToken, err := s.jwtService.GenerateRefreshToken(user.Username, roles)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.Username, roles, auth.RefreshTokenExpiry); err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &LoginResult{
		AccessToken:  accessToken,
		ExpiresIn:    int(s.jwtService.AccessTokenTTL() / time.Second),
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}, nil
}

// Refresh validates a refresh token against its Redis record and issues a
// new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.ID == "" {
		return nil, apperrors.ErrInvalidToken
	}

	username, roles, err := s.tokenStore.GetRefreshToken(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if username != claims.Subject {
		return nil, apperrors.ErrInvalidToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(username, roles)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken: accessToken,
		ExpiresIn:   int(s.jwtService.AccessTokenTTL() / time.Second),
		TokenType:   "Bearer",
	}, nil
}

// Logout revokes a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.jwtService.ExtractTokenID(refreshToken)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}
