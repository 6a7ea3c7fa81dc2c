package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chronohr/timekeeping-backend-go/internal/domain/auth"
	"github.com/chronohr/timekeeping-backend-go/internal/domain/user"
	"github.com/chronohr/timekeeping-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	usr, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.EmployeeID, usr.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (auth.AccessTokenResponse, error) {
	userID, err := s.validateRefreshToken(refreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, usr.EmployeeID, usr.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExpiresAt,
	}, nil
}

func (s *AuthServiceImpl) Logout(_ context.Context, refreshToken string) error {
	if _, err := s.validateRefreshToken(refreshToken); err != nil {
		return err
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// validateRefreshToken decodes and verifies a refresh token, returning the
// user ID it was issued for.
func (s *AuthServiceImpl) validateRefreshToken(refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", auth.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return "", auth.ErrRefreshTokenRevoked
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "refresh" {
		return "", auth.ErrInvalidToken
	}

	if token.Expiration().Before(time.Now()) {
		return "", auth.ErrTokenExpired
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}
