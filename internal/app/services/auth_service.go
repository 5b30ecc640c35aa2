package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
	"github.com/degreedash/degreedash/internal/pkg/auth"
)

// SignInResult carries the resolved user and the session token pair issued
// after a successful Microsoft sign-in.
type SignInResult struct {
	User             *models.User `json:"user"`
	AccessToken      string       `json:"accessToken"`
	ExpiresIn        int          `json:"expiresIn"`
	RefreshToken     string       `json:"refreshToken"`
	RefreshExpiresIn int          `json:"refreshExpiresIn"`
}

// AuthService exchanges a verified Microsoft identity profile for a
// session. Protocol details of the identity flow live outside this core.
type AuthService interface {
	SignIn(ctx context.Context, profile *models.MicrosoftProfile) (*SignInResult, error)
	Refresh(ctx context.Context, refreshToken string) (*SignInResult, error)
	Profile(ctx context.Context, userID int64) (*models.User, error)
}

// identityStore is the repository surface the auth service needs.
type identityStore interface {
	FindOrCreateFromIdentity(ctx context.Context, profile *models.MicrosoftProfile, userType models.UserType) (*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
}

// refreshTokenStore persists opaque refresh tokens.
type refreshTokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	GetTokenUser(ctx context.Context, token string) (int64, error)
	RevokeToken(ctx context.Context, token string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	users         identityStore
	refreshTokens refreshTokenStore
	tokens        *auth.JWTService
	logger        zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users identityStore, refreshTokens refreshTokenStore, tokens *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:         users,
		refreshTokens: refreshTokens,
		tokens:        tokens,
		logger:        logger,
	}
}

// SignIn resolves the Microsoft profile to a user (creating one on first
// sign-in, advancing last_login otherwise) and issues a token pair.
func (s *authServiceImpl) SignIn(ctx context.Context, profile *models.MicrosoftProfile) (*SignInResult, error) {
	if profile == nil || strings.TrimSpace(profile.ID) == "" {
		return nil, apperrors.NewValidationError("microsoft identity is required")
	}
	if strings.TrimSpace(profile.Email) == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	user, err := s.users.FindOrCreateFromIdentity(ctx, profile, models.UserTypeCurrent)
	if err != nil {
		return nil, fmt.Errorf("error resolving identity: %w", err)
	}

	result, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Str("userType", string(user.UserType)).Msg("User signed in")
	return result, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// token pair is issued for its user.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*SignInResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, apperrors.ErrTokenInvalid
	}

	userID, err := s.refreshTokens.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrTokenInvalid
	}

	if err := s.refreshTokens.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	result, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Int64("userId", user.ID).Msg("Session refreshed")
	return result, nil
}

// issueSession generates and persists a fresh token pair for the user.
func (s *authServiceImpl) issueSession(ctx context.Context, user *models.User) (*SignInResult, error) {
	accessToken, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("error issuing session token: %w", err)
	}

	refreshToken, refreshExpiresIn := s.tokens.GenerateRefreshToken()
	if err := s.refreshTokens.CreateToken(ctx, refreshToken, user.ID, s.tokens.RefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}

	return &SignInResult{
		User:             user,
		AccessToken:      accessToken,
		ExpiresIn:        expiresIn,
		RefreshToken:     refreshToken,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

// Profile retrieves the signed-in user's record.
func (s *authServiceImpl) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}
