package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
	"github.com/degreedash/degreedash/internal/pkg/auth"
)

// fakeIdentityStore resolves identities the way the upsert does: one
// account per Microsoft id, created on first sight.
type fakeIdentityStore struct {
	byMicrosoftID map[string]*models.User
	nextID        int64
}

func newFakeIdentityStore() *fakeIdentityStore {
	return &fakeIdentityStore{byMicrosoftID: map[string]*models.User{}, nextID: 1}
}

func (f *fakeIdentityStore) FindOrCreateFromIdentity(_ context.Context, profile *models.MicrosoftProfile, userType models.UserType) (*models.User, error) {
	if existing, ok := f.byMicrosoftID[profile.ID]; ok {
		existing.LastLogin = time.Now()
		return existing, nil
	}
	created := &models.User{
		ID:          f.nextID,
		MicrosoftID: profile.ID,
		Email:       profile.Email,
		Name:        profile.DisplayName,
		UserType:    userType,
		LastLogin:   time.Now(),
	}
	f.nextID++
	f.byMicrosoftID[profile.ID] = created
	return created, nil
}

func (f *fakeIdentityStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.byMicrosoftID {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type storedToken struct {
	userID  int64
	expiry  time.Time
	revoked bool
}

// fakeTokenStore mirrors the refresh_tokens table contract: unique opaque
// tokens, revocation flag, expiry check on lookup.
type fakeTokenStore struct {
	tokens map[string]*storedToken
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{tokens: map[string]*storedToken{}}
}

func (f *fakeTokenStore) CreateToken(_ context.Context, token string, userID int64, expiryDate time.Time) error {
	if _, ok := f.tokens[token]; ok {
		return apperrors.ErrTokenInvalid
	}
	f.tokens[token] = &storedToken{userID: userID, expiry: expiryDate}
	return nil
}

func (f *fakeTokenStore) GetTokenUser(_ context.Context, token string) (int64, error) {
	stored, ok := f.tokens[token]
	if !ok || stored.revoked {
		return 0, apperrors.ErrTokenInvalid
	}
	if stored.expiry.Before(time.Now()) {
		return 0, apperrors.ErrTokenExpired
	}
	return stored.userID, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, token string) error {
	stored, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenInvalid
	}
	stored.revoked = true
	return nil
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "degreedash.test",
	})
}

func TestSignInValidation(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.MicrosoftProfile
	}{
		{"nil profile", nil},
		{"missing id", &models.MicrosoftProfile{Email: "kim@uni.edu"}},
		{"missing email", &models.MicrosoftProfile{ID: "ms-123"}},
	}

	svc := NewAuthService(newFakeIdentityStore(), newFakeTokenStore(), newTestJWTService(), zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignIn(context.Background(), tt.profile)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("SignIn() error = %v, want validation failure", err)
			}
		})
	}
}

func TestSignInIssuesValidTokenPair(t *testing.T) {
	tokens := newTestJWTService()
	tokenStore := newFakeTokenStore()
	svc := NewAuthService(newFakeIdentityStore(), tokenStore, tokens, zerolog.Nop())

	result, err := svc.SignIn(context.Background(), &models.MicrosoftProfile{
		ID:          "ms-123",
		Email:       "kim@uni.edu",
		DisplayName: "Kim Park",
	})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	if result.User.UserType != models.UserTypeCurrent {
		t.Errorf("new user type = %q, want current", result.User.UserType)
	}
	if result.ExpiresIn != int(time.Hour.Seconds()) {
		t.Errorf("ExpiresIn = %d, want %d", result.ExpiresIn, int(time.Hour.Seconds()))
	}
	if result.RefreshExpiresIn != int((24 * time.Hour).Seconds()) {
		t.Errorf("RefreshExpiresIn = %d, want %d", result.RefreshExpiresIn, int((24*time.Hour).Seconds()))
	}

	claims, err := tokens.ValidateToken(result.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("token UserID = %d, want %d", claims.UserID, result.User.ID)
	}
	if claims.Email != "kim@uni.edu" {
		t.Errorf("token Email = %q, want kim@uni.edu", claims.Email)
	}

	userID, err := tokenStore.GetTokenUser(context.Background(), result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh token not stored: %v", err)
	}
	if userID != result.User.ID {
		t.Errorf("refresh token userID = %d, want %d", userID, result.User.ID)
	}
}

func TestSignInReusesExistingAccount(t *testing.T) {
	store := newFakeIdentityStore()
	svc := NewAuthService(store, newFakeTokenStore(), newTestJWTService(), zerolog.Nop())
	profile := &models.MicrosoftProfile{ID: "ms-123", Email: "kim@uni.edu", DisplayName: "Kim Park"}

	first, err := svc.SignIn(context.Background(), profile)
	if err != nil {
		t.Fatalf("first SignIn() error = %v", err)
	}
	second, err := svc.SignIn(context.Background(), profile)
	if err != nil {
		t.Fatalf("second SignIn() error = %v", err)
	}

	if first.User.ID != second.User.ID {
		t.Errorf("repeated sign-in produced distinct accounts: %d and %d", first.User.ID, second.User.ID)
	}
	if len(store.byMicrosoftID) != 1 {
		t.Errorf("stored %d accounts, want 1", len(store.byMicrosoftID))
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	tokenStore := newFakeTokenStore()
	svc := NewAuthService(newFakeIdentityStore(), tokenStore, newTestJWTService(), zerolog.Nop())

	signedIn, err := svc.SignIn(context.Background(), &models.MicrosoftProfile{
		ID: "ms-123", Email: "kim@uni.edu", DisplayName: "Kim Park",
	})
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	refreshed, err := svc.Refresh(context.Background(), signedIn.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if refreshed.User.ID != signedIn.User.ID {
		t.Errorf("refreshed user = %d, want %d", refreshed.User.ID, signedIn.User.ID)
	}
	if refreshed.RefreshToken == signedIn.RefreshToken {
		t.Error("refresh did not rotate the token")
	}

	// The presented token is revoked; replaying it must fail.
	if _, err := svc.Refresh(context.Background(), signedIn.RefreshToken); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("replayed Refresh() error = %v, want ErrTokenInvalid", err)
	}
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	svc := NewAuthService(newFakeIdentityStore(), newFakeTokenStore(), newTestJWTService(), zerolog.Nop())

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"unknown", "never-issued"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Refresh(context.Background(), tt.token); !errors.Is(err, apperrors.ErrTokenInvalid) {
				t.Errorf("Refresh() error = %v, want ErrTokenInvalid", err)
			}
		})
	}
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	tokenStore := newFakeTokenStore()
	tokenStore.tokens["stale"] = &storedToken{userID: 1, expiry: time.Now().Add(-time.Minute)}
	svc := NewAuthService(newFakeIdentityStore(), tokenStore, newTestJWTService(), zerolog.Nop())

	if _, err := svc.Refresh(context.Background(), "stale"); !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("Refresh() error = %v, want ErrTokenExpired", err)
	}
}

func TestProfileNotFound(t *testing.T) {
	svc := NewAuthService(newFakeIdentityStore(), newFakeTokenStore(), newTestJWTService(), zerolog.Nop())

	_, err := svc.Profile(context.Background(), 404)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("Profile() error = %v, want ErrUserNotFound", err)
	}
}
