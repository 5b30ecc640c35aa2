package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/degreedash/degreedash/internal/app/models"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "degreedash.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{
		ID:       7,
		Email:    "kim@uni.edu",
		UserType: models.UserTypeAlumni,
	}

	token, expiresIn, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "kim@uni.edu" {
		t.Errorf("Email = %q, want kim@uni.edu", claims.Email)
	}
	if claims.UserType != string(models.UserTypeAlumni) {
		t.Errorf("UserType = %q, want alumni", claims.UserType)
	}
	if claims.Issuer != "degreedash.test" {
		t.Errorf("Issuer = %q, want degreedash.test", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("token has no jti")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := testService(-time.Minute)
	token, _, err := svc.GenerateToken(&models.User{ID: 1, Email: "kim@uni.edu"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("ValidateToken() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken(&models.User{ID: 1, Email: "kim@uni.edu"})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	other := NewJWTService(JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "degreedash.test",
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"empty header", "", "", true},
		{"bearer prefix", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bare token", "abc.def.ghi", "abc.def.ghi", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
