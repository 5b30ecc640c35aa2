package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/auth"
)

func testRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(jwtService)
	router := gin.New()

	protected := router.Group("", m.JWTAuth())
	protected.GET("/whoami", func(c *gin.Context) {
		id, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	staffOnly := protected.Group("", m.UserTypeRequired(string(models.UserTypeStaff)))
	staffOnly.GET("/staff", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func issueToken(t *testing.T, jwtService *auth.JWTService, userType models.UserType) string {
	t.Helper()
	token, _, err := jwtService.GenerateToken(&models.User{
		ID:       7,
		Email:    "kim@uni.edu",
		UserType: userType,
	})
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "degreedash.test",
	})
	router := testRouter(t, jwtService)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"valid token", "Bearer " + issueToken(t, jwtService, models.UserTypeCurrent), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

func TestUserTypeRequired(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "degreedash.test",
	})
	router := testRouter(t, jwtService)

	tests := []struct {
		name       string
		userType   models.UserType
		wantStatus int
	}{
		{"staff allowed", models.UserTypeStaff, http.StatusOK},
		{"student refused", models.UserTypeCurrent, http.StatusForbidden},
		{"faculty refused", models.UserTypeFaculty, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/staff", nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, jwtService, tt.userType))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}
