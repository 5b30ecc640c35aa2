package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation failure", apperrors.NewValidationError("rating must be between 1 and 5"), http.StatusBadRequest},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"conflict", apperrors.NewConflictError("cannot delete course with existing reviews"), http.StatusConflict},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"professor not found", apperrors.ErrProfessorNotFound, http.StatusNotFound},
		{"user not found", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"not an alumni", apperrors.ErrUserNotAlumni, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading course: %w", apperrors.ErrCourseNotFound), http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"unexpected error", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.wantStatus {
				t.Errorf("HandleAPIError(%v) status = %d, want %d", tt.err, recorder.Code, tt.wantStatus)
			}
		})
	}
}
