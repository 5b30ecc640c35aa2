package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/models/dto"
	"github.com/degreedash/degreedash/internal/app/services"
	"github.com/degreedash/degreedash/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// SignIn signs a user in with a verified Microsoft identity profile
// @Summary Sign in
// @Description Creates the account on first sign-in, records the login on every later one, and issues an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Identity profile"
// @Success 200 {object} dto.APIResponse{data=services.SignInResult}
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/signin [post]
func (c *AuthController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.authService.SignIn(ctx, &models.MicrosoftProfile{
		ID:          req.ID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
		AvatarURL:   req.AvatarURL,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result, Timestamp: time.Now()})
}

// Refresh exchanges a refresh token for a new session
// @Summary Refresh session
// @Description Revokes the presented refresh token and issues a new token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=services.SignInResult}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.authService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: result, Timestamp: time.Now()})
}

// Profile returns the signed-in user's account
// @Summary Get own profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	account, err := c.authService.Profile(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: account, Timestamp: time.Now()})
}
