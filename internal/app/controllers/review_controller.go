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

// ReviewController handles review submission
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// CreateReview submits a course review for the signed-in user
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.APIResponse{data=models.Review}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	review, err := c.reviewService.CreateReview(ctx, &models.Review{
		CourseID:       req.CourseID,
		ProfessorID:    req.ProfessorID,
		UserID:         userID,
		Rating:         req.Rating,
		Difficulty:     req.Difficulty,
		Comment:        req.Comment,
		WouldRecommend: req.WouldRecommend,
		SemesterTaken:  req.SemesterTaken,
		YearTaken:      req.YearTaken,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: review, Timestamp: time.Now()})
}
