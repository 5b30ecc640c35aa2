package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/models/dto"
	"github.com/degreedash/degreedash/internal/app/repositories"
	"github.com/degreedash/degreedash/internal/app/services"
	"github.com/degreedash/degreedash/internal/middleware"
)

// ProfessorController handles professor-related endpoints
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// ListProfessors lists professors with optional filtering
// @Summary List professors
// @Tags professors
// @Produce json
// @Param search query string false "Name filter"
// @Param department query string false "Department filter"
// @Success 200 {object} dto.APIResponse{data=[]models.Professor}
// @Router /professors [get]
func (c *ProfessorController) ListProfessors(ctx *gin.Context) {
	filter := repositories.ProfessorFilter{
		Search:     ctx.Query("search"),
		Department: ctx.Query("department"),
	}

	professors, err := c.professorService.ListProfessors(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: professors, Timestamp: time.Now()})
}

// GetProfessorByID retrieves a professor along with their course assignments
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=models.ProfessorWithCourses}
// @Failure 404 {object} dto.ErrorResponse
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessorByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: professor, Timestamp: time.Now()})
}

// GetProfessorReviews lists the reviews naming a professor, newest first
// @Summary Get professor reviews
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=[]models.ReviewWithContext}
// @Failure 404 {object} dto.ErrorResponse
// @Router /professors/{id}/reviews [get]
func (c *ProfessorController) GetProfessorReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	reviews, err := c.professorService.GetProfessorReviews(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: reviews, Timestamp: time.Now()})
}

// CreateProfessor creates a professor if absent
// @Summary Create professor
// @Description Creates a professor. The call is idempotent on (name, department); repeating it reports created=false.
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProfessorRequest true "Professor"
// @Success 201 {object} dto.APIResponse{data=services.CreateProfessorResult}
// @Failure 400 {object} dto.ErrorResponse
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	result, err := c.professorService.CreateProfessor(ctx, &models.Professor{
		Name:       req.Name,
		Department: req.Department,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.APIResponse{Data: result, Timestamp: time.Now()})
}

// AssignCourse links a professor to a course
// @Summary Assign professor to course
// @Tags professors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Professor ID"
// @Param request body dto.AssignCourseRequest true "Assignment"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /professors/{id}/courses [post]
func (c *ProfessorController) AssignCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.professorService.AssignCourse(ctx, id, req.CourseID, req.Role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: gin.H{"assigned": true}, Timestamp: time.Now()})
}
