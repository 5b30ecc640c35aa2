package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/models/dto"
	"github.com/degreedash/degreedash/internal/app/repositories"
	"github.com/degreedash/degreedash/internal/app/services"
	"github.com/degreedash/degreedash/internal/middleware"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// ListCourses lists courses with optional filtering
// @Summary List courses
// @Description Lists courses, optionally filtered by department and a search term matching code, name or description
// @Tags courses
// @Produce json
// @Param department query string false "Department filter, 'all' for no filter"
// @Param search query string false "Search term"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := repositories.CourseFilter{
		Department: ctx.Query("department"),
		SearchTerm: ctx.Query("search"),
	}

	courses, err := c.courseService.ListCourses(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses, Timestamp: time.Now()})
}

// SearchCourses searches courses by keyword
// @Summary Search courses
// @Tags courses
// @Produce json
// @Param q query string true "Keyword"
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Router /courses/search [get]
func (c *CourseController) SearchCourses(ctx *gin.Context) {
	courses, err := c.courseService.SearchCourses(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: courses, Timestamp: time.Now()})
}

// ListDepartments lists the distinct department names
// @Summary List departments
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /courses/departments [get]
func (c *CourseController) ListDepartments(ctx *gin.Context) {
	departments, err := c.courseService.ListDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: departments, Timestamp: time.Now()})
}

// GetCourseStats returns catalog-wide counters
// @Summary Course statistics
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.CourseStats}
// @Router /courses/stats [get]
func (c *CourseController) GetCourseStats(ctx *gin.Context) {
	stats, err := c.courseService.GetCourseStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// GetCourseByCode retrieves a course by its unique code
// @Summary Get course by code
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/code/{code} [get]
func (c *CourseController) GetCourseByCode(ctx *gin.Context) {
	course, err := c.courseService.GetCourseByCode(ctx, ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// GetCourseWithReviews retrieves a course with its reviews and aggregates
// @Summary Get course reviews
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=models.CourseWithReviews}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id}/reviews [get]
func (c *CourseController) GetCourseWithReviews(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseWithReviews(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// CreateCourse creates a course
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course"
// @Success 201 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.ErrorResponse
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx, &models.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Department:  req.Department,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// UpdateCourse replaces all mutable fields of a course
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course"
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 404 {object} dto.ErrorResponse
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, &models.Course{
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		Department:  req.Department,
		Description: req.Description,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: course, Timestamp: time.Now()})
}

// DeleteCourse removes a course without reviews
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.DeleteResponse}
// @Failure 409 {object} dto.ErrorResponse "Course has reviews"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	deleted, err := c.courseService.DeleteCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.DeleteResponse{Deleted: deleted}, Timestamp: time.Now()})
}

// parseIDParam parses a numeric path parameter, answering 400 on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
