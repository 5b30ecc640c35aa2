package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/models/dto"
	"github.com/degreedash/degreedash/internal/app/repositories/user"
	"github.com/degreedash/degreedash/internal/app/services"
	"github.com/degreedash/degreedash/internal/middleware"
)

// UserController handles the user directory and alumni network endpoints
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// ListUsers lists users with optional filtering
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param userType query string false "User type filter"
// @Param major query string false "Major filter"
// @Param graduationYear query int false "Graduation year filter"
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	filter := user.ListFilter{
		UserType: models.UserType(ctx.Query("userType")),
		Major:    ctx.Query("major"),
	}
	if year, ok := parseYearQuery(ctx, "graduationYear"); ok {
		filter.GraduationYear = year
	} else {
		return
	}

	users, err := c.userService.ListUsers(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users, Timestamp: time.Now()})
}

// SearchUsers searches the user directory by name, email or major
// @Summary Search users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string true "Keyword"
// @Success 200 {object} dto.APIResponse{data=[]models.UserSearchResult}
// @Router /users/search [get]
func (c *UserController) SearchUsers(ctx *gin.Context) {
	results, err := c.userService.SearchUsers(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: results, Timestamp: time.Now()})
}

// GetCurrentStudents lists the current students
// @Summary List current students
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Router /users/students [get]
func (c *UserController) GetCurrentStudents(ctx *gin.Context) {
	users, err := c.userService.GetCurrentStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users, Timestamp: time.Now()})
}

// GetFaculty lists faculty and staff users
// @Summary List faculty
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Router /users/faculty [get]
func (c *UserController) GetFaculty(ctx *gin.Context) {
	users, err := c.userService.GetFaculty(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: users, Timestamp: time.Now()})
}

// GetUserStats returns user counts grouped by type
// @Summary User statistics
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.UserStats}
// @Router /users/stats [get]
func (c *UserController) GetUserStats(ctx *gin.Context) {
	stats, err := c.userService.GetUserStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}

// GetUserByID retrieves a user by ID
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	found, err := c.userService.GetUserByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: found, Timestamp: time.Now()})
}

// UpdateUserType reclassifies a user
// @Summary Update user type
// @Description Reclassifies a user. Moving a user to alumni may carry a graduation year.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserTypeRequest true "New classification"
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/{id}/type [put]
func (c *UserController) UpdateUserType(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserTypeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	updated, err := c.userService.UpdateUserType(ctx, id, models.UserType(req.UserType), req.GraduationYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: updated, Timestamp: time.Now()})
}

// GetAlumni lists alumni users with optional filtering
// @Summary List alumni
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Param graduationYear query int false "Graduation year filter"
// @Param major query string false "Major filter"
// @Success 200 {object} dto.APIResponse{data=[]models.User}
// @Router /alumni [get]
func (c *UserController) GetAlumni(ctx *gin.Context) {
	filter := user.AlumniFilter{
		Major: ctx.Query("major"),
	}
	if year, ok := parseYearQuery(ctx, "graduationYear"); ok {
		filter.GraduationYear = year
	} else {
		return
	}

	alumni, err := c.userService.GetAlumni(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: alumni, Timestamp: time.Now()})
}

// GetMentors lists alumni offering mentorship
// @Summary List mentors
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.AlumniMember}
// @Router /alumni/mentors [get]
func (c *UserController) GetMentors(ctx *gin.Context) {
	mentors, err := c.userService.GetMentors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: mentors, Timestamp: time.Now()})
}

// GetAlumniStats returns alumni network aggregates
// @Summary Alumni statistics
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AlumniStats}
// @Router /alumni/stats [get]
func (c *UserController) GetAlumniStats(ctx *gin.Context) {
	stats, err := c.userService.GetAlumniStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: stats, Timestamp: time.Now()})
}

// GetAlumniNetwork retrieves the signed-in user's alumni profile
// @Summary Get own alumni profile
// @Tags alumni
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AlumniMember}
// @Failure 404 {object} dto.ErrorResponse "User is not an alumnus"
// @Router /alumni/me [get]
func (c *UserController) GetAlumniNetwork(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	member, err := c.userService.GetAlumniNetwork(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: member, Timestamp: time.Now()})
}

// UpdateAlumniNetwork writes the signed-in user's alumni profile
// @Summary Update own alumni profile
// @Description Creates or replaces the caller's alumni-network profile and reclassifies them as alumni.
// @Tags alumni
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AlumniNetworkRequest true "Profile"
// @Success 200 {object} dto.APIResponse{data=models.AlumniProfile}
// @Failure 404 {object} dto.ErrorResponse
// @Router /alumni/me [put]
func (c *UserController) UpdateAlumniNetwork(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.AlumniNetworkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	profile, err := c.userService.UpdateAlumniNetwork(ctx, userID, &models.AlumniProfile{
		CurrentEmployer:     req.CurrentEmployer,
		JobTitle:            req.JobTitle,
		Industry:            req.Industry,
		Location:            req.Location,
		LinkedinURL:         req.LinkedinURL,
		MentorshipAvailable: req.MentorshipAvailable,
	}, req.GraduationYear)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: profile, Timestamp: time.Now()})
}

// parseYearQuery parses an optional numeric query parameter. The bool
// reports whether the request may proceed; a 400 has been written when
// it is false.
func parseYearQuery(ctx *gin.Context, name string) (*int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter").
			WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &year, true
}
