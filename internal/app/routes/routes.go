package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/degreedash/degreedash/internal/app/controllers"
	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/models/dto"
	"github.com/degreedash/degreedash/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	courseController *controllers.CourseController,
	professorController *controllers.ProfessorController,
	reviewController *controllers.ReviewController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signin", authController.SignIn)
		auth.POST("/refresh", authController.Refresh)
	}

	// --- Public catalog routes ---
	// The course catalog and professor directory are readable without a
	// token so the landing pages work before sign-in.
	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/search", courseController.SearchCourses)
		courses.GET("/departments", courseController.ListDepartments)
		courses.GET("/stats", courseController.GetCourseStats)
		courses.GET("/code/:code", courseController.GetCourseByCode)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.GET("/:id/reviews", courseController.GetCourseWithReviews)
	}

	professors := v1.Group("/professors")
	{
		professors.GET("", professorController.ListProfessors)
		professors.GET("/:id", professorController.GetProfessorByID)
		professors.GET("/:id/reviews", professorController.GetProfessorReviews)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Profile)

		// Reviews are written by any signed-in user
		authenticated.POST("/reviews", reviewController.CreateReview)

		// Catalog writes are restricted to faculty and staff
		catalogProtected := authenticated.Group("")
		catalogProtected.Use(authMiddleware.UserTypeRequired(
			string(models.UserTypeFaculty), string(models.UserTypeStaff)))
		{
			catalogProtected.POST("/courses", courseController.CreateCourse)
			catalogProtected.PUT("/courses/:id", courseController.UpdateCourse)
			catalogProtected.DELETE("/courses/:id", courseController.DeleteCourse)

			catalogProtected.POST("/professors", professorController.CreateProfessor)
			catalogProtected.POST("/professors/:id/courses", professorController.AssignCourse)
		}

		// User directory
		users := authenticated.Group("/users")
		{
			users.GET("", userController.ListUsers)
			users.GET("/search", userController.SearchUsers)
			users.GET("/students", userController.GetCurrentStudents)
			users.GET("/faculty", userController.GetFaculty)
			users.GET("/stats", userController.GetUserStats)
			users.GET("/:id", userController.GetUserByID)

			// Reclassification is a staff operation
			usersStaffProtected := users.Group("")
			usersStaffProtected.Use(authMiddleware.UserTypeRequired(string(models.UserTypeStaff)))
			{
				usersStaffProtected.PUT("/:id/type", userController.UpdateUserType)
			}
		}

		// Alumni network
		alumni := authenticated.Group("/alumni")
		{
			alumni.GET("", userController.GetAlumni)
			alumni.GET("/mentors", userController.GetMentors)
			alumni.GET("/stats", userController.GetAlumniStats)
			alumni.GET("/me", userController.GetAlumniNetwork)
			alumni.PUT("/me", userController.UpdateAlumniNetwork)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
