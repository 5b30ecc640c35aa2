package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/repositories"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]models.Course, error)
	SearchCourses(ctx context.Context, keyword string) ([]models.Course, error)
	GetCoursesByDepartment(ctx context.Context, department string) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByCode(ctx context.Context, code string) (*models.Course, error)
	CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, course *models.Course) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) (bool, error)
	ListDepartments(ctx context.Context) ([]string, error)
	GetCourseStats(ctx context.Context) (*models.CourseStats, error)
	GetCourseWithReviews(ctx context.Context, id int64) (*models.CourseWithReviews, error)
}

// courseStore is the repository surface the course service needs.
type courseStore interface {
	List(ctx context.Context, filter repositories.CourseFilter) ([]models.Course, error)
	Search(ctx context.Context, keyword string) ([]models.Course, error)
	FindByDepartment(ctx context.Context, department string) ([]models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) (*models.Course, error)
	Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ListDepartments(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context) (*models.CourseStats, error)
	GetWithReviews(ctx context.Context, id int64) (*models.CourseWithReviews, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	courses courseStore
	logger  zerolog.Logger
}

// NewCourseService creates a new CourseService
func NewCourseService(courses courseStore, logger zerolog.Logger) CourseService {
	return &courseServiceImpl{
		courses: courses,
		logger:  logger,
	}
}

// validateCourse checks the required course fields before a write.
func validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course payload is required")
	}
	if strings.TrimSpace(course.CourseCode) == "" ||
		strings.TrimSpace(course.CourseName) == "" ||
		strings.TrimSpace(course.Department) == "" {
		return apperrors.NewValidationError("course_code, course_name and department are required")
	}
	return nil
}

// ListCourses retrieves courses matching the filter, ordered by course code
func (s *courseServiceImpl) ListCourses(ctx context.Context, filter repositories.CourseFilter) ([]models.Course, error) {
	courses, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	return courses, nil
}

// SearchCourses retrieves courses matching the keyword
func (s *courseServiceImpl) SearchCourses(ctx context.Context, keyword string) ([]models.Course, error) {
	courses, err := s.courses.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	return courses, nil
}

// GetCoursesByDepartment retrieves one department's courses
func (s *courseServiceImpl) GetCoursesByDepartment(ctx context.Context, department string) ([]models.Course, error) {
	if strings.TrimSpace(department) == "" {
		return nil, apperrors.NewValidationError("department is required")
	}

	courses, err := s.courses.FindByDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("error listing department courses: %w", err)
	}
	return courses, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// GetCourseByCode retrieves a course by its unique code
func (s *courseServiceImpl) GetCourseByCode(ctx context.Context, code string) (*models.Course, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// CreateCourse validates and creates a course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	s.logger.Info().Str("courseCode", created.CourseCode).Int64("id", created.ID).Msg("Course created")
	return created, nil
}

// UpdateCourse replaces all mutable fields of a course. Callers must
// supply the complete field set; this is not a partial patch.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, course *models.Course) (*models.Course, error) {
	if err := validateCourse(course); err != nil {
		return nil, err
	}

	updated, err := s.courses.Update(ctx, id, course)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteCourse removes a course unless reviews still reference it
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.courses.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info().Int64("id", id).Msg("Course deleted")
	}
	return deleted, nil
}

// ListDepartments retrieves the distinct department names
func (s *courseServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.courses.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	return departments, nil
}

// GetCourseStats returns catalog-wide course counters
func (s *courseServiceImpl) GetCourseStats(ctx context.Context) (*models.CourseStats, error) {
	stats, err := s.courses.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course stats: %w", err)
	}
	return stats, nil
}

// GetCourseWithReviews retrieves a course with its reviews and aggregates
func (s *courseServiceImpl) GetCourseWithReviews(ctx context.Context, id int64) (*models.CourseWithReviews, error) {
	course, err := s.courses.GetWithReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course reviews: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}
