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

// CreateProfessorResult reports the outcome of a professor create. ID is 0
// when the (name, department) pair already existed and nothing was inserted.
type CreateProfessorResult struct {
	ID      int64 `json:"id"`
	Created bool  `json:"created"`
}

// ProfessorService defines the interface for professor operations
type ProfessorService interface {
	ListProfessors(ctx context.Context, filter repositories.ProfessorFilter) ([]models.Professor, error)
	GetProfessorByID(ctx context.Context, id int64) (*models.ProfessorWithCourses, error)
	GetProfessorReviews(ctx context.Context, id int64) ([]models.ReviewWithContext, error)
	CreateProfessor(ctx context.Context, professor *models.Professor) (*CreateProfessorResult, error)
	AssignCourse(ctx context.Context, professorID, courseID int64, role string) error
}

// professorStore is the repository surface the professor service needs.
type professorStore interface {
	List(ctx context.Context, filter repositories.ProfessorFilter) ([]models.Professor, error)
	GetByID(ctx context.Context, id int64) (*models.ProfessorWithCourses, error)
	GetReviews(ctx context.Context, id int64) ([]models.ReviewWithContext, error)
	Create(ctx context.Context, professor *models.Professor) (int64, bool, error)
	AssignCourse(ctx context.Context, professorID, courseID int64, role string) error
}

// professorServiceImpl implements ProfessorService
type professorServiceImpl struct {
	professors professorStore
	logger     zerolog.Logger
}

// NewProfessorService creates a new ProfessorService
func NewProfessorService(professors professorStore, logger zerolog.Logger) ProfessorService {
	return &professorServiceImpl{
		professors: professors,
		logger:     logger,
	}
}

// ListProfessors retrieves professors matching the filter
func (s *professorServiceImpl) ListProfessors(ctx context.Context, filter repositories.ProfessorFilter) ([]models.Professor, error) {
	professors, err := s.professors.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}
	return professors, nil
}

// GetProfessorByID retrieves a professor with their course assignments
func (s *professorServiceImpl) GetProfessorByID(ctx context.Context, id int64) (*models.ProfessorWithCourses, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	return professor, nil
}

// GetProfessorReviews retrieves a professor's reviews, newest first
func (s *professorServiceImpl) GetProfessorReviews(ctx context.Context, id int64) ([]models.ReviewWithContext, error) {
	reviews, err := s.professors.GetReviews(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor reviews: %w", err)
	}
	return reviews, nil
}

// CreateProfessor creates a professor. A duplicate (name, department) pair
// is a silent no-op, not an error.
func (s *professorServiceImpl) CreateProfessor(ctx context.Context, professor *models.Professor) (*CreateProfessorResult, error) {
	if professor == nil || strings.TrimSpace(professor.Name) == "" {
		return nil, apperrors.NewValidationError("professor name is required")
	}

	id, created, err := s.professors.Create(ctx, professor)
	if err != nil {
		return nil, fmt.Errorf("error creating professor: %w", err)
	}

	if created {
		s.logger.Info().Str("name", professor.Name).Str("department", professor.Department).Msg("Professor created")
	}

	return &CreateProfessorResult{ID: id, Created: created}, nil
}

// AssignCourse links a professor to a course with a role
func (s *professorServiceImpl) AssignCourse(ctx context.Context, professorID, courseID int64, role string) error {
	if professorID <= 0 || courseID <= 0 {
		return apperrors.NewValidationError("professor and course ids are required")
	}
	return s.professors.AssignCourse(ctx, professorID, courseID, role)
}
