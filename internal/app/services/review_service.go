package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

// Rating and difficulty bounds. The source of record accepted any numeric
// input here; reviews outside 1..5 are rejected.
const (
	MinRating = 1
	MaxRating = 5
)

// ReviewService defines the interface for review operations. Reviews are
// immutable once created.
type ReviewService interface {
	CreateReview(ctx context.Context, review *models.Review) (*models.Review, error)
}

// reviewStore is the repository surface the review service needs.
type reviewStore interface {
	Create(ctx context.Context, review *models.Review) error
}

// reviewCourseStore resolves the course a review points at.
type reviewCourseStore interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

// reviewServiceImpl implements ReviewService
type reviewServiceImpl struct {
	reviews reviewStore
	courses reviewCourseStore
	logger  zerolog.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviews reviewStore, courses reviewCourseStore, logger zerolog.Logger) ReviewService {
	return &reviewServiceImpl{
		reviews: reviews,
		courses: courses,
		logger:  logger,
	}
}

// validateReview checks the review payload before insert.
func validateReview(review *models.Review) error {
	if review == nil {
		return apperrors.NewValidationError("review payload is required")
	}
	if review.CourseID <= 0 {
		return apperrors.NewValidationError("review must reference a course")
	}
	if review.UserID <= 0 {
		return apperrors.NewValidationError("review must reference its author")
	}
	if review.Rating < MinRating || review.Rating > MaxRating {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if review.Difficulty < MinRating || review.Difficulty > MaxRating {
		return apperrors.NewValidationError("difficulty must be between 1 and 5")
	}
	if strings.TrimSpace(review.SemesterTaken) == "" {
		return apperrors.NewValidationError("semester_taken is required")
	}
	if review.YearTaken <= 0 {
		return apperrors.NewValidationError("year_taken is required")
	}
	return nil
}

// CreateReview validates and stores a review.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if err := validateReview(review); err != nil {
		return nil, err
	}

	course, err := s.courses.GetByID(ctx, review.CourseID)
	if err != nil {
		return nil, fmt.Errorf("error resolving reviewed course: %w", err)
	}
	if course == nil {
		return nil, apperrors.ErrCourseNotFound
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", review.CourseID).Int("rating", review.Rating).Msg("Review created")
	return review, nil
}
