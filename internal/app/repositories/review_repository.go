package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
	"github.com/degreedash/degreedash/internal/pkg/dberrors"
)

// ReviewRepository handles database operations for reviews. Reviews are
// immutable once created, so there is no update or delete path.
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

// Create inserts a review and fills in the generated id and creation time.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO reviews (course_id, professor_id, user_id, rating, difficulty,
		                     comment, would_recommend, semester_taken, year_taken)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		review.CourseID, review.ProfessorID, review.UserID, review.Rating, review.Difficulty,
		review.Comment, review.WouldRecommend, review.SemesterTaken, review.YearTaken).
		Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("reviewed course, professor or user does not exist")
		}
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

// GetByID retrieves a review by ID. Returns nil when the review is absent.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	err := r.db.QueryRow(ctx, `
		SELECT id, course_id, professor_id, user_id, rating, difficulty,
		       comment, would_recommend, semester_taken, year_taken, created_at
		FROM reviews
		WHERE id = $1`, id).Scan(
		&review.ID,
		&review.CourseID,
		&review.ProfessorID,
		&review.UserID,
		&review.Rating,
		&review.Difficulty,
		&review.Comment,
		&review.WouldRecommend,
		&review.SemesterTaken,
		&review.YearTaken,
		&review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving review: %w", err)
	}

	return &review, nil
}

// CountByCourse counts the reviews referencing a course.
func (r *ReviewRepository) CountByCourse(ctx context.Context, courseID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE course_id = $1`, courseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting course reviews: %w", err)
	}

	return count, nil
}
