package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
	"github.com/degreedash/degreedash/internal/pkg/dberrors"
	"github.com/degreedash/degreedash/internal/pkg/helpers"
)

// CourseFilter holds the optional filters for listing courses.
// Department "all" is equivalent to no department filter, and a search
// term that is empty after trimming is ignored.
type CourseFilter struct {
	Department string
	SearchTerm string
}

// CourseRepository handles database operations for courses.
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

const courseColumns = "id, course_code, course_name, department, description, created_at"

// selectCoursesQuery is the base builder every filtered course listing
// starts from.
func selectCoursesQuery() squirrel.SelectBuilder {
	return squirrel.Select("id", "course_code", "course_name", "department", "description", "created_at").
		From("courses").
		OrderBy("course_code ASC").
		PlaceholderFormat(squirrel.Dollar)
}

// searchPredicate matches the keyword as a case-insensitive substring of
// the course code, name or description.
func searchPredicate(pattern string) squirrel.Sqlizer {
	return squirrel.Or{
		squirrel.ILike{"course_code": pattern},
		squirrel.ILike{"course_name": pattern},
		squirrel.ILike{"description": pattern},
	}
}

// List retrieves courses matching the filter, ordered by course code.
func (r *CourseRepository) List(ctx context.Context, filter CourseFilter) ([]models.Course, error) {
	builder := selectCoursesQuery()

	if dept := strings.TrimSpace(filter.Department); dept != "" && dept != "all" {
		builder = builder.Where(squirrel.Eq{"department": dept})
	}

	if pattern := helpers.SearchPattern(filter.SearchTerm); pattern != "" {
		builder = builder.Where(searchPredicate(pattern))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course query: %w", err)
	}

	return r.queryCourses(ctx, query, args...)
}

// Search retrieves courses whose code, name or description contains the
// keyword, case-insensitively.
func (r *CourseRepository) Search(ctx context.Context, keyword string) ([]models.Course, error) {
	pattern := helpers.SearchPattern(keyword)
	if pattern == "" {
		pattern = "%%"
	}

	query, args, err := selectCoursesQuery().Where(searchPredicate(pattern)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building course search query: %w", err)
	}

	return r.queryCourses(ctx, query, args...)
}

// FindByDepartment retrieves all courses of one department, ordered by
// course code.
func (r *CourseRepository) FindByDepartment(ctx context.Context, department string) ([]models.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE department = $1
		ORDER BY course_code ASC
	`

	return r.queryCourses(ctx, query, department)
}

func (r *CourseRepository) queryCourses(ctx context.Context, query string, args ...interface{}) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.CourseCode,
			&course.CourseName,
			&course.Department,
			&course.Description,
			&course.CreatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course by ID. Returns nil when the course is absent.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getOne(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
}

// GetByCode retrieves a course by its unique course code. Returns nil when
// the course is absent.
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	return r.getOne(ctx, `SELECT `+courseColumns+` FROM courses WHERE course_code = $1`, code)
}

func (r *CourseRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Course, error) {
	var course models.Course
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&course.ID,
		&course.CourseCode,
		&course.CourseName,
		&course.Department,
		&course.Description,
		&course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// Create inserts a new course and returns the freshly created row,
// re-read by its generated id.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO courses (course_code, course_name, department, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		course.CourseCode, course.CourseName, course.Department, course.Description).Scan(&id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("course with this code already exists")
		}
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// Update replaces all four mutable fields of a course. Omitted fields are
// written as given, so callers must supply the complete set.
func (r *CourseRepository) Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error) {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE courses
		SET course_code = $1, course_name = $2, department = $3, description = $4
		WHERE id = $5`,
		course.CourseCode, course.CourseName, course.Department, course.Description, id)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("course with this code already exists")
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return nil, apperrors.ErrCourseNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete removes a course. The delete is refused while any review still
// references the course; the foreign key is a backstop, the guard here is
// what produces the conflict error callers see.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	var hasReviews bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reviews WHERE course_id = $1)`, id).Scan(&hasReviews)
	if err != nil {
		return false, fmt.Errorf("error checking course reviews: %w", err)
	}

	if hasReviews {
		return false, apperrors.NewConflictError("cannot delete course with existing reviews")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error deleting course: %w", err)
	}

	return cmdTag.RowsAffected() > 0, nil
}

// ListDepartments retrieves the distinct department names, alphabetically.
func (r *CourseRepository) ListDepartments(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT department
		FROM courses
		WHERE department IS NOT NULL
		ORDER BY department ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var department string
		if err := rows.Scan(&department); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetStats returns catalog-wide course counters.
func (r *CourseRepository) GetStats(ctx context.Context) (*models.CourseStats, error) {
	var stats models.CourseStats
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM courses),
			(SELECT COUNT(DISTINCT department) FROM courses),
			(SELECT COUNT(DISTINCT course_id) FROM reviews)`).Scan(
		&stats.TotalCourses,
		&stats.TotalDepartments,
		&stats.CoursesWithReviews,
	)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course stats: %w", err)
	}

	return &stats, nil
}

// GetWithReviews retrieves a course together with its reviews, newest
// first, each left-joined with the reviewed professor's name. Returns nil
// when the course itself is absent.
func (r *CourseRepository) GetWithReviews(ctx context.Context, id int64) (*models.CourseWithReviews, error) {
	course, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.course_id, r.professor_id, r.user_id, r.rating, r.difficulty,
		       r.comment, r.would_recommend, r.semester_taken, r.year_taken, r.created_at,
		       p.name AS professor_name
		FROM reviews r
		LEFT JOIN professors p ON r.professor_id = p.id
		WHERE r.course_id = $1
		ORDER BY r.created_at DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.ReviewWithProfessor{}
	for rows.Next() {
		var review models.ReviewWithProfessor
		if err := rows.Scan(
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
			&review.ProfessorName,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	result := &models.CourseWithReviews{
		Course:      *course,
		Reviews:     reviews,
		ReviewCount: len(reviews),
	}

	if len(reviews) > 0 {
		var sum int
		for _, review := range reviews {
			sum += review.Rating
		}
		avg := helpers.RoundRating(float64(sum) / float64(len(reviews)))
		result.AverageRating = &avg
	}

	return result, nil
}
