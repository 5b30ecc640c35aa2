package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
	"github.com/degreedash/degreedash/internal/pkg/dberrors"
	"github.com/degreedash/degreedash/internal/pkg/helpers"
)

// DefaultProfessorDepartment is recorded when a professor is created
// without a department.
const DefaultProfessorDepartment = "Unknown"

// ProfessorFilter holds the optional filters for listing professors.
type ProfessorFilter struct {
	Search     string
	Department string
}

// ProfessorRepository handles database operations for professors.
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new professor repository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{
		db: db,
	}
}

// List retrieves professors matching a substring of the name and an exact
// department, ordered by name.
func (r *ProfessorRepository) List(ctx context.Context, filter ProfessorFilter) ([]models.Professor, error) {
	query := `
		SELECT id, name, department
		FROM professors
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if pattern := helpers.SearchPattern(filter.Search); pattern != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIndex)
		args = append(args, pattern)
		argIndex++
	}

	if dept := strings.TrimSpace(filter.Department); dept != "" {
		query += fmt.Sprintf(" AND department = $%d", argIndex)
		args = append(args, dept)
	}

	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing professors: %w", err)
	}
	defer rows.Close()

	var professors []models.Professor
	for rows.Next() {
		var professor models.Professor
		if err := rows.Scan(&professor.ID, &professor.Name, &professor.Department); err != nil {
			return nil, err
		}
		professors = append(professors, professor)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return professors, nil
}

// GetByID retrieves a professor with their assigned courses and the role
// held for each. Returns nil when the professor is absent.
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.ProfessorWithCourses, error) {
	var professor models.ProfessorWithCourses
	err := r.db.QueryRow(ctx, `
		SELECT id, name, department
		FROM professors
		WHERE id = $1`, id).Scan(&professor.ID, &professor.Name, &professor.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving professor: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.course_code, c.course_name, c.department, c.description, c.created_at, cp.role
		FROM course_professors cp
		JOIN courses c ON cp.course_id = c.id
		WHERE cp.professor_id = $1
		ORDER BY c.course_code ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor courses: %w", err)
	}
	defer rows.Close()

	professor.Courses = []models.CourseAssignment{}
	for rows.Next() {
		var assignment models.CourseAssignment
		if err := rows.Scan(
			&assignment.ID,
			&assignment.CourseCode,
			&assignment.CourseName,
			&assignment.Department,
			&assignment.Description,
			&assignment.CreatedAt,
			&assignment.Role,
		); err != nil {
			return nil, err
		}
		professor.Courses = append(professor.Courses, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &professor, nil
}

// GetReviews retrieves a professor's reviews, newest first, joined with
// the author's name and the reviewed course's code and name.
func (r *ProfessorRepository) GetReviews(ctx context.Context, id int64) ([]models.ReviewWithContext, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.course_id, r.professor_id, r.user_id, r.rating, r.difficulty,
		       r.comment, r.would_recommend, r.semester_taken, r.year_taken, r.created_at,
		       u.name AS author_name, c.course_code, c.course_name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		JOIN courses c ON r.course_id = c.id
		WHERE r.professor_id = $1
		ORDER BY r.created_at DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving professor reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.ReviewWithContext
	for rows.Next() {
		var review models.ReviewWithContext
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
			&review.AuthorName,
			&review.CourseCode,
			&review.CourseName,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}

// Create inserts a professor. Inserting an existing (name, department)
// pair is a silent no-op: the returned id is 0 and created is false.
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor) (int64, bool, error) {
	if strings.TrimSpace(professor.Department) == "" {
		professor.Department = DefaultProfessorDepartment
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO professors (name, department)
		VALUES ($1, $2)
		ON CONFLICT (name, department) DO NOTHING
		RETURNING id`,
		professor.Name, professor.Department).Scan(&id)
	if err != nil {
		// No row comes back when the conflict branch was taken
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error creating professor: %w", err)
	}

	return id, true, nil
}

// AssignCourse links a professor to a course with the given role. Existing
// assignments keep their role.
func (r *ProfessorRepository) AssignCourse(ctx context.Context, professorID, courseID int64, role string) error {
	if strings.TrimSpace(role) == "" {
		role = "Lecturer"
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO course_professors (course_id, professor_id, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (course_id, professor_id) DO NOTHING`,
		courseID, professorID, role)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewResourceNotFoundError("professor or course does not exist")
		}
		return fmt.Errorf("error assigning course to professor: %w", err)
	}

	return nil
}
