package user

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

// CommonRepository handles the shared user database operations.
type CommonRepository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new CommonRepository
func NewRepository(db *pgxpool.Pool) *CommonRepository {
	return &CommonRepository{
		db: db,
	}
}

const userColumns = `id, microsoft_id, email, name, avatar_url, user_type,
	graduation_year, major, enrollment_year, last_login, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.MicrosoftID,
		&user.Email,
		&user.Name,
		&user.AvatarURL,
		&user.UserType,
		&user.GraduationYear,
		&user.Major,
		&user.EnrollmentYear,
		&user.LastLogin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *CommonRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]models.User, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *CommonRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// FindOrCreateFromIdentity looks a user up by the identity provider's
// external id, creating the record on first sign-in. On every call the
// user's last_login advances; nothing else changes for existing users.
// The single upsert statement keeps repeated and concurrent calls with
// the same external id converging on one row.
func (r *CommonRepository) FindOrCreateFromIdentity(ctx context.Context, profile *models.MicrosoftProfile, userType models.UserType) (*models.User, error) {
	if userType == "" {
		userType = models.UserTypeCurrent
	}

	user, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (microsoft_id, email, name, avatar_url, user_type, last_login)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (microsoft_id) DO UPDATE SET last_login = NOW()
		RETURNING `+userColumns,
		profile.ID, profile.Email, profile.DisplayName, profile.AvatarURL, userType))
	if err != nil {
		return nil, fmt.Errorf("error finding or creating user from identity: %w", err)
	}

	return user, nil
}

// Create inserts a user. The user type defaults to current and last_login
// is set to the insert time.
func (r *CommonRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.UserType == "" {
		user.UserType = models.UserTypeCurrent
	}

	created, err := scanUser(r.db.QueryRow(ctx, `
		INSERT INTO users (microsoft_id, email, name, avatar_url, user_type,
		                   graduation_year, major, enrollment_year, last_login)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING `+userColumns,
		user.MicrosoftID, user.Email, user.Name, user.AvatarURL, user.UserType,
		user.GraduationYear, user.Major, user.EnrollmentYear))
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_microsoft_id_key") {
			return nil, apperrors.NewConflictError("user with this identity already exists")
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

// FindByMicrosoftID retrieves a user by external identity key. Returns nil
// when absent.
func (r *CommonRepository) FindByMicrosoftID(ctx context.Context, microsoftID string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE microsoft_id = $1`, microsoftID)
}

// FindByEmail retrieves a user by email. Returns nil when absent.
func (r *CommonRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// FindByID retrieves a user by ID. Returns nil when absent.
func (r *CommonRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// UpdateLastLogin sets last_login to now.
func (r *CommonRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}

// GetCurrentStudents retrieves current students ordered by name.
func (r *CommonRepository) GetCurrentStudents(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_type = $1
		ORDER BY name ASC`, models.UserTypeCurrent)
}

// GetFaculty retrieves faculty members ordered by name.
func (r *CommonRepository) GetFaculty(ctx context.Context) ([]models.User, error) {
	return r.queryUsers(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_type = $1
		ORDER BY name ASC`, models.UserTypeFaculty)
}

// UpdateUserType sets a user's type and graduation year and touches
// updated_at. Returns the updated user, or nil when the user is absent.
func (r *CommonRepository) UpdateUserType(ctx context.Context, id int64, userType models.UserType, graduationYear *int) (*models.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, `
		UPDATE users
		SET user_type = $1, graduation_year = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+userColumns,
		userType, graduationYear, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating user type: %w", err)
	}

	return user, nil
}

// GetUserStats counts users in total and per classification.
func (r *CommonRepository) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT user_type, COUNT(*)
		FROM users
		GROUP BY user_type`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user stats: %w", err)
	}
	defer rows.Close()

	stats := &models.UserStats{
		ByType: map[models.UserType]int{
			models.UserTypeCurrent: 0,
			models.UserTypeAlumni:  0,
			models.UserTypeFaculty: 0,
			models.UserTypeStaff:   0,
		},
	}

	for rows.Next() {
		var userType models.UserType
		var count int
		if err := rows.Scan(&userType, &count); err != nil {
			return nil, err
		}
		stats.ByType[userType] = count
		stats.Total += int64(count)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Search matches the query as a substring of name, email or major and
// orders results by type priority (current students first, then alumni,
// then faculty) and name.
func (r *CommonRepository) Search(ctx context.Context, query string) ([]models.UserSearchResult, error) {
	pattern := helpers.SearchPattern(query)
	if pattern == "" {
		pattern = "%%"
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, email, name, avatar_url, user_type, graduation_year, major
		FROM users
		WHERE name ILIKE $1 OR email ILIKE $1 OR major ILIKE $1
		ORDER BY
			CASE user_type
				WHEN 'current' THEN 0
				WHEN 'alumni' THEN 1
				WHEN 'faculty' THEN 2
				ELSE 3
			END,
			name ASC`, pattern)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}
	defer rows.Close()

	var results []models.UserSearchResult
	for rows.Next() {
		var result models.UserSearchResult
		if err := rows.Scan(
			&result.ID,
			&result.Email,
			&result.Name,
			&result.AvatarURL,
			&result.UserType,
			&result.GraduationYear,
			&result.Major,
		); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// ListFilter holds the optional filters for listing users.
type ListFilter struct {
	UserType       models.UserType
	Major          string
	GraduationYear *int
}

// List retrieves users matching the filter, newest created first.
func (r *CommonRepository) List(ctx context.Context, filter ListFilter) ([]models.User, error) {
	builder := squirrel.Select(
		"id", "microsoft_id", "email", "name", "avatar_url", "user_type",
		"graduation_year", "major", "enrollment_year", "last_login", "created_at", "updated_at",
	).From("users").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserType != "" {
		builder = builder.Where(squirrel.Eq{"user_type": filter.UserType})
	}
	if major := strings.TrimSpace(filter.Major); major != "" {
		builder = builder.Where(squirrel.Eq{"major": major})
	}
	if filter.GraduationYear != nil {
		builder = builder.Where(squirrel.Eq{"graduation_year": *filter.GraduationYear})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user query: %w", err)
	}

	return r.queryUsers(ctx, query, args...)
}
