package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/db"
)

// AlumniRepository handles the alumni-network database operations.
type AlumniRepository struct {
	db *pgxpool.Pool
}

// NewAlumniRepository creates a new AlumniRepository
func NewAlumniRepository(db *pgxpool.Pool) *AlumniRepository {
	return &AlumniRepository{
		db: db,
	}
}

// AlumniFilter holds the optional filters for listing alumni.
type AlumniFilter struct {
	GraduationYear *int
	Major          string
}

// GetAlumni retrieves alumni matching the filter, ordered by graduation
// year descending then name.
func (r *AlumniRepository) GetAlumni(ctx context.Context, filter AlumniFilter) ([]models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_type = $1
	`

	args := []interface{}{models.UserTypeAlumni}
	argIndex := 2

	if filter.GraduationYear != nil {
		query += fmt.Sprintf(" AND graduation_year = $%d", argIndex)
		args = append(args, *filter.GraduationYear)
		argIndex++
	}

	if major := strings.TrimSpace(filter.Major); major != "" {
		query += fmt.Sprintf(" AND major = $%d", argIndex)
		args = append(args, major)
	}

	query += " ORDER BY graduation_year DESC, name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing alumni: %w", err)
	}
	defer rows.Close()

	var alumni []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		alumni = append(alumni, *user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return alumni, nil
}

const alumniProfileColumns = `id, user_id, current_employer, job_title, industry,
	location, linkedin_url, mentorship_available, updated_at`

func scanAlumniProfile(row pgx.Row) (*models.AlumniProfile, error) {
	var profile models.AlumniProfile
	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.CurrentEmployer,
		&profile.JobTitle,
		&profile.Industry,
		&profile.Location,
		&profile.LinkedinURL,
		&profile.MentorshipAvailable,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertProfile reclassifies the user as alumni and writes the alumni
// profile in one transaction. The profile write is a single keyed upsert,
// so concurrent calls for the same user cannot leave two rows behind; the
// last writer wins.
func (r *AlumniRepository) UpsertProfile(ctx context.Context, userID int64, graduationYear *int, profile *models.AlumniProfile) (*models.AlumniProfile, error) {
	var saved *models.AlumniProfile

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE users
			SET user_type = $1,
			    graduation_year = COALESCE($2, graduation_year),
			    updated_at = NOW()
			WHERE id = $3`,
			models.UserTypeAlumni, graduationYear, userID)
		if err != nil {
			return fmt.Errorf("error reclassifying user as alumni: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}

		saved, err = scanAlumniProfile(tx.QueryRow(ctx, `
			INSERT INTO alumni_profiles (user_id, current_employer, job_title, industry,
			                             location, linkedin_url, mentorship_available, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
			ON CONFLICT (user_id) DO UPDATE SET
				current_employer = EXCLUDED.current_employer,
				job_title = EXCLUDED.job_title,
				industry = EXCLUDED.industry,
				location = EXCLUDED.location,
				linkedin_url = EXCLUDED.linkedin_url,
				mentorship_available = EXCLUDED.mentorship_available,
				updated_at = NOW()
			RETURNING `+alumniProfileColumns,
			userID, profile.CurrentEmployer, profile.JobTitle, profile.Industry,
			profile.Location, profile.LinkedinURL, profile.MentorshipAvailable))
		if err != nil {
			return fmt.Errorf("error upserting alumni profile: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return saved, nil
}

// GetProfile retrieves an alumni member's joined user and profile record,
// constrained to users classified as alumni. Returns nil when absent.
func (r *AlumniRepository) GetProfile(ctx context.Context, userID int64) (*models.AlumniMember, error) {
	var member models.AlumniMember
	err := r.db.QueryRow(ctx, `
		SELECT u.id, u.microsoft_id, u.email, u.name, u.avatar_url, u.user_type,
		       u.graduation_year, u.major, u.enrollment_year, u.last_login, u.created_at, u.updated_at,
		       a.id, a.user_id, a.current_employer, a.job_title, a.industry,
		       a.location, a.linkedin_url, a.mentorship_available, a.updated_at
		FROM users u
		JOIN alumni_profiles a ON a.user_id = u.id
		WHERE u.id = $1 AND u.user_type = $2`,
		userID, models.UserTypeAlumni).Scan(
		&member.ID, &member.MicrosoftID, &member.Email, &member.Name, &member.AvatarURL, &member.UserType,
		&member.GraduationYear, &member.Major, &member.EnrollmentYear, &member.LastLogin, &member.CreatedAt, &member.UpdatedAt,
		&member.Profile.ID, &member.Profile.UserID, &member.Profile.CurrentEmployer, &member.Profile.JobTitle, &member.Profile.Industry,
		&member.Profile.Location, &member.Profile.LinkedinURL, &member.Profile.MentorshipAvailable, &member.Profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving alumni profile: %w", err)
	}

	return &member, nil
}

// GetMentors retrieves alumni offering mentorship, ordered by name.
func (r *AlumniRepository) GetMentors(ctx context.Context) ([]models.AlumniMember, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.microsoft_id, u.email, u.name, u.avatar_url, u.user_type,
		       u.graduation_year, u.major, u.enrollment_year, u.last_login, u.created_at, u.updated_at,
		       a.id, a.user_id, a.current_employer, a.job_title, a.industry,
		       a.location, a.linkedin_url, a.mentorship_available, a.updated_at
		FROM users u
		JOIN alumni_profiles a ON a.user_id = u.id
		WHERE u.user_type = $1 AND a.mentorship_available = TRUE
		ORDER BY u.name ASC`, models.UserTypeAlumni)
	if err != nil {
		return nil, fmt.Errorf("error listing mentors: %w", err)
	}
	defer rows.Close()

	var mentors []models.AlumniMember
	for rows.Next() {
		var member models.AlumniMember
		if err := rows.Scan(
			&member.ID, &member.MicrosoftID, &member.Email, &member.Name, &member.AvatarURL, &member.UserType,
			&member.GraduationYear, &member.Major, &member.EnrollmentYear, &member.LastLogin, &member.CreatedAt, &member.UpdatedAt,
			&member.Profile.ID, &member.Profile.UserID, &member.Profile.CurrentEmployer, &member.Profile.JobTitle, &member.Profile.Industry,
			&member.Profile.Location, &member.Profile.LinkedinURL, &member.Profile.MentorshipAvailable, &member.Profile.UpdatedAt,
		); err != nil {
			return nil, err
		}
		mentors = append(mentors, member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mentors, nil
}

// GetStats summarizes the alumni network in one aggregate query.
func (r *AlumniRepository) GetStats(ctx context.Context) (*models.AlumniStats, error) {
	var stats models.AlumniStats
	var industries *string

	err := r.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT u.major),
			COUNT(DISTINCT u.graduation_year),
			COUNT(*) FILTER (WHERE a.mentorship_available),
			STRING_AGG(DISTINCT a.industry, ', ' ORDER BY a.industry)
		FROM users u
		LEFT JOIN alumni_profiles a ON a.user_id = u.id
		WHERE u.user_type = $1`, models.UserTypeAlumni).Scan(
		&stats.TotalAlumni,
		&stats.DistinctMajors,
		&stats.GraduationYears,
		&stats.MentorsAvailable,
		&industries,
	)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumni stats: %w", err)
	}

	if industries != nil {
		stats.Industries = *industries
	}

	return &stats, nil
}
