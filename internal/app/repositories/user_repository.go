package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/repositories/user"
)

// UserRepository combines the common user operations with the
// alumni-network operations.
type UserRepository struct {
	common *user.CommonRepository
	alumni *user.AlumniRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		common: user.NewRepository(db),
		alumni: user.NewAlumniRepository(db),
	}
}

// FindOrCreateFromIdentity resolves a Microsoft identity profile to a
// user, creating the record on first sign-in.
func (r *UserRepository) FindOrCreateFromIdentity(ctx context.Context, profile *models.MicrosoftProfile, userType models.UserType) (*models.User, error) {
	return r.common.FindOrCreateFromIdentity(ctx, profile, userType)
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return r.common.Create(ctx, u)
}

// FindByMicrosoftID retrieves a user by external identity key
func (r *UserRepository) FindByMicrosoftID(ctx context.Context, microsoftID string) (*models.User, error) {
	return r.common.FindByMicrosoftID(ctx, microsoftID)
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.common.FindByEmail(ctx, email)
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	return r.common.FindByID(ctx, id)
}

// UpdateLastLogin sets a user's last_login to now
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id int64) error {
	return r.common.UpdateLastLogin(ctx, id)
}

// GetCurrentStudents retrieves current students ordered by name
func (r *UserRepository) GetCurrentStudents(ctx context.Context) ([]models.User, error) {
	return r.common.GetCurrentStudents(ctx)
}

// GetFaculty retrieves faculty members ordered by name
func (r *UserRepository) GetFaculty(ctx context.Context) ([]models.User, error) {
	return r.common.GetFaculty(ctx)
}

// UpdateUserType sets a user's type and graduation year
func (r *UserRepository) UpdateUserType(ctx context.Context, id int64, userType models.UserType, graduationYear *int) (*models.User, error) {
	return r.common.UpdateUserType(ctx, id, userType, graduationYear)
}

// GetUserStats counts users in total and per classification
func (r *UserRepository) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	return r.common.GetUserStats(ctx)
}

// Search matches users by substring of name, email or major
func (r *UserRepository) Search(ctx context.Context, query string) ([]models.UserSearchResult, error) {
	return r.common.Search(ctx, query)
}

// List retrieves users matching the filter, newest created first
func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]models.User, error) {
	return r.common.List(ctx, filter)
}

// GetAlumni retrieves alumni matching the filter
func (r *UserRepository) GetAlumni(ctx context.Context, filter user.AlumniFilter) ([]models.User, error) {
	return r.alumni.GetAlumni(ctx, filter)
}

// UpsertAlumniProfile reclassifies the user as alumni and writes the
// alumni-network profile atomically
func (r *UserRepository) UpsertAlumniProfile(ctx context.Context, userID int64, graduationYear *int, profile *models.AlumniProfile) (*models.AlumniProfile, error) {
	return r.alumni.UpsertProfile(ctx, userID, graduationYear, profile)
}

// GetAlumniProfile retrieves an alumni member's joined user and profile
func (r *UserRepository) GetAlumniProfile(ctx context.Context, userID int64) (*models.AlumniMember, error) {
	return r.alumni.GetProfile(ctx, userID)
}

// GetMentors retrieves alumni offering mentorship
func (r *UserRepository) GetMentors(ctx context.Context) ([]models.AlumniMember, error) {
	return r.alumni.GetMentors(ctx)
}

// GetAlumniStats summarizes the alumni network
func (r *UserRepository) GetAlumniStats(ctx context.Context) (*models.AlumniStats, error) {
	return r.alumni.GetStats(ctx)
}
