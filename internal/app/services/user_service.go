package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/app/repositories/user"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

// UserService defines the interface for user and alumni-network operations
type UserService interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetCurrentStudents(ctx context.Context) ([]models.User, error)
	GetFaculty(ctx context.Context) ([]models.User, error)
	GetAlumni(ctx context.Context, filter user.AlumniFilter) ([]models.User, error)
	UpdateUserType(ctx context.Context, id int64, userType models.UserType, graduationYear *int) (*models.User, error)
	UpdateAlumniNetwork(ctx context.Context, userID int64, profile *models.AlumniProfile, graduationYear *int) (*models.AlumniProfile, error)
	GetAlumniNetwork(ctx context.Context, userID int64) (*models.AlumniMember, error)
	GetMentors(ctx context.Context) ([]models.AlumniMember, error)
	GetUserStats(ctx context.Context) (*models.UserStats, error)
	GetAlumniStats(ctx context.Context) (*models.AlumniStats, error)
	SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error)
	ListUsers(ctx context.Context, filter user.ListFilter) ([]models.User, error)
}

// userStore is the repository surface the user service needs.
type userStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetCurrentStudents(ctx context.Context) ([]models.User, error)
	GetFaculty(ctx context.Context) ([]models.User, error)
	GetAlumni(ctx context.Context, filter user.AlumniFilter) ([]models.User, error)
	UpdateUserType(ctx context.Context, id int64, userType models.UserType, graduationYear *int) (*models.User, error)
	UpsertAlumniProfile(ctx context.Context, userID int64, graduationYear *int, profile *models.AlumniProfile) (*models.AlumniProfile, error)
	GetAlumniProfile(ctx context.Context, userID int64) (*models.AlumniMember, error)
	GetMentors(ctx context.Context) ([]models.AlumniMember, error)
	GetUserStats(ctx context.Context) (*models.UserStats, error)
	GetAlumniStats(ctx context.Context) (*models.AlumniStats, error)
	Search(ctx context.Context, query string) ([]models.UserSearchResult, error)
	List(ctx context.Context, filter user.ListFilter) ([]models.User, error)
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	users  userStore
	logger zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users userStore, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		users:  users,
		logger: logger,
	}
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

// GetUserByEmail retrieves a user by email
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

// GetCurrentStudents retrieves current students ordered by name
func (s *userServiceImpl) GetCurrentStudents(ctx context.Context) ([]models.User, error) {
	return s.users.GetCurrentStudents(ctx)
}

// GetFaculty retrieves faculty members ordered by name
func (s *userServiceImpl) GetFaculty(ctx context.Context) ([]models.User, error) {
	return s.users.GetFaculty(ctx)
}

// GetAlumni retrieves alumni matching the filter
func (s *userServiceImpl) GetAlumni(ctx context.Context, filter user.AlumniFilter) ([]models.User, error) {
	return s.users.GetAlumni(ctx, filter)
}

// UpdateUserType sets a user's classification. Moving a current student to
// alumni records the graduation year at the same time.
func (s *userServiceImpl) UpdateUserType(ctx context.Context, id int64, userType models.UserType, graduationYear *int) (*models.User, error) {
	if !userType.IsValid() {
		return nil, apperrors.NewValidationError("invalid user type")
	}

	u, err := s.users.UpdateUserType(ctx, id, userType, graduationYear)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}

	s.logger.Info().Int64("userId", id).Str("userType", string(userType)).Msg("User type updated")
	return u, nil
}

// UpdateAlumniNetwork writes a user's alumni-network profile. The call
// always reclassifies the user as alumni, even when it only edits an
// existing profile.
func (s *userServiceImpl) UpdateAlumniNetwork(ctx context.Context, userID int64, profile *models.AlumniProfile, graduationYear *int) (*models.AlumniProfile, error) {
	if profile == nil {
		return nil, apperrors.NewValidationError("alumni profile payload is required")
	}

	saved, err := s.users.UpsertAlumniProfile(ctx, userID, graduationYear, profile)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		return nil, apperrors.ErrUserNotFound
	}

	s.logger.Info().Int64("userId", userID).Msg("Alumni network profile saved")
	return saved, nil
}

// GetAlumniNetwork retrieves an alumni member's joined user and profile
func (s *userServiceImpl) GetAlumniNetwork(ctx context.Context, userID int64) (*models.AlumniMember, error) {
	member, err := s.users.GetAlumniProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumni network profile: %w", err)
	}
	if member == nil {
		return nil, apperrors.ErrUserNotAlumni
	}
	return member, nil
}

// GetMentors retrieves alumni offering mentorship
func (s *userServiceImpl) GetMentors(ctx context.Context) ([]models.AlumniMember, error) {
	return s.users.GetMentors(ctx)
}

// GetUserStats counts users in total and per classification
func (s *userServiceImpl) GetUserStats(ctx context.Context) (*models.UserStats, error) {
	return s.users.GetUserStats(ctx)
}

// GetAlumniStats summarizes the alumni network
func (s *userServiceImpl) GetAlumniStats(ctx context.Context) (*models.AlumniStats, error) {
	return s.users.GetAlumniStats(ctx)
}

// SearchUsers matches users by substring of name, email or major
func (s *userServiceImpl) SearchUsers(ctx context.Context, query string) ([]models.UserSearchResult, error) {
	return s.users.Search(ctx, query)
}

// ListUsers retrieves users matching the filter, newest created first
func (s *userServiceImpl) ListUsers(ctx context.Context, filter user.ListFilter) ([]models.User, error) {
	return s.users.List(ctx, filter)
}
