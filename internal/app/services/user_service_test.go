package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

type fakeUserStore struct {
	userStore
	users    map[int64]*models.User
	profiles map[int64]*models.AlumniProfile
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    map[int64]*models.User{},
		profiles: map[int64]*models.AlumniProfile{},
	}
}

func (f *fakeUserStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) UpdateUserType(_ context.Context, id int64, userType models.UserType, graduationYear *int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u.UserType = userType
	if graduationYear != nil {
		u.GraduationYear = graduationYear
	}
	return u, nil
}

func (f *fakeUserStore) UpsertAlumniProfile(_ context.Context, userID int64, graduationYear *int, profile *models.AlumniProfile) (*models.AlumniProfile, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	u.UserType = models.UserTypeAlumni
	if graduationYear != nil {
		u.GraduationYear = graduationYear
	}
	stored := *profile
	stored.UserID = userID
	if existing, ok := f.profiles[userID]; ok {
		stored.ID = existing.ID
	} else {
		stored.ID = int64(len(f.profiles) + 1)
	}
	f.profiles[userID] = &stored
	return &stored, nil
}

func (f *fakeUserStore) GetAlumniProfile(_ context.Context, userID int64) (*models.AlumniMember, error) {
	u, ok := f.users[userID]
	if !ok || u.UserType != models.UserTypeAlumni {
		return nil, nil
	}
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &models.AlumniMember{User: *u, Profile: *profile}, nil
}

func TestUpdateUserTypeRejectsUnknownType(t *testing.T) {
	store := newFakeUserStore()
	store.users[1] = &models.User{ID: 1, UserType: models.UserTypeCurrent}
	svc := NewUserService(store, zerolog.Nop())

	_, err := svc.UpdateUserType(context.Background(), 1, models.UserType("wizard"), nil)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("UpdateUserType() error = %v, want validation failure", err)
	}
}

func TestUpdateUserTypeNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), zerolog.Nop())

	_, err := svc.UpdateUserType(context.Background(), 99, models.UserTypeAlumni, nil)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("UpdateUserType() error = %v, want ErrUserNotFound", err)
	}
}

func TestUpdateUserTypeCarriesGraduationYear(t *testing.T) {
	store := newFakeUserStore()
	store.users[1] = &models.User{ID: 1, UserType: models.UserTypeCurrent}
	svc := NewUserService(store, zerolog.Nop())

	year := 2024
	updated, err := svc.UpdateUserType(context.Background(), 1, models.UserTypeAlumni, &year)
	if err != nil {
		t.Fatalf("UpdateUserType() error = %v", err)
	}
	if updated.UserType != models.UserTypeAlumni {
		t.Errorf("UserType = %q, want alumni", updated.UserType)
	}
	if updated.GraduationYear == nil || *updated.GraduationYear != 2024 {
		t.Errorf("GraduationYear = %v, want 2024", updated.GraduationYear)
	}
}

func TestUpdateAlumniNetworkReclassifiesUser(t *testing.T) {
	store := newFakeUserStore()
	store.users[1] = &models.User{ID: 1, UserType: models.UserTypeCurrent}
	svc := NewUserService(store, zerolog.Nop())

	employer := "Atlassian"
	profile, err := svc.UpdateAlumniNetwork(context.Background(), 1, &models.AlumniProfile{
		CurrentEmployer:     &employer,
		MentorshipAvailable: true,
	}, nil)
	if err != nil {
		t.Fatalf("UpdateAlumniNetwork() error = %v", err)
	}
	if profile.UserID != 1 {
		t.Errorf("profile UserID = %d, want 1", profile.UserID)
	}
	if store.users[1].UserType != models.UserTypeAlumni {
		t.Errorf("user type = %q, want alumni after profile write", store.users[1].UserType)
	}
}

func TestUpdateAlumniNetworkIsIdempotent(t *testing.T) {
	store := newFakeUserStore()
	store.users[1] = &models.User{ID: 1, UserType: models.UserTypeCurrent}
	svc := NewUserService(store, zerolog.Nop())

	first, err := svc.UpdateAlumniNetwork(context.Background(), 1, &models.AlumniProfile{MentorshipAvailable: true}, nil)
	if err != nil {
		t.Fatalf("first UpdateAlumniNetwork() error = %v", err)
	}
	second, err := svc.UpdateAlumniNetwork(context.Background(), 1, &models.AlumniProfile{MentorshipAvailable: false}, nil)
	if err != nil {
		t.Fatalf("second UpdateAlumniNetwork() error = %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("repeated writes produced distinct profiles: %d and %d", first.ID, second.ID)
	}
	if second.MentorshipAvailable {
		t.Error("second write did not replace profile fields")
	}
	if len(store.profiles) != 1 {
		t.Errorf("stored %d profiles, want 1", len(store.profiles))
	}
}

func TestUpdateAlumniNetworkUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), zerolog.Nop())

	_, err := svc.UpdateAlumniNetwork(context.Background(), 99, &models.AlumniProfile{}, nil)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("UpdateAlumniNetwork() error = %v, want ErrUserNotFound", err)
	}
}

func TestGetAlumniNetworkRequiresAlumni(t *testing.T) {
	store := newFakeUserStore()
	store.users[1] = &models.User{ID: 1, UserType: models.UserTypeCurrent}
	svc := NewUserService(store, zerolog.Nop())

	_, err := svc.GetAlumniNetwork(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrUserNotAlumni) {
		t.Errorf("GetAlumniNetwork() error = %v, want ErrUserNotAlumni", err)
	}
}

func TestGetUserByIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), zerolog.Nop())

	_, err := svc.GetUserByID(context.Background(), 5)
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("GetUserByID() error = %v, want ErrUserNotFound", err)
	}
}
