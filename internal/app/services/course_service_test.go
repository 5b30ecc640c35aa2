package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

// fakeCourseStore overrides the store methods a test needs. Calling an
// unset method panics, which surfaces wiring mistakes immediately.
type fakeCourseStore struct {
	courseStore
	getByID        func(ctx context.Context, id int64) (*models.Course, error)
	create         func(ctx context.Context, course *models.Course) (*models.Course, error)
	delete         func(ctx context.Context, id int64) (bool, error)
	getWithReviews func(ctx context.Context, id int64) (*models.CourseWithReviews, error)
}

func (f *fakeCourseStore) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return f.getByID(ctx, id)
}

func (f *fakeCourseStore) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	return f.create(ctx, course)
}

func (f *fakeCourseStore) Delete(ctx context.Context, id int64) (bool, error) {
	return f.delete(ctx, id)
}

func (f *fakeCourseStore) GetWithReviews(ctx context.Context, id int64) (*models.CourseWithReviews, error) {
	return f.getWithReviews(ctx, id)
}

func TestCreateCourseValidation(t *testing.T) {
	tests := []struct {
		name   string
		course *models.Course
	}{
		{"nil payload", nil},
		{"missing code", &models.Course{CourseName: "Operating Systems", Department: "COMP"}},
		{"missing name", &models.Course{CourseCode: "COMP3231", Department: "COMP"}},
		{"missing department", &models.Course{CourseCode: "COMP3231", CourseName: "Operating Systems"}},
		{"blank code", &models.Course{CourseCode: "   ", CourseName: "Operating Systems", Department: "COMP"}},
	}

	svc := NewCourseService(&fakeCourseStore{}, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCourse(context.Background(), tt.course)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateCourse() error = %v, want validation failure", err)
			}
		})
	}
}

func TestCreateCourseReturnsStoredCourse(t *testing.T) {
	store := &fakeCourseStore{
		create: func(_ context.Context, course *models.Course) (*models.Course, error) {
			stored := *course
			stored.ID = 42
			return &stored, nil
		},
	}
	svc := NewCourseService(store, zerolog.Nop())

	created, err := svc.CreateCourse(context.Background(), &models.Course{
		CourseCode: "COMP1511",
		CourseName: "Programming Fundamentals",
		Department: "COMP",
	})
	if err != nil {
		t.Fatalf("CreateCourse() error = %v", err)
	}
	if created.ID != 42 {
		t.Errorf("CreateCourse() ID = %d, want 42", created.ID)
	}
	if created.CourseCode != "COMP1511" {
		t.Errorf("CreateCourse() CourseCode = %q, want COMP1511", created.CourseCode)
	}
}

func TestGetCourseByIDNotFound(t *testing.T) {
	store := &fakeCourseStore{
		getByID: func(context.Context, int64) (*models.Course, error) { return nil, nil },
	}
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.GetCourseByID(context.Background(), 999)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("GetCourseByID() error = %v, want ErrCourseNotFound", err)
	}
}

func TestDeleteCourseWithReviewsConflicts(t *testing.T) {
	store := &fakeCourseStore{
		delete: func(context.Context, int64) (bool, error) {
			return false, apperrors.NewConflictError("cannot delete course with existing reviews")
		},
	}
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.DeleteCourse(context.Background(), 1)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("DeleteCourse() error = %v, want conflict", err)
	}
}

func TestDeleteCourseReportsOutcome(t *testing.T) {
	store := &fakeCourseStore{
		delete: func(context.Context, int64) (bool, error) { return true, nil },
	}
	svc := NewCourseService(store, zerolog.Nop())

	deleted, err := svc.DeleteCourse(context.Background(), 1)
	if err != nil {
		t.Fatalf("DeleteCourse() error = %v", err)
	}
	if !deleted {
		t.Error("DeleteCourse() = false, want true")
	}
}

func TestGetCourseWithReviewsNotFound(t *testing.T) {
	store := &fakeCourseStore{
		getWithReviews: func(context.Context, int64) (*models.CourseWithReviews, error) { return nil, nil },
	}
	svc := NewCourseService(store, zerolog.Nop())

	_, err := svc.GetCourseWithReviews(context.Background(), 7)
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("GetCourseWithReviews() error = %v, want ErrCourseNotFound", err)
	}
}
