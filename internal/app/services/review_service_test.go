package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

type fakeReviewStore struct {
	created []*models.Review
	err     error
}

func (f *fakeReviewStore) Create(_ context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	review.ID = int64(len(f.created) + 1)
	f.created = append(f.created, review)
	return nil
}

type fakeReviewCourses struct {
	courses map[int64]*models.Course
}

func (f *fakeReviewCourses) GetByID(_ context.Context, id int64) (*models.Course, error) {
	return f.courses[id], nil
}

func validReview() *models.Review {
	return &models.Review{
		CourseID:       1,
		UserID:         10,
		Rating:         4,
		Difficulty:     3,
		WouldRecommend: true,
		SemesterTaken:  "Fall",
		YearTaken:      2025,
	}
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.Review)
	}{
		{"missing course", func(r *models.Review) { r.CourseID = 0 }},
		{"missing author", func(r *models.Review) { r.UserID = 0 }},
		{"rating below range", func(r *models.Review) { r.Rating = 0 }},
		{"rating above range", func(r *models.Review) { r.Rating = 6 }},
		{"difficulty below range", func(r *models.Review) { r.Difficulty = 0 }},
		{"difficulty above range", func(r *models.Review) { r.Difficulty = 6 }},
		{"missing semester", func(r *models.Review) { r.SemesterTaken = "  " }},
		{"missing year", func(r *models.Review) { r.YearTaken = 0 }},
	}

	svc := NewReviewService(&fakeReviewStore{}, &fakeReviewCourses{}, zerolog.Nop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review := validReview()
			tt.mutate(review)

			_, err := svc.CreateReview(context.Background(), review)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateReview() error = %v, want validation failure", err)
			}
		})
	}
}

func TestCreateReviewRatingBounds(t *testing.T) {
	store := &fakeReviewStore{}
	courses := &fakeReviewCourses{courses: map[int64]*models.Course{
		1: {ID: 1, CourseCode: "COMP1511"},
	}}
	svc := NewReviewService(store, courses, zerolog.Nop())

	for rating := MinRating; rating <= MaxRating; rating++ {
		review := validReview()
		review.Rating = rating
		if _, err := svc.CreateReview(context.Background(), review); err != nil {
			t.Errorf("CreateReview() rating %d error = %v", rating, err)
		}
	}
	if len(store.created) != MaxRating-MinRating+1 {
		t.Errorf("stored %d reviews, want %d", len(store.created), MaxRating-MinRating+1)
	}
}

func TestCreateReviewUnknownCourse(t *testing.T) {
	svc := NewReviewService(&fakeReviewStore{}, &fakeReviewCourses{}, zerolog.Nop())

	_, err := svc.CreateReview(context.Background(), validReview())
	if !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("CreateReview() error = %v, want ErrCourseNotFound", err)
	}
}

func TestCreateReviewAssignsID(t *testing.T) {
	store := &fakeReviewStore{}
	courses := &fakeReviewCourses{courses: map[int64]*models.Course{
		1: {ID: 1, CourseCode: "COMP1511"},
	}}
	svc := NewReviewService(store, courses, zerolog.Nop())

	created, err := svc.CreateReview(context.Background(), validReview())
	if err != nil {
		t.Fatalf("CreateReview() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("CreateReview() did not assign an id")
	}
}
