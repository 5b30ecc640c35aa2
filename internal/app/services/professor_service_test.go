package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/degreedash/degreedash/internal/app/models"
	"github.com/degreedash/degreedash/internal/pkg/apperrors"
)

// fakeProfessorStore keeps professors keyed by (name, department) so
// repeated creates behave like the unique constraint does.
type fakeProfessorStore struct {
	professorStore
	byName map[string]int64
	nextID int64
}

func newFakeProfessorStore() *fakeProfessorStore {
	return &fakeProfessorStore{byName: map[string]int64{}, nextID: 1}
}

func (f *fakeProfessorStore) Create(_ context.Context, professor *models.Professor) (int64, bool, error) {
	key := professor.Name + "|" + professor.Department
	if _, exists := f.byName[key]; exists {
		return 0, false, nil
	}
	id := f.nextID
	f.nextID++
	f.byName[key] = id
	return id, true, nil
}

func (f *fakeProfessorStore) GetByID(context.Context, int64) (*models.ProfessorWithCourses, error) {
	return nil, nil
}

func TestCreateProfessorRequiresName(t *testing.T) {
	svc := NewProfessorService(newFakeProfessorStore(), zerolog.Nop())

	tests := []struct {
		name      string
		professor *models.Professor
	}{
		{"nil payload", nil},
		{"empty name", &models.Professor{Department: "COMP"}},
		{"blank name", &models.Professor{Name: "   ", Department: "COMP"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProfessor(context.Background(), tt.professor)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("CreateProfessor() error = %v, want validation failure", err)
			}
		})
	}
}

func TestCreateProfessorIsIdempotent(t *testing.T) {
	svc := NewProfessorService(newFakeProfessorStore(), zerolog.Nop())
	professor := &models.Professor{Name: "Dr. Jane Lee", Department: "COMP"}

	first, err := svc.CreateProfessor(context.Background(), professor)
	if err != nil {
		t.Fatalf("first CreateProfessor() error = %v", err)
	}
	if !first.Created || first.ID == 0 {
		t.Errorf("first CreateProfessor() = %+v, want created with id", first)
	}

	second, err := svc.CreateProfessor(context.Background(), professor)
	if err != nil {
		t.Fatalf("second CreateProfessor() error = %v", err)
	}
	if second.Created {
		t.Error("second CreateProfessor() reported created = true")
	}
}

func TestCreateProfessorSameNameDifferentDepartment(t *testing.T) {
	svc := NewProfessorService(newFakeProfessorStore(), zerolog.Nop())

	first, err := svc.CreateProfessor(context.Background(), &models.Professor{Name: "Dr. Jane Lee", Department: "COMP"})
	if err != nil {
		t.Fatalf("CreateProfessor() error = %v", err)
	}
	second, err := svc.CreateProfessor(context.Background(), &models.Professor{Name: "Dr. Jane Lee", Department: "MATH"})
	if err != nil {
		t.Fatalf("CreateProfessor() error = %v", err)
	}

	if !second.Created {
		t.Error("professor in a different department was treated as a duplicate")
	}
	if first.ID == second.ID {
		t.Error("distinct professors share an id")
	}
}

func TestGetProfessorByIDNotFound(t *testing.T) {
	svc := NewProfessorService(newFakeProfessorStore(), zerolog.Nop())

	_, err := svc.GetProfessorByID(context.Background(), 404)
	if !errors.Is(err, apperrors.ErrProfessorNotFound) {
		t.Errorf("GetProfessorByID() error = %v, want ErrProfessorNotFound", err)
	}
}

func TestAssignCourseValidation(t *testing.T) {
	svc := NewProfessorService(newFakeProfessorStore(), zerolog.Nop())

	if err := svc.AssignCourse(context.Background(), 0, 1, "Lecturer"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("AssignCourse() with zero professor id error = %v, want validation failure", err)
	}
	if err := svc.AssignCourse(context.Background(), 1, 0, "Lecturer"); !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Errorf("AssignCourse() with zero course id error = %v, want validation failure", err)
	}
}
