package models

import "time"

// Review is a student's review of a course, optionally tied to the
// professor who taught it. Reviews are immutable once created.
type Review struct {
	ID             int64     `json:"id" db:"id"`
	CourseID       int64     `json:"courseId" db:"course_id"`
	ProfessorID    *int64    `json:"professorId,omitempty" db:"professor_id"` // Nullable
	UserID         int64     `json:"userId" db:"user_id"`
	Rating         int       `json:"rating" db:"rating" example:"4"`
	Difficulty     int       `json:"difficulty" db:"difficulty" example:"3"`
	Comment        *string   `json:"comment,omitempty" db:"comment"`
	WouldRecommend bool      `json:"wouldRecommend" db:"would_recommend"`
	SemesterTaken  string    `json:"semesterTaken" db:"semester_taken" example:"Fall"`
	YearTaken      int       `json:"yearTaken" db:"year_taken" example:"2025"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// ReviewWithProfessor is a review joined with the reviewed professor's
// name. ProfessorName is nil when the review names no professor.
type ReviewWithProfessor struct {
	Review
	ProfessorName *string `json:"professorName,omitempty" db:"professor_name"`
}

// ReviewWithContext is a review joined with its author's name and the
// course it belongs to, used on professor pages.
type ReviewWithContext struct {
	Review
	AuthorName string `json:"authorName" db:"author_name"`
	CourseCode string `json:"courseCode" db:"course_code"`
	CourseName string `json:"courseName" db:"course_name"`
}
