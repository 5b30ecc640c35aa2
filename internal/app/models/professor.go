package models

// Professor represents a course instructor.
type Professor struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name" example:"Dr. Jane Lee"`
	Department string `json:"department" db:"department" example:"COMP"`
}

// CourseAssignment is a course taught by a professor together with the
// role held for that course (e.g. "Lecturer").
type CourseAssignment struct {
	Course
	Role string `json:"role" db:"role" example:"Lecturer"`
}

// ProfessorWithCourses bundles a professor with the courses assigned to them.
type ProfessorWithCourses struct {
	Professor
	Courses []CourseAssignment `json:"courses"`
}
