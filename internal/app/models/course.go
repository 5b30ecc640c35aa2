package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID          int64     `json:"id" db:"id"`
	CourseCode  string    `json:"courseCode" db:"course_code" example:"COMP 3030"`
	CourseName  string    `json:"courseName" db:"course_name" example:"Algorithm Design"`
	Department  string    `json:"department" db:"department" example:"COMP"`
	Description *string   `json:"description,omitempty" db:"description"` // Nullable
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// CourseStats holds catalog-wide course counters.
type CourseStats struct {
	TotalCourses       int64 `json:"totalCourses"`
	TotalDepartments   int64 `json:"totalDepartments"`
	CoursesWithReviews int64 `json:"coursesWithReviews"`
}

// CourseWithReviews bundles a course with its reviews and the aggregates
// derived from them. AverageRating is nil when the course has no reviews.
type CourseWithReviews struct {
	Course
	Reviews       []ReviewWithProfessor `json:"reviews"`
	ReviewCount   int                   `json:"reviewCount"`
	AverageRating *float64              `json:"averageRating,omitempty"`
}
