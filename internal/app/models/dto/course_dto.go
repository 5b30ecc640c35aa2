package dto

// CreateCourseRequest is the payload for creating a course
type CreateCourseRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required" example:"COMP 3030"`
	CourseName  string  `json:"courseName" binding:"required" example:"Algorithm Design"`
	Department  string  `json:"department" binding:"required" example:"COMP"`
	Description *string `json:"description,omitempty"`
}

// UpdateCourseRequest is the payload for updating a course. All mutable
// fields are replaced together; this is not a partial patch.
type UpdateCourseRequest struct {
	CourseCode  string  `json:"courseCode" binding:"required"`
	CourseName  string  `json:"courseName" binding:"required"`
	Department  string  `json:"department" binding:"required"`
	Description *string `json:"description,omitempty"`
}
