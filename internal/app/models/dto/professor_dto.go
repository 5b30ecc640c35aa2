package dto

// CreateProfessorRequest is the payload for creating a professor. The
// department defaults to "Unknown" when omitted.
type CreateProfessorRequest struct {
	Name       string `json:"name" binding:"required" example:"Dr. Jane Lee"`
	Department string `json:"department,omitempty" example:"COMP"`
}

// AssignCourseRequest links a professor to a course with a role
type AssignCourseRequest struct {
	CourseID int64  `json:"courseId" binding:"required"`
	Role     string `json:"role,omitempty" example:"Lecturer"`
}
