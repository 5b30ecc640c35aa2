package dto

// CreateReviewRequest is the payload for submitting a review
type CreateReviewRequest struct {
	CourseID       int64   `json:"courseId" binding:"required" example:"1"`
	ProfessorID    *int64  `json:"professorId,omitempty" example:"2"`
	Rating         int     `json:"rating" binding:"required,min=1,max=5" example:"4"`
	Difficulty     int     `json:"difficulty" binding:"required,min=1,max=5" example:"3"`
	Comment        *string `json:"comment,omitempty"`
	WouldRecommend bool    `json:"wouldRecommend" example:"true"`
	SemesterTaken  string  `json:"semesterTaken" binding:"required" example:"Fall"`
	YearTaken      int     `json:"yearTaken" binding:"required" example:"2025"`
}
