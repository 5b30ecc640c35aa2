package dto

// SignInRequest carries the verified Microsoft identity profile handed
// over by the login flow.
type SignInRequest struct {
	ID          string  `json:"id" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	DisplayName string  `json:"displayName" binding:"required"`
	AvatarURL   *string `json:"avatarUrl,omitempty"`
}

// RefreshTokenRequest exchanges a refresh token for a new session.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// UpdateUserTypeRequest reclassifies a user
type UpdateUserTypeRequest struct {
	UserType       string `json:"userType" binding:"required,oneof=current alumni faculty staff"`
	GraduationYear *int   `json:"graduationYear,omitempty" example:"2026"`
}

// AlumniNetworkRequest is the payload for writing an alumni-network
// profile. The call reclassifies the user as alumni.
type AlumniNetworkRequest struct {
	CurrentEmployer     *string `json:"currentEmployer,omitempty"`
	JobTitle            *string `json:"jobTitle,omitempty"`
	Industry            *string `json:"industry,omitempty"`
	Location            *string `json:"location,omitempty"`
	LinkedinURL         *string `json:"linkedinUrl,omitempty"`
	MentorshipAvailable bool    `json:"mentorshipAvailable"`
	GraduationYear      *int    `json:"graduationYear,omitempty"`
}
