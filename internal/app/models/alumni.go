package models

import "time"

// AlumniProfile is the one-to-one alumni-network extension of a user
// with user_type = alumni.
type AlumniProfile struct {
	ID                  int64     `json:"id" db:"id"`
	UserID              int64     `json:"userId" db:"user_id"`
	CurrentEmployer     *string   `json:"currentEmployer,omitempty" db:"current_employer"`
	JobTitle            *string   `json:"jobTitle,omitempty" db:"job_title"`
	Industry            *string   `json:"industry,omitempty" db:"industry"`
	Location            *string   `json:"location,omitempty" db:"location"`
	LinkedinURL         *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	MentorshipAvailable bool      `json:"mentorshipAvailable" db:"mentorship_available"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// AlumniMember joins a user with their alumni-network profile.
type AlumniMember struct {
	User
	Profile AlumniProfile `json:"profile"`
}

// AlumniStats summarizes the alumni network.
type AlumniStats struct {
	TotalAlumni      int64  `json:"totalAlumni"`
	DistinctMajors   int64  `json:"distinctMajors"`
	GraduationYears  int64  `json:"graduationYears"`
	MentorsAvailable int64  `json:"mentorsAvailable"`
	Industries       string `json:"industries"` // Comma-joined distinct list
}
