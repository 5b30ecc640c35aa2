package models

import "time"

// User defines the user model based on the 'users' table. Identity comes
// from the Microsoft login flow; there is no local password.
type User struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	MicrosoftID    string    `json:"-" db:"microsoft_id"` // External identity key, unique
	Email          string    `json:"email" db:"email" example:"student@school.edu"`
	Name           string    `json:"name" db:"name" example:"John Doe"`
	AvatarURL      *string   `json:"avatarUrl,omitempty" db:"avatar_url"` // Nullable
	UserType       UserType  `json:"userType" db:"user_type" example:"current"`
	GraduationYear *int      `json:"graduationYear,omitempty" db:"graduation_year"`
	Major          *string   `json:"major,omitempty" db:"major"`
	EnrollmentYear *int      `json:"enrollmentYear,omitempty" db:"enrollment_year"`
	LastLogin      time.Time `json:"lastLogin" db:"last_login"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// MicrosoftProfile is the profile record handed over by the Microsoft
// identity flow after a successful sign-in.
type MicrosoftProfile struct {
	ID          string
	Email       string
	DisplayName string
	AvatarURL   *string
}

// UserSearchResult is the trimmed user record returned by people search.
type UserSearchResult struct {
	ID             int64    `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	AvatarURL      *string  `json:"avatarUrl,omitempty"`
	UserType       UserType `json:"userType"`
	GraduationYear *int     `json:"graduationYear,omitempty"`
	Major          *string  `json:"major,omitempty"`
}

// UserStats counts users per classification.
type UserStats struct {
	Total  int64            `json:"total"`
	ByType map[UserType]int `json:"byType"`
}
