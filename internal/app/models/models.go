package models

// UserType classifies a user's relationship to the university.
type UserType string

const (
	UserTypeCurrent UserType = "current"
	UserTypeAlumni  UserType = "alumni"
	UserTypeFaculty UserType = "faculty"
	UserTypeStaff   UserType = "staff"
)

// IsValid reports whether t is one of the known user types.
func (t UserType) IsValid() bool {
	switch t {
	case UserTypeCurrent, UserTypeAlumni, UserTypeFaculty, UserTypeStaff:
		return true
	}
	return false
}

// SearchPriority orders user types in search results: current students
// first, then alumni, then faculty, then everyone else.
func (t UserType) SearchPriority() int {
	switch t {
	case UserTypeCurrent:
		return 0
	case UserTypeAlumni:
		return 1
	case UserTypeFaculty:
		return 2
	}
	return 3
}
