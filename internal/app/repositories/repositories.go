package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository    *CourseRepository
	ProfessorRepository *ProfessorRepository
	ReviewRepository    *ReviewRepository
	UserRepository      *UserRepository
	TokenRepository     *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:    NewCourseRepository(db),
		ProfessorRepository: NewProfessorRepository(db),
		ReviewRepository:    NewReviewRepository(db),
		UserRepository:      NewUserRepository(db),
		TokenRepository:     NewTokenRepository(db),
	}
}
