package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/degreedash/degreedash/internal/app/models"
	appRepos "github.com/degreedash/degreedash/internal/app/repositories"
	"github.com/degreedash/degreedash/internal/pkg/helpers"
)

// defaultCourse describes one starter catalog entry.
type defaultCourse struct {
	code        string
	name        string
	department  string
	description string
	professor   string
}

// Starter catalog so a fresh install is not empty. Professors are
// attached as lecturers of their course.
var defaultCourses = []defaultCourse{
	{"COMP1511", "Programming Fundamentals", "COMP", "Introduction to programming in C", "Dr. Andrew Taylor"},
	{"COMP2521", "Data Structures and Algorithms", "COMP", "Abstract data types, sorting and graph algorithms", "Dr. Ashesh Mahidadia"},
	{"COMP3231", "Operating Systems", "COMP", "Processes, memory management and file systems", "Dr. Kevin Elphinstone"},
	{"MATH1131", "Mathematics 1A", "MATH", "Calculus and linear algebra", "Dr. Jonathan Kress"},
	{"MATH1231", "Mathematics 1B", "MATH", "Series, multivariable calculus and probability", "Dr. Jonathan Kress"},
	{"ECON1101", "Microeconomics 1", "ECON", "Markets, consumer choice and firm behaviour", "Dr. Peter Nichols"},
	{"PSYC1001", "Psychology 1A", "PSYC", "Foundations of behavioural science", "Dr. Jessica Grisham"},
}

// CreateDefaultData seeds the starter course catalog and its professors
// if they don't exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	professorRepo := appRepos.NewProfessorRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default course catalog...")
	var finalErr error

	for _, entry := range defaultCourses {
		course, err := courseRepo.GetByCode(ctx, entry.code)
		if err != nil {
			lgr.Error().Err(err).Str("courseCode", entry.code).Msg("Error looking up seed course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if course == nil {
			course, err = courseRepo.Create(ctx, &appModels.Course{
				CourseCode:  entry.code,
				CourseName:  entry.name,
				Department:  entry.department,
				Description: helpers.NullableString(entry.description),
			})
			if err != nil {
				lgr.Error().Err(err).Str("courseCode", entry.code).Msg("Error creating seed course")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			lgr.Info().Str("courseCode", entry.code).Msg("Seed course created")
		}

		professorID, created, err := professorRepo.Create(ctx, &appModels.Professor{
			Name:       entry.professor,
			Department: entry.department,
		})
		if err != nil {
			lgr.Error().Err(err).Str("professor", entry.professor).Msg("Error creating seed professor")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if professorID == 0 {
			// Already present, look the id up through the directory
			existing, errList := professorRepo.List(ctx, appRepos.ProfessorFilter{
				Search:     entry.professor,
				Department: entry.department,
			})
			if errList != nil {
				lgr.Error().Err(errList).Str("professor", entry.professor).Msg("Error resolving seed professor")
				finalErr = errors.Join(finalErr, errList)
				continue
			}
			for _, p := range existing {
				if p.Name == entry.professor {
					professorID = p.ID
					break
				}
			}
		}
		if created {
			lgr.Info().Str("professor", entry.professor).Msg("Seed professor created")
		}

		if professorID > 0 {
			if err := professorRepo.AssignCourse(ctx, professorID, course.ID, "Lecturer"); err != nil {
				lgr.Error().Err(err).Str("courseCode", entry.code).Msg("Error assigning seed professor")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
