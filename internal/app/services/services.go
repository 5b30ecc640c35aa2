// Package services holds the business logic sitting between the HTTP
// controllers and the repositories.
//
// Services defined in this package:
//   - CourseService: course catalog, search and review aggregation
//   - ProfessorService: professors and their course assignments
//   - ReviewService: review submission
//   - UserService: users, classification and the alumni network
//   - AuthService: Microsoft sign-in exchange and session tokens
//
// Each service depends on a narrow store interface satisfied by the
// concrete repositories, so tests can substitute in-memory fakes.
package services
