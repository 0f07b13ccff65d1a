// Package usecase implements the business logic for course operations.
package usecase

import "course_backend/internal/shared/apperr"

var (
	// ErrCourseNotFound is returned when no course has the requested ID.
	ErrCourseNotFound = apperr.New(apperr.KindNotFound, "Course not found")

	// ErrNotOwner is returned when a user tries to modify a course owned by someone else.
	ErrNotOwner = apperr.New(apperr.KindForbidden, "Access denied.")
)
