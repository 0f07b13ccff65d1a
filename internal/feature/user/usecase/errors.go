// Package usecase implements the business logic for the user feature.
package usecase

import "course_backend/internal/shared/apperr"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "User not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = apperr.New(apperr.KindUniqueness, "The email address you entered already exists")

	// ErrAccessDenied is returned for every authentication failure.
	// The message does not reveal which check failed.
	ErrAccessDenied = apperr.New(apperr.KindUnauthorized, "Access Denied")
)
