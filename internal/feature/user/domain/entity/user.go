// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered user in the system.
// Users authenticate with their email address and password on every request.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"size:255;not null"`
	LastName  string `gorm:"size:255;not null"`

	// EmailAddress is the login name. It must be unique across all users.
	EmailAddress string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
