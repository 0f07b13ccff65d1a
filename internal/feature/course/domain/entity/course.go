// Package entity defines the domain models for the course feature.
package entity

// Course is a course offered by a user. UserID identifies the owner and
// never changes after creation.
type Course struct {
	ID              uint
	Title           string
	Description     string
	EstimatedTime   string
	MaterialsNeeded string
	UserID          uint
	// Owner is filled on reads only.
	Owner Owner
}

// Owner is the public projection of the user owning a course.
type Owner struct {
	ID           uint
	FirstName    string
	LastName     string
	EmailAddress string
}

// IsOwnedBy reports whether userID may modify the course.
func (c *Course) IsOwnedBy(userID uint) bool {
	return c.UserID == userID
}
