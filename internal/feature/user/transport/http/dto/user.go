// Package dto defines data transfer objects for the user feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for POST /api/users.
// Field rules are enforced by the usecase so every failure is reported at once.
type CreateUserReq struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// UserRes is the public view of a user. It never carries the password hash.
type UserRes struct {
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}
