// Package models contains the domain structures for users, subscription
// types and subscriptions, plus the helper types used to receive data
// from external sources (JSON requests).
package models

// User represents a registered user of the service.
// The ID is generated by the storage and never changes.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"` // Unique login name
	Email     string `json:"email"`    // Unique email address
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// UserInput is used to receive user data from a JSON request before
// converting it into a User. Uniqueness is not checked here, only the
// shape of the fields.
type UserInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
