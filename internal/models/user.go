package models

// User represents a person who can create and participate in expenses.
//
// Users are immutable once created. The Name is the identity used by every
// relation in the system; the ID exists only as a storage surrogate.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string `json:"id"`

	// Name is the unique, non-blank display name of the user.
	// All participant and share rows reference this name.
	Name string `json:"name"`
}
