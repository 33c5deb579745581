package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Username is the unique login of the user.
	Username string `json:"username"`

	// FirstName and LastName are display attributes.
	FirstName string `json:"first_name"`
	LastName  string `json:"first_last_name"`

	// Password holds the plaintext password on the way in (register, login)
	// and is never serialized back.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash stored in the database.
	PasswordHash string `json:"-"`

	Active bool `json:"active"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
