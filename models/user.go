package models

import "time"

// Role is the privilege level of a user account.
type Role string

const (
	// RoleUser is the default role; it grants no write access.
	RoleUser Role = "user"

	// RoleAdmin grants access to every content and project write endpoint.
	RoleAdmin Role = "admin"
)

// ParseRole maps a requested role string to a [Role].
// Only the exact value "admin" yields [RoleAdmin]; anything else,
// including an empty string, yields [RoleUser].
func ParseRole(s string) Role {
	if Role(s) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// IsAdmin reports whether r is [RoleAdmin].
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User represents a credential record used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// Password carries the plaintext password of an incoming register or
	// login request. It is never persisted nor written to a response.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash of the password as stored.
	PasswordHash string `json:"-"`

	// Role is requested on registration and stored on the record.
	Role Role `json:"role,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the subset of user fields that may be sent to a client.
func (u User) Public() UserInfo {
	return UserInfo{ID: u.UserID, Email: u.Email, Role: u.Role}
}

// UserInfo is the public projection of a [User].
type UserInfo struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// RoleCheck is the result of an advisory role lookup by email.
type RoleCheck struct {
	Email   string
	Found   bool
	IsAdmin bool
}
