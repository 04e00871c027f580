package models

import "time"

// Roles a user account can hold. The role is assigned at provisioning time
// and never changes afterwards: there is no role-transfer operation.
const (
	// RoleAdmin marks an administrator account. Admins provision employee
	// accounts, reset passwords, and read the aggregated dashboard.
	RoleAdmin = "admin"

	// RoleEmployee marks a regular employee account. Employees mark their
	// own attendance and read their own records.
	RoleEmployee = "employee"
)

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is server-assigned at creation, never reused, and is not exposed
	// via JSON; it is used at the persistence layer and inside tokens.
	UserID int64 `json:"-"`

	// Username is the unique, case-sensitive login key of the account.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is never serialized.
	PasswordHash string `json:"-"`

	// Role is either RoleAdmin or RoleEmployee. Fixed at creation.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
