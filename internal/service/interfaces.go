package service

import (
	"context"

	"github.com/MKhiriev/go-attendance/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService owns credential verification, account provisioning, and the
// session-token lifecycle.
type AuthService interface {
	// Login verifies the given plaintext credentials against the stored
	// hash and returns the account on success.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateUser provisions a new account with the given role, hashing the
	// plaintext password before it ever reaches the store.
	CreateUser(ctx context.Context, username, password, role string) (models.User, error)

	// ResetPassword replaces the named account's password hash with the
	// hash of newPassword.
	ResetPassword(ctx context.Context, username, newPassword string) error

	// CreateToken issues a signed session token for the given account.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns its verified
	// identity claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// EnsureBootstrapAdmin seeds the well-known "admin" account when the
	// store holds no such user yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}

// AttendanceService owns the attendance ledger operations available to an
// authenticated user.
type AttendanceService interface {
	// MarkToday appends a presence record for the given user dated with
	// the server's current day. Clients cannot supply the date, so marks
	// can be neither backdated nor future-dated.
	MarkToday(ctx context.Context, userID int64) (models.AttendanceRecord, error)

	// ListForUser returns the user's own records in ascending date order.
	ListForUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error)
}

// ReportService computes the admin-facing attendance aggregation.
type ReportService interface {
	// BuildDashboard returns one row per employee with present-day count
	// and percentage-of-month attendance.
	BuildDashboard(ctx context.Context) ([]models.DashboardRow, error)
}
