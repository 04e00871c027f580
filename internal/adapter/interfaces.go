// Package adapter implements the client-side view of the attendance server's
// HTTP API. The CLI client talks to the server exclusively through the
// [ServerAdapter] interface defined here.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-attendance/models"
)

// ServerAdapter is the outbound port of the CLI client. One method per
// server endpoint; methods requiring a session expect SetToken to have been
// called with the token obtained from Login.
type ServerAdapter interface {
	// SetToken stores the bearer token used on subsequent authenticated calls.
	SetToken(token string)

	// Login exchanges credentials for a session token and role.
	Login(ctx context.Context, username, password string) (models.LoginResponse, error)

	// CreateUser provisions a new employee account (admin session required).
	CreateUser(ctx context.Context, username, password string) (string, error)

	// ResetPassword replaces the named user's password (admin session required).
	ResetPassword(ctx context.Context, username, newPassword string) (string, error)

	// MarkAttendance marks the session's user present for today.
	MarkAttendance(ctx context.Context) (string, error)

	// MyAttendance lists the session's own attendance records.
	MyAttendance(ctx context.Context) ([]models.AttendanceRecord, error)

	// Dashboard fetches the admin aggregation report.
	Dashboard(ctx context.Context) ([]models.DashboardRow, error)
}
