package store

import (
	"context"

	"github.com/MKhiriev/go-attendance/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store: it owns identity records and their
// password hashes. Implementations must make every mutating call durable
// before returning.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields filled in. Fails with ErrUsernameAlreadyExists when the
	// username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks a user up by its exact, case-sensitive
	// username. Fails with ErrNoUserWasFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdatePasswordHash replaces the stored password hash of the named
	// user. Fails with ErrNoUserWasFound when no such user exists.
	UpdatePasswordHash(ctx context.Context, username string, newHash string) error

	// ListUsersByRole returns every user holding the given role.
	ListUsersByRole(ctx context.Context, role string) ([]models.User, error)
}

// AttendanceRepository is the append-only attendance ledger. Records are
// inserted exactly once per user per calendar day and never mutated or
// deleted; the repository exposes no update or delete operation at all.
type AttendanceRepository interface {
	// MarkPresent appends a presence record for (userID, date). The insert
	// is atomic with respect to the one-record-per-user-per-day invariant:
	// a concurrent duplicate loses at the database's unique constraint and
	// surfaces as ErrAlreadyMarked, never as a second record.
	MarkPresent(ctx context.Context, userID int64, date string) (models.AttendanceRecord, error)

	// ListForUser returns all records of the given user in ascending date
	// order.
	ListForUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error)

	// ListAll returns the full ledger for aggregation use.
	ListAll(ctx context.Context) ([]models.AttendanceRecord, error)
}
