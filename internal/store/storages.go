package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/config"
	"github.com/MKhiriev/go-attendance/internal/logger"
)

// Storages bundles every repository of the application behind one handle.
// All repositories share a single database connection.
type Storages struct {
	UserRepository       UserRepository
	AttendanceRepository AttendanceRepository

	db *DB
}

// NewStorages connects to the configured backend, applies pending schema
// migrations, and wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		AttendanceRepository: NewAttendanceRepository(db, log),
		db:                   db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
