package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/internal/store"
	"github.com/MKhiriev/go-attendance/models"
)

// attendanceService is the concrete implementation of AttendanceService.
// The service decides the record date from its own clock; the repository
// enforces the one-record-per-user-per-day invariant.
type attendanceService struct {
	attendanceRepository store.AttendanceRepository

	// now supplies the server's reference clock. Overridable in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewAttendanceService constructs an AttendanceService wired to the given
// AttendanceRepository and the real clock.
func NewAttendanceService(attendanceRepository store.AttendanceRepository, logger *logger.Logger) AttendanceService {
	return &attendanceService{
		attendanceRepository: attendanceRepository,
		now:                  time.Now,
		logger:               logger,
	}
}

// MarkToday appends a presence record dated with the server's current day.
// The date never comes from the caller, so marks cannot be backdated or
// future-dated.
//
// Returns the persisted record or a wrapped storage error
// (store.ErrAlreadyMarked when a record for today already exists).
func (s *attendanceService) MarkToday(ctx context.Context, userID int64) (models.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	today := s.now().Format(models.DateLayout)

	record, err := s.attendanceRepository.MarkPresent(ctx, userID, today)
	if err != nil {
		log.Err(err).Int64("userID", userID).Str("date", today).Msg("marking attendance failed")
		return models.AttendanceRecord{}, fmt.Errorf("marking attendance failed: %w", err)
	}

	log.Debug().Int64("userID", userID).Str("date", today).Msg("attendance marked")

	return record, nil
}

// ListForUser returns the user's records in ascending date order.
func (s *attendanceService) ListForUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	records, err := s.attendanceRepository.ListForUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("listing attendance failed")
		return nil, fmt.Errorf("listing attendance failed: %w", err)
	}

	return records, nil
}
