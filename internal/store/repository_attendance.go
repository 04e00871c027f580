package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-attendance/internal/logger"
	"github.com/MKhiriev/go-attendance/models"
)

// attendanceRepository is the SQL-backed implementation of
// [AttendanceRepository]. The "attendance" table carries a
// UNIQUE (user_id, date) constraint, so the check-then-append sequence the
// ledger needs collapses into a single atomic INSERT: two concurrent marks
// for the same user and day cannot both succeed regardless of interleaving.
type attendanceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAttendanceRepository constructs an [AttendanceRepository] backed by the
// provided database connection and logger.
func NewAttendanceRepository(db *DB, logger *logger.Logger) AttendanceRepository {
	logger.Debug().Msg("creating attendance repository")
	return &attendanceRepository{
		db:     db,
		logger: logger,
	}
}

// MarkPresent appends a presence record for (userID, date) and returns it
// with server-assigned fields (RecordID, CreatedAt).
//
// Error handling:
//   - unique-constraint violation on (user_id, date) → [ErrAlreadyMarked].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *attendanceRepository) MarkPresent(ctx context.Context, userID int64, date string) (models.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAttendanceQuery(r.db.builder, userID, date, models.StatusPresent)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.MarkPresent").Msg("error: building query")
		return models.AttendanceRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var record models.AttendanceRecord
	row := r.db.QueryRowContext(ctx, query, args...)

	// scan saved record from db
	if err := row.Scan(&record.RecordID, &record.UserID, &record.Date, &record.Status, &record.CreatedAt); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return models.AttendanceRecord{}, ErrAlreadyMarked
		}

		log.Err(err).Str("func", "*attendanceRepository.MarkPresent").Msg("error: scanning error")
		return models.AttendanceRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return record, nil
}

// ListForUser returns all attendance records of the given user in ascending
// date order.
func (r *attendanceRepository) ListForUser(ctx context.Context, userID int64) ([]models.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAttendanceForUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.ListForUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, query, args...)
}

// ListAll returns the full ledger ordered by user and date. It exists for
// the aggregation reporter; role gating happens upstream.
func (r *attendanceRepository) ListAll(ctx context.Context) ([]models.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAllAttendanceQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.ListAll").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRecords(ctx, query, args...)
}

func (r *attendanceRepository) queryRecords(ctx context.Context, query string, args ...any) ([]models.AttendanceRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*attendanceRepository.queryRecords").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(&record.RecordID, &record.UserID, &record.Date, &record.Status, &record.CreatedAt); err != nil {
			log.Err(err).Str("func", "*attendanceRepository.queryRecords").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
